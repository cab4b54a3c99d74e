package encoder

import (
	"strings"
	"testing"

	"github.com/ericlevine/quickcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		compaction Compaction
		want       []int
	}{
		{"text", "PDF417", CompactionAuto, []int{453, 178, 121, 239}},
		{"punctuation", "Hello, World!", CompactionAuto, []int{237, 131, 344, 853, 808, 687, 437, 333, 880}},
		{"lower with digits", "hello world 123", CompactionAuto, []int{817, 131, 344, 802, 437, 333, 808, 32, 119}},
		{"numeric run", "1234567890123", CompactionAuto, []int{902, 17, 110, 836, 811, 223}},
		{"numeric inside bytes", "ABC1234567890123DEF", CompactionAuto,
			[]int{901, 65, 66, 67, 902, 17, 110, 836, 811, 223, 901, 68, 69, 70}},
		{"binary", "abc\xe9def", CompactionAuto, []int{901, 163, 179, 518, 388, 53, 102}},
		{"control byte", "a\x00", CompactionAuto, []int{901, 97, 0}},
		{"forced text", "Hello", CompactionText, []int{237, 131, 344}},
		{"forced byte", "Hello", CompactionByte, []int{901, 72, 101, 108, 108, 111}},
		{"forced numeric", "123", CompactionNumeric, []int{902, 1, 223}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeHighLevel([]byte(tc.msg), tc.compaction, NoECI)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeHighLevelECI(t *testing.T) {
	got, err := EncodeHighLevel([]byte("AB"), CompactionAuto, 26)
	require.NoError(t, err)
	assert.Equal(t, []int{927, 26, 901, 65, 66}, got)

	got, err = EncodeHighLevel([]byte("AB"), CompactionByte, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{926, 0, 100}, got[:3])

	got, err = EncodeHighLevel([]byte("AB"), CompactionByte, 810901)
	require.NoError(t, err)
	assert.Equal(t, []int{925, 1}, got[:2])

	_, err = EncodeHighLevel([]byte("AB"), CompactionAuto, 811800)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

func TestEncodeHighLevelErrors(t *testing.T) {
	_, err := EncodeHighLevel(nil, CompactionAuto, NoECI)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	_, err = EncodeHighLevel([]byte("caf\xe9"), CompactionText, NoECI)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	_, err = EncodeHighLevel([]byte("12a"), CompactionNumeric, NoECI)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	_, err = EncodeHighLevel([]byte("x"), Compaction(9), NoECI)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

func TestEncodeBinarySixPacks(t *testing.T) {
	got := encodeBinary(nil, []byte("abcdef"), byteCompaction)
	require.Len(t, got, 6)
	assert.Equal(t, latchToByte, got[0])

	got = encodeBinary(nil, []byte("x"), textCompaction)
	assert.Equal(t, []int{shiftToByte, 'x'}, got)
}

func TestGeneratorPolynomials(t *testing.T) {
	assert.Equal(t, []int{27, 917}, generators[0])
	assert.Equal(t, []int{522, 568, 723, 809}, generators[1])
	assert.Equal(t, []int{237, 308, 436, 284, 646, 653, 428, 379}, generators[2])
	for level, g := range generators {
		assert.Len(t, g, 2<<level)
	}
}

func TestGenerateErrorCorrection(t *testing.T) {
	// ISO/IEC 15438 annex example: "PDF417" at level 1.
	ec, err := GenerateErrorCorrection([]int{5, 453, 178, 121, 239}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{452, 327, 657, 619}, ec)

	_, err = GenerateErrorCorrection([]int{1}, 9)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

func TestDetermineDimensions(t *testing.T) {
	tests := []struct {
		m, k, cols int
		want       Dimensions
	}{
		{4, 8, 0, Dimensions{Cols: 2, Rows: 7}},
		{9, 8, 6, Dimensions{Cols: 6, Rows: 3}},
		{200, 8, 0, Dimensions{Cols: 13, Rows: 17}},
		{925, 2, 0, Dimensions{Cols: 29, Rows: 32}},
		{4, 2, 2, Dimensions{Cols: 2, Rows: 4}},
		{100, 8, 2, Dimensions{Cols: 2, Rows: 55}},
	}
	for _, tc := range tests {
		got, err := DetermineDimensions(tc.m, tc.k, tc.cols)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "m=%d k=%d cols=%d", tc.m, tc.k, tc.cols)
		assert.GreaterOrEqual(t, got.Cols*got.Rows, tc.m+1+tc.k)
	}
}

func TestDetermineDimensionsErrors(t *testing.T) {
	_, err := DetermineDimensions(100, 8, 1)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration, "109 rows in one column")

	_, err = DetermineDimensions(926, 2, 0)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)

	_, err = DetermineDimensions(10, 2, 31)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

func TestCodewordTable(t *testing.T) {
	for cluster, table := range codewordTable {
		seen := map[int32]bool{}
		for value, pattern := range table {
			require.False(t, seen[pattern], "cluster %d value %d repeats a pattern", cluster, value)
			seen[pattern] = true

			w := runWidths(pattern, 17)
			require.Len(t, w, 8, "cluster %d value %d", cluster, value)
			assert.True(t, pattern&(1<<16) != 0, "codewords start with a bar")
			assert.Equal(t, cluster*3, (w[0]-w[2]+w[4]-w[6]+9)%9, "cluster %d value %d", cluster, value)
		}
	}
	assert.Equal(t, []int{8, 1, 1, 1, 1, 1, 1, 3}, runWidths(startPattern, startPatternLen))
	assert.Equal(t, []int{7, 1, 1, 3, 1, 1, 1, 2, 1}, runWidths(stopPattern, stopPatternLen))
}

func runWidths(pattern int32, n int) []int {
	var widths []int
	last := pattern&(1<<(n-1)) != 0
	run := 0
	for mask := int32(1) << (n - 1); mask != 0; mask >>= 1 {
		bit := pattern&mask != 0
		if bit == last {
			run++
			continue
		}
		widths = append(widths, run)
		last, run = bit, 1
	}
	return append(widths, run)
}

func TestRowIndicators(t *testing.T) {
	dim := Dimensions{Cols: 6, Rows: 10}
	tests := []struct {
		y           int
		left, right int
	}{
		{0, 3, 5},
		{1, 6, 3},
		{2, 5, 6},
		{3, 33, 35},
		{9, 93, 95},
	}
	for _, tc := range tests {
		left, right := rowIndicators(tc.y, dim, 2)
		assert.Equal(t, tc.left, left, "row %d left", tc.y)
		assert.Equal(t, tc.right, right, "row %d right", tc.y)
	}
}

func TestEncodeSymbol(t *testing.T) {
	sym, err := Encode([]byte("PDF417"), NoECI, Options{Columns: 2, ECLevel: 0})
	require.NoError(t, err)
	assert.Equal(t, Dimensions{Cols: 2, Rows: 4}, sym.Dimensions)
	assert.Equal(t, []int{6, 453, 178, 121, 239, 900, 443, 180}, sym.Codewords)

	want := []string{
		"1111111101010100011110101011110000110101000110000001110111011001100011110101011110000111111101000101001",
		"1111111101010100011111010101100000110100001110001001111010001010000011111101010111000111111101000101001",
		"1111111101010100011101010111111000101100110011110001100011111001001011010101111100000111111101000101001",
		"1111111101010100010101111001111000111101110100001101111011010011100010101111001111000111111101000101001",
	}
	require.Equal(t, len(want), sym.Matrix.Height())
	for y, row := range want {
		assert.Equal(t, row, rowString(sym.Matrix, y), "row %d", y)
	}
}

func rowString(m *BarcodeMatrix, y int) string {
	var sb strings.Builder
	for x := 0; x < m.Width(); x++ {
		if m.Get(x, y) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestEncodeCompact(t *testing.T) {
	full, err := Encode([]byte("PDF417"), NoECI, Options{Columns: 2})
	require.NoError(t, err)
	compact, err := Encode([]byte("PDF417"), NoECI, Options{Columns: 2, Compact: true})
	require.NoError(t, err)

	assert.Equal(t, full.Codewords, compact.Codewords)
	assert.Equal(t, 69, compact.Matrix.Width())
	for y := 0; y < compact.Matrix.Height(); y++ {
		assert.Equal(t, rowString(full.Matrix, y)[:68], rowString(compact.Matrix, y)[:68])
		assert.True(t, compact.Matrix.Get(68, y), "row %d ends in the stop bar", y)
	}
}

func TestEncodeCapacity(t *testing.T) {
	sym, err := Encode([]byte(strings.Repeat("1", 2710)), NoECI, Options{ECLevel: 0})
	require.NoError(t, err)
	assert.Len(t, sym.Codewords, 928)
	assert.LessOrEqual(t, sym.Rows, MaxRows)

	_, err = Encode([]byte(strings.Repeat("1", 2711)), NoECI, Options{ECLevel: 0})
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)

	_, err = Encode([]byte("PDF417"), NoECI, Options{ECLevel: 9})
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

func TestEncodeRowBounds(t *testing.T) {
	for _, n := range []int{1, 10, 100, 500} {
		sym, err := Encode([]byte(strings.Repeat("A", n)), NoECI, Options{ECLevel: 2})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sym.Rows, MinRows)
		assert.LessOrEqual(t, sym.Rows, MaxRows)
		assert.Len(t, sym.Codewords, sym.Cols*sym.Rows)
		assert.Equal(t, sym.Cols*sym.Rows-ErrorCorrectionCodewordCount(2), sym.Codewords[0])
	}
}
