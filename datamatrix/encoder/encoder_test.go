package encoder

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/reedsolomon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want []byte
	}{
		{"ascii digit pairs", "123456", []byte{142, 164, 186}},
		{"upper shift", "123456£", []byte{142, 164, 186, 235, 36}},
		{"ascii mixed", "30Q324343430794<OQQ", []byte{160, 82, 162, 173, 173, 173, 137, 224, 61, 80, 82, 82}},
		{"c40", "AIMAIMAIM", []byte{230, 91, 11, 91, 11, 91, 11, 254}},
		{"c40 then ascii", "AIMAIMAIM'", []byte{230, 91, 11, 91, 11, 91, 11, 254, 40, 129}},
		{"text", "aimaimaim", []byte{239, 91, 11, 91, 11, 91, 11, 254}},
		{"x12", "ABC>ABC123>AB", []byte{238, 89, 233, 14, 192, 100, 207, 44, 31, 67}},
		{"edifact", ".A.C1.3.DATA.123DATA.123DATA", []byte{
			240, 184, 27, 131, 198, 236, 238, 16, 21, 1, 187,
			28, 179, 16, 21, 1, 187, 28, 179, 16, 21, 1,
		}},
		{"base 256", "«äöüé»", []byte{231, 44, 108, 59, 226, 126, 1, 104}},
		{"padding", "1234567", []byte{142, 164, 186, 56, 129}},
		{"randomized padding", "AIMAIAb", []byte{66, 74, 78, 66, 74, 66, 99, 129}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeHighLevel(latin1(tc.msg), ShapeHintForceNone, NoECI)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// latin1 converts a Go string to one byte per rune.
func latin1(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r))
	}
	return b
}

func TestEncodeHighLevelMixedModes(t *testing.T) {
	tests := []string{
		" A\r EHD0B\"+??&\";+#",
		"ABC>ABC\"123",
		"*>\r*>\r*>\rabc",
		"12 AB*>CD\r!!",
		"A1B2C3 *X12*\xe9",
		".A.C1.3.DATAabc",
		"DATA.123DATA.12\x7f",
		"EDI:FACT/DATA^^x",
		"aimaim AIMAIM aimaim\r\r",
		"AIMAIMAIM\xe9\xe9\xe9",
		"\xab\xe4\xf6ABC>DEF",
		"0123456789>>>>",
	}
	for _, msg := range tests {
		t.Run(strconv.Quote(msg), func(t *testing.T) {
			var got []byte
			require.NotPanics(t, func() {
				var err error
				got, err = EncodeHighLevel([]byte(msg), ShapeHintForceNone, NoECI)
				require.NoError(t, err)
			})
			again, err := EncodeHighLevel([]byte(msg), ShapeHintForceNone, NoECI)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestEncodeHighLevelRandomAlphabet(t *testing.T) {
	// Characters that pull the look-ahead toward every mode.
	alphabet := []byte(" \r*>0123456789ABCDEFXYZabcxyz.:/^!\"+#?&;\x7f\xe9\xff")
	rng := rand.New(rand.NewPCG(16022, 200))
	for n := 0; n < 500; n++ {
		msg := make([]byte, 1+rng.IntN(40))
		for i := range msg {
			msg[i] = alphabet[rng.IntN(len(alphabet))]
		}
		var first []byte
		require.NotPanics(t, func() {
			var err error
			first, err = EncodeHighLevel(msg, ShapeHintForceNone, NoECI)
			require.NoError(t, err, "%q", msg)
		}, "%q", msg)
		again, err := EncodeHighLevel(msg, ShapeHintForceNone, NoECI)
		require.NoError(t, err)
		require.Equal(t, first, again, "%q", msg)

		si, err := Lookup(len(first), ShapeHintForceNone)
		require.NoError(t, err)
		assert.Equal(t, si.DataCapacity, len(first), "%q", msg)
	}
}

func TestEncodeHighLevelECI(t *testing.T) {
	got, err := EncodeHighLevel([]byte("€"), ShapeHintForceNone, 26)
	require.NoError(t, err)
	assert.Equal(t, []byte{241, 27, 231, 90, 206, 4, 196}, got[:7])
}

func TestEncodeHighLevelMacro(t *testing.T) {
	got, err := EncodeHighLevel([]byte("[)>\x1e05\x1d123456\x1e\x04"), ShapeHintForceNone, NoECI)
	require.NoError(t, err)
	assert.Equal(t, []byte{macro05, 142, 164, 186}, got[:4])
}

func TestEncodeHighLevelErrors(t *testing.T) {
	_, err := EncodeHighLevel(nil, ShapeHintForceNone, NoECI)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	got, err := EncodeHighLevel([]byte(strings.Repeat("1", 3116)), ShapeHintForceNone, NoECI)
	require.NoError(t, err)
	assert.Len(t, got, 1558)

	_, err = EncodeHighLevel([]byte(strings.Repeat("1", 3117)), ShapeHintForceNone, NoECI)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)
}

func TestECIWords(t *testing.T) {
	assert.Equal(t, []byte{241, 27}, eciCodewords(26))
	assert.Equal(t, []byte{241, 128, 1}, eciCodewords(127))
	assert.Equal(t, []byte{241, 192, 1, 1}, eciCodewords(16383))
}

func TestPadCodewords(t *testing.T) {
	assert.Equal(t, []byte{1, 2}, PadCodewords([]byte{1, 2}, 2))
	padded := PadCodewords([]byte{142, 164, 186, 56}, 8)
	assert.Equal(t, []byte{142, 164, 186, 56, asciiPad, randomize253State(asciiPad, 6), randomize253State(asciiPad, 7), randomize253State(asciiPad, 8)}, padded)
	assert.Equal(t, byte(129+((149*6)%253)+1-254), randomize253State(asciiPad, 6))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		codewords     int
		shape         SymbolShapeHint
		width, height int
	}{
		{1, ShapeHintForceNone, 10, 10},
		{3, ShapeHintForceNone, 10, 10},
		{4, ShapeHintForceNone, 12, 12},
		{5, ShapeHintForceRectangle, 18, 8},
		{9, ShapeHintForceNone, 32, 8},
		{9, ShapeHintForceSquare, 16, 16},
		{49, ShapeHintForceRectangle, 48, 16},
		{62, ShapeHintForceNone, 32, 32},
		{1558, ShapeHintForceNone, 144, 144},
	}
	for _, tc := range tests {
		si, err := Lookup(tc.codewords, tc.shape)
		require.NoError(t, err)
		assert.Equal(t, tc.width, si.SymbolWidth(), "%d codewords, %s", tc.codewords, tc.shape)
		assert.Equal(t, tc.height, si.SymbolHeight(), "%d codewords, %s", tc.codewords, tc.shape)
	}

	_, err := Lookup(50, ShapeHintForceRectangle)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)
	_, err = Lookup(1559, ShapeHintForceNone)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)
}

func TestSymbolTableConsistency(t *testing.T) {
	for i := range symbols {
		si := &symbols[i]
		t.Run(si.String(), func(t *testing.T) {
			blocks := si.InterleavedBlockCount()
			data, ec := 0, 0
			for b := 0; b < blocks; b++ {
				data += si.DataLengthForBlock(b)
				ec += si.ErrorLengthForBlock(b)
			}
			assert.Equal(t, si.DataCapacity, data)
			assert.Equal(t, si.ErrorCodewords, ec)
			assert.Equal(t, si.TotalCodewords(), si.MappingMatrixColumns()*si.MappingMatrixRows()/8)
			assert.Same(t, si, LookupBySize(si.SymbolWidth(), si.SymbolHeight()))
		})
	}
}

func TestEncodeECC200(t *testing.T) {
	si, err := Lookup(3, ShapeHintForceNone)
	require.NoError(t, err)
	full, err := EncodeECC200([]byte{142, 164, 186}, si)
	require.NoError(t, err)
	assert.Equal(t, []byte{142, 164, 186, 114, 25, 5, 88, 102}, full)

	_, err = EncodeECC200([]byte{1, 2}, si)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)
}

func TestEncodeECC200Interleaved(t *testing.T) {
	si := LookupBySize(144, 144)
	require.NotNil(t, si)
	data := make([]byte, si.DataCapacity)
	for i := range data {
		data[i] = byte(i * 7)
	}
	full, err := EncodeECC200(data, si)
	require.NoError(t, err)
	require.Len(t, full, si.TotalCodewords())
	assert.Equal(t, data, full[:si.DataCapacity])

	// A reader takes check word column j of the 144x144 symbol as block
	// (j+8) mod 10: the two short blocks own the first two columns.
	field := reedsolomon.DataMatrixField256
	for column := 0; column < 10; column++ {
		block := (column + 8) % 10
		var word []int
		for d := block; d < si.DataCapacity; d += 10 {
			word = append(word, int(data[d]))
		}
		require.Len(t, word, si.DataLengthForBlock(block))
		for k := si.DataCapacity + column; k < len(full); k += 10 {
			word = append(word, int(full[k]))
		}
		require.Len(t, word, si.DataLengthForBlock(block)+62)
		for i := 0; i < 62; i++ {
			root := field.Exp(i + field.GeneratorBase())
			assert.Zero(t, field.EvaluateAt(word, root), "column %d block %d syndrome %d", column, block, i)
		}
	}

	var short []int
	for d := 8; d < si.DataCapacity; d += 10 {
		short = append(short, int(data[d]))
	}
	ecc := rsEncoder.Encode(short, 62)
	assert.Equal(t, byte(ecc[0]), full[si.DataCapacity])
	assert.Equal(t, byte(ecc[1]), full[si.DataCapacity+10])
}

func TestEncodeECC200BlockOrder(t *testing.T) {
	// Every other interleaved symbol keeps block b in check word column b.
	for _, size := range [][2]int{{64, 64}, {120, 120}, {132, 132}} {
		si := LookupBySize(size[0], size[1])
		require.NotNil(t, si)
		blocks := si.InterleavedBlockCount()
		require.Zero(t, si.DataCapacity%blocks)
		data := make([]byte, si.DataCapacity)
		for i := range data {
			data[i] = byte(i*13 + 5)
		}
		full, err := EncodeECC200(data, si)
		require.NoError(t, err)
		for block := 0; block < blocks; block++ {
			var words []int
			for d := block; d < si.DataCapacity; d += blocks {
				words = append(words, int(data[d]))
			}
			ecc := rsEncoder.Encode(words, si.ErrorLengthForBlock(block))
			for i, e := range ecc {
				assert.Equal(t, byte(e), full[si.DataCapacity+block+i*blocks], "%s block %d", si, block)
			}
		}
	}
}

func symbolString(t *testing.T, msg string, shape SymbolShapeHint) string {
	t.Helper()
	m, _, err := Encode([]byte(msg), shape, NoECI)
	require.NoError(t, err)
	var sb strings.Builder
	for _, row := range m.Rows() {
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestEncodeSymbol(t *testing.T) {
	want := "" +
		"#.#.#.#.#.\n" +
		"##..#.##.#\n" +
		"##.....#..\n" +
		"##...###.#\n" +
		"##....#...\n" +
		"#.....####\n" +
		"###.##....\n" +
		"####.##..#\n" +
		"#..###.#..\n" +
		"##########\n"
	assert.Equal(t, want, symbolString(t, "123456", ShapeHintForceNone))

	want = "" +
		"#.#.#.#.#.#.\n" +
		"#.##.##.#.##\n" +
		"##...##.#...\n" +
		"###.##.##..#\n" +
		"####...#....\n" +
		"####.#######\n" +
		"#..##.....#.\n" +
		"##..####.###\n" +
		"####.....##.\n" +
		"#.#.###..#.#\n" +
		"##.#.##.#.#.\n" +
		"############\n"
	assert.Equal(t, want, symbolString(t, "Hello", ShapeHintForceNone))
}

func TestEncodeFinderPatterns(t *testing.T) {
	for _, msg := range []string{"A", strings.Repeat("DATA MATRIX ", 20), strings.Repeat("x", 600)} {
		m, si, err := Encode([]byte(msg), ShapeHintForceNone, NoECI)
		require.NoError(t, err)
		regionW := si.DataRegionSizeColumns + 2
		regionH := si.DataRegionSizeRows + 2
		for oy := 0; oy < m.Height(); oy += regionH {
			for ox := 0; ox < m.Width(); ox += regionW {
				for y := 0; y < regionH; y++ {
					assert.True(t, m.Get(ox, oy+y), "solid left edge")
					assert.Equal(t, y%2 == 1 || y == regionH-1, m.Get(ox+regionW-1, oy+y), "right clock track")
				}
				for x := 0; x < regionW; x++ {
					assert.True(t, m.Get(ox+x, oy+regionH-1), "solid bottom edge")
					assert.Equal(t, x%2 == 0, m.Get(ox+x, oy), "top clock track")
				}
			}
		}
	}
}

func TestEncodeRectangle(t *testing.T) {
	m, si, err := Encode([]byte("Hello"), ShapeHintForceRectangle, NoECI)
	require.NoError(t, err)
	assert.True(t, si.Rectangular)
	assert.Equal(t, 18, m.Width())
	assert.Equal(t, 8, m.Height())
}

func TestPlaceCodewordsCoversMappingMatrix(t *testing.T) {
	for i := range symbols {
		si := &symbols[i]
		t.Run(si.String(), func(t *testing.T) {
			cols, rows := si.MappingMatrixColumns(), si.MappingMatrixRows()
			full := make([]byte, si.TotalCodewords())
			for j := range full {
				full[j] = 0xff
			}
			m := placeCodewords(full, cols, rows)
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					fixed := (x == cols-1 && y == rows-2) || (x == cols-2 && y == rows-1)
					if !fixed {
						assert.True(t, m.dark(x, y), "(%d,%d)", x, y)
					}
				}
			}
		})
	}
}
