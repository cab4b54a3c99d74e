package datamatrix

import (
	"strings"
	"testing"

	"github.com/ericlevine/quickcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSizes(t *testing.T) {
	tests := []struct {
		contents      string
		shape         quickcodes.DataMatrixShape
		width, height int
	}{
		{"123456", quickcodes.DataMatrixAnyShape, 10, 10},
		{"1234567", quickcodes.DataMatrixAnyShape, 12, 12},
		{"Hello", quickcodes.DataMatrixAnyShape, 12, 12},
		{"Hello", quickcodes.DataMatrixRectangle, 18, 8},
		{"ABC>ABC123>AB", quickcodes.DataMatrixAnyShape, 32, 8},
		{"ABC>ABC123>AB", quickcodes.DataMatrixSquare, 16, 16},
	}
	for _, tc := range tests {
		t.Run(tc.contents, func(t *testing.T) {
			cfg := quickcodes.DefaultRenderConfig()
			cfg.DataMatrix.Shape = tc.shape
			data, grid, err := NewEncoder().Encode(tc.contents, &cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.contents, data)
			assert.True(t, grid.IsMatrix())
			assert.Equal(t, tc.width, grid.Width())
			assert.Equal(t, tc.height, grid.Height())
		})
	}
}

func TestEncodeFinder(t *testing.T) {
	_, grid, err := NewEncoder().Encode("123456", nil)
	require.NoError(t, err)
	rows := grid.Rows()
	for i := 0; i < 10; i++ {
		assert.True(t, rows[i][0], "left edge row %d", i)
		assert.True(t, rows[9][i], "bottom edge column %d", i)
		assert.Equal(t, i%2 == 0, rows[0][i], "top clock column %d", i)
		assert.Equal(t, i%2 == 1, rows[i][9], "right clock row %d", i)
	}
}

func TestEncodeCharacterSet(t *testing.T) {
	_, plain, err := NewEncoder().Encode("Grüße", nil)
	require.NoError(t, err)

	cfg := quickcodes.DefaultRenderConfig()
	cfg.CharacterSet = "UTF-8"
	_, utf8, err := NewEncoder().Encode("Grüße", &cfg)
	require.NoError(t, err)
	assert.False(t, plain.Equal(utf8))

	_, _, err = NewEncoder().Encode("日本", nil)
	require.NoError(t, err)

	cfg.CharacterSet = "ISO-8859-1"
	_, _, err = NewEncoder().Encode("日本", &cfg)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	cfg.CharacterSet = "klingon"
	_, _, err = NewEncoder().Encode("abc", &cfg)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

func TestEncodeInvalid(t *testing.T) {
	_, _, err := NewEncoder().Encode("", nil)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	cfg := quickcodes.DefaultRenderConfig()
	cfg.DataMatrix.Shape = quickcodes.DataMatrixRectangle
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	_, _, err = NewEncoder().Encode(string(long), &cfg)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)
}

func TestEncodeDeterministic(t *testing.T) {
	_, a, err := NewEncoder().Encode("deterministic output", nil)
	require.NoError(t, err)
	_, b, err := NewEncoder().Encode("deterministic output", nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEncodeCapacityBoundary(t *testing.T) {
	// digit pairs take one codeword each; 144x144 holds 1558
	_, grid, err := NewEncoder().Encode(strings.Repeat("12", 1558), nil)
	require.NoError(t, err)
	assert.Equal(t, 144, grid.Width())

	_, _, err = NewEncoder().Encode(strings.Repeat("12", 1558)+"3", nil)
	assert.ErrorIs(t, err, quickcodes.ErrGeneration)
}
