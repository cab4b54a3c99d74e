package oned

import (
	"testing"

	"github.com/ericlevine/quickcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode128Values(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		forceSet string
		want     []int
	}{
		{"all digits use set C", "123456", "", []int{105, 12, 34, 56, 44, 106}},
		{"text uses set B", "Wikipedia", "", []int{104, 55, 73, 75, 73, 80, 69, 68, 73, 65, 88, 106}},
		{"latch to C for a digit run", "ABC123456", "", []int{104, 33, 34, 35, 99, 12, 34, 56, 23, 106}},
		{"short digit run stays in B", "AB12", "", []int{104, 33, 34, 17, 18, 19, 106}},
		{"control character via shift", "\x01a", "", []int{104, 98, 65, 65, 12, 106}},
		{"latin-1 via FNC4", "été", "", []int{104, 100, 73, 84, 100, 73, 28, 106}},
		{"forced set A", "ABC", "A", []int{103, 33, 34, 35, 0, 106}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Code128Values(tc.contents, tc.forceSet)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCode128OddDigitsMinimal(t *testing.T) {
	// Either B+latch or C+latch works for seven digits; both take six
	// symbols before the checksum.
	got, err := Code128Values("1234567", "")
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestCode128Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		forceSet string
	}{
		{"empty", "", ""},
		{"outside latin-1", "€", ""},
		{"odd digits in forced C", "12345", "C"},
		{"letters in forced C", "12AB", "C"},
		{"lowercase in forced A", "abc", "A"},
		{"unknown set", "abc", "D"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Code128Values(tc.contents, tc.forceSet)
			assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
		})
	}
}

func TestCode128Encode(t *testing.T) {
	canonical, grid, err := NewCode128Encoder().Encode("123456", nil)
	require.NoError(t, err)
	assert.Equal(t, "123456", canonical)
	// start + 3 data + checksum at 11 modules each, stop at 13
	require.Equal(t, 5*11+13, grid.Width())
	m := modules(t, grid)
	assert.Equal(t, "11010011100", m[:11], "start C")
	assert.Equal(t, "1100011101011", m[len(m)-13:], "stop")
}

func TestCode128ForceSetFromConfig(t *testing.T) {
	cfg := quickcodes.DefaultRenderConfig()
	cfg.Code128.ForceSet = "B"
	_, grid, err := NewCode128Encoder().Encode("123456", &cfg)
	require.NoError(t, err)
	// start B + 6 digits + checksum + stop
	assert.Equal(t, 8*11+13, grid.Width())
}
