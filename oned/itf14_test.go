package oned

import (
	"testing"

	"github.com/ericlevine/quickcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestITF14CheckDigit(t *testing.T) {
	got, err := ITF14CheckDigit("0123456789012")
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = ITF14CheckDigit("1234567890123")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestITF14Encode(t *testing.T) {
	canonical, grid, err := NewITF14Encoder().Encode("0123456789012", nil)
	require.NoError(t, err)
	assert.Equal(t, "01234567890128", canonical)
	m := modules(t, grid)
	assert.Equal(t,
		"10101001011011010010011001010110100101100101101011011010010011010010110010100101101101001001101010011011101",
		m)
	assert.Equal(t, "1010", m[:4])
	assert.Equal(t, "11101", m[len(m)-5:])
}

func TestITF14Invalid(t *testing.T) {
	for _, contents := range []string{"12345", "01234567890128", "01234567890AB"} {
		t.Run(contents, func(t *testing.T) {
			_, _, err := NewITF14Encoder().Encode(contents, nil)
			assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
		})
	}
}
