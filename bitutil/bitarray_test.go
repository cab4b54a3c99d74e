package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBitArray(t *testing.T) {
	ba := NewBitArray(33)
	require.Equal(t, 33, ba.Size())
	for i := 0; i < 33; i++ {
		require.False(t, ba.Get(i), "bit %d", i)
	}
	ba.AppendBit(true)
	assert.True(t, ba.Get(33))
	assert.False(t, ba.Get(32))
}

func TestBitArrayAppendBits(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x5, 3) // 101
	ba.AppendBit(false)
	ba.AppendBits(0xFF, 8)
	require.Equal(t, 12, ba.Size())
	assert.Equal(t, " X.X.XXXX XXXX", ba.String())
}

func TestBitArrayAppendGrowsAcrossWords(t *testing.T) {
	ba := &BitArray{}
	for i := 0; i < 100; i++ {
		ba.AppendBit(i%3 == 0)
	}
	require.Equal(t, 100, ba.Size())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i%3 == 0, ba.Get(i), "bit %d", i)
	}
}

func TestBitArrayReadBits(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x2B, 6) // 101011
	assert.Equal(t, 0x2B, ba.ReadBits(0, 6))
	assert.Equal(t, 0x5, ba.ReadBits(0, 3))
	assert.Equal(t, 0x3, ba.ReadBits(3, 3))
	// reading past the end pads with zeros
	assert.Equal(t, 0x6, ba.ReadBits(4, 3))
}

func TestBitArrayString(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x81, 8)
	assert.Equal(t, " X......X", ba.String())
}
