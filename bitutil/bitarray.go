// Package bitutil provides the bit stream and module matrix types shared by
// the symbology encoders.
package bitutil

import (
	"strings"
)

const loadFactor = 0.75

// BitArray is a growable sequence of bits packed into uint32 words. Encoders
// use it to assemble data streams before they are split into codewords.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a BitArray holding size unset bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, most
// significant first.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	next := ba.size
	ba.ensureCapacity(next + numBits)
	for left := numBits - 1; left >= 0; left-- {
		if value&(1<<uint(left)) != 0 {
			ba.bits[next/32] |= 1 << uint(next&0x1F)
		}
		next++
	}
	ba.size = next
}

// ReadBits returns numBits bits starting at offset as an integer, most
// significant first. Bits past the end read as zero.
func (ba *BitArray) ReadBits(offset, numBits int) int {
	v := 0
	for i := 0; i < numBits; i++ {
		v <<= 1
		if offset+i < ba.size && ba.Get(offset+i) {
			v |= 1
		}
	}
	return v
}

// String returns the bits as 'X' and '.' grouped in bytes.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
