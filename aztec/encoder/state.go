package encoder

import (
	"fmt"
	"strconv"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/bitutil"
)

// token is one element of the output stream, linked to the previous one
// so that states sharing a prefix share its tokens.
type token struct {
	prev *token

	value, bitCount int

	// binary shift of text[binaryStart:binaryStart+binaryCount]
	binaryStart, binaryCount int
}

func (t *token) add(value, bitCount int) *token {
	return &token{prev: t, value: value, bitCount: bitCount}
}

func (t *token) addBinaryShift(start, count int) *token {
	return &token{prev: t, binaryStart: start, binaryCount: count}
}

func (t *token) appendTo(bits *bitutil.BitArray, text []byte) {
	if t.binaryCount == 0 {
		bits.AppendBits(uint32(t.value), t.bitCount)
		return
	}
	n := t.binaryCount
	for i := 0; i < n; i++ {
		// A run of 32-62 bytes is sent as two short runs; longer runs
		// use the 11-bit length form.
		if i == 0 || (i == 31 && n <= 62) {
			bits.AppendBits(31, 5) // B/S
			switch {
			case n > 62:
				bits.AppendBits(uint32(n-31), 16)
			case i == 0:
				bits.AppendBits(uint32(min(n, 31)), 5)
			default:
				bits.AppendBits(uint32(n-31), 5)
			}
		}
		bits.AppendBits(uint32(text[t.binaryStart+i]), 8)
	}
}

// maxBinaryShift is the longest run one binary shift can carry.
const maxBinaryShift = 2047 + 31

// state is a partial encoding: the tokens so far, the mode it ends in and
// the bytes of an open binary shift. States are values and never mutated.
type state struct {
	tok              *token
	mode             int
	binaryShiftBytes int
	bitCount         int
	binaryShiftCost  int
}

var initialState = state{mode: modeUpper}

func newState(tok *token, mode, binaryBytes, bitCount int) state {
	return state{
		tok:              tok,
		mode:             mode,
		binaryShiftBytes: binaryBytes,
		bitCount:         bitCount,
		binaryShiftCost:  binaryShiftCost(binaryBytes),
	}
}

// binaryShiftCost returns the header bits of a binary shift of n bytes.
func binaryShiftCost(n int) int {
	switch {
	case n > 62:
		return 21
	case n > 31:
		return 20
	case n > 0:
		return 10
	}
	return 0
}

// appendFLGn announces an ECI: P/S FLG(n), the digit count and the
// digits.
func (s state) appendFLGn(eci int) (state, error) {
	if eci < 0 || eci > 999999 {
		return state{}, fmt.Errorf("%w: ECI value %d out of range", quickcodes.ErrInvalidData, eci)
	}
	r := s.shiftAndAppend(modePunct, 0)
	digits := strconv.Itoa(eci)
	tok := r.tok.add(len(digits), 3)
	for _, d := range digits {
		tok = tok.add(int(d-'0')+2, 4)
	}
	return newState(tok, r.mode, 0, r.bitCount+3+4*len(digits)), nil
}

// latchAndAppend latches to mode, if needed, and appends value.
func (s state) latchAndAppend(mode, value int) state {
	tok := s.tok
	bitCount := s.bitCount
	if mode != s.mode {
		latch := latchTable[s.mode][mode]
		tok = tok.add(latch&0xffff, latch>>16)
		bitCount += latch >> 16
	}
	tok = tok.add(value, modeBits[mode])
	return newState(tok, mode, 0, bitCount+modeBits[mode])
}

// shiftAndAppend shifts to mode for one character. Shifts only exist into
// upper and punctuation mode, both with 5-bit codes.
func (s state) shiftAndAppend(mode, value int) state {
	width := modeBits[s.mode]
	tok := s.tok.add(shiftTable[s.mode][mode], width).add(value, 5)
	return newState(tok, s.mode, 0, s.bitCount+width+5)
}

// addBinaryShiftChar adds text[index] to the open binary shift, starting
// one if needed. Digit and punctuation mode have no B/S code, so they
// latch to upper first.
func (s state) addBinaryShiftChar(index int) state {
	tok := s.tok
	mode := s.mode
	bitCount := s.bitCount
	if mode == modePunct || mode == modeDigit {
		latch := latchTable[mode][modeUpper]
		tok = tok.add(latch&0xffff, latch>>16)
		bitCount += latch >> 16
		mode = modeUpper
	}
	delta := 8
	switch s.binaryShiftBytes {
	case 0, 31:
		delta = 18
	case 62:
		delta = 9
	}
	r := newState(tok, mode, s.binaryShiftBytes+1, bitCount+delta)
	if r.binaryShiftBytes == maxBinaryShift {
		r = r.endBinaryShift(index + 1)
	}
	return r
}

// endBinaryShift closes an open binary shift that ends before index.
func (s state) endBinaryShift(index int) state {
	if s.binaryShiftBytes == 0 {
		return s
	}
	tok := s.tok.addBinaryShift(index-s.binaryShiftBytes, s.binaryShiftBytes)
	return newState(tok, s.mode, 0, s.bitCount)
}

// isBetterThanOrEqualTo reports whether s, latched into other's mode, is
// no longer than other in every continuation.
func (s state) isBetterThanOrEqualTo(other state) bool {
	n := s.bitCount + latchTable[s.mode][other.mode]>>16
	switch {
	case s.binaryShiftBytes < other.binaryShiftBytes:
		n += other.binaryShiftCost - s.binaryShiftCost
	case s.binaryShiftBytes > other.binaryShiftBytes && other.binaryShiftBytes > 0:
		n += 10
	}
	return n <= other.bitCount
}

func (s state) toBitArray(text []byte) *bitutil.BitArray {
	var tokens []*token
	for t := s.endBinaryShift(len(text)).tok; t != nil; t = t.prev {
		tokens = append(tokens, t)
	}
	bits := bitutil.NewBitArray(0)
	for i := len(tokens) - 1; i >= 0; i-- {
		tokens[i].appendTo(bits, text)
	}
	return bits
}
