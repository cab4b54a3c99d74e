// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ericlevine/quickcodes"
)

// Encoding mode constants for the high-level encoder.
const (
	modeASCII = iota
	modeC40
	modeText
	modeX12
	modeEDIFACT
	modeBase256
)

// NoECI leaves the message in the default ISO-8859-1 interpretation.
const NoECI = -1

// Special codewords.
const (
	asciiPad        = 129
	latchToC40      = 230
	latchToBase256  = 231
	asciiUpperShift = 235
	macro05         = 236
	macro06         = 237
	latchToX12      = 238
	latchToText     = 239
	latchToEDIFACT  = 240
	eciCodeword     = 241
	unlatchC40      = 254 // also ends Text and X12
)

var (
	macro05Header = []byte("[)>\x1E05\x1D")
	macro06Header = []byte("[)>\x1E06\x1D")
	macroTrailer  = []byte("\x1E\x04")
)

type modeEncoder interface {
	mode() int
	encode(c *encoderContext)
}

// EncodeHighLevel compacts msg, a sequence of 8-bit characters, into data
// codewords padded to the capacity of the smallest symbol allowed by
// shape. An eci other than NoECI is announced before the data. Messages
// wrapped in the 05 or 06 macro envelope are shortened to the macro
// codeword.
func EncodeHighLevel(msg []byte, shape SymbolShapeHint, eci int) ([]byte, error) {
	codewords, _, err := encodeHighLevel(msg, shape, eci)
	return codewords, err
}

func encodeHighLevel(msg []byte, shape SymbolShapeHint, eci int) ([]byte, *SymbolInfo, error) {
	if len(msg) == 0 {
		return nil, nil, fmt.Errorf("%w: empty Data Matrix message", quickcodes.ErrInvalidData)
	}
	encoders := [...]modeEncoder{
		asciiEncoder{},
		c40Encoder{text: false},
		c40Encoder{text: true},
		x12Encoder{},
		edifactEncoder{},
		base256Encoder{},
	}

	ctx := newEncoderContext(msg, shape)
	if len(msg) >= len(macro05Header)+len(macroTrailer) && bytes.HasSuffix(msg, macroTrailer) {
		switch {
		case bytes.HasPrefix(msg, macro05Header):
			ctx.writeCodewords(macro05)
		case bytes.HasPrefix(msg, macro06Header):
			ctx.writeCodewords(macro06)
		}
		if ctx.codewordCount() > 0 {
			ctx.skipAtEnd = len(macroTrailer)
			ctx.pos = len(macro05Header)
		}
	}
	if eci != NoECI {
		ctx.writeCodewords(eciCodewords(eci)...)
	}

	mode := modeASCII
	for ctx.hasMoreCharacters() {
		start := ctx.pos
		encoders[mode].encode(ctx)
		if mode != modeASCII && ctx.pos == start {
			ctx.stalled = true
		}
		if ctx.newMode >= 0 {
			mode = ctx.newMode
			ctx.resetEncoderSignal()
		}
	}

	length := ctx.codewordCount()
	ctx.updateSymbolInfo(length)
	capacity := ctx.symbolInfo.DataCapacity
	if length > capacity {
		_, err := Lookup(length, shape)
		return nil, nil, err
	}
	if length < capacity && mode != modeASCII && mode != modeBase256 && mode != modeEDIFACT {
		ctx.writeCodewords(unlatchC40)
	}
	return PadCodewords(ctx.codewords, capacity), ctx.symbolInfo, nil
}

// eciCodewords encodes an ECI designator (ISO/IEC 16022 5.4.1).
func eciCodewords(v int) []byte {
	switch {
	case v <= 126:
		return []byte{eciCodeword, byte(v + 1)}
	case v <= 16382:
		v -= 127
		return []byte{eciCodeword, byte(v/254 + 128), byte(v%254 + 1)}
	default:
		v -= 16383
		return []byte{eciCodeword, byte(v/64516 + 192), byte((v/254)%254 + 1), byte(v%254 + 1)}
	}
}

// randomize253State scrambles pad codewords after the first by their
// 1-based position.
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// PadCodewords pads codewords to capacity: one plain pad codeword, then
// 253-state randomized pads.
func PadCodewords(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, len(codewords), capacity)
	copy(result, codewords)
	result = append(result, asciiPad)
	for len(result) < capacity {
		result = append(result, randomize253State(asciiPad, len(result)+1))
	}
	return result
}

func isDigit(ch byte) bool         { return ch >= '0' && ch <= '9' }
func isExtendedASCII(ch byte) bool { return ch >= 128 }
func isNativeC40(ch byte) bool     { return ch == ' ' || isDigit(ch) || (ch >= 'A' && ch <= 'Z') }
func isNativeText(ch byte) bool    { return ch == ' ' || isDigit(ch) || (ch >= 'a' && ch <= 'z') }
func isX12TermSep(ch byte) bool    { return ch == '\r' || ch == '*' || ch == '>' }
func isNativeX12(ch byte) bool     { return isX12TermSep(ch) || isNativeC40(ch) }
func isNativeEDIFACT(ch byte) bool { return ch >= ' ' && ch <= '^' }

func consecutiveDigitCount(msg []byte, start int) int {
	i := start
	for i < len(msg) && isDigit(msg[i]) {
		i++
	}
	return i - start
}

// lookAheadTest picks the mode that encodes the text from start most
// compactly, following the look-ahead algorithm of ISO/IEC 16022 Annex P.
func lookAheadTest(msg []byte, start, current int) int {
	next := lookAheadTestIntern(msg, start, current)
	// X12 and EDIFACT have no shift, so the next triplet or quad must
	// lie entirely in their set.
	switch next {
	case modeX12:
		if !allNative(msg[start:min(start+3, len(msg))], isNativeX12) {
			return modeASCII
		}
	case modeEDIFACT:
		if !allNative(msg[start:min(start+4, len(msg))], isNativeEDIFACT) {
			return modeASCII
		}
	}
	return next
}

func allNative(chars []byte, native func(byte) bool) bool {
	for _, ch := range chars {
		if !native(ch) {
			return false
		}
	}
	return true
}

func lookAheadTestIntern(msg []byte, start, current int) int {
	if start >= len(msg) {
		return current
	}
	var counts [6]float32
	if current == modeASCII {
		counts = [6]float32{0, 1, 1, 1, 1, 1.25}
	} else {
		counts = [6]float32{1, 2, 2, 2, 2, 2.25}
		counts[current] = 0
	}

	processed := 0
	for {
		if start+processed == len(msg) {
			ints, mins, minimum := findMinimums(&counts)
			if ints[modeASCII] == minimum {
				return modeASCII
			}
			if minCount(mins) == 1 {
				for _, m := range []int{modeBase256, modeEDIFACT, modeText, modeX12} {
					if mins[m] > 0 {
						return m
					}
				}
			}
			return modeC40
		}

		ch := msg[start+processed]
		processed++

		switch {
		case isDigit(ch):
			counts[modeASCII] += 0.5
		case isExtendedASCII(ch):
			counts[modeASCII] = ceil32(counts[modeASCII]) + 2
		default:
			counts[modeASCII] = ceil32(counts[modeASCII]) + 1
		}

		switch {
		case isNativeC40(ch):
			counts[modeC40] += 2.0 / 3.0
		case isExtendedASCII(ch):
			counts[modeC40] += 8.0 / 3.0
		default:
			counts[modeC40] += 4.0 / 3.0
		}

		switch {
		case isNativeText(ch):
			counts[modeText] += 2.0 / 3.0
		case isExtendedASCII(ch):
			counts[modeText] += 8.0 / 3.0
		default:
			counts[modeText] += 4.0 / 3.0
		}

		switch {
		case isNativeX12(ch):
			counts[modeX12] += 2.0 / 3.0
		case isExtendedASCII(ch):
			counts[modeX12] += 13.0 / 3.0
		default:
			counts[modeX12] += 10.0 / 3.0
		}

		switch {
		case isNativeEDIFACT(ch):
			counts[modeEDIFACT] += 3.0 / 4.0
		case isExtendedASCII(ch):
			counts[modeEDIFACT] += 17.0 / 4.0
		default:
			counts[modeEDIFACT] += 13.0 / 4.0
		}

		counts[modeBase256]++

		if processed < 4 {
			continue
		}
		ints, _, _ := findMinimums(&counts)
		a, c40, txt, x12, edf, b256 := ints[modeASCII], ints[modeC40], ints[modeText], ints[modeX12], ints[modeEDIFACT], ints[modeBase256]
		switch {
		case a < min(b256, c40, txt, x12, edf):
			return modeASCII
		case b256 < a || b256+1 < min(c40, txt, x12, edf):
			return modeBase256
		case edf+1 < min(b256, c40, txt, x12, a):
			return modeEDIFACT
		case txt+1 < min(b256, c40, edf, x12, a):
			return modeText
		case x12+1 < min(b256, c40, edf, txt, a):
			return modeX12
		case c40+1 < min(a, b256, edf, txt):
			if c40 < x12 {
				return modeC40
			}
			if c40 == x12 {
				for p := start + processed + 1; p < len(msg); p++ {
					if isX12TermSep(msg[p]) {
						return modeX12
					}
					if !isNativeX12(msg[p]) {
						break
					}
				}
				return modeC40
			}
		}
	}
}

func ceil32(f float32) float32 { return float32(math.Ceil(float64(f))) }

// findMinimums rounds every count up and marks the modes sharing the
// smallest result.
func findMinimums(counts *[6]float32) (ints [6]int, mins [6]int, minimum int) {
	minimum = math.MaxInt
	for i, f := range counts {
		ints[i] = int(ceil32(f))
		if ints[i] < minimum {
			minimum = ints[i]
			mins = [6]int{}
		}
		if ints[i] == minimum {
			mins[i]++
		}
	}
	return ints, mins, minimum
}

func minCount(mins [6]int) int {
	n := 0
	for _, m := range mins {
		n += m
	}
	return n
}

// asciiEncoder encodes one character or digit pair per step and decides
// when to latch into another mode.
type asciiEncoder struct{}

func (asciiEncoder) mode() int { return modeASCII }

func (e asciiEncoder) encode(c *encoderContext) {
	stalled := c.stalled
	c.stalled = false
	if consecutiveDigitCount(c.msg, c.pos) >= 2 {
		pair := (c.msg[c.pos]-'0')*10 + c.msg[c.pos+1] - '0'
		c.writeCodewords(pair + 130)
		c.pos += 2
		return
	}
	ch := c.current()
	next := e.mode()
	if !stalled {
		next = lookAheadTest(c.msg, c.pos, e.mode())
	}
	if next != e.mode() {
		switch next {
		case modeBase256:
			c.writeCodewords(latchToBase256)
		case modeC40:
			c.writeCodewords(latchToC40)
		case modeX12:
			c.writeCodewords(latchToX12)
		case modeText:
			c.writeCodewords(latchToText)
		case modeEDIFACT:
			c.writeCodewords(latchToEDIFACT)
		}
		c.signalEncoderChange(next)
		return
	}
	if isExtendedASCII(ch) {
		c.writeCodewords(asciiUpperShift, ch-128+1)
	} else {
		c.writeCodewords(ch + 1)
	}
	c.pos++
}
