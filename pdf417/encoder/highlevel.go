// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"math/big"

	"github.com/ericlevine/quickcodes"
)

const (
	textCompaction = iota
	byteCompaction
	numericCompaction
)

// Text compaction sub-modes.
const (
	submodeAlpha = iota
	submodeLower
	submodeMixed
	submodePunctuation
)

// Mode latches, shifts and ECI designators.
const (
	latchToText       = 900
	latchToBytePadded = 901
	latchToNumeric    = 902
	shiftToByte       = 913
	latchToByte       = 924
	eciUserDefined    = 925
	eciGeneralPurpose = 926
	eciCharset        = 927
)

// Compaction forces one compaction mode for the whole message.
type Compaction int

const (
	CompactionAuto Compaction = iota
	CompactionText
	CompactionByte
	CompactionNumeric
)

func (c Compaction) String() string {
	switch c {
	case CompactionAuto:
		return "auto"
	case CompactionText:
		return "text"
	case CompactionByte:
		return "byte"
	case CompactionNumeric:
		return "numeric"
	}
	return fmt.Sprintf("Compaction(%d)", int(c))
}

// NoECI leaves the message in the default ISO-8859-1 interpretation.
const NoECI = -1

var textMixedRaw = [...]byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

var textPunctuationRaw = [...]byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

// Inverse lookups, -1 where the byte has no value in the sub-mode.
var mixed, punctuation [256]int

func init() {
	for i := range mixed {
		mixed[i] = -1
		punctuation[i] = -1
	}
	for i, b := range textMixedRaw {
		if b > 0 {
			mixed[b] = i
		}
	}
	for i, b := range textPunctuationRaw {
		if b > 0 {
			punctuation[b] = i
		}
	}
}

// EncodeHighLevel compacts msg, a sequence of 8-bit characters, into data
// codewords following annex P of ISO/IEC 15438. An eci other than NoECI is
// announced before the data.
func EncodeHighLevel(msg []byte, compaction Compaction, eci int) ([]int, error) {
	if len(msg) == 0 {
		return nil, fmt.Errorf("%w: empty PDF417 message", quickcodes.ErrInvalidData)
	}
	if err := checkCompaction(msg, compaction); err != nil {
		return nil, err
	}

	cw := make([]int, 0, len(msg))
	if eci != NoECI {
		var err error
		if cw, err = appendECI(cw, eci); err != nil {
			return nil, err
		}
	}

	switch compaction {
	case CompactionText:
		cw, _ = encodeText(cw, msg, submodeAlpha)
	case CompactionByte:
		cw = encodeBinary(cw, msg, byteCompaction)
	case CompactionNumeric:
		cw = append(cw, latchToNumeric)
		cw = encodeNumeric(cw, msg)
	default:
		cw = encodeAuto(cw, msg)
	}
	return cw, nil
}

func checkCompaction(msg []byte, compaction Compaction) error {
	switch compaction {
	case CompactionAuto, CompactionByte:
		return nil
	case CompactionText:
		for i, ch := range msg {
			if !isText(ch) {
				return fmt.Errorf("%w: byte 0x%02x at position %d is not text compactable", quickcodes.ErrInvalidData, ch, i)
			}
		}
		return nil
	case CompactionNumeric:
		for i, ch := range msg {
			if !isDigit(ch) {
				return fmt.Errorf("%w: non-digit %q at position %d in numeric compaction", quickcodes.ErrInvalidData, ch, i)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown PDF417 compaction %d", quickcodes.ErrInvalidData, int(compaction))
}

// appendECI writes an ECI designator (ISO/IEC 15438 5.5).
func appendECI(cw []int, eci int) ([]int, error) {
	switch {
	case eci >= 0 && eci < 900:
		return append(cw, eciCharset, eci), nil
	case eci >= 900 && eci < 810900:
		return append(cw, eciGeneralPurpose, eci/900-1, eci%900), nil
	case eci >= 810900 && eci < 811800:
		return append(cw, eciUserDefined, eci-810900), nil
	}
	return nil, fmt.Errorf("%w: ECI value %d out of range", quickcodes.ErrInvalidData, eci)
}

func encodeAuto(cw []int, msg []byte) []int {
	mode := textCompaction
	submode := submodeAlpha
	for p := 0; p < len(msg); {
		n := consecutiveDigitCount(msg, p)
		if n >= 13 {
			cw = append(cw, latchToNumeric)
			mode = numericCompaction
			submode = submodeAlpha
			cw = encodeNumeric(cw, msg[p:p+n])
			p += n
			continue
		}
		t := consecutiveTextCount(msg, p)
		if t >= 5 || n == len(msg) {
			if mode != textCompaction {
				cw = append(cw, latchToText)
				mode = textCompaction
				submode = submodeAlpha
			}
			cw, submode = encodeText(cw, msg[p:p+t], submode)
			p += t
			continue
		}
		b := consecutiveBinaryCount(msg, p)
		if b == 0 {
			b = 1
		}
		if b == 1 && mode == textCompaction {
			// shift for a single byte, the text sub-mode survives
			cw = encodeBinary(cw, msg[p:p+1], textCompaction)
		} else {
			cw = encodeBinary(cw, msg[p:p+b], mode)
			mode = byteCompaction
			submode = submodeAlpha
		}
		p += b
	}
	return cw
}

// encodeText appends msg using Text Compaction (ISO/IEC 15438 4.4.2) and
// returns the sub-mode in effect at the end.
func encodeText(cw []int, msg []byte, submode int) ([]int, int) {
	tmp := make([]int, 0, len(msg)*2)
	for idx := 0; idx < len(msg); {
		ch := msg[idx]
		switch submode {
		case submodeAlpha:
			switch {
			case isAlphaUpper(ch):
				if ch == ' ' {
					tmp = append(tmp, 26)
				} else {
					tmp = append(tmp, int(ch-'A'))
				}
			case isAlphaLower(ch):
				submode = submodeLower
				tmp = append(tmp, 27) // ll
				continue
			case isMixed(ch):
				submode = submodeMixed
				tmp = append(tmp, 28) // ml
				continue
			default:
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		case submodeLower:
			switch {
			case isAlphaLower(ch):
				if ch == ' ' {
					tmp = append(tmp, 26)
				} else {
					tmp = append(tmp, int(ch-'a'))
				}
			case isAlphaUpper(ch):
				tmp = append(tmp, 27, int(ch-'A')) // as
			case isMixed(ch):
				submode = submodeMixed
				tmp = append(tmp, 28) // ml
				continue
			default:
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		case submodeMixed:
			switch {
			case isMixed(ch):
				tmp = append(tmp, mixed[ch])
			case isAlphaUpper(ch):
				submode = submodeAlpha
				tmp = append(tmp, 28) // al
				continue
			case isAlphaLower(ch):
				submode = submodeLower
				tmp = append(tmp, 27) // ll
				continue
			default:
				if idx+1 < len(msg) && isPunctuation(msg[idx+1]) {
					submode = submodePunctuation
					tmp = append(tmp, 25) // pl
					continue
				}
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		default:
			if !isPunctuation(ch) {
				submode = submodeAlpha
				tmp = append(tmp, 29) // al
				continue
			}
			tmp = append(tmp, punctuation[ch])
		}
		idx++
	}

	for i := 0; i+1 < len(tmp); i += 2 {
		cw = append(cw, tmp[i]*30+tmp[i+1])
	}
	if len(tmp)%2 != 0 {
		cw = append(cw, tmp[len(tmp)-1]*30+29) // ps
	}
	return cw, submode
}

// encodeBinary appends data using Byte Compaction (ISO/IEC 15438 4.4.3).
// A single byte in text mode uses the byte shift instead of a latch.
func encodeBinary(cw []int, data []byte, startMode int) []int {
	switch {
	case len(data) == 1 && startMode == textCompaction:
		cw = append(cw, shiftToByte)
	case len(data)%6 == 0:
		cw = append(cw, latchToByte)
	default:
		cw = append(cw, latchToBytePadded)
	}

	idx := 0
	var chars [5]int
	for ; len(data)-idx >= 6; idx += 6 {
		var t int64
		for i := 0; i < 6; i++ {
			t = t<<8 | int64(data[idx+i])
		}
		for i := 4; i >= 0; i-- {
			chars[i] = int(t % 900)
			t /= 900
		}
		cw = append(cw, chars[:]...)
	}
	for _, b := range data[idx:] {
		cw = append(cw, int(b))
	}
	return cw
}

var big900 = big.NewInt(900)

// encodeNumeric appends digits using Numeric Compaction (ISO/IEC 15438
// 4.4.4): groups of up to 44 digits, prefixed with 1, in base 900.
func encodeNumeric(cw []int, digits []byte) []int {
	for idx := 0; idx < len(digits); {
		n := min(44, len(digits)-idx)
		v, _ := new(big.Int).SetString("1"+string(digits[idx:idx+n]), 10)
		var group []int
		mod := new(big.Int)
		for v.Sign() > 0 {
			v.DivMod(v, big900, mod)
			group = append(group, int(mod.Int64()))
		}
		for i := len(group) - 1; i >= 0; i-- {
			cw = append(cw, group[i])
		}
		idx += n
	}
	return cw
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaUpper(ch byte) bool {
	return ch == ' ' || (ch >= 'A' && ch <= 'Z')
}

func isAlphaLower(ch byte) bool {
	return ch == ' ' || (ch >= 'a' && ch <= 'z')
}

func isMixed(ch byte) bool {
	return mixed[ch] != -1
}

func isPunctuation(ch byte) bool {
	return punctuation[ch] != -1
}

func isText(ch byte) bool {
	return ch == '\t' || ch == '\n' || ch == '\r' || (ch >= 32 && ch <= 126)
}

func consecutiveDigitCount(msg []byte, start int) int {
	n := 0
	for start+n < len(msg) && isDigit(msg[start+n]) {
		n++
	}
	return n
}

// consecutiveTextCount counts the text compactable characters from start,
// stopping before a run of 13 or more digits.
func consecutiveTextCount(msg []byte, start int) int {
	idx := start
	for idx < len(msg) {
		digits := 0
		for digits < 13 && idx < len(msg) && isDigit(msg[idx]) {
			digits++
			idx++
		}
		if digits >= 13 {
			return idx - start - digits
		}
		if digits > 0 {
			continue
		}
		if !isText(msg[idx]) {
			break
		}
		idx++
	}
	return idx - start
}

// consecutiveBinaryCount counts the characters from start up to the next
// run of 13 or more digits.
func consecutiveBinaryCount(msg []byte, start int) int {
	for idx := start; idx < len(msg); idx++ {
		if consecutiveDigitCount(msg, idx) >= 13 {
			return idx - start
		}
	}
	return len(msg) - start
}
