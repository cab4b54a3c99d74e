// Package encoder implements Aztec symbol encoding.
package encoder

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/bitutil"
)

// Character modes.
const (
	modeUpper = iota
	modeLower
	modeDigit
	modeMixed
	modePunct
	modeCount
)

// modeBits is the code width of each mode.
var modeBits = [modeCount]int{5, 5, 4, 5, 5}

// charMap[mode][b] is the code of byte b in mode, or 0 when the mode has
// no code for it. Code 0 is never a character: it is P/S in the letter,
// digit and mixed modes and FLG(n) in punctuation mode.
var charMap [modeCount][256]int

// latchTable[from][to] holds the codes that latch from one mode to
// another, packed as (total bits << 16) | codes.
var latchTable = [modeCount][modeCount]int{
	modeUpper: {
		modeLower: 5<<16 | 28,
		modeDigit: 5<<16 | 30,
		modeMixed: 5<<16 | 29,
		modePunct: 10<<16 | 29<<5 | 30, // M/L P/L
	},
	modeLower: {
		modeUpper: 9<<16 | 30<<4 | 14, // D/L U/L
		modeDigit: 5<<16 | 30,
		modeMixed: 5<<16 | 29,
		modePunct: 10<<16 | 29<<5 | 30, // M/L P/L
	},
	modeDigit: {
		modeUpper: 4<<16 | 14,
		modeLower: 9<<16 | 14<<5 | 28,           // U/L L/L
		modeMixed: 9<<16 | 14<<5 | 29,           // U/L M/L
		modePunct: 14<<16 | 14<<10 | 29<<5 | 30, // U/L M/L P/L
	},
	modeMixed: {
		modeUpper: 5<<16 | 29,
		modeLower: 5<<16 | 28,
		modeDigit: 10<<16 | 29<<5 | 30, // U/L D/L
		modePunct: 5<<16 | 30,
	},
	modePunct: {
		modeUpper: 5<<16 | 31,
		modeLower: 10<<16 | 31<<5 | 28, // U/L L/L
		modeDigit: 10<<16 | 31<<5 | 30, // U/L D/L
		modeMixed: 10<<16 | 31<<5 | 29, // U/L M/L
	},
}

// shiftTable[from][to] is the single character shift code, or -1.
var shiftTable [modeCount][modeCount]int

func init() {
	charMap[modeUpper][' '] = 1
	for c := 'A'; c <= 'Z'; c++ {
		charMap[modeUpper][c] = int(c-'A') + 2
	}
	charMap[modeLower][' '] = 1
	for c := 'a'; c <= 'z'; c++ {
		charMap[modeLower][c] = int(c-'a') + 2
	}
	charMap[modeDigit][' '] = 1
	for c := '0'; c <= '9'; c++ {
		charMap[modeDigit][c] = int(c-'0') + 2
	}
	charMap[modeDigit][','] = 12
	charMap[modeDigit]['.'] = 13

	mixedTable := []byte{
		0, ' ', 1, 2, 3, 4, 5, 6, 7, '\b', '\t', '\n', 11, '\f', '\r',
		27, 28, 29, 30, 31, '@', '\\', '^', '_', '`', '|', '~', 127,
	}
	for i, c := range mixedTable {
		if i > 0 {
			charMap[modeMixed][c] = i
		}
	}
	// Codes 2-5 are the pairs CR LF, ". ", ", " and ": ".
	punctTable := []byte{
		0, '\r', 0, 0, 0, 0, '!', '"', '#', '$', '%', '&', '\'', '(', ')',
		'*', '+', ',', '-', '.', '/', ':', ';', '<', '=', '>', '?', '[', ']',
		'{', '}',
	}
	for i, c := range punctTable {
		if c > 0 {
			charMap[modePunct][c] = i
		}
	}

	for i := range shiftTable {
		for j := range shiftTable[i] {
			shiftTable[i][j] = -1
		}
	}
	shiftTable[modeUpper][modePunct] = 0
	shiftTable[modeLower][modePunct] = 0
	shiftTable[modeLower][modeUpper] = 28
	shiftTable[modeMixed][modePunct] = 0
	shiftTable[modeDigit][modePunct] = 0
	shiftTable[modeDigit][modeUpper] = 15
}

// NoECI leaves the message in the default ISO-8859-1 interpretation.
const NoECI = -1

// EncodeHighLevel converts text into the shortest Aztec bit stream over
// the character modes and binary shift. An eci other than NoECI is
// announced with FLG(n) before the data.
func EncodeHighLevel(text []byte, eci int) (*bitutil.BitArray, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("%w: empty Aztec message", quickcodes.ErrInvalidData)
	}
	initial := initialState
	if eci != NoECI {
		var err error
		if initial, err = initial.appendFLGn(eci); err != nil {
			return nil, err
		}
	}

	states := []state{initial}
	for i := 0; i < len(text); i++ {
		var next byte
		if i+1 < len(text) {
			next = text[i+1]
		}
		pairCode := 0
		switch {
		case text[i] == '\r' && next == '\n':
			pairCode = 2
		case text[i] == '.' && next == ' ':
			pairCode = 3
		case text[i] == ',' && next == ' ':
			pairCode = 4
		case text[i] == ':' && next == ' ':
			pairCode = 5
		}
		if pairCode > 0 {
			states = updateStatesForPair(states, i, pairCode)
			i++
		} else {
			states = updateStatesForChar(states, text, i)
		}
	}

	best := states[0]
	for _, s := range states[1:] {
		if s.bitCount < best.bitCount {
			best = s
		}
	}
	return best.toBitArray(text), nil
}

func updateStatesForChar(states []state, text []byte, index int) []state {
	var result []state
	for _, s := range states {
		result = updateStateForChar(result, s, text, index)
	}
	return simplifyStates(result)
}

// updateStateForChar appends every useful way of encoding text[index]
// after s: a latch or a shift into each mode that has the character, or
// one more binary shift byte.
func updateStateForChar(result []state, s state, text []byte, index int) []state {
	ch := text[index]
	inCurrent := charMap[s.mode][ch] > 0
	var noBinary *state
	for mode := 0; mode < modeCount; mode++ {
		code := charMap[mode][ch]
		if code == 0 {
			continue
		}
		if noBinary == nil {
			nb := s.endBinaryShift(index)
			noBinary = &nb
		}
		// Digit mode is tried even when the current mode has the character.
		if !inCurrent || mode == s.mode || mode == modeDigit {
			result = append(result, noBinary.latchAndAppend(mode, code))
		}
		if !inCurrent && shiftTable[s.mode][mode] >= 0 {
			result = append(result, noBinary.shiftAndAppend(mode, code))
		}
	}
	if s.binaryShiftBytes > 0 || !inCurrent {
		result = append(result, s.addBinaryShiftChar(index))
	}
	return result
}

func updateStatesForPair(states []state, index, pairCode int) []state {
	var result []state
	for _, s := range states {
		noBinary := s.endBinaryShift(index)
		result = append(result, noBinary.latchAndAppend(modePunct, pairCode))
		if s.mode != modePunct {
			result = append(result, noBinary.shiftAndAppend(modePunct, pairCode))
		}
		if pairCode == 3 || pairCode == 4 {
			// ". " and ", " also exist as two digit mode codes
			digits := noBinary.latchAndAppend(modeDigit, 16-pairCode).latchAndAppend(modeDigit, 1)
			result = append(result, digits)
		}
		if s.binaryShiftBytes > 0 {
			result = append(result, s.addBinaryShiftChar(index).addBinaryShiftChar(index+1))
		}
	}
	return simplifyStates(result)
}

// simplifyStates drops every state that another state matches or beats.
func simplifyStates(states []state) []state {
	var result []state
	for _, candidate := range states {
		keep := true
		kept := result[:0]
		for _, old := range result {
			if keep && old.isBetterThanOrEqualTo(candidate) {
				keep = false
			}
			if keep && candidate.isBetterThanOrEqualTo(old) {
				continue
			}
			kept = append(kept, old)
		}
		result = kept
		if keep {
			result = append([]state{candidate}, result...)
		}
	}
	return result
}
