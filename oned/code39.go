package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/quickcodes"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39CharacterEncodings gives each alphabet character as 9 bits, one per
// element starting with the first bar; a set bit marks a wide element.
var code39CharacterEncodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39AsteriskEncoding = 0x094

// code39Widths expands a 9-bit character encoding to element widths, narrow
// elements one module and wide elements two.
func code39Widths(a int) []int {
	widths := make([]int, 9)
	for i := range widths {
		if a&(1<<uint(8-i)) != 0 {
			widths[i] = 2
		} else {
			widths[i] = 1
		}
	}
	return widths
}

// Code39Encoder encodes Code 39. Lowercase letters are folded to uppercase;
// the data is framed by '*' start/stop characters that must not appear in
// the input.
type Code39Encoder struct{}

// NewCode39Encoder creates a Code 39 encoder.
func NewCode39Encoder() *Code39Encoder {
	return &Code39Encoder{}
}

// Encode implements quickcodes.Encoder.
func (e *Code39Encoder) Encode(contents string, _ *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	if contents == "" {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: empty Code 39 data", quickcodes.ErrInvalidData)
	}
	upper := strings.ToUpper(contents)
	indexes := make([]int, 0, len(upper))
	for _, r := range upper {
		idx := strings.IndexRune(code39Alphabet, r)
		if idx < 0 {
			return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: character %q is not in the Code 39 alphabet", quickcodes.ErrInvalidData, r)
		}
		indexes = append(indexes, idx)
	}

	// Every character is 12 modules plus a 1 module gap; the stop
	// character has no trailing gap.
	result := make([]bool, 13*(len(indexes)+2)-1)
	narrowWhite := []int{1}
	pos := appendPattern(result, 0, code39Widths(code39AsteriskEncoding), true)
	pos += appendPattern(result, pos, narrowWhite, false)
	for _, idx := range indexes {
		pos += appendPattern(result, pos, code39Widths(code39CharacterEncodings[idx]), true)
		pos += appendPattern(result, pos, narrowWhite, false)
	}
	appendPattern(result, pos, code39Widths(code39AsteriskEncoding), true)
	return upper, linear(result), nil
}
