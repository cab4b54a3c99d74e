package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/quickcodes"
)

const codabarAlphabet = "0123456789-$:/.+ABCD"

// codabarCharacterEncodings holds 7 element widths per character, bar
// first, with wide elements two modules.
var codabarCharacterEncodings = [20][]int{
	{1, 1, 1, 1, 1, 2, 2}, // 0
	{1, 1, 1, 1, 2, 2, 1}, // 1
	{1, 1, 1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1, 1, 1}, // 3
	{1, 1, 2, 1, 1, 2, 1}, // 4
	{2, 1, 1, 1, 1, 2, 1}, // 5
	{1, 2, 1, 1, 1, 1, 2}, // 6
	{1, 2, 1, 1, 2, 1, 1}, // 7
	{1, 2, 2, 1, 1, 1, 1}, // 8
	{2, 1, 1, 2, 1, 1, 1}, // 9
	{1, 1, 1, 2, 2, 1, 1}, // -
	{1, 1, 2, 2, 1, 1, 1}, // $
	{2, 1, 1, 1, 2, 1, 2}, // :
	{2, 1, 2, 1, 1, 1, 2}, // /
	{2, 1, 2, 1, 2, 1, 1}, // .
	{1, 1, 2, 1, 2, 1, 2}, // +
	{1, 1, 2, 2, 1, 2, 1}, // A
	{1, 2, 1, 2, 1, 1, 2}, // B
	{1, 1, 1, 2, 1, 2, 2}, // C
	{1, 1, 1, 2, 2, 2, 1}, // D
}

func isCodabarGuard(c byte) bool {
	return c >= 'A' && c <= 'D'
}

// CodabarEncoder encodes Codabar. The data must begin and end with one of
// the start/stop characters A-D, which may not appear elsewhere. Input is
// case-insensitive.
type CodabarEncoder struct{}

// NewCodabarEncoder creates a Codabar encoder.
func NewCodabarEncoder() *CodabarEncoder {
	return &CodabarEncoder{}
}

// Encode implements quickcodes.Encoder.
func (e *CodabarEncoder) Encode(contents string, _ *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	if contents == "" {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: empty Codabar data", quickcodes.ErrInvalidData)
	}
	upper := strings.ToUpper(contents)
	for _, r := range upper {
		if strings.IndexRune(codabarAlphabet, r) < 0 {
			return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: character %q is not in the Codabar alphabet", quickcodes.ErrInvalidData, r)
		}
	}
	if len(upper) < 2 || !isCodabarGuard(upper[0]) || !isCodabarGuard(upper[len(upper)-1]) {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: Codabar data must start and end with A, B, C or D", quickcodes.ErrInvalidData)
	}
	for i := 1; i < len(upper)-1; i++ {
		if isCodabarGuard(upper[i]) {
			return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: start/stop character %q inside Codabar data at position %d", quickcodes.ErrInvalidData, upper[i], i)
		}
	}

	width := len(upper) - 1 // inter-character gaps
	for i := 0; i < len(upper); i++ {
		width += patternWidth(codabarCharacterEncodings[strings.IndexByte(codabarAlphabet, upper[i])])
	}
	result := make([]bool, width)
	pos := 0
	for i := 0; i < len(upper); i++ {
		if i > 0 {
			pos++ // narrow space, already false
		}
		pos += appendPattern(result, pos, codabarCharacterEncodings[strings.IndexByte(codabarAlphabet, upper[i])], true)
	}
	return upper, linear(result), nil
}
