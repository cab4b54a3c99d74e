package oned

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
)

// itfPatterns gives the five element widths of each digit, wide elements
// two modules.
var itfPatterns = [10][]int{
	{1, 1, 2, 2, 1}, // 0
	{2, 1, 1, 1, 2}, // 1
	{1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1}, // 3
	{1, 1, 2, 1, 2}, // 4
	{2, 1, 2, 1, 1}, // 5
	{1, 2, 2, 1, 1}, // 6
	{1, 1, 1, 2, 2}, // 7
	{2, 1, 1, 2, 1}, // 8
	{1, 2, 1, 2, 1}, // 9
}

var (
	itfStartModules = []bool{true, false, true, false}      // 1010
	itfStopModules  = []bool{true, true, true, false, true} // 11101
)

// ITF14CheckDigit returns the check digit for 13 data digits. Even indexes
// weigh 3 and odd indexes 1.
func ITF14CheckDigit(digits string) (int, error) {
	if len(digits) != 13 {
		return 0, fmt.Errorf("%w: ITF-14 needs exactly 13 digits, got %d", quickcodes.ErrInvalidData, len(digits))
	}
	if err := checkNumeric(digits); err != nil {
		return 0, err
	}
	return weightedCheckDigit(digits, 3, 1), nil
}

// ITF14Encoder encodes ITF-14 (interleaved 2 of 5) from exactly 13 digits;
// the check digit is computed and appended.
type ITF14Encoder struct{}

// NewITF14Encoder creates an ITF-14 encoder.
func NewITF14Encoder() *ITF14Encoder {
	return &ITF14Encoder{}
}

// Encode implements quickcodes.Encoder.
func (e *ITF14Encoder) Encode(contents string, _ *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	if contents == "" {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: empty ITF-14 data", quickcodes.ErrInvalidData)
	}
	cd, err := ITF14CheckDigit(contents)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	canonical := contents + string(rune('0'+cd))

	result := append([]bool(nil), itfStartModules...)
	for i := 0; i < len(canonical); i += 2 {
		bars := itfPatterns[canonical[i]-'0']
		spaces := itfPatterns[canonical[i+1]-'0']
		for j := 0; j < 5; j++ {
			for k := 0; k < bars[j]; k++ {
				result = append(result, true)
			}
			for k := 0; k < spaces[j]; k++ {
				result = append(result, false)
			}
		}
	}
	result = append(result, itfStopModules...)
	return canonical, linear(result), nil
}
