package oned

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
)

const upceanCodeWidth = 3 + (7 * 6) + 5 + (7 * 6) + 3 // 95

// Guard patterns, as bar/space widths.
var (
	upceanStartEndPattern = []int{1, 1, 1}
	upceanMiddlePattern   = []int{1, 1, 1, 1, 1}
)

// lPatterns holds the widths of the L (odd parity) digit codes. Left-half
// digits start with a space; the right half reuses the widths starting with
// a bar.
var lPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// lAndGPatterns holds the L patterns at 0-9 and the G (even parity)
// patterns, which are the L widths reversed, at 10-19.
var lAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		lAndGPatterns[i] = lPatterns[i]
		widths := lPatterns[i]
		reversed := make([]int, len(widths))
		for j := range widths {
			reversed[j] = widths[len(widths)-j-1]
		}
		lAndGPatterns[i+10] = reversed
	}
}

// ean13FirstDigitEncodings gives, for each implied first digit, the
// parity of the six left-half digits; a set bit selects the G pattern.
var ean13FirstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// EAN13CheckDigit returns the check digit for 12 data digits. Even indexes
// weigh 1 and odd indexes 3.
func EAN13CheckDigit(digits string) (int, error) {
	if len(digits) != 12 {
		return 0, fmt.Errorf("%w: EAN-13 check digit needs 12 digits, got %d", quickcodes.ErrInvalidData, len(digits))
	}
	if err := checkNumeric(digits); err != nil {
		return 0, err
	}
	return weightedCheckDigit(digits, 1, 3), nil
}

// UPCACheckDigit returns the check digit for 11 data digits. Even indexes
// weigh 3 and odd indexes 1.
func UPCACheckDigit(digits string) (int, error) {
	if len(digits) != 11 {
		return 0, fmt.Errorf("%w: UPC-A check digit needs 11 digits, got %d", quickcodes.ErrInvalidData, len(digits))
	}
	if err := checkNumeric(digits); err != nil {
		return 0, err
	}
	return weightedCheckDigit(digits, 3, 1), nil
}

// canonicalUPCEAN validates contents, appending the check digit when it is
// missing and verifying it when present.
func canonicalUPCEAN(name, contents string, without int, check func(string) (int, error)) (string, error) {
	digits := stripSeparators(contents)
	if digits == "" {
		return "", fmt.Errorf("%w: empty %s data", quickcodes.ErrInvalidData, name)
	}
	if err := checkNumeric(digits); err != nil {
		return "", err
	}
	switch len(digits) {
	case without:
		cd, err := check(digits)
		if err != nil {
			return "", err
		}
		return digits + string(rune('0'+cd)), nil
	case without + 1:
		cd, err := check(digits[:without])
		if err != nil {
			return "", err
		}
		if got := int(digits[without] - '0'); got != cd {
			return "", fmt.Errorf("%w: %s check digit mismatch: expected %d, got %d", quickcodes.ErrInvalidData, name, cd, got)
		}
		return digits, nil
	default:
		return "", fmt.Errorf("%w: %s needs %d or %d digits, got %d", quickcodes.ErrInvalidData, name, without, without+1, len(digits))
	}
}

// encodeEAN13Modules lays out 13 digits as the 95 module EAN-13 pattern.
func encodeEAN13Modules(contents string) []bool {
	parities := ean13FirstDigitEncodings[contents[0]-'0']
	result := make([]bool, upceanCodeWidth)
	pos := appendPattern(result, 0, upceanStartEndPattern, true)

	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		pos += appendPattern(result, pos, lAndGPatterns[digit], false)
	}

	pos += appendPattern(result, pos, upceanMiddlePattern, false)

	for i := 7; i <= 12; i++ {
		pos += appendPattern(result, pos, lPatterns[contents[i]-'0'], true)
	}

	appendPattern(result, pos, upceanStartEndPattern, true)
	return result
}

// EAN13Encoder encodes EAN-13 from 12 digits (check digit computed) or 13
// digits (check digit verified). Spaces and hyphens are ignored.
type EAN13Encoder struct{}

// NewEAN13Encoder creates an EAN-13 encoder.
func NewEAN13Encoder() *EAN13Encoder {
	return &EAN13Encoder{}
}

// Encode implements quickcodes.Encoder.
func (e *EAN13Encoder) Encode(contents string, _ *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	canonical, err := canonicalUPCEAN("EAN-13", contents, 12, EAN13CheckDigit)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	return canonical, linear(encodeEAN13Modules(canonical)), nil
}

// UPCAEncoder encodes UPC-A from 11 digits (check digit computed) or 12
// digits (check digit verified). A UPC-A symbol is an EAN-13 symbol with an
// implied leading zero, so every left-half digit uses the L patterns.
type UPCAEncoder struct{}

// NewUPCAEncoder creates a UPC-A encoder.
func NewUPCAEncoder() *UPCAEncoder {
	return &UPCAEncoder{}
}

// Encode implements quickcodes.Encoder.
func (e *UPCAEncoder) Encode(contents string, _ *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	canonical, err := canonicalUPCEAN("UPC-A", contents, 11, UPCACheckDigit)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	return canonical, linear(encodeEAN13Modules("0" + canonical)), nil
}
