// Package oned implements the linear symbologies: EAN-13, UPC-A, Code 128,
// Code 39, Codabar and ITF-14.
package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/quickcodes"
)

// appendPattern writes the bar/space widths in pattern into target at pos,
// starting with a bar when startColor is true. It returns the number of
// modules written.
func appendPattern(target []bool, pos int, pattern []int, startColor bool) int {
	color := startColor
	added := 0
	for _, w := range pattern {
		for j := 0; j < w; j++ {
			target[pos] = color
			pos++
			added++
		}
		color = !color
	}
	return added
}

// patternWidth returns the total module count of a width pattern.
func patternWidth(pattern []int) int {
	n := 0
	for _, w := range pattern {
		n += w
	}
	return n
}

// checkNumeric verifies that s holds only ASCII digits.
func checkNumeric(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: non-digit character %q at position %d", quickcodes.ErrInvalidData, s[i], i)
		}
	}
	return nil
}

// stripSeparators removes the spaces and hyphens people use to group digits.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// weightedCheckDigit computes the mod-10 check digit of digits where even
// indexes (from the left, 0-based) are weighted evenWeight and odd indexes
// oddWeight.
func weightedCheckDigit(digits string, evenWeight, oddWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 0 {
			sum += d * evenWeight
		} else {
			sum += d * oddWeight
		}
	}
	return (10 - sum%10) % 10
}

func linear(modules []bool) quickcodes.ModuleGrid {
	return quickcodes.NewLinearGrid(modules)
}
