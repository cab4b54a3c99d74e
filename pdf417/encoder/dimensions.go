// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"math"

	"github.com/ericlevine/quickcodes"
)

// Symbol structure limits.
const (
	MinCols            = 1
	MaxCols            = 30
	MinRows            = 3
	MaxRows            = 90
	MaxSymbolCodewords = 928
)

// Aspect ratio heuristics used when the column count is free.
const (
	moduleWidth    = 0.357 // mm
	rowHeight      = 2.0   // mm
	preferredRatio = 3.0
)

// Dimensions is the data area of a symbol, in codewords.
type Dimensions struct {
	Cols, Rows int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%d cols x %d rows", d.Cols, d.Rows)
}

// numberOfRows returns the rows needed for m data codewords, the length
// descriptor and k check codewords in c columns.
func numberOfRows(m, k, c int) int {
	r := (m+1+k)/c + 1
	if c*r >= m+1+k+c {
		r--
	}
	return r
}

// padCodewordCount returns how many pad codewords fill the last row.
func padCodewordCount(m, k, c, r int) int {
	n := c*r - k
	if n > m+1 {
		return n - m - 1
	}
	return 0
}

// DetermineDimensions picks the data area for m data codewords and k check
// codewords. A cols of 0 tries every column count and keeps the symbol
// closest to a 3:1 aspect ratio; otherwise the column count is fixed.
func DetermineDimensions(m, k, cols int) (Dimensions, error) {
	if cols < 0 || cols > MaxCols {
		return Dimensions{}, fmt.Errorf("%w: PDF417 column count %d outside %d-%d", quickcodes.ErrInvalidData, cols, MinCols, MaxCols)
	}
	if m+1+k > MaxSymbolCodewords {
		return Dimensions{}, fmt.Errorf("%w: %d data and %d error correction codewords exceed %d", quickcodes.ErrGeneration, m+1, k, MaxSymbolCodewords)
	}
	minCols, maxCols := MinCols, MaxCols
	if cols > 0 {
		minCols, maxCols = cols, cols
	}

	var best Dimensions
	ratio := 0.0
	for c := minCols; c <= maxCols; c++ {
		r := numberOfRows(m, k, c)
		if r < MinRows {
			break
		}
		if r > MaxRows || c*r > MaxSymbolCodewords {
			continue
		}
		newRatio := (17*float64(c) + 69) * moduleWidth / (float64(r) * rowHeight)
		if best.Cols > 0 && math.Abs(newRatio-preferredRatio) > math.Abs(ratio-preferredRatio) {
			continue
		}
		ratio = newRatio
		best = Dimensions{Cols: c, Rows: r}
	}
	if best.Cols == 0 && numberOfRows(m, k, minCols) < MinRows {
		best = Dimensions{Cols: minCols, Rows: MinRows}
	}
	if best.Cols == 0 {
		return Dimensions{}, fmt.Errorf("%w: %d codewords do not fit %d-%d columns within %d rows", quickcodes.ErrGeneration, m+1+k, minCols, maxCols, MaxRows)
	}
	return best, nil
}
