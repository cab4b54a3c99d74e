// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// barcodeRow is one row of a symbol, filled left to right.
type barcodeRow struct {
	modules []bool
	pos     int
}

// addBar appends width modules of one color.
func (br *barcodeRow) addBar(black bool, width int) {
	for i := 0; i < width; i++ {
		br.modules[br.pos] = black
		br.pos++
	}
}

// addPattern appends the n low bits of pattern, most significant first.
func (br *barcodeRow) addPattern(pattern int32, n int) {
	for mask := int32(1) << (n - 1); mask != 0; mask >>= 1 {
		br.modules[br.pos] = pattern&mask != 0
		br.pos++
	}
}

// BarcodeMatrix holds the modules of every symbol row.
type BarcodeMatrix struct {
	rows  []*barcodeRow
	width int
}

// rowWidth returns the modules in a row with cols data columns: start
// pattern, left indicator, data, then either the right indicator and stop
// pattern or, for compact symbols, the single stop bar.
func rowWidth(cols int, compact bool) int {
	if compact {
		return (cols+2)*17 + 1
	}
	return (cols+4)*17 + 1
}

func newBarcodeMatrix(rows, cols int, compact bool) *BarcodeMatrix {
	m := &BarcodeMatrix{
		rows:  make([]*barcodeRow, rows),
		width: rowWidth(cols, compact),
	}
	for i := range m.rows {
		m.rows[i] = &barcodeRow{modules: make([]bool, m.width)}
	}
	return m
}

// Width returns the number of modules in each row.
func (bm *BarcodeMatrix) Width() int { return bm.width }

// Height returns the number of symbol rows.
func (bm *BarcodeMatrix) Height() int { return len(bm.rows) }

// Get reports whether the module at x in symbol row y is dark.
func (bm *BarcodeMatrix) Get(x, y int) bool {
	return bm.rows[y].modules[x]
}

// Matrix returns the modules with every symbol row repeated rowHeight
// times. The rows are fresh slices.
func (bm *BarcodeMatrix) Matrix(rowHeight int) [][]bool {
	if rowHeight < 1 {
		rowHeight = 1
	}
	out := make([][]bool, 0, len(bm.rows)*rowHeight)
	for _, r := range bm.rows {
		for i := 0; i < rowHeight; i++ {
			out = append(out, append([]bool(nil), r.modules...))
		}
	}
	return out
}
