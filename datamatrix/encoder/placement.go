// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

type position struct{ row, col int }

// utahShape lists the modules of a regular codeword, most significant bit
// first, relative to its lower right module.
var utahShape = [8]position{
	{-2, -2}, {-2, -1},
	{-1, -2}, {-1, -1}, {-1, 0},
	{0, -2}, {0, -1}, {0, 0},
}

// cornerShapes are the four special codeword shapes of ISO/IEC 16022
// Annex F. Negative coordinates count back from the bottom or right edge.
var cornerShapes = [4][8]position{
	{{-1, 0}, {-1, 1}, {-1, 2}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}},
	{{-3, 0}, {-2, 0}, {-1, 0}, {0, -4}, {0, -3}, {0, -2}, {0, -1}, {1, -1}},
	{{-3, 0}, {-2, 0}, {-1, 0}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}},
	{{-1, 0}, {-1, -1}, {0, -3}, {0, -2}, {0, -1}, {1, -3}, {1, -2}, {1, -1}},
}

// mappingMatrix is the data area of a symbol with its finder and clock
// patterns removed.
type mappingMatrix struct {
	rows, cols int
	modules    []int8 // -1 unvisited, 0 light, 1 dark
}

// placeCodewords lays codewords into a cols x rows mapping matrix along the
// diagonal path of ISO/IEC 16022 Annex F.
func placeCodewords(codewords []byte, cols, rows int) *mappingMatrix {
	m := &mappingMatrix{rows: rows, cols: cols, modules: make([]int8, rows*cols)}
	for i := range m.modules {
		m.modules[i] = -1
	}
	pos := 0
	next := func() byte {
		cw := codewords[pos]
		pos++
		return cw
	}

	row, col := 4, 0
	for {
		switch {
		case row == rows && col == 0:
			m.corner(0, next())
		case row == rows-2 && col == 0 && cols%4 != 0:
			m.corner(1, next())
		case row == rows-2 && col == 0 && cols%8 == 4:
			m.corner(2, next())
		case row == rows+4 && col == 2 && cols%8 == 0:
			m.corner(3, next())
		}

		// up and to the right
		for ; row >= 0 && col < cols; row, col = row-2, col+2 {
			if row < rows && col >= 0 && !m.visited(row, col) {
				m.utah(row, col, next())
			}
		}
		row, col = row+1, col+3

		// down and to the left
		for ; row < rows && col >= 0; row, col = row+2, col-2 {
			if row >= 0 && col < cols && !m.visited(row, col) {
				m.utah(row, col, next())
			}
		}
		row, col = row+3, col+1

		if row >= rows && col >= cols {
			break
		}
	}

	// An unused lower right 2x2 square gets a fixed pattern.
	if !m.visited(rows-1, cols-1) {
		m.modules[(rows-1)*cols+cols-1] = 1
		m.modules[(rows-2)*cols+cols-2] = 1
	}
	return m
}

func (m *mappingMatrix) visited(row, col int) bool {
	return m.modules[row*m.cols+col] >= 0
}

// dark reports whether the module at (col, row) carries a one bit.
func (m *mappingMatrix) dark(col, row int) bool {
	return m.modules[row*m.cols+col] == 1
}

// set stores one bit of cw at (row, col). Positions off the top or left
// edge wrap to the opposite edge.
func (m *mappingMatrix) set(row, col int, cw byte, bit int) {
	if row < 0 {
		row += m.rows
		col += 4 - (m.rows+4)%8
	}
	if col < 0 {
		col += m.cols
		row += 4 - (m.cols+4)%8
	}
	var v int8
	if cw&(0x80>>bit) != 0 {
		v = 1
	}
	m.modules[row*m.cols+col] = v
}

func (m *mappingMatrix) utah(row, col int, cw byte) {
	for bit, p := range utahShape {
		m.set(row+p.row, col+p.col, cw, bit)
	}
}

func (m *mappingMatrix) corner(shape int, cw byte) {
	for bit, p := range cornerShapes[shape] {
		row, col := p.row, p.col
		if row < 0 {
			row += m.rows
		}
		if col < 0 {
			col += m.cols
		}
		m.set(row, col, cw, bit)
	}
}
