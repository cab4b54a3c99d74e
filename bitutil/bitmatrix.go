package bitutil

import (
	"strings"
)

// BitMatrix is a 2D grid of modules. x is the column, y is the row, and the
// origin is the top-left corner.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a square BitMatrix.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates an empty BitMatrix of the given size.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns true if the module at (x, y) is dark.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set darkens the module at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// SetTo sets the module at (x, y) to v.
func (bm *BitMatrix) SetTo(x, y int, v bool) {
	if v {
		bm.Set(x, y)
	} else {
		bm.Unset(x, y)
	}
}

// Unset clears the module at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Rows copies the matrix into freshly allocated row-major boolean rows.
func (bm *BitMatrix) Rows() [][]bool {
	rows := make([][]bool, bm.height)
	for y := range rows {
		row := make([]bool, bm.width)
		for x := range row {
			row[x] = bm.Get(x, y)
		}
		rows[y] = row
	}
	return rows
}

// String renders the matrix using "X " for dark and "  " for light modules.
func (bm *BitMatrix) String() string {
	var sb strings.Builder
	sb.Grow(bm.height * (2*bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString("X ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
