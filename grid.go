package quickcodes

import "fmt"

// ModuleGrid is the output of an encoder: either a linear sequence of
// modules or a row-major matrix. A dark module (bar) is true.
//
// The zero value is an empty grid. Grids handed out by Barcode are never
// modified; accessors that expose the modules return copies.
type ModuleGrid struct {
	linear []bool
	matrix [][]bool
}

// NewLinearGrid wraps a 1D module sequence. The slice is retained.
func NewLinearGrid(modules []bool) ModuleGrid {
	return ModuleGrid{linear: modules}
}

// NewMatrixGrid wraps row-major modules. Every row must have the same
// length. The slices are retained.
func NewMatrixGrid(rows [][]bool) (ModuleGrid, error) {
	if len(rows) == 0 {
		return ModuleGrid{}, fmt.Errorf("%w: matrix has no rows", ErrGeneration)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return ModuleGrid{}, fmt.Errorf("%w: row %d has %d modules, want %d", ErrGeneration, y, len(row), width)
		}
	}
	return ModuleGrid{matrix: rows}, nil
}

// IsMatrix reports whether the grid is two-dimensional.
func (g ModuleGrid) IsMatrix() bool {
	return g.matrix != nil
}

// Empty reports whether the grid holds no modules.
func (g ModuleGrid) Empty() bool {
	return g.Width() == 0 || g.Height() == 0
}

// Width returns the number of modules per row.
func (g ModuleGrid) Width() int {
	if g.matrix != nil {
		return len(g.matrix[0])
	}
	return len(g.linear)
}

// Height returns the number of rows; a non-empty linear grid has one row.
func (g ModuleGrid) Height() int {
	if g.matrix != nil {
		return len(g.matrix)
	}
	if len(g.linear) == 0 {
		return 0
	}
	return 1
}

// At returns the module at column x, row y. For linear grids y is ignored.
func (g ModuleGrid) At(x, y int) bool {
	if g.matrix != nil {
		return g.matrix[y][x]
	}
	return g.linear[x]
}

// Linear returns a copy of the modules of a linear grid, or nil for a matrix.
func (g ModuleGrid) Linear() []bool {
	if g.matrix != nil {
		return nil
	}
	return append([]bool(nil), g.linear...)
}

// Matrix returns a copy of the rows of a matrix grid, or nil for a linear grid.
func (g ModuleGrid) Matrix() [][]bool {
	if g.matrix == nil {
		return nil
	}
	return copyRows(g.matrix)
}

// Rows returns a copy of the grid as rows. A linear grid yields one row.
func (g ModuleGrid) Rows() [][]bool {
	if g.matrix != nil {
		return copyRows(g.matrix)
	}
	if len(g.linear) == 0 {
		return nil
	}
	return [][]bool{append([]bool(nil), g.linear...)}
}

// Equal reports whether two grids have the same shape and modules.
func (g ModuleGrid) Equal(other ModuleGrid) bool {
	if g.IsMatrix() != other.IsMatrix() || g.Width() != other.Width() || g.Height() != other.Height() {
		return false
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != other.At(x, y) {
				return false
			}
		}
	}
	return true
}

// String renders the grid with '#' for dark and '.' for light modules, one
// line per row.
func (g ModuleGrid) String() string {
	w, h := g.Width(), g.Height()
	buf := make([]byte, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.At(x, y) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func copyRows(rows [][]bool) [][]bool {
	out := make([][]bool, len(rows))
	for i, r := range rows {
		out[i] = append([]bool(nil), r...)
	}
	return out
}
