// Package pdf417 encodes PDF417 and Compact PDF417 symbols.
package pdf417

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/charset"
	"github.com/ericlevine/quickcodes/pdf417/encoder"
)

// RowHeight is the number of grid rows each symbol row spans, the
// minimum row height of ISO/IEC 15438.
const RowHeight = 3

var compactions = map[quickcodes.PDF417Compaction]encoder.Compaction{
	quickcodes.PDF417Auto:    encoder.CompactionAuto,
	quickcodes.PDF417Text:    encoder.CompactionText,
	quickcodes.PDF417Byte:    encoder.CompactionByte,
	quickcodes.PDF417Numeric: encoder.CompactionNumeric,
}

// Encoder encodes PDF417 symbols.
type Encoder struct{}

// NewEncoder creates a PDF417 encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode implements quickcodes.Encoder. The grid is rectangular: each
// symbol row is RowHeight grid rows tall.
func (e *Encoder) Encode(contents string, cfg *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	cfg = quickcodes.OrDefault(cfg)
	if contents == "" {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: empty PDF417 data", quickcodes.ErrInvalidData)
	}
	compaction, ok := compactions[cfg.PDF417.Compaction]
	if !ok {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: unknown PDF417 compaction %d", quickcodes.ErrInvalidData, cfg.PDF417.Compaction)
	}
	msg, eci, err := charset.Encode(contents, cfg.CharacterSet)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: %v", quickcodes.ErrInvalidData, err)
	}
	eciValue := encoder.NoECI
	if eci != nil {
		eciValue = eci.Value
	}

	sym, err := encoder.Encode(msg, eciValue, encoder.Options{
		Columns:    cfg.PDF417.Columns,
		ECLevel:    cfg.PDF417.ECLevel,
		Compact:    cfg.PDF417.Compact,
		Compaction: compaction,
	})
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	grid, err := quickcodes.NewMatrixGrid(sym.Matrix.Matrix(RowHeight))
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	return contents, grid, nil
}
