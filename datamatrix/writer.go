// Package datamatrix encodes Data Matrix ECC-200 symbols.
package datamatrix

import (
	"errors"
	"fmt"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/charset"
	"github.com/ericlevine/quickcodes/datamatrix/encoder"
)

var shapeHints = map[quickcodes.DataMatrixShape]encoder.SymbolShapeHint{
	quickcodes.DataMatrixAnyShape:  encoder.ShapeHintForceNone,
	quickcodes.DataMatrixSquare:    encoder.ShapeHintForceSquare,
	quickcodes.DataMatrixRectangle: encoder.ShapeHintForceRectangle,
}

// Encoder encodes Data Matrix symbols.
type Encoder struct{}

// NewEncoder creates a Data Matrix encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode implements quickcodes.Encoder. Contents are converted with
// cfg.CharacterSet; text outside ISO-8859-1 defaults to UTF-8 behind an
// ECI designator.
func (e *Encoder) Encode(contents string, cfg *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	cfg = quickcodes.OrDefault(cfg)
	if contents == "" {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: empty Data Matrix data", quickcodes.ErrInvalidData)
	}
	shape, ok := shapeHints[cfg.DataMatrix.Shape]
	if !ok {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: unknown Data Matrix shape %d", quickcodes.ErrInvalidData, cfg.DataMatrix.Shape)
	}
	msg, eci, err := charset.Encode(contents, cfg.CharacterSet)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: %v", quickcodes.ErrInvalidData, err)
	}
	eciValue := encoder.NoECI
	if eci != nil {
		eciValue = eci.Value
	}

	matrix, _, err := encoder.Encode(msg, shape, eciValue)
	if err != nil {
		if errors.Is(err, quickcodes.ErrInvalidData) || errors.Is(err, quickcodes.ErrGeneration) {
			return "", quickcodes.ModuleGrid{}, err
		}
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: %v", quickcodes.ErrGeneration, err)
	}
	grid, err := quickcodes.NewMatrixGrid(matrix.Rows())
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	return contents, grid, nil
}
