// Package aztec encodes compact and full-range Aztec symbols.
package aztec

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/aztec/encoder"
	"github.com/ericlevine/quickcodes/charset"
)

// Encoder encodes Aztec symbols.
type Encoder struct{}

// NewEncoder creates an Aztec encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode implements quickcodes.Encoder. The smallest symbol holding the
// data with cfg.Aztec.ECPercent of error correction is chosen unless
// cfg.Aztec.Layers forces one.
func (e *Encoder) Encode(contents string, cfg *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	cfg = quickcodes.OrDefault(cfg)
	if contents == "" {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: empty Aztec data", quickcodes.ErrInvalidData)
	}
	msg, eci, err := charset.Encode(contents, cfg.CharacterSet)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: %v", quickcodes.ErrInvalidData, err)
	}
	eciValue := encoder.NoECI
	if eci != nil {
		eciValue = eci.Value
	}

	code, err := encoder.Encode(msg, eciValue, encoder.Options{
		ECPercent: cfg.AztecECPercent(),
		Layers:    cfg.Aztec.Layers,
		Compact:   cfg.Aztec.Compact,
	})
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	grid, err := quickcodes.NewMatrixGrid(code.Matrix.Rows())
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	return contents, grid, nil
}
