package quickcodes

import (
	"errors"
	"fmt"
	"sync"
)

// Encoder turns contents into a module grid for one symbology. It returns
// the canonical form of the data alongside the grid. Implementations must
// not retain or modify cfg, and must be safe for concurrent use.
type Encoder interface {
	Encode(contents string, cfg *RenderConfig) (canonical string, grid ModuleGrid, err error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(contents string, cfg *RenderConfig) (string, ModuleGrid, error)

// Encode calls f.
func (f EncoderFunc) Encode(contents string, cfg *RenderConfig) (string, ModuleGrid, error) {
	return f(contents, cfg)
}

var (
	encodersMu sync.RWMutex
	encoders   = map[Symbology]Encoder{}
)

// RegisterEncoder installs the encoder for a symbology, replacing any
// earlier registration. Symbology packages call it from init; import
// github.com/ericlevine/quickcodes/symbologies to register all of them.
func RegisterEncoder(s Symbology, e Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	encoders[s] = e
}

// Registered reports whether an encoder is installed for s.
func Registered(s Symbology) bool {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	_, ok := encoders[s]
	return ok
}

// Encode encodes data as the given symbology. A nil cfg means
// DefaultRenderConfig(). Errors are *EncodeError values wrapping
// ErrInvalidData or ErrGeneration.
func Encode(s Symbology, data string, cfg *RenderConfig) (*Barcode, error) {
	var conf RenderConfig
	if cfg == nil {
		conf = DefaultRenderConfig()
	} else {
		conf = *cfg
	}
	if err := conf.Validate(); err != nil {
		return nil, &EncodeError{Symbology: s, Err: err}
	}

	encodersMu.RLock()
	enc, ok := encoders[s]
	encodersMu.RUnlock()
	if !ok {
		return nil, &EncodeError{Symbology: s, Err: fmt.Errorf("%w: no encoder registered for %s", ErrInvalidData, s)}
	}

	canonical, grid, err := enc.Encode(data, &conf)
	if err != nil {
		if !errors.Is(err, ErrInvalidData) && !errors.Is(err, ErrGeneration) {
			err = fmt.Errorf("%w: %v", ErrGeneration, err)
		}
		return nil, &EncodeError{Symbology: s, Err: err}
	}
	if grid.Empty() || grid.IsMatrix() != s.IsMatrix() {
		return nil, &EncodeError{Symbology: s, Err: fmt.Errorf("%w: encoder produced an unexpected %dx%d grid", ErrGeneration, grid.Width(), grid.Height())}
	}
	return &Barcode{
		symbology: s,
		data:      canonical,
		grid:      grid,
		config:    conf,
	}, nil
}

// MustEncode is like Encode but panics on error. It is intended for
// constant inputs in tests and examples.
func MustEncode(s Symbology, data string, cfg *RenderConfig) *Barcode {
	b, err := Encode(s, data, cfg)
	if err != nil {
		panic(err)
	}
	return b
}
