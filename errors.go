package quickcodes

import "errors"

var (
	// ErrInvalidData is returned when the input cannot be encoded by the
	// requested symbology: empty, wrong length, characters outside the
	// alphabet, bad start/stop characters or a check digit mismatch.
	ErrInvalidData = errors.New("invalid data")

	// ErrGeneration is returned when valid input does not fit in any symbol
	// size the symbology (or the requested options) allows.
	ErrGeneration = errors.New("generation error")
)

// EncodeError records the symbology an encode call failed for. It wraps
// ErrInvalidData or ErrGeneration.
type EncodeError struct {
	Symbology Symbology
	Err       error
}

func (e *EncodeError) Error() string {
	return e.Symbology.String() + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
