// Package qrcode encodes QR Code symbols. Symbol construction (mode
// selection, version search, Reed-Solomon blocks, masking) is done by
// github.com/boombuler/barcode/qr; this package maps the render
// configuration onto it and reads the result back as a module grid.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/ericlevine/quickcodes"
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var ecLevels = map[quickcodes.QRErrorCorrection]qr.ErrorCorrectionLevel{
	quickcodes.QRLow:      qr.L,
	quickcodes.QRMedium:   qr.M,
	quickcodes.QRQuartile: qr.Q,
	quickcodes.QRHigh:     qr.H,
}

var encodings = map[quickcodes.QREncoding]qr.Encoding{
	quickcodes.QRAuto:         qr.Auto,
	quickcodes.QRNumeric:      qr.Numeric,
	quickcodes.QRAlphanumeric: qr.AlphaNumeric,
	quickcodes.QRByte:         qr.Unicode,
}

// Encoder encodes QR codes. Byte mode carries UTF-8 without an ECI
// designator, which is what common readers expect.
type Encoder struct{}

// NewEncoder creates a QR code encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode implements quickcodes.Encoder. Empty contents are legal and
// produce a version 1 symbol.
func (e *Encoder) Encode(contents string, cfg *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	cfg = quickcodes.OrDefault(cfg)
	level, ok := ecLevels[cfg.QR.ErrorCorrection]
	if !ok {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: unknown QR error correction level %d", quickcodes.ErrInvalidData, cfg.QR.ErrorCorrection)
	}
	mode, ok := encodings[cfg.QR.Encoding]
	if !ok {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: unknown QR encoding %d", quickcodes.ErrInvalidData, cfg.QR.Encoding)
	}
	if err := checkMode(contents, mode); err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}

	code, err := qr.Encode(contents, level, mode)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, fmt.Errorf("%w: %d bytes do not fit a QR code at level %s: %v",
			quickcodes.ErrGeneration, len(contents), cfg.QR.ErrorCorrection, err)
	}
	grid, err := gridOf(code)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}
	return contents, grid, nil
}

// checkMode rejects contents outside the character set of an explicitly
// requested mode, so that the only failure left for the encoder is size.
func checkMode(contents string, mode qr.Encoding) error {
	switch mode {
	case qr.Numeric:
		for i := 0; i < len(contents); i++ {
			if contents[i] < '0' || contents[i] > '9' {
				return fmt.Errorf("%w: %q at position %d cannot be encoded in numeric mode", quickcodes.ErrInvalidData, contents[i], i)
			}
		}
	case qr.AlphaNumeric:
		for i, r := range contents {
			if !strings.ContainsRune(alphanumericCharset, r) {
				return fmt.Errorf("%w: %q at position %d cannot be encoded in alphanumeric mode", quickcodes.ErrInvalidData, r, i)
			}
		}
	}
	return nil
}

// gridOf reads the dark modules of a rendered symbol. The symbol carries no
// quiet zone; the margin is applied when the barcode is rendered.
func gridOf(code barcode.Barcode) (quickcodes.ModuleGrid, error) {
	b := code.Bounds()
	rows := make([][]bool, b.Dy())
	for y := range rows {
		rows[y] = make([]bool, b.Dx())
		for x := range rows[y] {
			r, _, _, _ := code.At(b.Min.X+x, b.Min.Y+y).RGBA()
			rows[y][x] = r < 0x8000
		}
	}
	return quickcodes.NewMatrixGrid(rows)
}
