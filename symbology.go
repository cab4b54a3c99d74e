// Package quickcodes encodes data into 1D and 2D barcode symbologies. An
// encoder turns a validated input string into a grid of dark and light
// modules; rendering that grid is left to the caller.
package quickcodes

import (
	"fmt"
	"strings"
)

// Symbology identifies a barcode symbology.
type Symbology int

const (
	EAN13 Symbology = iota
	UPCA
	Code128
	Code39
	ITF14
	Codabar
	QRCode
	DataMatrix
	PDF417
	Aztec
)

// String returns the name of the symbology.
func (s Symbology) String() string {
	switch s {
	case EAN13:
		return "EAN_13"
	case UPCA:
		return "UPC_A"
	case Code128:
		return "CODE_128"
	case Code39:
		return "CODE_39"
	case ITF14:
		return "ITF_14"
	case Codabar:
		return "CODABAR"
	case QRCode:
		return "QR_CODE"
	case DataMatrix:
		return "DATA_MATRIX"
	case PDF417:
		return "PDF_417"
	case Aztec:
		return "AZTEC"
	default:
		return "UNKNOWN"
	}
}

// IsMatrix reports whether the symbology produces a two-dimensional grid.
func (s Symbology) IsMatrix() bool {
	switch s {
	case QRCode, DataMatrix, PDF417, Aztec:
		return true
	}
	return false
}

// Symbologies returns every supported symbology in declaration order.
func Symbologies() []Symbology {
	return []Symbology{EAN13, UPCA, Code128, Code39, ITF14, Codabar, QRCode, DataMatrix, PDF417, Aztec}
}

// ParseSymbology resolves a symbology name. Matching ignores case and any
// '-', '_' or ' ' separators, so "ean13", "EAN-13" and "EAN_13" are equal.
func ParseSymbology(name string) (Symbology, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))

	switch key {
	case "ean13", "ean":
		return EAN13, nil
	case "upca", "upc":
		return UPCA, nil
	case "code128", "c128":
		return Code128, nil
	case "code39", "c39":
		return Code39, nil
	case "itf14", "itf":
		return ITF14, nil
	case "codabar":
		return Codabar, nil
	case "qrcode", "qr":
		return QRCode, nil
	case "datamatrix", "dm":
		return DataMatrix, nil
	case "pdf417", "pdf":
		return PDF417, nil
	case "aztec":
		return Aztec, nil
	}
	return 0, fmt.Errorf("%w: unknown symbology %q", ErrInvalidData, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbology) MarshalText() ([]byte, error) {
	if s < EAN13 || s > Aztec {
		return nil, fmt.Errorf("%w: unknown symbology %d", ErrInvalidData, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseSymbology.
func (s *Symbology) UnmarshalText(text []byte) error {
	v, err := ParseSymbology(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
