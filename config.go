package quickcodes

import (
	"fmt"
	"strings"
)

// QRErrorCorrection is one of the four QR error correction levels.
type QRErrorCorrection int

const (
	QRLow      QRErrorCorrection = iota // ~7% recovery
	QRMedium                            // ~15% recovery
	QRQuartile                          // ~25% recovery
	QRHigh                              // ~30% recovery
)

func (l QRErrorCorrection) String() string {
	switch l {
	case QRLow:
		return "L"
	case QRMedium:
		return "M"
	case QRQuartile:
		return "Q"
	case QRHigh:
		return "H"
	}
	return "UNKNOWN"
}

// ParseQRErrorCorrection accepts "L", "M", "Q", "H" or the long names
// "low", "medium", "quartile", "high".
func ParseQRErrorCorrection(s string) (QRErrorCorrection, error) {
	switch strings.ToLower(s) {
	case "l", "low":
		return QRLow, nil
	case "m", "medium":
		return QRMedium, nil
	case "q", "quartile":
		return QRQuartile, nil
	case "h", "high":
		return QRHigh, nil
	}
	return 0, fmt.Errorf("%w: unknown QR error correction level %q", ErrInvalidData, s)
}

// QREncoding restricts the QR data mode.
type QREncoding int

const (
	QRAuto QREncoding = iota
	QRNumeric
	QRAlphanumeric
	QRByte
)

// QROptions configures QR encoding.
type QROptions struct {
	ErrorCorrection QRErrorCorrection
	Encoding        QREncoding
}

// AztecOptions configures Aztec encoding.
type AztecOptions struct {
	// Compact restricts the symbol to the compact format (1-4 layers).
	Compact bool
	// Layers forces the layer count: 1-4 when Compact, 1-32 otherwise.
	// Zero selects the smallest symbol that fits.
	Layers int
	// ECPercent is the minimum share of the symbol spent on error
	// correction, 5-95. Zero selects DefaultAztecECPercent.
	ECPercent int
}

// PDF417Compaction forces one PDF417 compaction mode.
type PDF417Compaction int

const (
	PDF417Auto PDF417Compaction = iota
	PDF417Text
	PDF417Byte
	PDF417Numeric
)

// PDF417Options configures PDF417 encoding.
type PDF417Options struct {
	// Columns is the number of data columns, 1-30. Zero picks the column
	// count that gives the most square symbol.
	Columns int
	// ECLevel is the error correction level, 0-8; level n adds 2^(n+1)
	// check codewords.
	ECLevel int
	// Compact drops the right row indicator and shortens the stop pattern
	// (Compact PDF417, formerly Truncated PDF417).
	Compact    bool
	Compaction PDF417Compaction
}

// DataMatrixShape restricts the DataMatrix symbol shape.
type DataMatrixShape int

const (
	DataMatrixAnyShape DataMatrixShape = iota
	DataMatrixSquare
	DataMatrixRectangle
)

// DataMatrixOptions configures DataMatrix encoding.
type DataMatrixOptions struct {
	Shape DataMatrixShape
}

// Code128Options configures Code 128 encoding.
type Code128Options struct {
	// ForceSet restricts the encoder to one code set, "A", "B" or "C".
	// Empty lets the encoder pick the shortest encoding.
	ForceSet string
}

// RenderConfig carries the rendering hints and the symbology specific
// options of an encode call. Encoders only read it.
type RenderConfig struct {
	// Margin is the quiet zone, in modules, a renderer leaves on every side.
	Margin int
	// HumanReadable asks renderers to print the data under linear symbols.
	HumanReadable bool
	// CharacterSet names the charset used for byte oriented modes of
	// DataMatrix, PDF417 and Aztec. Empty means ISO-8859-1 when the data
	// fits, UTF-8 otherwise.
	CharacterSet string

	QR         QROptions
	Aztec      AztecOptions
	PDF417     PDF417Options
	DataMatrix DataMatrixOptions
	Code128    Code128Options
}

// Defaults.
const (
	DefaultMargin            = 10
	DefaultAztecECPercent    = 23
	DefaultPDF417Columns     = 6
	DefaultPDF417ECLevel     = 2
	DefaultQRErrorCorrection = QRMedium
)

// DefaultRenderConfig returns the configuration used when Encode is given a
// nil config.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Margin:        DefaultMargin,
		HumanReadable: true,
		QR: QROptions{
			ErrorCorrection: DefaultQRErrorCorrection,
		},
		Aztec: AztecOptions{
			ECPercent: DefaultAztecECPercent,
		},
		PDF417: PDF417Options{
			Columns: DefaultPDF417Columns,
			ECLevel: DefaultPDF417ECLevel,
		},
	}
}

// Validate checks every option range. It returns an error wrapping
// ErrInvalidData naming the first bad option.
func (c *RenderConfig) Validate() error {
	if c.Margin < 0 {
		return fmt.Errorf("%w: negative margin %d", ErrInvalidData, c.Margin)
	}
	if c.QR.ErrorCorrection < QRLow || c.QR.ErrorCorrection > QRHigh {
		return fmt.Errorf("%w: QR error correction level %d out of range", ErrInvalidData, c.QR.ErrorCorrection)
	}
	if c.QR.Encoding < QRAuto || c.QR.Encoding > QRByte {
		return fmt.Errorf("%w: QR encoding %d out of range", ErrInvalidData, c.QR.Encoding)
	}
	if c.Aztec.ECPercent != 0 && (c.Aztec.ECPercent < 5 || c.Aztec.ECPercent > 95) {
		return fmt.Errorf("%w: Aztec error correction %d%% outside 5-95", ErrInvalidData, c.Aztec.ECPercent)
	}
	maxLayers := 32
	if c.Aztec.Compact {
		maxLayers = 4
	}
	if c.Aztec.Layers < 0 || c.Aztec.Layers > maxLayers {
		return fmt.Errorf("%w: Aztec layer count %d outside 0-%d", ErrInvalidData, c.Aztec.Layers, maxLayers)
	}
	if c.PDF417.Columns < 0 || c.PDF417.Columns > 30 {
		return fmt.Errorf("%w: PDF417 column count %d outside 1-30", ErrInvalidData, c.PDF417.Columns)
	}
	if c.PDF417.ECLevel < 0 || c.PDF417.ECLevel > 8 {
		return fmt.Errorf("%w: PDF417 error correction level %d outside 0-8", ErrInvalidData, c.PDF417.ECLevel)
	}
	if c.PDF417.Compaction < PDF417Auto || c.PDF417.Compaction > PDF417Numeric {
		return fmt.Errorf("%w: PDF417 compaction %d out of range", ErrInvalidData, c.PDF417.Compaction)
	}
	if c.DataMatrix.Shape < DataMatrixAnyShape || c.DataMatrix.Shape > DataMatrixRectangle {
		return fmt.Errorf("%w: DataMatrix shape %d out of range", ErrInvalidData, c.DataMatrix.Shape)
	}
	switch c.Code128.ForceSet {
	case "", "A", "B", "C":
	default:
		return fmt.Errorf("%w: unsupported Code 128 code set %q", ErrInvalidData, c.Code128.ForceSet)
	}
	return nil
}

// AztecECPercent returns the effective Aztec error correction percentage.
func (c *RenderConfig) AztecECPercent() int {
	if c.Aztec.ECPercent == 0 {
		return DefaultAztecECPercent
	}
	return c.Aztec.ECPercent
}

// OrDefault returns cfg, or a fresh DefaultRenderConfig when cfg is nil.
// Encoders called directly rather than through Encode use it.
func OrDefault(cfg *RenderConfig) *RenderConfig {
	if cfg != nil {
		return cfg
	}
	d := DefaultRenderConfig()
	return &d
}
