package quickcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbology(t *testing.T) {
	tests := []struct {
		name string
		want Symbology
	}{
		{"EAN_13", EAN13},
		{"ean13", EAN13},
		{"EAN-13", EAN13},
		{"upc a", UPCA},
		{"Code128", Code128},
		{"c39", Code39},
		{"ITF_14", ITF14},
		{"codabar", Codabar},
		{"QR_CODE", QRCode},
		{"qr", QRCode},
		{"Data Matrix", DataMatrix},
		{"dm", DataMatrix},
		{"PDF_417", PDF417},
		{"AZTEC", Aztec},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSymbology(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseSymbology("maxicode")
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestSymbologyNames(t *testing.T) {
	for _, s := range Symbologies() {
		got, err := ParseSymbology(s.String())
		require.NoError(t, err, s.String())
		assert.Equal(t, s, got)

		text, err := s.MarshalText()
		require.NoError(t, err)
		var back Symbology
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}
	assert.Equal(t, "UNKNOWN", Symbology(42).String())
	_, err := Symbology(42).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestSymbologyIsMatrix(t *testing.T) {
	var matrix []Symbology
	for _, s := range Symbologies() {
		if s.IsMatrix() {
			matrix = append(matrix, s)
		}
	}
	assert.Equal(t, []Symbology{QRCode, DataMatrix, PDF417, Aztec}, matrix)
}
