// Package render draws encoded barcodes as text or as images. Images
// implement github.com/boombuler/barcode's Barcode interface, so they can
// be scaled with barcode.Scale and written with image/png.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode"

	"github.com/ericlevine/quickcodes"
)

var codeKinds = map[quickcodes.Symbology]string{
	quickcodes.EAN13:      barcode.TypeEAN13,
	quickcodes.UPCA:       "UPC A",
	quickcodes.Code128:    barcode.TypeCode128,
	quickcodes.Code39:     barcode.TypeCode39,
	quickcodes.ITF14:      "ITF 14",
	quickcodes.Codabar:    barcode.TypeCodabar,
	quickcodes.QRCode:     barcode.TypeQR,
	quickcodes.DataMatrix: barcode.TypeDataMatrix,
	quickcodes.PDF417:     barcode.TypePDF,
	quickcodes.Aztec:      barcode.TypeAztec,
}

// symbolImage is a one pixel per module view of a Barcode.
type symbolImage struct {
	bc     *quickcodes.Barcode
	grid   quickcodes.ModuleGrid
	margin int
}

// Image returns a one pixel per module image of bc surrounded by its
// configured margin. Linear symbols are one pixel high with the margin on
// the left and right only; barcode.Scale stretches them to any height.
func Image(bc *quickcodes.Barcode) barcode.Barcode {
	return &symbolImage{
		bc:     bc,
		grid:   bc.Grid(),
		margin: bc.Config().Margin,
	}
}

func (s *symbolImage) ColorModel() color.Model {
	return color.Gray16Model
}

func (s *symbolImage) Bounds() image.Rectangle {
	w := s.grid.Width() + 2*s.margin
	if !s.grid.IsMatrix() {
		return image.Rect(0, 0, w, 1)
	}
	return image.Rect(0, 0, w, s.grid.Height()+2*s.margin)
}

func (s *symbolImage) At(x, y int) color.Color {
	x -= s.margin
	if s.grid.IsMatrix() {
		y -= s.margin
	} else {
		y = 0
	}
	if x < 0 || y < 0 || x >= s.grid.Width() || y >= s.grid.Height() {
		return color.White
	}
	if s.grid.At(x, y) {
		return color.Black
	}
	return color.White
}

func (s *symbolImage) Metadata() barcode.Metadata {
	dims := byte(1)
	if s.grid.IsMatrix() {
		dims = 2
	}
	return barcode.Metadata{CodeKind: codeKinds[s.bc.Symbology()], Dimensions: dims}
}

func (s *symbolImage) Content() string {
	return s.bc.Data()
}

// Scaled returns Image(bc) scaled to width x height pixels. The size must
// be at least the module size of the image.
func Scaled(bc *quickcodes.Barcode, width, height int) (barcode.Barcode, error) {
	img, err := barcode.Scale(Image(bc), width, height)
	if err != nil {
		return nil, fmt.Errorf("scaling %s to %dx%d: %w", bc.Symbology(), width, height, err)
	}
	return img, nil
}
