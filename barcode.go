package quickcodes

import "image"

// Barcode is the result of a successful encode: the symbology, the
// canonical data (with any computed check digit), the module grid and the
// configuration it was produced with. A Barcode is never modified after
// creation.
type Barcode struct {
	symbology Symbology
	data      string
	grid      ModuleGrid
	config    RenderConfig
}

// Symbology returns the symbology the barcode was encoded with.
func (b *Barcode) Symbology() Symbology { return b.symbology }

// Data returns the canonical data, e.g. "1234567890128" for the EAN-13
// input "123456789012".
func (b *Barcode) Data() string { return b.data }

// Grid returns the module grid.
func (b *Barcode) Grid() ModuleGrid { return b.grid }

// Config returns a copy of the render configuration.
func (b *Barcode) Config() RenderConfig { return b.config }

// Width returns the symbol width in modules, without margin.
func (b *Barcode) Width() int { return b.grid.Width() }

// Height returns the symbol height in modules, without margin. Linear
// symbols are one module high; renderers stretch them.
func (b *Barcode) Height() int { return b.grid.Height() }

// Bounds returns the symbol rectangle in modules including the configured
// margin on every side. The symbol itself starts at (Margin, Margin).
func (b *Barcode) Bounds() image.Rectangle {
	m := b.config.Margin
	return image.Rect(0, 0, b.grid.Width()+2*m, b.grid.Height()+2*m)
}
