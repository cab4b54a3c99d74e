package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"

	"github.com/ericlevine/quickcodes"
)

// Style selects the characters Text draws modules with.
type Style int

const (
	// StyleASCII draws each module as two '#' or ' ' characters.
	StyleASCII Style = iota
	// StyleHalfBlock packs two module rows into one line of Unicode
	// half block characters.
	StyleHalfBlock
)

func (s Style) String() string {
	switch s {
	case StyleASCII:
		return "ascii"
	case StyleHalfBlock:
		return "unicode"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle accepts "ascii" and "unicode" (or "utf8").
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "ascii":
		return StyleASCII, nil
	case "unicode", "utf8", "utf-8":
		return StyleHalfBlock, nil
	}
	return 0, fmt.Errorf("unknown text style %q", name)
}

// StyleFor returns StyleHalfBlock when f is a terminal and StyleASCII
// otherwise.
func StyleFor(f *os.File) Style {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return StyleHalfBlock
	}
	return StyleASCII
}

// TextOptions controls Text.
type TextOptions struct {
	Style Style
	// BarHeight is the number of module rows a linear symbol is drawn
	// with. Zero means DefaultBarHeight.
	BarHeight int
	// Invert swaps dark and light, for light text on a dark terminal.
	Invert bool
}

// DefaultBarHeight is the height of linear symbols drawn by Text.
const DefaultBarHeight = 10

// Text writes bc to w as text, dark modules on a light background
// unless opts.Invert is set. The configured margin surrounds the symbol.
// Linear symbols with HumanReadable set get their data centered below.
func Text(w io.Writer, bc *quickcodes.Barcode, opts TextOptions) error {
	rows := paddedRows(bc, opts.BarHeight)
	if opts.Invert {
		for _, row := range rows {
			for i := range row {
				row[i] = !row[i]
			}
		}
	}

	bw := bufio.NewWriter(w)
	switch opts.Style {
	case StyleASCII:
		writeASCII(bw, rows)
	case StyleHalfBlock:
		writeHalfBlocks(bw, rows)
	default:
		return fmt.Errorf("unknown text style %d", int(opts.Style))
	}

	cfg := bc.Config()
	if cfg.HumanReadable && !bc.Symbology().IsMatrix() {
		width := len(rows[0])
		if opts.Style == StyleASCII {
			width *= 2
		}
		label := bc.Data()
		if pad := (width - utf8.RuneCountInString(label)) / 2; pad > 0 {
			label = strings.Repeat(" ", pad) + label
		}
		bw.WriteString(label)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// paddedRows returns the module rows of bc with its margin applied.
// Light modules are false.
func paddedRows(bc *quickcodes.Barcode, barHeight int) [][]bool {
	grid := bc.Grid()
	m := bc.Config().Margin
	src := grid.Rows()
	if !grid.IsMatrix() {
		if barHeight <= 0 {
			barHeight = DefaultBarHeight
		}
		bars := src[0]
		src = make([][]bool, barHeight)
		for i := range src {
			src[i] = bars
		}
	}

	width := grid.Width() + 2*m
	rows := make([][]bool, 0, len(src)+2*m)
	for i := 0; i < m; i++ {
		rows = append(rows, make([]bool, width))
	}
	for _, r := range src {
		row := make([]bool, width)
		copy(row[m:], r)
		rows = append(rows, row)
	}
	for i := 0; i < m; i++ {
		rows = append(rows, make([]bool, width))
	}
	return rows
}

func writeASCII(w *bufio.Writer, rows [][]bool) {
	for _, row := range rows {
		for _, dark := range row {
			if dark {
				w.WriteString("##")
			} else {
				w.WriteString("  ")
			}
		}
		w.WriteByte('\n')
	}
}

var halfBlocks = [4]string{" ", "▄", "▀", "█"}

func writeHalfBlocks(w *bufio.Writer, rows [][]bool) {
	for y := 0; y < len(rows); y += 2 {
		for x := range rows[y] {
			i := 0
			if rows[y][x] {
				i |= 2
			}
			if y+1 < len(rows) && rows[y+1][x] {
				i |= 1
			}
			w.WriteString(halfBlocks[i])
		}
		w.WriteByte('\n')
	}
}
