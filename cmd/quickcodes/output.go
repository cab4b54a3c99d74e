package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/render"
)

// textOptions resolves the text style for w from the output config.
func (a *app) textOptions(cmd *cobra.Command, toTerminal bool) (render.TextOptions, error) {
	out := a.cfg.Output
	opts := render.TextOptions{
		BarHeight: out.BarHeight,
		Invert:    out.Invert,
	}
	switch {
	case out.Style != "":
		style, err := render.ParseStyle(out.Style)
		if err != nil {
			return opts, err
		}
		opts.Style = style
	case toTerminal:
		if f, ok := outputFile(cmd); ok {
			opts.Style = render.StyleFor(f)
		}
	}
	return opts, nil
}

// writeBarcode writes bc to path, choosing the format from the
// extension: .png for an image, anything else for text. An empty path
// or "-" prints text to the command output.
func (a *app) writeBarcode(cmd *cobra.Command, bc *quickcodes.Barcode, path string) error {
	if path == "" || path == "-" {
		opts, err := a.textOptions(cmd, true)
		if err != nil {
			return err
		}
		return render.Text(cmd.OutOrStdout(), bc, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.writeFile(cmd, f, bc, strings.ToLower(filepath.Ext(path))); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func (a *app) writeFile(cmd *cobra.Command, w io.Writer, bc *quickcodes.Barcode, ext string) error {
	if ext != ".png" {
		opts, err := a.textOptions(cmd, false)
		if err != nil {
			return err
		}
		return render.Text(w, bc, opts)
	}

	scale := max(a.cfg.Output.Scale, 1)
	bounds := render.Image(bc).Bounds()
	width := bounds.Dx() * scale
	height := bounds.Dy() * scale
	if !bc.Symbology().IsMatrix() {
		height = max(a.cfg.Output.BarHeight, 1) * scale
	}
	img, err := render.Scaled(bc, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
