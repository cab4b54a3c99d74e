package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericlevine/quickcodes"
)

func (a *app) encodeCommand() *cobra.Command {
	var (
		symbology string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "encode -s SYMBOLOGY [DATA ...]",
		Short: "Encode one barcode",
		Long: `Encode joins its arguments with spaces and encodes them. Without
arguments the data is read from standard input, minus one final newline.

The barcode is printed as text unless -o names a file; files ending in
.png are written as images, anything else as text.`,
		Example: `  quickcodes encode -s ean13 123456789012
  quickcodes encode -s qr --qr-ec H -o link.png https://example.com
  echo -n 'Hello' | quickcodes encode -s aztec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sym, err := quickcodes.ParseSymbology(symbology)
			if err != nil {
				return err
			}
			data, err := readData(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := a.renderConfig()
			if err != nil {
				return err
			}

			bc, err := quickcodes.Encode(sym, data, cfg)
			if err != nil {
				return err
			}
			a.logger.Debug("encoded", "symbology", sym, "data", bc.Data(), "width", bc.Width(), "height", bc.Height())
			if err := a.writeBarcode(cmd, bc, output); err != nil {
				return err
			}
			if output != "" && output != "-" {
				a.logger.Info("wrote barcode", "symbology", sym, "file", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&symbology, "symbology", "s", "", "symbology, e.g. ean13, code128, qr, datamatrix, pdf417, aztec")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.png or text); default prints to stdout")
	_ = cmd.MarkFlagRequired("symbology")
	return cmd
}

func readData(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	// Only the line ending that terminates the input is dropped; line
	// breaks inside the payload are data.
	s := string(b)
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		s = strings.TrimSuffix(t, "\r")
	}
	return s, nil
}
