package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ericlevine/quickcodes"
)

// manifest is the YAML input of the batch command:
//
//	items:
//	  - symbology: ean13
//	    data: "123456789012"
//	    output: ean.png
//	  - symbology: qr
//	    data: https://example.com
type manifest struct {
	Items []manifestItem `yaml:"items"`
}

type manifestItem struct {
	Symbology string `yaml:"symbology"`
	Data      string `yaml:"data"`
	// Output is relative to the manifest. Empty prints the barcode.
	Output string `yaml:"output"`
}

func readManifest(r io.Reader) (*manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, err
	}
	return &m, nil
}

func (a *app) batchCommand() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Encode every barcode listed in a YAML manifest",
		Long: `Batch encodes the items of a YAML manifest concurrently. Each item
names a symbology, the data and optionally an output file relative to
the manifest; items without an output are printed in manifest order.
A manifest of "-" is read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var (
				m   *manifest
				err error
				dir = "."
			)
			if path == "-" {
				m, err = readManifest(cmd.InOrStdin())
			} else {
				var f *os.File
				if f, err = os.Open(path); err != nil {
					return err
				}
				m, err = readManifest(f)
				f.Close()
				dir = filepath.Dir(path)
			}
			if err != nil {
				return fmt.Errorf("manifest %s: %w", path, err)
			}

			cfg, err := a.renderConfig()
			if err != nil {
				return err
			}
			reqs := make([]quickcodes.Request, len(m.Items))
			for i, item := range m.Items {
				sym, err := quickcodes.ParseSymbology(item.Symbology)
				if err != nil {
					return fmt.Errorf("manifest item %d: %w", i+1, err)
				}
				reqs[i] = quickcodes.Request{Symbology: sym, Data: item.Data, Config: cfg}
			}

			results, err := quickcodes.EncodeAll(cmd.Context(), reqs, jobs)
			if err != nil {
				return err
			}
			failed := 0
			for i, res := range results {
				item := m.Items[i]
				if res.Err != nil {
					a.logger.Error("encode failed", "item", i+1, "symbology", reqs[i].Symbology, "err", res.Err)
					failed++
					continue
				}
				out := item.Output
				if out != "" && !filepath.IsAbs(out) {
					out = filepath.Join(dir, out)
				}
				if err := a.writeBarcode(cmd, res.Barcode, out); err != nil {
					a.logger.Error("write failed", "item", i+1, "err", err)
					failed++
					continue
				}
				a.logger.Info("encoded", "item", i+1, "symbology", reqs[i].Symbology, "modules", res.Barcode.Width(), "file", out)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d items failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "concurrent encodes (default GOMAXPROCS)")
	return cmd
}
