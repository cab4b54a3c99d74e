package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ericlevine/quickcodes"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *Config
	logger  *log.Logger
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":         "log_level",
	"margin":            "margin",
	"human-readable":    "human_readable",
	"charset":           "charset",
	"style":             "output.style",
	"invert":            "output.invert",
	"bar-height":        "output.bar_height",
	"scale":             "output.scale",
	"qr-ec":             "qr.ec_level",
	"qr-encoding":       "qr.encoding",
	"aztec-compact":     "aztec.compact",
	"aztec-layers":      "aztec.layers",
	"aztec-ec":          "aztec.ec_percent",
	"pdf417-columns":    "pdf417.columns",
	"pdf417-ec":         "pdf417.ec_level",
	"pdf417-compact":    "pdf417.compact",
	"pdf417-compaction": "pdf417.compaction",
	"dm-shape":          "datamatrix.shape",
	"code128-set":       "code128.set",
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	d := quickcodes.DefaultRenderConfig()

	root := &cobra.Command{
		Use:   "quickcodes",
		Short: "Encode data as 1D and 2D barcodes",
		Long: `quickcodes encodes data as EAN-13, UPC-A, Code 128, Code 39, ITF-14,
Codabar, QR Code, Data Matrix, PDF417 and Aztec symbols.

Options are read from flags, QUICKCODES_* environment variables
(QUICKCODES_PDF417_COLUMNS=8) and quickcodes.yaml in the current
directory or the user config directory.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default quickcodes.{yaml,toml,json} in . or the user config dir)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Int("margin", d.Margin, "quiet zone in modules")
	pf.Bool("human-readable", d.HumanReadable, "print the data under linear symbols")
	pf.String("charset", "", "character set for Data Matrix, PDF417 and Aztec byte data")
	pf.String("style", "", "text style: ascii or unicode (default unicode on a terminal)")
	pf.Bool("invert", false, "swap dark and light in text output")
	pf.Int("bar-height", 10, "height of linear symbols in modules")
	pf.Int("scale", 4, "PNG pixels per module")
	pf.String("qr-ec", d.QR.ErrorCorrection.String(), "QR error correction level: L, M, Q or H")
	pf.String("qr-encoding", "auto", "QR data mode: auto, numeric, alphanumeric or byte")
	pf.Bool("aztec-compact", false, "restrict Aztec to compact symbols")
	pf.Int("aztec-layers", 0, "Aztec layer count (0 picks the smallest)")
	pf.Int("aztec-ec", d.Aztec.ECPercent, "Aztec error correction percentage, 5-95")
	pf.Int("pdf417-columns", d.PDF417.Columns, "PDF417 data columns, 1-30 (0 picks)")
	pf.Int("pdf417-ec", d.PDF417.ECLevel, "PDF417 error correction level, 0-8")
	pf.Bool("pdf417-compact", false, "encode Compact PDF417")
	pf.String("pdf417-compaction", "auto", "PDF417 compaction: auto, text, byte or numeric")
	pf.String("dm-shape", "any", "Data Matrix shape: any, square or rectangle")
	pf.String("code128-set", "", "force Code 128 code set A, B or C")

	for flag, key := range flagKeys {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding --%s: %v", flag, err))
		}
	}

	root.AddCommand(a.encodeCommand(), a.batchCommand(), a.listCommand())
	return root
}

// setup loads the configuration and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "quickcodes",
		Level:  level,
	})
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config", "file", used)
	}
	return nil
}

// renderConfig returns the library configuration of the loaded config.
func (a *app) renderConfig() (*quickcodes.RenderConfig, error) {
	rc, err := a.cfg.RenderConfig()
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// outputFile returns the command output when it is a file, such as
// os.Stdout.
func outputFile(cmd *cobra.Command) (*os.File, bool) {
	f, ok := cmd.OutOrStdout().(*os.File)
	return f, ok
}
