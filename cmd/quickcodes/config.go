package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/ericlevine/quickcodes"
)

const (
	configFileName = "quickcodes"
	envPrefix      = "QUICKCODES"
)

// Config is the CLI configuration, read from flags, QUICKCODES_*
// environment variables and an optional quickcodes.{yaml,toml,json}.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	Margin        int    `mapstructure:"margin"`
	HumanReadable bool   `mapstructure:"human_readable"`
	Charset       string `mapstructure:"charset"`

	Output OutputConfig `mapstructure:"output"`

	QR         QRConfig         `mapstructure:"qr"`
	Aztec      AztecConfig      `mapstructure:"aztec"`
	PDF417     PDF417Config     `mapstructure:"pdf417"`
	DataMatrix DataMatrixConfig `mapstructure:"datamatrix"`
	Code128    Code128Config    `mapstructure:"code128"`
}

// OutputConfig controls how barcodes are written.
type OutputConfig struct {
	// Style is "ascii", "unicode" or empty to pick by terminal.
	Style     string `mapstructure:"style"`
	Invert    bool   `mapstructure:"invert"`
	BarHeight int    `mapstructure:"bar_height"`
	// Scale is the PNG size of one module in pixels.
	Scale int `mapstructure:"scale"`
}

type QRConfig struct {
	ECLevel  string `mapstructure:"ec_level"`
	Encoding string `mapstructure:"encoding"`
}

type AztecConfig struct {
	Compact   bool `mapstructure:"compact"`
	Layers    int  `mapstructure:"layers"`
	ECPercent int  `mapstructure:"ec_percent"`
}

type PDF417Config struct {
	Columns    int    `mapstructure:"columns"`
	ECLevel    int    `mapstructure:"ec_level"`
	Compact    bool   `mapstructure:"compact"`
	Compaction string `mapstructure:"compaction"`
}

type DataMatrixConfig struct {
	Shape string `mapstructure:"shape"`
}

type Code128Config struct {
	Set string `mapstructure:"set"`
}

var qrEncodings = map[string]quickcodes.QREncoding{
	"auto":         quickcodes.QRAuto,
	"numeric":      quickcodes.QRNumeric,
	"alphanumeric": quickcodes.QRAlphanumeric,
	"byte":         quickcodes.QRByte,
}

var compactions = map[string]quickcodes.PDF417Compaction{
	"auto":    quickcodes.PDF417Auto,
	"text":    quickcodes.PDF417Text,
	"byte":    quickcodes.PDF417Byte,
	"numeric": quickcodes.PDF417Numeric,
}

var shapes = map[string]quickcodes.DataMatrixShape{
	"any":       quickcodes.DataMatrixAnyShape,
	"square":    quickcodes.DataMatrixSquare,
	"rectangle": quickcodes.DataMatrixRectangle,
}

func lookup[T any](table map[string]T, option, value string) (T, error) {
	v, ok := table[strings.ToLower(value)]
	if !ok {
		names := slices.Sorted(maps.Keys(table))
		return v, fmt.Errorf("%s: unknown value %q (want one of %s)", option, value, strings.Join(names, ", "))
	}
	return v, nil
}

// RenderConfig converts c to the library configuration and validates it.
func (c *Config) RenderConfig() (quickcodes.RenderConfig, error) {
	rc := quickcodes.DefaultRenderConfig()
	rc.Margin = c.Margin
	rc.HumanReadable = c.HumanReadable
	rc.CharacterSet = c.Charset

	var err error
	if rc.QR.ErrorCorrection, err = quickcodes.ParseQRErrorCorrection(c.QR.ECLevel); err != nil {
		return rc, err
	}
	if rc.QR.Encoding, err = lookup(qrEncodings, "qr.encoding", c.QR.Encoding); err != nil {
		return rc, err
	}
	rc.Aztec = quickcodes.AztecOptions{
		Compact:   c.Aztec.Compact,
		Layers:    c.Aztec.Layers,
		ECPercent: c.Aztec.ECPercent,
	}
	rc.PDF417.Columns = c.PDF417.Columns
	rc.PDF417.ECLevel = c.PDF417.ECLevel
	rc.PDF417.Compact = c.PDF417.Compact
	if rc.PDF417.Compaction, err = lookup(compactions, "pdf417.compaction", c.PDF417.Compaction); err != nil {
		return rc, err
	}
	if rc.DataMatrix.Shape, err = lookup(shapes, "datamatrix.shape", c.DataMatrix.Shape); err != nil {
		return rc, err
	}
	rc.Code128.ForceSet = strings.ToUpper(c.Code128.Set)

	if err := rc.Validate(); err != nil {
		return rc, err
	}
	return rc, nil
}

func setDefaults(v *viper.Viper) {
	d := quickcodes.DefaultRenderConfig()
	v.SetDefault("log_level", "info")
	v.SetDefault("margin", d.Margin)
	v.SetDefault("human_readable", d.HumanReadable)
	v.SetDefault("charset", "")
	v.SetDefault("output.style", "")
	v.SetDefault("output.invert", false)
	v.SetDefault("output.bar_height", 10)
	v.SetDefault("output.scale", 4)
	v.SetDefault("qr.ec_level", d.QR.ErrorCorrection.String())
	v.SetDefault("qr.encoding", "auto")
	v.SetDefault("aztec.compact", false)
	v.SetDefault("aztec.layers", 0)
	v.SetDefault("aztec.ec_percent", d.Aztec.ECPercent)
	v.SetDefault("pdf417.columns", d.PDF417.Columns)
	v.SetDefault("pdf417.ec_level", d.PDF417.ECLevel)
	v.SetDefault("pdf417.compact", false)
	v.SetDefault("pdf417.compaction", "auto")
	v.SetDefault("datamatrix.shape", "any")
	v.SetDefault("code128.set", "")
}

// loadConfig reads configFile, or searches the default locations when it
// is empty. A missing config file in the default locations is not an
// error.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "quickcodes"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
