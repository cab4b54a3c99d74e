package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/quickcodes"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := run(t, "", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(quickcodes.Symbologies()))
	assert.Contains(t, lines[1], "EAN_13")
	assert.Contains(t, lines[1], "1D")
	assert.Contains(t, lines[10], "AZTEC")
	assert.Contains(t, lines[10], "2D")
	assert.NotContains(t, out, "false")
}

func TestEncodeText(t *testing.T) {
	out, _, err := run(t, "", "encode", "-s", "ean13", "--style", "ascii",
		"--margin", "0", "--bar-height", "1", "--human-readable=false", "123456789012")
	require.NoError(t, err)
	line := strings.TrimSuffix(out, "\n")
	assert.Len(t, line, 95*2)
	assert.True(t, strings.HasPrefix(line, "##  ##"))
}

func TestEncodeStdin(t *testing.T) {
	fromArgs, _, err := run(t, "", "encode", "-s", "code39", "--style", "ascii", "ABC")
	require.NoError(t, err)
	fromStdin, _, err := run(t, "abc\n", "encode", "-s", "code39", "--style", "ascii")
	require.NoError(t, err)
	assert.Equal(t, fromArgs, fromStdin)
}

func TestReadDataKeepsInteriorLineBreaks(t *testing.T) {
	tests := []struct {
		stdin, want string
	}{
		{"abc", "abc"},
		{"abc\n", "abc"},
		{"abc\r\n", "abc"},
		{"abc\n\n", "abc\n"},
		{"A\r\nB\n", "A\r\nB"},
		{"A\r\nB\r\n", "A\r\nB"},
		{"A\rB\r", "A\rB\r"},
		{"\r\n", ""},
	}
	for _, tc := range tests {
		cmd := &cobra.Command{}
		cmd.SetIn(strings.NewReader(tc.stdin))
		got, err := readData(cmd, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q", tc.stdin)
	}

	fromArgs, _, err := run(t, "", "encode", "-s", "code128", "--style", "ascii", "A\r\nB")
	require.NoError(t, err)
	fromStdin, _, err := run(t, "A\r\nB\n", "encode", "-s", "code128", "--style", "ascii")
	require.NoError(t, err)
	assert.Equal(t, fromArgs, fromStdin)
}

func TestEncodeErrors(t *testing.T) {
	_, _, err := run(t, "", "encode", "-s", "ean13", "1234567890127")
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	_, _, err = run(t, "", "encode", "-s", "nope", "1")
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	_, _, err = run(t, "", "encode", "-s", "pdf417", "--pdf417-compaction", "zip", "1")
	assert.Error(t, err)

	_, _, err = run(t, "", "encode", "123")
	assert.Error(t, err, "symbology is required")
}

func TestEncodePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ean.png")
	_, _, err := run(t, "", "encode", "-s", "ean13", "-o", path, "123456789012")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// 95 modules plus a 10 module margin each side, 4 pixels per module
	assert.Equal(t, (95+20)*4, img.Bounds().Dx())
	assert.Equal(t, 10*4, img.Bounds().Dy())
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	manifest := `items:
  - symbology: qr
    data: hello
    output: hello.png
  - symbology: datamatrix
    data: hello
    output: hello.txt
  - symbology: itf14
    data: "12"
`
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	_, stderr, err := run(t, "", "batch", "--jobs", "2", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 items failed")
	assert.Contains(t, stderr, "encode failed")

	assert.FileExists(t, filepath.Join(dir, "hello.png"))
	text, err := os.ReadFile(filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "##")
}

func TestBatchStdin(t *testing.T) {
	manifest := "items:\n  - symbology: code128\n    data: quickcodes\n"
	out, _, err := run(t, manifest, "batch", "--style", "ascii", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "quickcodes")
	assert.Contains(t, out, "##")

	_, _, err = run(t, "items:\n  - symbol: qr\n", "batch", "-")
	assert.Error(t, err, "unknown manifest field")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickcodes.yaml")
	conf := `margin: 2
pdf417:
  columns: 8
  compaction: text
aztec:
  compact: true
qr:
  ec_level: H
`
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))
	t.Setenv("QUICKCODES_PDF417_EC_LEVEL", "5")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Margin)
	assert.True(t, cfg.HumanReadable)

	rc, err := cfg.RenderConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, rc.PDF417.Columns)
	assert.Equal(t, 5, rc.PDF417.ECLevel)
	assert.Equal(t, quickcodes.PDF417Text, rc.PDF417.Compaction)
	assert.True(t, rc.Aztec.Compact)
	assert.Equal(t, quickcodes.DefaultAztecECPercent, rc.Aztec.ECPercent)
	assert.Equal(t, quickcodes.QRHigh, rc.QR.ErrorCorrection)

	_, err = loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderConfigValidation(t *testing.T) {
	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	_, err = cfg.RenderConfig()
	require.NoError(t, err)

	cfg.PDF417.Columns = 31
	_, err = cfg.RenderConfig()
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)

	cfg.PDF417.Columns = 6
	cfg.DataMatrix.Shape = "circle"
	_, err = cfg.RenderConfig()
	assert.ErrorContains(t, err, "datamatrix.shape")
}
