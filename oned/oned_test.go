package oned

import (
	"strings"
	"testing"

	"github.com/ericlevine/quickcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modules renders a linear grid as a string of '1' (bar) and '0' (space).
func modules(t *testing.T, g quickcodes.ModuleGrid) string {
	t.Helper()
	require.False(t, g.IsMatrix())
	var sb strings.Builder
	for _, m := range g.Linear() {
		if m {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestAppendPattern(t *testing.T) {
	target := make([]bool, 6)
	n := appendPattern(target, 0, []int{2, 1, 3}, true)
	assert.Equal(t, 6, n)
	assert.Equal(t, []bool{true, true, false, true, true, true}, target)
}

func TestWeightedCheckDigit(t *testing.T) {
	assert.Equal(t, 8, weightedCheckDigit("123456789012", 1, 3))
	assert.Equal(t, 2, weightedCheckDigit("03600029145", 3, 1))
	assert.Equal(t, 0, weightedCheckDigit("0000", 3, 1))
}

func TestStripSeparators(t *testing.T) {
	assert.Equal(t, "123456789012", stripSeparators("1-234567 89012"))
}

func TestLinearEncodersRejectEmpty(t *testing.T) {
	encoders := map[string]quickcodes.Encoder{
		"ean13":   NewEAN13Encoder(),
		"upca":    NewUPCAEncoder(),
		"code128": NewCode128Encoder(),
		"code39":  NewCode39Encoder(),
		"codabar": NewCodabarEncoder(),
		"itf14":   NewITF14Encoder(),
	}
	cfg := quickcodes.DefaultRenderConfig()
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			_, _, err := enc.Encode("", &cfg)
			assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
		})
	}
}
