package quickcodes_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/oned"
)

func TestEncodeCanonicalData(t *testing.T) {
	tests := []struct {
		symbology quickcodes.Symbology
		data      string
		canonical string
		width     int
	}{
		{quickcodes.EAN13, "123456789012", "1234567890128", 95},
		{quickcodes.EAN13, "1234567890128", "1234567890128", 95},
		{quickcodes.UPCA, "03600029145", "036000291452", 95},
		{quickcodes.UPCA, "036000291452", "036000291452", 95},
		{quickcodes.ITF14, "0123456789012", "01234567890128", 0},
		{quickcodes.Code39, "abc", "ABC", 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%s", tc.symbology, tc.data), func(t *testing.T) {
			bc, err := quickcodes.Encode(tc.symbology, tc.data, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.symbology, bc.Symbology())
			assert.Equal(t, tc.canonical, bc.Data())
			assert.False(t, bc.Grid().IsMatrix())
			assert.Equal(t, 1, bc.Height())
			if tc.width > 0 {
				assert.Equal(t, tc.width, bc.Width())
			}
		})
	}
}

func TestCheckDigitRoundTrip(t *testing.T) {
	short := quickcodes.MustEncode(quickcodes.EAN13, "123456789012", nil)
	full := quickcodes.MustEncode(quickcodes.EAN13, "1234567890128", nil)
	assert.Equal(t, short.Data(), full.Data())
	assert.True(t, short.Grid().Equal(full.Grid()))

	lower := quickcodes.MustEncode(quickcodes.Code39, "abc", nil)
	upper := quickcodes.MustEncode(quickcodes.Code39, "ABC", nil)
	assert.True(t, lower.Grid().Equal(upper.Grid()))

	d, err := oned.ITF14CheckDigit("0123456789012")
	require.NoError(t, err)
	assert.Equal(t, 8, d)
	d, err = oned.ITF14CheckDigit("1234567890123")
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestEncodeInvalidData(t *testing.T) {
	tests := []struct {
		name      string
		symbology quickcodes.Symbology
		data      string
	}{
		{"wrong check digit", quickcodes.EAN13, "1234567890127"},
		{"code39 alphabet", quickcodes.Code39, "AB!"},
		{"codabar guards", quickcodes.Codabar, "1234"},
		{"itf14 length", quickcodes.ITF14, "123"},
		{"unregistered", quickcodes.Symbology(99), "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quickcodes.Encode(tc.symbology, tc.data, nil)
			require.ErrorIs(t, err, quickcodes.ErrInvalidData)
			var encErr *quickcodes.EncodeError
			require.True(t, errors.As(err, &encErr))
			assert.Equal(t, tc.symbology, encErr.Symbology)
		})
	}

	_, err := quickcodes.Encode(quickcodes.Code39, "AB!", nil)
	assert.ErrorContains(t, err, `'!'`)
}

func TestEncodeEmpty(t *testing.T) {
	for _, s := range quickcodes.Symbologies() {
		t.Run(s.String(), func(t *testing.T) {
			bc, err := quickcodes.Encode(s, "", nil)
			if s == quickcodes.QRCode {
				require.NoError(t, err)
				assert.False(t, bc.Grid().Empty())
				return
			}
			assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
		})
	}
}

func TestEncodeInvalidConfig(t *testing.T) {
	cfg := quickcodes.DefaultRenderConfig()
	cfg.Margin = -1
	_, err := quickcodes.Encode(quickcodes.QRCode, "x", &cfg)
	assert.ErrorIs(t, err, quickcodes.ErrInvalidData)
}

var matrixInputs = []quickcodes.Request{
	{Symbology: quickcodes.QRCode, Data: "https://example.com/quickcodes"},
	{Symbology: quickcodes.DataMatrix, Data: "Data Matrix 0123456789"},
	{Symbology: quickcodes.PDF417, Data: "PDF417 with some text and 1234567890123"},
	{Symbology: quickcodes.Aztec, Data: "Aztec Code 2D"},
}

func TestMatrixGridsAreRectangular(t *testing.T) {
	for _, req := range matrixInputs {
		t.Run(req.Symbology.String(), func(t *testing.T) {
			bc, err := quickcodes.Encode(req.Symbology, req.Data, nil)
			require.NoError(t, err)
			require.True(t, bc.Grid().IsMatrix())
			rows := bc.Grid().Rows()
			for _, r := range rows {
				assert.Len(t, r, bc.Width())
			}
			// Data Matrix may pick a rectangular size; PDF417 always does.
			if req.Symbology == quickcodes.QRCode || req.Symbology == quickcodes.Aztec {
				assert.Equal(t, bc.Width(), bc.Height())
			}

			again, err := quickcodes.Encode(req.Symbology, req.Data, nil)
			require.NoError(t, err)
			assert.True(t, bc.Grid().Equal(again.Grid()))
		})
	}
}

func TestBarcodeBounds(t *testing.T) {
	cfg := quickcodes.DefaultRenderConfig()
	cfg.Margin = 4
	bc, err := quickcodes.Encode(quickcodes.Aztec, "A", &cfg)
	require.NoError(t, err)
	assert.Equal(t, 15, bc.Width())
	assert.Equal(t, 23, bc.Bounds().Dx())
	assert.Equal(t, 23, bc.Bounds().Dy())
	assert.Equal(t, 4, bc.Config().Margin)
}

func TestEncodeAll(t *testing.T) {
	var reqs []quickcodes.Request
	for i := 0; i < 40; i++ {
		reqs = append(reqs, quickcodes.Request{Symbology: quickcodes.Code128, Data: fmt.Sprintf("item-%03d", i)})
		reqs = append(reqs, matrixInputs[i%len(matrixInputs)])
	}
	reqs = append(reqs, quickcodes.Request{Symbology: quickcodes.EAN13, Data: "bad"})

	results, err := quickcodes.EncodeAll(context.Background(), reqs, 8)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	for i, req := range reqs {
		want, wantErr := quickcodes.Encode(req.Symbology, req.Data, req.Config)
		if wantErr != nil {
			assert.ErrorIs(t, results[i].Err, quickcodes.ErrInvalidData)
			assert.Nil(t, results[i].Barcode)
			continue
		}
		require.NoError(t, results[i].Err)
		assert.Equal(t, want.Data(), results[i].Barcode.Data())
		assert.True(t, want.Grid().Equal(results[i].Barcode.Grid()), "request %d", i)
	}
}

func TestEncodeAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := quickcodes.EncodeAll(ctx, matrixInputs, 2)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, len(matrixInputs))
	for i, r := range results {
		assert.Nil(t, r.Barcode, "request %d", i)
		assert.ErrorIs(t, r.Err, context.Canceled, "request %d", i)
	}
}

func TestEncodeAllCanceledMidway(t *testing.T) {
	var reqs []quickcodes.Request
	for i := 0; i < 200; i++ {
		reqs = append(reqs, matrixInputs[i%len(matrixInputs)])
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	results, err := quickcodes.EncodeAll(ctx, reqs, 2)
	require.Len(t, results, len(reqs))
	for i, r := range results {
		// Every slot holds an outcome, whichever side of the deadline it fell.
		assert.True(t, (r.Barcode == nil) != (r.Err == nil), "request %d", i)
		if r.Err != nil {
			assert.ErrorIs(t, r.Err, context.DeadlineExceeded, "request %d", i)
			assert.Error(t, err)
		}
	}
}

func TestConcurrentEncode(t *testing.T) {
	want := make([]*quickcodes.Barcode, len(matrixInputs))
	for i, req := range matrixInputs {
		want[i] = quickcodes.MustEncode(req.Symbology, req.Data, nil)
	}

	var wg sync.WaitGroup
	got := make([][]*quickcodes.Barcode, 8)
	for g := range got {
		got[g] = make([]*quickcodes.Barcode, len(matrixInputs))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, req := range matrixInputs {
				got[g][i], _ = quickcodes.Encode(req.Symbology, req.Data, nil)
			}
		}()
	}
	wg.Wait()

	for g := range got {
		for i := range matrixInputs {
			require.NotNil(t, got[g][i])
			assert.True(t, want[i].Grid().Equal(got[g][i].Grid()))
		}
	}
}

func TestMustEncodePanics(t *testing.T) {
	assert.Panics(t, func() {
		quickcodes.MustEncode(quickcodes.EAN13, "nope", nil)
	})
}
