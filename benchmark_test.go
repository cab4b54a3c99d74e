package quickcodes_test

import (
	"context"
	"testing"

	"github.com/ericlevine/quickcodes"
	_ "github.com/ericlevine/quickcodes/symbologies"
)

var encodeBenchmarks = []struct {
	name      string
	symbology quickcodes.Symbology
	content   string
}{
	{"EAN13", quickcodes.EAN13, "590123412345"},
	{"Code128", quickcodes.Code128, "Hello123 0123456789"},
	{"QRCode", quickcodes.QRCode, "Hello, World! This is a QR code benchmark test."},
	{"DataMatrix", quickcodes.DataMatrix, "Hello DataMatrix 0123456789"},
	{"PDF417", quickcodes.PDF417, "Hello PDF417 Benchmark Test Data"},
	{"Aztec", quickcodes.Aztec, "Hello Aztec Code"},
}

func BenchmarkEncode(b *testing.B) {
	for _, tc := range encodeBenchmarks {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := quickcodes.Encode(tc.symbology, tc.content, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeAll(b *testing.B) {
	reqs := make([]quickcodes.Request, 64)
	for i := range reqs {
		tc := encodeBenchmarks[i%len(encodeBenchmarks)]
		reqs[i] = quickcodes.Request{Symbology: tc.symbology, Data: tc.content}
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := quickcodes.EncodeAll(context.Background(), reqs, 0); err != nil {
			b.Fatal(err)
		}
	}
}
