// Command quickcodes encodes data as barcodes and prints them to the
// terminal or writes them as PNG or text files.
//
//	quickcodes encode -s ean13 123456789012
//	quickcodes encode -s qr -o site.png https://example.com
//	quickcodes batch manifest.yaml
//	quickcodes list
package main

import (
	"os"

	_ "github.com/ericlevine/quickcodes/symbologies"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
