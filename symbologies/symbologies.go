// Package symbologies registers every barcode encoder with the
// quickcodes registry. Import it for its side effects:
//
//	import _ "github.com/ericlevine/quickcodes/symbologies"
package symbologies

import (
	_ "github.com/ericlevine/quickcodes/aztec"
	_ "github.com/ericlevine/quickcodes/datamatrix"
	_ "github.com/ericlevine/quickcodes/oned"
	_ "github.com/ericlevine/quickcodes/pdf417"
	_ "github.com/ericlevine/quickcodes/qrcode"
)
