package oned

import "github.com/ericlevine/quickcodes"

func init() {
	quickcodes.RegisterEncoder(quickcodes.EAN13, NewEAN13Encoder())
	quickcodes.RegisterEncoder(quickcodes.UPCA, NewUPCAEncoder())
	quickcodes.RegisterEncoder(quickcodes.Code128, NewCode128Encoder())
	quickcodes.RegisterEncoder(quickcodes.Code39, NewCode39Encoder())
	quickcodes.RegisterEncoder(quickcodes.ITF14, NewITF14Encoder())
	quickcodes.RegisterEncoder(quickcodes.Codabar, NewCodabarEncoder())
}
