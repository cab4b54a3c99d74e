package qrcode

import "github.com/ericlevine/quickcodes"

func init() {
	quickcodes.RegisterEncoder(quickcodes.QRCode, NewEncoder())
}
