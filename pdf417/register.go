package pdf417

import "github.com/ericlevine/quickcodes"

func init() {
	quickcodes.RegisterEncoder(quickcodes.PDF417, NewEncoder())
}
