package aztec

import "github.com/ericlevine/quickcodes"

func init() {
	quickcodes.RegisterEncoder(quickcodes.Aztec, NewEncoder())
}
