package datamatrix

import "github.com/ericlevine/quickcodes"

func init() {
	quickcodes.RegisterEncoder(quickcodes.DataMatrix, NewEncoder())
}
