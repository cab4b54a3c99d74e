// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements Data Matrix (ECC-200) symbol construction:
// high-level encodation, symbol size selection, Reed-Solomon error
// correction and module placement.
package encoder

import (
	"github.com/ericlevine/quickcodes/bitutil"
)

// Encode encodes msg, a sequence of 8-bit characters, into the smallest
// Data Matrix symbol allowed by shape. An eci other than NoECI is
// announced ahead of the data.
func Encode(msg []byte, shape SymbolShapeHint, eci int) (*bitutil.BitMatrix, *SymbolInfo, error) {
	codewords, si, err := encodeHighLevel(msg, shape, eci)
	if err != nil {
		return nil, nil, err
	}
	full, err := EncodeECC200(codewords, si)
	if err != nil {
		return nil, nil, err
	}

	m := placeCodewords(full, si.MappingMatrixColumns(), si.MappingMatrixRows())
	return encodeLowLevel(m, si), si, nil
}

// encodeLowLevel surrounds every data region with its finder pattern: a
// solid bar on the left and bottom edges and an alternating clock track on
// the top and right edges.
func encodeLowLevel(m *mappingMatrix, si *SymbolInfo) *bitutil.BitMatrix {
	symbolWidth := si.MappingMatrixColumns()
	symbolHeight := si.MappingMatrixRows()
	regionW := si.DataRegionSizeColumns
	regionH := si.DataRegionSizeRows

	matrix := bitutil.NewBitMatrixWithSize(si.SymbolWidth(), si.SymbolHeight())

	matrixY := 0
	for y := 0; y < symbolHeight; y++ {
		if y%regionH == 0 {
			for x := 0; x < si.SymbolWidth(); x++ {
				matrix.SetTo(x, matrixY, x%2 == 0)
			}
			matrixY++
		}
		matrixX := 0
		for x := 0; x < symbolWidth; x++ {
			if x%regionW == 0 {
				matrix.Set(matrixX, matrixY)
				matrixX++
			}
			matrix.SetTo(matrixX, matrixY, m.dark(x, y))
			matrixX++
			if x%regionW == regionW-1 {
				matrix.SetTo(matrixX, matrixY, y%2 == 0)
				matrixX++
			}
		}
		matrixY++
		if y%regionH == regionH-1 {
			for x := 0; x < si.SymbolWidth(); x++ {
				matrix.Set(x, matrixY)
			}
			matrixY++
		}
	}
	return matrix
}
