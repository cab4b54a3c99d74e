// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
)

// SymbolShapeHint controls whether the encoder prefers square or rectangular symbols.
type SymbolShapeHint int

const (
	// ShapeHintForceNone allows either square or rectangular symbols.
	ShapeHintForceNone SymbolShapeHint = iota
	// ShapeHintForceSquare forces the encoder to choose a square symbol.
	ShapeHintForceSquare
	// ShapeHintForceRectangle forces the encoder to choose a rectangular symbol.
	ShapeHintForceRectangle
)

// SymbolInfo describes a single Data Matrix ECC-200 symbol size.
type SymbolInfo struct {
	Rectangular           bool
	DataCapacity          int // data codewords, summed over all blocks
	ErrorCodewords        int // error correction codewords, summed over all blocks
	DataRegionSizeColumns int
	DataRegionSizeRows    int
	DataRegions           int
	rsBlockData           int
	rsBlockError          int
}

func newSymbolInfo(rect bool, data, ec, regionCols, regionRows, regions int) SymbolInfo {
	return SymbolInfo{rect, data, ec, regionCols, regionRows, regions, data, ec}
}

func newInterleavedSymbolInfo(data, ec, regionCols, regionRows, regions, blockData, blockError int) SymbolInfo {
	return SymbolInfo{false, data, ec, regionCols, regionRows, regions, blockData, blockError}
}

// symbols lists every ECC-200 size in the order the encoder tries them,
// which is by data capacity with squares first on ties (ISO/IEC 16022
// Table 7).
var symbols = []SymbolInfo{
	newSymbolInfo(false, 3, 5, 8, 8, 1),
	newSymbolInfo(false, 5, 7, 10, 10, 1),
	newSymbolInfo(true, 5, 7, 16, 6, 1),
	newSymbolInfo(false, 8, 10, 12, 12, 1),
	newSymbolInfo(true, 10, 11, 14, 6, 2),
	newSymbolInfo(false, 12, 12, 14, 14, 1),
	newSymbolInfo(true, 16, 14, 24, 10, 1),
	newSymbolInfo(false, 18, 14, 16, 16, 1),
	newSymbolInfo(false, 22, 18, 18, 18, 1),
	newSymbolInfo(true, 22, 18, 16, 10, 2),
	newSymbolInfo(false, 30, 20, 20, 20, 1),
	newSymbolInfo(true, 32, 24, 16, 14, 2),
	newSymbolInfo(false, 36, 24, 22, 22, 1),
	newSymbolInfo(false, 44, 28, 24, 24, 1),
	newSymbolInfo(true, 49, 28, 22, 14, 2),
	newSymbolInfo(false, 62, 36, 14, 14, 4),
	newSymbolInfo(false, 86, 42, 16, 16, 4),
	newSymbolInfo(false, 114, 48, 18, 18, 4),
	newSymbolInfo(false, 144, 56, 20, 20, 4),
	newSymbolInfo(false, 174, 68, 22, 22, 4),
	newInterleavedSymbolInfo(204, 84, 24, 24, 4, 102, 42),
	newInterleavedSymbolInfo(280, 112, 14, 14, 16, 140, 56),
	newInterleavedSymbolInfo(368, 144, 16, 16, 16, 92, 36),
	newInterleavedSymbolInfo(456, 192, 18, 18, 16, 114, 48),
	newInterleavedSymbolInfo(576, 224, 20, 20, 16, 144, 56),
	newInterleavedSymbolInfo(696, 272, 22, 22, 16, 174, 68),
	newInterleavedSymbolInfo(816, 336, 24, 24, 16, 136, 56),
	newInterleavedSymbolInfo(1050, 408, 18, 18, 36, 175, 68),
	newInterleavedSymbolInfo(1304, 496, 20, 20, 36, 163, 62),
	// 144x144 mixes 156 and 155 codeword blocks; see DataLengthForBlock.
	newInterleavedSymbolInfo(1558, 620, 22, 22, 36, -1, 62),
}

func (si *SymbolInfo) horizontalDataRegions() int {
	switch si.DataRegions {
	case 1:
		return 1
	case 2, 4:
		return 2
	case 16:
		return 4
	case 36:
		return 6
	}
	panic("datamatrix/encoder: unsupported number of data regions")
}

func (si *SymbolInfo) verticalDataRegions() int {
	switch si.DataRegions {
	case 1, 2:
		return 1
	case 4:
		return 2
	case 16:
		return 4
	case 36:
		return 6
	}
	panic("datamatrix/encoder: unsupported number of data regions")
}

// SymbolWidth returns the symbol width in modules, finder patterns included.
func (si *SymbolInfo) SymbolWidth() int {
	return si.horizontalDataRegions() * (si.DataRegionSizeColumns + 2)
}

// SymbolHeight returns the symbol height in modules, finder patterns included.
func (si *SymbolInfo) SymbolHeight() int {
	return si.verticalDataRegions() * (si.DataRegionSizeRows + 2)
}

// MappingMatrixColumns returns the columns of the data area with the
// finder and clock patterns removed.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.horizontalDataRegions() * si.DataRegionSizeColumns
}

// MappingMatrixRows returns the rows of the data area with the finder and
// clock patterns removed.
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.verticalDataRegions() * si.DataRegionSizeRows
}

// InterleavedBlockCount returns the number of Reed-Solomon blocks.
func (si *SymbolInfo) InterleavedBlockCount() int {
	if si.rsBlockData < 0 {
		return 10
	}
	return si.DataCapacity / si.rsBlockData
}

// DataLengthForBlock returns the data codewords in block i (zero based).
func (si *SymbolInfo) DataLengthForBlock(i int) int {
	if si.rsBlockData < 0 {
		if i < 8 {
			return 156
		}
		return 155
	}
	return si.rsBlockData
}

// ErrorLengthForBlock returns the error correction codewords in block i.
func (si *SymbolInfo) ErrorLengthForBlock(int) int {
	return si.rsBlockError
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

func (si *SymbolInfo) String() string {
	shape := "square"
	if si.Rectangular {
		shape = "rectangular"
	}
	return fmt.Sprintf("%s %dx%d symbol, %d data codewords", shape, si.SymbolWidth(), si.SymbolHeight(), si.DataCapacity)
}

func (h SymbolShapeHint) allows(si *SymbolInfo) bool {
	switch h {
	case ShapeHintForceSquare:
		return !si.Rectangular
	case ShapeHintForceRectangle:
		return si.Rectangular
	}
	return true
}

// lookup returns the smallest symbol allowed by shape that holds
// dataCodewords, or nil.
func lookup(dataCodewords int, shape SymbolShapeHint) *SymbolInfo {
	for i := range symbols {
		si := &symbols[i]
		if shape.allows(si) && si.DataCapacity >= dataCodewords {
			return si
		}
	}
	return nil
}

// largest returns the biggest symbol allowed by shape.
func largest(shape SymbolShapeHint) *SymbolInfo {
	for i := len(symbols) - 1; i >= 0; i-- {
		if shape.allows(&symbols[i]) {
			return &symbols[i]
		}
	}
	return nil
}

// Lookup finds the smallest symbol that can hold the given number of data
// codewords. shape restricts the search to square or rectangular symbols.
func Lookup(dataCodewords int, shape SymbolShapeHint) (*SymbolInfo, error) {
	if si := lookup(dataCodewords, shape); si != nil {
		return si, nil
	}
	return nil, fmt.Errorf("%w: %d data codewords exceed the largest %s Data Matrix symbol (%d)",
		quickcodes.ErrGeneration, dataCodewords, shape, largest(shape).DataCapacity)
}

// LookupBySize returns the SymbolInfo for a symbol of the given size in
// modules, or nil.
func LookupBySize(width, height int) *SymbolInfo {
	for i := range symbols {
		si := &symbols[i]
		if si.SymbolWidth() == width && si.SymbolHeight() == height {
			return si
		}
	}
	return nil
}

func (h SymbolShapeHint) String() string {
	switch h {
	case ShapeHintForceSquare:
		return "square"
	case ShapeHintForceRectangle:
		return "rectangular"
	}
	return "any"
}
