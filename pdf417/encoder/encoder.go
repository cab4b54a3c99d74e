// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

const padCodeword = 900

// Options controls symbol construction.
type Options struct {
	// Columns fixes the number of data columns; 0 picks one.
	Columns int
	// ECLevel is the error correction level, 0-8.
	ECLevel int
	// Compact omits the right row indicator and most of the stop pattern.
	Compact    bool
	Compaction Compaction
}

// Symbol is an encoded PDF417 symbol.
type Symbol struct {
	Dimensions
	ECLevel int
	Compact bool
	// Codewords is the full codeword sequence in reading order: length
	// descriptor, data, padding and error correction.
	Codewords []int
	Matrix    *BarcodeMatrix
}

// Encode builds a PDF417 symbol holding msg, a sequence of 8-bit
// characters. An eci other than NoECI is announced ahead of the data.
func Encode(msg []byte, eci int, opts Options) (*Symbol, error) {
	if err := checkLevel(opts.ECLevel); err != nil {
		return nil, err
	}
	data, err := EncodeHighLevel(msg, opts.Compaction, eci)
	if err != nil {
		return nil, err
	}
	k := ErrorCorrectionCodewordCount(opts.ECLevel)
	dim, err := DetermineDimensions(len(data), k, opts.Columns)
	if err != nil {
		return nil, err
	}
	pad := padCodewordCount(len(data), k, dim.Cols, dim.Rows)

	codewords := make([]int, 0, dim.Cols*dim.Rows)
	codewords = append(codewords, len(data)+pad+1)
	codewords = append(codewords, data...)
	for i := 0; i < pad; i++ {
		codewords = append(codewords, padCodeword)
	}
	ec, err := GenerateErrorCorrection(codewords, opts.ECLevel)
	if err != nil {
		return nil, err
	}
	codewords = append(codewords, ec...)

	return &Symbol{
		Dimensions: dim,
		ECLevel:    opts.ECLevel,
		Compact:    opts.Compact,
		Codewords:  codewords,
		Matrix:     encodeLowLevel(codewords, dim, opts.ECLevel, opts.Compact),
	}, nil
}

// rowIndicators returns the left and right row indicator values of row y.
// Each cluster carries a different pair of the row count, the column count
// and the error correction level.
func rowIndicators(y int, dim Dimensions, ecLevel int) (left, right int) {
	base := 30 * (y / 3)
	rowsValue := (dim.Rows - 1) / 3
	colsValue := dim.Cols - 1
	levelValue := ecLevel*3 + (dim.Rows-1)%3
	switch y % 3 {
	case 0:
		return base + rowsValue, base + colsValue
	case 1:
		return base + levelValue, base + rowsValue
	default:
		return base + colsValue, base + levelValue
	}
}

func encodeLowLevel(codewords []int, dim Dimensions, ecLevel int, compact bool) *BarcodeMatrix {
	m := newBarcodeMatrix(dim.Rows, dim.Cols, compact)
	idx := 0
	for y, row := range m.rows {
		table := &codewordTable[y%3]
		left, right := rowIndicators(y, dim, ecLevel)

		row.addPattern(startPattern, startPatternLen)
		row.addPattern(table[left], 17)
		for x := 0; x < dim.Cols; x++ {
			row.addPattern(table[codewords[idx]], 17)
			idx++
		}
		if compact {
			row.addBar(true, 1)
			continue
		}
		row.addPattern(table[right], 17)
		row.addPattern(stopPattern, stopPatternLen)
	}
	return m
}
