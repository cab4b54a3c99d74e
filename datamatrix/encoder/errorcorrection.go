// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/reedsolomon"
)

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

// EncodeECC200 appends the Reed-Solomon codewords for a full set of data
// codewords. Larger symbols split the data into interleaved blocks: data
// codeword i belongs to block i mod n, and the check words of each block
// are interleaved the same way after the data. In the 144x144 symbol the
// two short blocks come last in the data, so the check word columns are
// rotated by the data remainder to keep the long blocks first.
func EncodeECC200(codewords []byte, si *SymbolInfo) ([]byte, error) {
	if len(codewords) != si.DataCapacity {
		return nil, fmt.Errorf("%w: expected %d data codewords, got %d",
			quickcodes.ErrGeneration, si.DataCapacity, len(codewords))
	}
	result := make([]byte, si.TotalCodewords())
	copy(result, codewords)

	blockCount := si.InterleavedBlockCount()
	offset := si.DataCapacity % blockCount
	for block := 0; block < blockCount; block++ {
		data := make([]int, 0, si.DataLengthForBlock(block))
		for d := block; d < si.DataCapacity; d += blockCount {
			data = append(data, int(codewords[d]))
		}
		ecc := rsEncoder.Encode(data, si.ErrorLengthForBlock(block))
		column := (block + blockCount - offset) % blockCount
		for i, e := range ecc {
			result[si.DataCapacity+column+i*blockCount] = byte(e)
		}
	}
	return result, nil
}
