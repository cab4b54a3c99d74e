package encoder

import "github.com/ericlevine/quickcodes/bitutil"

// drawSymbol lays out the data layers, mode message, bullseye and, for
// full symbols, the reference grid. It returns the matrix and its size.
func drawSymbol(messageBits, modeMessage *bitutil.BitArray, compact bool, layers int) (*bitutil.BitMatrix, int) {
	baseSize := layers*4 + 14
	if compact {
		baseSize = layers*4 + 11
	}
	// alignmentMap turns a position in the symbol without reference grid
	// lines into a matrix coordinate.
	alignmentMap := make([]int, baseSize)
	size := baseSize
	if compact {
		for i := range alignmentMap {
			alignmentMap[i] = i
		}
	} else {
		size = baseSize + 1 + 2*((baseSize/2-1)/15)
		origCenter := baseSize / 2
		center := size / 2
		for i := 0; i < origCenter; i++ {
			offset := i + i/15
			alignmentMap[origCenter-i-1] = center - offset - 1
			alignmentMap[origCenter+i] = center + offset + 1
		}
	}

	matrix := bitutil.NewBitMatrix(size)
	get := func(i int) bool {
		return i < messageBits.Size() && messageBits.Get(i)
	}

	// Each layer is two modules thick and is filled clockwise from the
	// top left, one side at a time.
	rowOffset := 0
	for i := 0; i < layers; i++ {
		rowSize := (layers-i)*4 + 12
		if compact {
			rowSize = (layers-i)*4 + 9
		}
		for j := 0; j < rowSize; j++ {
			col := j * 2
			for k := 0; k < 2; k++ {
				if get(rowOffset + col + k) {
					matrix.Set(alignmentMap[i*2+k], alignmentMap[i*2+j])
				}
				if get(rowOffset + rowSize*2 + col + k) {
					matrix.Set(alignmentMap[i*2+j], alignmentMap[baseSize-1-i*2-k])
				}
				if get(rowOffset + rowSize*4 + col + k) {
					matrix.Set(alignmentMap[baseSize-1-i*2-k], alignmentMap[baseSize-1-i*2-j])
				}
				if get(rowOffset + rowSize*6 + col + k) {
					matrix.Set(alignmentMap[baseSize-1-i*2-j], alignmentMap[i*2+k])
				}
			}
		}
		rowOffset += rowSize * 8
	}

	drawModeMessage(matrix, compact, size, modeMessage)

	center := size / 2
	if compact {
		drawBullsEye(matrix, center, 5)
		return matrix, size
	}
	drawBullsEye(matrix, center, 7)
	for i, j := 0, 0; i < baseSize/2-1; i, j = i+15, j+16 {
		for k := center & 1; k < size; k += 2 {
			matrix.Set(center-j, k)
			matrix.Set(center+j, k)
			matrix.Set(k, center-j)
			matrix.Set(k, center+j)
		}
	}
	return matrix, size
}

// drawBullsEye draws the finder rings out to size and the orientation
// marks at its corners.
func drawBullsEye(matrix *bitutil.BitMatrix, center, size int) {
	for i := 0; i < size; i += 2 {
		for j := center - i; j <= center+i; j++ {
			matrix.Set(j, center-i)
			matrix.Set(j, center+i)
			matrix.Set(center-i, j)
			matrix.Set(center+i, j)
		}
	}
	matrix.Set(center-size, center-size)
	matrix.Set(center-size+1, center-size)
	matrix.Set(center-size, center-size+1)
	matrix.Set(center+size, center-size)
	matrix.Set(center+size, center-size+1)
	matrix.Set(center+size, center+size-1)
}

// drawModeMessage writes the mode message clockwise around the bullseye,
// skipping the reference grid line in full symbols.
func drawModeMessage(matrix *bitutil.BitMatrix, compact bool, size int, modeMessage *bitutil.BitArray) {
	center := size / 2
	if compact {
		for i := 0; i < 7; i++ {
			offset := center - 3 + i
			if modeMessage.Get(i) {
				matrix.Set(offset, center-5)
			}
			if modeMessage.Get(i + 7) {
				matrix.Set(center+5, offset)
			}
			if modeMessage.Get(20 - i) {
				matrix.Set(offset, center+5)
			}
			if modeMessage.Get(27 - i) {
				matrix.Set(center-5, offset)
			}
		}
		return
	}
	for i := 0; i < 10; i++ {
		offset := center - 5 + i + i/5
		if modeMessage.Get(i) {
			matrix.Set(offset, center-7)
		}
		if modeMessage.Get(i + 10) {
			matrix.Set(center+7, offset)
		}
		if modeMessage.Get(29 - i) {
			matrix.Set(offset, center+7)
		}
		if modeMessage.Get(39 - i) {
			matrix.Set(center-7, offset)
		}
	}
}
