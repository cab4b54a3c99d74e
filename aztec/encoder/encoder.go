package encoder

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
	"github.com/ericlevine/quickcodes/bitutil"
	"github.com/ericlevine/quickcodes/reedsolomon"
)

// Symbol limits.
const (
	MaxCompactLayers = 4
	MaxLayers        = 32
)

// Options controls symbol selection.
type Options struct {
	// ECPercent is the minimum share of the data bits added as check
	// words, on top of a fixed 11 bits.
	ECPercent int
	// Layers forces the number of data layers. Zero picks the smallest
	// symbol that fits.
	Layers int
	// Compact restricts the symbol to the compact format.
	Compact bool
}

// Code is an encoded Aztec symbol.
type Code struct {
	Matrix  *bitutil.BitMatrix
	Compact bool
	Size    int
	Layers  int
	// DataWords is the number of data codewords, as announced in the
	// mode message.
	DataWords int
}

// wordSizes[layers] is the codeword width of a symbol with that many
// layers. Index 0 is the mode message.
var wordSizes = [MaxLayers + 1]int{
	4, 6, 6, 8, 8, 8, 8, 8, 8, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

var rsEncoders = map[int]*reedsolomon.Encoder{
	4:  reedsolomon.NewEncoder(reedsolomon.AztecParam),
	6:  reedsolomon.NewEncoder(reedsolomon.AztecData6),
	8:  reedsolomon.NewEncoder(reedsolomon.AztecData8),
	10: reedsolomon.NewEncoder(reedsolomon.AztecData10),
	12: reedsolomon.NewEncoder(reedsolomon.AztecData12),
}

// Encode encodes data, a sequence of 8-bit characters, into an Aztec
// symbol. An eci other than NoECI is announced ahead of the data.
func Encode(data []byte, eci int, opts Options) (*Code, error) {
	ecPercent := opts.ECPercent
	if ecPercent < 0 || ecPercent > 100 {
		return nil, fmt.Errorf("%w: Aztec error correction %d%% out of range", quickcodes.ErrInvalidData, ecPercent)
	}
	bits, err := EncodeHighLevel(data, eci)
	if err != nil {
		return nil, err
	}

	eccBits := bits.Size()*ecPercent/100 + 11
	totalSizeBits := bits.Size() + eccBits

	var (
		compact          bool
		layers           int
		totalBitsInLayer int
		wordSize         int
		stuffed          *bitutil.BitArray
	)
	if opts.Layers != 0 {
		compact = opts.Compact
		layers = opts.Layers
		maxLayers := MaxLayers
		if compact {
			maxLayers = MaxCompactLayers
		}
		if layers < 1 || layers > maxLayers {
			return nil, fmt.Errorf("%w: Aztec layer count %d outside 1-%d", quickcodes.ErrInvalidData, layers, maxLayers)
		}
		totalBitsInLayer = totalBits(layers, compact)
		wordSize = wordSizes[layers]
		usable := totalBitsInLayer - totalBitsInLayer%wordSize
		stuffed = stuffBits(bits, wordSize)
		if stuffed.Size()+eccBits > usable || (compact && stuffed.Size() > wordSize*64) {
			return nil, fmt.Errorf("%w: %d data bits do not fit %s", quickcodes.ErrGeneration, stuffed.Size(), describe(compact, layers))
		}
	} else {
		// Compact symbols with 1-4 layers, then full symbols from 4 layers.
		// Full symbols with 1-3 layers are never smaller than the compact
		// symbol with one more layer.
		last := MaxLayers
		if opts.Compact {
			last = MaxCompactLayers - 1
		}
		found := false
		for i := 0; i <= last; i++ {
			compact = i < MaxCompactLayers
			layers = i
			if compact {
				layers = i + 1
			}
			totalBitsInLayer = totalBits(layers, compact)
			if totalSizeBits > totalBitsInLayer {
				continue
			}
			if stuffed == nil || wordSize != wordSizes[layers] {
				wordSize = wordSizes[layers]
				stuffed = stuffBits(bits, wordSize)
			}
			usable := totalBitsInLayer - totalBitsInLayer%wordSize
			if compact && stuffed.Size() > wordSize*64 {
				continue
			}
			if stuffed.Size()+eccBits <= usable {
				found = true
				break
			}
		}
		if !found {
			kind := "Aztec symbol"
			if opts.Compact {
				kind = "compact Aztec symbol"
			}
			return nil, fmt.Errorf("%w: %d data bits do not fit any %s", quickcodes.ErrGeneration, bits.Size(), kind)
		}
	}

	messageBits := generateCheckWords(stuffed, totalBitsInLayer, wordSize)
	dataWords := stuffed.Size() / wordSize
	modeMessage := generateModeMessage(compact, layers, dataWords)

	matrix, size := drawSymbol(messageBits, modeMessage, compact, layers)
	return &Code{
		Matrix:    matrix,
		Compact:   compact,
		Size:      size,
		Layers:    layers,
		DataWords: dataWords,
	}, nil
}

func describe(compact bool, layers int) string {
	if compact {
		return fmt.Sprintf("a compact symbol with %d layers", layers)
	}
	return fmt.Sprintf("a full symbol with %d layers", layers)
}

// totalBits is the data capacity, in bits, of the given layers.
func totalBits(layers int, compact bool) int {
	base := 112
	if compact {
		base = 88
	}
	return (base + 16*layers) * layers
}

// stuffBits splits bits into codewords, inserting a stuff bit wherever a
// codeword would otherwise be all zeros or all ones.
func stuffBits(bits *bitutil.BitArray, wordSize int) *bitutil.BitArray {
	out := bitutil.NewBitArray(0)
	n := bits.Size()
	mask := 1<<wordSize - 2
	for i := 0; i < n; i += wordSize {
		word := 0
		for j := 0; j < wordSize; j++ {
			if i+j >= n || bits.Get(i+j) {
				word |= 1 << (wordSize - 1 - j)
			}
		}
		switch word & mask {
		case mask:
			out.AppendBits(uint32(word&mask), wordSize)
			i--
		case 0:
			out.AppendBits(uint32(word|1), wordSize)
			i--
		default:
			out.AppendBits(uint32(word), wordSize)
		}
	}
	return out
}

// generateCheckWords appends Reed-Solomon check words to the codewords in
// stuffed and returns totalBits bits, zero padded at the front.
func generateCheckWords(stuffed *bitutil.BitArray, totalBits, wordSize int) *bitutil.BitArray {
	dataWords := stuffed.Size() / wordSize
	totalWords := totalBits / wordSize

	words := make([]int, dataWords, totalWords)
	for i := range words {
		words[i] = stuffed.ReadBits(i*wordSize, wordSize)
	}
	words = append(words, rsEncoders[wordSize].Encode(words, totalWords-dataWords)...)

	out := bitutil.NewBitArray(0)
	out.AppendBits(0, totalBits%wordSize)
	for _, w := range words {
		out.AppendBits(uint32(w), wordSize)
	}
	return out
}

// generateModeMessage encodes the layer and data word counts with their
// check words.
func generateModeMessage(compact bool, layers, dataWords int) *bitutil.BitArray {
	m := bitutil.NewBitArray(0)
	if compact {
		m.AppendBits(uint32(layers-1), 2)
		m.AppendBits(uint32(dataWords-1), 6)
		return generateCheckWords(m, 28, 4)
	}
	m.AppendBits(uint32(layers-1), 5)
	m.AppendBits(uint32(dataWords-1), 11)
	return generateCheckWords(m, 40, 4)
}
