// Package reedsolomon implements Reed-Solomon error correction coding over
// the binary extension fields used by DataMatrix and Aztec.
package reedsolomon

import "fmt"

// GenericGF is a Galois field GF(2^n) defined by a primitive polynomial.
// Fields are immutable after construction and safe to share.
type GenericGF struct {
	expTable      []int
	logTable      []int
	size          int
	primitive     int
	generatorBase int
}

// Fields used by the matrix symbologies.
var (
	DataMatrixField256 = NewGenericGF(0x012D, 256, 1) // x^8 + x^5 + x^3 + x^2 + 1
	AztecData12        = NewGenericGF(0x1069, 4096, 1)
	AztecData10        = NewGenericGF(0x0409, 1024, 1)
	AztecData8         = DataMatrixField256
	AztecData6         = NewGenericGF(0x0043, 64, 1)
	AztecParam         = NewGenericGF(0x0013, 16, 1)
)

// NewGenericGF builds GF(size) from the primitive polynomial. Generator
// polynomials produced from this field have roots 2^generatorBase onwards.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}
	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x <<= 1
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}
	return gf
}

// Exp returns 2^a in this field.
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a%(gf.size-1)]
}

// Log returns log2(a) in this field.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the number of elements in the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the exponent of the first generator root.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// EvaluateAt evaluates the polynomial with the given coefficients (highest
// degree first) at a.
func (gf *GenericGF) EvaluateAt(coefficients []int, a int) int {
	result := 0
	for _, c := range coefficients {
		result = gf.Multiply(a, result) ^ c
	}
	return result
}

func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
