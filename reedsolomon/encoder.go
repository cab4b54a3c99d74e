package reedsolomon

import "sync"

// Encoder computes Reed-Solomon check words. Generator polynomials are built
// lazily and cached; the cache is guarded so one Encoder can be shared by
// concurrent callers.
type Encoder struct {
	field *GenericGF

	mu         sync.Mutex
	generators [][]int
}

// NewEncoder creates an Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	return &Encoder{
		field:      field,
		generators: [][]int{{1}},
	}
}

// generator returns the monic generator polynomial of the given degree,
// highest-degree coefficient first.
func (e *Encoder) generator(degree int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for d := len(e.generators); d <= degree; d++ {
		last := e.generators[d-1]
		root := e.field.Exp(d - 1 + e.field.generatorBase)
		next := make([]int, len(last)+1)
		for i, c := range last {
			next[i] ^= c
			next[i+1] ^= e.field.Multiply(c, root)
		}
		e.generators = append(e.generators, next)
	}
	return e.generators[degree]
}

// Encode returns numEC check words for data. The input is not modified.
func (e *Encoder) Encode(data []int, numEC int) []int {
	if numEC <= 0 {
		panic("reedsolomon: no error correction words requested")
	}
	if len(data) == 0 {
		panic("reedsolomon: no data words provided")
	}
	g := e.generator(numEC)
	rem := make([]int, numEC)
	for _, d := range data {
		factor := d ^ rem[0]
		copy(rem, rem[1:])
		rem[numEC-1] = 0
		if factor == 0 {
			continue
		}
		for i := 0; i < numEC; i++ {
			rem[i] ^= e.field.Multiply(g[i+1], factor)
		}
	}
	return rem
}
