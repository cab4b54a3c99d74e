// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
)

// Error correction in PDF417 works over the prime field GF(929); the
// generator polynomial of level k has the roots 3^1 .. 3^(2^(k+1)).
const (
	modulus       = 929
	generatorRoot = 3
	MaxErrorLevel = 8
)

// generators[k] holds the coefficients of the level k generator polynomial,
// lowest degree first, without the leading 1.
var generators [MaxErrorLevel + 1][]int

func init() {
	for level := range generators {
		generators[level] = generatorPolynomial(ErrorCorrectionCodewordCount(level))
	}
}

func generatorPolynomial(degree int) []int {
	p := []int{1}
	root := 1
	for i := 0; i < degree; i++ {
		root = root * generatorRoot % modulus
		// p *= (x - root)
		q := make([]int, len(p)+1)
		for j, c := range p {
			q[j+1] = (q[j+1] + c) % modulus
			q[j] = (q[j] + modulus - root*c%modulus) % modulus
		}
		p = q
	}
	return p[:degree]
}

// ErrorCorrectionCodewordCount returns the number of check codewords added
// at the given level: 2 at level 0, doubling up to 512 at level 8.
func ErrorCorrectionCodewordCount(level int) int {
	return 2 << level
}

func checkLevel(level int) error {
	if level < 0 || level > MaxErrorLevel {
		return fmt.Errorf("%w: PDF417 error correction level %d outside 0-%d", quickcodes.ErrInvalidData, level, MaxErrorLevel)
	}
	return nil
}

// GenerateErrorCorrection divides the data codewords by the level's
// generator polynomial and returns the check codewords in symbol order.
func GenerateErrorCorrection(data []int, level int) ([]int, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	coef := generators[level]
	k := len(coef)
	e := make([]int, k)
	for _, d := range data {
		t1 := (d + e[k-1]) % modulus
		for j := k - 1; j >= 1; j-- {
			t2 := t1 * coef[j] % modulus
			e[j] = (e[j-1] + modulus - t2) % modulus
		}
		e[0] = (modulus - t1*coef[0]%modulus) % modulus
	}
	ec := make([]int, k)
	for j, v := range e {
		ec[k-1-j] = (modulus - v) % modulus
	}
	return ec, nil
}
