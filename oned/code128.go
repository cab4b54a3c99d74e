package oned

import (
	"fmt"

	"github.com/ericlevine/quickcodes"
)

// Code 128 symbol values with a fixed meaning.
const (
	code128Shift  = 98
	code128CodeC  = 99
	code128CodeB  = 100
	code128CodeA  = 101
	code128FNC4A  = 101
	code128FNC4B  = 100
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106
)

// code128Patterns holds the bar/space widths of every Code 128 symbol
// value. Each symbol is 11 modules wide except the 13 module stop.
var code128Patterns = [107][]int{
	{2, 1, 2, 2, 2, 2}, // 0
	{2, 2, 2, 1, 2, 2},
	{2, 2, 2, 2, 2, 1},
	{1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2},
	{1, 3, 1, 2, 2, 2}, // 5
	{1, 2, 2, 2, 1, 3},
	{1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2},
	{2, 2, 1, 2, 1, 3},
	{2, 2, 1, 3, 1, 2}, // 10
	{2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2},
	{1, 2, 2, 1, 3, 2},
	{1, 2, 2, 2, 3, 1},
	{1, 1, 3, 2, 2, 2}, // 15
	{1, 2, 3, 1, 2, 2},
	{1, 2, 3, 2, 2, 1},
	{2, 2, 3, 2, 1, 1},
	{2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, // 20
	{2, 1, 3, 2, 1, 2},
	{2, 2, 3, 1, 1, 2},
	{3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2},
	{3, 2, 1, 1, 2, 2}, // 25
	{3, 2, 1, 2, 2, 1},
	{3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2},
	{3, 2, 2, 2, 1, 1},
	{2, 1, 2, 1, 2, 3}, // 30
	{2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1},
	{1, 1, 1, 3, 2, 3},
	{1, 3, 1, 1, 2, 3},
	{1, 3, 1, 3, 2, 1}, // 35
	{1, 1, 2, 3, 1, 3},
	{1, 3, 2, 1, 1, 3},
	{1, 3, 2, 3, 1, 1},
	{2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, // 40
	{2, 3, 1, 3, 1, 1},
	{1, 1, 2, 1, 3, 3},
	{1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1},
	{1, 1, 3, 1, 2, 3}, // 45
	{1, 1, 3, 3, 2, 1},
	{1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1},
	{2, 1, 1, 3, 3, 1},
	{2, 3, 1, 1, 3, 1}, // 50
	{2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1},
	{2, 1, 3, 1, 3, 1},
	{3, 1, 1, 1, 2, 3},
	{3, 1, 1, 3, 2, 1}, // 55
	{3, 3, 1, 1, 2, 1},
	{3, 1, 2, 1, 1, 3},
	{3, 1, 2, 3, 1, 1},
	{3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, // 60
	{2, 2, 1, 4, 1, 1},
	{4, 3, 1, 1, 1, 1},
	{1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2},
	{1, 2, 1, 1, 2, 4}, // 65
	{1, 2, 1, 4, 2, 1},
	{1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1},
	{1, 1, 2, 2, 1, 4},
	{1, 1, 2, 4, 1, 2}, // 70
	{1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1},
	{1, 4, 2, 1, 1, 2},
	{1, 4, 2, 2, 1, 1},
	{2, 4, 1, 2, 1, 1}, // 75
	{2, 2, 1, 1, 1, 4},
	{4, 1, 3, 1, 1, 1},
	{2, 4, 1, 1, 1, 2},
	{1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, // 80
	{1, 2, 1, 1, 4, 2},
	{1, 2, 1, 2, 4, 1},
	{1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2},
	{1, 2, 4, 2, 1, 1}, // 85
	{4, 1, 1, 2, 1, 2},
	{4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1},
	{2, 1, 2, 1, 4, 1},
	{2, 1, 4, 1, 2, 1}, // 90
	{4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3},
	{1, 1, 1, 3, 4, 1},
	{1, 3, 1, 1, 4, 1},
	{1, 1, 4, 1, 1, 3}, // 95
	{1, 1, 4, 3, 1, 1},
	{4, 1, 1, 1, 1, 3},
	{4, 1, 1, 3, 1, 1},
	{1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, // 100
	{3, 1, 1, 1, 4, 1},
	{4, 1, 1, 1, 3, 1},
	{2, 1, 1, 4, 1, 2}, // START_A
	{2, 1, 1, 2, 1, 4}, // START_B
	{2, 1, 1, 2, 3, 2}, // START_C
	{2, 3, 3, 1, 1, 1, 2}, // STOP
}

// Code sets, in the order ties are broken when choosing a start set.
const (
	code128SetB = iota
	code128SetA
	code128SetC
	code128NumSets
)

var code128StartCodes = [code128NumSets]int{code128StartB, code128StartA, code128StartC}

// code128LatchCodes is the symbol that latches into a set from any other.
var code128LatchCodes = [code128NumSets]int{code128CodeB, code128CodeA, code128CodeC}

var code128FNC4 = [code128NumSets]int{code128FNC4B, code128FNC4A, -1}

// Steps the encoder can take from one position within a set.
const (
	code128StepChar     = iota // one character of the current set
	code128StepPair            // two digits in set C
	code128StepShift           // SHIFT, then one character of the other of A/B
	code128StepExtended        // FNC4, then a character 128-255 of the current set
)

const code128Infinity = 1 << 30

// code128Value returns the symbol value of ASCII c in set A or B.
func code128Value(c int, set int) (int, bool) {
	switch set {
	case code128SetA:
		if c < 32 {
			return c + 64, true
		}
		if c < 96 {
			return c - 32, true
		}
	case code128SetB:
		if c >= 32 && c < 128 {
			return c - 32, true
		}
	}
	return 0, false
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func otherSet(set int) int {
	if set == code128SetA {
		return code128SetB
	}
	return code128SetA
}

// code128Plan is the minimal encoding computed by planCode128. For every
// position and current set it records the cheapest step within the set
// and whether latching to another set first is cheaper.
type code128Plan struct {
	codes []int
	step  [][code128NumSets]int
	latch [][code128NumSets]int
	start int
}

// planCode128 finds the encoding with the fewest symbols. forced is a set
// index, or -1 to allow latches and shifts between all three sets.
func planCode128(codes []int, forced int) (*code128Plan, error) {
	n := len(codes)
	// inSet[i][s]: symbols needed for codes[i:] when the first step is
	// taken in set s. total[i][s]: the same but allowing a latch first.
	inSet := make([][code128NumSets]int, n+1)
	total := make([][code128NumSets]int, n+1)
	p := &code128Plan{
		codes: codes,
		step:  make([][code128NumSets]int, n),
		latch: make([][code128NumSets]int, n),
	}
	allowed := func(s int) bool { return forced < 0 || forced == s }

	for i := n - 1; i >= 0; i-- {
		c := codes[i]
		for s := 0; s < code128NumSets; s++ {
			best, step := code128Infinity, -1
			if !allowed(s) {
				inSet[i][s] = best
				continue
			}
			if s == code128SetC {
				if i+1 < n && isDigit(c) && isDigit(codes[i+1]) {
					best, step = 1+total[i+2][s], code128StepPair
				}
			} else {
				if _, ok := code128Value(c, s); ok {
					best, step = 1+total[i+1][s], code128StepChar
				} else if c >= 128 {
					if _, ok := code128Value(c-128, s); ok {
						best, step = 2+total[i+1][s], code128StepExtended
					}
				} else if forced < 0 {
					if _, ok := code128Value(c, otherSet(s)); ok {
						best, step = 2+total[i+1][s], code128StepShift
					}
				}
			}
			inSet[i][s] = best
			p.step[i][s] = step
		}
		for s := 0; s < code128NumSets; s++ {
			best, latch := inSet[i][s], -1
			if forced < 0 {
				for t := 0; t < code128NumSets; t++ {
					if t != s && inSet[i][t] < code128Infinity && 1+inSet[i][t] < best {
						best, latch = 1+inSet[i][t], t
					}
				}
			}
			total[i][s] = best
			p.latch[i][s] = latch
		}
	}

	p.start = -1
	best := code128Infinity
	for s := 0; s < code128NumSets; s++ {
		if inSet[0][s] < best {
			best, p.start = inSet[0][s], s
		}
	}
	if p.start < 0 {
		return nil, fmt.Errorf("%w: data cannot be represented in Code 128%s", quickcodes.ErrInvalidData, forcedSetSuffix(forced))
	}
	return p, nil
}

func forcedSetSuffix(forced int) string {
	switch forced {
	case code128SetA:
		return " code set A"
	case code128SetB:
		return " code set B"
	case code128SetC:
		return " code set C (needs an even number of digits)"
	}
	return ""
}

// values expands the plan into symbol values: start code, data, checksum
// and stop code.
func (p *code128Plan) values() []int {
	vals := []int{code128StartCodes[p.start]}
	set := p.start
	for i := 0; i < len(p.codes); {
		if i > 0 {
			if t := p.latch[i][set]; t >= 0 {
				vals = append(vals, code128LatchCodes[t])
				set = t
			}
		}
		c := p.codes[i]
		switch p.step[i][set] {
		case code128StepChar:
			v, _ := code128Value(c, set)
			vals = append(vals, v)
			i++
		case code128StepPair:
			vals = append(vals, (c-'0')*10+(p.codes[i+1]-'0'))
			i += 2
		case code128StepShift:
			v, _ := code128Value(c, otherSet(set))
			vals = append(vals, code128Shift, v)
			i++
		case code128StepExtended:
			v, _ := code128Value(c-128, set)
			vals = append(vals, code128FNC4[set], v)
			i++
		}
	}

	checksum := vals[0]
	for i := 1; i < len(vals); i++ {
		checksum += i * vals[i]
	}
	return append(vals, checksum%103, code128Stop)
}

// Code128Values returns the symbol values that encode contents: start
// code, data symbols, checksum and stop code. forceSet is "", "A", "B" or
// "C". Characters must lie in the ISO-8859-1 range; 128-255 are written
// with FNC4.
func Code128Values(contents, forceSet string) ([]int, error) {
	if contents == "" {
		return nil, fmt.Errorf("%w: empty Code 128 data", quickcodes.ErrInvalidData)
	}
	forced := -1
	switch forceSet {
	case "":
	case "A":
		forced = code128SetA
	case "B":
		forced = code128SetB
	case "C":
		forced = code128SetC
	default:
		return nil, fmt.Errorf("%w: unsupported Code 128 code set %q", quickcodes.ErrInvalidData, forceSet)
	}

	codes := make([]int, 0, len(contents))
	for _, r := range contents {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: character %q cannot be encoded in Code 128", quickcodes.ErrInvalidData, r)
		}
		codes = append(codes, int(r))
	}

	plan, err := planCode128(codes, forced)
	if err != nil {
		return nil, err
	}
	return plan.values(), nil
}

// Code128Encoder encodes Code 128 choosing code sets A, B and C so that
// the symbol count is minimal.
type Code128Encoder struct{}

// NewCode128Encoder creates a Code 128 encoder.
func NewCode128Encoder() *Code128Encoder {
	return &Code128Encoder{}
}

// Encode implements quickcodes.Encoder.
func (e *Code128Encoder) Encode(contents string, cfg *quickcodes.RenderConfig) (string, quickcodes.ModuleGrid, error) {
	forceSet := ""
	if cfg != nil {
		forceSet = cfg.Code128.ForceSet
	}
	vals, err := Code128Values(contents, forceSet)
	if err != nil {
		return "", quickcodes.ModuleGrid{}, err
	}

	width := 0
	for _, v := range vals {
		width += patternWidth(code128Patterns[v])
	}
	result := make([]bool, width)
	pos := 0
	for _, v := range vals {
		pos += appendPattern(result, pos, code128Patterns[v], true)
	}
	return contents, linear(result), nil
}
