// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// encoderContext carries the state shared by the encodation modes while a
// message is compacted into codewords.
type encoderContext struct {
	msg        []byte
	shape      SymbolShapeHint
	codewords  []byte
	pos        int
	newMode    int
	symbolInfo *SymbolInfo
	skipAtEnd  int
	// stalled is set when a mode returned without consuming input, so
	// ASCII takes the next character without looking ahead.
	stalled    bool
}

func newEncoderContext(msg []byte, shape SymbolShapeHint) *encoderContext {
	return &encoderContext{
		msg:       msg,
		shape:     shape,
		codewords: make([]byte, 0, len(msg)),
		newMode:   -1,
	}
}

func (c *encoderContext) current() byte { return c.msg[c.pos] }

func (c *encoderContext) writeCodewords(cw ...byte) {
	c.codewords = append(c.codewords, cw...)
}

func (c *encoderContext) codewordCount() int { return len(c.codewords) }

func (c *encoderContext) signalEncoderChange(mode int) { c.newMode = mode }

func (c *encoderContext) resetEncoderSignal() { c.newMode = -1 }

func (c *encoderContext) totalMessageCharCount() int { return len(c.msg) - c.skipAtEnd }

func (c *encoderContext) hasMoreCharacters() bool { return c.pos < c.totalMessageCharCount() }

func (c *encoderContext) remainingCharacters() int { return c.totalMessageCharCount() - c.pos }

// updateSymbolInfo grows the tracked symbol so it holds at least length
// data codewords. When nothing is large enough the largest allowed symbol
// stands in; the final size check reports the overflow.
func (c *encoderContext) updateSymbolInfo(length int) {
	if c.symbolInfo != nil && length <= c.symbolInfo.DataCapacity {
		return
	}
	if si := lookup(length, c.shape); si != nil {
		c.symbolInfo = si
	} else {
		c.symbolInfo = largest(c.shape)
	}
}

func (c *encoderContext) resetSymbolInfo() { c.symbolInfo = nil }

// available returns the free data codewords in the tracked symbol after
// count codewords.
func (c *encoderContext) available(count int) int {
	c.updateSymbolInfo(count)
	return c.symbolInfo.DataCapacity - count
}
