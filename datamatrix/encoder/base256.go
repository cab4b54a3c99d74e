// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// base256Encoder copies bytes verbatim behind a length field, scrambled
// with the 255-state algorithm.
type base256Encoder struct{}

func (base256Encoder) mode() int { return modeBase256 }

func (e base256Encoder) encode(c *encoderContext) {
	buffer := []byte{0} // length field
	for c.hasMoreCharacters() {
		buffer = append(buffer, c.current())
		c.pos++
		if lookAheadTest(c.msg, c.pos, e.mode()) != e.mode() {
			c.signalEncoderChange(modeASCII)
			break
		}
	}

	dataCount := len(buffer) - 1
	currentSize := c.codewordCount() + dataCount + 1
	mustPad := c.available(currentSize) > 0
	// A zero length field means "to the end of the symbol".
	if c.hasMoreCharacters() || mustPad {
		if dataCount <= 249 {
			buffer[0] = byte(dataCount)
		} else {
			buffer[0] = byte(dataCount/250 + 249)
			buffer = append(buffer[:1], append([]byte{byte(dataCount % 250)}, buffer[1:]...)...)
		}
	}
	for _, b := range buffer {
		c.writeCodewords(randomize255State(b, c.codewordCount()+1))
	}
}

func randomize255State(ch byte, position int) byte {
	pseudoRandom := ((149 * position) % 255) + 1
	tmp := int(ch) + pseudoRandom
	if tmp <= 255 {
		return byte(tmp)
	}
	return byte(tmp - 256)
}
