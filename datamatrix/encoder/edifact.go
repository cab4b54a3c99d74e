// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// edifactEncoder packs four 6-bit values (ASCII 32-94) into three
// codewords. Value 31 unlatches back to ASCII.
type edifactEncoder struct{}

func (edifactEncoder) mode() int { return modeEDIFACT }

func (e edifactEncoder) encode(c *encoderContext) {
	var buffer []byte
	for c.hasMoreCharacters() {
		ch := c.current()
		if !isNativeEDIFACT(ch) {
			// Unlatch inside the current quad; ASCII takes over.
			break
		}
		buffer = append(buffer, ch&0x3f)
		c.pos++
		if len(buffer) >= 4 {
			c.writeCodewords(edifactCodewords(buffer)...)
			buffer = buffer[4:]
			if lookAheadTest(c.msg, c.pos, e.mode()) != e.mode() {
				c.signalEncoderChange(modeASCII)
				break
			}
		}
	}
	buffer = append(buffer, 31)
	edifactEOD(c, buffer)
}

func edifactEOD(c *encoderContext, buffer []byte) {
	defer c.signalEncoderChange(modeASCII)
	count := len(buffer)
	if count == 0 {
		return
	}
	if count == 1 {
		// Only the unlatch is left. It can be dropped when the rest of the
		// message fills the symbol exactly in ASCII.
		available := c.available(c.codewordCount())
		remaining := c.remainingCharacters()
		if remaining > available {
			c.updateSymbolInfo(c.codewordCount() + 1)
			available = c.symbolInfo.DataCapacity - c.codewordCount()
		}
		if remaining <= available && available <= 2 {
			return
		}
	}

	restChars := count - 1
	encoded := edifactCodewords(buffer)
	restInASCII := !c.hasMoreCharacters() && restChars <= 2
	if restChars <= 2 {
		c.updateSymbolInfo(c.codewordCount() + restChars)
		if c.symbolInfo.DataCapacity-c.codewordCount() >= 3 {
			restInASCII = false
			c.updateSymbolInfo(c.codewordCount() + len(encoded))
		}
	}
	if restInASCII {
		c.resetSymbolInfo()
		c.pos -= restChars
	} else {
		c.writeCodewords(encoded...)
	}
}

// edifactCodewords packs up to four values, emitting only the codewords
// the values reach into.
func edifactCodewords(sb []byte) []byte {
	var v [4]int
	for i := 0; i < len(sb) && i < 4; i++ {
		v[i] = int(sb[i])
	}
	packed := v[0]<<18 | v[1]<<12 | v[2]<<6 | v[3]
	cw := []byte{byte(packed >> 16), byte(packed >> 8), byte(packed)}
	return cw[:min(len(sb), 3)]
}
