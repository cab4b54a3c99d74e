// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// c40Encoder packs three C40 (uppercase-first) or Text (lowercase-first)
// values into two codewords.
type c40Encoder struct {
	text bool
}

func (e c40Encoder) mode() int {
	if e.text {
		return modeText
	}
	return modeC40
}

func (e c40Encoder) encode(c *encoderContext) {
	var buffer []byte
	for c.hasMoreCharacters() {
		ch := c.current()
		c.pos++
		var lastCharSize int
		buffer, lastCharSize = e.encodeChar(ch, buffer)

		unwritten := (len(buffer) / 3) * 2
		available := c.available(c.codewordCount() + unwritten)

		if !c.hasMoreCharacters() {
			// Avoid a lone value in the last triplet.
			if len(buffer)%3 == 2 && available != 2 {
				buffer, lastCharSize = e.backtrackOneCharacter(c, buffer, lastCharSize)
			}
			for len(buffer)%3 == 1 && (lastCharSize > 3 || available != 1) {
				buffer, lastCharSize = e.backtrackOneCharacter(c, buffer, lastCharSize)
			}
			break
		}

		if len(buffer)%3 == 0 {
			if lookAheadTest(c.msg, c.pos, e.mode()) != e.mode() {
				// ASCII performs the latch into the next mode.
				c.signalEncoderChange(modeASCII)
				break
			}
		}
	}
	e.handleEOD(c, buffer)
}

func (e c40Encoder) backtrackOneCharacter(c *encoderContext, buffer []byte, lastCharSize int) ([]byte, int) {
	buffer = buffer[:len(buffer)-lastCharSize]
	c.pos--
	_, size := e.encodeChar(c.current(), nil)
	c.resetSymbolInfo()
	return buffer, size
}

func writeNextTriplet(c *encoderContext, buffer []byte) []byte {
	v := 1600*int(buffer[0]) + 40*int(buffer[1]) + int(buffer[2]) + 1
	c.writeCodewords(byte(v/256), byte(v%256))
	return buffer[3:]
}

func (e c40Encoder) handleEOD(c *encoderContext, buffer []byte) {
	unwritten := (len(buffer) / 3) * 2
	rest := len(buffer) % 3
	available := c.available(c.codewordCount() + unwritten)

	switch {
	case rest == 2:
		buffer = append(buffer, 0) // Shift 1
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		if c.hasMoreCharacters() {
			c.writeCodewords(unlatchC40)
		}
	case available == 1 && rest == 1:
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		if c.hasMoreCharacters() {
			c.writeCodewords(unlatchC40)
		}
		// The last character goes out as a single ASCII codeword.
		c.pos--
	case rest == 0:
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		if available > 0 || c.hasMoreCharacters() {
			c.writeCodewords(unlatchC40)
		}
	default:
		// Hand whole characters back to ASCII until the triplets close.
		for len(buffer)%3 != 0 {
			c.pos--
			_, size := e.encodeChar(c.current(), nil)
			buffer = buffer[:len(buffer)-size]
		}
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		c.writeCodewords(unlatchC40)
	}
	c.signalEncoderChange(modeASCII)
}

// encodeChar appends the values for ch and returns how many were added.
func (e c40Encoder) encodeChar(ch byte, sb []byte) ([]byte, int) {
	if e.text {
		return encodeTextChar(ch, sb)
	}
	return encodeC40Char(ch, sb)
}

func encodeC40Char(ch byte, sb []byte) ([]byte, int) {
	switch {
	case ch == ' ':
		return append(sb, 3), 1
	case isDigit(ch):
		return append(sb, ch-'0'+4), 1
	case ch >= 'A' && ch <= 'Z':
		return append(sb, ch-'A'+14), 1
	case ch < ' ':
		return append(sb, 0, ch), 2 // Shift 1
	case ch <= '/':
		return append(sb, 1, ch-33), 2 // Shift 2
	case ch <= '@':
		return append(sb, 1, ch-58+15), 2
	case ch <= '_':
		return append(sb, 1, ch-91+22), 2
	case ch <= 127:
		return append(sb, 2, ch-96), 2 // Shift 3
	}
	sb = append(sb, 1, 0x1e) // Shift 2, Upper Shift
	sb, n := encodeC40Char(ch-128, sb)
	return sb, n + 2
}

func encodeTextChar(ch byte, sb []byte) ([]byte, int) {
	switch {
	case ch == ' ':
		return append(sb, 3), 1
	case isDigit(ch):
		return append(sb, ch-'0'+4), 1
	case ch >= 'a' && ch <= 'z':
		return append(sb, ch-'a'+14), 1
	case ch < ' ':
		return append(sb, 0, ch), 2
	case ch <= '/':
		return append(sb, 1, ch-33), 2
	case ch <= '@':
		return append(sb, 1, ch-58+15), 2
	case ch >= '[' && ch <= '_':
		return append(sb, 1, ch-91+22), 2
	case ch == '`':
		return append(sb, 2, 0), 2
	case ch <= 'Z':
		return append(sb, 2, ch-'A'+1), 2
	case ch <= 127:
		return append(sb, 2, ch-123+27), 2
	}
	sb = append(sb, 1, 0x1e)
	sb, n := encodeTextChar(ch-128, sb)
	return sb, n + 2
}

// x12Encoder packs the ANSI X12 EDI set (CR * > space 0-9 A-Z) three
// values per two codewords.
type x12Encoder struct{}

func (x12Encoder) mode() int { return modeX12 }

func (e x12Encoder) encode(c *encoderContext) {
	var buffer []byte
	for c.hasMoreCharacters() {
		v, ok := x12Value(c.current())
		if !ok {
			// handleEOD rewinds the partial triplet and unlatches.
			break
		}
		c.pos++
		buffer = append(buffer, v)
		if len(buffer)%3 == 0 {
			buffer = writeNextTriplet(c, buffer)
			if lookAheadTest(c.msg, c.pos, e.mode()) != e.mode() {
				c.signalEncoderChange(modeASCII)
				break
			}
		}
	}
	e.handleEOD(c, buffer)
}

// x12Value maps an X12 character. ok is false outside the X12 set.
func x12Value(ch byte) (v byte, ok bool) {
	switch {
	case ch == '\r':
		return 0, true
	case ch == '*':
		return 1, true
	case ch == '>':
		return 2, true
	case ch == ' ':
		return 3, true
	case isDigit(ch):
		return ch - '0' + 4, true
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 14, true
	}
	return 0, false
}

func (x12Encoder) handleEOD(c *encoderContext, buffer []byte) {
	available := c.available(c.codewordCount())
	c.pos -= len(buffer)
	// The unlatch is implied when the symbol is full, or when one last
	// single-codeword character fills it.
	remaining := c.remainingCharacters()
	implicit := available <= 1 && remaining == available &&
		(remaining == 0 || !isExtendedASCII(c.current()))
	if !implicit {
		c.writeCodewords(unlatchC40)
	}
	if c.newMode < 0 {
		c.signalEncoderChange(modeASCII)
	}
}
