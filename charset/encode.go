package charset

import (
	"fmt"
	"unicode/utf8"
)

// Bytes converts s to this character set.
func (e *ECI) Bytes(s string) ([]byte, error) {
	switch e {
	case ECIUTF8:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: invalid UTF-8", ErrUnencodable)
		}
		return []byte(s), nil
	case ECIASCII:
		for i, r := range s {
			if r >= utf8.RuneSelf {
				return nil, fmt.Errorf("%w: %q at offset %d in %s", ErrUnencodable, r, i, e.Name)
			}
		}
		return []byte(s), nil
	}
	b, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnencodable, e.Name, err)
	}
	return b, nil
}

// Encode converts s for a byte-oriented symbology mode. With an empty
// name, ISO-8859-1 is used when it can represent s and UTF-8 otherwise.
// The returned ECI is nil when the bytes are ISO-8859-1, which readers
// assume without a designator; otherwise the caller must emit it.
func Encode(s, name string) ([]byte, *ECI, error) {
	eci := ECIISO8859_1
	if name != "" {
		eci = ByName(name)
		if eci == nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
		}
	} else if !FitsLatin1(s) {
		eci = ECIUTF8
	}
	b, err := eci.Bytes(s)
	if err != nil {
		return nil, nil, err
	}
	if eci == ECIISO8859_1 {
		return b, nil, nil
	}
	return b, eci, nil
}

// FitsLatin1 reports whether every rune in s is in ISO-8859-1.
func FitsLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}
