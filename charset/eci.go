// Package charset maps character sets to Extended Channel Interpretation
// (ECI) designators and converts strings to the byte streams that
// byte-oriented symbology modes carry.
package charset

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrUnknownCharset is returned for a character set name with no ECI.
	ErrUnknownCharset = errors.New("charset: unknown character set")
	// ErrUnencodable is returned when a string has characters the
	// requested character set cannot represent.
	ErrUnencodable = errors.New("charset: characters not representable")
	// ErrInvalidECI indicates an ECI value outside 0..999999.
	ErrInvalidECI = errors.New("charset: invalid ECI value")
)

// ECI is a character set together with its ECI assignment number.
type ECI struct {
	Value   int
	Name    string
	Aliases []string

	enc encoding.Encoding
}

func (e *ECI) String() string { return e.Name }

// pre-defined ECIs
var (
	ECICp437      = &ECI{0, "Cp437", []string{"IBM437"}, charmap.CodePage437}
	ECIISO8859_1  = &ECI{3, "ISO-8859-1", []string{"ISO8859_1", "Latin1"}, charmap.ISO8859_1}
	ECIISO8859_2  = &ECI{4, "ISO-8859-2", []string{"ISO8859_2"}, charmap.ISO8859_2}
	ECIISO8859_3  = &ECI{5, "ISO-8859-3", []string{"ISO8859_3"}, charmap.ISO8859_3}
	ECIISO8859_4  = &ECI{6, "ISO-8859-4", []string{"ISO8859_4"}, charmap.ISO8859_4}
	ECIISO8859_5  = &ECI{7, "ISO-8859-5", []string{"ISO8859_5"}, charmap.ISO8859_5}
	ECIISO8859_6  = &ECI{8, "ISO-8859-6", []string{"ISO8859_6"}, charmap.ISO8859_6}
	ECIISO8859_7  = &ECI{9, "ISO-8859-7", []string{"ISO8859_7"}, charmap.ISO8859_7}
	ECIISO8859_8  = &ECI{10, "ISO-8859-8", []string{"ISO8859_8"}, charmap.ISO8859_8}
	ECIISO8859_9  = &ECI{11, "ISO-8859-9", []string{"ISO8859_9"}, charmap.ISO8859_9}
	ECIISO8859_10 = &ECI{12, "ISO-8859-10", []string{"ISO8859_10"}, charmap.ISO8859_10}
	ECIISO8859_13 = &ECI{15, "ISO-8859-13", []string{"ISO8859_13"}, charmap.ISO8859_13}
	ECIISO8859_14 = &ECI{16, "ISO-8859-14", []string{"ISO8859_14"}, charmap.ISO8859_14}
	ECIISO8859_15 = &ECI{17, "ISO-8859-15", []string{"ISO8859_15"}, charmap.ISO8859_15}
	ECIISO8859_16 = &ECI{18, "ISO-8859-16", []string{"ISO8859_16"}, charmap.ISO8859_16}
	ECISJIS       = &ECI{20, "Shift_JIS", []string{"SJIS"}, japanese.ShiftJIS}
	ECICp1250     = &ECI{21, "windows-1250", []string{"Cp1250"}, charmap.Windows1250}
	ECICp1251     = &ECI{22, "windows-1251", []string{"Cp1251"}, charmap.Windows1251}
	ECICp1252     = &ECI{23, "windows-1252", []string{"Cp1252"}, charmap.Windows1252}
	ECICp1256     = &ECI{24, "windows-1256", []string{"Cp1256"}, charmap.Windows1256}
	ECIUTF16BE    = &ECI{25, "UTF-16BE", []string{"UnicodeBig", "UnicodeBigUnmarked"}, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	ECIUTF8       = &ECI{26, "UTF-8", []string{"UTF8"}, nil}
	ECIASCII      = &ECI{27, "US-ASCII", []string{"ASCII"}, nil}
	ECIBig5       = &ECI{28, "Big5", nil, traditionalchinese.Big5}
	ECIGB18030    = &ECI{29, "GB18030", []string{"GB2312", "EUC_CN", "GBK"}, simplifiedchinese.GB18030}
	ECIEUCKR      = &ECI{30, "EUC-KR", []string{"EUC_KR"}, korean.EUCKR}
)

var (
	valueToECI = map[int]*ECI{}
	nameToECI  = map[string]*ECI{}
)

func init() {
	all := []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_13, ECIISO8859_14, ECIISO8859_15,
		ECIISO8859_16, ECISJIS, ECICp1250, ECICp1251, ECICp1252, ECICp1256,
		ECIUTF16BE, ECIUTF8, ECIASCII, ECIBig5, ECIGB18030, ECIEUCKR,
	}
	for _, eci := range all {
		valueToECI[eci.Value] = eci
		nameToECI[normalize(eci.Name)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[normalize(alias)] = eci
		}
	}
	// Legacy assignments that share a table with a newer number.
	valueToECI[2] = ECICp437
	valueToECI[1] = ECIISO8859_1
	valueToECI[170] = ECIASCII
}

// normalize folds case and drops punctuation so "iso-8859-1",
// "ISO8859_1" and "iso 8859 1" compare equal.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		if r >= 'A' && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}, name)
}

// ByValue returns the ECI assigned to value. It returns nil, nil for a
// valid number without a known character set.
func ByValue(value int) (*ECI, error) {
	if value < 0 || value > 999999 {
		return nil, ErrInvalidECI
	}
	return valueToECI[value], nil
}

// ByName looks up a character set by name or alias, ignoring case and
// punctuation. It returns nil when the name is unknown.
func ByName(name string) *ECI {
	return nameToECI[normalize(name)]
}
