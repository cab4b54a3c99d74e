package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want *ECI
	}{
		{"ISO-8859-1", ECIISO8859_1},
		{"iso8859_1", ECIISO8859_1},
		{"latin1", ECIISO8859_1},
		{"utf-8", ECIUTF8},
		{"UTF8", ECIUTF8},
		{"SJIS", ECISJIS},
		{"Shift_JIS", ECISJIS},
		{"Cp1252", ECICp1252},
		{"GBK", ECIGB18030},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.want, ByName(tc.name))
		})
	}
	assert.Nil(t, ByName("klingon"))
}

func TestByValue(t *testing.T) {
	eci, err := ByValue(26)
	require.NoError(t, err)
	assert.Same(t, ECIUTF8, eci)

	eci, err = ByValue(1)
	require.NoError(t, err)
	assert.Same(t, ECIISO8859_1, eci)

	eci, err = ByValue(899)
	require.NoError(t, err)
	assert.Nil(t, eci)

	_, err = ByValue(-1)
	assert.ErrorIs(t, err, ErrInvalidECI)
	_, err = ByValue(1000000)
	assert.ErrorIs(t, err, ErrInvalidECI)
}

func TestEncodeDefault(t *testing.T) {
	b, eci, err := Encode("héllo", "")
	require.NoError(t, err)
	assert.Nil(t, eci)
	assert.Equal(t, []byte{'h', 0xE9, 'l', 'l', 'o'}, b)

	b, eci, err = Encode("€5", "")
	require.NoError(t, err)
	assert.Same(t, ECIUTF8, eci)
	assert.Equal(t, []byte("€5"), b)
}

func TestEncodeNamed(t *testing.T) {
	b, eci, err := Encode("€", "windows-1252")
	require.NoError(t, err)
	assert.Same(t, ECICp1252, eci)
	assert.Equal(t, []byte{0x80}, b)

	b, eci, err = Encode("日本", "Shift_JIS")
	require.NoError(t, err)
	assert.Same(t, ECISJIS, eci)
	assert.Equal(t, []byte{0x93, 0xFA, 0x96, 0x7B}, b)

	b, _, err = Encode("A", "UTF-16BE")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 'A'}, b)

	b, eci, err = Encode("abc", "ISO-8859-1")
	require.NoError(t, err)
	assert.Nil(t, eci)
	assert.Equal(t, []byte("abc"), b)
}

func TestEncodeErrors(t *testing.T) {
	_, _, err := Encode("abc", "klingon")
	assert.ErrorIs(t, err, ErrUnknownCharset)

	_, _, err = Encode("€", "ISO-8859-1")
	assert.ErrorIs(t, err, ErrUnencodable)

	_, _, err = Encode("é", "US-ASCII")
	assert.ErrorIs(t, err, ErrUnencodable)
}

func TestFitsLatin1(t *testing.T) {
	assert.True(t, FitsLatin1(""))
	assert.True(t, FitsLatin1("ÿ"))
	assert.False(t, FitsLatin1("Ā"))
}
