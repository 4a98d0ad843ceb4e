package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToUTF8_Windows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252 with no ASCII equivalent.
	raw := []byte{0x93, 'h', 'i', 0x94}
	s, err := BytesToUTF8(raw, 1252)
	require.NoError(t, err)
	assert.Equal(t, "“hi”", s)
}

func TestBytesToUTF8_UnknownCodepageFallsBackToWindows1252(t *testing.T) {
	raw := []byte{'o', 'k'}
	s, err := BytesToUTF8(raw, 999999)
	require.NoError(t, err)
	assert.Equal(t, "ok", s)
}

func TestUTF8ToBytes_RoundTrip(t *testing.T) {
	raw, err := UTF8ToBytes("“hi”", 1252)
	require.NoError(t, err)
	s, err := BytesToUTF8(raw, 1252)
	require.NoError(t, err)
	assert.Equal(t, "“hi”", s)
}

func TestUTF16LEToUTF8(t *testing.T) {
	// "Hi" in UTF-16LE.
	raw := []byte{'H', 0x00, 'i', 0x00}
	s, err := UTF16LEToUTF8(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestUTF8ToUTF16LE_RoundTrip(t *testing.T) {
	raw, err := UTF8ToUTF16LE("Hi")
	require.NoError(t, err)
	assert.Equal(t, []byte{'H', 0x00, 'i', 0x00}, raw)

	s, err := UTF16LEToUTF8(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestBytesToUTF16LE(t *testing.T) {
	raw, err := BytesToUTF16LE([]byte("Hi"), 1252)
	require.NoError(t, err)
	assert.Equal(t, []byte{'H', 0x00, 'i', 0x00}, raw)
}

func TestUTF16LECodeUnitCount(t *testing.T) {
	raw := []byte{'H', 0x00, 'i', 0x00}
	assert.Equal(t, 2, UTF16LECodeUnitCount(raw))
}
