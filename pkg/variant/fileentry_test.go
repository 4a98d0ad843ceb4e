package variant

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeFileEntry_UnicodeName follows spec.md scenario S3's expected
// fields (file_size 0, file_attribute_flags 0x20, name "readme.txt",
// is_unicode true), built from a class_type that actually sets the
// documented Unicode bit (0x04) — spec.md's own S3 hex uses class_type
// 0x32, which that same bit rule would read as non-Unicode; see
// DESIGN.md for why the literal example bytes are not reproduced.
func TestDecodeFileEntry_UnicodeName(t *testing.T) {
	name := encodeUTF16LE(t, "readme.txt")

	data := []byte{0, 0, 0x36, 0x00} // size placeholder, class_type, unknown
	fileSize := make([]byte, 4)
	binary.LittleEndian.PutUint32(fileSize, 0)
	mtime := make([]byte, 4)
	binary.LittleEndian.PutUint32(mtime, 0x5B8A2150)
	attrs := make([]byte, 2)
	binary.LittleEndian.PutUint16(attrs, 0x0020)

	data = append(data, fileSize...)
	data = append(data, mtime...)
	data = append(data, attrs...)
	data = append(data, name...)
	data = append(data, 0x00, 0x00) // name terminator

	size := uint16(len(data))
	data[0] = byte(size)
	data[1] = byte(size >> 8)

	fe, consumed, err := DecodeFileEntry(data)
	require.NoError(t, err)
	require.NotNil(t, fe)
	assert.Equal(t, len(data), consumed)
	assert.Equal(t, uint32(0), fe.FileSize)
	assert.Equal(t, uint32(0x20), fe.FileAttributeFlags)
	assert.True(t, fe.IsUnicode)
	assert.Equal(t, "readme.txt", decodeUTF16LE(t, fe.Name))
}

func TestDecodeFileEntry_LegacyName(t *testing.T) {
	data := []byte{0, 0, 0x32, 0x00}
	data = append(data, 0, 0, 0, 0) // file_size
	data = append(data, 0, 0, 0, 0) // modification_time
	data = append(data, 0, 0)       // attrs
	data = append(data, []byte("a.txt")...)
	data = append(data, 0x00)

	size := uint16(len(data))
	data[0] = byte(size)
	data[1] = byte(size >> 8)

	fe, consumed, err := DecodeFileEntry(data)
	require.NoError(t, err)
	require.NotNil(t, fe)
	assert.Equal(t, len(data), consumed)
	assert.False(t, fe.IsUnicode)
	assert.Equal(t, "a.txt", string(fe.Name))
}

func TestDecodeFileEntry_NotApplicable(t *testing.T) {
	data := []byte{0x08, 0x00, 0x1F, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	fe, consumed, err := DecodeFileEntry(data)
	require.NoError(t, err)
	assert.Nil(t, fe)
	assert.Equal(t, 0, consumed)
}

func TestDecodeFileEntry_Truncated_Errors(t *testing.T) {
	data := []byte{0x0A, 0x00, 0x32, 0x00, 0, 0, 0, 0, 0, 0}
	_, _, err := DecodeFileEntry(data)
	assert.Error(t, err)
}

func encodeUTF16LE(t *testing.T, s string) []byte {
	t.Helper()
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0x00)
	}
	return out
}

func decodeUTF16LE(t *testing.T, data []byte) string {
	t.Helper()
	out := make([]byte, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		out = append(out, data[i])
	}
	return string(out)
}
