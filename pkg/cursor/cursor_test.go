package cursor

import (
	"testing"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadFixedWidth(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	u8, err := c.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)

	u16, err := c.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)

	u32, err := c.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x07060504), u32)
}

func TestCursor_ReadPastEnd_Truncated(t *testing.T) {
	c := New([]byte{0x01, 0x02})
	_, err := c.ReadU32()
	assert.ErrorIs(t, err, consts.ErrTruncated)
}

func TestCursor_ReadBytes_CopiesData(t *testing.T) {
	src := []byte{0xAA, 0xBB, 0xCC}
	c := New(src)
	out, err := c.ReadBytes(3)
	require.NoError(t, err)
	src[0] = 0x00
	assert.Equal(t, byte(0xAA), out[0], "ReadBytes must copy, not alias, the input")
}

func TestCursor_ReadCString(t *testing.T) {
	c := New([]byte{'h', 'i', 0x00, 'x'})
	s, err := c.ReadCString()
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), s)
	assert.Equal(t, 1, c.Remaining())
}

func TestCursor_ReadUTF16CString(t *testing.T) {
	// "ab" in UTF-16LE followed by a 0x0000 terminator.
	c := New([]byte{'a', 0x00, 'b', 0x00, 0x00, 0x00})
	s, err := c.ReadUTF16CString()
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0x00, 'b', 0x00}, s)
	assert.Equal(t, 0, c.Remaining())
}

func TestCursor_Peek_DoesNotAdvance(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03})
	b, err := c.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	assert.Equal(t, 0, c.Offset())
}

func TestCursor_Advance(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03})
	require.NoError(t, c.Advance(2))
	assert.Equal(t, 1, c.Remaining())
	assert.ErrorIs(t, c.Advance(10), consts.ErrTruncated)
}
