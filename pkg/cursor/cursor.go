// Package cursor provides a bounds-checked little-endian reader over a
// borrowed byte slice, generalizing the repeated "check length, then slice"
// pattern that shell-item and extension-block decoders all need.
package cursor

import (
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
)

// Cursor reads little-endian fixed-width values and sized byte slices from
// a borrowed input buffer, failing with consts.ErrTruncated rather than
// panicking whenever a read would run past the end of the buffer. It is not
// safe for concurrent use — callers decoding the same input from multiple
// goroutines must use independent cursors.
type Cursor struct {
	data   []byte
	offset int
}

// New returns a Cursor positioned at the start of data. The slice is
// borrowed, not copied; the cursor itself never outlives a single decode.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the cursor's current position.
func (c *Cursor) Offset() int {
	return c.offset
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// Bytes returns the full underlying buffer (read-only use expected).
func (c *Cursor) Bytes() []byte {
	return c.data
}

func (c *Cursor) require(n int) error {
	if n < 0 || c.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes, have %d at offset %d", consts.ErrTruncated, n, c.Remaining(), c.offset)
	}
	return nil
}

// Advance moves the cursor forward by n bytes without reading them, failing
// if that would move past the end of the buffer.
func (c *Cursor) Advance(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.offset += n
	return nil
}

// Peek returns the next n bytes without advancing the cursor.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	return c.data[c.offset : c.offset+n], nil
}

// ReadBytes returns a copy of the next n bytes, advancing the cursor. The
// returned slice is a copy so it remains valid after the input buffer is
// freed by the caller.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	raw, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, raw)
	c.offset += n
	return out, nil
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.offset]
	c.offset++
	return v, nil
}

// ReadU16 reads a little-endian 16-bit integer.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.offset : c.offset+2])
	c.offset += 2
	return v, nil
}

// ReadU32 reads a little-endian 32-bit integer.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.offset : c.offset+4])
	c.offset += 4
	return v, nil
}

// ReadU64 reads a little-endian 64-bit integer.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.data[c.offset : c.offset+8])
	c.offset += 8
	return v, nil
}

// ReadGUID reads the 16 raw bytes of a Microsoft mixed-endian GUID without
// reformatting them; GUID string formatting is pkg/guid's job.
func (c *Cursor) ReadGUID() ([]byte, error) {
	return c.ReadBytes(16)
}

// ReadCString reads bytes up to (and consuming) a single NUL terminator
// byte, or until the buffer is exhausted if no terminator is found. It
// returns the bytes before the terminator (not including it).
func (c *Cursor) ReadCString() ([]byte, error) {
	start := c.offset
	for c.offset < len(c.data) {
		if c.data[c.offset] == 0x00 {
			out := make([]byte, c.offset-start)
			copy(out, c.data[start:c.offset])
			c.offset++
			return out, nil
		}
		c.offset++
	}
	out := make([]byte, len(c.data)-start)
	copy(out, c.data[start:])
	return out, nil
}

// ReadUTF16CString reads bytes up to (and consuming) a single 0x0000
// 16-bit terminator, or until the buffer is exhausted. It returns the raw
// little-endian UTF-16 bytes before the terminator.
func (c *Cursor) ReadUTF16CString() ([]byte, error) {
	start := c.offset
	for c.offset+1 < len(c.data) {
		if c.data[c.offset] == 0x00 && c.data[c.offset+1] == 0x00 {
			out := make([]byte, c.offset-start)
			copy(out, c.data[start:c.offset])
			c.offset += 2
			return out, nil
		}
		c.offset += 2
	}
	// No terminator found before the buffer ran out of whole 16-bit units;
	// consume whatever is left rather than fail, matching the bounds-safe
	// preference spec.md asks for when alignment/termination is ambiguous.
	c.offset = len(c.data)
	out := make([]byte, len(c.data)-start)
	copy(out, c.data[start:])
	return out, nil
}
