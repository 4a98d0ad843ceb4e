package variant

import (
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
)

// URI is the value record for class_type == 0x61.
type URI struct {
	IsUnicode bool

	HasRawHeader bool
	RawHeader    []byte // opaque 40-byte header, present when the declared data size is >= 40

	URIBytes []byte
}

// DecodeURI reads a flags byte, a declared data size, an optional 40-byte
// opaque header, and a terminated URI string.
//
// The original decoder this is modeled on has a guard,
// "(data_size < 2) && (data_size > shell_item_data_size - 6)", that looks
// like a mistaken "&&" for "||" (an open question, not silently fixed
// here — see DESIGN.md). This decoder instead treats any inconsistency
// between the declared data size and the bytes actually available as
// InvalidItemSize, per the resolution the source specification itself
// calls for.
func DecodeURI(data []byte) (*URI, int, error) {
	if len(data) < 3 || data[2] != consts.ClassTypeURI {
		return nil, 0, nil
	}
	if len(data) < 6 {
		return nil, 0, fmt.Errorf("%w: uri item shorter than 6 bytes", consts.ErrInvalidItemSize)
	}

	flags := data[3]
	dataSize := binary.LittleEndian.Uint16(data[4:6])
	offset := 6
	remaining := len(data) - offset

	if int(dataSize) > remaining {
		return nil, 0, fmt.Errorf("%w: uri data_size %d exceeds remaining %d bytes", consts.ErrInvalidItemSize, dataSize, remaining)
	}

	u := &URI{IsUnicode: flags&consts.URIUnicodeFlag != 0}

	if dataSize >= 40 {
		if remaining < 40 {
			return nil, 0, fmt.Errorf("%w: uri header declared but only %d bytes remain", consts.ErrInvalidItemSize, remaining)
		}
		u.HasRawHeader = true
		u.RawHeader = append([]byte(nil), data[offset:offset+40]...)
		offset += 40
	}

	var n int
	if u.IsUnicode {
		u.URIBytes, n = readUTF16Terminated(data[offset:])
	} else {
		u.URIBytes, n = readCString(data[offset:])
	}
	offset += n

	return u, offset, nil
}
