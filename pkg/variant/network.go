package variant

import (
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
)

// NetworkLocation is the value record for class_type 0x41..0x47: a UNC
// share or network place, with optional description/comments gated by
// flag bits.
type NetworkLocation struct {
	Flags uint8

	ShareName []byte

	HasDeviceName bool
	DeviceName    []byte

	HasDescription bool
	Description    []byte

	HasComments bool
	Comments    []byte

	HasType bool
	Type    uint32
}

// DecodeNetworkLocation reads flags at +3, then a mandatory NUL-terminated
// share name, then a device name gated by the 0x20 flag bit, then
// description/comments gated by 0x80/0x40 flag bits, then an optional
// trailing u32 type.
func DecodeNetworkLocation(data []byte) (*NetworkLocation, int, error) {
	if len(data) < 4 || data[2] < 0x41 || data[2] > 0x47 {
		return nil, 0, nil
	}

	nl := &NetworkLocation{Flags: data[3]}
	offset := 4

	share, n := readCString(data[offset:])
	nl.ShareName = share
	offset += n

	if nl.Flags&consts.NetworkLocationHasDeviceName != 0 {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("%w: network location missing flagged device name", consts.ErrInvalidItemSize)
		}
		device, n := readCString(data[offset:])
		nl.HasDeviceName = true
		nl.DeviceName = device
		offset += n
	}

	if nl.Flags&consts.NetworkLocationHasDescription != 0 {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("%w: network location missing flagged description", consts.ErrInvalidItemSize)
		}
		desc, n := readCString(data[offset:])
		nl.HasDescription = true
		nl.Description = desc
		offset += n
	}

	if nl.Flags&consts.NetworkLocationHasComments != 0 {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("%w: network location missing flagged comments", consts.ErrInvalidItemSize)
		}
		comments, n := readCString(data[offset:])
		nl.HasComments = true
		nl.Comments = comments
		offset += n
	}

	if offset+4 <= len(data) {
		nl.HasType = true
		nl.Type = binary.LittleEndian.Uint32(data[offset : offset+4])
		offset += 4
	}

	return nl, offset, nil
}
