package variant

import (
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/guid"
)

// volumeClassTypes are the class_type bytes that dispatch to the Volume
// decoder. 0x2E is the GUID-only shape; the rest carry a name.
var volumeClassTypes = map[byte]bool{
	0x23: true, 0x25: true, 0x29: true, 0x2A: true, 0x2E: true, 0x2F: true,
}

// Volume is the value record for a volume item: either a bare GUID
// (class_type == 0x2E) or a fixed-width name with an optional trailing
// shell-folder GUID.
type Volume struct {
	HasName bool

	// Identifier is set when !HasName.
	Identifier guid.GUID

	// Name, NameSize, and ASCIICodepage are set when HasName.
	Name          []byte
	NameSize      int
	ASCIICodepage uint32

	HasShellFolderIdentifier bool
	ShellFolderIdentifier    guid.GUID
}

// DecodeVolume follows libfwsi's volume layout: a 0x2E class type is a
// bare GUID at +4; any other recognized volume class type is a 20-byte
// fixed-width name at +3 (NUL may terminate it early), a 2-byte unknown
// field, then an optional trailing 16-byte shell-folder GUID if enough
// bytes remain.
func DecodeVolume(data []byte, defaultCodepage uint32) (*Volume, int, error) {
	if len(data) < 3 || !volumeClassTypes[data[2]] {
		return nil, 0, nil
	}

	if data[2] == consts.ClassTypeVolumeGUIDOnly {
		if len(data) < 20 {
			return nil, 0, fmt.Errorf("%w: volume GUID item shorter than 20 bytes", consts.ErrInvalidItemSize)
		}
		g, err := guid.Parse(data[4:20])
		if err != nil {
			return nil, 0, err
		}
		return &Volume{Identifier: g}, 20, nil
	}

	const nameAreaLen = 20
	const fixedLen = 3 + nameAreaLen + 2 // class-type prefix + name area + unknown u16
	if len(data) < fixedLen {
		return nil, 0, fmt.Errorf("%w: volume item shorter than %d bytes", consts.ErrInvalidItemSize, fixedLen)
	}

	nameArea := data[3 : 3+nameAreaLen]
	nameSize := nameAreaLen
	for i, b := range nameArea {
		if b == 0 {
			nameSize = i
			break
		}
	}

	v := &Volume{
		HasName:       true,
		Name:          append([]byte(nil), nameArea[:nameSize]...),
		NameSize:      nameSize,
		ASCIICodepage: defaultCodepage,
	}
	consumed := fixedLen

	const guidLen = 16
	if len(data) >= fixedLen+guidLen {
		g, err := guid.Parse(data[fixedLen : fixedLen+guidLen])
		if err != nil {
			return nil, 0, err
		}
		v.HasShellFolderIdentifier = true
		v.ShellFolderIdentifier = g
		consumed = fixedLen + guidLen
	}

	return v, consumed, nil
}
