package variant

import (
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/extension"
)

// FileEntryFixedLength is the byte offset at which the name field starts.
const FileEntryFixedLength = 14

// FileEntry is the value record for any class_type whose family nibble is
// 0x30 — the most elaborate variant, carrying an inline name and an
// optional chain of extension blocks (spec.md §4.3).
//
// FileAttributeFlags is widened to uint32 for API symmetry with the data
// model in spec.md §3, but the wire field itself is a 16-bit value (see
// DESIGN.md: §3 and §4.3 of the source specification disagree on this
// field's width; the concrete byte layout in §4.3, which matches the
// well-documented Windows shell-link file-entry format, is followed).
type FileEntry struct {
	FileSize           uint32
	ModificationTime   uint32
	FileAttributeFlags uint32
	Name               []byte
	NameSize           int
	IsUnicode          bool
	ExtensionBlocks    []extension.Block
}

// DecodeFileEntry parses the fixed file-entry header and inline name. It
// does not parse trailing extension blocks — that loop is driven by
// pkg/item, which knows the outer item boundary and terminator.
func DecodeFileEntry(data []byte) (*FileEntry, int, error) {
	if len(data) < 3 || (data[2]&consts.ClassTypeFamilyMask) != consts.ClassTypeFamilyFileEntry {
		return nil, 0, nil
	}
	if len(data) < FileEntryFixedLength {
		return nil, 0, fmt.Errorf("%w: file entry item shorter than %d bytes", consts.ErrInvalidItemSize, FileEntryFixedLength)
	}

	classType := data[2]
	fe := &FileEntry{
		FileSize:           binary.LittleEndian.Uint32(data[4:8]),
		ModificationTime:   binary.LittleEndian.Uint32(data[8:12]),
		FileAttributeFlags: uint32(binary.LittleEndian.Uint16(data[12:14])),
		IsUnicode:          classType&consts.FileEntryUnicodeFlag != 0,
	}

	nameArea := data[FileEntryFixedLength:]
	var consumed int
	if fe.IsUnicode {
		name, n := readUTF16Terminated(nameArea)
		fe.Name = name
		consumed = n
	} else {
		name, n := readCString(nameArea)
		fe.Name = name
		consumed = n
	}
	fe.NameSize = len(fe.Name)

	return fe, FileEntryFixedLength + consumed, nil
}
