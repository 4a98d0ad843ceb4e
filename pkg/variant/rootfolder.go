// Package variant holds one decoder per shell-item variant family
// (spec.md §4.3), each following the teacher's one-file-per-record-type
// layout (pkg/descriptor/primary.go, supplementary.go, boot.go,
// partition.go in the teacher) — see DESIGN.md.
package variant

import (
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/guid"
)

// RootFolderLength is the fixed byte length a root-folder item consumes.
const RootFolderLength = 20

// RootFolder is the value record for class_type == 0x1F: a well-known
// shell namespace root (My Computer, Control Panel, Network, ...)
// identified purely by GUID.
type RootFolder struct {
	SortIndex  byte
	Identifier guid.GUID
}

// DecodeRootFolder parses the fixed 20-byte layout:
//
//	+3  u8   sort_index
//	+4  GUID shell_folder_identifier
//
// data is the full item buffer starting at its outer size field; class
// type is expected at data[2] == 0x1F.
func DecodeRootFolder(data []byte) (*RootFolder, int, error) {
	if len(data) < 3 || data[2] != consts.ClassTypeRootFolder {
		return nil, 0, nil
	}
	if len(data) < RootFolderLength {
		return nil, 0, fmt.Errorf("%w: root folder item shorter than %d bytes", consts.ErrInvalidItemSize, RootFolderLength)
	}
	g, err := guid.Parse(data[4:20])
	if err != nil {
		return nil, 0, err
	}
	return &RootFolder{SortIndex: data[3], Identifier: g}, RootFolderLength, nil
}
