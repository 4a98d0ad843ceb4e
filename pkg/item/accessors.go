package item

import (
	"fmt"
	"time"

	"github.com/bgrewell/shellitem-kit/pkg/codepage"
	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/fatdatetime"
	"github.com/bgrewell/shellitem-kit/pkg/guid"
)

// guard enforces the first three of the four checks spec.md §4.5 requires
// of every accessor: the item is non-nil, its variant tag matches the
// expected family, and the matching value record is present (Item's
// fields are exported, so an Item can be built without going through
// Parse). The C original's fourth check (output pointer non-nil) has no
// Go equivalent, since accessors return values rather than filling an
// output pointer — see DESIGN.md's Component E notes.
func guard(i *Item, want VariantTag) error {
	if i == nil {
		return fmt.Errorf("%w: item is nil", consts.ErrInvalidArgument)
	}
	if i.Variant != want {
		return fmt.Errorf("%w: accessor requires variant %s, item is %s", consts.ErrUnsupportedClassType, want, i.Variant)
	}
	present := map[VariantTag]bool{
		VariantRootFolder: i.RootFolder != nil, VariantVolume: i.Volume != nil,
		VariantFileEntry: i.FileEntry != nil, VariantNetworkLocation: i.NetworkLocation != nil,
		VariantCompressedFolder: i.CompressedFolder != nil, VariantControlPanel: i.ControlPanel != nil,
		VariantURI: i.URI != nil, VariantUsersPropertyView: i.UsersPropertyView != nil,
		VariantDelegate: i.Delegate != nil,
	}
	if !present[want] {
		return fmt.Errorf("%w: item has no %s value record", consts.ErrInvalidArgument, want)
	}
	return nil
}

// RootFolderIdentifier returns the root folder's shell folder GUID.
func (i *Item) RootFolderIdentifier() (guid.GUID, error) {
	if err := guard(i, VariantRootFolder); err != nil {
		return guid.GUID{}, err
	}
	return i.RootFolder.Identifier, nil
}

// VolumeIdentifier returns the volume's GUID. Only valid when the volume
// has no name (class_type == 0x2E).
func (i *Item) VolumeIdentifier() (guid.GUID, error) {
	if err := guard(i, VariantVolume); err != nil {
		return guid.GUID{}, err
	}
	if i.Volume.HasName {
		return guid.GUID{}, fmt.Errorf("%w: volume item has a name, not a bare identifier", consts.ErrUnsupportedClassType)
	}
	return i.Volume.Identifier, nil
}

// VolumeName returns the volume's name as UTF-8. Only valid when the
// volume carries a name.
func (i *Item) VolumeName() (string, error) {
	if err := guard(i, VariantVolume); err != nil {
		return "", err
	}
	if !i.Volume.HasName {
		return "", fmt.Errorf("%w: volume item has no name", consts.ErrUnsupportedClassType)
	}
	return toUTF8(i.Volume.Name, false, i.ASCIICodepage)
}

// FileEntrySize returns a file entry's recorded file size in bytes.
func (i *Item) FileEntrySize() (uint32, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return 0, err
	}
	return i.FileEntry.FileSize, nil
}

// FileEntryAttributeFlags returns a file entry's raw attribute flags.
func (i *Item) FileEntryAttributeFlags() (uint32, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return 0, err
	}
	return i.FileEntry.FileAttributeFlags, nil
}

// FileEntryModificationTimeRaw copies a file entry's packed FAT
// modification time out directly, per spec.md §4.5's fixed-width-field
// accessor contract: a structurally valid item always yields a value
// here, even one whose bit pattern doesn't decode to a sane date.
func (i *Item) FileEntryModificationTimeRaw() (uint32, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return 0, err
	}
	return i.FileEntry.ModificationTime, nil
}

// FileEntryModificationTime decodes a file entry's packed FAT
// modification time into a time.Time. This is the debug-only decode path
// spec.md §6 describes, not the main accessor contract: an
// out-of-range-but-structurally-present packed value (e.g. an invalid
// hour) fails here even though the item itself decoded successfully.
// Callers that need the field unconditionally should use
// FileEntryModificationTimeRaw instead.
func (i *Item) FileEntryModificationTime() (time.Time, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return time.Time{}, err
	}
	return fatdatetime.Decode(i.FileEntry.ModificationTime)
}

// FileEntryName returns a file entry's short name as UTF-8, transcoding
// through the Unicode path or the item's ascii_codepage as appropriate
// (spec.md §4.5's re-encoding rules).
func (i *Item) FileEntryName() (string, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return "", err
	}
	return toUTF8(i.FileEntry.Name, i.FileEntry.IsUnicode, i.ASCIICodepage)
}

// FileEntryNameUTF16LE returns a file entry's short name as raw
// little-endian UTF-16, transcoding through the item's ascii_codepage
// first when the name was not already stored as Unicode. This is the
// symmetrical UTF-16 accessor spec.md §4.5 requires alongside the UTF-8
// one, and the basis of the round-trip property test (spec.md §8
// property 3).
func (i *Item) FileEntryNameUTF16LE() ([]byte, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return nil, err
	}
	return toUTF16LE(i.FileEntry.Name, i.FileEntry.IsUnicode, i.ASCIICodepage)
}

// FileEntryLongName returns the long file name carried by the 0xBEEF0004
// extension block, if present, as UTF-8.
func (i *Item) FileEntryLongName() (string, error) {
	if err := guard(i, VariantFileEntry); err != nil {
		return "", err
	}
	for _, block := range i.FileEntry.ExtensionBlocks {
		if block.FileEntry != nil {
			return toUTF8(block.FileEntry.LongName, true, i.ASCIICodepage)
		}
	}
	return "", fmt.Errorf("%w: file entry has no long-name extension block", consts.ErrUnsupportedClassType)
}

// NetworkLocationShareName returns a network location's share name as
// UTF-8.
func (i *Item) NetworkLocationShareName() (string, error) {
	if err := guard(i, VariantNetworkLocation); err != nil {
		return "", err
	}
	return toUTF8(i.NetworkLocation.ShareName, false, i.ASCIICodepage)
}

// URIString returns a URI item's string as UTF-8.
func (i *Item) URIString() (string, error) {
	if err := guard(i, VariantURI); err != nil {
		return "", err
	}
	return toUTF8(i.URI.URIBytes, i.URI.IsUnicode, i.ASCIICodepage)
}

// CompressedFolderIdentifier returns a compressed folder's GUID.
func (i *Item) CompressedFolderIdentifier() (guid.GUID, error) {
	if err := guard(i, VariantCompressedFolder); err != nil {
		return guid.GUID{}, err
	}
	return i.CompressedFolder.Identifier, nil
}

// ControlPanelIdentifier returns a control panel item's GUID.
func (i *Item) ControlPanelIdentifier() (guid.GUID, error) {
	if err := guard(i, VariantControlPanel); err != nil {
		return guid.GUID{}, err
	}
	return i.ControlPanel.Identifier, nil
}

// UsersPropertyViewIdentifier returns a users-property-view item's GUID.
func (i *Item) UsersPropertyViewIdentifier() (guid.GUID, error) {
	if err := guard(i, VariantUsersPropertyView); err != nil {
		return guid.GUID{}, err
	}
	return i.UsersPropertyView.Identifier, nil
}

// DelegateIdentifier returns a delegate item's GUID.
func (i *Item) DelegateIdentifier() (guid.GUID, error) {
	if err := guard(i, VariantDelegate); err != nil {
		return guid.GUID{}, err
	}
	return i.Delegate.Identifier, nil
}

// toUTF8 implements the UTF-8 half of spec.md §4.5's re-encoding rules:
// stored Unicode (UTF-16LE) bytes transcode through the Unicode path;
// stored legacy bytes transcode through the given ascii_codepage.
func toUTF8(raw []byte, storedAsUnicode bool, asciiCodepage uint32) (string, error) {
	if storedAsUnicode {
		return codepage.UTF16LEToUTF8(raw)
	}
	return codepage.BytesToUTF8(raw, asciiCodepage)
}

// toUTF16LE implements the UTF-16 half: already-Unicode bytes pass
// through (still re-validated via the Unicode codec), legacy bytes
// transcode through the given ascii_codepage first.
func toUTF16LE(raw []byte, storedAsUnicode bool, asciiCodepage uint32) ([]byte, error) {
	if storedAsUnicode {
		if _, err := codepage.UTF16LEToUTF8(raw); err != nil {
			return nil, err
		}
		return append([]byte(nil), raw...), nil
	}
	return codepage.BytesToUTF16LE(raw, asciiCodepage)
}
