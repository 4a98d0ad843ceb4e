// Package extension decodes the signature-tagged trailing sub-records
// ("extension blocks") appended to certain shell items, most notably file
// entries (spec.md §4.2). Structurally these are the shell-item analog of
// the teacher's SUSP system-use entries: a tag, a length, and a dispatch
// table keyed by the tag. Grounded on
// pkg/susp/entry.go + pkg/susp/entries.go (header parse + signature
// dispatch loop) and pkg/rockridge/rockridge.go (per-signature field
// decoders) — see DESIGN.md.
package extension

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/cursor"
	"github.com/bgrewell/shellitem-kit/pkg/fatdatetime"
	"github.com/bgrewell/shellitem-kit/pkg/guid"
)

// Kind identifies which typed shape a Block's fields follow. Signatures
// the library has no documented field layout for are still parsed as far
// as the common header and kept as Raw bytes (spec.md §4.2: "any unknown
// signature within the 0xBEEF range: record as Unknown(raw_bytes); do not
// fail the outer parse").
type Kind int

const (
	KindUnknown Kind = iota
	KindFileEntry
	KindBagLink
	KindUserIdentifier
	KindPropertyView
	KindShellFolder1A
	KindKnownFolder
	KindCNet
)

// FileEntryExtension is the 0xBEEF0004 block: the richest extension,
// carrying the long (non-8.3) file name and, on newer versions, an NTFS
// MFT reference and a secondary (short) name.
type FileEntryExtension struct {
	CreationTime    uint32
	AccessTime      uint32
	Unknown1        uint16
	Unknown2        uint16
	HasMFTReference bool
	MFTReference    uint64

	// LongName is the raw UTF-16LE bytes of the long file name, terminator
	// stripped. Re-encoding to a caller's requested charset happens in
	// pkg/item's accessor layer, not here.
	LongName []byte

	HasSecondaryName       bool
	SecondaryName          []byte
	SecondaryNameIsUnicode bool

	// LongNameOffset is the block-relative offset of LongName, stored at
	// the very end of the block.
	LongNameOffset uint16
}

// BagLinkExtension is the 0xBEEF0005 block: a single GUID.
type BagLinkExtension struct {
	Identifier guid.GUID
}

// Block is one parsed extension block.
type Block struct {
	Signature uint32
	Version   uint16
	Size      uint16
	Kind      Kind

	FileEntry *FileEntryExtension
	BagLink   *BagLinkExtension

	// Raw holds the block body (after the 8-byte header) for kinds with
	// no dedicated struct above.
	Raw []byte
}

// DecodedCreationTime decodes the block's packed FAT creation time, for
// FileEntry blocks only.
func (b Block) DecodedCreationTime() (time.Time, error) {
	if b.FileEntry == nil {
		return time.Time{}, fmt.Errorf("%w: block is not a file-entry extension", consts.ErrUnsupportedClassType)
	}
	return fatdatetime.Decode(b.FileEntry.CreationTime)
}

// ParseBlock parses exactly one extension block starting at data[0].
//
// It returns (zero Block, 0, nil) — "not a block" — when the header
// itself doesn't look like an extension block (too few bytes, or a
// signature outside the 0xBEEF family): the caller is expected to stop
// scanning, not treat this as an error (spec.md §4.2). A structurally
// inconsistent header (size < 8 or size larger than the data available)
// is a hard failure: InvalidExtensionBlock.
func ParseBlock(data []byte) (Block, int, error) {
	if len(data) < consts.ExtensionBlockMinHeaderSize {
		return Block{}, 0, nil
	}

	header := cursor.New(data)
	size, _ := header.ReadU16()
	version, _ := header.ReadU16()
	signature, _ := header.ReadU32()

	if signature&0xFFFF0000 != consts.ExtensionBlockSignaturePrefix {
		return Block{}, 0, nil
	}
	if size < consts.ExtensionBlockMinHeaderSize {
		return Block{}, 0, fmt.Errorf("%w: block size %d smaller than header", consts.ErrInvalidExtensionBlock, size)
	}
	if int(size) > len(data) {
		return Block{}, 0, fmt.Errorf("%w: block size %d exceeds remaining %d bytes", consts.ErrInvalidExtensionBlock, size, len(data))
	}

	block := data[:size]
	body := block[consts.ExtensionBlockMinHeaderSize:]

	out := Block{Signature: signature, Version: version, Size: size}

	switch signature {
	case consts.SignatureFileEntryExtension:
		fe, err := parseFileEntryExtension(body, version)
		if err != nil {
			return Block{}, 0, err
		}
		out.Kind = KindFileEntry
		out.FileEntry = fe
	case consts.SignatureBagLink:
		bc := cursor.New(body)
		raw, err := bc.ReadGUID()
		if err != nil {
			return Block{}, 0, fmt.Errorf("%w: bag-link block too short for GUID", consts.ErrInvalidExtensionBlock)
		}
		g, err := guid.Parse(raw)
		if err != nil {
			return Block{}, 0, err
		}
		out.Kind = KindBagLink
		out.BagLink = &BagLinkExtension{Identifier: g}
	case consts.SignatureUserIdentifier:
		out.Kind = KindUserIdentifier
		out.Raw = append([]byte(nil), body...)
	case consts.SignaturePropertyView:
		out.Kind = KindPropertyView
		out.Raw = append([]byte(nil), body...)
	case consts.SignatureShellFolder1A:
		out.Kind = KindShellFolder1A
		out.Raw = append([]byte(nil), body...)
	case consts.SignatureKnownFolder:
		out.Kind = KindKnownFolder
		out.Raw = append([]byte(nil), body...)
	case consts.SignatureCNet:
		out.Kind = KindCNet
		out.Raw = append([]byte(nil), body...)
	default:
		out.Kind = KindUnknown
		out.Raw = append([]byte(nil), body...)
	}

	return out, int(size), nil
}

// parseFileEntryExtension follows spec.md §4.2's byte layout for
// 0xBEEF0004: fixed FAT timestamps and unknown fields, an optional MFT
// reference gated by version, a UTF-16LE long name, an optional
// secondary name gated by version, and a trailing long-name-offset u16.
func parseFileEntryExtension(body []byte, version uint16) (*FileEntryExtension, error) {
	c := cursor.New(body)

	creation, err1 := c.ReadU32()
	access, err2 := c.ReadU32()
	unknown1, err3 := c.ReadU16()
	unknown2, err4 := c.ReadU16()
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil, fmt.Errorf("%w: file-entry extension shorter than fixed header", consts.ErrInvalidExtensionBlock)
	}

	fe := &FileEntryExtension{
		CreationTime: creation,
		AccessTime:   access,
		Unknown1:     unknown1,
		Unknown2:     unknown2,
	}

	if version >= consts.FileEntryLongNameMFTVersion {
		mft, err := c.ReadU64()
		if err != nil {
			return nil, fmt.Errorf("%w: file-entry extension too short for MFT reference", consts.ErrInvalidExtensionBlock)
		}
		// an adjoining unknown u64 follows the MFT reference, per spec.md §4.2
		if err := c.Advance(8); err != nil {
			return nil, fmt.Errorf("%w: file-entry extension too short for MFT reference", consts.ErrInvalidExtensionBlock)
		}
		fe.HasMFTReference = true
		fe.MFTReference = mft
	}

	name, err := c.ReadUTF16CString()
	if err != nil {
		return nil, err
	}
	fe.LongName = name

	// The trailing 2 bytes of the block are always the long-name offset
	// field (read below), never part of a secondary name.
	if version >= consts.FileEntrySecondaryNameVersion && c.Offset() < c.Len()-2 {
		fe.HasSecondaryName = true
		if version >= consts.FileEntryLongNameMFTVersion {
			fe.SecondaryNameIsUnicode = true
			sec, err := c.ReadUTF16CString()
			if err != nil {
				return nil, err
			}
			fe.SecondaryName = sec
		} else {
			sec, err := c.ReadCString()
			if err != nil {
				return nil, err
			}
			fe.SecondaryName = sec
		}
	}

	if len(body) >= 2 {
		fe.LongNameOffset = binary.LittleEndian.Uint16(body[len(body)-2:])
	}

	return fe, nil
}
