package item

import (
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/extension"
	"github.com/bgrewell/shellitem-kit/pkg/variant"
	"github.com/go-logr/logr"
)

// Parse decodes exactly one shell item from the start of data (spec.md
// §6: parse_item). An end-of-list sentinel (a leading u16 size of 0) is
// rejected here — callers that want to walk a chained list should use
// ParseList instead.
func Parse(log logr.Logger, data []byte, defaultCodepage uint32) (*Item, error) {
	it, consumed, isEnd, err := parseOne(log, data, defaultCodepage)
	if err != nil {
		return nil, err
	}
	if isEnd {
		return nil, fmt.Errorf("%w: input is an end-of-list sentinel, not an item", consts.ErrInvalidItemSize)
	}
	_ = consumed
	return it, nil
}

// ParseList decodes a chained sequence of shell items, stopping at the
// first 0x0000 size sentinel or at the end of data (spec.md §6:
// parse_item_list). An error on item n aborts the whole list — shell-item
// chains have no framing checkpoints to resynchronize against (spec.md
// §7).
func ParseList(log logr.Logger, data []byte, defaultCodepage uint32) ([]*Item, error) {
	var items []*Item
	offset := 0
	for offset < len(data) {
		it, consumed, isEnd, err := parseOne(log, data[offset:], defaultCodepage)
		if err != nil {
			return nil, fmt.Errorf("item at offset %d: %w", offset, err)
		}
		if isEnd {
			break
		}
		items = append(items, it)
		offset += consumed
	}
	return items, nil
}

// parseOne implements the READ_HEADER -> DISPATCH -> READ_EXT_BLOCKS* ->
// EMIT_ITEM state machine of spec.md §4.4.
func parseOne(log logr.Logger, data []byte, defaultCodepage uint32) (it *Item, consumed int, isEnd bool, err error) {
	if len(data) < 2 {
		return nil, 0, false, fmt.Errorf("%w: fewer than 2 bytes remain for item header", consts.ErrTruncated)
	}

	size := binary.LittleEndian.Uint16(data[0:2])
	if size == uint16(consts.ListSentinel) {
		return nil, 2, true, nil
	}
	if size < 2 || int(size) > len(data) {
		return nil, 0, false, fmt.Errorf("%w: item size %d inconsistent with %d remaining bytes", consts.ErrInvalidItemSize, size, len(data))
	}

	itemData := data[:size]
	if len(itemData) < 3 {
		return nil, 0, false, fmt.Errorf("%w: item too short for a class type byte", consts.ErrTruncated)
	}
	classType := itemData[2]

	result := &Item{ClassType: classType, ASCIICodepage: defaultCodepage, DataSize: int(size)}

	fixedConsumed, err := dispatch(log, result, itemData)
	if err != nil {
		log.Error(err, "shell item decode failed", "classType", classType)
		return nil, 0, false, err
	}

	if result.Variant == VariantFileEntry {
		if err := decodeExtensionBlocks(result, itemData, fixedConsumed); err != nil {
			return nil, 0, false, err
		}
	}

	log.V(1).Info("decoded shell item", "variant", result.Variant.String(), "size", size)
	return result, int(size), false, nil
}

// dispatch tries each variant decoder in turn (root folder, volume, file
// entry, network location, compressed folder, URI, delegate, control
// panel, users-property-view), falling back to Unknown when none applies
// (spec.md §7: "An unknown class type is not an error").
func dispatch(log logr.Logger, result *Item, itemData []byte) (int, error) {
	if rf, n, err := variant.DecodeRootFolder(itemData); err != nil {
		return 0, err
	} else if rf != nil {
		result.Variant = VariantRootFolder
		result.RootFolder = rf
		return n, nil
	}

	if v, n, err := variant.DecodeVolume(itemData, result.ASCIICodepage); err != nil {
		return 0, err
	} else if v != nil {
		result.Variant = VariantVolume
		result.Volume = v
		return n, nil
	}

	if fe, n, err := variant.DecodeFileEntry(itemData); err != nil {
		return 0, err
	} else if fe != nil {
		result.Variant = VariantFileEntry
		result.FileEntry = fe
		return n, nil
	}

	if nl, n, err := variant.DecodeNetworkLocation(itemData); err != nil {
		return 0, err
	} else if nl != nil {
		result.Variant = VariantNetworkLocation
		result.NetworkLocation = nl
		return n, nil
	}

	if cf, n, err := variant.DecodeCompressedFolder(itemData); err != nil {
		return 0, err
	} else if cf != nil {
		result.Variant = VariantCompressedFolder
		result.CompressedFolder = cf
		return n, nil
	}

	if u, n, err := variant.DecodeURI(itemData); err != nil {
		return 0, err
	} else if u != nil {
		result.Variant = VariantURI
		result.URI = u
		return n, nil
	}

	// Delegate is carved out of the control-panel family by an exact
	// class type and must be tried before the generic ControlPanel check
	// (see pkg/variant/identifier.go).
	if d, n, err := variant.DecodeDelegate(itemData); err != nil {
		return 0, err
	} else if d != nil {
		result.Variant = VariantDelegate
		result.Delegate = d
		return n, nil
	}

	if cp, n, err := variant.DecodeControlPanel(itemData); err != nil {
		return 0, err
	} else if cp != nil {
		result.Variant = VariantControlPanel
		result.ControlPanel = cp
		return n, nil
	}

	if uv, n, err := variant.DecodeUsersPropertyView(itemData); err != nil {
		return 0, err
	} else if uv != nil {
		result.Variant = VariantUsersPropertyView
		result.UsersPropertyView = uv
		return n, nil
	}

	log.V(1).Info("unrecognized class type, downgrading to unknown variant", "classType", result.ClassType)
	result.Variant = VariantUnknown
	result.Unknown = append([]byte(nil), itemData...)
	return len(itemData), nil
}

// decodeExtensionBlocks implements spec.md §4.4 step 6: pull extension
// blocks from the bytes between the file entry's fixed portion and the
// trailing 2-byte terminator.
func decodeExtensionBlocks(result *Item, itemData []byte, fixedConsumed int) error {
	end := len(itemData) - consts.ExtensionBlockTerminatorSize
	if end <= fixedConsumed {
		return nil
	}
	region := itemData[fixedConsumed:end]

	offset := 0
	for offset+4 <= len(region) {
		size := binary.LittleEndian.Uint16(region[offset : offset+2])
		if size < consts.ExtensionBlockMinHeaderSize || int(size) > len(region)-offset {
			break
		}
		block, consumed, err := extension.ParseBlock(region[offset:])
		if err != nil {
			return err
		}
		if consumed == 0 {
			break
		}
		result.FileEntry.ExtensionBlocks = append(result.FileEntry.ExtensionBlocks, block)
		offset += consumed
	}
	return nil
}
