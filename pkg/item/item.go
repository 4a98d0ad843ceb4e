// Package item implements the shell-item classifier/dispatcher and the
// typed accessor layer on top of it (spec.md §4.4, §4.5). It ties
// together pkg/cursor, pkg/extension, and pkg/variant the way the
// teacher's iso.go ties together pkg/descriptor, pkg/directory, and
// pkg/susp behind one Parse() entry point — see DESIGN.md.
package item

import (
	"github.com/bgrewell/shellitem-kit/pkg/variant"
)

// VariantTag identifies which shape an Item's value record holds.
type VariantTag int

const (
	VariantUnknown VariantTag = iota
	VariantRootFolder
	VariantVolume
	VariantFileEntry
	VariantNetworkLocation
	VariantCompressedFolder
	VariantControlPanel
	VariantURI
	VariantUsersPropertyView
	VariantDelegate
)

// String renders the tag the way callers see it through the Item.Variant
// field.
func (t VariantTag) String() string {
	switch t {
	case VariantRootFolder:
		return "ROOT_FOLDER"
	case VariantVolume:
		return "VOLUME"
	case VariantFileEntry:
		return "FILE_ENTRY"
	case VariantNetworkLocation:
		return "NETWORK_LOCATION"
	case VariantCompressedFolder:
		return "COMPRESSED_FOLDER"
	case VariantControlPanel:
		return "CONTROL_PANEL"
	case VariantURI:
		return "URI"
	case VariantUsersPropertyView:
		return "USERS_PROPERTY_VIEW"
	case VariantDelegate:
		return "DELEGATE"
	default:
		return "UNKNOWN"
	}
}

// Item is the public opaque handle (spec.md §3): class type, variant tag,
// the variant-specific value record, the default legacy code page, and
// the number of input bytes this item consumed. It is built once by
// Parse/ParseList and is read-only thereafter.
type Item struct {
	ClassType     byte
	Variant       VariantTag
	ASCIICodepage uint32
	DataSize      int

	RootFolder        *variant.RootFolder
	Volume            *variant.Volume
	FileEntry         *variant.FileEntry
	NetworkLocation   *variant.NetworkLocation
	CompressedFolder  *variant.CompressedFolder
	ControlPanel      *variant.ControlPanel
	URI               *variant.URI
	UsersPropertyView *variant.UsersPropertyView
	Delegate          *variant.Delegate

	// Unknown holds the raw item bytes when Variant == VariantUnknown.
	Unknown []byte
}

// SetASCIICodepage changes the item's default legacy code page. This
// does not reparse — it only affects subsequent string accessor calls
// (spec.md §6).
func (i *Item) SetASCIICodepage(cp uint32) {
	i.ASCIICodepage = cp
}
