package variant

import (
	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/guid"
)

// identifierValue is the shared shape behind CompressedFolder,
// ControlPanel, UsersPropertyView, and Delegate: "each carries an
// identifier GUID and/or a name, per the wire layouts" (spec.md §3).
// All four follow RootFolder's compact GUID-at-+4 layout, with an
// optional trailing NUL-terminated name when more bytes remain — the
// generic shape the source specification describes for this family.
type identifierValue struct {
	Identifier guid.GUID

	HasName  bool
	Name     []byte
	NameSize int
}

const identifierFixedLength = 20

func decodeIdentifierValue(data []byte) (*identifierValue, int, error) {
	if len(data) < identifierFixedLength {
		return nil, 0, nil
	}
	g, err := guid.Parse(data[4:20])
	if err != nil {
		return nil, 0, err
	}
	v := &identifierValue{Identifier: g}
	consumed := identifierFixedLength

	if len(data) > identifierFixedLength {
		name, n := readCString(data[identifierFixedLength:])
		if len(name) > 0 {
			v.HasName = true
			v.Name = name
			v.NameSize = len(name)
			consumed += n
		}
	}

	return v, consumed, nil
}

// DelegateClassType is the exact class type this library treats as a
// delegate item. The source specification leaves the delegate family's
// exact wire identification undocumented ("each identified by a class
// byte or a GUID in a fixed position" — spec.md §4.3); since every
// class_type & 0x70 family slot is already claimed by another variant,
// delegate items are carved out of the control-panel family by this one
// specific byte and must be tried before the generic ControlPanel check
// (see pkg/item's dispatch order, and DESIGN.md).
const DelegateClassType = 0x74

// CompressedFolder is the value record for the compressed-folder class
// type family (class_type & 0x70 == 0x50).
type CompressedFolder struct{ identifierValue }

// DecodeCompressedFolder applies the shared identifier-value layout to
// the compressed-folder class type family.
func DecodeCompressedFolder(data []byte) (*CompressedFolder, int, error) {
	if len(data) < 3 || (data[2]&consts.ClassTypeFamilyMask) != consts.ClassTypeFamilyCompressedFolder {
		return nil, 0, nil
	}
	v, n, err := decodeIdentifierValue(data)
	if v == nil || err != nil {
		return nil, 0, err
	}
	return &CompressedFolder{*v}, n, nil
}

// ControlPanel is the value record for the control-panel class type
// family (class_type & 0x70 == 0x70), excluding DelegateClassType.
type ControlPanel struct{ identifierValue }

// DecodeControlPanel applies the shared identifier-value layout to the
// control-panel class type family.
func DecodeControlPanel(data []byte) (*ControlPanel, int, error) {
	if len(data) < 3 || (data[2]&consts.ClassTypeFamilyMask) != consts.ClassTypeFamilyControlPanel {
		return nil, 0, nil
	}
	if data[2] == DelegateClassType {
		return nil, 0, nil
	}
	v, n, err := decodeIdentifierValue(data)
	if v == nil || err != nil {
		return nil, 0, err
	}
	return &ControlPanel{*v}, n, nil
}

// UsersPropertyView is the value record for the users-property-view
// family: the one class_type & 0x70 slot (0x00) the other seven named
// families leave unclaimed.
type UsersPropertyView struct{ identifierValue }

// DecodeUsersPropertyView applies the shared identifier-value layout to
// the users-property-view class type family.
func DecodeUsersPropertyView(data []byte) (*UsersPropertyView, int, error) {
	if len(data) < 3 || (data[2]&consts.ClassTypeFamilyMask) != 0x00 {
		return nil, 0, nil
	}
	v, n, err := decodeIdentifierValue(data)
	if v == nil || err != nil {
		return nil, 0, err
	}
	return &UsersPropertyView{*v}, n, nil
}

// Delegate is the value record for DelegateClassType: a GUID-identified
// indirection to another item.
type Delegate struct{ identifierValue }

// DecodeDelegate applies the shared identifier-value layout to
// DelegateClassType specifically.
func DecodeDelegate(data []byte) (*Delegate, int, error) {
	if len(data) < 3 || data[2] != DelegateClassType {
		return nil, 0, nil
	}
	v, n, err := decodeIdentifierValue(data)
	if v == nil || err != nil {
		return nil, 0, err
	}
	return &Delegate{*v}, n, nil
}
