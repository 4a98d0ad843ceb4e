// Package guid decodes the 16-byte Microsoft mixed-endian GUID encoding
// used throughout shell items (root folder identifiers, volume
// identifiers, bag-link extension blocks, and others). No GUID-formatting
// library appears in the retrieval pack, so this is a small stdlib-only
// helper (see DESIGN.md).
package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
)

// GUID is the parsed form of a 16-byte Microsoft GUID: the first three
// groups are stored little-endian, the last two big-endian.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Parse decodes 16 raw bytes into a GUID. It never reformats or validates
// the bytes beyond checking length — formatting is purely cosmetic.
func Parse(raw []byte) (GUID, error) {
	if len(raw) != 16 {
		return GUID{}, fmt.Errorf("%w: guid requires 16 bytes, got %d", consts.ErrInvalidArgument, len(raw))
	}
	var g GUID
	g.Data1 = binary.LittleEndian.Uint32(raw[0:4])
	g.Data2 = binary.LittleEndian.Uint16(raw[4:6])
	g.Data3 = binary.LittleEndian.Uint16(raw[6:8])
	copy(g.Data4[:], raw[8:16])
	return g, nil
}

// String renders the GUID in the canonical
// "XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX" form.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// Bytes returns the 16-byte mixed-endian wire encoding of the GUID.
func (g GUID) Bytes() []byte {
	out := make([]byte, 16)
	binary.LittleEndian.PutUint32(out[0:4], g.Data1)
	binary.LittleEndian.PutUint16(out[4:6], g.Data2)
	binary.LittleEndian.PutUint16(out[6:8], g.Data3)
	copy(out[8:16], g.Data4[:])
	return out
}

// IsZero reports whether the GUID is the all-zero nil GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}
