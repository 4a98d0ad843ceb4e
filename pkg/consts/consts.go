// Package consts holds the wire-format constants and sentinel errors shared
// across the shell-item decoder packages.
package consts

import "errors"

const (
	// ClassTypeFamilyMask isolates the high nibble of a shell item's class
	// type byte, which selects the variant family (spec §4.4).
	ClassTypeFamilyMask = 0x70

	ClassTypeFamilyRootFolder       = 0x10
	ClassTypeFamilyVolume           = 0x20
	ClassTypeFamilyFileEntry        = 0x30
	ClassTypeFamilyNetworkLocation  = 0x40
	ClassTypeFamilyCompressedFolder = 0x50
	ClassTypeFamilyURI              = 0x60
	ClassTypeFamilyControlPanel     = 0x70

	// ClassTypeRootFolder is the exact class type byte for a root folder
	// item (§4.3).
	ClassTypeRootFolder = 0x1F

	// ClassTypeVolumeGUIDOnly is the one volume class type whose shape
	// carries only a GUID, no name.
	ClassTypeVolumeGUIDOnly = 0x2E

	// ClassTypeURI is the exact class type byte for a URI item.
	ClassTypeURI = 0x61

	// FileEntryUnicodeFlag, when set in a file entry's class type byte,
	// indicates the name is stored as UTF-16LE rather than a legacy
	// code-paged byte stream.
	FileEntryUnicodeFlag = 0x04

	// URIUnicodeFlag is the corresponding bit for URI items (bit 0x80 of
	// the URI flags byte, per §3).
	URIUnicodeFlag = 0x80

	// NetworkLocationHasDeviceName, NetworkLocationHasDescription, and
	// NetworkLocationHasComments are the flag bits that gate the optional
	// trailing strings of a network location item (§4.3).
	NetworkLocationHasDeviceName  = 0x20
	NetworkLocationHasDescription = 0x80
	NetworkLocationHasComments    = 0x40

	// ExtensionBlockSignaturePrefix is the fixed high 16 bits every known
	// extension block signature shares.
	ExtensionBlockSignaturePrefix = 0xBEEF0000

	SignatureFileEntryExtension = 0xBEEF0004
	SignatureBagLink            = 0xBEEF0005
	SignatureUserIdentifier     = 0xBEEF0006
	SignaturePropertyView       = 0xBEEF000A
	SignatureShellFolder1A      = 0xBEEF001A
	SignatureKnownFolder        = 0xBEEF0025
	SignatureCNet               = 0xBEEF002C

	// ExtensionBlockMinHeaderSize is the minimum valid block length: a
	// u16 size, u16 version, u32 signature (§4.2).
	ExtensionBlockMinHeaderSize = 8

	// ExtensionBlockTerminatorSize is the width of the trailing
	// terminator that follows a block chain inside a shell item.
	ExtensionBlockTerminatorSize = 2

	// FileEntryLongNameMFTVersion is the minimum extension-block version
	// that carries an MFT reference in the 0xBEEF0004 block.
	FileEntryLongNameMFTVersion = 7

	// FileEntrySecondaryNameVersion is the minimum extension-block
	// version that carries a secondary (code-paged) name.
	FileEntrySecondaryNameVersion = 3

	// DefaultASCIICodepage is the legacy code page used when the caller
	// does not specify one.
	DefaultASCIICodepage = 1252

	// ListSentinel is the 2-byte size value that terminates a chained
	// shell item list (§4.4 step 2).
	ListSentinel = 0
)

// Sentinel errors corresponding to spec §7's error kinds. Wrapped with
// call-site context via fmt.Errorf("...: %w", err) throughout the decoder,
// so callers can still errors.Is against these.
var (
	// ErrInvalidArgument reports null or mistyped input from the caller.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTruncated reports that a decode would read past the end of the
	// input buffer.
	ErrTruncated = errors.New("truncated shell item data")

	// ErrInvalidItemSize reports a structurally inconsistent outer item
	// size field.
	ErrInvalidItemSize = errors.New("invalid shell item size")

	// ErrInvalidExtensionBlock reports a structurally inconsistent
	// extension block header.
	ErrInvalidExtensionBlock = errors.New("invalid extension block")

	// ErrUnsupportedClassType reports an accessor called against an item
	// of the wrong variant, or (internally) a class byte with no known
	// family — the latter is recovered from by downgrading to Unknown,
	// it is never surfaced to the caller of parse.
	ErrUnsupportedClassType = errors.New("unsupported class type")

	// ErrBufferTooSmall reports that a caller-provided output buffer is
	// smaller than the corresponding sizing call reported.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrRuntime reports a propagated failure from a collaborator (the
	// code page / Unicode transcoder).
	ErrRuntime = errors.New("runtime error")
)
