// Package codepage implements the spec's "Unicode converter" collaborator
// (spec.md §6): transcoding between a shell item's original storage
// encoding — UTF-16LE or a legacy Windows/DBCS code page — and the
// caller's requested encoding (UTF-8 or UTF-16LE).
//
// Grounded on golang.org/x/text/encoding/charmap + japanese + unicode, the
// way other_examples/dc5f1046_leo-cydar-_opendcm__representation.go.go
// keys a table of legacy encodings by a numeric/string code identifier,
// and the way other_examples/5177741a_xakep666-ps3netsrv-go__pkg-fs-iso9660.go.go
// and other_examples/0a21e64e_laenix-ewfgo__internal-constants.go.go use
// golang.org/x/text/encoding/unicode for UTF-16 decoding (see DESIGN.md).
package codepage

import (
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	textunicode "golang.org/x/text/encoding/unicode"
)

// table maps a Windows code page identifier to its golang.org/x/text
// encoding. Not exhaustive — it covers the Windows-125x family plus the
// common East Asian DBCS pages (932 Shift-JIS is the spec's own example
// of a legacy DBCS page alongside 1252).
var table = map[uint32]encoding.Encoding{
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
	28591: charmap.ISO8859_1,
	850:   charmap.CodePage850,
	866:   charmap.CodePage866,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
}

// encodingFor resolves a legacy code page number to its transcoder,
// defaulting to Windows-1252 (the spec's own default ascii_codepage) for
// an unrecognized page rather than failing outright — an item whose
// strings are garbled by an unusual code page is still a successfully
// parsed item.
func encodingFor(cp uint32) encoding.Encoding {
	if enc, ok := table[cp]; ok {
		return enc
	}
	return charmap.Windows1252
}

// BytesToUTF8 transcodes a legacy-code-paged byte stream to UTF-8.
func BytesToUTF8(data []byte, cp uint32) (string, error) {
	out, err := encodingFor(cp).NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: legacy codepage %d to utf-8: %v", consts.ErrRuntime, cp, err)
	}
	return string(out), nil
}

// UTF8ToBytes transcodes a UTF-8 string to a legacy-code-paged byte stream.
func UTF8ToBytes(s string, cp uint32) ([]byte, error) {
	out, err := encodingFor(cp).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: utf-8 to legacy codepage %d: %v", consts.ErrRuntime, cp, err)
	}
	return out, nil
}

// UTF16LEToUTF8 transcodes a raw little-endian UTF-16 byte stream to UTF-8.
func UTF16LEToUTF8(data []byte) (string, error) {
	dec := textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: utf-16le to utf-8: %v", consts.ErrRuntime, err)
	}
	return string(out), nil
}

// UTF8ToUTF16LE transcodes a UTF-8 string to raw little-endian UTF-16
// bytes (no byte-order mark).
func UTF8ToUTF16LE(s string) ([]byte, error) {
	enc := textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: utf-8 to utf-16le: %v", consts.ErrRuntime, err)
	}
	return out, nil
}

// BytesToUTF16LE transcodes a legacy-code-paged byte stream directly to
// raw little-endian UTF-16 bytes, used when a caller requests UTF-16 for a
// field that was stored in a legacy code page (spec.md §4.5).
func BytesToUTF16LE(data []byte, cp uint32) ([]byte, error) {
	s, err := BytesToUTF8(data, cp)
	if err != nil {
		return nil, err
	}
	return UTF8ToUTF16LE(s)
}

// UTF16LECodeUnitCount returns the number of UTF-16 code units a raw
// little-endian UTF-16 byte stream holds (a surrogate pair counts as two),
// not counting any terminator — callers needing the "including
// terminator" count per spec.md §4.5 add one themselves, since the stored
// streams never include their own terminator (it is stripped when the
// name is read). A trailing odd byte is not counted.
func UTF16LECodeUnitCount(data []byte) int {
	return len(data) / 2
}
