// Package shellitem decodes Windows shell items: the binary records that
// identify one hop along a shell-namespace path inside .lnk files, jump
// lists, and shellbag registry values.
package shellitem

import (
	"fmt"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
	"github.com/bgrewell/shellitem-kit/pkg/item"
	"github.com/go-logr/logr"
)

// Item is the decoded, read-only handle to one shell item. Its typed
// accessor methods (RootFolderIdentifier, FileEntryName, ...) guard
// against being called on the wrong variant.
type Item = item.Item

// VariantTag identifies which shape an Item's value record holds.
type VariantTag = item.VariantTag

// Variant tags, re-exported from pkg/item so callers never need to
// import it directly.
const (
	VariantUnknown           = item.VariantUnknown
	VariantRootFolder        = item.VariantRootFolder
	VariantVolume            = item.VariantVolume
	VariantFileEntry         = item.VariantFileEntry
	VariantNetworkLocation   = item.VariantNetworkLocation
	VariantCompressedFolder  = item.VariantCompressedFolder
	VariantControlPanel      = item.VariantControlPanel
	VariantURI               = item.VariantURI
	VariantUsersPropertyView = item.VariantUsersPropertyView
	VariantDelegate          = item.VariantDelegate
)

// Options configures how ParseItem and ParseItemList decode their input.
type Options struct {
	asciiCodepage uint32
	logger        logr.Logger
}

// Option mutates Options. Passed in order to ParseItem/ParseItemList.
type Option func(*Options)

// WithASCIICodepage sets the legacy Windows code page used to transcode
// any non-Unicode string the item carries (default 1252, Windows-1252).
func WithASCIICodepage(codepage uint32) Option {
	return func(o *Options) {
		o.asciiCodepage = codepage
	}
}

// WithLogger sets the logr.Logger used for parse diagnostics. The
// default discards all log output.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func defaultOptions() Options {
	return Options{
		asciiCodepage: consts.DefaultASCIICodepage,
		logger:        logr.Discard(),
	}
}

// ParseItem decodes exactly one shell item from the start of data. An
// end-of-list sentinel (a leading u16 size of 0) is rejected — use
// ParseItemList to walk a chained list.
func ParseItem(data []byte, opts ...Option) (*Item, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	it, err := item.Parse(options.logger, data, options.asciiCodepage)
	if err != nil {
		return nil, fmt.Errorf("parse shell item: %w", err)
	}
	return it, nil
}

// ParseItemList decodes a chained sequence of shell items, stopping at
// the first zero-size sentinel or the end of data. An error decoding any
// item aborts the whole list: shell-item chains carry no framing
// checkpoint to resynchronize against.
func ParseItemList(data []byte, opts ...Option) ([]*Item, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	items, err := item.ParseList(options.logger, data, options.asciiCodepage)
	if err != nil {
		return nil, fmt.Errorf("parse shell item list: %w", err)
	}
	return items, nil
}
