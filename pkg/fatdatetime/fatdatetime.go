// Package fatdatetime decodes the 32-bit packed FAT date/time encoding used
// by file-entry shell items (spec.md §3, §6 — "Date/time formatter: FAT
// date/time decode for debug; not used on the main accessor path"). No
// FAT-date library appears in the retrieval pack; this follows the shape of
// the teacher's own bespoke recording-time decoder (manual field
// extraction + range validation + time.Date), adapted to the FAT bit
// layout instead of the ISO9660 7-byte layout (see DESIGN.md).
package fatdatetime

import (
	"fmt"
	"time"

	"github.com/bgrewell/shellitem-kit/pkg/consts"
)

// Decode converts a packed FAT date/time value into a time.Time.
//
// Bit layout (little bit 0 is the least significant):
//
//	bits 0-4:   day of month (1-31)
//	bits 5-8:   month (1-12)
//	bits 9-15:  year offset from 1980
//	bits 16-20: 2-second increments (0-29)
//	bits 21-26: minute (0-59)
//	bits 27-31: hour (0-23)
func Decode(packed uint32) (time.Time, error) {
	day := int(packed & 0x1F)
	month := time.Month((packed >> 5) & 0x0F)
	year := 1980 + int((packed>>9)&0x7F)
	second := int((packed>>16)&0x1F) * 2
	minute := int((packed >> 21) & 0x3F)
	hour := int((packed >> 27) & 0x1F)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: invalid FAT month %d", consts.ErrInvalidItemSize, month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: invalid FAT day %d", consts.ErrInvalidItemSize, day)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("%w: invalid FAT time %02d:%02d:%02d", consts.ErrInvalidItemSize, hour, minute, second)
	}

	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}

// Encode is the inverse of Decode, clamping sub-2-second precision down to
// the nearest even second as the FAT format requires.
func Encode(t time.Time) (uint32, error) {
	year := t.Year() - 1980
	if year < 0 || year > 0x7F {
		return 0, fmt.Errorf("%w: year %d out of FAT range", consts.ErrInvalidArgument, t.Year())
	}

	var packed uint32
	packed |= uint32(t.Day()) & 0x1F
	packed |= (uint32(t.Month()) & 0x0F) << 5
	packed |= (uint32(year) & 0x7F) << 9
	packed |= (uint32(t.Second()/2) & 0x1F) << 16
	packed |= (uint32(t.Minute()) & 0x3F) << 21
	packed |= (uint32(t.Hour()) & 0x1F) << 27
	return packed, nil
}
