package vdf

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// readString reads a null-terminated string. Narrow strings use one-byte
// code units decoded as UTF-8, wide strings two-byte little-endian units
// decoded as UTF-16. Invalid sequences become U+FFFD.
func (d *decoder) readString(wide bool, field string) (string, error) {
	start := d.r.off
	var raw []byte
	for {
		if wide {
			unit, err := d.r.u16(field)
			if err != nil {
				return "", err
			}
			if unit == 0 {
				break
			}
			raw = binary.LittleEndian.AppendUint16(raw, unit)
		} else {
			c, err := d.r.u8(field)
			if err != nil {
				return "", err
			}
			if c == 0 {
				break
			}
			raw = append(raw, c)
		}
		if len(raw) > d.limits.MaxStringBytes {
			return "", &DecodeError{Offset: start, Field: field, Err: ErrStringTooLong}
		}
	}
	if len(raw) == 0 {
		return "", nil
	}

	enc := unicode.UTF8
	if wide {
		enc = utf16le
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		// The decoders substitute U+FFFD and do not fail on malformed text.
		return "", &DecodeError{Offset: start, Field: field, Err: ErrIO, Cause: err}
	}
	return string(out), nil
}
