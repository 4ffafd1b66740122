// Package render prints decoded catalog records for humans and tools.
package render

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatText    Format = "text"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatCBOR    Format = "cbor"
)

func Formats() []Format {
	return []Format{FormatText, FormatYAML, FormatJSON, FormatMsgpack, FormatCBOR}
}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON, FormatMsgpack, FormatCBOR:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", raw)
	}
}
