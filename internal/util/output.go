package util

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format, defaulting to YAML.
func ParseFormat(s string) Format {
	if s == string(FormatJSON) {
		return FormatJSON
	}
	return FormatYAML
}

// Write encodes v to w in format. JSON keeps <, >, & intact so highlighted
// fragments stay readable.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		out, err := MarshalNoEscape(v, true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}
