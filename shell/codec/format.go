package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/AntonStoeckl/drone-assembly-go/features/exportassembly"
	"github.com/AntonStoeckl/drone-assembly-go/features/importassembly"
)

// ErrUnsupportedFormat is returned for any format other than csv or json.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names a file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(name))); format {
	case FormatCSV, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatOf derives the format from a file name extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// UnmarshalText lets env and flag parsing fill a Format directly.
func (f *Format) UnmarshalText(text []byte) error {
	format, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = format

	return nil
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Encode writes the rows in the given format.
func Encode(w io.Writer, format Format, rows exportassembly.Rows) error {
	switch format {
	case FormatCSV:
		return EncodeCSV(w, rows)
	case FormatJSON:
		return EncodeJSON(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// Decode reads import entries in the given format.
func Decode(r io.Reader, format Format) ([]importassembly.Entry, error) {
	switch format {
	case FormatCSV:
		return DecodeCSV(r)
	case FormatJSON:
		return DecodeJSON(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}
