package bookmark

import (
	"errors"
	"strings"
)

// Delimiter separates the fields of a stored record.
const Delimiter = ";"

// ErrMalformedRecord is returned when a line has no kind segment.
var ErrMalformedRecord = errors.New("malformed record")

// Encode returns the stored form of b, including the trailing newline.
// A delimiter inside Value is written as-is and merged away again by Decode.
func Encode(b Bookmark) string {
	return b.Alias + Delimiter + string(b.Kind) + Delimiter + b.Value + "\n"
}

// Decode parses one line without its trailing newline.
// Segments after the kind are concatenated to form the value.
func Decode(line string) (Bookmark, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 2 {
		return Bookmark{}, ErrMalformedRecord
	}

	return Bookmark{
		Alias: parts[0],
		Kind:  Kind(parts[1]),
		Value: strings.Join(parts[2:], ""),
	}, nil
}

// LinePrefix returns the prefix shared by every stored line for alias.
func LinePrefix(alias string) string {
	return alias + Delimiter
}
