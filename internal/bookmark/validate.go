package bookmark

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyAlias is returned when the alias is empty.
	ErrEmptyAlias = errors.New("alias cannot be empty")

	// ErrInvalidAlias is returned when the alias cannot be stored on one line
	// or would be split by the delimiter.
	ErrInvalidAlias = errors.New("alias cannot contain ';' or line breaks")

	// ErrInvalidKind is returned when the kind cannot be stored.
	ErrInvalidKind = errors.New("kind cannot be empty or contain ';' or line breaks")

	// ErrMultilineValue is returned when the value contains a line break.
	ErrMultilineValue = errors.New("value cannot contain line breaks")
)

// ValidateAlias checks that alias fits in the first field of a line.
func ValidateAlias(alias string) error {
	if alias == "" {
		return ErrEmptyAlias
	}
	if strings.ContainsAny(alias, Delimiter+"\r\n") {
		return ErrInvalidAlias
	}
	return nil
}

// Validate checks that b can be written as a single line. A delimiter in
// the value is allowed; it is dropped when the line is read back.
func (b Bookmark) Validate() error {
	if err := ValidateAlias(b.Alias); err != nil {
		return err
	}
	if b.Kind == "" || strings.ContainsAny(string(b.Kind), Delimiter+"\r\n") {
		return ErrInvalidKind
	}
	if strings.ContainsAny(b.Value, "\r\n") {
		return ErrMultilineValue
	}
	return nil
}
