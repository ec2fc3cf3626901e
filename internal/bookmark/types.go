// Package bookmark provides the bookmark record type and its line codec.
package bookmark

// Kind tags what a bookmark's value holds.
type Kind string

const (
	KindPath    Kind = "path"
	KindCommand Kind = "command"
)

// Bookmark associates an alias with a path or command.
type Bookmark struct {
	Alias string `json:"alias"`
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// IsPath returns true if the bookmark points at a filesystem path.
func (b Bookmark) IsPath() bool {
	return b.Kind == KindPath
}

// IsCommand returns true if the bookmark holds a shell command.
func (b Bookmark) IsCommand() bool {
	return b.Kind == KindCommand
}
