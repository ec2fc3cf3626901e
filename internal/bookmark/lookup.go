package bookmark

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindAll returns every bookmark whose alias equals alias, ignoring case.
// Results keep the input order.
func FindAll(bookmarks []Bookmark, alias string) []Bookmark {
	var found []Bookmark
	for _, b := range bookmarks {
		if strings.EqualFold(b.Alias, alias) {
			found = append(found, b)
		}
	}
	return found
}

// FindFirst returns the first bookmark whose alias equals alias, ignoring case.
func FindFirst(bookmarks []Bookmark, alias string) (Bookmark, bool) {
	for _, b := range bookmarks {
		if strings.EqualFold(b.Alias, alias) {
			return b, true
		}
	}
	return Bookmark{}, false
}

// FilterGlob returns the bookmarks whose alias matches pattern.
// Patterns use doublestar syntax. An empty pattern matches everything.
func FilterGlob(bookmarks []Bookmark, pattern string) ([]Bookmark, error) {
	if pattern == "" {
		return bookmarks, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	var matched []Bookmark
	for _, b := range bookmarks {
		ok, err := doublestar.Match(pattern, b.Alias)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// OfKind returns the bookmarks with the given kind.
func OfKind(bookmarks []Bookmark, kind Kind) []Bookmark {
	var out []Bookmark
	for _, b := range bookmarks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}
