// Package storage provides persistence for bookmarks.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/justrnr500/mgutil/internal/bookmark"
)

// ErrStorageUnavailable is returned when the bookmark file or its directory
// cannot be created, opened, read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store reads and writes bookmarks in a delimited text file, one record per line.
// It holds no file handle between calls.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the bookmark file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates dir (with parents) and an empty file at path
// if they do not exist yet. Existing content is left alone.
func EnsureInitialized(dir, path string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return unavailable("create directory", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return unavailable("create bookmark file", err)
	}
	if err := file.Close(); err != nil {
		return unavailable("close bookmark file", err)
	}

	return nil
}

// LoadAll reads every bookmark in file order. Empty lines are skipped.
// A malformed line aborts the load.
func (s *Store) LoadAll() ([]bookmark.Bookmark, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, unavailable("open bookmark file", err)
	}
	defer file.Close()

	var bookmarks []bookmark.Bookmark
	scanner := bufio.NewScanner(file)

	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		b, err := bookmark.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNum, err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err := scanner.Err(); err != nil {
		return nil, unavailable("read bookmark file", err)
	}

	return bookmarks, nil
}

// Append adds a bookmark to the end of the file. Duplicate aliases are allowed.
func (s *Store) Append(b bookmark.Bookmark) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return unavailable("open file for append", err)
	}
	defer file.Close()

	// One write per record keeps each line intact.
	if _, err := io.WriteString(file, bookmark.Encode(b)); err != nil {
		return unavailable("write bookmark", err)
	}

	return nil
}

// RemoveByAlias rewrites the file without the lines whose alias is exactly
// alias (case-sensitive) and returns how many lines were dropped.
// Kept lines are written back ending in "\n", so CRLF endings and a missing
// final newline are normalized even when nothing is removed.
// The file is truncated before it is rewritten; a failure in between
// leaves it partially written.
func (s *Store) RemoveByAlias(alias string) (int, error) {
	lines, err := s.readLines()
	if err != nil {
		return 0, err
	}

	prefix := bookmark.LinePrefix(alias)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
		}
	}

	file, err := os.OpenFile(s.path, os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return 0, unavailable("truncate bookmark file", err)
	}

	w := bufio.NewWriter(file)
	for _, line := range kept {
		if _, err := w.WriteString(line + "\n"); err != nil {
			file.Close()
			return 0, unavailable("rewrite bookmark file", err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return 0, unavailable("flush bookmark file", err)
	}
	if err := file.Close(); err != nil {
		return 0, unavailable("close bookmark file", err)
	}

	return len(lines) - len(kept), nil
}

// readLines returns the raw lines of the file without decoding them.
func (s *Store) readLines() ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, unavailable("open bookmark file", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, unavailable("read bookmark file", err)
	}

	return lines, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
