package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/justrnr500/mgutil/internal/bookmark"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	position INTEGER PRIMARY KEY,
	alias TEXT NOT NULL,
	kind TEXT NOT NULL,
	value TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_alias ON bookmarks(alias COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_bookmarks_kind ON bookmarks(kind);
`

// Index is a SQLite mirror of the bookmark file used for searching.
// The bookmark file stays the source of truth; the index is rebuilt from it.
type Index struct {
	db   *sql.DB
	path string
}

// OpenIndex opens or creates a SQLite index at the given path.
func OpenIndex(path string) (*Index, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Index{db: db, path: path}, nil
}

// Close closes the database connection.
func (x *Index) Close() error {
	return x.db.Close()
}

// Path returns the index file path.
func (x *Index) Path() string {
	return x.path
}

// Rebuild replaces the indexed rows with bookmarks, keeping their order.
func (x *Index) Rebuild(bookmarks []bookmark.Bookmark) error {
	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO bookmarks (position, alias, kind, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range bookmarks {
		if _, err := stmt.Exec(i, b.Alias, string(b.Kind), b.Value); err != nil {
			return fmt.Errorf("insert bookmark %s: %w", b.Alias, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

// Search returns bookmarks whose alias, kind or value contains query,
// ignoring ASCII case, in file order.
func (x *Index) Search(query string, limit int) ([]bookmark.Bookmark, error) {
	if limit <= 0 {
		limit = 50
	}

	pattern := "%" + escapeLike(query) + "%"
	rows, err := x.db.Query(`
		SELECT alias, kind, value
		FROM bookmarks
		WHERE alias LIKE ? ESCAPE '\' OR kind LIKE ? ESCAPE '\' OR value LIKE ? ESCAPE '\'
		ORDER BY position
		LIMIT ?
	`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search bookmarks: %w", err)
	}
	defer rows.Close()

	return scanBookmarks(rows)
}

func scanBookmarks(rows *sql.Rows) ([]bookmark.Bookmark, error) {
	var results []bookmark.Bookmark
	for rows.Next() {
		var b bookmark.Bookmark
		var kind string
		if err := rows.Scan(&b.Alias, &kind, &b.Value); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		b.Kind = bookmark.Kind(kind)
		results = append(results, b)
	}

	return results, rows.Err()
}

// All returns every indexed bookmark in file order.
func (x *Index) All() ([]bookmark.Bookmark, error) {
	rows, err := x.db.Query("SELECT alias, kind, value FROM bookmarks ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	return scanBookmarks(rows)
}

// Count returns the number of indexed bookmarks.
func (x *Index) Count() (int, error) {
	var count int
	err := x.db.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&count)
	return count, err
}

// Duplicates returns the lower-cased aliases that appear more than once,
// ignoring case.
func (x *Index) Duplicates() ([]string, error) {
	rows, err := x.db.Query(`
		SELECT lower(alias)
		FROM bookmarks
		GROUP BY lower(alias)
		HAVING COUNT(*) > 1
		ORDER BY MIN(position)
	`)
	if err != nil {
		return nil, fmt.Errorf("query duplicates: %w", err)
	}
	defer rows.Close()

	var aliases []string
	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		aliases = append(aliases, alias)
	}

	return aliases, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
