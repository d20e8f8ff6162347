// Package fetchcache is a content-addressed, append-only store of fetched
// response bodies, backed by SQLite. Entries are immutable once written: a
// hit is authoritative for the life of the dataset, trading staleness for
// reproducibility and free re-runs.
package fetchcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
  key        TEXT PRIMARY KEY,
  url        TEXT NOT NULL,
  body       BLOB NOT NULL,
  fetched_at TEXT NOT NULL
)`

// Cache is a durable response cache keyed by normalized request hash.
type Cache struct {
	db *sql.DB
}

// Stats summarizes cache contents.
type Stats struct {
	Entries   int    `json:"entries"`
	TotalSize int64  `json:"total_size_bytes"`
	Oldest    string `json:"oldest,omitempty"`
	Newest    string `json:"newest,omitempty"`
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key derives the cache key for a request: hex sha256 over the method, the
// URL, and the query parameters in sorted order, so equivalent requests with
// reordered parameters share an entry.
func Key(method, rawURL string, params url.Values) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(method))
	b.WriteByte(' ')
	b.WriteString(rawURL)

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			for _, v := range params[k] {
				b.WriteByte('&')
				b.WriteString(k)
				b.WriteByte('=')
				b.WriteString(v)
			}
		}
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached body for a key, or (nil, false) on a miss.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	var body []byte
	err := c.db.QueryRow("SELECT body FROM responses WHERE key = ?", key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}
	return body, true, nil
}

// Put stores a body under key. Existing entries are never overwritten.
func (c *Cache) Put(key, rawURL string, body []byte) error {
	_, err := c.db.Exec(
		"INSERT OR IGNORE INTO responses (key, url, body, fetched_at) VALUES (?, ?, ?, ?)",
		key, rawURL, body, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Stats reports entry count, total body size and the fetch-time range.
func (c *Cache) Stats() (Stats, error) {
	var s Stats
	var oldest, newest sql.NullString
	err := c.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(LENGTH(body)), 0), MIN(fetched_at), MAX(fetched_at) FROM responses",
	).Scan(&s.Entries, &s.TotalSize, &oldest, &newest)
	if err != nil {
		return Stats{}, fmt.Errorf("reading cache stats: %w", err)
	}
	s.Oldest = oldest.String
	s.Newest = newest.String
	return s, nil
}

// Clear removes all entries. Intended for operator use only; a cleared
// cache means every source will be re-fetched on the next run.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM responses"); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}
