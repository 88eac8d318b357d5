// Package store persists the watchlist, preferences, and recent searches as
// whole-record JSON values under stable keys. Readers default missing or
// malformed records rather than fail.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record keys. Each is an independent whole-record JSON value.
const (
	keyWatchlist      = "watchlist"
	keyRecentSearches = "recent_searches"
	keyPreferences    = "preferences"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Open opens the sqlite database at path and ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// Records provides whole-record access to named JSON values.
type Records struct {
	db *sql.DB
}

// NewRecords creates a record store over db.
func NewRecords(db *sql.DB) *Records {
	return &Records{db: db}
}

// Get retrieves a record by key. Returns nil, false when absent.
func (r *Records) Get(key string) ([]byte, bool) {
	var value string
	err := r.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

// Set stores a record, replacing any previous value.
func (r *Records) Set(key string, value []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}
