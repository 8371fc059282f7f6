// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"societyledger/internal/apperr"
	"societyledger/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var (
	openOnce sync.Once
	shared   *SQLiteStore
	openErr  error
)

// Open returns the process-wide store for dbPath, opening it on first call.
// Subsequent and concurrent callers are joined onto the same initialization;
// the schema is never created twice. The handle lives for the process
// lifetime.
func Open(dbPath string) (*SQLiteStore, error) {
	openOnce.Do(func() {
		shared, openErr = New(dbPath)
	})
	if openErr != nil {
		return nil, openErr
	}
	return shared, nil
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
// Most callers should use Open; New exists for tests that need an
// independent store.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Serialize writers instead of failing on a locked database
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// insertErr maps driver faults onto the shared error kinds. A primary-key
// collision becomes apperr.ErrDuplicateKey so callers can detect it with
// errors.Is.
func insertErr(collection string, err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%s: %w", collection, apperr.ErrDuplicateKey)
	}
	return fmt.Errorf("failed to insert into %s: %w", collection, err)
}
