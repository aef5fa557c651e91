// Package store persists the learner's progress: completed lessons and
// items, the spaced-repetition review pool, and the attempt history. The
// scheduling core never touches this package; the practice service reads
// state out, runs the pure core, and writes the results back here.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// Open connects to the sqlite database at dsn, applies the recommended
// pragmas, and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Progress returns the progress repository backed by this store.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{db: s.db}
}

// applyPragmas configures sqlite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS completed_lessons (
		slug         TEXT PRIMARY KEY,
		track_id     TEXT NOT NULL,
		completed_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS completed_items (
		challenge_id TEXT NOT NULL,
		kind         TEXT NOT NULL,
		track_id     TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		PRIMARY KEY (challenge_id, kind)
	);

	CREATE TABLE IF NOT EXISTS review_items (
		challenge_id    TEXT NOT NULL,
		kind            TEXT NOT NULL,
		track_id        TEXT NOT NULL,
		easiness_factor REAL NOT NULL,
		repetitions     INTEGER NOT NULL,
		interval        INTEGER NOT NULL,
		due_date        TEXT NOT NULL,
		last_reviewed   TEXT NOT NULL,
		PRIMARY KEY (challenge_id, kind)
	);

	CREATE TABLE IF NOT EXISTS attempts (
		id                TEXT PRIMARY KEY,
		challenge_id      TEXT NOT NULL,
		kind              TEXT NOT NULL,
		quality           INTEGER NOT NULL,
		interval_snapshot INTEGER NOT NULL,
		easiness_snapshot REAL NOT NULL,
		attempted_at      TEXT NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. CODEDRILL_DB environment variable
// 2. $XDG_DATA_HOME/codedrill/codedrill.db
// 3. ~/.local/share/codedrill/codedrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CODEDRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "codedrill", "codedrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
