// Package store persists the historical draw records behind the analysis
// engine. The default backend is a local SQLite file; a Postgres backend
// with identical behavior exists for shared deployments.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lakay-labs/tiraj/internal/draw"

	_ "modernc.org/sqlite"
)

// ErrNotInitialized is returned when the draw tables do not exist yet.
// Running 'tiraj import' creates them.
var ErrNotInitialized = errors.New("database not initialized: run 'tiraj import' to load draw history")

// DrawStore is what the CLI surfaces need from either backend: the engine's
// query contract plus ingestion and lifecycle.
type DrawStore interface {
	DrawsOn(table string, dates []time.Time) ([]draw.Record, error)
	InsertDraws(table string, records []draw.Record) error
	CreateSchema() error
	Close() error
}

// Store provides SQLite draw storage.
type Store struct {
	db *sql.DB
}

// New creates a Store at the given database path. Use ":memory:" for
// in-memory databases (useful for testing).
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only allows one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL mode for better concurrency between the watcher and readers
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying database connection for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateSchema creates all draw tables and indexes.
func (s *Store) CreateSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// wrapQueryErr maps "no such table" onto ErrNotInitialized so callers can
// give actionable advice instead of a raw SQL error.
func wrapQueryErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w (%s)", ErrNotInitialized, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
