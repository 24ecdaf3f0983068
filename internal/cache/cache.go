// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists resolved citation records in a SQLite database so
// repeated runs over the same document do not re-query the metadata APIs.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// Store manages the lookup cache SQLite database. Entries expire after the
// configured TTL; a TTL of zero or less keeps them forever.
type Store struct {
	db  *sql.DB
	ttl time.Duration

	now func() time.Time
}

// NewStore opens or creates the cache database at cfg.Path, creating parent
// directories and the schema as needed.
func NewStore(cfg types.CacheConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db, ttl: cfg.TTL, now: time.Now}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS lookups (
			query TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			stored_at TEXT NOT NULL
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached record for key. Missing, expired, and unreadable
// entries all report a miss; the cache never fails a lookup.
func (s *Store) Get(key string) (types.CitationRecord, bool) {
	var recordJSON, storedAt string
	err := s.db.QueryRow(
		`SELECT record, stored_at FROM lookups WHERE query = ?`, key,
	).Scan(&recordJSON, &storedAt)
	if err != nil {
		return types.CitationRecord{}, false
	}

	if s.ttl > 0 {
		stored, err := time.Parse(time.RFC3339Nano, storedAt)
		if err != nil || s.now().Sub(stored) > s.ttl {
			return types.CitationRecord{}, false
		}
	}

	var rec types.CitationRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return types.CitationRecord{}, false
	}
	return rec, true
}

// Put stores a record under key, replacing any previous entry.
func (s *Store) Put(key string, rec types.CitationRecord) error {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO lookups (query, record, stored_at) VALUES (?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET record=excluded.record, stored_at=excluded.stored_at`,
		key, string(recordJSON), s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storing record: %w", err)
	}
	return nil
}

// Purge removes expired entries. It is safe to call on a store with no TTL,
// where it does nothing.
func (s *Store) Purge() error {
	if s.ttl <= 0 {
		return nil
	}
	cutoff := s.now().Add(-s.ttl).UTC().Format(time.RFC3339Nano)
	if _, err := s.db.Exec(`DELETE FROM lookups WHERE stored_at < ?`, cutoff); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}
