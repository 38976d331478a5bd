// Package persistence implements the SQLite-backed storage for paired
// devices, custom equalizer profiles, and quick presets (§4.9). It uses
// modernc.org/sqlite, a pure-Go driver, so the control core never
// depends on cgo.
package persistence

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaVersion is the PRAGMA user_version this package migrates to.
// Bump it and add a branch in migrate when the schema changes.
const schemaVersion = 1

// Store owns the SQLite connection and the migration state of its
// schema.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// brings its schema up to schemaVersion.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persistence: open %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: enable foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("persistence: read schema version: %w", err)
	}

	if version < 1 {
		if _, err := s.db.ExecContext(ctx, schemaV1); err != nil {
			return fmt.Errorf("persistence: apply schema v1: %w", err)
		}
		version = 1
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("persistence: set schema version: %w", err)
	}
	return nil
}

// schemaV1 follows §4.7's logical schema: equalizer_profile and
// quick_preset are both scoped by device_model, not by the paired
// device's mac, because a custom curve or a quick preset is a property
// of the model's setting surface and is meant to be shared across any
// paired device of that model. equalizer_profile's second unique index
// is a json(adjustments) expression index rather than a plain column
// constraint, so that whitespace-different encodings of the same bands
// still collide (§4.7: "JSON blobs are normalised (json(?)) before
// comparison so whitespace does not defeat uniqueness").
const schemaV1 = `
CREATE TABLE IF NOT EXISTS paired_device (
	mac    TEXT PRIMARY KEY,
	model  TEXT NOT NULL,
	name   TEXT NOT NULL,
	demo   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS equalizer_profile (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	device_model  TEXT NOT NULL,
	name          TEXT NOT NULL,
	preset_id     INTEGER NOT NULL,
	adjustments   TEXT NOT NULL,
	UNIQUE (device_model, name)
);

CREATE UNIQUE INDEX IF NOT EXISTS equalizer_profile_model_adjustments
	ON equalizer_profile (device_model, json(adjustments));

CREATE TABLE IF NOT EXISTS quick_preset (
	device_model  TEXT NOT NULL,
	name          TEXT NOT NULL,
	fields        TEXT NOT NULL,
	PRIMARY KEY (device_model, name)
);
`
