// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Dialect selects the SQL flavor used for schema creation.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Open connects to the configured database. dbType is "sqlite" or "postgres";
// url is a file path for sqlite or a connection string for postgres.
func Open(dbType, url string) (*sql.DB, Dialect, error) {
	switch Dialect(dbType) {
	case DialectSQLite:
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// sqlite permits a single writer; serializing the pool turns the
		// duplicate-vote race into an ordinary constraint conflict.
		conn.SetMaxOpenConns(1)
		return conn, DialectSQLite, nil

	case DialectPostgres:
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, DialectPostgres, nil

	default:
		return nil, "", fmt.Errorf("unknown database type %q (expected sqlite or postgres)", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	var schema string
	switch dialect {
	case DialectPostgres:
		schema = schemaPostgres
	default:
		schema = schemaSQLite
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaSQLite = `
-- Votes (append-only)
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    song_id TEXT NOT NULL,
    vote_type TEXT NOT NULL CHECK (vote_type IN ('like', 'dislike')),
    ip_hash TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 1 AND 7)
);

CREATE INDEX IF NOT EXISTS idx_votes_song ON votes(song_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_identity_day ON votes(ip_hash, day_of_week);
CREATE INDEX IF NOT EXISTS idx_votes_timestamp ON votes(timestamp);

-- Shares (insert-only, no expiry)
CREATE TABLE IF NOT EXISTS shares (
    id TEXT PRIMARY KEY,
    song_id TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_shares_song ON shares(song_id);
`

const schemaPostgres = `
-- Votes (append-only)
CREATE TABLE IF NOT EXISTS votes (
    id BIGSERIAL PRIMARY KEY,
    song_id TEXT NOT NULL,
    vote_type TEXT NOT NULL CHECK (vote_type IN ('like', 'dislike')),
    ip_hash TEXT NOT NULL,
    timestamp BIGINT NOT NULL,
    day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 1 AND 7)
);

CREATE INDEX IF NOT EXISTS idx_votes_song ON votes(song_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_identity_day ON votes(ip_hash, day_of_week);
CREATE INDEX IF NOT EXISTS idx_votes_timestamp ON votes(timestamp);

-- Shares (insert-only, no expiry)
CREATE TABLE IF NOT EXISTS shares (
    id TEXT PRIMARY KEY,
    song_id TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_shares_song ON shares(song_id);
`
