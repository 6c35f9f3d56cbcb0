// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package shares

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/song-of-the-week/auth"
	"github.com/danielhkuo/song-of-the-week/models"
)

// createAttempts bounds the retry loop on share-id collision. At 64 random
// bits a collision is already negligible; retrying keeps it impossible to
// observe without changing behavior.
const createAttempts = 3

// Registry stores song shares. Records are insert-only and never expire.
type Registry struct {
	db  *sql.DB
	now func() time.Time
}

func NewRegistry(db *sql.DB) *Registry {
	return &Registry{db: db, now: time.Now}
}

// NewRegistryWithClock is NewRegistry with an injectable time source for tests.
func NewRegistryWithClock(db *sql.DB, now func() time.Time) *Registry {
	return &Registry{db: db, now: now}
}

// Create stores a share for the song and returns its id. The caller is
// responsible for validating that songID exists in the catalog.
func (r *Registry) Create(songID string) (string, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		shareID, err := auth.GenerateShareID()
		if err != nil {
			return "", err
		}

		_, err = r.db.Exec(`
			INSERT INTO shares (id, song_id, created_at)
			VALUES ($1, $2, $3)
		`, shareID, songID, r.now().UnixMilli())

		if err != nil {
			if isPrimaryKeyConflict(err) {
				continue
			}
			return "", fmt.Errorf("failed to insert share: %w", err)
		}

		return shareID, nil
	}

	return "", fmt.Errorf("failed to generate unique share id after %d attempts", createAttempts)
}

// Get looks up a share by id. An unknown id is reported through the bool,
// not an error; errors mean the store itself failed.
func (r *Registry) Get(shareID string) (models.Share, bool, error) {
	var share models.Share
	err := r.db.QueryRow(`
		SELECT id, song_id, created_at
		FROM shares
		WHERE id = $1
	`, shareID).Scan(&share.ID, &share.SongID, &share.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Share{}, false, nil
	}
	if err != nil {
		return models.Share{}, false, fmt.Errorf("failed to query share: %w", err)
	}

	return share, true, nil
}

func isPrimaryKeyConflict(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: shares.id") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
