// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/song-of-the-week/auth"
	"github.com/danielhkuo/song-of-the-week/clock"
	"github.com/danielhkuo/song-of-the-week/models"
)

// ErrDuplicateVote is returned when an identity has already voted today.
var ErrDuplicateVote = errors.New("already voted today")

// Ledger is the append-only vote store. It enforces one vote per identity
// per day through the UNIQUE index on (ip_hash, day_of_week): the insert
// itself is the duplicate check, so two concurrent requests from the same
// identity resolve to one row and one ErrDuplicateVote.
type Ledger struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

func NewLedger(db *sql.DB, salt string) *Ledger {
	return &Ledger{db: db, salt: salt, now: time.Now}
}

// NewLedgerWithClock is NewLedger with an injectable time source for tests.
func NewLedgerWithClock(db *sql.DB, salt string, now func() time.Time) *Ledger {
	return &Ledger{db: db, salt: salt, now: now}
}

// HashIdentity converts a raw client address into the opaque identity hash
// stored in the ledger. Raw addresses never reach the database.
func (l *Ledger) HashIdentity(rawAddr string) string {
	return auth.HashIP(rawAddr, l.salt)
}

// Today returns the ledger's current ISO day index.
func (l *Ledger) Today() int {
	return clock.DayOf(l.now())
}

// HasVotedToday reports whether a vote exists for the identity on the
// current day. Read-only; storage errors propagate rather than reading
// as "no vote", which would let a duplicate slip through the UI check.
func (l *Ledger) HasVotedToday(identityHash string) (bool, error) {
	today := clock.DayOf(l.now())

	var exists bool
	err := l.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE ip_hash = $1 AND day_of_week = $2
		)
	`, identityHash, today).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query votes: %w", err)
	}

	return exists, nil
}

// RecordVote appends a vote for the current day, hashing the raw address
// first. Fails with ErrDuplicateVote when the identity already voted today.
// The write is a single INSERT: it either lands whole or not at all.
func (l *Ledger) RecordVote(songID, voteType, rawAddr string) error {
	identityHash := l.HashIdentity(rawAddr)
	now := l.now()
	today := clock.DayOf(now)

	_, err := l.db.Exec(`
		INSERT INTO votes (song_id, vote_type, ip_hash, timestamp, day_of_week)
		VALUES ($1, $2, $3, $4, $5)
	`, songID, voteType, identityHash, now.UnixMilli(), today)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// WeeklyRanking aggregates votes cast on days 1-6, grouped by song, ordered
// by likes descending with ties broken by fewer dislikes. Day 7 votes are
// excluded: the ranking revealed on Sunday covers the preceding six days.
// Songs with no votes this week are absent; callers union with the catalog.
func (l *Ledger) WeeklyRanking() ([]models.RankingEntry, error) {
	rows, err := l.db.Query(`
		SELECT
			song_id,
			SUM(CASE WHEN vote_type = 'like' THEN 1 ELSE 0 END) as likes,
			SUM(CASE WHEN vote_type = 'dislike' THEN 1 ELSE 0 END) as dislikes,
			COUNT(*) as total_votes
		FROM votes
		WHERE day_of_week <= 6
		GROUP BY song_id
		ORDER BY likes DESC, dislikes ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking: %w", err)
	}
	defer rows.Close()

	ranking := []models.RankingEntry{}
	for rows.Next() {
		var entry models.RankingEntry
		if err := rows.Scan(&entry.SongID, &entry.Likes, &entry.Dislikes, &entry.TotalVotes); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		ranking = append(ranking, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ranking rows: %w", err)
	}

	return ranking, nil
}

// isUniqueViolation recognizes the unique-index conflict raised by either
// supported driver when an identity votes twice on the same day.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: votes.ip_hash") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
