// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/song-of-the-week/catalog"
	"github.com/danielhkuo/song-of-the-week/cliparse"
	"github.com/danielhkuo/song-of-the-week/db"
	"github.com/danielhkuo/song-of-the-week/models"
)

// TestSalt is the IP hashing salt used across the test suite
const TestSalt = "test-ip-salt"

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// MaxOpenConns(1) keeps the pool on the single connection that owns the
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		IPHashSalt:   TestSalt,
		SongsPath:    "data/songs.json",
	}
}

// TestSongs returns seven songs in day order, monday-song through sunday-song
func TestSongs() []models.Song {
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	songs := make([]models.Song, 0, 7)
	for _, d := range days {
		songs = append(songs, models.Song{
			ID:       d + "-song",
			Title:    "The " + d + " song",
			Artist:   "Test Artist",
			EmbedURL: "https://example.com/embed/" + d,
		})
	}
	return songs
}

// TestCatalog builds a seven-song catalog for handler tests
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(TestSongs())
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

// ClockForDay returns a time source pinned to the given ISO day (1=Monday).
// 2025-01-06 was a Monday, so day d falls on January 5+d.
func ClockForDay(day int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.January, 5+day, 12, 0, 0, 0, time.UTC)
	}
}

// InsertTestVote writes a vote row directly, bypassing the ledger
func InsertTestVote(t *testing.T, conn *sql.DB, songID, voteType, ipHash string, day int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (song_id, vote_type, ip_hash, timestamp, day_of_week)
		VALUES ($1, $2, $3, $4, $5)
	`, songID, voteType, ipHash, time.Now().UnixMilli(), day)
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
}

// CountVotes returns the number of vote rows matching the identity and day
func CountVotes(t *testing.T, conn *sql.DB, ipHash string, day int) int {
	t.Helper()

	var count int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE ip_hash = $1 AND day_of_week = $2
	`, ipHash, day).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
