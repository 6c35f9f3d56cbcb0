package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := openSQLite(t)

	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("first CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("second CreateSchema failed: %v", err)
	}
}

func TestSchemaEnforcesVoteTypeCheck(t *testing.T) {
	conn := openSQLite(t)
	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	_, err := conn.Exec(`
		INSERT INTO votes (song_id, vote_type, ip_hash, timestamp, day_of_week)
		VALUES ('s', 'maybe', 'h', 0, 1)
	`)
	if err == nil {
		t.Error("expected CHECK violation for vote_type outside like/dislike")
	}
}

func TestSchemaEnforcesIdentityDayUniqueness(t *testing.T) {
	conn := openSQLite(t)
	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	insert := `
		INSERT INTO votes (song_id, vote_type, ip_hash, timestamp, day_of_week)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := conn.Exec(insert, "s1", "like", "hash-a", 0, 3); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := conn.Exec(insert, "s2", "dislike", "hash-a", 1, 3); err == nil {
		t.Error("expected unique violation for same identity and day")
	}
	// Same identity, another day is fine
	if _, err := conn.Exec(insert, "s2", "dislike", "hash-a", 1, 4); err != nil {
		t.Errorf("different day should insert: %v", err)
	}
}

func TestOpenRejectsUnknownType(t *testing.T) {
	if _, _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
