package utils

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTransactionCommits(t *testing.T) {
	db := newTestDB(t)

	err := WithTransaction(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (name) VALUES ('a'), ('b')`)
		return err
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}
	if n := countItems(t, db); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	boom := errors.New("boom")

	err := WithTransaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if n := countItems(t, db); n != 0 {
		t.Fatalf("rollback left %d rows", n)
	}
}

func TestSanitizeForLog(t *testing.T) {
	old := IsProduction
	IsProduction = true
	defer func() { IsProduction = old }()

	got := SanitizeForLog("rent 1200.50 paid by john@example.com")
	if got != "rent *** paid by ***@***" {
		t.Fatalf("unexpected sanitized output: %q", got)
	}

	IsProduction = false
	if got := SanitizeForLog("rent 1200.50"); got != "rent 1200.50" {
		t.Fatalf("development output must pass through, got %q", got)
	}
}
