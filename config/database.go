package config

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// InitDB opens the backing store. A postgres:// DATABASE_URL selects the
// Postgres driver; otherwise a local SQLite file is used (SQLITE_PATH,
// defaulting to data/prisma.db), so the backend runs with no external
// services. Returns the driver name alongside the handle because the
// identity-column DDL differs between the two.
func InitDB() (*sql.DB, string, error) {
	dbURL := os.Getenv("DATABASE_URL")

	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		db, err := sql.Open("postgres", dbURL)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("failed to ping database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		return db, "postgres", nil
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = filepath.Join("data", "prisma.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}
	// SQLite allows one writer at a time; serializing through a single
	// connection avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	return db, "sqlite", nil
}

// RunMigrations creates the schema if absent. No versioned migrations;
// schema evolution is out of scope.
func RunMigrations(db *sql.DB, driver string) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		idColumn = "SERIAL PRIMARY KEY"
	}

	migrations := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS transactions (
			id %s,
			amount NUMERIC NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			type TEXT NOT NULL
		)`, idColumn),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS categories (
			id %s,
			name TEXT UNIQUE NOT NULL,
			budget NUMERIC NOT NULL DEFAULT 0
		)`, idColumn),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS fixed_items (
			id %s,
			amount NUMERIC NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL
		)`, idColumn),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS savings_goals (
			id %s,
			name TEXT NOT NULL,
			target_amount NUMERIC NOT NULL,
			deadline TEXT NOT NULL
		)`, idColumn),

		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
