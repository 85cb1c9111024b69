package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DavidRCh56/prisma-api/config"
	"github.com/DavidRCh56/prisma-api/models"

	"github.com/shopspring/decimal"
)

// newTestDB opens an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// One connection, or each query may see a different empty :memory: db.
	db.SetMaxOpenConns(1)

	if err := config.RunMigrations(db, "sqlite"); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func mustCreateTransaction(t *testing.T, svc *TransactionService, amount, category, date, txType string) *models.Transaction {
	t.Helper()

	tx, err := svc.Create(context.Background(), models.CreateTransactionRequest{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: "test",
		Date:        date,
		Type:        txType,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return tx
}

func countTransactions(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}
