package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/DavidRCh56/prisma-api/models"
)

type TransactionService struct {
	db *sql.DB
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// List returns every transaction in insertion order.
func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT id, amount, category, description, date, type
		FROM transactions
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Category, &t.Description, &t.Date, &t.Type); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// Create inserts one transaction. The category label is not checked against
// the categories table; coupling is by name only.
func (s *TransactionService) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	t := &models.Transaction{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Type:        req.Type,
	}

	query := `
		INSERT INTO transactions (amount, category, description, date, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		t.Amount, t.Category, t.Description, t.Date, t.Type,
	).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return t, nil
}

// Delete removes a transaction by id. A missing id is a no-op, not an error.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// Months returns the distinct "YYYY-MM" prefixes of all transaction dates,
// sorted descending. Lexicographic order equals chronological order for this
// format. With no transactions it returns just the current month so the
// frontend always has something to select.
func (s *TransactionService) Months(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("list transaction dates: %w", err)
	}
	defer rows.Close()

	seen := map[string]bool{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan transaction date: %w", err)
		}
		if len(date) >= 7 {
			seen[date[:7]] = true
		} else {
			seen[date] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(seen) == 0 {
		return []string{time.Now().Format("2006-01")}, nil
	}

	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months, nil
}
