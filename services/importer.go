package services

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/utils"

	"github.com/shopspring/decimal"
)

// ErrCSV is the single failure the caller sees for any malformed upload:
// empty file, missing column, unreadable row, non-decimal amount. The cause
// is wrapped for the server log, not for the client.
var ErrCSV = errors.New("invalid CSV file")

// requiredColumns must all be present in the header. Column order is
// irrelevant; extra columns are ignored.
var requiredColumns = []string{"date", "description", "amount", "category", "type"}

type Importer struct {
	db *sql.DB
}

func NewImporter(db *sql.DB) *Importer {
	return &Importer{db: db}
}

// Import parses r as a headered CSV of transactions and inserts every row.
// Parsing completes before any insert and all inserts share one transaction,
// so a failing call persists nothing. Returns the number of rows imported.
func (s *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	rows, err := parseTransactions(r)
	if err != nil {
		log.Printf("⚠️ CSV import rejected: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrCSV, err)
	}

	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		for _, row := range rows {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO transactions (amount, category, description, date, type)
				VALUES ($1, $2, $3, $4, $5)
			`, row.Amount, row.Category, row.Description, row.Date, row.Type)
			if err != nil {
				return fmt.Errorf("insert imported transaction: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

// parseTransactions maps CSV columns by header name, so column order does not
// matter. Any row-level problem aborts the whole parse.
func parseTransactions(r io.Reader) ([]models.CreateTransactionRequest, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []models.CreateTransactionRequest
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[colIndex["amount"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount %q", line, utils.SanitizeForLog(record[colIndex["amount"]]))
		}

		rows = append(rows, models.CreateTransactionRequest{
			Amount:      amount,
			Category:    record[colIndex["category"]],
			Description: record[colIndex["description"]],
			Date:        record[colIndex["date"]],
			Type:        record[colIndex["type"]],
		})
	}

	return rows, nil
}
