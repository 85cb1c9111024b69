package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DavidRCh56/prisma-api/models"

	"github.com/shopspring/decimal"
)

type SummaryService struct {
	db *sql.DB
}

func NewSummaryService(db *sql.DB) *SummaryService {
	return &SummaryService{db: db}
}

// Yearly aggregates all transactions whose date starts with year: total
// income, total expense, net savings, and a per-category expense breakdown in
// first-seen order. Income categories get no breakdown.
func (s *SummaryService) Yearly(ctx context.Context, year string) (*models.YearSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, category, type
		FROM transactions
		WHERE date LIKE $1
		ORDER BY id
	`, year+"%")
	if err != nil {
		return nil, fmt.Errorf("query year transactions: %w", err)
	}
	defer rows.Close()

	summary := &models.YearSummary{
		Income:     decimal.Zero,
		Expense:    decimal.Zero,
		Categories: []models.CategoryAmount{},
	}
	index := map[string]int{}

	for rows.Next() {
		var amount decimal.Decimal
		var category, txType string
		if err := rows.Scan(&amount, &category, &txType); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		switch txType {
		case models.TypeIncome:
			summary.Income = summary.Income.Add(amount)
		case models.TypeExpense:
			summary.Expense = summary.Expense.Add(amount)
			i, ok := index[category]
			if !ok {
				i = len(summary.Categories)
				index[category] = i
				summary.Categories = append(summary.Categories, models.CategoryAmount{
					Name:  category,
					Value: decimal.Zero,
				})
			}
			summary.Categories[i].Value = summary.Categories[i].Value.Add(amount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary.Savings = summary.Income.Sub(summary.Expense)

	return summary, nil
}
