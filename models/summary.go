package models

import "github.com/shopspring/decimal"

// CategoryAmount is one slice of the expense breakdown, keyed by category
// label in first-seen order.
type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// YearSummary aggregates one calendar year of transactions.
type YearSummary struct {
	Income     decimal.Decimal  `json:"income"`
	Expense    decimal.Decimal  `json:"expense"`
	Savings    decimal.Decimal  `json:"savings"`
	Categories []CategoryAmount `json:"categories"`
}
