package models

import "github.com/shopspring/decimal"

// SavingsGoal holds the single savings target. At most one row exists;
// creating a new goal replaces any prior one.
type SavingsGoal struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     string          `json:"deadline"`
}

type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     string          `json:"deadline" binding:"required"`
}
