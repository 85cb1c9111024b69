package models

import "github.com/shopspring/decimal"

type Category struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

type CreateCategoryRequest struct {
	Name   string          `json:"name" binding:"required"`
	Budget decimal.Decimal `json:"budget"`
}

// SeedCategory is one entry of the default category list inserted on first run.
type SeedCategory struct {
	Name   string
	Budget decimal.Decimal
}
