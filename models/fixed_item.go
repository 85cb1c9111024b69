package models

import "github.com/shopspring/decimal"

// FixedItem is a template for a recurring monthly transaction (rent, payroll).
// Applying a month copies every item into a real transaction dated the 1st.
type FixedItem struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

type CreateFixedItemRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
}
