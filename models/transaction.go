package models

import "github.com/shopspring/decimal"

// Transaction types. Storage does not enforce these; the API binding does.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// FixedMarker prefixes the description of every transaction generated from a
// fixed item. Apply-guard checks rely on this exact prefix.
const FixedMarker = "[Fijo] "

type Transaction struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
}

type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
}
