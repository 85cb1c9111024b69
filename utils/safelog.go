// utils/safelog.go
// ============================================================================
// SAFE LOGGING - Masks financial data in production log output
// ============================================================================

package utils

import (
	"os"
	"regexp"
)

// IsProduction controls masking. Amounts and descriptions are personal
// financial data and must not land in production logs verbatim.
var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production"

var (
	// Decimal numbers that look like money amounts.
	amountRegex = regexp.MustCompile(`\b\d{2,}([.,]\d{1,2})?\b`)

	// Emails occasionally end up in transaction descriptions.
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// SanitizeForLog masks amounts and emails inside free-text values
// (descriptions, category labels) before they reach the log. In development
// the input passes through untouched.
func SanitizeForLog(s string) string {
	if !IsProduction {
		return s
	}
	s = emailRegex.ReplaceAllString(s, "***@***")
	s = amountRegex.ReplaceAllString(s, "***")
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	return s
}
