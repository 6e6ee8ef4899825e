package models

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedCategory receives expenses whose category was deleted.
const UncategorizedCategory = "uncategorized"

// MaxNoteLength is the longest free-text note accepted on an expense.
const MaxNoteLength = 1000

// Expense is one dated, categorized money entry.
type Expense struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	SheetID uuid.UUID

	Date civil.Date

	// Amount may have any sign. Zero-amount rows act as placeholders and are
	// exempt from the one-expense-per-cell rule.
	Amount decimal.Decimal

	// Category is always stored normalized (see NormalizeCategory).
	Category string

	Note string

	CreatedAt int64
	Version   int64
}

// NormalizeCategory trims and lower-cases a category name. Category identity
// is case-insensitive everywhere in the ledger.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
