package models

import "github.com/google/uuid"

// DefaultColumnName is used when an annotation is saved without a column.
const DefaultColumnName = "notes"

// Annotation is a free-text note attached to one (expense, column) cell.
// ExpenseID is a weak reference: deleting the expense does not remove the
// annotation by itself.
type Annotation struct {
	ID         uuid.UUID
	ExpenseID  uuid.UUID
	ColumnName string
	Text       string
	UserID     uuid.UUID
	CreatedAt  int64
}
