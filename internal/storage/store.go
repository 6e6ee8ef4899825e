// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"
	"errors"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/sheetledger/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the lookup, including rows
	// that exist but belong to another user.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")

	// ErrConflict is returned when a compare-and-swap update targets a row
	// whose version has moved on.
	ErrConflict = errors.New("record was modified concurrently")
)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	From civil.Date
	To   civil.Date
}

// ExpenseFilter selects expenses for one user. Nil fields do not filter.
type ExpenseFilter struct {
	UserID  uuid.UUID
	SheetID *uuid.UUID
	Range   *DateRange
}

// AnnotationFilter selects annotations for one user. An empty ExpenseIDs
// matches every expense; an empty ColumnName matches every column.
type AnnotationFilter struct {
	UserID     uuid.UUID
	ExpenseIDs []uuid.UUID
	ColumnName string
}

// CategorySum is a per-category subtotal.
type CategorySum struct {
	Category string
	Total    decimal.Decimal
}

// Reassigned reports how many rows changed owner.
type Reassigned struct {
	Sheets      int64
	Expenses    int64
	Annotations int64
}

// Queries is the full read/write surface of the ledger store. It is served
// both by the store itself (each call auto-commits) and by the transaction
// handle passed to Store.InTx.
type Queries interface {
	// CreateUser inserts a new user. Email and subject must be unique.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserBySubject(ctx context.Context, subject string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUser overwrites the mutable profile fields and the subject link.
	UpdateUser(ctx context.Context, user *models.User) error
	CountUsers(ctx context.Context) (int64, error)

	// CreateSheet persists a new sheet. ID, CreatedAt and Version are
	// populated by the store when unset.
	CreateSheet(ctx context.Context, sheet *models.Sheet) error
	GetSheet(ctx context.Context, userID, sheetID uuid.UUID) (*models.Sheet, error)
	ListSheets(ctx context.Context, userID uuid.UUID) ([]models.Sheet, error)
	// UpdateSheet writes name and PIN fields if the stored version equals
	// expectedVersion, then advances sheet.Version.
	UpdateSheet(ctx context.Context, sheet *models.Sheet, expectedVersion int64) error
	DeleteSheet(ctx context.Context, userID, sheetID uuid.UUID) error
	// CountExpensesBySheet returns the number of expenses per sheet for a user.
	CountExpensesBySheet(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)

	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	// FindExpensesInCell returns every expense on the given (date, category)
	// cell of a sheet, regardless of amount.
	FindExpensesInCell(ctx context.Context, userID, sheetID uuid.UUID, date civil.Date, category string) ([]models.Expense, error)
	// UpdateExpense writes every mutable field if the stored version equals
	// expectedVersion, then advances expense.Version.
	UpdateExpense(ctx context.Context, expense *models.Expense, expectedVersion int64) error
	DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error
	DeleteSheetExpenses(ctx context.Context, userID, sheetID uuid.UUID) (int64, error)
	// RelabelExpenses moves every expense of a sheet from one category to
	// another, advancing each row's version.
	RelabelExpenses(ctx context.Context, userID, sheetID uuid.UUID, from, to string) (int64, error)
	// SumExpenses totals a sheet's expenses, optionally within a date range.
	SumExpenses(ctx context.Context, userID, sheetID uuid.UUID, dates *DateRange) (decimal.Decimal, error)
	SumExpensesByCategory(ctx context.Context, userID, sheetID uuid.UUID) ([]CategorySum, error)
	// DistinctExpenseCategories lists the categories in use on a sheet,
	// sorted lexicographically.
	DistinctExpenseCategories(ctx context.Context, sheetID uuid.UUID) ([]string, error)

	// ListSheetCategories returns the curated categories of a sheet ordered
	// by display order ascending, nulls last.
	ListSheetCategories(ctx context.Context, sheetID uuid.UUID) ([]models.SheetCategory, error)
	GetSheetCategory(ctx context.Context, sheetID uuid.UUID, name string) (*models.SheetCategory, error)
	// MaxCategoryOrder returns the highest display order on a sheet, 0 if none.
	MaxCategoryOrder(ctx context.Context, sheetID uuid.UUID) (int, error)
	CreateSheetCategory(ctx context.Context, category *models.SheetCategory) error
	RenameSheetCategory(ctx context.Context, sheetID uuid.UUID, from, to string) error
	DeleteSheetCategory(ctx context.Context, sheetID uuid.UUID, name string) (int64, error)
	DeleteSheetCategories(ctx context.Context, sheetID uuid.UUID) (int64, error)

	// UpsertAnnotation inserts the annotation or, when one exists for the same
	// (expense, column), overwrites its text. The stored ID, owner and
	// creation time are written back into annotation.
	UpsertAnnotation(ctx context.Context, annotation *models.Annotation) error
	ListAnnotations(ctx context.Context, filter AnnotationFilter) ([]models.Annotation, error)
	DeleteAnnotation(ctx context.Context, userID, annotationID uuid.UUID) error
	DeleteExpenseAnnotations(ctx context.Context, userID, expenseID uuid.UUID) (int64, error)
	DeleteExpenseAnnotation(ctx context.Context, userID, expenseID uuid.UUID, columnName string) (int64, error)
	DeleteSheetAnnotations(ctx context.Context, userID, sheetID uuid.UUID) (int64, error)

	// ReassignOwner moves every sheet, expense and annotation from one user
	// to another.
	ReassignOwner(ctx context.Context, from, to uuid.UUID) (Reassigned, error)
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger layer.
type Store interface {
	Queries

	// InTx runs fn inside one transaction. The transaction commits if fn
	// returns nil and rolls back otherwise; fn's error is returned unchanged.
	InTx(ctx context.Context, fn func(q Queries) error) error

	// Close releases any resources held by the store.
	Close() error
}
