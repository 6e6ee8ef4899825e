package api

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sheet is a sheet as seen by clients. The PIN hash is never exposed.
type Sheet struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	HasPIN       bool      `json:"hasPin"`
	CreatedAt    int64     `json:"createdAt"`
	Version      int64     `json:"version"`
	ExpenseCount int64     `json:"expenseCount"`
}

type ListSheetsRequest struct{}

type ListSheetsResponse struct {
	Sheets []Sheet `json:"sheets"`
}

type GetSheetRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
}

type GetSheetResponse struct {
	Sheet Sheet `json:"sheet"`
}

type CreateSheetRequest struct {
	Name string  `json:"name"`
	PIN  *string `json:"pin,omitempty"`
}

type CreateSheetResponse struct {
	Sheet Sheet `json:"sheet"`
}

// UpdateSheetRequest renames a sheet. PIN is replaced only when present;
// an empty string removes it. Version 0 skips the client-side version check.
type UpdateSheetRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
	Name    string    `json:"name"`
	PIN     *string   `json:"pin,omitempty"`
	Version int64     `json:"version,omitempty"`
}

type UpdateSheetResponse struct {
	Sheet Sheet `json:"sheet"`
}

type DeleteSheetRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
}

type DeleteSheetResponse struct{}

type VerifySheetPinRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
	PIN     string    `json:"pin"`
}

type VerifySheetPinResponse struct {
	Valid bool `json:"valid"`
}

// Expense is one ledger entry. Amounts travel as decimal strings.
type Expense struct {
	ID        uuid.UUID       `json:"id"`
	SheetID   uuid.UUID       `json:"sheetId"`
	Date      civil.Date      `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	CreatedAt int64           `json:"createdAt"`
	Version   int64           `json:"version"`
}

type ListExpensesRequest struct {
	SheetID *uuid.UUID `json:"sheetId,omitempty"`
	Month   string     `json:"month,omitempty"`
	Year    string     `json:"year,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type GetExpenseRequest struct {
	ExpenseID uuid.UUID `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type CreateExpenseRequest struct {
	SheetID  uuid.UUID       `json:"sheetId"`
	Date     civil.Date      `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ExpenseID uuid.UUID       `json:"expenseId"`
	SheetID   uuid.UUID       `json:"sheetId"`
	Date      civil.Date      `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	Version   int64           `json:"version"`
}

type UpdateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseID uuid.UUID `json:"expenseId"`
}

type DeleteExpenseResponse struct {
	DescriptionsDeleted int64 `json:"descriptionsDeleted"`
}

type ListCategoriesRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CreateCategoryRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
	Name    string    `json:"name"`
}

type CreateCategoryResponse struct {
	Name string `json:"name"`
}

type RenameCategoryRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
	OldName string    `json:"oldName"`
	NewName string    `json:"newName"`
}

type RenameCategoryResponse struct {
	Name string `json:"name"`
}

type DeleteCategoryRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
	Name    string    `json:"name"`
}

type DeleteCategoryResponse struct{}

// Total is one keyed sum.
type Total struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

type GetAnalyticsRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
	Month   string    `json:"month,omitempty"`
	Year    string    `json:"year,omitempty"`
}

type GetAnalyticsResponse struct {
	From                civil.Date      `json:"from"`
	To                  civil.Date      `json:"to"`
	CategoryTotals      []Total         `json:"categoryTotals"`
	DailyTotals         []Total         `json:"dailyTotals"`
	MonthlyTotals       []Total         `json:"monthlyTotals"`
	CurrentPeriodTotal  decimal.Decimal `json:"currentPeriodTotal"`
	PreviousPeriodTotal decimal.Decimal `json:"previousPeriodTotal"`
	Categories          []string        `json:"categories"`
}

type GetSheetSummaryRequest struct {
	SheetID uuid.UUID `json:"sheetId"`
}

type GetSheetSummaryResponse struct {
	Total          decimal.Decimal `json:"total"`
	CategoryTotals []Total         `json:"categoryTotals"`
}

// Description is a free-text note on one (expense, column) cell.
type Description struct {
	ID          uuid.UUID `json:"id"`
	ExpenseID   uuid.UUID `json:"expenseId"`
	ColumnName  string    `json:"columnName"`
	Description string    `json:"description"`
	CreatedAt   int64     `json:"createdAt"`
}

// ListDescriptionsRequest lists the caller's descriptions on the given
// expenses, or all of them when ExpenseIDs is empty.
type ListDescriptionsRequest struct {
	ExpenseIDs []uuid.UUID `json:"expenseIds,omitempty"`
	ColumnName string      `json:"columnName,omitempty"`
}

type ListDescriptionsResponse struct {
	Descriptions []Description `json:"descriptions"`
}

type SaveDescriptionRequest struct {
	ExpenseID   uuid.UUID `json:"expenseId"`
	ColumnName  string    `json:"columnName,omitempty"`
	Description string    `json:"description"`
}

type SaveDescriptionResponse struct {
	Description Description `json:"description"`
}

type DeleteDescriptionRequest struct {
	DescriptionID uuid.UUID `json:"descriptionId"`
}

type DeleteDescriptionResponse struct{}

// DeleteExpenseDescriptionsRequest removes the descriptions of one expense,
// limited to one column when ColumnName is set.
type DeleteExpenseDescriptionsRequest struct {
	ExpenseID  uuid.UUID `json:"expenseId"`
	ColumnName string    `json:"columnName,omitempty"`
}

type DeleteExpenseDescriptionsResponse struct {
	Deleted int64 `json:"deleted"`
}

type User struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Picture string    `json:"picture,omitempty"`
}

type SignInWithGoogleRequest struct {
	IDToken string `json:"idToken"`
}

type SignInWithGoogleResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      User   `json:"user"`
}

type MeRequest struct{}

type MeResponse struct {
	User User `json:"user"`
}
