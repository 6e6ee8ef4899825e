package ledger

import (
	"context"
	"errors"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/sheetledger/internal/calculator"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

// ExpenseInput is the caller-supplied state of an expense.
type ExpenseInput struct {
	SheetID  uuid.UUID
	Date     civil.Date
	Amount   decimal.Decimal
	Category string
	Note     string
	// Version is the version the caller last read. Required on update.
	Version int64
}

// ListFilter narrows ListExpenses. Month ("YYYY-MM") and Year ("YYYY") are
// inclusive windows; when both are set the expense must fall in both.
type ListFilter struct {
	SheetID *uuid.UUID
	Month   string
	Year    string
}

// ExpenseManager owns the expense lifecycle.
type ExpenseManager struct {
	base
}

// Create adds an expense. A non-zero expense may not share its (date,
// category) cell with another expense on the same sheet.
func (m *ExpenseManager) Create(ctx context.Context, userID uuid.UUID, in ExpenseInput) (*models.Expense, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	expense, err := m.build(userID, in)
	if err != nil {
		return nil, err
	}

	err = m.store.InTx(ctx, func(q storage.Queries) error {
		if !expense.Amount.IsZero() {
			if err := checkCellFree(ctx, q, expense, uuid.Nil); err != nil {
				return err
			}
		}
		if _, err := q.GetSheet(ctx, userID, expense.SheetID); err != nil {
			return fromStore(err, "sheet %s", expense.SheetID)
		}
		if err := q.CreateExpense(ctx, expense); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return duplicateCell(expense, err)
			}
			return fromStore(err, "create expense")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("Expense created",
		"user_id", userID,
		"sheet_id", expense.SheetID,
		"expense_id", expense.ID,
	)
	return expense, nil
}

// Update replaces an expense's fields if in.Version is still current.
// Moving the expense to another cell, or giving a zero expense an amount,
// re-runs the duplicate check.
func (m *ExpenseManager) Update(ctx context.Context, userID, expenseID uuid.UUID, in ExpenseInput) (*models.Expense, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if in.Version < 1 {
		return nil, invalidArgument("version is required")
	}
	next, err := m.build(userID, in)
	if err != nil {
		return nil, err
	}

	var updated *models.Expense
	err = m.store.InTx(ctx, func(q storage.Queries) error {
		current, err := q.GetExpense(ctx, userID, expenseID)
		if err != nil {
			return fromStore(err, "expense %s", expenseID)
		}

		if next.SheetID != current.SheetID {
			if _, err := q.GetSheet(ctx, userID, next.SheetID); err != nil {
				return fromStore(err, "sheet %s", next.SheetID)
			}
		}

		moved := next.SheetID != current.SheetID ||
			next.Date != current.Date ||
			next.Category != current.Category
		// A zero row turning non-zero claims its cell just like a create.
		claims := moved || current.Amount.IsZero()
		if claims && !next.Amount.IsZero() {
			if err := checkCellFree(ctx, q, next, expenseID); err != nil {
				return err
			}
		}

		current.SheetID = next.SheetID
		current.Date = next.Date
		current.Amount = next.Amount
		current.Category = next.Category
		current.Note = next.Note

		if err := q.UpdateExpense(ctx, current, in.Version); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return duplicateCell(current, err)
			}
			return fromStore(err, "expense %s", expenseID)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("Expense updated",
		"user_id", userID,
		"sheet_id", updated.SheetID,
		"expense_id", expenseID,
		"version", updated.Version,
	)
	return updated, nil
}

// Delete removes an expense. Its annotations are left to the caller; use
// DeleteWithAnnotations to remove both.
func (m *ExpenseManager) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := m.store.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fromStore(err, "expense %s", expenseID)
	}

	m.logger.Info("Expense deleted", "user_id", userID, "expense_id", expenseID)
	return nil
}

// DeleteWithAnnotations removes an expense and every annotation on it in one
// transaction. It returns the number of annotations removed.
func (m *ExpenseManager) DeleteWithAnnotations(ctx context.Context, userID, expenseID uuid.UUID) (int64, error) {
	if err := requireUser(userID); err != nil {
		return 0, err
	}

	var removed int64
	err := m.store.InTx(ctx, func(q storage.Queries) error {
		if err := q.DeleteExpense(ctx, userID, expenseID); err != nil {
			return fromStore(err, "expense %s", expenseID)
		}
		n, err := q.DeleteExpenseAnnotations(ctx, userID, expenseID)
		if err != nil {
			return fromStore(err, "delete descriptions of expense %s", expenseID)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	m.logger.Info("Expense deleted",
		"user_id", userID,
		"expense_id", expenseID,
		"annotations_deleted", removed,
	)
	return removed, nil
}

// Get returns one expense.
func (m *ExpenseManager) Get(ctx context.Context, userID, expenseID uuid.UUID) (*models.Expense, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	expense, err := m.store.GetExpense(ctx, userID, expenseID)
	if err != nil {
		return nil, fromStore(err, "expense %s", expenseID)
	}
	return expense, nil
}

// List returns the user's expenses matching filter, ordered by date.
func (m *ExpenseManager) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]models.Expense, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	dates, empty, err := filterRange(filter)
	if err != nil {
		return nil, err
	}
	if empty {
		return []models.Expense{}, nil
	}

	expenses, err := m.store.ListExpenses(ctx, storage.ExpenseFilter{
		UserID:  userID,
		SheetID: filter.SheetID,
		Range:   dates,
	})
	if err != nil {
		return nil, fromStore(err, "list expenses")
	}
	return expenses, nil
}

// Total sums a sheet's expenses, optionally within window.
func (m *ExpenseManager) Total(ctx context.Context, userID, sheetID uuid.UUID, window *calculator.Window) (decimal.Decimal, error) {
	if err := requireUser(userID); err != nil {
		return decimal.Zero, err
	}
	total, err := m.store.SumExpenses(ctx, userID, sheetID, toRange(window))
	if err != nil {
		return decimal.Zero, fromStore(err, "sum expenses")
	}
	return total, nil
}

// CategorySubtotals sums a sheet's expenses per category.
func (m *ExpenseManager) CategorySubtotals(ctx context.Context, userID, sheetID uuid.UUID) ([]storage.CategorySum, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	sums, err := m.store.SumExpensesByCategory(ctx, userID, sheetID)
	if err != nil {
		return nil, fromStore(err, "sum expenses by category")
	}
	return sums, nil
}

// Summary is the whole-sheet aggregate view.
type Summary struct {
	Total      decimal.Decimal
	Categories []storage.CategorySum
}

// Summary returns a sheet's total and per-category subtotals.
func (m *ExpenseManager) Summary(ctx context.Context, userID, sheetID uuid.UUID) (*Summary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := m.store.GetSheet(ctx, userID, sheetID); err != nil {
		return nil, fromStore(err, "sheet %s", sheetID)
	}

	total, err := m.Total(ctx, userID, sheetID, nil)
	if err != nil {
		return nil, err
	}
	sums, err := m.CategorySubtotals(ctx, userID, sheetID)
	if err != nil {
		return nil, err
	}
	return &Summary{Total: total, Categories: sums}, nil
}

// build validates in and turns it into an unsaved expense.
func (m *ExpenseManager) build(userID uuid.UUID, in ExpenseInput) (*models.Expense, error) {
	if in.SheetID == uuid.Nil {
		return nil, invalidArgument("sheet is required")
	}
	if !in.Date.IsValid() {
		return nil, invalidArgument("date %q is not a valid calendar date", in.Date)
	}
	if in.Date.After(m.today()) {
		return nil, invalidArgument("date %s is in the future", in.Date)
	}
	if _, err := models.ToCents(in.Amount); err != nil {
		if errors.Is(err, models.ErrAmountPrecision) || errors.Is(err, models.ErrAmountRange) {
			return nil, invalidArgument("amount %s: %v", in.Amount, err)
		}
		return nil, err
	}
	category := models.NormalizeCategory(in.Category)
	if category == "" {
		return nil, invalidArgument("category must not be empty")
	}
	if utf8.RuneCountInString(in.Note) > models.MaxNoteLength {
		return nil, invalidArgument("note must be at most %d characters", models.MaxNoteLength)
	}

	return &models.Expense{
		UserID:    userID,
		SheetID:   in.SheetID,
		Date:      in.Date,
		Amount:    in.Amount,
		Category:  category,
		Note:      in.Note,
		CreatedAt: m.now().Unix(),
	}, nil
}

// checkCellFree fails with Duplicate when another expense already occupies
// the expense's (date, category) cell. self is excluded from the check.
func checkCellFree(ctx context.Context, q storage.Queries, e *models.Expense, self uuid.UUID) error {
	existing, err := q.FindExpensesInCell(ctx, e.UserID, e.SheetID, e.Date, e.Category)
	if err != nil {
		return fromStore(err, "check for duplicate expense")
	}
	for _, other := range existing {
		if other.ID != self {
			return duplicateCell(e, nil)
		}
	}
	return nil
}

func duplicateCell(e *models.Expense, cause error) error {
	return &Error{
		Kind:   KindDuplicate,
		Reason: "an expense on " + e.Date.String() + " in category \"" + e.Category + "\" already exists",
		Err:    cause,
	}
}

// filterRange turns month/year tokens into a date range. empty reports a
// month that lies outside the requested year.
func filterRange(filter ListFilter) (dates *storage.DateRange, empty bool, err error) {
	var window *calculator.Window

	if filter.Year != "" {
		w, err := calculator.ParseYear(filter.Year)
		if err != nil {
			return nil, false, invalidArgument("%v", err)
		}
		window = &w
	}
	if filter.Month != "" {
		w, err := calculator.ParseMonth(filter.Month)
		if err != nil {
			return nil, false, invalidArgument("%v", err)
		}
		if window != nil {
			overlap, ok := window.Intersect(w)
			if !ok {
				return nil, true, nil
			}
			w = overlap
		}
		window = &w
	}

	return toRange(window), false, nil
}

func toRange(window *calculator.Window) *storage.DateRange {
	if window == nil {
		return nil
	}
	return &storage.DateRange{From: window.From, To: window.To}
}
