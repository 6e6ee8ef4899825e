package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

const expenseColumns = `id, user_id, sheet_id, spent_on, amount_cents, category, note, created_at, version`

// CreateExpense inserts a new expense at version 1. The partial unique index
// on (user, sheet, date, category) rejects a second non-zero expense in a cell.
func (q *queries) CreateExpense(ctx context.Context, expense *models.Expense) error {
	cents, err := models.ToCents(expense.Amount)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Version == 0 {
		expense.Version = 1
	}

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = q.exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.SheetID,
		expense.Date.String(),
		cents,
		expense.Category,
		expense.Note,
		expense.CreatedAt,
		expense.Version,
	)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("expense on %s in %q: %w", expense.Date, expense.Category, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense owned by userID.
func (q *queries) GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ? AND user_id = ?`

	expense, err := scanExpense(q.queryRow(ctx, query, expenseID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListExpenses returns the matching expenses ordered by date, then creation.
func (q *queries) ListExpenses(ctx context.Context, filter storage.ExpenseFilter) ([]models.Expense, error) {
	var (
		where = []string{"user_id = ?"}
		args  = []any{filter.UserID}
	)
	if filter.SheetID != nil {
		where = append(where, "sheet_id = ?")
		args = append(args, *filter.SheetID)
	}
	if filter.Range != nil {
		where = append(where, "spent_on >= ?", "spent_on <= ?")
		args = append(args, filter.Range.From.String(), filter.Range.To.String())
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY spent_on, created_at, id
	`

	return q.listExpenses(ctx, query, args...)
}

// FindExpensesInCell returns every expense in one (date, category) cell.
func (q *queries) FindExpensesInCell(ctx context.Context, userID, sheetID uuid.UUID, date civil.Date, category string) ([]models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = ? AND sheet_id = ? AND spent_on = ? AND category = ?
		ORDER BY created_at, id
	`

	return q.listExpenses(ctx, query, userID, sheetID, date.String(), category)
}

func (q *queries) listExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense writes every mutable field if the stored version is still
// expectedVersion.
func (q *queries) UpdateExpense(ctx context.Context, expense *models.Expense, expectedVersion int64) error {
	cents, err := models.ToCents(expense.Amount)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	query := `
		UPDATE expenses
		SET sheet_id = ?, spent_on = ?, amount_cents = ?, category = ?, note = ?, version = version + 1
		WHERE id = ? AND user_id = ? AND version = ?
	`

	result, err := q.exec(ctx, query,
		expense.SheetID,
		expense.Date.String(),
		cents,
		expense.Category,
		expense.Note,
		expense.ID,
		expense.UserID,
		expectedVersion,
	)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("expense on %s in %q: %w", expense.Date, expense.Category, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to update expense: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return q.casMiss(ctx, "expenses", expense.ID, expense.UserID)
	}

	expense.Version = expectedVersion + 1
	return nil
}

// DeleteExpense removes one expense owned by userID.
func (q *queries) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error {
	result, err := q.exec(ctx, `DELETE FROM expenses WHERE id = ? AND user_id = ?`, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(result, "expense")
}

// DeleteSheetExpenses removes every expense on a sheet.
func (q *queries) DeleteSheetExpenses(ctx context.Context, userID, sheetID uuid.UUID) (int64, error) {
	result, err := q.exec(ctx, `DELETE FROM expenses WHERE user_id = ? AND sheet_id = ?`, userID, sheetID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sheet expenses: %w", err)
	}
	return rowsAffected(result)
}

// RelabelExpenses moves a sheet's expenses from one category to another.
// Relabeling a category onto itself touches no rows.
func (q *queries) RelabelExpenses(ctx context.Context, userID, sheetID uuid.UUID, from, to string) (int64, error) {
	query := `
		UPDATE expenses
		SET category = ?, version = version + 1
		WHERE user_id = ? AND sheet_id = ? AND category = ? AND category <> ?
	`

	result, err := q.exec(ctx, query, to, userID, sheetID, from, to)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return 0, fmt.Errorf("relabel %q to %q: %w", from, to, storage.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to relabel expenses: %w", err)
	}
	return rowsAffected(result)
}

// SumExpenses totals a sheet's expenses, optionally limited to a date range.
func (q *queries) SumExpenses(ctx context.Context, userID, sheetID uuid.UUID, dates *storage.DateRange) (decimal.Decimal, error) {
	query := `
		SELECT CAST(COALESCE(SUM(amount_cents), 0) AS BIGINT)
		FROM expenses
		WHERE user_id = ? AND sheet_id = ?
	`
	args := []any{userID, sheetID}
	if dates != nil {
		query += ` AND spent_on >= ? AND spent_on <= ?`
		args = append(args, dates.From.String(), dates.To.String())
	}

	var cents int64
	if err := q.queryRow(ctx, query, args...).Scan(&cents); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return models.FromCents(cents), nil
}

// SumExpensesByCategory returns a subtotal per category, sorted by category.
func (q *queries) SumExpensesByCategory(ctx context.Context, userID, sheetID uuid.UUID) ([]storage.CategorySum, error) {
	query := `
		SELECT category, CAST(SUM(amount_cents) AS BIGINT)
		FROM expenses
		WHERE user_id = ? AND sheet_id = ?
		GROUP BY category
		ORDER BY category
	`

	rows, err := q.query(ctx, query, userID, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	defer rows.Close()

	sums := []storage.CategorySum{}
	for rows.Next() {
		var sum storage.CategorySum
		var cents int64
		if err := rows.Scan(&sum.Category, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan category sum: %w", err)
		}
		sum.Total = models.FromCents(cents)
		sums = append(sums, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category sums: %w", err)
	}

	return sums, nil
}

// DistinctExpenseCategories lists the categories used by a sheet's expenses.
func (q *queries) DistinctExpenseCategories(ctx context.Context, sheetID uuid.UUID) ([]string, error) {
	rows, err := q.query(ctx, `SELECT DISTINCT category FROM expenses WHERE sheet_id = ? ORDER BY category`, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func scanExpense(row scanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var spentOn string
	var cents int64
	if err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.SheetID,
		&spentOn,
		&cents,
		&expense.Category,
		&expense.Note,
		&expense.CreatedAt,
		&expense.Version,
	); err != nil {
		return nil, err
	}

	date, err := civil.ParseDate(spentOn)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", spentOn, err)
	}
	expense.Date = date
	expense.Amount = models.FromCents(cents)

	return expense, nil
}
