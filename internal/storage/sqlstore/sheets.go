package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

const sheetColumns = `id, user_id, name, pin_hash, has_pin, created_at, version`

// CreateSheet inserts a new sheet at version 1.
func (q *queries) CreateSheet(ctx context.Context, sheet *models.Sheet) error {
	if sheet.ID == uuid.Nil {
		sheet.ID = uuid.New()
	}
	if sheet.CreatedAt == 0 {
		sheet.CreatedAt = time.Now().Unix()
	}
	if sheet.Version == 0 {
		sheet.Version = 1
	}

	query := `
		INSERT INTO sheets (` + sheetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.exec(ctx, query,
		sheet.ID,
		sheet.UserID,
		sheet.Name,
		sheet.PINHash,
		boolToInt(sheet.HasPIN),
		sheet.CreatedAt,
		sheet.Version,
	)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("sheet %s: %w", sheet.ID, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	return nil
}

// GetSheet retrieves a sheet owned by userID.
func (q *queries) GetSheet(ctx context.Context, userID, sheetID uuid.UUID) (*models.Sheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM sheets WHERE id = ? AND user_id = ?`

	sheet, err := scanSheet(q.queryRow(ctx, query, sheetID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sheet %s: %w", sheetID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	return sheet, nil
}

// ListSheets returns the user's sheets, oldest first.
func (q *queries) ListSheets(ctx context.Context, userID uuid.UUID) ([]models.Sheet, error) {
	query := `
		SELECT ` + sheetColumns + `
		FROM sheets
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	rows, err := q.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	defer rows.Close()

	sheets := []models.Sheet{}
	for rows.Next() {
		sheet, err := scanSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sheet: %w", err)
		}
		sheets = append(sheets, *sheet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sheets: %w", err)
	}

	return sheets, nil
}

// UpdateSheet writes the sheet's name and PIN if its stored version is still
// expectedVersion.
func (q *queries) UpdateSheet(ctx context.Context, sheet *models.Sheet, expectedVersion int64) error {
	query := `
		UPDATE sheets
		SET name = ?, pin_hash = ?, has_pin = ?, version = version + 1
		WHERE id = ? AND user_id = ? AND version = ?
	`

	result, err := q.exec(ctx, query,
		sheet.Name,
		sheet.PINHash,
		boolToInt(sheet.HasPIN),
		sheet.ID,
		sheet.UserID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update sheet: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return q.casMiss(ctx, "sheets", sheet.ID, sheet.UserID)
	}

	sheet.Version = expectedVersion + 1
	return nil
}

// DeleteSheet removes the sheet row only. Callers delete dependents first.
func (q *queries) DeleteSheet(ctx context.Context, userID, sheetID uuid.UUID) error {
	result, err := q.exec(ctx, `DELETE FROM sheets WHERE id = ? AND user_id = ?`, sheetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	return requireAffected(result, "sheet")
}

// CountExpensesBySheet returns the number of expenses on each of a user's sheets.
// Sheets without expenses are absent from the map.
func (q *queries) CountExpensesBySheet(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	query := `
		SELECT sheet_id, COUNT(*)
		FROM expenses
		WHERE user_id = ?
		GROUP BY sheet_id
	`

	rows, err := q.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var sheetID uuid.UUID
		var n int64
		if err := rows.Scan(&sheetID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan expense count: %w", err)
		}
		counts[sheetID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense counts: %w", err)
	}

	return counts, nil
}

// casMiss explains why a versioned update matched no row: the row is either
// gone (or owned by someone else) or its version has moved on.
func (q *queries) casMiss(ctx context.Context, table string, id, userID uuid.UUID) error {
	var exists int
	err := q.queryRow(ctx, `SELECT 1 FROM `+table+` WHERE id = ? AND user_id = ?`, id, userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", table, id, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return fmt.Errorf("%s %s: %w", table, id, storage.ErrConflict)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSheet(row scanner) (*models.Sheet, error) {
	sheet := &models.Sheet{}
	var hasPIN int64
	if err := row.Scan(
		&sheet.ID,
		&sheet.UserID,
		&sheet.Name,
		&sheet.PINHash,
		&hasPIN,
		&sheet.CreatedAt,
		&sheet.Version,
	); err != nil {
		return nil, err
	}
	sheet.HasPIN = hasPIN != 0
	return sheet, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
