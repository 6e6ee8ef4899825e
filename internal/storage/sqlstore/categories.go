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

const categoryColumns = `id, sheet_id, name, display_order, created_at`

// ListSheetCategories returns a sheet's curated categories in display order,
// unordered entries last.
func (q *queries) ListSheetCategories(ctx context.Context, sheetID uuid.UUID) ([]models.SheetCategory, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM sheet_categories
		WHERE sheet_id = ?
		ORDER BY display_order IS NULL, display_order, created_at, name
	`

	rows, err := q.query(ctx, query, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet categories: %w", err)
	}
	defer rows.Close()

	categories := []models.SheetCategory{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sheet category: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sheet categories: %w", err)
	}

	return categories, nil
}

// GetSheetCategory retrieves one curated category by name.
func (q *queries) GetSheetCategory(ctx context.Context, sheetID uuid.UUID, name string) (*models.SheetCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM sheet_categories WHERE sheet_id = ? AND name = ?`

	category, err := scanCategory(q.queryRow(ctx, query, sheetID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet category: %w", err)
	}

	return category, nil
}

// MaxCategoryOrder returns the highest display order on a sheet, or 0.
func (q *queries) MaxCategoryOrder(ctx context.Context, sheetID uuid.UUID) (int, error) {
	var order int
	query := `SELECT CAST(COALESCE(MAX(display_order), 0) AS INTEGER) FROM sheet_categories WHERE sheet_id = ?`
	if err := q.queryRow(ctx, query, sheetID).Scan(&order); err != nil {
		return 0, fmt.Errorf("failed to get max category order: %w", err)
	}
	return order, nil
}

// CreateSheetCategory inserts a curated category.
func (q *queries) CreateSheetCategory(ctx context.Context, category *models.SheetCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.CreatedAt == 0 {
		category.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO sheet_categories (` + categoryColumns + `)
		VALUES (?, ?, ?, ?, ?)
	`

	var order sql.NullInt64
	if category.DisplayOrder != nil {
		order = sql.NullInt64{Int64: int64(*category.DisplayOrder), Valid: true}
	}

	_, err := q.exec(ctx, query,
		category.ID,
		category.SheetID,
		category.Name,
		order,
		category.CreatedAt,
	)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", category.Name, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to create sheet category: %w", err)
	}

	return nil
}

// RenameSheetCategory renames a curated category in place.
func (q *queries) RenameSheetCategory(ctx context.Context, sheetID uuid.UUID, from, to string) error {
	result, err := q.exec(ctx, `UPDATE sheet_categories SET name = ? WHERE sheet_id = ? AND name = ?`, to, sheetID, from)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", to, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to rename sheet category: %w", err)
	}
	return requireAffected(result, "category")
}

// DeleteSheetCategory removes one curated category by name.
func (q *queries) DeleteSheetCategory(ctx context.Context, sheetID uuid.UUID, name string) (int64, error) {
	result, err := q.exec(ctx, `DELETE FROM sheet_categories WHERE sheet_id = ? AND name = ?`, sheetID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sheet category: %w", err)
	}
	return rowsAffected(result)
}

// DeleteSheetCategories removes every curated category of a sheet.
func (q *queries) DeleteSheetCategories(ctx context.Context, sheetID uuid.UUID) (int64, error) {
	result, err := q.exec(ctx, `DELETE FROM sheet_categories WHERE sheet_id = ?`, sheetID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sheet categories: %w", err)
	}
	return rowsAffected(result)
}

func scanCategory(row scanner) (*models.SheetCategory, error) {
	category := &models.SheetCategory{}
	var order sql.NullInt64
	if err := row.Scan(
		&category.ID,
		&category.SheetID,
		&category.Name,
		&order,
		&category.CreatedAt,
	); err != nil {
		return nil, err
	}
	if order.Valid {
		o := int(order.Int64)
		category.DisplayOrder = &o
	}
	return category, nil
}
