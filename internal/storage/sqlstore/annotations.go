package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

const annotationColumns = `id, expense_id, column_name, description, user_id, created_at`

// UpsertAnnotation inserts an annotation or replaces the text of the existing
// one on the same (expense, column). The surviving row's ID, owner and
// creation time are written back.
func (q *queries) UpsertAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if annotation.ID == uuid.Nil {
		annotation.ID = uuid.New()
	}
	if annotation.CreatedAt == 0 {
		annotation.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO cell_annotations (` + annotationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (expense_id, column_name)
		DO UPDATE SET description = excluded.description
		RETURNING id, user_id, created_at
	`

	err := q.queryRow(ctx, query,
		annotation.ID,
		annotation.ExpenseID,
		annotation.ColumnName,
		annotation.Text,
		annotation.UserID,
		annotation.CreatedAt,
	).Scan(&annotation.ID, &annotation.UserID, &annotation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert annotation: %w", err)
	}

	return nil
}

// ListAnnotations returns the user's annotations matching the filter.
func (q *queries) ListAnnotations(ctx context.Context, filter storage.AnnotationFilter) ([]models.Annotation, error) {
	var (
		where = []string{"user_id = ?"}
		args  = []any{filter.UserID}
	)
	if len(filter.ExpenseIDs) > 0 {
		where = append(where, "expense_id IN ("+placeholders(len(filter.ExpenseIDs))+")")
		for _, id := range filter.ExpenseIDs {
			args = append(args, id)
		}
	}
	if filter.ColumnName != "" {
		where = append(where, "column_name = ?")
		args = append(args, filter.ColumnName)
	}

	query := `
		SELECT ` + annotationColumns + `
		FROM cell_annotations
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at, id
	`

	rows, err := q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}
	defer rows.Close()

	annotations := []models.Annotation{}
	for rows.Next() {
		annotation, err := scanAnnotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		annotations = append(annotations, *annotation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating annotations: %w", err)
	}

	return annotations, nil
}

// DeleteAnnotation removes one annotation owned by userID.
func (q *queries) DeleteAnnotation(ctx context.Context, userID, annotationID uuid.UUID) error {
	result, err := q.exec(ctx, `DELETE FROM cell_annotations WHERE id = ? AND user_id = ?`, annotationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return requireAffected(result, "annotation")
}

// DeleteExpenseAnnotations removes every annotation on one expense.
func (q *queries) DeleteExpenseAnnotations(ctx context.Context, userID, expenseID uuid.UUID) (int64, error) {
	result, err := q.exec(ctx, `DELETE FROM cell_annotations WHERE user_id = ? AND expense_id = ?`, userID, expenseID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expense annotations: %w", err)
	}
	return rowsAffected(result)
}

// DeleteExpenseAnnotation removes the annotation on one (expense, column).
func (q *queries) DeleteExpenseAnnotation(ctx context.Context, userID, expenseID uuid.UUID, columnName string) (int64, error) {
	query := `DELETE FROM cell_annotations WHERE user_id = ? AND expense_id = ? AND column_name = ?`
	result, err := q.exec(ctx, query, userID, expenseID, columnName)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expense annotation: %w", err)
	}
	return rowsAffected(result)
}

// DeleteSheetAnnotations removes the annotations attached to a sheet's
// expenses. It must run before the expenses themselves are deleted.
func (q *queries) DeleteSheetAnnotations(ctx context.Context, userID, sheetID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM cell_annotations
		WHERE user_id = ?
		  AND expense_id IN (SELECT id FROM expenses WHERE user_id = ? AND sheet_id = ?)
	`
	result, err := q.exec(ctx, query, userID, userID, sheetID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sheet annotations: %w", err)
	}
	return rowsAffected(result)
}

func scanAnnotation(row scanner) (*models.Annotation, error) {
	annotation := &models.Annotation{}
	if err := row.Scan(
		&annotation.ID,
		&annotation.ExpenseID,
		&annotation.ColumnName,
		&annotation.Text,
		&annotation.UserID,
		&annotation.CreatedAt,
	); err != nil {
		return nil, err
	}
	return annotation, nil
}
