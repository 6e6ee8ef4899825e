package ledger

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

// AnnotationStore manages free-text notes on (expense, column) cells.
type AnnotationStore struct {
	base
}

// Save creates or overwrites the annotation on one cell. An empty column
// means the default "notes" column.
func (s *AnnotationStore) Save(ctx context.Context, userID, expenseID uuid.UUID, column, text string) (*models.Annotation, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	column = columnOrDefault(column)
	if strings.TrimSpace(text) == "" {
		return nil, invalidArgument("description must not be empty")
	}
	if utf8.RuneCountInString(text) > models.MaxNoteLength {
		return nil, invalidArgument("description must be at most %d characters", models.MaxNoteLength)
	}

	annotation := &models.Annotation{
		ExpenseID:  expenseID,
		ColumnName: column,
		Text:       text,
		UserID:     userID,
		CreatedAt:  s.now().Unix(),
	}
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetExpense(ctx, userID, expenseID); err != nil {
			return fromStore(err, "expense %s", expenseID)
		}
		if err := q.UpsertAnnotation(ctx, annotation); err != nil {
			return fromStore(err, "save description")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Description saved",
		"user_id", userID,
		"expense_id", expenseID,
		"column", column,
		"annotation_id", annotation.ID,
	)
	return annotation, nil
}

// List returns the user's annotations on the given expenses, optionally
// restricted to one column. An empty id list returns nothing.
func (s *AnnotationStore) List(ctx context.Context, userID uuid.UUID, expenseIDs []uuid.UUID, column string) ([]models.Annotation, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if len(expenseIDs) == 0 {
		return []models.Annotation{}, nil
	}

	annotations, err := s.store.ListAnnotations(ctx, storage.AnnotationFilter{
		UserID:     userID,
		ExpenseIDs: expenseIDs,
		ColumnName: strings.TrimSpace(column),
	})
	if err != nil {
		return nil, fromStore(err, "list descriptions")
	}
	return annotations, nil
}

// ListByUser returns every annotation the user owns.
func (s *AnnotationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Annotation, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	annotations, err := s.store.ListAnnotations(ctx, storage.AnnotationFilter{UserID: userID})
	if err != nil {
		return nil, fromStore(err, "list descriptions")
	}
	return annotations, nil
}

// DeleteByID removes one annotation. It fails with NotFound when the
// annotation does not exist or belongs to someone else.
func (s *AnnotationStore) DeleteByID(ctx context.Context, userID, annotationID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.store.DeleteAnnotation(ctx, userID, annotationID); err != nil {
		return fromStore(err, "description %s", annotationID)
	}
	s.logger.Info("Description deleted", "user_id", userID, "annotation_id", annotationID)
	return nil
}

// DeleteByExpenseID removes every annotation on an expense.
func (s *AnnotationStore) DeleteByExpenseID(ctx context.Context, userID, expenseID uuid.UUID) (int64, error) {
	if err := requireUser(userID); err != nil {
		return 0, err
	}
	n, err := s.store.DeleteExpenseAnnotations(ctx, userID, expenseID)
	if err != nil {
		return 0, fromStore(err, "delete descriptions of expense %s", expenseID)
	}
	return n, nil
}

// DeleteByExpenseIDAndColumn removes the annotation on one cell, if any.
func (s *AnnotationStore) DeleteByExpenseIDAndColumn(ctx context.Context, userID, expenseID uuid.UUID, column string) (int64, error) {
	if err := requireUser(userID); err != nil {
		return 0, err
	}
	n, err := s.store.DeleteExpenseAnnotation(ctx, userID, expenseID, columnOrDefault(column))
	if err != nil {
		return 0, fromStore(err, "delete description of expense %s", expenseID)
	}
	return n, nil
}

func columnOrDefault(column string) string {
	column = strings.TrimSpace(column)
	if column == "" {
		return models.DefaultColumnName
	}
	return column
}
