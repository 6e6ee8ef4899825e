package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/storage"
)

// ReassignOwner moves every sheet, expense and annotation owned by one user
// to another. Curated categories follow their sheet and need no update.
func (q *queries) ReassignOwner(ctx context.Context, from, to uuid.UUID) (storage.Reassigned, error) {
	var moved storage.Reassigned

	steps := []struct {
		table string
		count *int64
	}{
		{"sheets", &moved.Sheets},
		{"expenses", &moved.Expenses},
		{"cell_annotations", &moved.Annotations},
	}

	for _, step := range steps {
		result, err := q.exec(ctx, `UPDATE `+step.table+` SET user_id = ? WHERE user_id = ?`, to, from)
		if err != nil {
			return storage.Reassigned{}, fmt.Errorf("failed to reassign %s: %w", step.table, err)
		}
		n, err := rowsAffected(result)
		if err != nil {
			return storage.Reassigned{}, err
		}
		*step.count = n
	}

	return moved, nil
}
