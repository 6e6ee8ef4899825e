package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

// CategoryRegistry manages each sheet's curated category list.
type CategoryRegistry struct {
	base
}

// List returns the sheet's categories in display order. A sheet with no
// curated categories falls back to the categories its expenses use.
func (r *CategoryRegistry) List(ctx context.Context, userID, sheetID uuid.UUID) ([]string, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := r.store.GetSheet(ctx, userID, sheetID); err != nil {
		return nil, fromStore(err, "sheet %s", sheetID)
	}
	return resolveCategories(ctx, r.store, sheetID)
}

// Create registers a category after every existing one.
func (r *CategoryRegistry) Create(ctx context.Context, userID, sheetID uuid.UUID, name string) (string, error) {
	if err := requireUser(userID); err != nil {
		return "", err
	}
	name = models.NormalizeCategory(name)
	if name == "" {
		return "", invalidArgument("category name must not be empty")
	}

	err := r.store.InTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetSheet(ctx, userID, sheetID); err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}
		if err := ensureAbsent(ctx, q, sheetID, name); err != nil {
			return err
		}

		max, err := q.MaxCategoryOrder(ctx, sheetID)
		if err != nil {
			return fromStore(err, "read category order")
		}
		order := max + 1

		category := &models.SheetCategory{
			SheetID:      sheetID,
			Name:         name,
			DisplayOrder: &order,
			CreatedAt:    r.now().Unix(),
		}
		if err := q.CreateSheetCategory(ctx, category); err != nil {
			return fromStore(err, "category %q", name)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	r.logger.Info("Category created", "user_id", userID, "sheet_id", sheetID, "category", name)
	return name, nil
}

// Rename renames a category and relabels the sheet's expenses in one
// transaction. Names that normalize to the same value only re-run the
// relabel.
func (r *CategoryRegistry) Rename(ctx context.Context, userID, sheetID uuid.UUID, oldName, newName string) (string, error) {
	if err := requireUser(userID); err != nil {
		return "", err
	}
	from := models.NormalizeCategory(oldName)
	to := models.NormalizeCategory(newName)
	if from == "" || to == "" {
		return "", invalidArgument("category names must not be empty")
	}

	var relabeled int64
	err := r.store.InTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetSheet(ctx, userID, sheetID); err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}

		if from != to {
			if err := ensureAbsent(ctx, q, sheetID, to); err != nil {
				return err
			}
			if err := q.RenameSheetCategory(ctx, sheetID, from, to); err != nil {
				return fromStore(err, "category %q", from)
			}
		}

		n, err := q.RelabelExpenses(ctx, userID, sheetID, from, to)
		if err != nil {
			return fromStore(err, "relabel expenses from %q to %q", from, to)
		}
		relabeled = n
		return nil
	})
	if err != nil {
		return "", err
	}

	r.logger.Info("Category renamed",
		"user_id", userID,
		"sheet_id", sheetID,
		"from", from,
		"to", to,
		"expenses_relabeled", relabeled,
	)
	return to, nil
}

// Delete relabels the category's expenses as uncategorized and drops the
// registry entry. Expenses are never deleted.
func (r *CategoryRegistry) Delete(ctx context.Context, userID, sheetID uuid.UUID, name string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	name = models.NormalizeCategory(name)
	if name == "" {
		return invalidArgument("category name must not be empty")
	}

	var relabeled int64
	err := r.store.InTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetSheet(ctx, userID, sheetID); err != nil {
			return fromStore(err, "sheet %s", sheetID)
		}

		n, err := q.RelabelExpenses(ctx, userID, sheetID, name, models.UncategorizedCategory)
		if err != nil {
			return fromStore(err, "relabel expenses from %q to %q", name, models.UncategorizedCategory)
		}
		relabeled = n

		removed, err := q.DeleteSheetCategory(ctx, sheetID, name)
		if err != nil {
			return fromStore(err, "delete category %q", name)
		}
		if removed == 0 && relabeled == 0 {
			return newError(KindNotFound, "category %q", name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Category deleted",
		"user_id", userID,
		"sheet_id", sheetID,
		"category", name,
		"expenses_relabeled", relabeled,
	)
	return nil
}

func ensureAbsent(ctx context.Context, q storage.Queries, sheetID uuid.UUID, name string) error {
	_, err := q.GetSheetCategory(ctx, sheetID, name)
	switch {
	case err == nil:
		return newError(KindDuplicate, "category %q already exists", name)
	case isStoreNotFound(err):
		return nil
	default:
		return fromStore(err, "look up category %q", name)
	}
}

// resolveCategories picks the category source for a sheet: the curated
// registry when it has rows, otherwise the distinct expense categories.
func resolveCategories(ctx context.Context, q storage.Queries, sheetID uuid.UUID) ([]string, error) {
	curated, err := q.ListSheetCategories(ctx, sheetID)
	if err != nil {
		return nil, fromStore(err, "list categories")
	}
	if len(curated) > 0 {
		return curatedNames(curated), nil
	}

	derived, err := q.DistinctExpenseCategories(ctx, sheetID)
	if err != nil {
		return nil, fromStore(err, "list expense categories")
	}
	return derived, nil
}

// curatedNames keeps the first occurrence of each name, in order.
func curatedNames(categories []models.SheetCategory) []string {
	seen := make(map[string]bool, len(categories))
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		names = append(names, c.Name)
	}
	return names
}
