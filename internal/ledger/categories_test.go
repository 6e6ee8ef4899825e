package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

func (f *fixture) categoryCount(t *testing.T, sheetID uuid.UUID, category string) int {
	t.Helper()
	expenses, err := f.store.ListExpenses(f.ctx, storage.ExpenseFilter{UserID: f.user, SheetID: &sheetID})
	require.NoError(t, err)
	n := 0
	for _, e := range expenses {
		if e.Category == category {
			n++
		}
	}
	return n
}

func TestCreateCategory(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Registry")

	for _, name := range []string{" Food ", "Fuel", "rent"} {
		_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, name)
		require.NoError(t, err)
	}

	_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, "FOOD")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = f.ledger.Categories.Create(f.ctx, f.user, sheetID, "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = f.ledger.Categories.Create(f.ctx, uuid.New(), sheetID, "other")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "fuel", "rent"}, names)

	stored, err := f.store.ListSheetCategories(f.ctx, sheetID)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, 3, *stored[2].DisplayOrder)
}

func TestListCategoriesFallback(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Legacy")
	f.expense(t, sheetID, "2024-03-01", "1", "zoo")
	f.expense(t, sheetID, "2024-03-01", "1", "apples")
	f.expense(t, sheetID, "2024-03-02", "1", "zoo")

	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"apples", "zoo"}, names)

	_, err = f.ledger.Categories.Create(f.ctx, f.user, sheetID, "misc")
	require.NoError(t, err)

	names, err = f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"misc"}, names)
}

func TestCuratedNamesDeduplicates(t *testing.T) {
	one, two := 1, 2
	got := curatedNames([]models.SheetCategory{
		{Name: "food", DisplayOrder: &one},
		{Name: "fuel", DisplayOrder: &two},
		{Name: "food"},
	})
	assert.Equal(t, []string{"food", "fuel"}, got)
}

func TestRenameCategory(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Rename")
	_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, "food")
	require.NoError(t, err)
	_, err = f.ledger.Categories.Create(f.ctx, f.user, sheetID, "fuel")
	require.NoError(t, err)

	const n = 4
	for i := 1; i <= n; i++ {
		f.expense(t, sheetID, "2024-03-0"+string(rune('0'+i)), "5", "food")
	}

	got, err := f.ledger.Categories.Rename(f.ctx, f.user, sheetID, "Food", " Dining ")
	require.NoError(t, err)
	assert.Equal(t, "dining", got)

	assert.Equal(t, n, f.categoryCount(t, sheetID, "dining"))
	assert.Equal(t, 0, f.categoryCount(t, sheetID, "food"))

	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"dining", "fuel"}, names)

	t.Run("onto an existing name", func(t *testing.T) {
		_, err := f.ledger.Categories.Rename(f.ctx, f.user, sheetID, "dining", "fuel")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("missing old name", func(t *testing.T) {
		_, err := f.ledger.Categories.Rename(f.ctx, f.user, sheetID, "ghost", "spirit")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("same name after normalization is a no-op", func(t *testing.T) {
		got, err := f.ledger.Categories.Rename(f.ctx, f.user, sheetID, "DINING", "dining")
		require.NoError(t, err)
		assert.Equal(t, "dining", got)
		assert.Equal(t, n, f.categoryCount(t, sheetID, "dining"))
	})
}

func TestRenameCategoryIsAtomic(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Atomic")
	_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, "food")
	require.NoError(t, err)
	f.expense(t, sheetID, "2024-03-01", "5", "food")
	f.expense(t, sheetID, "2024-03-02", "6", "food")

	// Fail the relabel step after the registry row has been renamed.
	_, err = f.store.DB().ExecContext(f.ctx, `
		CREATE TRIGGER fail_relabel BEFORE UPDATE OF category ON expenses
		WHEN NEW.category = 'dining'
		BEGIN
			SELECT RAISE(ABORT, 'injected failure');
		END`)
	require.NoError(t, err)

	_, err = f.ledger.Categories.Rename(f.ctx, f.user, sheetID, "food", "dining")
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))

	assert.Equal(t, 2, f.categoryCount(t, sheetID, "food"))
	assert.Equal(t, 0, f.categoryCount(t, sheetID, "dining"))

	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, names)
}

func TestRenameCategoryCollisionRollsBack(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Collide")
	_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, "food")
	require.NoError(t, err)
	f.expense(t, sheetID, "2024-03-01", "5", "food")
	// Not registered, so the registry check passes but the relabel collides.
	f.expense(t, sheetID, "2024-03-01", "7", "dining")

	_, err = f.ledger.Categories.Rename(f.ctx, f.user, sheetID, "food", "dining")
	assert.ErrorIs(t, err, ErrDuplicate)

	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, names)
	assert.Equal(t, 1, f.categoryCount(t, sheetID, "food"))
}

func TestDeleteCategory(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Delete")
	for _, name := range []string{"food", "fuel"} {
		_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, name)
		require.NoError(t, err)
	}
	f.expense(t, sheetID, "2024-03-01", "5", "food")
	f.expense(t, sheetID, "2024-03-02", "5", "food")
	f.expense(t, sheetID, "2024-03-03", "5", "food")

	require.NoError(t, f.ledger.Categories.Delete(f.ctx, f.user, sheetID, "FOOD"))

	assert.Equal(t, 3, f.categoryCount(t, sheetID, models.UncategorizedCategory))
	assert.Equal(t, 0, f.categoryCount(t, sheetID, "food"))

	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"fuel"}, names)

	assert.ErrorIs(t, f.ledger.Categories.Delete(f.ctx, f.user, sheetID, "food"), ErrNotFound)
	assert.ErrorIs(t, f.ledger.Categories.Delete(f.ctx, uuid.New(), sheetID, "fuel"), ErrNotFound)
}

func TestDeleteCategoryCollidingWithUncategorized(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Collide")
	_, err := f.ledger.Categories.Create(f.ctx, f.user, sheetID, "food")
	require.NoError(t, err)
	f.expense(t, sheetID, "2024-03-01", "5", "food")
	f.expense(t, sheetID, "2024-03-02", "6", "food")
	f.expense(t, sheetID, "2024-03-01", "9", models.UncategorizedCategory)

	// Two non-zero expenses may not share a cell, so the relabel is refused
	// and nothing changes.
	err = f.ledger.Categories.Delete(f.ctx, f.user, sheetID, "food")
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.Equal(t, 2, f.categoryCount(t, sheetID, "food"))
	assert.Equal(t, 1, f.categoryCount(t, sheetID, models.UncategorizedCategory))
	names, err := f.ledger.Categories.List(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, names)

	// Zero-amount rows relabel freely.
	zero := f.sheet(t, "Zero")
	_, err = f.ledger.Categories.Create(f.ctx, f.user, zero, "food")
	require.NoError(t, err)
	f.expense(t, zero, "2024-03-01", "0", "food")
	f.expense(t, zero, "2024-03-01", "9", models.UncategorizedCategory)
	require.NoError(t, f.ledger.Categories.Delete(f.ctx, f.user, zero, "food"))
	assert.Equal(t, 2, f.categoryCount(t, zero, models.UncategorizedCategory))
}
