package ledger

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseUniqueness(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Cells")

	first := f.expense(t, sheetID, "2024-03-05", "12.50", "Food")
	assert.Equal(t, "food", first.Category)
	assert.Equal(t, int64(1), first.Version)

	_, err := f.ledger.Expenses.Create(f.ctx, f.user, input(t, sheetID, "2024-03-05", "3", " FOOD "))
	assert.ErrorIs(t, err, ErrDuplicate)

	// Same cell on another sheet is fine.
	other := f.sheet(t, "Other")
	f.expense(t, other, "2024-03-05", "3", "food")
}

func TestZeroAmountExemption(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Placeholders")

	for i := 0; i < 3; i++ {
		f.expense(t, sheetID, "2024-03-05", "0", "food")
	}

	list, err := f.ledger.Expenses.List(f.ctx, f.user, ListFilter{SheetID: &sheetID})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCreateExpenseValidation(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Validation")

	tests := []struct {
		name   string
		mutate func(in *ExpenseInput)
		want   error
	}{
		{"future date", func(in *ExpenseInput) { in.Date = in.Date.AddDays(30) }, ErrInvalidArgument},
		{"sub-cent amount", func(in *ExpenseInput) { in.Amount = decimal.RequireFromString("1.005") }, ErrInvalidArgument},
		{"blank category", func(in *ExpenseInput) { in.Category = "   " }, ErrInvalidArgument},
		{"long note", func(in *ExpenseInput) { in.Note = strings.Repeat("n", 1001) }, ErrInvalidArgument},
		{"missing sheet", func(in *ExpenseInput) { in.SheetID = uuid.Nil }, ErrInvalidArgument},
		{"unknown sheet", func(in *ExpenseInput) { in.SheetID = uuid.New() }, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input(t, sheetID, "2024-03-10", "1", "misc")
			tt.mutate(&in)
			_, err := f.ledger.Expenses.Create(f.ctx, f.user, in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("today and negative amounts are fine", func(t *testing.T) {
		f.expense(t, sheetID, "2024-03-15", "-20.25", "refund")
	})
}

func TestCreateExpenseOnForeignSheet(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Mine")

	_, err := f.ledger.Expenses.Create(f.ctx, uuid.New(), input(t, sheetID, "2024-03-01", "1", "food"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateExpense(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Updates")
	e := f.expense(t, sheetID, "2024-03-01", "10", "food")
	f.expense(t, sheetID, "2024-03-02", "10", "food")

	t.Run("same cell does not collide with itself", func(t *testing.T) {
		in := input(t, sheetID, "2024-03-01", "11", "food")
		in.Note = "lunch"
		in.Version = 1
		updated, err := f.ledger.Expenses.Update(f.ctx, f.user, e.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "11", updated.Amount.String())
		assert.Equal(t, int64(2), updated.Version)
	})

	t.Run("moving onto an occupied cell is a duplicate", func(t *testing.T) {
		in := input(t, sheetID, "2024-03-02", "11", "food")
		in.Version = 2
		_, err := f.ledger.Expenses.Update(f.ctx, f.user, e.ID, in)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("zero amounts may move onto an occupied cell", func(t *testing.T) {
		z := f.expense(t, sheetID, "2024-03-03", "0", "food")
		in := input(t, sheetID, "2024-03-02", "0", "food")
		in.Version = z.Version
		_, err := f.ledger.Expenses.Update(f.ctx, f.user, z.ID, in)
		assert.NoError(t, err)
	})

	t.Run("zero expense gaining an amount checks its cell", func(t *testing.T) {
		a := f.expense(t, sheetID, "2024-03-05", "0", "food")
		b := f.expense(t, sheetID, "2024-03-05", "0", "food")

		in := input(t, sheetID, "2024-03-05", "8", "food")
		in.Version = a.Version
		_, err := f.ledger.Expenses.Update(f.ctx, f.user, a.ID, in)
		assert.ErrorIs(t, err, ErrDuplicate)

		_, err = f.ledger.Expenses.Create(f.ctx, f.user, input(t, sheetID, "2024-03-05", "8", "food"))
		assert.ErrorIs(t, err, ErrDuplicate)

		require.NoError(t, f.ledger.Expenses.Delete(f.ctx, f.user, b.ID))
		updated, err := f.ledger.Expenses.Update(f.ctx, f.user, a.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "8", updated.Amount.String())
	})

	t.Run("version is required", func(t *testing.T) {
		_, err := f.ledger.Expenses.Update(f.ctx, f.user, e.ID, input(t, sheetID, "2024-03-01", "1", "food"))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown expense", func(t *testing.T) {
		in := input(t, sheetID, "2024-03-01", "1", "food")
		in.Version = 1
		_, err := f.ledger.Expenses.Update(f.ctx, f.user, uuid.New(), in)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOptimisticConcurrency(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Race")
	e := f.expense(t, sheetID, "2024-03-01", "10", "food")

	first := input(t, sheetID, "2024-03-01", "20", "food")
	first.Version = e.Version
	second := input(t, sheetID, "2024-03-01", "30", "food")
	second.Version = e.Version

	_, err := f.ledger.Expenses.Update(f.ctx, f.user, e.ID, first)
	require.NoError(t, err)

	_, err = f.ledger.Expenses.Update(f.ctx, f.user, e.ID, second)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := f.ledger.Expenses.Get(f.ctx, f.user, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "20", got.Amount.String())
}

func TestConcurrentUpdatesOneWins(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Race")
	e := f.expense(t, sheetID, "2024-03-01", "10", "food")

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := input(t, sheetID, "2024-03-01", decimal.NewFromInt(int64(100+i)).String(), "food")
			in.Version = e.Version
			_, err := f.ledger.Expenses.Update(f.ctx, f.user, e.ID, in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case KindOf(err) == KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, writers-1, conflicts)
}

func TestDeleteExpense(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Delete")
	e := f.expense(t, sheetID, "2024-03-01", "10", "food")

	assert.ErrorIs(t, f.ledger.Expenses.Delete(f.ctx, uuid.New(), e.ID), ErrNotFound)
	require.NoError(t, f.ledger.Expenses.Delete(f.ctx, f.user, e.ID))
	assert.ErrorIs(t, f.ledger.Expenses.Delete(f.ctx, f.user, e.ID), ErrNotFound)
}

func TestDeleteExpenseWithAnnotations(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Delete")
	e := f.expense(t, sheetID, "2024-03-01", "10", "food")
	other := f.expense(t, sheetID, "2024-03-02", "3", "food")
	for _, column := range []string{"notes", "receipt"} {
		_, err := f.ledger.Annotations.Save(f.ctx, f.user, e.ID, column, "text")
		require.NoError(t, err)
	}
	_, err := f.ledger.Annotations.Save(f.ctx, f.user, other.ID, "", "kept")
	require.NoError(t, err)

	_, err = f.ledger.Expenses.DeleteWithAnnotations(f.ctx, uuid.New(), e.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := f.ledger.Expenses.DeleteWithAnnotations(f.ctx, f.user, e.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, err := f.ledger.Annotations.ListByUser(f.ctx, f.user)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].ExpenseID)

	_, err = f.ledger.Expenses.DeleteWithAnnotations(f.ctx, f.user, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteExpenseWithAnnotationsIsAtomic(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Atomic")
	e := f.expense(t, sheetID, "2024-03-01", "10", "food")
	_, err := f.ledger.Annotations.Save(f.ctx, f.user, e.ID, "", "receipt lost")
	require.NoError(t, err)

	_, err = f.store.DB().ExecContext(f.ctx, `
		CREATE TRIGGER fail_annotation_delete BEFORE DELETE ON cell_annotations
		BEGIN
			SELECT RAISE(ABORT, 'injected failure');
		END`)
	require.NoError(t, err)

	_, err = f.ledger.Expenses.DeleteWithAnnotations(f.ctx, f.user, e.ID)
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))

	_, err = f.ledger.Expenses.Get(f.ctx, f.user, e.ID)
	assert.NoError(t, err)
	left, err := f.ledger.Annotations.ListByUser(f.ctx, f.user)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestListExpenseFilters(t *testing.T) {
	f := newFixture(t)
	a := f.sheet(t, "A")
	b := f.sheet(t, "B")
	f.expense(t, a, "2023-12-31", "1", "x")
	f.expense(t, a, "2024-01-01", "2", "x")
	f.expense(t, a, "2024-02-29", "3", "x")
	f.expense(t, b, "2024-02-01", "4", "x")

	tests := []struct {
		name   string
		filter ListFilter
		want   int
	}{
		{"unbounded", ListFilter{}, 4},
		{"sheet only", ListFilter{SheetID: &a}, 3},
		{"month across sheets", ListFilter{Month: "2024-02"}, 2},
		{"month on sheet", ListFilter{SheetID: &a, Month: "2024-02"}, 1},
		{"year", ListFilter{SheetID: &a, Year: "2024"}, 2},
		{"month and year intersect", ListFilter{Month: "2024-01", Year: "2024"}, 1},
		{"month outside year", ListFilter{Month: "2023-12", Year: "2024"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ledger.Expenses.List(f.ctx, f.user, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	_, err := f.ledger.Expenses.List(f.ctx, f.user, ListFilter{Month: "2024-13"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSheetSummary(t *testing.T) {
	f := newFixture(t)
	sheetID := f.sheet(t, "Summary")
	f.expense(t, sheetID, "2024-01-05", "10.10", "food")
	f.expense(t, sheetID, "2024-01-06", "0.20", "food")
	f.expense(t, sheetID, "2024-02-01", "5", "fuel")

	summary, err := f.ledger.Expenses.Summary(f.ctx, f.user, sheetID)
	require.NoError(t, err)
	assert.Equal(t, "15.3", summary.Total.String())
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "food", summary.Categories[0].Category)
	assert.Equal(t, "10.3", summary.Categories[0].Total.String())

	_, err = f.ledger.Expenses.Summary(f.ctx, uuid.New(), sheetID)
	assert.ErrorIs(t, err, ErrNotFound)
}
