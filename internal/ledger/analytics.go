package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/sheetledger/internal/calculator"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

// AnalyticsQuery selects a sheet and a window. Month ("YYYY-MM") wins over
// Year ("YYYY"); with neither, the current calendar month is used.
type AnalyticsQuery struct {
	SheetID uuid.UUID
	Month   string
	Year    string
}

// Analytics is the computed view of one sheet over one window.
type Analytics struct {
	Window         calculator.Window
	PreviousWindow calculator.Window

	CategoryTotals []calculator.Bucket
	DailyTotals    []calculator.Bucket
	MonthlyTotals  []calculator.Bucket

	CurrentTotal  decimal.Decimal
	PreviousTotal decimal.Decimal

	// Categories is the sheet's full category list, independent of the window.
	Categories []string
}

// AnalyticsEngine computes read-only analytics.
type AnalyticsEngine struct {
	base
}

// Compute builds the analytics for q. The four store reads run
// concurrently.
func (e *AnalyticsEngine) Compute(ctx context.Context, userID uuid.UUID, q AnalyticsQuery) (*Analytics, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	window, err := calculator.Resolve(q.Month, q.Year, e.today())
	if err != nil {
		return nil, invalidArgument("%v", err)
	}
	if _, err := e.store.GetSheet(ctx, userID, q.SheetID); err != nil {
		return nil, fromStore(err, "sheet %s", q.SheetID)
	}

	result := &Analytics{
		Window:         window,
		PreviousWindow: window.Previous(),
	}

	var expenses []models.Expense
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = e.store.ListExpenses(gctx, storage.ExpenseFilter{
			UserID:  userID,
			SheetID: &q.SheetID,
			Range:   toRange(&window),
		})
		return fromStore(err, "list expenses")
	})
	g.Go(func() error {
		var err error
		result.CurrentTotal, err = e.store.SumExpenses(gctx, userID, q.SheetID, toRange(&window))
		return fromStore(err, "sum current period")
	})
	g.Go(func() error {
		var err error
		result.PreviousTotal, err = e.store.SumExpenses(gctx, userID, q.SheetID, toRange(&result.PreviousWindow))
		return fromStore(err, "sum previous period")
	})
	g.Go(func() error {
		var err error
		result.Categories, err = resolveCategories(gctx, e.store, q.SheetID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]calculator.Entry, len(expenses))
	for i, exp := range expenses {
		entries[i] = calculator.Entry{Date: exp.Date, Category: exp.Category, Amount: exp.Amount}
	}
	totals := calculator.Aggregate(entries)
	result.CategoryTotals = totals.ByCategory
	result.DailyTotals = totals.ByDay
	result.MonthlyTotals = totals.ByMonth

	return result, nil
}
