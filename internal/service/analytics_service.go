package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/middleware"
	"github.com/mmynk/sheetledger/pkg/api"
)

// AnalyticsService implements the Connect AnalyticsService.
type AnalyticsService struct {
	analytics *ledger.AnalyticsEngine
	expenses  *ledger.ExpenseManager
	logger    *slog.Logger
}

var _ api.AnalyticsServiceHandler = (*AnalyticsService)(nil)

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(analytics *ledger.AnalyticsEngine, expenses *ledger.ExpenseManager, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, expenses: expenses, logger: logger}
}

// GetAnalytics returns the totals of one sheet over a month, a year, or the
// current month when neither is given.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, req *connect.Request[api.GetAnalyticsRequest]) (*connect.Response[api.GetAnalyticsResponse], error) {
	userID := middleware.GetUserID(ctx)

	result, err := s.analytics.Compute(ctx, userID, ledger.AnalyticsQuery{
		SheetID: req.Msg.SheetID,
		Month:   req.Msg.Month,
		Year:    req.Msg.Year,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "GetAnalytics", err)
	}

	return connect.NewResponse(&api.GetAnalyticsResponse{
		From:                result.Window.From,
		To:                  result.Window.To,
		CategoryTotals:      bucketTotals(result.CategoryTotals),
		DailyTotals:         bucketTotals(result.DailyTotals),
		MonthlyTotals:       bucketTotals(result.MonthlyTotals),
		CurrentPeriodTotal:  result.CurrentTotal,
		PreviousPeriodTotal: result.PreviousTotal,
		Categories:          result.Categories,
	}), nil
}

// GetSheetSummary returns the all-time total of a sheet and its
// per-category subtotals.
func (s *AnalyticsService) GetSheetSummary(ctx context.Context, req *connect.Request[api.GetSheetSummaryRequest]) (*connect.Response[api.GetSheetSummaryResponse], error) {
	userID := middleware.GetUserID(ctx)

	summary, err := s.expenses.Summary(ctx, userID, req.Msg.SheetID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetSheetSummary", err)
	}

	return connect.NewResponse(&api.GetSheetSummaryResponse{
		Total:          summary.Total,
		CategoryTotals: categoryTotals(summary.Categories),
	}), nil
}
