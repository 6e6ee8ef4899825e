package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/middleware"
	"github.com/mmynk/sheetledger/pkg/api"
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	expenses *ledger.ExpenseManager
	logger   *slog.Logger
}

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenses *ledger.ExpenseManager, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{expenses: expenses, logger: logger}
}

// ListExpenses returns the caller's expenses, optionally narrowed to one
// sheet, one month and one year.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID := middleware.GetUserID(ctx)

	expenses, err := s.expenses.List(ctx, userID, ledger.ListFilter{
		SheetID: req.Msg.SheetID,
		Month:   req.Msg.Month,
		Year:    req.Msg.Year,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "ListExpenses", err)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: toAPIExpenses(expenses)}), nil
}

// GetExpense returns one expense.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)

	expense, err := s.expenses.Get(ctx, userID, req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetExpense", err)
	}
	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// CreateExpense records a new expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	s.logger.Debug("CreateExpense request received",
		"user_id", userID,
		"sheet_id", req.Msg.SheetID,
		"date", req.Msg.Date,
		"category", req.Msg.Category,
	)

	expense, err := s.expenses.Create(ctx, userID, ledger.ExpenseInput{
		SheetID:  req.Msg.SheetID,
		Date:     req.Msg.Date,
		Amount:   req.Msg.Amount,
		Category: req.Msg.Category,
		Note:     req.Msg.Note,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "CreateExpense", err)
	}
	return connect.NewResponse(&api.CreateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// UpdateExpense overwrites an expense at the version the client last saw.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	s.logger.Debug("UpdateExpense request received",
		"user_id", userID,
		"expense_id", req.Msg.ExpenseID,
		"version", req.Msg.Version,
	)

	expense, err := s.expenses.Update(ctx, userID, req.Msg.ExpenseID, ledger.ExpenseInput{
		SheetID:  req.Msg.SheetID,
		Date:     req.Msg.Date,
		Amount:   req.Msg.Amount,
		Category: req.Msg.Category,
		Note:     req.Msg.Note,
		Version:  req.Msg.Version,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateExpense", err)
	}
	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// DeleteExpense deletes an expense together with its descriptions.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	n, err := s.expenses.DeleteWithAnnotations(ctx, middleware.GetUserID(ctx), req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(s.logger, "DeleteExpense", err)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{DescriptionsDeleted: n}), nil
}
