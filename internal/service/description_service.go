package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/middleware"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/pkg/api"
)

// DescriptionService implements the Connect DescriptionService on top of
// the annotation store.
type DescriptionService struct {
	annotations *ledger.AnnotationStore
	logger      *slog.Logger
}

var _ api.DescriptionServiceHandler = (*DescriptionService)(nil)

// NewDescriptionService creates a new DescriptionService.
func NewDescriptionService(annotations *ledger.AnnotationStore, logger *slog.Logger) *DescriptionService {
	return &DescriptionService{annotations: annotations, logger: logger}
}

// ListDescriptions returns the caller's descriptions on the requested
// expenses, or all of them when no expense is named.
func (s *DescriptionService) ListDescriptions(ctx context.Context, req *connect.Request[api.ListDescriptionsRequest]) (*connect.Response[api.ListDescriptionsResponse], error) {
	userID := middleware.GetUserID(ctx)

	var (
		annotations []models.Annotation
		err         error
	)
	if len(req.Msg.ExpenseIDs) == 0 {
		annotations, err = s.annotations.ListByUser(ctx, userID)
	} else {
		annotations, err = s.annotations.List(ctx, userID, req.Msg.ExpenseIDs, req.Msg.ColumnName)
	}
	if err != nil {
		return nil, toConnectError(s.logger, "ListDescriptions", err)
	}
	return connect.NewResponse(&api.ListDescriptionsResponse{Descriptions: toAPIDescriptions(annotations)}), nil
}

// SaveDescription creates or overwrites the description on one cell.
func (s *DescriptionService) SaveDescription(ctx context.Context, req *connect.Request[api.SaveDescriptionRequest]) (*connect.Response[api.SaveDescriptionResponse], error) {
	userID := middleware.GetUserID(ctx)

	annotation, err := s.annotations.Save(ctx, userID, req.Msg.ExpenseID, req.Msg.ColumnName, req.Msg.Description)
	if err != nil {
		return nil, toConnectError(s.logger, "SaveDescription", err)
	}
	return connect.NewResponse(&api.SaveDescriptionResponse{Description: toAPIDescription(annotation)}), nil
}

// DeleteDescription deletes one description by ID.
func (s *DescriptionService) DeleteDescription(ctx context.Context, req *connect.Request[api.DeleteDescriptionRequest]) (*connect.Response[api.DeleteDescriptionResponse], error) {
	userID := middleware.GetUserID(ctx)

	if err := s.annotations.DeleteByID(ctx, userID, req.Msg.DescriptionID); err != nil {
		return nil, toConnectError(s.logger, "DeleteDescription", err)
	}
	return connect.NewResponse(&api.DeleteDescriptionResponse{}), nil
}

// DeleteExpenseDescriptions deletes the descriptions of one expense, or only
// the one in the named column.
func (s *DescriptionService) DeleteExpenseDescriptions(ctx context.Context, req *connect.Request[api.DeleteExpenseDescriptionsRequest]) (*connect.Response[api.DeleteExpenseDescriptionsResponse], error) {
	userID := middleware.GetUserID(ctx)

	var (
		n   int64
		err error
	)
	if req.Msg.ColumnName == "" {
		n, err = s.annotations.DeleteByExpenseID(ctx, userID, req.Msg.ExpenseID)
	} else {
		n, err = s.annotations.DeleteByExpenseIDAndColumn(ctx, userID, req.Msg.ExpenseID, req.Msg.ColumnName)
	}
	if err != nil {
		return nil, toConnectError(s.logger, "DeleteExpenseDescriptions", err)
	}
	return connect.NewResponse(&api.DeleteExpenseDescriptionsResponse{Deleted: n}), nil
}
