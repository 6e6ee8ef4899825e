package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/middleware"
	"github.com/mmynk/sheetledger/pkg/api"
)

// CategoryService implements the Connect CategoryService.
type CategoryService struct {
	categories *ledger.CategoryRegistry
	logger     *slog.Logger
}

var _ api.CategoryServiceHandler = (*CategoryService)(nil)

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories *ledger.CategoryRegistry, logger *slog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

// ListCategories returns the sheet's categories.
func (s *CategoryService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	userID := middleware.GetUserID(ctx)

	names, err := s.categories.List(ctx, userID, req.Msg.SheetID)
	if err != nil {
		return nil, toConnectError(s.logger, "ListCategories", err)
	}
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: names}), nil
}

// CreateCategory adds a category to the end of the sheet's list.
func (s *CategoryService) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	userID := middleware.GetUserID(ctx)

	name, err := s.categories.Create(ctx, userID, req.Msg.SheetID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(s.logger, "CreateCategory", err)
	}
	return connect.NewResponse(&api.CreateCategoryResponse{Name: name}), nil
}

// RenameCategory renames a category and relabels its expenses.
func (s *CategoryService) RenameCategory(ctx context.Context, req *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error) {
	userID := middleware.GetUserID(ctx)

	name, err := s.categories.Rename(ctx, userID, req.Msg.SheetID, req.Msg.OldName, req.Msg.NewName)
	if err != nil {
		return nil, toConnectError(s.logger, "RenameCategory", err)
	}
	return connect.NewResponse(&api.RenameCategoryResponse{Name: name}), nil
}

// DeleteCategory removes a category; its expenses become uncategorized.
func (s *CategoryService) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	userID := middleware.GetUserID(ctx)

	if err := s.categories.Delete(ctx, userID, req.Msg.SheetID, req.Msg.Name); err != nil {
		return nil, toConnectError(s.logger, "DeleteCategory", err)
	}
	return connect.NewResponse(&api.DeleteCategoryResponse{}), nil
}
