package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/middleware"
	"github.com/mmynk/sheetledger/pkg/api"
)

// SheetService implements the Connect SheetService.
type SheetService struct {
	sheets *ledger.SheetManager
	logger *slog.Logger
}

var _ api.SheetServiceHandler = (*SheetService)(nil)

// NewSheetService creates a new SheetService backed by the sheet manager.
func NewSheetService(sheets *ledger.SheetManager, logger *slog.Logger) *SheetService {
	return &SheetService{sheets: sheets, logger: logger}
}

// ListSheets returns the caller's sheets with their expense counts.
func (s *SheetService) ListSheets(ctx context.Context, req *connect.Request[api.ListSheetsRequest]) (*connect.Response[api.ListSheetsResponse], error) {
	userID := middleware.GetUserID(ctx)

	sheets, err := s.sheets.List(ctx, userID)
	if err != nil {
		return nil, toConnectError(s.logger, "ListSheets", err)
	}

	out := make([]api.Sheet, len(sheets))
	for i := range sheets {
		out[i] = toAPISheet(&sheets[i])
	}
	return connect.NewResponse(&api.ListSheetsResponse{Sheets: out}), nil
}

// GetSheet returns one sheet.
func (s *SheetService) GetSheet(ctx context.Context, req *connect.Request[api.GetSheetRequest]) (*connect.Response[api.GetSheetResponse], error) {
	userID := middleware.GetUserID(ctx)

	sheet, err := s.sheets.Get(ctx, userID, req.Msg.SheetID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetSheet", err)
	}
	return connect.NewResponse(&api.GetSheetResponse{Sheet: toAPISheet(sheet)}), nil
}

// CreateSheet creates a sheet, optionally protected by a PIN.
func (s *SheetService) CreateSheet(ctx context.Context, req *connect.Request[api.CreateSheetRequest]) (*connect.Response[api.CreateSheetResponse], error) {
	userID := middleware.GetUserID(ctx)
	s.logger.Debug("CreateSheet request received", "user_id", userID, "name", req.Msg.Name)

	sheet, err := s.sheets.Create(ctx, userID, req.Msg.Name, req.Msg.PIN)
	if err != nil {
		return nil, toConnectError(s.logger, "CreateSheet", err)
	}
	return connect.NewResponse(&api.CreateSheetResponse{Sheet: toAPISheet(sheet)}), nil
}

// UpdateSheet renames a sheet and optionally replaces its PIN.
func (s *SheetService) UpdateSheet(ctx context.Context, req *connect.Request[api.UpdateSheetRequest]) (*connect.Response[api.UpdateSheetResponse], error) {
	userID := middleware.GetUserID(ctx)
	s.logger.Debug("UpdateSheet request received", "user_id", userID, "sheet_id", req.Msg.SheetID)

	sheet, err := s.sheets.Update(ctx, userID, req.Msg.SheetID, ledger.SheetUpdate{
		Name:    req.Msg.Name,
		PIN:     req.Msg.PIN,
		Version: req.Msg.Version,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateSheet", err)
	}
	return connect.NewResponse(&api.UpdateSheetResponse{Sheet: toAPISheet(sheet)}), nil
}

// DeleteSheet deletes a sheet and everything on it.
func (s *SheetService) DeleteSheet(ctx context.Context, req *connect.Request[api.DeleteSheetRequest]) (*connect.Response[api.DeleteSheetResponse], error) {
	userID := middleware.GetUserID(ctx)

	if err := s.sheets.Delete(ctx, userID, req.Msg.SheetID); err != nil {
		return nil, toConnectError(s.logger, "DeleteSheet", err)
	}
	return connect.NewResponse(&api.DeleteSheetResponse{}), nil
}

// VerifySheetPin checks a PIN against the sheet's stored hash.
func (s *SheetService) VerifySheetPin(ctx context.Context, req *connect.Request[api.VerifySheetPinRequest]) (*connect.Response[api.VerifySheetPinResponse], error) {
	userID := middleware.GetUserID(ctx)

	valid, err := s.sheets.VerifyPIN(ctx, userID, req.Msg.SheetID, req.Msg.PIN)
	if err != nil {
		return nil, toConnectError(s.logger, "VerifySheetPin", err)
	}
	return connect.NewResponse(&api.VerifySheetPinResponse{Valid: valid}), nil
}
