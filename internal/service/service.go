// Package service exposes the ledger over Connect RPC. Handlers read the
// caller's identity from the context, delegate to the ledger managers and
// translate ledger errors into connect codes.
package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/auth"
	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/pkg/api"
)

// Register mounts every ledger service on mux. The handler options (usually
// interceptors) apply to all of them.
func Register(mux *http.ServeMux, l *ledger.Ledger, verifier auth.Verifier, jwtManager *auth.JWTManager, logger *slog.Logger, opts ...connect.HandlerOption) {
	mux.Handle(api.NewSheetServiceHandler(NewSheetService(l.Sheets, logger), opts...))
	mux.Handle(api.NewExpenseServiceHandler(NewExpenseService(l.Expenses, logger), opts...))
	mux.Handle(api.NewCategoryServiceHandler(NewCategoryService(l.Categories, logger), opts...))
	mux.Handle(api.NewAnalyticsServiceHandler(NewAnalyticsService(l.Analytics, l.Expenses, logger), opts...))
	mux.Handle(api.NewDescriptionServiceHandler(NewDescriptionService(l.Annotations, logger), opts...))
	mux.Handle(api.NewAuthServiceHandler(NewAuthService(verifier, l.Accounts, jwtManager, logger), opts...))
}
