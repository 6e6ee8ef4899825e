package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/auth"
	"github.com/mmynk/sheetledger/internal/ledger"
	"github.com/mmynk/sheetledger/internal/middleware"
	"github.com/mmynk/sheetledger/pkg/api"
)

var errSignInDisabled = errors.New("google sign-in is not configured")

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	verifier   auth.Verifier
	accounts   *ledger.Accounts
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

var _ api.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service. A nil verifier
// disables SignInWithGoogle.
func NewAuthService(verifier auth.Verifier, accounts *ledger.Accounts, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		verifier:   verifier,
		accounts:   accounts,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// SignInWithGoogle exchanges a Google ID token for a session token.
func (s *AuthService) SignInWithGoogle(ctx context.Context, req *connect.Request[api.SignInWithGoogleRequest]) (*connect.Response[api.SignInWithGoogleResponse], error) {
	if s.verifier == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errSignInDisabled)
	}
	if req.Msg.IDToken == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidIdentity)
	}

	identity, err := s.verifier.Verify(ctx, req.Msg.IDToken)
	if err != nil {
		s.logger.Warn("Sign-in rejected", "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidIdentity)
	}

	user, err := s.accounts.SignIn(ctx, *identity)
	if err != nil {
		return nil, toConnectError(s.logger, "SignInWithGoogle", err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errInternal)
	}

	s.logger.Info("User signed in", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&api.SignInWithGoogleResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtManager.TokenDuration()).Unix(),
		User:      toAPIUser(user),
	}), nil
}

// Me returns the currently authenticated user's profile.
func (s *AuthService) Me(ctx context.Context, req *connect.Request[api.MeRequest]) (*connect.Response[api.MeResponse], error) {
	userID := middleware.GetUserID(ctx)

	user, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, toConnectError(s.logger, "Me", err)
	}
	return connect.NewResponse(&api.MeResponse{User: toAPIUser(user)}), nil
}
