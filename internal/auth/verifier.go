package auth

import (
	"context"
	"errors"
)

//go:generate mockgen -source=verifier.go -destination=verifier_mock.go -package=auth

// ErrInvalidIdentity is returned when an identity token cannot be verified.
var ErrInvalidIdentity = errors.New("invalid identity token")

// Identity is a verified external identity.
type Identity struct {
	// Subject is the provider's stable user ID.
	Subject string
	Email   string
	Name    string
	Picture string
}

// Verifier checks an identity token issued by an external provider.
type Verifier interface {
	// Verify returns the identity carried by token, or an error wrapping
	// ErrInvalidIdentity when the token is rejected.
	Verify(ctx context.Context, token string) (*Identity, error)
}
