package auth

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier verifies Google Sign-In ID tokens for one OAuth client.
type GoogleVerifier struct {
	validator *idtoken.Validator
	clientID  string
}

// NewGoogleVerifier creates a verifier that accepts tokens issued to clientID.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create token validator: %w", err)
	}
	return &GoogleVerifier{validator: validator, clientID: clientID}, nil
}

// Verify validates the token signature, audience and expiry, then extracts
// the identity claims. Unverified email addresses are rejected.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := v.validator.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	return identityFromClaims(payload.Subject, payload.Claims)
}

func identityFromClaims(subject string, claims map[string]any) (*Identity, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidIdentity)
	}

	email, _ := claims["email"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: missing email", ErrInvalidIdentity)
	}
	if verified, ok := claims["email_verified"].(bool); ok && !verified {
		return nil, fmt.Errorf("%w: email not verified", ErrInvalidIdentity)
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &Identity{
		Subject: subject,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
