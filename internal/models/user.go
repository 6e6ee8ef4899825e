package models

import "github.com/google/uuid"

// DemoUserID owns placeholder data seeded before any real user signs in.
// The first user to sign in may claim it.
var DemoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uuid.UUID

	// Email is the user's email address (globally unique).
	Email string

	// Name is the display name reported by the identity provider.
	Name string

	// Picture is the profile picture URL.
	Picture string

	// Subject is the identity provider's subject ID (globally unique).
	// Empty when the account has not been linked to a provider yet.
	Subject string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a new user with a fresh ID.
func NewUser(email, name, picture, subject string, createdAt int64) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Picture:   picture,
		Subject:   subject,
		CreatedAt: createdAt,
	}
}
