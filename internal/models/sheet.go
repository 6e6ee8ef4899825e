package models

import "github.com/google/uuid"

// MaxSheetNameLength is the longest sheet name accepted, in characters.
const MaxSheetNameLength = 100

// Sheet is a named namespace for expenses and categories.
type Sheet struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string

	// PINHash is the bcrypt hash of the access PIN, empty when no PIN is set.
	// It is never exposed outside the ledger.
	PINHash string
	HasPIN  bool

	CreatedAt int64

	// Version is the optimistic concurrency counter. It starts at 1 and is
	// incremented by every successful update.
	Version int64
}
