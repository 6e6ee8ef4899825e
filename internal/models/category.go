package models

import "github.com/google/uuid"

// SheetCategory is one entry in a sheet's curated category list.
type SheetCategory struct {
	ID      uuid.UUID
	SheetID uuid.UUID
	Name    string

	// DisplayOrder sorts ascending; nil sorts last.
	DisplayOrder *int

	CreatedAt int64
}
