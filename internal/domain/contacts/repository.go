package contacts

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// FilterTag is the filter key matching contacts that carry a tag
const FilterTag = "tag"

// ContactRepository defines persistence operations for contacts.
// FindAll and Count accept the "type", "status" and FilterTag filter keys.
type ContactRepository interface {
	shared.Repository[Contact]
	// FindByIDs returns the contacts with the given IDs; missing IDs are skipped
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Contact, error)
}
