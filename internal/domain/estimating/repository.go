package estimating

import "github.com/precast-erp/backend/internal/domain/shared"

// EstimateRepository defines persistence operations for estimates.
// Estimates are loaded and saved together with their items.
// FindAll and Count accept the "status", "contact_id" and "project_id" filter keys.
type EstimateRepository interface {
	shared.Repository[Estimate]
}
