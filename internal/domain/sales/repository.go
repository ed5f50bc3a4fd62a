package sales

import (
	"context"

	"github.com/precast-erp/backend/internal/domain/shared"
)

// OpportunityRepository defines persistence operations for opportunities.
// FindAll and Count accept the "stage", "contact_id" and "owner" filter keys
// and the "close_from"/"close_to" expected close date range.
type OpportunityRepository interface {
	shared.Repository[Opportunity]
	// StageTotals aggregates the opportunities matching filter by stage.
	// Stages without opportunities are omitted.
	StageTotals(ctx context.Context, filter shared.Filter) ([]StageTotal, error)
}
