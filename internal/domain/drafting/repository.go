package drafting

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// DrawingRepository defines persistence operations for drawings and their workflow history.
// FindAll and Count accept the "project_id", "status" and "discipline" filter keys.
type DrawingRepository interface {
	shared.Repository[Drawing]
	AppendHistory(ctx context.Context, entry *DrawingWorkflowEntry) error
	FindHistory(ctx context.Context, drawingID uuid.UUID) ([]DrawingWorkflowEntry, error)
}
