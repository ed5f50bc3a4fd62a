package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// ProjectRepository defines persistence operations for projects.
// FindAll and Count accept the "status" and "contact_id" filter keys.
type ProjectRepository interface {
	shared.Repository[Project]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Project, error)
}
