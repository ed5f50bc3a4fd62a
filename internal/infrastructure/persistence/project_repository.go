package persistence

import (
	"github.com/precast-erp/backend/internal/domain/projects"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	crudRepository[projects.Project]
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{newCRUDRepository[projects.Project](db, projectQuery)}
}

var projectQuery = listQuery{
	searchColumns: []string{"project_number", "name", "location", "project_manager"},
	filterColumns: filterColumns("status", "contact_id"),
	sortFields:    sortFields("project_number", "name", "status", "start_date", "end_date", "budget", "progress"),
	defaultOrder:  "created_at DESC",
}

var _ projects.ProjectRepository = (*GormProjectRepository)(nil)
