package persistence

import (
	"github.com/precast-erp/backend/internal/domain/quality"
	"gorm.io/gorm"
)

// GormInspectionRepository implements InspectionRepository using GORM
type GormInspectionRepository struct {
	crudRepository[quality.Inspection]
}

// NewGormInspectionRepository creates a new GormInspectionRepository
func NewGormInspectionRepository(db *gorm.DB) *GormInspectionRepository {
	return &GormInspectionRepository{newCRUDRepository[quality.Inspection](db, inspectionQuery)}
}

var inspectionQuery = listQuery{
	searchColumns: []string{"inspection_number", "inspector", "notes"},
	filterColumns: filterColumns("project_id", "piece_id", "inspection_type", "status"),
	sortFields:    sortFields("inspection_number", "scheduled_date", "inspected_at", "status", "created_at"),
	defaultOrder:  "created_at DESC",
}

// GormNonConformanceRepository implements NonConformanceRepository using GORM
type GormNonConformanceRepository struct {
	crudRepository[quality.NonConformance]
}

// NewGormNonConformanceRepository creates a new GormNonConformanceRepository
func NewGormNonConformanceRepository(db *gorm.DB) *GormNonConformanceRepository {
	return &GormNonConformanceRepository{newCRUDRepository[quality.NonConformance](db, nonConformanceQuery)}
}

var nonConformanceQuery = listQuery{
	searchColumns: []string{"ncr_number", "description", "corrective_action"},
	filterColumns: filterColumns("project_id", "inspection_id", "severity", "status"),
	sortFields:    sortFields("ncr_number", "severity", "status", "resolved_at", "created_at"),
	defaultOrder:  "created_at DESC",
}

var (
	_ quality.InspectionRepository     = (*GormInspectionRepository)(nil)
	_ quality.NonConformanceRepository = (*GormNonConformanceRepository)(nil)
)
