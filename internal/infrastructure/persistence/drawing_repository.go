package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/drafting"
	"gorm.io/gorm"
)

// GormDrawingRepository implements DrawingRepository using GORM
type GormDrawingRepository struct {
	crudRepository[drafting.Drawing]
}

// NewGormDrawingRepository creates a new GormDrawingRepository
func NewGormDrawingRepository(db *gorm.DB) *GormDrawingRepository {
	return &GormDrawingRepository{newCRUDRepository[drafting.Drawing](db, drawingQuery)}
}

var drawingQuery = listQuery{
	searchColumns: []string{"drawing_number", "title", "assigned_to"},
	filterColumns: filterColumns("project_id", "status", "discipline"),
	sortFields:    sortFields("drawing_number", "title", "discipline", "status", "revision"),
	defaultOrder:  "drawing_number ASC",
}

// Delete deletes a drawing and its workflow history
func (r *GormDrawingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("drawing_id = ?", id).Delete(&drafting.DrawingWorkflowEntry{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &drafting.Drawing{}, id)
	})
	return translateError(err)
}

// AppendHistory records a workflow step
func (r *GormDrawingRepository) AppendHistory(ctx context.Context, entry *drafting.DrawingWorkflowEntry) error {
	return conn(ctx, r.db).Create(entry).Error
}

// FindHistory returns the workflow steps of a drawing, oldest first
func (r *GormDrawingRepository) FindHistory(ctx context.Context, drawingID uuid.UUID) ([]drafting.DrawingWorkflowEntry, error) {
	var entries []drafting.DrawingWorkflowEntry
	if err := conn(ctx, r.db).Where("drawing_id = ?", drawingID).Order("at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

var _ drafting.DrawingRepository = (*GormDrawingRepository)(nil)
