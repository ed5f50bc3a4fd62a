package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/estimating"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEstimateRepository implements EstimateRepository using GORM
type GormEstimateRepository struct {
	db *gorm.DB
}

// NewGormEstimateRepository creates a new GormEstimateRepository
func NewGormEstimateRepository(db *gorm.DB) *GormEstimateRepository {
	return &GormEstimateRepository{db: db}
}

var estimateQuery = listQuery{
	searchColumns: []string{"estimate_number", "project_name", "notes"},
	filterColumns: filterColumns("status", "contact_id", "project_id"),
	sortFields:    sortFields("estimate_number", "project_name", "status", "total", "valid_until"),
	defaultOrder:  "created_at DESC",
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// FindByID finds an estimate with its items
func (r *GormEstimateRepository) FindByID(ctx context.Context, id uuid.UUID) (*estimating.Estimate, error) {
	var e estimating.Estimate
	if err := conn(ctx, r.db).Preload("Items", orderedItems).First(&e, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

// FindAll finds estimates matching the filter
func (r *GormEstimateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]estimating.Estimate, error) {
	var list []estimating.Estimate
	query := estimateQuery.applyFilter(conn(ctx, r.db), filter)
	if err := query.Preload("Items", orderedItems).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts estimates matching the filter
func (r *GormEstimateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := estimateQuery.applyFilterWithoutPagination(conn(ctx, r.db).Model(&estimating.Estimate{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves the estimate and replaces its items
func (r *GormEstimateRepository) Save(ctx context.Context, e *estimating.Estimate) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(e).Error; err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(e.Items))
		for i := range e.Items {
			e.Items[i].EstimateID = e.ID
			ids[i] = e.Items[i].ID
		}
		if err := pruneChildren(tx, &estimating.EstimateItem{}, "estimate_id", e.ID, ids); err != nil {
			return err
		}
		for i := range e.Items {
			if err := tx.Save(&e.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete deletes an estimate and its items
func (r *GormEstimateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("estimate_id = ?", id).Delete(&estimating.EstimateItem{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &estimating.Estimate{}, id)
	})
	return translateError(err)
}

var _ estimating.EstimateRepository = (*GormEstimateRepository)(nil)
