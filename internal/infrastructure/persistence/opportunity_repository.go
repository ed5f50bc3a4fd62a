package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/sales"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOpportunityRepository implements OpportunityRepository using GORM
type GormOpportunityRepository struct {
	db *gorm.DB
}

// NewGormOpportunityRepository creates a new GormOpportunityRepository
func NewGormOpportunityRepository(db *gorm.DB) *GormOpportunityRepository {
	return &GormOpportunityRepository{db: db}
}

var opportunityQuery = listQuery{
	searchColumns: []string{"name", "owner", "notes"},
	filterColumns: filterColumns("stage", "contact_id", "owner"),
	sortFields:    sortFields("name", "stage", "estimated_value", "probability", "expected_close_date"),
	defaultOrder:  "expected_close_date ASC, created_at DESC",
	rangeFilters: map[string]string{
		"close_from": "expected_close_date >= ?",
		"close_to":   "expected_close_date <= ?",
	},
}

// FindByID finds an opportunity by ID
func (r *GormOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Opportunity, error) {
	var o sales.Opportunity
	if err := conn(ctx, r.db).First(&o, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &o, nil
}

// FindAll finds opportunities matching the filter
func (r *GormOpportunityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Opportunity, error) {
	var list []sales.Opportunity
	if err := opportunityQuery.applyFilter(conn(ctx, r.db), filter).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts opportunities matching the filter
func (r *GormOpportunityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := opportunityQuery.applyFilterWithoutPagination(conn(ctx, r.db).Model(&sales.Opportunity{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an opportunity
func (r *GormOpportunityRepository) Save(ctx context.Context, o *sales.Opportunity) error {
	return translateError(conn(ctx, r.db).Save(o).Error)
}

// Delete deletes an opportunity
func (r *GormOpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(deleteByID(conn(ctx, r.db), &sales.Opportunity{}, id))
}

// StageTotals sums opportunities per stage; stages without opportunities are omitted
func (r *GormOpportunityRepository) StageTotals(ctx context.Context, filter shared.Filter) ([]sales.StageTotal, error) {
	var rows []struct {
		Stage         sales.Stage
		Count         int64
		Value         decimal.Decimal
		WeightedValue decimal.Decimal
	}
	query := opportunityQuery.applyFilterWithoutPagination(conn(ctx, r.db).Model(&sales.Opportunity{}), filter)
	err := query.
		Select("stage, COUNT(*) as count, " +
			"COALESCE(SUM(estimated_value), 0) as value, " +
			"COALESCE(SUM(estimated_value * probability / 100.0), 0) as weighted_value").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]sales.StageTotal, len(rows))
	for i, row := range rows {
		out[i] = sales.StageTotal{
			Stage:         row.Stage,
			Count:         row.Count,
			Value:         row.Value,
			WeightedValue: row.WeightedValue.Round(2),
		}
	}
	return out, nil
}

var _ sales.OpportunityRepository = (*GormOpportunityRepository)(nil)
