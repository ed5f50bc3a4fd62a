package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTimesheetRepository implements TimesheetRepository using GORM
type GormTimesheetRepository struct {
	db *gorm.DB
}

// NewGormTimesheetRepository creates a new GormTimesheetRepository
func NewGormTimesheetRepository(db *gorm.DB) *GormTimesheetRepository {
	return &GormTimesheetRepository{db: db}
}

var timesheetQuery = listQuery{
	searchColumns: []string{"notes"},
	filterColumns: filterColumns("employee_id", "status"),
	sortFields:    sortFields("week_start", "total_hours", "status"),
	defaultOrder:  "week_start DESC",
	rangeFilters: map[string]string{
		"week_from": "week_start >= ?",
		"week_to":   "week_start <= ?",
	},
}

func orderedEntries(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC")
}

// FindByID finds a timesheet with its entries
func (r *GormTimesheetRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Timesheet, error) {
	var t hr.Timesheet
	if err := conn(ctx, r.db).Preload("Entries", orderedEntries).First(&t, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

// FindAll finds timesheets matching the filter
func (r *GormTimesheetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Timesheet, error) {
	var list []hr.Timesheet
	query := timesheetQuery.applyFilter(conn(ctx, r.db), filter)
	if err := query.Preload("Entries", orderedEntries).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts timesheets matching the filter
func (r *GormTimesheetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := timesheetQuery.applyFilterWithoutPagination(conn(ctx, r.db).Model(&hr.Timesheet{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves the timesheet and replaces its entries
func (r *GormTimesheetRepository) Save(ctx context.Context, t *hr.Timesheet) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Entries").Save(t).Error; err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(t.Entries))
		for i := range t.Entries {
			t.Entries[i].TimesheetID = t.ID
			ids[i] = t.Entries[i].ID
		}
		if err := pruneChildren(tx, &hr.TimesheetEntry{}, "timesheet_id", t.ID, ids); err != nil {
			return err
		}
		for i := range t.Entries {
			if err := tx.Save(&t.Entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete deletes a timesheet and its entries
func (r *GormTimesheetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("timesheet_id = ?", id).Delete(&hr.TimesheetEntry{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &hr.Timesheet{}, id)
	})
	return translateError(err)
}

var _ hr.TimesheetRepository = (*GormTimesheetRepository)(nil)
