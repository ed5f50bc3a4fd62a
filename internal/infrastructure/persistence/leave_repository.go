package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/hr"
	"gorm.io/gorm"
)

// GormLeaveRequestRepository implements LeaveRequestRepository using GORM
type GormLeaveRequestRepository struct {
	crudRepository[hr.LeaveRequest]
}

// NewGormLeaveRequestRepository creates a new GormLeaveRequestRepository
func NewGormLeaveRequestRepository(db *gorm.DB) *GormLeaveRequestRepository {
	return &GormLeaveRequestRepository{newCRUDRepository[hr.LeaveRequest](db, leaveRequestQuery)}
}

var leaveRequestQuery = listQuery{
	searchColumns: []string{"reason"},
	filterColumns: filterColumns("employee_id", "status", "leave_type"),
	sortFields:    sortFields("start_date", "end_date", "total_days", "status", "leave_type"),
	defaultOrder:  "start_date DESC",
}

// GormLeaveBalanceRepository implements LeaveBalanceRepository using GORM
type GormLeaveBalanceRepository struct {
	db *gorm.DB
}

// NewGormLeaveBalanceRepository creates a new GormLeaveBalanceRepository
func NewGormLeaveBalanceRepository(db *gorm.DB) *GormLeaveBalanceRepository {
	return &GormLeaveBalanceRepository{db: db}
}

// FindForUpdate loads and row-locks one balance
func (r *GormLeaveBalanceRepository) FindForUpdate(ctx context.Context, employeeID uuid.UUID, year int, leaveType hr.LeaveType) (*hr.LeaveBalance, error) {
	var b hr.LeaveBalance
	err := lockForUpdate(conn(ctx, r.db)).
		Where("employee_id = ? AND year = ? AND leave_type = ?", employeeID, year, leaveType).
		First(&b).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

// FindByEmployeeYear returns the stored balances of an employee for a year
func (r *GormLeaveBalanceRepository) FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]hr.LeaveBalance, error) {
	var list []hr.LeaveBalance
	err := conn(ctx, r.db).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Order("leave_type ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Save creates or updates a balance
func (r *GormLeaveBalanceRepository) Save(ctx context.Context, b *hr.LeaveBalance) error {
	return translateError(conn(ctx, r.db).Save(b).Error)
}

var (
	_ hr.LeaveRequestRepository = (*GormLeaveRequestRepository)(nil)
	_ hr.LeaveBalanceRepository = (*GormLeaveBalanceRepository)(nil)
)
