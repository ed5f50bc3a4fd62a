package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// EmployeeRepository defines persistence operations for employees.
// FindAll and Count accept the "status" and "department" filter keys.
type EmployeeRepository interface {
	shared.Repository[Employee]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Employee, error)
}

// LeaveRequestRepository defines persistence operations for leave requests.
// FindAll and Count accept the "employee_id", "status" and "leave_type" filter keys.
type LeaveRequestRepository interface {
	shared.Repository[LeaveRequest]
}

// LeaveBalanceRepository defines persistence operations for leave balances
type LeaveBalanceRepository interface {
	// FindForUpdate loads and locks one balance. It returns shared.ErrNotFound when none exists.
	FindForUpdate(ctx context.Context, employeeID uuid.UUID, year int, leaveType LeaveType) (*LeaveBalance, error)
	FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error)
	Save(ctx context.Context, balance *LeaveBalance) error
}

// TimesheetRepository defines persistence operations for timesheets.
// FindAll and Count accept the "employee_id" and "status" filter keys plus
// "week_from" and "week_to" date bounds.
type TimesheetRepository interface {
	shared.Repository[Timesheet]
}
