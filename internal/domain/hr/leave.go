package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// LeaveType classifies time off
type LeaveType string

const (
	LeaveTypeVacation LeaveType = "VACATION"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypePersonal LeaveType = "PERSONAL"
	LeaveTypeUnpaid   LeaveType = "UNPAID"
)

// LeaveTypes lists every leave type in display order
var LeaveTypes = []LeaveType{LeaveTypeVacation, LeaveTypeSick, LeaveTypePersonal, LeaveTypeUnpaid}

// IsValid checks if the leave type is valid
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeVacation, LeaveTypeSick, LeaveTypePersonal, LeaveTypeUnpaid:
		return true
	}
	return false
}

// DefaultEntitlement is the yearly allowance in days for a new balance
func DefaultEntitlement(t LeaveType) int {
	switch t {
	case LeaveTypeVacation:
		return 15
	case LeaveTypeSick:
		return 10
	case LeaveTypePersonal:
		return 3
	}
	return 0
}

// LeaveStatus represents the approval state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return true
	}
	return false
}

// CalculateBusinessDays counts Monday to Friday days from start to end, both inclusive.
// It returns 0 when end is before start.
func CalculateBusinessDays(start, end time.Time) int {
	start, end = shared.TruncateToDay(start), shared.TruncateToDay(end)
	if end.Before(start) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// LeaveRequest is an employee's request for time off
type LeaveRequest struct {
	shared.BaseAggregateRoot
	EmployeeID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	LeaveType       LeaveType   `gorm:"type:varchar(20);not null;index"`
	StartDate       time.Time   `gorm:"type:date;not null"`
	EndDate         time.Time   `gorm:"type:date;not null"`
	TotalDays       int         `gorm:"not null"`
	Status          LeaveStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Reason          string      `gorm:"type:varchar(500)"`
	ApprovedBy      string      `gorm:"type:varchar(100)"`
	RejectionReason string      `gorm:"type:varchar(500)"`
	DecidedAt       *time.Time
}

// TableName returns the table name for GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// NewLeaveRequest creates a pending request covering start to end
func NewLeaveRequest(employeeID uuid.UUID, leaveType LeaveType, start, end time.Time, reason string) (*LeaveRequest, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Leave request requires an employee")
	}
	if !leaveType.IsValid() {
		return nil, shared.NewDomainError("INVALID_LEAVE_TYPE", "Invalid leave type")
	}
	start, end = shared.TruncateToDay(start), shared.TruncateToDay(end)
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot be before start date")
	}
	days := CalculateBusinessDays(start, end)
	if days == 0 {
		return nil, shared.NewDomainError("INVALID_LEAVE_PERIOD", "Leave request must cover at least one business day")
	}

	r := &LeaveRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		LeaveType:         leaveType,
		StartDate:         start,
		EndDate:           end,
		TotalDays:         days,
		Status:            LeaveStatusPending,
		Reason:            strings.TrimSpace(reason),
	}
	r.AddDomainEvent(NewLeaveRequestEvent(EventTypeLeaveRequested, r))
	return r, nil
}

// Year is the leave year charged by the request
func (r *LeaveRequest) Year() int {
	return r.StartDate.Year()
}

func (r *LeaveRequest) decide(next LeaveStatus) error {
	if r.Status != LeaveStatusPending {
		return shared.InvalidTransition("leave request", string(r.Status), string(next))
	}
	now := time.Now()
	r.Status = next
	r.DecidedAt = &now
	r.IncrementVersion()
	return nil
}

// Approve grants the request
func (r *LeaveRequest) Approve(approver string) error {
	if err := r.decide(LeaveStatusApproved); err != nil {
		return err
	}
	r.ApprovedBy = approver
	r.AddDomainEvent(NewLeaveRequestEvent(EventTypeLeaveApproved, r))
	return nil
}

// Reject declines the request
func (r *LeaveRequest) Reject(approver, reason string) error {
	if err := r.decide(LeaveStatusRejected); err != nil {
		return err
	}
	r.ApprovedBy = approver
	r.RejectionReason = strings.TrimSpace(reason)
	r.AddDomainEvent(NewLeaveRequestEvent(EventTypeLeaveRejected, r))
	return nil
}

// Cancel withdraws a pending request
func (r *LeaveRequest) Cancel() error {
	if err := r.decide(LeaveStatusCancelled); err != nil {
		return err
	}
	r.AddDomainEvent(NewLeaveRequestEvent(EventTypeLeaveCancelled, r))
	return nil
}

// LeaveBalance tracks an employee's allowance of one leave type for one year.
// Remaining always equals Entitled - Used - Pending.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_balance_key"`
	Year        int       `gorm:"not null;uniqueIndex:idx_leave_balance_key"`
	LeaveType   LeaveType `gorm:"type:varchar(20);not null;uniqueIndex:idx_leave_balance_key"`
	Entitled    int       `gorm:"not null"`
	Used        int       `gorm:"not null;default:0"`
	Pending     int       `gorm:"not null;default:0"`
	Remaining   int       `gorm:"not null"`
	LastUpdated time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// NewLeaveBalance opens a balance with the default entitlement
func NewLeaveBalance(employeeID uuid.UUID, year int, leaveType LeaveType) *LeaveBalance {
	entitled := DefaultEntitlement(leaveType)
	return &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Year:        year,
		LeaveType:   leaveType,
		Entitled:    entitled,
		Remaining:   entitled,
		LastUpdated: time.Now(),
	}
}

func (b *LeaveBalance) recompute() {
	b.Remaining = b.Entitled - b.Used - b.Pending
	b.LastUpdated = time.Now()
}

// Reserve holds days for a pending request. Unpaid leave is never limited.
func (b *LeaveBalance) Reserve(days int) error {
	if b.LeaveType != LeaveTypeUnpaid && b.Remaining < days {
		return shared.ErrInsufficientBalance
	}
	b.Pending += days
	b.recompute()
	return nil
}

// Commit turns reserved days into used days
func (b *LeaveBalance) Commit(days int) {
	b.Pending -= days
	if b.Pending < 0 {
		b.Pending = 0
	}
	b.Used += days
	b.recompute()
}

// Release returns reserved days to the balance
func (b *LeaveBalance) Release(days int) {
	b.Pending -= days
	if b.Pending < 0 {
		b.Pending = 0
	}
	b.recompute()
}
