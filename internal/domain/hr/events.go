package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypeLeaveRequest = "LeaveRequest"
	AggregateTypeTimesheet    = "Timesheet"

	EventTypeLeaveRequested     = "LeaveRequested"
	EventTypeLeaveApproved      = "LeaveApproved"
	EventTypeLeaveRejected      = "LeaveRejected"
	EventTypeLeaveCancelled     = "LeaveCancelled"
	EventTypeTimesheetSubmitted = "TimesheetSubmitted"
	EventTypeTimesheetApproved  = "TimesheetApproved"
	EventTypeTimesheetRejected  = "TimesheetRejected"
)

// LeaveRequestEvent is raised at each step of a leave request
type LeaveRequestEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID   `json:"employee_id"`
	LeaveType  LeaveType   `json:"leave_type"`
	TotalDays  int         `json:"total_days"`
	Status     LeaveStatus `json:"status"`
}

// NewLeaveRequestEvent creates a LeaveRequestEvent
func NewLeaveRequestEvent(eventType string, r *LeaveRequest) *LeaveRequestEvent {
	return &LeaveRequestEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeLeaveRequest, r.ID),
		EmployeeID:      r.EmployeeID,
		LeaveType:       r.LeaveType,
		TotalDays:       r.TotalDays,
		Status:          r.Status,
	}
}

// TimesheetEvent is raised when a timesheet is submitted or decided
type TimesheetEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID       `json:"employee_id"`
	WeekStart  time.Time       `json:"week_start"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// NewTimesheetEvent creates a TimesheetEvent
func NewTimesheetEvent(eventType string, t *Timesheet) *TimesheetEvent {
	return &TimesheetEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeTimesheet, t.ID),
		EmployeeID:      t.EmployeeID,
		WeekStart:       t.WeekStart,
		TotalHours:      t.TotalHours,
	}
}
