package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest represents a request to hire an employee
type CreateEmployeeRequest struct {
	EmployeeNumber string           `json:"employee_number" binding:"max=50"`
	FirstName      string           `json:"first_name" binding:"required,max=100"`
	LastName       string           `json:"last_name" binding:"required,max=100"`
	Email          string           `json:"email" binding:"omitempty,email,max=200"`
	Department     string           `json:"department" binding:"max=100"`
	Position       string           `json:"position" binding:"max=100"`
	HireDate       *time.Time       `json:"hire_date"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
}

// UpdateEmployeeRequest represents a partial update of an employee
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"first_name" binding:"omitempty,max=100"`
	LastName   *string          `json:"last_name" binding:"omitempty,max=100"`
	Email      *string          `json:"email" binding:"omitempty,max=200"`
	Department *string          `json:"department" binding:"omitempty,max=100"`
	Position   *string          `json:"position" binding:"omitempty,max=100"`
	HireDate   *time.Time       `json:"hire_date"`
	Status     *string          `json:"status" binding:"omitempty,oneof=ACTIVE ON_LEAVE TERMINATED"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// EmployeeListFilter represents the query parameters of the employee list
type EmployeeListFilter struct {
	common.ListParams
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE ON_LEAVE TERMINATED"`
	Department string `form:"department"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID             uuid.UUID       `json:"id"`
	EmployeeNumber string          `json:"employee_number"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Department     string          `json:"department"`
	Position       string          `json:"position"`
	HireDate       *time.Time      `json:"hire_date,omitempty"`
	Status         string          `json:"status"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToEmployeeResponse converts a domain employee to a response
func ToEmployeeResponse(e *hr.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		Department:     e.Department,
		Position:       e.Position,
		HireDate:       e.HireDate,
		Status:         string(e.Status),
		HourlyRate:     e.HourlyRate,
		Version:        e.Version,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// CreateLeaveRequest represents a request for time off
type CreateLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	LeaveType  string    `json:"leave_type" binding:"required,oneof=VACATION SICK PERSONAL UNPAID"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Reason     string    `json:"reason" binding:"max=500"`
}

// LeaveDecisionRequest names who decided a leave request and why
type LeaveDecisionRequest struct {
	ApprovedBy string `json:"approved_by" binding:"max=100"`
	Reason     string `json:"reason" binding:"max=500"`
}

// LeaveRequestListFilter represents the query parameters of the leave request list
type LeaveRequestListFilter struct {
	common.ListParams
	EmployeeID *uuid.UUID `form:"employee_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	LeaveType  string     `form:"leave_type" binding:"omitempty,oneof=VACATION SICK PERSONAL UNPAID"`
}

// LeaveRequestResponse represents a leave request in API responses
type LeaveRequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	EmployeeName    string     `json:"employee_name,omitempty"`
	LeaveType       string     `json:"leave_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Status          string     `json:"status"`
	Reason          string     `json:"reason"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToLeaveRequestResponse converts a domain leave request to a response
func ToLeaveRequestResponse(r *hr.LeaveRequest, employeeName string) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    employeeName,
		LeaveType:       string(r.LeaveType),
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalDays:       r.TotalDays,
		Status:          string(r.Status),
		Reason:          r.Reason,
		ApprovedBy:      r.ApprovedBy,
		RejectionReason: r.RejectionReason,
		DecidedAt:       r.DecidedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// LeaveBalanceResponse represents one leave balance in API responses
type LeaveBalanceResponse struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	Year        int       `json:"year"`
	LeaveType   string    `json:"leave_type"`
	Entitled    int       `json:"entitled"`
	Used        int       `json:"used"`
	Pending     int       `json:"pending"`
	Remaining   int       `json:"remaining"`
	LastUpdated time.Time `json:"last_updated"`
}

// ToLeaveBalanceResponse converts a domain balance to a response
func ToLeaveBalanceResponse(b *hr.LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		EmployeeID:  b.EmployeeID,
		Year:        b.Year,
		LeaveType:   string(b.LeaveType),
		Entitled:    b.Entitled,
		Used:        b.Used,
		Pending:     b.Pending,
		Remaining:   b.Remaining,
		LastUpdated: b.LastUpdated,
	}
}

// TimesheetEntryRequest is one day of hours in a timesheet request
type TimesheetEntryRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	ProjectID   *uuid.UUID      `json:"project_id"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description" binding:"max=500"`
}

// CreateTimesheetRequest represents a request to open a timesheet
type CreateTimesheetRequest struct {
	EmployeeID uuid.UUID               `json:"employee_id" binding:"required"`
	WeekStart  time.Time               `json:"week_start" binding:"required"`
	Entries    []TimesheetEntryRequest `json:"entries" binding:"dive"`
	Notes      string                  `json:"notes"`
}

// UpdateTimesheetRequest represents a partial update of a draft timesheet
type UpdateTimesheetRequest struct {
	Entries *[]TimesheetEntryRequest `json:"entries" binding:"omitempty,dive"`
	Notes   *string                  `json:"notes"`
}

// TimesheetDecisionRequest names the approver of a timesheet
type TimesheetDecisionRequest struct {
	ApprovedBy string `json:"approved_by" binding:"max=100"`
}

// TimesheetListFilter represents the query parameters of the timesheet list and export
type TimesheetListFilter struct {
	common.ListParams
	EmployeeID *uuid.UUID `form:"employee_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=DRAFT SUBMITTED APPROVED REJECTED"`
	WeekFrom   *time.Time `form:"week_from" time_format:"2006-01-02"`
	WeekTo     *time.Time `form:"week_to" time_format:"2006-01-02"`
}

// TimesheetEntryResponse represents a timesheet entry in API responses
type TimesheetEntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	ProjectID   *uuid.UUID      `json:"project_id,omitempty"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

// TimesheetResponse represents a timesheet in API responses
type TimesheetResponse struct {
	ID           uuid.UUID                `json:"id"`
	EmployeeID   uuid.UUID                `json:"employee_id"`
	EmployeeName string                   `json:"employee_name,omitempty"`
	WeekStart    time.Time                `json:"week_start"`
	Entries      []TimesheetEntryResponse `json:"entries"`
	TotalHours   decimal.Decimal          `json:"total_hours"`
	Status       string                   `json:"status"`
	ApprovedBy   string                   `json:"approved_by,omitempty"`
	Notes        string                   `json:"notes"`
	Version      int                      `json:"version"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// ToTimesheetResponse converts a domain timesheet to a response
func ToTimesheetResponse(t *hr.Timesheet, employeeName string) TimesheetResponse {
	entries := make([]TimesheetEntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = TimesheetEntryResponse{
			ID:          e.ID,
			Date:        e.Date,
			ProjectID:   e.ProjectID,
			Hours:       e.Hours,
			Description: e.Description,
		}
	}
	return TimesheetResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: employeeName,
		WeekStart:    t.WeekStart,
		Entries:      entries,
		TotalHours:   t.TotalHours,
		Status:       string(t.Status),
		ApprovedBy:   t.ApprovedBy,
		Notes:        t.Notes,
		Version:      t.Version,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toEntryInputs(entries []TimesheetEntryRequest) []hr.EntryInput {
	inputs := make([]hr.EntryInput, len(entries))
	for i, e := range entries {
		inputs[i] = hr.EntryInput{
			Date:        e.Date,
			ProjectID:   e.ProjectID,
			Hours:       e.Hours,
			Description: e.Description,
		}
	}
	return inputs
}
