package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TimesheetStatus represents the approval state of a timesheet
type TimesheetStatus string

const (
	TimesheetStatusDraft     TimesheetStatus = "DRAFT"
	TimesheetStatusSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetStatusApproved  TimesheetStatus = "APPROVED"
	TimesheetStatusRejected  TimesheetStatus = "REJECTED"
)

var timesheetTransitions = map[TimesheetStatus][]TimesheetStatus{
	TimesheetStatusDraft:     {TimesheetStatusSubmitted},
	TimesheetStatusSubmitted: {TimesheetStatusApproved, TimesheetStatusRejected},
	TimesheetStatusRejected:  {TimesheetStatusDraft},
}

// IsValid checks if the status is valid
func (s TimesheetStatus) IsValid() bool {
	switch s {
	case TimesheetStatusDraft, TimesheetStatusSubmitted, TimesheetStatusApproved, TimesheetStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the timesheet may move to next
func (s TimesheetStatus) CanTransitionTo(next TimesheetStatus) bool {
	for _, allowed := range timesheetTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var maxDailyHours = decimal.NewFromInt(24)

// WeekStart returns the Monday of t's week
func WeekStart(t time.Time) time.Time {
	t = shared.TruncateToDay(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// TimesheetEntry is the hours worked on one day, optionally against a project
type TimesheetEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TimesheetID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	ProjectID   *uuid.UUID      `gorm:"type:uuid;index"`
	Hours       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Description string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (TimesheetEntry) TableName() string {
	return "timesheet_entries"
}

// EntryInput describes a timesheet entry to record
type EntryInput struct {
	Date        time.Time
	ProjectID   *uuid.UUID
	Hours       decimal.Decimal
	Description string
}

// Timesheet is an employee's hours for one week
type Timesheet struct {
	shared.BaseAggregateRoot
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_timesheet_employee_week"`
	WeekStart  time.Time        `gorm:"type:date;not null;uniqueIndex:idx_timesheet_employee_week"`
	Entries    []TimesheetEntry `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE"`
	TotalHours decimal.Decimal  `gorm:"type:decimal(7,2);not null;default:0"`
	Status     TimesheetStatus  `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	ApprovedBy string           `gorm:"type:varchar(100)"`
	Notes      string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Timesheet) TableName() string {
	return "timesheets"
}

// NewTimesheet opens a draft timesheet for the week containing week
func NewTimesheet(employeeID uuid.UUID, week time.Time) (*Timesheet, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Timesheet requires an employee")
	}
	return &Timesheet{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		WeekStart:         WeekStart(week),
		Entries:           []TimesheetEntry{},
		TotalHours:        decimal.Zero,
		Status:            TimesheetStatusDraft,
	}, nil
}

// WeekEnd returns the Sunday closing the timesheet week
func (t *Timesheet) WeekEnd() time.Time {
	return t.WeekStart.AddDate(0, 0, 6)
}

// IsEditable reports whether entries may change
func (t *Timesheet) IsEditable() bool {
	return t.Status == TimesheetStatusDraft
}

// SetEntries replaces every entry and recomputes the total
func (t *Timesheet) SetEntries(inputs []EntryInput) error {
	if !t.IsEditable() {
		return shared.NewDomainError(shared.CodeInvalidState, "Only draft timesheets can be edited")
	}
	entries := make([]TimesheetEntry, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		if in.Hours.IsNegative() || in.Hours.GreaterThan(maxDailyHours) {
			return shared.NewDomainError("INVALID_HOURS", "Hours must be between 0 and 24")
		}
		day := shared.TruncateToDay(in.Date)
		if day.Before(t.WeekStart) || day.After(t.WeekEnd()) {
			return shared.NewDomainError("INVALID_ENTRY_DATE", "Entry date must fall within the timesheet week")
		}
		entries = append(entries, TimesheetEntry{
			ID:          uuid.New(),
			TimesheetID: t.ID,
			Date:        day,
			ProjectID:   in.ProjectID,
			Hours:       in.Hours,
			Description: strings.TrimSpace(in.Description),
		})
		total = total.Add(in.Hours)
	}
	t.Entries = entries
	t.TotalHours = total
	t.IncrementVersion()
	return nil
}

func (t *Timesheet) transition(next TimesheetStatus) error {
	if !t.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("timesheet", string(t.Status), string(next))
	}
	t.Status = next
	t.IncrementVersion()
	return nil
}

// Submit sends the timesheet for approval. Empty timesheets cannot be submitted.
func (t *Timesheet) Submit() error {
	if t.Status == TimesheetStatusDraft && len(t.Entries) == 0 {
		return shared.NewDomainError("EMPTY_TIMESHEET", "Cannot submit a timesheet without entries")
	}
	if err := t.transition(TimesheetStatusSubmitted); err != nil {
		return err
	}
	t.AddDomainEvent(NewTimesheetEvent(EventTypeTimesheetSubmitted, t))
	return nil
}

// Approve accepts a submitted timesheet
func (t *Timesheet) Approve(approver string) error {
	if err := t.transition(TimesheetStatusApproved); err != nil {
		return err
	}
	t.ApprovedBy = approver
	t.AddDomainEvent(NewTimesheetEvent(EventTypeTimesheetApproved, t))
	return nil
}

// Reject returns a submitted timesheet to the employee
func (t *Timesheet) Reject(approver string) error {
	if err := t.transition(TimesheetStatusRejected); err != nil {
		return err
	}
	t.ApprovedBy = approver
	t.AddDomainEvent(NewTimesheetEvent(EventTypeTimesheetRejected, t))
	return nil
}

// Reopen makes a rejected timesheet editable again
func (t *Timesheet) Reopen() error {
	if err := t.transition(TimesheetStatusDraft); err != nil {
		return err
	}
	t.ApprovedBy = ""
	return nil
}
