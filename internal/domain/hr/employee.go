package hr

import (
	"net/mail"
	"strings"
	"time"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus represents the employment state of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "ACTIVE"
	EmployeeStatusOnLeave    EmployeeStatus = "ON_LEAVE"
	EmployeeStatusTerminated EmployeeStatus = "TERMINATED"
)

var employeeTransitions = map[EmployeeStatus][]EmployeeStatus{
	EmployeeStatusActive:  {EmployeeStatusOnLeave, EmployeeStatusTerminated},
	EmployeeStatusOnLeave: {EmployeeStatusActive, EmployeeStatusTerminated},
}

// IsValid checks if the status is valid
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusOnLeave, EmployeeStatusTerminated:
		return true
	}
	return false
}

// CanTransitionTo reports whether the employee may move to next
func (s EmployeeStatus) CanTransitionTo(next EmployeeStatus) bool {
	for _, allowed := range employeeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EmployeeNumberPrefix prefixes generated employee numbers
const EmployeeNumberPrefix = "EMP"

// Employee is a member of the plant, yard or office staff
type Employee struct {
	shared.BaseAggregateRoot
	EmployeeNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	FirstName      string          `gorm:"type:varchar(100);not null"`
	LastName       string          `gorm:"type:varchar(100);not null;index"`
	Email          string          `gorm:"type:varchar(200);index"`
	Department     string          `gorm:"type:varchar(100);index"`
	Position       string          `gorm:"type:varchar(100)"`
	HireDate       *time.Time      `gorm:"type:date"`
	Status         EmployeeStatus  `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	HourlyRate     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates an active employee. An empty number is generated.
func NewEmployee(number, firstName, lastName string) (*Employee, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		number = shared.GenerateNumber(EmployeeNumberPrefix)
	}
	e := &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeNumber:    number,
		Status:            EmployeeStatusActive,
		HourlyRate:        decimal.Zero,
	}
	if err := e.Rename(firstName, lastName); err != nil {
		return nil, err
	}
	return e, nil
}

// FullName returns "First Last"
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Rename sets the employee's names
func (e *Employee) Rename(firstName, lastName string) error {
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	e.FirstName, e.LastName = firstName, lastName
	return nil
}

// SetEmail sets the work email. An empty email clears it.
func (e *Employee) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
		}
	}
	e.Email = email
	return nil
}

// SetHourlyRate sets the pay rate used for labor costing
func (e *Employee) SetHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Hourly rate cannot be negative")
	}
	e.HourlyRate = rate
	return nil
}

// ChangeStatus moves the employee to next
func (e *Employee) ChangeStatus(next EmployeeStatus) error {
	if next == e.Status {
		return nil
	}
	if !next.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid employee status")
	}
	if !e.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("employee", string(e.Status), string(next))
	}
	e.Status = next
	e.IncrementVersion()
	return nil
}

// CanRequestLeave reports whether the employee may file leave requests
func (e *Employee) CanRequestLeave() bool {
	return e.Status != EmployeeStatusTerminated
}
