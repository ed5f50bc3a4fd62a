package projects

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "PLANNING"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusPlanning: {ProjectStatusActive, ProjectStatusCancelled},
	ProjectStatusActive:   {ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled},
	ProjectStatusOnHold:   {ProjectStatusActive, ProjectStatusCancelled},
}

// IsValid checks if the status is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ProjectStatus) IsTerminal() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusCancelled
}

// CanTransitionTo reports whether the project may move to next
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NumberPrefix prefixes generated project numbers
const NumberPrefix = "PRJ"

// Project is a precast job: the pieces, drawings and deliveries for one site
type Project struct {
	shared.BaseAggregateRoot
	ProjectNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(200);not null;index"`
	ContactID      *uuid.UUID      `gorm:"type:uuid;index"`
	Location       string          `gorm:"type:varchar(300)"`
	Status         ProjectStatus   `gorm:"type:varchar(20);not null;default:'PLANNING';index"`
	StartDate      *time.Time      `gorm:"type:date"`
	EndDate        *time.Time      `gorm:"type:date"`
	Budget         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProjectManager string          `gorm:"type:varchar(100)"`
	Progress       int             `gorm:"not null;default:0"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a project in PLANNING with no progress
func NewProject(name string) (*Project, error) {
	p := &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectNumber:     shared.GenerateNumber(NumberPrefix),
		Status:            ProjectStatusPlanning,
		Budget:            decimal.Zero,
	}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename changes the project name
func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	p.Name = name
	return nil
}

// SetSchedule sets the planned dates. The end may not precede the start.
func (p *Project) SetSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot be before start date")
	}
	p.StartDate = start
	p.EndDate = end
	return nil
}

// SetBudget sets the project budget
func (p *Project) SetBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return shared.NewDomainError("INVALID_BUDGET", "Budget cannot be negative")
	}
	p.Budget = budget
	return nil
}

// UpdateStatus moves the project through its lifecycle. Completion sets progress to 100.
func (p *Project) UpdateStatus(next ProjectStatus) error {
	if !next.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid project status")
	}
	if !p.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("project", string(p.Status), string(next))
	}
	from := p.Status
	p.Status = next
	if next == ProjectStatusCompleted {
		p.Progress = 100
	}
	p.IncrementVersion()
	p.AddDomainEvent(NewProjectStatusChangedEvent(p, from))
	return nil
}

// UpdateProgress records percent complete (0-100)
func (p *Project) UpdateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return shared.NewDomainError("INVALID_PROGRESS", "Progress must be between 0 and 100")
	}
	if p.Status.IsTerminal() {
		return shared.NewDomainError(shared.CodeInvalidState, "Cannot update progress of a closed project")
	}
	p.Progress = progress
	p.IncrementVersion()
	return nil
}
