package quality

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// Severity grades a non-conformance
type Severity string

const (
	SeverityMinor    Severity = "MINOR"
	SeverityMajor    Severity = "MAJOR"
	SeverityCritical Severity = "CRITICAL"
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	return s == SeverityMinor || s == SeverityMajor || s == SeverityCritical
}

// NCRStatus is the lifecycle state of a non-conformance report
type NCRStatus string

const (
	NCRStatusOpen        NCRStatus = "OPEN"
	NCRStatusUnderReview NCRStatus = "UNDER_REVIEW"
	NCRStatusResolved    NCRStatus = "RESOLVED"
	NCRStatusClosed      NCRStatus = "CLOSED"
)

var ncrTransitions = map[NCRStatus][]NCRStatus{
	NCRStatusOpen:        {NCRStatusUnderReview, NCRStatusResolved},
	NCRStatusUnderReview: {NCRStatusResolved, NCRStatusOpen},
	NCRStatusResolved:    {NCRStatusClosed, NCRStatusOpen},
}

// IsValid checks if the status is valid
func (s NCRStatus) IsValid() bool {
	switch s {
	case NCRStatusOpen, NCRStatusUnderReview, NCRStatusResolved, NCRStatusClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the report may move to next
func (s NCRStatus) CanTransitionTo(next NCRStatus) bool {
	for _, allowed := range ncrTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NCRNumberPrefix prefixes generated non-conformance numbers
const NCRNumberPrefix = "NCR"

// NonConformance records a defect and its corrective action
type NonConformance struct {
	shared.BaseAggregateRoot
	NCRNumber        string     `gorm:"column:ncr_number;type:varchar(50);not null;uniqueIndex"`
	InspectionID     *uuid.UUID `gorm:"type:uuid;index"`
	ProjectID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Severity         Severity   `gorm:"type:varchar(20);not null;default:'MINOR';index"`
	Description      string     `gorm:"type:text;not null"`
	CorrectiveAction string     `gorm:"type:text"`
	Status           NCRStatus  `gorm:"type:varchar(20);not null;default:'OPEN';index"`
	ResolvedAt       *time.Time
	ClosedAt         *time.Time
}

// TableName returns the table name for GORM
func (NonConformance) TableName() string {
	return "quality_non_conformances"
}

// NewNonConformance opens a report. An empty severity defaults to MINOR.
func NewNonConformance(projectID uuid.UUID, description string, severity Severity) (*NonConformance, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Non-conformance requires a project")
	}
	if severity == "" {
		severity = SeverityMinor
	}
	if !severity.IsValid() {
		return nil, shared.NewDomainError("INVALID_SEVERITY", "Invalid severity")
	}
	n := &NonConformance{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		NCRNumber:         shared.GenerateNumber(NCRNumberPrefix),
		ProjectID:         projectID,
		Severity:          severity,
		Status:            NCRStatusOpen,
	}
	if err := n.Describe(description); err != nil {
		return nil, err
	}
	n.AddDomainEvent(NewNonConformanceEvent(EventTypeNonConformanceOpened, n, ""))
	return n, nil
}

// NewNonConformanceForInspection opens the MAJOR report raised by a failed inspection
func NewNonConformanceForInspection(i *Inspection) (*NonConformance, error) {
	description := "Inspection " + i.InspectionNumber + " failed"
	if failed := i.FailedChecks(); len(failed) > 0 {
		description += ": " + strings.Join(failed, ", ")
	}
	if i.Notes != "" {
		description += ". " + i.Notes
	}
	n, err := NewNonConformance(i.ProjectID, description, SeverityMajor)
	if err != nil {
		return nil, err
	}
	id := i.ID
	n.InspectionID = &id
	return n, nil
}

// Describe sets the defect description
func (n *NonConformance) Describe(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	n.Description = description
	return nil
}

// SetSeverity regrades an unresolved report
func (n *NonConformance) SetSeverity(severity Severity) error {
	if !severity.IsValid() {
		return shared.NewDomainError("INVALID_SEVERITY", "Invalid severity")
	}
	n.Severity = severity
	return nil
}

// IsClosed reports whether the report is closed
func (n *NonConformance) IsClosed() bool {
	return n.Status == NCRStatusClosed
}

func (n *NonConformance) transition(next NCRStatus) error {
	if !n.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("non-conformance", string(n.Status), string(next))
	}
	from := n.Status
	n.Status = next
	n.IncrementVersion()
	n.AddDomainEvent(NewNonConformanceEvent(EventTypeNonConformanceStatusChanged, n, from))
	return nil
}

// Review puts the report under review
func (n *NonConformance) Review() error {
	return n.transition(NCRStatusUnderReview)
}

// Resolve records the corrective action. A report cannot be resolved without one.
func (n *NonConformance) Resolve(action string, at time.Time) error {
	if action = strings.TrimSpace(action); action != "" {
		n.CorrectiveAction = action
	}
	if n.CorrectiveAction == "" {
		return shared.NewDomainError("CORRECTIVE_ACTION_REQUIRED", "A corrective action is required to resolve a non-conformance")
	}
	if err := n.transition(NCRStatusResolved); err != nil {
		return err
	}
	n.ResolvedAt = &at
	return nil
}

// Close closes a resolved report
func (n *NonConformance) Close(at time.Time) error {
	if err := n.transition(NCRStatusClosed); err != nil {
		return err
	}
	n.ClosedAt = &at
	return nil
}

// Reopen sends the report back to OPEN and clears its resolution date
func (n *NonConformance) Reopen() error {
	if err := n.transition(NCRStatusOpen); err != nil {
		return err
	}
	n.ResolvedAt = nil
	return nil
}
