package quality

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/datatypes"
)

// InspectionType is the production stage an inspection covers
type InspectionType string

const (
	InspectionTypePrePour  InspectionType = "PRE_POUR"
	InspectionTypePostPour InspectionType = "POST_POUR"
	InspectionTypeFinal    InspectionType = "FINAL"
	InspectionTypeDelivery InspectionType = "DELIVERY"
)

// IsValid checks if the type is valid
func (t InspectionType) IsValid() bool {
	switch t {
	case InspectionTypePrePour, InspectionTypePostPour, InspectionTypeFinal, InspectionTypeDelivery:
		return true
	}
	return false
}

// InspectionStatus is the outcome of an inspection
type InspectionStatus string

const (
	InspectionStatusScheduled   InspectionStatus = "SCHEDULED"
	InspectionStatusPassed      InspectionStatus = "PASSED"
	InspectionStatusFailed      InspectionStatus = "FAILED"
	InspectionStatusConditional InspectionStatus = "CONDITIONAL"
)

// IsValid checks if the status is valid
func (s InspectionStatus) IsValid() bool {
	return s == InspectionStatusScheduled || s.IsResult()
}

// IsResult reports whether the status is a completed outcome
func (s InspectionStatus) IsResult() bool {
	switch s {
	case InspectionStatusPassed, InspectionStatusFailed, InspectionStatusConditional:
		return true
	}
	return false
}

// CanTransitionTo reports whether the inspection may move to next. Only a
// scheduled inspection can be completed, and a result is final.
func (s InspectionStatus) CanTransitionTo(next InspectionStatus) bool {
	return s == InspectionStatusScheduled && next.IsResult()
}

// InspectionNumberPrefix prefixes generated inspection numbers
const InspectionNumberPrefix = "INS"

// ChecklistItem is one check on the inspection sheet
type ChecklistItem struct {
	Item   string `json:"item"`
	Passed bool   `json:"passed"`
	Note   string `json:"note,omitempty"`
}

// Inspection is a quality check of a project's pieces at one production stage
type Inspection struct {
	shared.BaseAggregateRoot
	InspectionNumber string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProjectID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	PieceID          *uuid.UUID     `gorm:"type:uuid;index"`
	InspectionType   InspectionType `gorm:"type:varchar(20);not null;index"`
	Inspector        string         `gorm:"type:varchar(100)"`
	ScheduledDate    *time.Time     `gorm:"type:date"`
	InspectedAt      *time.Time
	Status           InspectionStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index"`
	Checklist        datatypes.JSONSlice[ChecklistItem]
	Notes            string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Inspection) TableName() string {
	return "quality_inspections"
}

// NewInspection schedules an inspection with an empty checklist
func NewInspection(projectID uuid.UUID, inspectionType InspectionType) (*Inspection, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Inspection requires a project")
	}
	if !inspectionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INSPECTION_TYPE", "Invalid inspection type")
	}
	return &Inspection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InspectionNumber:  shared.GenerateNumber(InspectionNumberPrefix),
		ProjectID:         projectID,
		InspectionType:    inspectionType,
		Status:            InspectionStatusScheduled,
		Checklist:         datatypes.JSONSlice[ChecklistItem]{},
	}, nil
}

// IsEditable reports whether the inspection has not been completed yet
func (i *Inspection) IsEditable() bool {
	return i.Status == InspectionStatusScheduled
}

// SetChecklist replaces the checklist. Every entry needs a name.
func (i *Inspection) SetChecklist(items []ChecklistItem) error {
	list := make(datatypes.JSONSlice[ChecklistItem], 0, len(items))
	for _, item := range items {
		item.Item = strings.TrimSpace(item.Item)
		if item.Item == "" {
			return shared.NewDomainError("INVALID_CHECKLIST", "Checklist items need a name")
		}
		list = append(list, item)
	}
	i.Checklist = list
	return nil
}

// FailedChecks returns the names of the checklist items that did not pass
func (i *Inspection) FailedChecks() []string {
	var failed []string
	for _, item := range i.Checklist {
		if !item.Passed {
			failed = append(failed, item.Item)
		}
	}
	return failed
}

// Complete records the result. The inspector defaults to the one scheduled.
func (i *Inspection) Complete(result InspectionStatus, inspector, notes string, at time.Time) error {
	if !result.IsResult() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Result must be PASSED, FAILED or CONDITIONAL")
	}
	if !i.Status.CanTransitionTo(result) {
		return shared.InvalidTransition("inspection", string(i.Status), string(result))
	}
	if inspector = strings.TrimSpace(inspector); inspector != "" {
		i.Inspector = inspector
	}
	if i.Inspector == "" {
		return shared.NewDomainError("INVALID_INSPECTOR", "Inspection requires an inspector")
	}
	if notes != "" {
		i.Notes = notes
	}
	i.Status = result
	i.InspectedAt = &at
	i.IncrementVersion()
	i.AddDomainEvent(NewInspectionCompletedEvent(i))
	return nil
}
