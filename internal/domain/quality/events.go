package quality

import (
	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

const (
	AggregateTypeInspection     = "Inspection"
	AggregateTypeNonConformance = "NonConformance"
)

const (
	EventTypeInspectionPassed            = "InspectionPassed"
	EventTypeInspectionFailed            = "InspectionFailed"
	EventTypeInspectionConditional       = "InspectionConditional"
	EventTypeNonConformanceOpened        = "NonConformanceOpened"
	EventTypeNonConformanceStatusChanged = "NonConformanceStatusChanged"
)

// InspectionCompletedEvent is raised when an inspection records its result.
// The event type names the result.
type InspectionCompletedEvent struct {
	shared.BaseDomainEvent
	InspectionNumber string           `json:"inspection_number"`
	ProjectID        uuid.UUID        `json:"project_id"`
	PieceID          *uuid.UUID       `json:"piece_id,omitempty"`
	Result           InspectionStatus `json:"result"`
	Inspector        string           `json:"inspector"`
}

// NewInspectionCompletedEvent creates an InspectionCompletedEvent
func NewInspectionCompletedEvent(i *Inspection) *InspectionCompletedEvent {
	eventType := EventTypeInspectionPassed
	switch i.Status {
	case InspectionStatusFailed:
		eventType = EventTypeInspectionFailed
	case InspectionStatusConditional:
		eventType = EventTypeInspectionConditional
	}
	return &InspectionCompletedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(eventType, AggregateTypeInspection, i.ID),
		InspectionNumber: i.InspectionNumber,
		ProjectID:        i.ProjectID,
		PieceID:          i.PieceID,
		Result:           i.Status,
		Inspector:        i.Inspector,
	}
}

// NonConformanceEvent is raised when a report is opened or changes status
type NonConformanceEvent struct {
	shared.BaseDomainEvent
	NCRNumber  string    `json:"ncr_number"`
	Severity   Severity  `json:"severity"`
	FromStatus NCRStatus `json:"from_status,omitempty"`
	ToStatus   NCRStatus `json:"to_status"`
}

// NewNonConformanceEvent creates a NonConformanceEvent
func NewNonConformanceEvent(eventType string, n *NonConformance, from NCRStatus) *NonConformanceEvent {
	return &NonConformanceEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeNonConformance, n.ID),
		NCRNumber:       n.NCRNumber,
		Severity:        n.Severity,
		FromStatus:      from,
		ToStatus:        n.Status,
	}
}
