package sales

import (
	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const AggregateTypeOpportunity = "Opportunity"

const (
	EventTypeOpportunityStageChanged = "OpportunityStageChanged"
	EventTypeOpportunityWon          = "OpportunityWon"
	EventTypeOpportunityLost         = "OpportunityLost"
)

// OpportunityStageChangedEvent is raised when an opportunity changes stage.
// Closing stages raise OpportunityWon or OpportunityLost instead of the generic type.
type OpportunityStageChangedEvent struct {
	shared.BaseDomainEvent
	Name           string          `json:"name"`
	ContactID      *uuid.UUID      `json:"contact_id,omitempty"`
	FromStage      Stage           `json:"from_stage"`
	ToStage        Stage           `json:"to_stage"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	LostReason     string          `json:"lost_reason,omitempty"`
}

// NewOpportunityStageChangedEvent creates an OpportunityStageChangedEvent
func NewOpportunityStageChangedEvent(o *Opportunity, from Stage) *OpportunityStageChangedEvent {
	eventType := EventTypeOpportunityStageChanged
	switch o.Stage {
	case StageWon:
		eventType = EventTypeOpportunityWon
	case StageLost:
		eventType = EventTypeOpportunityLost
	}
	return &OpportunityStageChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeOpportunity, o.ID),
		Name:            o.Name,
		ContactID:       o.ContactID,
		FromStage:       from,
		ToStage:         o.Stage,
		EstimatedValue:  o.EstimatedValue,
		LostReason:      o.LostReason,
	}
}
