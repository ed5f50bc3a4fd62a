package yard

import (
	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// AggregateTypeMovement is the aggregate type of yard movement events
const AggregateTypeMovement = "YardMovement"

const (
	EventTypeMovementCompleted = "MovementCompleted"
	EventTypeMovementCancelled = "MovementCancelled"
)

// MovementEvent is raised when a movement finishes or is abandoned
type MovementEvent struct {
	shared.BaseDomainEvent
	PieceID        uuid.UUID  `json:"piece_id"`
	FromLocationID *uuid.UUID `json:"from_location_id,omitempty"`
	ToLocationID   uuid.UUID  `json:"to_location_id"`
}

// NewMovementEvent creates a MovementEvent
func NewMovementEvent(eventType string, m *Movement) *MovementEvent {
	return &MovementEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeMovement, m.ID),
		PieceID:         m.PieceID,
		FromLocationID:  m.FromLocationID,
		ToLocationID:    m.ToLocationID,
	}
}
