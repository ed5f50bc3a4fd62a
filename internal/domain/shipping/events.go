package shipping

import (
	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

const AggregateTypeShipment = "Shipment"

const (
	EventTypeShipmentLoading   = "ShipmentLoading"
	EventTypeShipmentReplanned = "ShipmentReplanned"
	EventTypeShipmentInTransit = "ShipmentDispatched"
	EventTypeShipmentDelivered = "ShipmentDelivered"
	EventTypeShipmentCancelled = "ShipmentCancelled"
)

var statusEventTypes = map[ShipmentStatus]string{
	ShipmentStatusLoading:   EventTypeShipmentLoading,
	ShipmentStatusPlanned:   EventTypeShipmentReplanned,
	ShipmentStatusInTransit: EventTypeShipmentInTransit,
	ShipmentStatusDelivered: EventTypeShipmentDelivered,
	ShipmentStatusCancelled: EventTypeShipmentCancelled,
}

// ShipmentStatusChangedEvent is raised on every shipment transition.
// The event type names the new status.
type ShipmentStatusChangedEvent struct {
	shared.BaseDomainEvent
	ShipmentNumber string         `json:"shipment_number"`
	ProjectID      uuid.UUID      `json:"project_id"`
	FromStatus     ShipmentStatus `json:"from_status"`
	ToStatus       ShipmentStatus `json:"to_status"`
	PieceIDs       []uuid.UUID    `json:"piece_ids"`
	ReceivedBy     string         `json:"received_by,omitempty"`
}

// NewShipmentStatusChangedEvent creates a ShipmentStatusChangedEvent
func NewShipmentStatusChangedEvent(s *Shipment, from ShipmentStatus) *ShipmentStatusChangedEvent {
	return &ShipmentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(statusEventTypes[s.Status], AggregateTypeShipment, s.ID),
		ShipmentNumber:  s.ShipmentNumber,
		ProjectID:       s.ProjectID,
		FromStatus:      from,
		ToStatus:        s.Status,
		PieceIDs:        s.PieceIDs(),
		ReceivedBy:      s.ReceivedBy,
	}
}
