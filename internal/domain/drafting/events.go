package drafting

import "github.com/precast-erp/backend/internal/domain/shared"

const (
	// AggregateTypeDrawing is the aggregate type for drawings
	AggregateTypeDrawing = "Drawing"

	EventTypeDrawingApproved = "DrawingApproved"
	EventTypeDrawingReleased = "DrawingReleased"
)

// DrawingEvent is raised when a drawing is approved or released
type DrawingEvent struct {
	shared.BaseDomainEvent
	DrawingNumber string `json:"drawing_number"`
	Revision      int    `json:"revision"`
	Actor         string `json:"actor"`
}

// NewDrawingEvent creates a drawing event of the given type
func NewDrawingEvent(eventType string, d *Drawing, actor string) *DrawingEvent {
	return &DrawingEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeDrawing, d.ID),
		DrawingNumber:   d.DrawingNumber,
		Revision:        d.Revision,
		Actor:           actor,
	}
}
