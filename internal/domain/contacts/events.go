package contacts

import "github.com/precast-erp/backend/internal/domain/shared"

const (
	// AggregateTypeContact is the aggregate type for contacts
	AggregateTypeContact = "Contact"

	EventTypeContactCreated = "ContactCreated"
)

// ContactCreatedEvent is raised when a contact is created
type ContactCreatedEvent struct {
	shared.BaseDomainEvent
	ContactType ContactType `json:"contact_type"`
	DisplayName string      `json:"display_name"`
}

// NewContactCreatedEvent creates a ContactCreatedEvent
func NewContactCreatedEvent(c *Contact) *ContactCreatedEvent {
	return &ContactCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContactCreated, AggregateTypeContact, c.ID),
		ContactType:     c.Type,
		DisplayName:     c.DisplayName(),
	}
}
