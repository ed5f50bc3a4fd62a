package shipping

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ShipmentStatus is the lifecycle state of a shipment
type ShipmentStatus string

const (
	ShipmentStatusPlanned   ShipmentStatus = "PLANNED"
	ShipmentStatusLoading   ShipmentStatus = "LOADING"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
	ShipmentStatusCancelled ShipmentStatus = "CANCELLED"
)

var shipmentTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentStatusPlanned:   {ShipmentStatusLoading, ShipmentStatusCancelled},
	ShipmentStatusLoading:   {ShipmentStatusInTransit, ShipmentStatusPlanned, ShipmentStatusCancelled},
	ShipmentStatusInTransit: {ShipmentStatusDelivered},
}

// IsValid checks if the status is valid
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusPlanned, ShipmentStatusLoading, ShipmentStatusInTransit,
		ShipmentStatusDelivered, ShipmentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the shipment may move to next
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range shipmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ShipmentNumberPrefix prefixes generated shipment numbers
const ShipmentNumberPrefix = "SHP"

// DefaultMaxWeight is the legal load of a standard trailer in tonnes
var DefaultMaxWeight = decimal.NewFromInt(40)

// ShipmentItem is a piece loaded on a shipment. Weight is in tonnes.
type ShipmentItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PieceID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PieceMark  string          `gorm:"type:varchar(50);not null"`
	Weight     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	SortOrder  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ShipmentItem) TableName() string {
	return "shipment_items"
}

// ItemInput describes a piece to load
type ItemInput struct {
	PieceID   uuid.UUID
	PieceMark string
	Weight    decimal.Decimal
}

// Shipment is a truckload of precast pieces delivered to a project site
type Shipment struct {
	shared.BaseAggregateRoot
	ShipmentNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryAddress string          `gorm:"type:text"`
	ScheduledDate   *time.Time      `gorm:"type:date;index"`
	Carrier         string          `gorm:"type:varchar(100)"`
	TruckNumber     string          `gorm:"type:varchar(50)"`
	DriverName      string          `gorm:"type:varchar(100)"`
	Status          ShipmentStatus  `gorm:"type:varchar(20);not null;default:'PLANNED';index"`
	Items           []ShipmentItem  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	TotalWeight     decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	MaxWeight       decimal.Decimal `gorm:"type:decimal(10,3);not null;default:40"`
	DispatchedAt    *time.Time
	DeliveredAt     *time.Time
	ReceivedBy      string `gorm:"type:varchar(100)"`
	Notes           string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

// NewShipment plans an empty shipment for a project
func NewShipment(projectID uuid.UUID, deliveryAddress string) (*Shipment, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Shipment requires a project")
	}
	return &Shipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShipmentNumber:    shared.GenerateNumber(ShipmentNumberPrefix),
		ProjectID:         projectID,
		DeliveryAddress:   strings.TrimSpace(deliveryAddress),
		Status:            ShipmentStatusPlanned,
		Items:             []ShipmentItem{},
		TotalWeight:       decimal.Zero,
		MaxWeight:         DefaultMaxWeight,
	}, nil
}

// CanEditItems reports whether the load may still change
func (s *Shipment) CanEditItems() bool {
	return s.Status == ShipmentStatusPlanned || s.Status == ShipmentStatusLoading
}

// IsEditable reports whether the shipment details may change
func (s *Shipment) IsEditable() bool {
	return s.CanEditItems()
}

// CanDelete reports whether the shipment may be deleted
func (s *Shipment) CanDelete() bool {
	return s.Status == ShipmentStatusPlanned || s.Status == ShipmentStatusCancelled
}

// SetItems replaces the load. A piece may appear once and the total may not exceed MaxWeight.
func (s *Shipment) SetItems(inputs []ItemInput) error {
	return s.SetLoad(s.MaxWeight, inputs)
}

// SetLoad replaces the load and the weight limit together
func (s *Shipment) SetLoad(limit decimal.Decimal, inputs []ItemInput) error {
	if !s.CanEditItems() {
		return shared.NewDomainError(shared.CodeInvalidState, "Items can only change while a shipment is planned or loading")
	}
	seen := make(map[uuid.UUID]bool, len(inputs))
	items := make([]ShipmentItem, 0, len(inputs))
	total := decimal.Zero
	for i, in := range inputs {
		if in.PieceID == uuid.Nil {
			return shared.NewDomainError("INVALID_PIECE", "Shipment item requires a piece")
		}
		if seen[in.PieceID] {
			return shared.NewDomainError("DUPLICATE_PIECE", "Piece "+in.PieceMark+" is already on this shipment")
		}
		seen[in.PieceID] = true
		if in.Weight.IsNegative() {
			return shared.NewDomainError("INVALID_WEIGHT", "Item weight cannot be negative")
		}
		items = append(items, ShipmentItem{
			ID:         uuid.New(),
			ShipmentID: s.ID,
			PieceID:    in.PieceID,
			PieceMark:  strings.TrimSpace(in.PieceMark),
			Weight:     in.Weight,
			SortOrder:  i,
		})
		total = total.Add(in.Weight)
	}
	if !limit.IsPositive() {
		return shared.NewDomainError("INVALID_WEIGHT", "Maximum weight must be positive")
	}
	if err := s.checkWeight(total, limit); err != nil {
		return err
	}
	s.MaxWeight = limit
	s.Items = items
	s.TotalWeight = total
	s.IncrementVersion()
	return nil
}

// SetMaxWeight changes the load limit. It may not drop below the current load.
func (s *Shipment) SetMaxWeight(limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return shared.NewDomainError("INVALID_WEIGHT", "Maximum weight must be positive")
	}
	if err := s.checkWeight(s.TotalWeight, limit); err != nil {
		return err
	}
	s.MaxWeight = limit
	return nil
}

func (s *Shipment) checkWeight(total, limit decimal.Decimal) error {
	if total.GreaterThan(limit) {
		return shared.NewDomainError(shared.ErrCapacityExceeded.Code,
			"Shipment weight "+total.String()+" t exceeds the "+limit.String()+" t limit")
	}
	return nil
}

// RemainingCapacity returns the weight that may still be loaded
func (s *Shipment) RemainingCapacity() decimal.Decimal {
	left := s.MaxWeight.Sub(s.TotalWeight)
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}

// PieceIDs returns the pieces on the shipment in load order
func (s *Shipment) PieceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.Items))
	for i := range s.Items {
		ids[i] = s.Items[i].PieceID
	}
	return ids
}

// StartLoading moves a planned shipment onto the loading bay
func (s *Shipment) StartLoading() error {
	return s.transition(ShipmentStatusLoading)
}

// ReturnToPlanning takes a loading shipment back to PLANNED
func (s *Shipment) ReturnToPlanning() error {
	return s.transition(ShipmentStatusPlanned)
}

// Dispatch sends the truck on its way. An empty shipment cannot be dispatched.
func (s *Shipment) Dispatch(at time.Time) error {
	if len(s.Items) == 0 {
		return shared.NewDomainError("SHIPMENT_EMPTY", "Cannot dispatch a shipment without items")
	}
	if err := s.transition(ShipmentStatusInTransit); err != nil {
		return err
	}
	s.DispatchedAt = &at
	return nil
}

// ConfirmDelivery records who received the load on site
func (s *Shipment) ConfirmDelivery(receivedBy string, at time.Time) error {
	receivedBy = strings.TrimSpace(receivedBy)
	if receivedBy == "" {
		return shared.NewDomainError("INVALID_RECEIVER", "Delivery must be confirmed by a named receiver")
	}
	if !s.Status.CanTransitionTo(ShipmentStatusDelivered) {
		return shared.InvalidTransition("shipment", string(s.Status), string(ShipmentStatusDelivered))
	}
	s.ReceivedBy = receivedBy
	s.DeliveredAt = &at
	return s.transition(ShipmentStatusDelivered)
}

// Cancel cancels a shipment that has not left the yard
func (s *Shipment) Cancel() error {
	return s.transition(ShipmentStatusCancelled)
}

func (s *Shipment) transition(next ShipmentStatus) error {
	if !s.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("shipment", string(s.Status), string(next))
	}
	from := s.Status
	s.Status = next
	s.IncrementVersion()
	s.AddDomainEvent(NewShipmentStatusChangedEvent(s, from))
	return nil
}
