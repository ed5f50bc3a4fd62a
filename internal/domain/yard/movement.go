package yard

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// MovementStatus is the progress of a planned piece move
type MovementStatus string

const (
	MovementStatusPlanned    MovementStatus = "PLANNED"
	MovementStatusInProgress MovementStatus = "IN_PROGRESS"
	MovementStatusCompleted  MovementStatus = "COMPLETED"
	MovementStatusCancelled  MovementStatus = "CANCELLED"
)

var movementTransitions = map[MovementStatus][]MovementStatus{
	MovementStatusPlanned:    {MovementStatusInProgress, MovementStatusCompleted, MovementStatusCancelled},
	MovementStatusInProgress: {MovementStatusCompleted, MovementStatusCancelled},
	MovementStatusCompleted:  {},
	MovementStatusCancelled:  {},
}

// IsValid checks if the status is valid
func (s MovementStatus) IsValid() bool {
	_, ok := movementTransitions[s]
	return ok
}

// CanTransitionTo reports whether a movement may move to next
func (s MovementStatus) CanTransitionTo(next MovementStatus) bool {
	for _, allowed := range movementTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Movement is a planned relocation of one piece
type Movement struct {
	shared.BaseAggregateRoot
	PieceID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	FromLocationID *uuid.UUID     `gorm:"type:uuid"`
	ToLocationID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	EquipmentID    *uuid.UUID     `gorm:"type:uuid;index"`
	RequestedBy    string         `gorm:"type:varchar(100);not null"`
	Status         MovementStatus `gorm:"type:varchar(20);not null;default:'PLANNED';index"`
	ScheduledAt    *time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Notes          string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "yard_movements"
}

// NewMovement plans a move of piece to a location, starting from wherever the piece is now
func NewMovement(piece *Piece, to uuid.UUID, equipmentID *uuid.UUID, requestedBy string) (*Movement, error) {
	if to == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Movement requires a target location")
	}
	if !piece.IsMovable() {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Piece "+piece.PieceMark+" cannot be moved")
	}
	if piece.LocationID != nil && *piece.LocationID == to {
		return nil, shared.NewDomainError("SAME_LOCATION", "Piece is already at the target location")
	}
	if requestedBy == "" {
		requestedBy = "system"
	}
	return &Movement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PieceID:           piece.ID,
		FromLocationID:    piece.LocationID,
		ToLocationID:      to,
		EquipmentID:       equipmentID,
		RequestedBy:       requestedBy,
		Status:            MovementStatusPlanned,
	}, nil
}

// IsOpen reports whether the movement has not finished
func (m *Movement) IsOpen() bool {
	return m.Status == MovementStatusPlanned || m.Status == MovementStatusInProgress
}

func (m *Movement) transition(next MovementStatus) error {
	if !m.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("movement", string(m.Status), string(next))
	}
	m.Status = next
	m.IncrementVersion()
	return nil
}

// Start marks the movement as under way
func (m *Movement) Start() error {
	if err := m.transition(MovementStatusInProgress); err != nil {
		return err
	}
	now := time.Now()
	m.StartedAt = &now
	return nil
}

// Complete marks the movement as done. from is where the piece actually left.
func (m *Movement) Complete(from *uuid.UUID) error {
	if err := m.transition(MovementStatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	if m.StartedAt == nil {
		m.StartedAt = &now
	}
	m.CompletedAt = &now
	m.FromLocationID = from
	m.AddDomainEvent(NewMovementEvent(EventTypeMovementCompleted, m))
	return nil
}

// Cancel abandons the movement
func (m *Movement) Cancel() error {
	if err := m.transition(MovementStatusCancelled); err != nil {
		return err
	}
	m.AddDomainEvent(NewMovementEvent(EventTypeMovementCancelled, m))
	return nil
}
