package yard

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PieceStatus is where a precast piece is in its life after casting
type PieceStatus string

const (
	PieceStatusCuring  PieceStatus = "CURING"
	PieceStatusInYard  PieceStatus = "IN_YARD"
	PieceStatusLoaded  PieceStatus = "LOADED"
	PieceStatusShipped PieceStatus = "SHIPPED"
)

var pieceTransitions = map[PieceStatus][]PieceStatus{
	PieceStatusCuring:  {PieceStatusInYard},
	PieceStatusInYard:  {PieceStatusLoaded},
	PieceStatusLoaded:  {PieceStatusInYard, PieceStatusShipped},
	PieceStatusShipped: {},
}

// IsValid checks if the status is valid
func (s PieceStatus) IsValid() bool {
	_, ok := pieceTransitions[s]
	return ok
}

// CanTransitionTo reports whether a piece may move to next
func (s PieceStatus) CanTransitionTo(next PieceStatus) bool {
	for _, allowed := range pieceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Piece is a cast precast element held in yard inventory
type Piece struct {
	shared.BaseAggregateRoot
	PieceMark   string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ElementType string          `gorm:"type:varchar(50);not null;index"`
	Weight      decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	PourDate    *time.Time      `gorm:"type:date"`
	LocationID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status      PieceStatus     `gorm:"type:varchar(20);not null;default:'CURING';index"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Piece) TableName() string {
	return "yard_pieces"
}

// NewPiece registers a freshly cast piece. Weight is in tons.
func NewPiece(mark string, projectID uuid.UUID, elementType string, weight decimal.Decimal) (*Piece, error) {
	mark = strings.ToUpper(strings.TrimSpace(mark))
	if mark == "" {
		return nil, shared.NewDomainError("INVALID_PIECE_MARK", "Piece mark cannot be empty")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Piece requires a project")
	}
	elementType = strings.ToUpper(strings.TrimSpace(elementType))
	if elementType == "" {
		return nil, shared.NewDomainError("INVALID_ELEMENT_TYPE", "Element type cannot be empty")
	}
	p := &Piece{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PieceMark:         mark,
		ProjectID:         projectID,
		ElementType:       elementType,
		Status:            PieceStatusCuring,
	}
	if err := p.SetWeight(weight); err != nil {
		return nil, err
	}
	return p, nil
}

// SetWeight sets the weight in tons
func (p *Piece) SetWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}
	p.Weight = weight
	return nil
}

// IsMovable reports whether the piece may be moved between yard locations
func (p *Piece) IsMovable() bool {
	return p.Status == PieceStatusCuring || p.Status == PieceStatusInYard
}

// PlaceAt records the piece at a location. A curing piece enters the yard.
func (p *Piece) PlaceAt(locationID uuid.UUID) error {
	if !p.IsMovable() {
		return shared.NewDomainError(shared.CodeInvalidState, "Piece "+p.PieceMark+" is "+strings.ToLower(string(p.Status))+" and cannot be moved")
	}
	p.LocationID = &locationID
	if p.Status == PieceStatusCuring {
		p.Status = PieceStatusInYard
	}
	p.IncrementVersion()
	return nil
}

// ChangeStatus moves the piece through its lifecycle
func (p *Piece) ChangeStatus(next PieceStatus) error {
	if !next.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid piece status")
	}
	if p.Status == next {
		return nil
	}
	if !p.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("piece", string(p.Status), string(next))
	}
	p.Status = next
	p.IncrementVersion()
	return nil
}
