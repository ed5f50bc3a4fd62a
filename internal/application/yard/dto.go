package yard

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/yard"
	"github.com/shopspring/decimal"
)

// CreateLocationRequest represents a request to create a yard location
type CreateLocationRequest struct {
	Code     string `json:"code" binding:"required,max=50"`
	Zone     string `json:"zone" binding:"required,max=50"`
	Row      string `json:"row" binding:"max=20"`
	Bay      string `json:"bay" binding:"max=20"`
	Capacity int    `json:"capacity" binding:"omitempty,min=1"`
	Notes    string `json:"notes"`
}

// UpdateLocationRequest represents a partial update of a yard location
type UpdateLocationRequest struct {
	Zone     *string `json:"zone" binding:"omitempty,max=50"`
	Row      *string `json:"row" binding:"omitempty,max=20"`
	Bay      *string `json:"bay" binding:"omitempty,max=20"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
	Status   *string `json:"status" binding:"omitempty,oneof=AVAILABLE RESERVED MAINTENANCE"`
	Notes    *string `json:"notes"`
}

// LocationListFilter represents the query parameters of the location list
type LocationListFilter struct {
	common.ListParams
	Zone   string `form:"zone"`
	Status string `form:"status" binding:"omitempty,oneof=AVAILABLE FULL RESERVED MAINTENANCE"`
}

// LocationResponse represents a yard location in API responses
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Zone      string    `json:"zone"`
	Row       string    `json:"row"`
	Bay       string    `json:"bay"`
	Capacity  int       `json:"capacity"`
	Occupied  int       `json:"occupied"`
	Free      int       `json:"free"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToLocationResponse converts a domain location to a response
func ToLocationResponse(l *yard.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Code:      l.Code,
		Zone:      l.Zone,
		Row:       l.Row,
		Bay:       l.Bay,
		Capacity:  l.Capacity,
		Occupied:  l.Occupied,
		Free:      l.Free(),
		Status:    string(l.Status),
		Notes:     l.Notes,
		Version:   l.Version,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// CreatePieceRequest registers a cast piece, optionally already placed at a location
type CreatePieceRequest struct {
	PieceMark   string          `json:"piece_mark" binding:"required,max=50"`
	ProjectID   uuid.UUID       `json:"project_id" binding:"required"`
	ElementType string          `json:"element_type" binding:"required,max=50"`
	Weight      decimal.Decimal `json:"weight"`
	PourDate    *time.Time      `json:"pour_date"`
	LocationID  *uuid.UUID      `json:"location_id"`
	Notes       string          `json:"notes"`
}

// UpdatePieceRequest represents a partial update of a piece. Location changes go through movements.
type UpdatePieceRequest struct {
	ElementType *string          `json:"element_type" binding:"omitempty,max=50"`
	Weight      *decimal.Decimal `json:"weight"`
	PourDate    *time.Time       `json:"pour_date"`
	Status      *string          `json:"status" binding:"omitempty,oneof=CURING IN_YARD LOADED SHIPPED"`
	Notes       *string          `json:"notes"`
}

// PieceListFilter represents the query parameters of the piece list
type PieceListFilter struct {
	common.ListParams
	ProjectID   *uuid.UUID `form:"project_id"`
	LocationID  *uuid.UUID `form:"location_id"`
	Status      string     `form:"status" binding:"omitempty,oneof=CURING IN_YARD LOADED SHIPPED"`
	ElementType string     `form:"element_type"`
}

// PieceResponse represents a piece in API responses
type PieceResponse struct {
	ID           uuid.UUID       `json:"id"`
	PieceMark    string          `json:"piece_mark"`
	ProjectID    uuid.UUID       `json:"project_id"`
	ProjectName  string          `json:"project_name,omitempty"`
	ElementType  string          `json:"element_type"`
	Weight       decimal.Decimal `json:"weight"`
	PourDate     *time.Time      `json:"pour_date,omitempty"`
	LocationID   *uuid.UUID      `json:"location_id,omitempty"`
	LocationCode string          `json:"location_code,omitempty"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToPieceResponse converts a domain piece to a response
func ToPieceResponse(p *yard.Piece, projectName, locationCode string) PieceResponse {
	return PieceResponse{
		ID:           p.ID,
		PieceMark:    p.PieceMark,
		ProjectID:    p.ProjectID,
		ProjectName:  projectName,
		ElementType:  p.ElementType,
		Weight:       p.Weight,
		PourDate:     p.PourDate,
		LocationID:   p.LocationID,
		LocationCode: locationCode,
		Status:       string(p.Status),
		Notes:        p.Notes,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// CreateEquipmentRequest represents a request to register equipment
type CreateEquipmentRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Type         string          `json:"type" binding:"omitempty,oneof=CRANE FORKLIFT GANTRY TRUCK OTHER"`
	CapacityTons decimal.Decimal `json:"capacity_tons"`
	Notes        string          `json:"notes"`
}

// UpdateEquipmentRequest represents a partial update of equipment
type UpdateEquipmentRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	Type         *string          `json:"type" binding:"omitempty,oneof=CRANE FORKLIFT GANTRY TRUCK OTHER"`
	Status       *string          `json:"status" binding:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE"`
	CapacityTons *decimal.Decimal `json:"capacity_tons"`
	Notes        *string          `json:"notes"`
}

// EquipmentListFilter represents the query parameters of the equipment list
type EquipmentListFilter struct {
	common.ListParams
	Type   string `form:"type" binding:"omitempty,oneof=CRANE FORKLIFT GANTRY TRUCK OTHER"`
	Status string `form:"status" binding:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE"`
}

// EquipmentResponse represents equipment in API responses
type EquipmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	CapacityTons decimal.Decimal `json:"capacity_tons"`
	Notes        string          `json:"notes"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToEquipmentResponse converts domain equipment to a response
func ToEquipmentResponse(e *yard.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:           e.ID,
		Name:         e.Name,
		Type:         string(e.Type),
		Status:       string(e.Status),
		CapacityTons: e.CapacityTons,
		Notes:        e.Notes,
		Version:      e.Version,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// CreateMovementRequest plans a piece move
type CreateMovementRequest struct {
	PieceID      uuid.UUID  `json:"piece_id" binding:"required"`
	ToLocationID uuid.UUID  `json:"to_location_id" binding:"required"`
	EquipmentID  *uuid.UUID `json:"equipment_id"`
	RequestedBy  string     `json:"requested_by" binding:"max=100"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	Notes        string     `json:"notes"`
}

// MovementListFilter represents the query parameters of the movement list
type MovementListFilter struct {
	common.ListParams
	PieceID     *uuid.UUID `form:"piece_id"`
	EquipmentID *uuid.UUID `form:"equipment_id"`
	Status      string     `form:"status" binding:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
}

// MovementResponse represents a movement in API responses
type MovementResponse struct {
	ID             uuid.UUID  `json:"id"`
	PieceID        uuid.UUID  `json:"piece_id"`
	FromLocationID *uuid.UUID `json:"from_location_id,omitempty"`
	ToLocationID   uuid.UUID  `json:"to_location_id"`
	EquipmentID    *uuid.UUID `json:"equipment_id,omitempty"`
	RequestedBy    string     `json:"requested_by"`
	Status         string     `json:"status"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Notes          string     `json:"notes"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToMovementResponse converts a domain movement to a response
func ToMovementResponse(m *yard.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		PieceID:        m.PieceID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		EquipmentID:    m.EquipmentID,
		RequestedBy:    m.RequestedBy,
		Status:         string(m.Status),
		ScheduledAt:    m.ScheduledAt,
		StartedAt:      m.StartedAt,
		CompletedAt:    m.CompletedAt,
		Notes:          m.Notes,
		Version:        m.Version,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
