package shipping

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// ShipmentItemRequest is a piece to load. Weight is in tonnes.
type ShipmentItemRequest struct {
	PieceID   uuid.UUID       `json:"piece_id" binding:"required"`
	PieceMark string          `json:"piece_mark" binding:"required,max=50"`
	Weight    decimal.Decimal `json:"weight"`
}

// CreateShipmentRequest plans a shipment
type CreateShipmentRequest struct {
	ProjectID       uuid.UUID             `json:"project_id" binding:"required"`
	DeliveryAddress string                `json:"delivery_address"`
	ScheduledDate   *time.Time            `json:"scheduled_date"`
	Carrier         string                `json:"carrier" binding:"max=100"`
	TruckNumber     string                `json:"truck_number" binding:"max=50"`
	DriverName      string                `json:"driver_name" binding:"max=100"`
	MaxWeight       *decimal.Decimal      `json:"max_weight"`
	Items           []ShipmentItemRequest `json:"items" binding:"omitempty,dive"`
	Notes           string                `json:"notes"`
}

// UpdateShipmentRequest represents a partial update. Items replace the whole load.
type UpdateShipmentRequest struct {
	DeliveryAddress *string                `json:"delivery_address"`
	ScheduledDate   *time.Time             `json:"scheduled_date"`
	Carrier         *string                `json:"carrier" binding:"omitempty,max=100"`
	TruckNumber     *string                `json:"truck_number" binding:"omitempty,max=50"`
	DriverName      *string                `json:"driver_name" binding:"omitempty,max=100"`
	MaxWeight       *decimal.Decimal       `json:"max_weight"`
	Items           *[]ShipmentItemRequest `json:"items" binding:"omitempty,dive"`
	Notes           *string                `json:"notes"`
}

// ConfirmDeliveryRequest names who received the load
type ConfirmDeliveryRequest struct {
	ReceivedBy string `json:"received_by" binding:"required,max=100"`
}

// ShipmentListFilter represents the query parameters of the shipment list
type ShipmentListFilter struct {
	common.ListParams
	ProjectID     *uuid.UUID `form:"project_id"`
	Status        string     `form:"status" binding:"omitempty,oneof=PLANNED LOADING IN_TRANSIT DELIVERED CANCELLED"`
	ScheduledFrom *time.Time `form:"scheduled_from" time_format:"2006-01-02"`
	ScheduledTo   *time.Time `form:"scheduled_to" time_format:"2006-01-02"`
}

// ShipmentItemResponse represents a loaded piece
type ShipmentItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	PieceID   uuid.UUID       `json:"piece_id"`
	PieceMark string          `json:"piece_mark"`
	Weight    decimal.Decimal `json:"weight"`
}

// ShipmentResponse represents a shipment in API responses
type ShipmentResponse struct {
	ID                uuid.UUID              `json:"id"`
	ShipmentNumber    string                 `json:"shipment_number"`
	ProjectID         uuid.UUID              `json:"project_id"`
	ProjectName       string                 `json:"project_name,omitempty"`
	DeliveryAddress   string                 `json:"delivery_address"`
	ScheduledDate     *time.Time             `json:"scheduled_date,omitempty"`
	Carrier           string                 `json:"carrier"`
	TruckNumber       string                 `json:"truck_number"`
	DriverName        string                 `json:"driver_name"`
	Status            string                 `json:"status"`
	Items             []ShipmentItemResponse `json:"items"`
	TotalWeight       decimal.Decimal        `json:"total_weight"`
	MaxWeight         decimal.Decimal        `json:"max_weight"`
	RemainingCapacity decimal.Decimal        `json:"remaining_capacity"`
	DispatchedAt      *time.Time             `json:"dispatched_at,omitempty"`
	DeliveredAt       *time.Time             `json:"delivered_at,omitempty"`
	ReceivedBy        string                 `json:"received_by,omitempty"`
	Notes             string                 `json:"notes"`
	Version           int                    `json:"version"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// ToShipmentResponse converts a domain shipment to a response
func ToShipmentResponse(s *shipping.Shipment, projectName string) ShipmentResponse {
	items := make([]ShipmentItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = ShipmentItemResponse{ID: it.ID, PieceID: it.PieceID, PieceMark: it.PieceMark, Weight: it.Weight}
	}
	return ShipmentResponse{
		ID:                s.ID,
		ShipmentNumber:    s.ShipmentNumber,
		ProjectID:         s.ProjectID,
		ProjectName:       projectName,
		DeliveryAddress:   s.DeliveryAddress,
		ScheduledDate:     s.ScheduledDate,
		Carrier:           s.Carrier,
		TruckNumber:       s.TruckNumber,
		DriverName:        s.DriverName,
		Status:            string(s.Status),
		Items:             items,
		TotalWeight:       s.TotalWeight,
		MaxWeight:         s.MaxWeight,
		RemainingCapacity: s.RemainingCapacity(),
		DispatchedAt:      s.DispatchedAt,
		DeliveredAt:       s.DeliveredAt,
		ReceivedBy:        s.ReceivedBy,
		Notes:             s.Notes,
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toItemInputs(reqs []ShipmentItemRequest) []shipping.ItemInput {
	inputs := make([]shipping.ItemInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = shipping.ItemInput{PieceID: r.PieceID, PieceMark: r.PieceMark, Weight: r.Weight}
	}
	return inputs
}
