package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// CreateMaterialRequest represents a request to create a material
type CreateMaterialRequest struct {
	Code         string           `json:"code" binding:"required,max=50"`
	Name         string           `json:"name" binding:"required,max=200"`
	Unit         string           `json:"unit" binding:"max=20"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
}

// UpdateMaterialRequest represents a partial update of a material
type UpdateMaterialRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=200"`
	Unit         *string          `json:"unit" binding:"omitempty,max=20"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
	Status       *string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// MaterialListFilter represents the query parameters of the material list
type MaterialListFilter struct {
	common.ListParams
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// MaterialResponse represents a material in API responses
type MaterialResponse struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	ReorderPoint   decimal.Decimal `json:"reorder_point"`
	NeedsReorder   bool            `json:"needs_reorder"`
	Status         string          `json:"status"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToMaterialResponse converts a domain material to a response
func ToMaterialResponse(m *purchasing.Material) MaterialResponse {
	return MaterialResponse{
		ID:             m.ID,
		Code:           m.Code,
		Name:           m.Name,
		Unit:           m.Unit,
		UnitCost:       m.UnitCost,
		QuantityOnHand: m.QuantityOnHand,
		ReorderPoint:   m.ReorderPoint,
		NeedsReorder:   m.NeedsReorder(),
		Status:         string(m.Status),
		Version:        m.Version,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PurchaseOrderItemRequest is an order line in a request
type PurchaseOrderItemRequest struct {
	MaterialID  *uuid.UUID      `json:"material_id"`
	Description string          `json:"description" binding:"required,max=500"`
	Unit        string          `json:"unit" binding:"max=20"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest represents a request to create a draft purchase order
type CreatePurchaseOrderRequest struct {
	VendorID     uuid.UUID                  `json:"vendor_id" binding:"required"`
	ExpectedDate *time.Time                 `json:"expected_date"`
	Items        []PurchaseOrderItemRequest `json:"items" binding:"dive"`
	Notes        string                     `json:"notes"`
}

// UpdatePurchaseOrderRequest represents a partial update of a draft purchase order
type UpdatePurchaseOrderRequest struct {
	VendorID     *uuid.UUID                  `json:"vendor_id"`
	ExpectedDate *time.Time                  `json:"expected_date"`
	Items        *[]PurchaseOrderItemRequest `json:"items" binding:"omitempty,dive"`
	Notes        *string                     `json:"notes"`
}

// UpdatePurchaseOrderStatusRequest changes a purchase order's status
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT PENDING_APPROVAL APPROVED SENT PARTIALLY_RECEIVED RECEIVED CLOSED CANCELLED"`
}

// PurchaseOrderListFilter represents the query parameters of the purchase order list
type PurchaseOrderListFilter struct {
	common.ListParams
	Status   string     `form:"status" binding:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED SENT PARTIALLY_RECEIVED RECEIVED CLOSED CANCELLED"`
	VendorID *uuid.UUID `form:"vendor_id"`
}

// PurchaseOrderItemResponse represents an order line in API responses
type PurchaseOrderItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	MaterialID       *uuid.UUID      `json:"material_id,omitempty"`
	Description      string          `json:"description"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
	Status           string          `json:"status"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	PONumber     string                      `json:"po_number"`
	VendorID     uuid.UUID                   `json:"vendor_id"`
	VendorName   string                      `json:"vendor_name,omitempty"`
	Status       string                      `json:"status"`
	OrderDate    time.Time                   `json:"order_date"`
	ExpectedDate *time.Time                  `json:"expected_date,omitempty"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal             `json:"total_amount"`
	Notes        string                      `json:"notes"`
	Version      int                         `json:"version"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order to a response
func ToPurchaseOrderResponse(po *purchasing.PurchaseOrder, vendorName string) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(po.Items))
	for i, item := range po.Items {
		items[i] = PurchaseOrderItemResponse{
			ID:               item.ID,
			MaterialID:       item.MaterialID,
			Description:      item.Description,
			Unit:             item.Unit,
			Quantity:         item.Quantity,
			ReceivedQuantity: item.ReceivedQuantity,
			UnitPrice:        item.UnitPrice,
			LineTotal:        item.LineTotal,
			Status:           string(item.Status),
		}
	}
	return PurchaseOrderResponse{
		ID:           po.ID,
		PONumber:     po.PONumber,
		VendorID:     po.VendorID,
		VendorName:   vendorName,
		Status:       string(po.Status),
		OrderDate:    po.OrderDate,
		ExpectedDate: po.ExpectedDate,
		Items:        items,
		TotalAmount:  po.TotalAmount,
		Notes:        po.Notes,
		Version:      po.Version,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	}
}

func toItemInputs(items []PurchaseOrderItemRequest) []purchasing.ItemInput {
	inputs := make([]purchasing.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = purchasing.ItemInput{
			MaterialID:  item.MaterialID,
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return inputs
}

// ReceivingItemRequest is the goods received for one order line
type ReceivingItemRequest struct {
	PurchaseOrderItemID uuid.UUID       `json:"purchase_order_item_id" binding:"required"`
	QuantityReceived    decimal.Decimal `json:"quantity_received"`
	QuantityRejected    decimal.Decimal `json:"quantity_rejected"`
	RejectionReason     string          `json:"rejection_reason" binding:"max=500"`
}

// CreateReceivingRecordRequest represents a delivery against a purchase order
type CreateReceivingRecordRequest struct {
	ReceivedBy   string                 `json:"received_by" binding:"max=100"`
	ReceivedDate *time.Time             `json:"received_date"`
	Items        []ReceivingItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes        string                 `json:"notes"`
}

// RejectReceivingRecordRequest voids a receiving record
type RejectReceivingRecordRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ReceivingItemResponse represents a receiving line in API responses
type ReceivingItemResponse struct {
	ID                  uuid.UUID       `json:"id"`
	PurchaseOrderItemID uuid.UUID       `json:"purchase_order_item_id"`
	QuantityReceived    decimal.Decimal `json:"quantity_received"`
	QuantityRejected    decimal.Decimal `json:"quantity_rejected"`
	RejectionReason     string          `json:"rejection_reason,omitempty"`
}

// ReceivingRecordResponse represents a receiving record in API responses
type ReceivingRecordResponse struct {
	ID              uuid.UUID               `json:"id"`
	ReceivingNumber string                  `json:"receiving_number"`
	PurchaseOrderID uuid.UUID               `json:"purchase_order_id"`
	ReceivedBy      string                  `json:"received_by"`
	ReceivedDate    time.Time               `json:"received_date"`
	Status          string                  `json:"status"`
	Items           []ReceivingItemResponse `json:"items"`
	Notes           string                  `json:"notes"`
	VoidReason      string                  `json:"void_reason,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// ToReceivingRecordResponse converts a domain receiving record to a response
func ToReceivingRecordResponse(r *purchasing.ReceivingRecord) ReceivingRecordResponse {
	items := make([]ReceivingItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = ReceivingItemResponse{
			ID:                  item.ID,
			PurchaseOrderItemID: item.PurchaseOrderItemID,
			QuantityReceived:    item.QuantityReceived,
			QuantityRejected:    item.QuantityRejected,
			RejectionReason:     item.RejectionReason,
		}
	}
	return ReceivingRecordResponse{
		ID:              r.ID,
		ReceivingNumber: r.ReceivingNumber,
		PurchaseOrderID: r.PurchaseOrderID,
		ReceivedBy:      r.ReceivedBy,
		ReceivedDate:    r.ReceivedDate,
		Status:          string(r.Status),
		Items:           items,
		Notes:           r.Notes,
		VoidReason:      r.VoidReason,
		CreatedAt:       r.CreatedAt,
	}
}
