package purchasing

import (
	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

const (
	AggregateTypePurchaseOrder   = "PurchaseOrder"
	AggregateTypeReceivingRecord = "ReceivingRecord"

	EventTypePurchaseOrderStatusChanged = "PurchaseOrderStatusChanged"
	EventTypeGoodsReceived              = "GoodsReceived"
	EventTypeReceivingRejected          = "ReceivingRejected"
)

// PurchaseOrderStatusChangedEvent is raised whenever an order changes status,
// whether by hand or by the receiving rollup
type PurchaseOrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	PONumber   string              `json:"po_number"`
	FromStatus PurchaseOrderStatus `json:"from_status"`
	ToStatus   PurchaseOrderStatus `json:"to_status"`
}

// NewPurchaseOrderStatusChangedEvent creates a PurchaseOrderStatusChangedEvent
func NewPurchaseOrderStatusChangedEvent(po *PurchaseOrder, from PurchaseOrderStatus) *PurchaseOrderStatusChangedEvent {
	return &PurchaseOrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderStatusChanged, AggregateTypePurchaseOrder, po.ID),
		PONumber:        po.PONumber,
		FromStatus:      from,
		ToStatus:        po.Status,
	}
}

// ReceivingEvent is raised when goods are received or a receipt is voided
type ReceivingEvent struct {
	shared.BaseDomainEvent
	ReceivingNumber string    `json:"receiving_number"`
	PurchaseOrderID uuid.UUID `json:"purchase_order_id"`
}

// NewReceivingEvent creates a ReceivingEvent
func NewReceivingEvent(eventType string, r *ReceivingRecord) *ReceivingEvent {
	return &ReceivingEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeReceivingRecord, r.ID),
		ReceivingNumber: r.ReceivingNumber,
		PurchaseOrderID: r.PurchaseOrderID,
	}
}
