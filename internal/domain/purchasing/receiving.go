package purchasing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReceivingStatus represents whether a receipt counts toward its order
type ReceivingStatus string

const (
	ReceivingStatusCompleted ReceivingStatus = "COMPLETED"
	ReceivingStatusRejected  ReceivingStatus = "REJECTED"
)

// ReceivingNumberPrefix prefixes generated receiving numbers
const ReceivingNumberPrefix = "RCV"

// ReceivingItem records the goods received against one order line.
// QuantityReceived counts accepted units; QuantityRejected records refused units, which never reach stock.
type ReceivingItem struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReceivingRecordID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseOrderItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantityReceived    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	QuantityRejected    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	RejectionReason     string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ReceivingItem) TableName() string {
	return "receiving_items"
}

// ReceivingInput describes the goods received for one order line
type ReceivingInput struct {
	PurchaseOrderItemID uuid.UUID
	QuantityReceived    decimal.Decimal
	QuantityRejected    decimal.Decimal
	RejectionReason     string
}

// ReceivingRecord is one delivery of goods against a purchase order
type ReceivingRecord struct {
	shared.BaseAggregateRoot
	ReceivingNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceivedBy      string          `gorm:"type:varchar(100);not null"`
	ReceivedDate    time.Time       `gorm:"not null"`
	Status          ReceivingStatus `gorm:"type:varchar(20);not null;default:'COMPLETED';index"`
	Items           []ReceivingItem `gorm:"foreignKey:ReceivingRecordID;constraint:OnDelete:CASCADE"`
	Notes           string          `gorm:"type:text"`
	VoidReason      string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ReceivingRecord) TableName() string {
	return "receiving_records"
}

// NewReceivingRecord creates a completed receipt. Quantities must be non-negative
// and at least one line must carry a quantity.
func NewReceivingRecord(purchaseOrderID uuid.UUID, receivedBy string, receivedDate time.Time, inputs []ReceivingInput) (*ReceivingRecord, error) {
	if len(inputs) == 0 {
		return nil, shared.NewDomainError("EMPTY_RECEIPT", "Receiving record requires at least one item")
	}
	receivedBy = strings.TrimSpace(receivedBy)
	if receivedBy == "" {
		receivedBy = "system"
	}
	if receivedDate.IsZero() {
		receivedDate = time.Now()
	}

	r := &ReceivingRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReceivingNumber:   shared.GenerateNumber(ReceivingNumberPrefix),
		PurchaseOrderID:   purchaseOrderID,
		ReceivedBy:        receivedBy,
		ReceivedDate:      receivedDate,
		Status:            ReceivingStatusCompleted,
	}
	counted := false
	for _, in := range inputs {
		if in.QuantityReceived.IsNegative() || in.QuantityRejected.IsNegative() {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
		}
		if in.QuantityReceived.IsPositive() || in.QuantityRejected.IsPositive() {
			counted = true
		}
		r.Items = append(r.Items, ReceivingItem{
			ID:                  uuid.New(),
			ReceivingRecordID:   r.ID,
			PurchaseOrderItemID: in.PurchaseOrderItemID,
			QuantityReceived:    in.QuantityReceived,
			QuantityRejected:    in.QuantityRejected,
			RejectionReason:     strings.TrimSpace(in.RejectionReason),
		})
	}
	if !counted {
		return nil, shared.NewDomainError("EMPTY_RECEIPT", "Receiving record must receive or reject at least one unit")
	}
	r.AddDomainEvent(NewReceivingEvent(EventTypeGoodsReceived, r))
	return r, nil
}

// Reject voids a completed receipt
func (r *ReceivingRecord) Reject(reason string) error {
	if r.Status != ReceivingStatusCompleted {
		return shared.InvalidTransition("receiving record", string(r.Status), string(ReceivingStatusRejected))
	}
	r.Status = ReceivingStatusRejected
	r.VoidReason = strings.TrimSpace(reason)
	r.IncrementVersion()
	r.AddDomainEvent(NewReceivingEvent(EventTypeReceivingRejected, r))
	return nil
}
