package purchasing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the lifecycle state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft             PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusPendingApproval   PurchaseOrderStatus = "PENDING_APPROVAL"
	PurchaseOrderStatusApproved          PurchaseOrderStatus = "APPROVED"
	PurchaseOrderStatusSent              PurchaseOrderStatus = "SENT"
	PurchaseOrderStatusPartiallyReceived PurchaseOrderStatus = "PARTIALLY_RECEIVED"
	PurchaseOrderStatusReceived          PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusClosed            PurchaseOrderStatus = "CLOSED"
	PurchaseOrderStatusCancelled         PurchaseOrderStatus = "CANCELLED"
)

var purchaseOrderTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	PurchaseOrderStatusDraft:             {PurchaseOrderStatusPendingApproval, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusPendingApproval:   {PurchaseOrderStatusApproved, PurchaseOrderStatusDraft, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusApproved:          {PurchaseOrderStatusSent, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusSent:              {PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusPartiallyReceived: {PurchaseOrderStatusReceived, PurchaseOrderStatusClosed},
	PurchaseOrderStatusReceived:          {PurchaseOrderStatusClosed},
}

// IsValid checks if the status is valid
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusPendingApproval, PurchaseOrderStatusApproved,
		PurchaseOrderStatusSent, PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusReceived,
		PurchaseOrderStatusClosed, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order may move to next
func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	for _, allowed := range purchaseOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ItemStatus is the receiving state of a purchase order line
type ItemStatus string

const (
	ItemStatusPending           ItemStatus = "PENDING"
	ItemStatusPartiallyReceived ItemStatus = "PARTIALLY_RECEIVED"
	ItemStatusReceived          ItemStatus = "RECEIVED"
)

// PONumberPrefix prefixes generated purchase order numbers
const PONumberPrefix = "PO"

// PurchaseOrderItem is an ordered line
type PurchaseOrderItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID       *uuid.UUID      `gorm:"type:uuid;index"`
	Description      string          `gorm:"type:varchar(500);not null"`
	Unit             string          `gorm:"type:varchar(20);not null;default:'EA'"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status           ItemStatus      `gorm:"type:varchar(20);not null;default:'PENDING'"`
	SortOrder        int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// Outstanding returns the quantity still to be received
func (i *PurchaseOrderItem) Outstanding() decimal.Decimal {
	out := i.Quantity.Sub(i.ReceivedQuantity)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

func (i *PurchaseOrderItem) recomputeStatus() {
	switch {
	case i.ReceivedQuantity.GreaterThanOrEqual(i.Quantity):
		i.Status = ItemStatusReceived
	case i.ReceivedQuantity.IsPositive():
		i.Status = ItemStatusPartiallyReceived
	default:
		i.Status = ItemStatusPending
	}
}

// ItemInput describes a purchase order line to add
type ItemInput struct {
	MaterialID  *uuid.UUID
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// PurchaseOrder is an order for materials placed with a vendor
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	PONumber     string              `gorm:"column:po_number;type:varchar(50);not null;uniqueIndex"`
	VendorID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(30);not null;default:'DRAFT';index"`
	OrderDate    time.Time           `gorm:"type:date;not null"`
	ExpectedDate *time.Time          `gorm:"type:date"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	Notes        string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a draft order dated today
func NewPurchaseOrder(vendorID uuid.UUID) (*PurchaseOrder, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Purchase order requires a vendor")
	}
	po := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PONumber:          shared.GenerateNumber(PONumberPrefix),
		VendorID:          vendorID,
		Status:            PurchaseOrderStatusDraft,
		Items:             []PurchaseOrderItem{},
		TotalAmount:       decimal.Zero,
	}
	po.OrderDate = shared.TruncateToDay(po.CreatedAt)
	return po, nil
}

// IsEditable reports whether lines may change
func (po *PurchaseOrder) IsEditable() bool {
	return po.Status == PurchaseOrderStatusDraft
}

// CanReceive reports whether goods may be received against the order
func (po *PurchaseOrder) CanReceive() bool {
	return po.Status == PurchaseOrderStatusSent || po.Status == PurchaseOrderStatusPartiallyReceived
}

// CanDelete reports whether the order may be deleted
func (po *PurchaseOrder) CanDelete() bool {
	return po.Status == PurchaseOrderStatusDraft || po.Status == PurchaseOrderStatusCancelled
}

// SetItems replaces every line and recomputes the total
func (po *PurchaseOrder) SetItems(inputs []ItemInput) error {
	if !po.IsEditable() {
		return shared.NewDomainError(shared.CodeInvalidState, "Only draft purchase orders can be edited")
	}
	items := make([]PurchaseOrderItem, 0, len(inputs))
	total := decimal.Zero
	for i, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			return shared.NewDomainError("INVALID_DESCRIPTION", "Item description cannot be empty")
		}
		if !in.Quantity.IsPositive() {
			return shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
		}
		if in.UnitPrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		unit := strings.TrimSpace(in.Unit)
		if unit == "" {
			unit = "EA"
		}
		line := in.Quantity.Mul(in.UnitPrice).Round(2)
		items = append(items, PurchaseOrderItem{
			ID:               uuid.New(),
			PurchaseOrderID:  po.ID,
			MaterialID:       in.MaterialID,
			Description:      desc,
			Unit:             unit,
			Quantity:         in.Quantity,
			ReceivedQuantity: decimal.Zero,
			UnitPrice:        in.UnitPrice,
			LineTotal:        line,
			Status:           ItemStatusPending,
			SortOrder:        i,
		})
		total = total.Add(line)
	}
	po.Items = items
	po.TotalAmount = total
	po.IncrementVersion()
	return nil
}

// SetExpectedDate sets the promised delivery date. It may not precede the order date.
func (po *PurchaseOrder) SetExpectedDate(expected *time.Time) error {
	if expected != nil && shared.TruncateToDay(*expected).Before(po.OrderDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "Expected date cannot be before the order date")
	}
	po.ExpectedDate = expected
	return nil
}

// UpdateStatus moves the order through its lifecycle
func (po *PurchaseOrder) UpdateStatus(next PurchaseOrderStatus) error {
	if !next.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid purchase order status")
	}
	if !po.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("purchase order", string(po.Status), string(next))
	}
	if next == PurchaseOrderStatusPendingApproval && len(po.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Cannot submit a purchase order without items")
	}
	po.setStatus(next)
	return nil
}

func (po *PurchaseOrder) setStatus(next PurchaseOrderStatus) {
	if next == po.Status {
		return
	}
	from := po.Status
	po.Status = next
	po.IncrementVersion()
	po.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(po, from))
}

// Item returns the line with the given ID
func (po *PurchaseOrder) Item(id uuid.UUID) (*PurchaseOrderItem, error) {
	for i := range po.Items {
		if po.Items[i].ID == id {
			return &po.Items[i], nil
		}
	}
	return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Purchase order item not found")
}

// Receive adds qty to a line's received quantity. qty may not exceed the outstanding quantity.
func (po *PurchaseOrder) Receive(itemID uuid.UUID, qty decimal.Decimal) (*PurchaseOrderItem, error) {
	if !po.CanReceive() {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Goods can only be received against sent or partially received purchase orders")
	}
	if qty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received quantity cannot be negative")
	}
	item, err := po.Item(itemID)
	if err != nil {
		return nil, err
	}
	if qty.GreaterThan(item.Outstanding()) {
		return nil, shared.NewDomainError("OVER_RECEIPT", "Received quantity exceeds the outstanding quantity of "+item.Description)
	}
	item.ReceivedQuantity = item.ReceivedQuantity.Add(qty)
	return item, nil
}

// ReverseReceipt subtracts qty from a line's received quantity
func (po *PurchaseOrder) ReverseReceipt(itemID uuid.UUID, qty decimal.Decimal) (*PurchaseOrderItem, error) {
	switch po.Status {
	case PurchaseOrderStatusSent, PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusReceived:
	default:
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Receipts cannot be reversed on a "+strings.ToLower(string(po.Status))+" purchase order")
	}
	item, err := po.Item(itemID)
	if err != nil {
		return nil, err
	}
	next := item.ReceivedQuantity.Sub(qty)
	if next.IsNegative() {
		next = decimal.Zero
	}
	item.ReceivedQuantity = next
	return item, nil
}

// Rollup recomputes each line's status and folds the order status from them.
// An order with nothing received left falls back to SENT.
func (po *PurchaseOrder) Rollup() {
	if len(po.Items) == 0 {
		return
	}
	all, some := true, false
	for i := range po.Items {
		po.Items[i].recomputeStatus()
		if po.Items[i].Status != ItemStatusReceived {
			all = false
		}
		if po.Items[i].ReceivedQuantity.IsPositive() {
			some = true
		}
	}
	switch {
	case all:
		po.setStatus(PurchaseOrderStatusReceived)
	case some:
		po.setStatus(PurchaseOrderStatusPartiallyReceived)
	case po.Status == PurchaseOrderStatusPartiallyReceived || po.Status == PurchaseOrderStatusReceived:
		po.setStatus(PurchaseOrderStatusSent)
	}
}
