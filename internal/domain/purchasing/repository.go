package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// MaterialRepository defines persistence operations for materials.
// FindAll and Count accept the "status" filter key.
type MaterialRepository interface {
	shared.Repository[Material]
	FindForUpdate(ctx context.Context, id uuid.UUID) (*Material, error)
}

// PurchaseOrderRepository defines persistence operations for purchase orders.
// FindAll and Count accept the "status" and "vendor_id" filter keys.
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]
	// FindForUpdate loads an order with its items and locks it for the receiving rollup
	FindForUpdate(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
}

// ReceivingRecordRepository defines persistence operations for receiving records
type ReceivingRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReceivingRecord, error)
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]ReceivingRecord, error)
	Save(ctx context.Context, r *ReceivingRecord) error
}
