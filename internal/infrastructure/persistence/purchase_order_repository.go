package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

var purchaseOrderQuery = listQuery{
	searchColumns: []string{"po_number", "notes"},
	filterColumns: filterColumns("status", "vendor_id"),
	sortFields:    sortFields("po_number", "status", "order_date", "expected_date", "total_amount"),
	defaultOrder:  "created_at DESC",
}

// FindByID finds a purchase order with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	return r.find(conn(ctx, r.db), id)
}

// FindForUpdate finds a purchase order with its items and row-locks the order
func (r *GormPurchaseOrderRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	return r.find(lockForUpdate(conn(ctx, r.db)), id)
}

func (r *GormPurchaseOrderRepository) find(db *gorm.DB, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	var po purchasing.PurchaseOrder
	if err := db.Preload("Items", orderedItems).First(&po, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &po, nil
}

// FindAll finds purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.PurchaseOrder, error) {
	var list []purchasing.PurchaseOrder
	query := purchaseOrderQuery.applyFilter(conn(ctx, r.db), filter)
	if err := query.Preload("Items", orderedItems).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts purchase orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := purchaseOrderQuery.applyFilterWithoutPagination(conn(ctx, r.db).Model(&purchasing.PurchaseOrder{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves the purchase order and replaces its items
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, po *purchasing.PurchaseOrder) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(po).Error; err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(po.Items))
		for i := range po.Items {
			po.Items[i].PurchaseOrderID = po.ID
			ids[i] = po.Items[i].ID
		}
		if err := pruneChildren(tx, &purchasing.PurchaseOrderItem{}, "purchase_order_id", po.ID, ids); err != nil {
			return err
		}
		for i := range po.Items {
			if err := tx.Save(&po.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete deletes a purchase order and its items
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).Delete(&purchasing.PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &purchasing.PurchaseOrder{}, id)
	})
	return translateError(err)
}

var _ purchasing.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
