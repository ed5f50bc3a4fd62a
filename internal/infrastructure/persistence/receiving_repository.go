package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"gorm.io/gorm"
)

// GormReceivingRecordRepository implements ReceivingRecordRepository using GORM
type GormReceivingRecordRepository struct {
	db *gorm.DB
}

// NewGormReceivingRecordRepository creates a new GormReceivingRecordRepository
func NewGormReceivingRecordRepository(db *gorm.DB) *GormReceivingRecordRepository {
	return &GormReceivingRecordRepository{db: db}
}

// FindByID finds a receiving record with its items
func (r *GormReceivingRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.ReceivingRecord, error) {
	var rec purchasing.ReceivingRecord
	if err := conn(ctx, r.db).Preload("Items").First(&rec, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &rec, nil
}

// FindByPurchaseOrder lists the receipts of a purchase order, newest first
func (r *GormReceivingRecordRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]purchasing.ReceivingRecord, error) {
	var list []purchasing.ReceivingRecord
	err := conn(ctx, r.db).
		Preload("Items").
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("received_date DESC, created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Save saves a receiving record with its items. Items never change after creation.
func (r *GormReceivingRecordRepository) Save(ctx context.Context, rec *purchasing.ReceivingRecord) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(rec).Error; err != nil {
			return err
		}
		for i := range rec.Items {
			rec.Items[i].ReceivingRecordID = rec.ID
			if err := tx.Save(&rec.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

var _ purchasing.ReceivingRecordRepository = (*GormReceivingRecordRepository)(nil)
