package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

var shipmentQuery = listQuery{
	searchColumns: []string{"shipment_number", "delivery_address", "carrier", "truck_number", "driver_name"},
	filterColumns: filterColumns("project_id", "status"),
	sortFields:    sortFields("shipment_number", "scheduled_date", "status", "total_weight", "dispatched_at"),
	defaultOrder:  "scheduled_date ASC, created_at DESC",
	rangeFilters: map[string]string{
		"scheduled_from": "scheduled_date >= ?",
		"scheduled_to":   "scheduled_date <= ?",
	},
}

// FindByID finds a shipment with its items
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Shipment, error) {
	var s shipping.Shipment
	if err := conn(ctx, r.db).Preload("Items", orderedItems).First(&s, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// FindAll finds shipments matching the filter
func (r *GormShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Shipment, error) {
	var list []shipping.Shipment
	query := shipmentQuery.applyFilter(conn(ctx, r.db), filter)
	if err := query.Preload("Items", orderedItems).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts shipments matching the filter
func (r *GormShipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := shipmentQuery.applyFilterWithoutPagination(conn(ctx, r.db).Model(&shipping.Shipment{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves the shipment and replaces its items
func (r *GormShipmentRepository) Save(ctx context.Context, s *shipping.Shipment) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(s).Error; err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(s.Items))
		for i := range s.Items {
			s.Items[i].ShipmentID = s.ID
			ids[i] = s.Items[i].ID
		}
		if err := pruneChildren(tx, &shipping.ShipmentItem{}, "shipment_id", s.ID, ids); err != nil {
			return err
		}
		for i := range s.Items {
			if err := tx.Save(&s.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete deletes a shipment and its items
func (r *GormShipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shipment_id = ?", id).Delete(&shipping.ShipmentItem{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &shipping.Shipment{}, id)
	})
	return translateError(err)
}

var _ shipping.ShipmentRepository = (*GormShipmentRepository)(nil)
