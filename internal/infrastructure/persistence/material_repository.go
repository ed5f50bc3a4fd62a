package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"gorm.io/gorm"
)

// GormMaterialRepository implements MaterialRepository using GORM
type GormMaterialRepository struct {
	crudRepository[purchasing.Material]
}

// NewGormMaterialRepository creates a new GormMaterialRepository
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{newCRUDRepository[purchasing.Material](db, materialQuery)}
}

var materialQuery = listQuery{
	searchColumns: []string{"code", "name"},
	filterColumns: filterColumns("status", "unit"),
	sortFields:    sortFields("code", "name", "unit_cost", "quantity_on_hand"),
	defaultOrder:  "code ASC",
}

// FindForUpdate loads and row-locks a material for a stock change
func (r *GormMaterialRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*purchasing.Material, error) {
	var m purchasing.Material
	if err := lockForUpdate(conn(ctx, r.db)).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

var _ purchasing.MaterialRepository = (*GormMaterialRepository)(nil)
