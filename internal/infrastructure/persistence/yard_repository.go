package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/yard"
	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM
type GormLocationRepository struct {
	crudRepository[yard.Location]
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{newCRUDRepository[yard.Location](db, locationQuery)}
}

var locationQuery = listQuery{
	searchColumns: []string{"code", "zone", "notes"},
	filterColumns: filterColumns("zone", "status"),
	sortFields:    sortFields("code", "zone", "capacity", "occupied", "status"),
	defaultOrder:  "zone ASC, code ASC",
}

// FindForUpdate loads and row-locks a location for an occupancy change
func (r *GormLocationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*yard.Location, error) {
	var l yard.Location
	if err := lockForUpdate(conn(ctx, r.db)).First(&l, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &l, nil
}

// FindAvailable returns the AVAILABLE locations with at least minFree free slots
func (r *GormLocationRepository) FindAvailable(ctx context.Context, minFree int) ([]yard.Location, error) {
	var list []yard.Location
	err := conn(ctx, r.db).
		Where("status = ? AND capacity - occupied >= ?", yard.LocationStatusAvailable, minFree).
		Order("zone ASC, code ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GormPieceRepository implements PieceRepository using GORM
type GormPieceRepository struct {
	crudRepository[yard.Piece]
}

// NewGormPieceRepository creates a new GormPieceRepository
func NewGormPieceRepository(db *gorm.DB) *GormPieceRepository {
	return &GormPieceRepository{newCRUDRepository[yard.Piece](db, pieceQuery)}
}

var pieceQuery = listQuery{
	searchColumns: []string{"piece_mark", "element_type", "notes"},
	filterColumns: filterColumns("project_id", "status", "element_type", "location_id"),
	sortFields:    sortFields("piece_mark", "element_type", "weight", "pour_date", "status", "created_at"),
	defaultOrder:  "piece_mark ASC",
}

// FindForUpdate loads and row-locks a piece
func (r *GormPieceRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*yard.Piece, error) {
	var p yard.Piece
	if err := lockForUpdate(conn(ctx, r.db)).First(&p, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

// GormEquipmentRepository implements EquipmentRepository using GORM
type GormEquipmentRepository struct {
	crudRepository[yard.Equipment]
}

// NewGormEquipmentRepository creates a new GormEquipmentRepository
func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{newCRUDRepository[yard.Equipment](db, equipmentQuery)}
}

var equipmentQuery = listQuery{
	searchColumns: []string{"name", "notes"},
	filterColumns: filterColumns("type", "status"),
	sortFields:    sortFields("name", "type", "status", "capacity_tons"),
	defaultOrder:  "name ASC",
}

// FindForUpdate loads and row-locks equipment
func (r *GormEquipmentRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*yard.Equipment, error) {
	var e yard.Equipment
	if err := lockForUpdate(conn(ctx, r.db)).First(&e, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

// GormMovementRepository implements MovementRepository using GORM
type GormMovementRepository struct {
	crudRepository[yard.Movement]
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{newCRUDRepository[yard.Movement](db, movementQuery)}
}

var movementQuery = listQuery{
	searchColumns: []string{"requested_by", "notes"},
	filterColumns: filterColumns("piece_id", "status", "equipment_id"),
	sortFields:    sortFields("status", "scheduled_at", "completed_at", "created_at"),
	defaultOrder:  "created_at DESC",
}

var (
	_ yard.LocationRepository  = (*GormLocationRepository)(nil)
	_ yard.PieceRepository     = (*GormPieceRepository)(nil)
	_ yard.EquipmentRepository = (*GormEquipmentRepository)(nil)
	_ yard.MovementRepository  = (*GormMovementRepository)(nil)
)
