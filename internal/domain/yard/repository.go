package yard

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// LocationRepository defines persistence operations for yard locations.
// FindAll and Count accept the "zone" and "status" filter keys.
type LocationRepository interface {
	shared.Repository[Location]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Location, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*Location, error)
	// FindAvailable returns AVAILABLE locations with at least minFree free slots, by zone and code
	FindAvailable(ctx context.Context, minFree int) ([]Location, error)
}

// PieceRepository defines persistence operations for yard pieces.
// FindAll and Count accept the "project_id", "status", "element_type" and "location_id" filter keys.
type PieceRepository interface {
	shared.Repository[Piece]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Piece, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*Piece, error)
}

// EquipmentRepository defines persistence operations for equipment.
// FindAll and Count accept the "type" and "status" filter keys.
type EquipmentRepository interface {
	shared.Repository[Equipment]
	FindForUpdate(ctx context.Context, id uuid.UUID) (*Equipment, error)
}

// MovementRepository defines persistence operations for movements.
// FindAll and Count accept the "piece_id", "status" and "equipment_id" filter keys.
type MovementRepository interface {
	shared.Repository[Movement]
}
