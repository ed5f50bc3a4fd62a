package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLocationRepository(t *testing.T) {
	repo := NewGormLocationRepository(newTestDB(t))
	ctx := context.Background()

	save := func(code, zone string, capacity, occupied int) *yard.Location {
		l, err := yard.NewLocation(code, zone, capacity)
		require.NoError(t, err)
		for i := 0; i < occupied; i++ {
			require.NoError(t, l.Occupy())
		}
		require.NoError(t, repo.Save(ctx, l))
		return l
	}
	save("S-02", "South", 3, 1)
	full := save("N-01", "North", 1, 1)
	save("N-02", "North", 2, 0)
	held := save("S-01", "South", 4, 0)
	require.NoError(t, held.SetStatus(yard.LocationStatusMaintenance))
	require.NoError(t, repo.Save(ctx, held))

	dup, err := yard.NewLocation("n-01", "North", 1)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	available, err := repo.FindAvailable(ctx, 1)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "N-02", available[0].Code, "ordered by zone then code")
	assert.Equal(t, "S-02", available[1].Code)

	roomy, err := repo.FindAvailable(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, roomy, 2)
	roomier, err := repo.FindAvailable(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, roomier)

	north, err := repo.FindAll(ctx, shared.DefaultFilter().With("zone", "North"))
	require.NoError(t, err)
	assert.Len(t, north, 2)

	fullCount, err := repo.Count(ctx, shared.DefaultFilter().With("status", "FULL"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), fullCount)

	locked, err := repo.FindForUpdate(ctx, full.ID)
	require.NoError(t, err)
	locked.Release()
	require.NoError(t, repo.Save(ctx, locked))
	got, err := repo.FindByID(ctx, full.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Occupied)
	assert.Equal(t, yard.LocationStatusAvailable, got.Status)
}

func TestGormPieceRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPieceRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	locationID := uuid.New()

	wall, err := yard.NewPiece("WP-1", projectID, "wall", decimal.RequireFromString("12.25"))
	require.NoError(t, err)
	require.NoError(t, wall.PlaceAt(locationID))
	require.NoError(t, repo.Save(ctx, wall))

	slab, err := yard.NewPiece("HC-1", projectID, "Hollow Core", decimal.NewFromInt(8))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, slab))

	dup, err := yard.NewPiece("WP-1", uuid.New(), "wall", decimal.Zero)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	list, err := repo.FindAll(ctx, shared.DefaultFilter().With("project_id", projectID))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "HC-1", list[0].PieceMark)

	inYard, err := repo.FindAll(ctx, shared.DefaultFilter().With("location_id", &locationID))
	require.NoError(t, err)
	require.Len(t, inYard, 1)
	assert.True(t, inYard[0].Weight.Equal(decimal.RequireFromString("12.25")))
	assert.Equal(t, yard.PieceStatusInYard, inYard[0].Status)

	byType, err := repo.Count(ctx, shared.DefaultFilter().With("element_type", "HOLLOW CORE"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), byType)

	both, err := repo.FindByIDs(ctx, []uuid.UUID{wall.ID, slab.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, both, 2)

	require.NoError(t, repo.Delete(ctx, slab.ID))
	_, err = repo.FindForUpdate(ctx, slab.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormEquipmentAndMovementRepositories(t *testing.T) {
	db := newTestDB(t)
	equipment := NewGormEquipmentRepository(db)
	movements := NewGormMovementRepository(db)
	ctx := context.Background()

	crane, err := yard.NewEquipment("Crane 1", yard.EquipmentTypeCrane, decimal.NewFromInt(25))
	require.NoError(t, err)
	require.NoError(t, equipment.Save(ctx, crane))

	locked, err := equipment.FindForUpdate(ctx, crane.ID)
	require.NoError(t, err)
	require.NoError(t, locked.Assign())
	require.NoError(t, equipment.Save(ctx, locked))

	inUse, err := equipment.Count(ctx, shared.DefaultFilter().With("status", "IN_USE"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), inUse)

	piece, err := yard.NewPiece("WP-1", uuid.New(), "WALL", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, piece.PlaceAt(uuid.New()))
	m, err := yard.NewMovement(piece, uuid.New(), &crane.ID, "")
	require.NoError(t, err)
	require.NoError(t, movements.Save(ctx, m))

	require.NoError(t, m.Start())
	require.NoError(t, m.Complete(piece.LocationID))
	require.NoError(t, movements.Save(ctx, m))

	got, err := movements.FindAll(ctx, shared.DefaultFilter().With("equipment_id", &crane.ID))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, yard.MovementStatusCompleted, got[0].Status)
	assert.Equal(t, "system", got[0].RequestedBy)
	assert.NotNil(t, got[0].CompletedAt)

	assert.ErrorIs(t, movements.Delete(ctx, uuid.New()), shared.ErrNotFound)
}
