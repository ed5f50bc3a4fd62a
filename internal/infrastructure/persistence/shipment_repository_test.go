package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormShipmentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormShipmentRepository(db)
	ctx := context.Background()
	projectID := uuid.New()

	monday := day(2026, 3, 9)
	first, err := shipping.NewShipment(projectID, "12 Harbour Rd")
	require.NoError(t, err)
	first.ScheduledDate = &monday
	first.Carrier = "Heavy Haul Ltd"
	require.NoError(t, first.SetItems([]shipping.ItemInput{
		{PieceID: uuid.New(), PieceMark: "W-101", Weight: decimal.NewFromInt(12)},
		{PieceID: uuid.New(), PieceMark: "W-102", Weight: decimal.RequireFromString("9.5")},
	}))
	require.NoError(t, repo.Save(ctx, first))

	friday := day(2026, 3, 13)
	second, err := shipping.NewShipment(uuid.New(), "Depot 4")
	require.NoError(t, err)
	second.ScheduledDate = &friday
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "W-101", got.Items[0].PieceMark)
	assert.True(t, got.TotalWeight.Equal(decimal.RequireFromString("21.5")))
	assert.True(t, got.MaxWeight.Equal(decimal.NewFromInt(40)))

	require.NoError(t, got.SetItems([]shipping.ItemInput{
		{PieceID: uuid.New(), PieceMark: "C-7", Weight: decimal.NewFromInt(15)},
	}))
	require.NoError(t, repo.Save(ctx, got))
	var rows int64
	require.NoError(t, db.Model(&shipping.ShipmentItem{}).Where("shipment_id = ?", first.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows, "replaced items are pruned")

	byProject, err := repo.FindAll(ctx, shared.DefaultFilter().With("project_id", projectID))
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Len(t, byProject[0].Items, 1)

	later, err := repo.FindAll(ctx, shared.DefaultFilter().With("scheduled_from", day(2026, 3, 10)))
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, second.ID, later[0].ID)

	carrier, err := repo.Count(ctx, shared.Filter{Search: "heavy"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), carrier)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	require.NoError(t, db.Model(&shipping.ShipmentItem{}).Count(&rows).Error)
	assert.Zero(t, rows)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), shared.ErrNotFound)
}
