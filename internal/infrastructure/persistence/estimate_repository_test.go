package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/estimating"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstimateWithItems(t *testing.T, contactID uuid.UUID, name string, n int) *estimating.Estimate {
	t.Helper()
	e, err := estimating.NewEstimate(contactID, name)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, e.AddItem(estimating.ItemInput{
			Description: "Panel",
			Quantity:    decimal.NewFromInt(int64(i + 1)),
			UnitCost:    decimal.NewFromInt(100),
		}))
	}
	return e
}

func TestGormEstimateRepository_SaveReplacesItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormEstimateRepository(db)
	ctx := context.Background()

	e := newEstimateWithItems(t, uuid.New(), "Harbor Garage", 3)
	require.NoError(t, repo.Save(ctx, e))

	got, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	assert.Equal(t, 0, got.Items[0].SortOrder)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("690")))

	require.NoError(t, got.SetItems([]estimating.ItemInput{
		{Description: "Column", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(50)},
	}))
	require.NoError(t, repo.Save(ctx, got))

	reloaded, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Column", reloaded.Items[0].Description)

	var rows int64
	require.NoError(t, db.Model(&estimating.EstimateItem{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows, "removed items are deleted")
}

func TestGormEstimateRepository_FindAll(t *testing.T) {
	repo := NewGormEstimateRepository(newTestDB(t))
	ctx := context.Background()
	contactID := uuid.New()

	draft := newEstimateWithItems(t, contactID, "Harbor Garage", 1)
	require.NoError(t, repo.Save(ctx, draft))
	submitted := newEstimateWithItems(t, contactID, "Airport Deck", 2)
	require.NoError(t, submitted.Submit())
	require.NoError(t, repo.Save(ctx, submitted))
	other := newEstimateWithItems(t, uuid.New(), "School Wing", 1)
	require.NoError(t, repo.Save(ctx, other))

	byContact := shared.DefaultFilter().With("contact_id", contactID)
	list, err := repo.FindAll(ctx, byContact)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	pending := byContact.With("status", string(estimating.EstimateStatusPendingApproval))
	list, err = repo.FindAll(ctx, pending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Airport Deck", list[0].ProjectName)
	assert.Len(t, list[0].Items, 2)

	search := shared.DefaultFilter()
	search.Search = "school"
	count, err := repo.Count(ctx, search)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormEstimateRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormEstimateRepository(db)
	ctx := context.Background()

	e := newEstimateWithItems(t, uuid.New(), "Harbor Garage", 2)
	require.NoError(t, repo.Save(ctx, e))

	require.NoError(t, repo.Delete(ctx, e.ID))
	_, err := repo.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var rows int64
	require.NoError(t, db.Model(&estimating.EstimateItem{}).Count(&rows).Error)
	assert.Zero(t, rows)

	assert.ErrorIs(t, repo.Delete(ctx, e.ID), shared.ErrNotFound)
}
