package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/sales"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOpportunityRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOpportunityRepository(db)
	ctx := context.Background()
	contactID := uuid.New()

	save := func(name string, value int64, owner string, closing time.Time) *sales.Opportunity {
		o, err := sales.NewOpportunity(name, decimal.NewFromInt(value))
		require.NoError(t, err)
		o.Owner = owner
		o.ExpectedCloseDate = &closing
		require.NoError(t, repo.Save(ctx, o))
		return o
	}

	tower := save("Harbour Tower facade", 200000, "m.chen", day(2026, 6, 30))
	tower.ContactID = &contactID
	require.NoError(t, tower.AdvanceStage(sales.StageProposal, time.Now()))
	require.NoError(t, repo.Save(ctx, tower))

	save("Parking deck", 100000, "m.chen", day(2026, 9, 30))
	won := save("Bridge beams", 50000, "a.ruiz", day(2026, 3, 31))
	require.NoError(t, won.MarkWon(time.Now()))
	require.NoError(t, repo.Save(ctx, won))

	got, err := repo.FindByID(ctx, tower.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.StageProposal, got.Stage)
	assert.Equal(t, 50, got.Probability)
	require.NotNil(t, got.ContactID)
	assert.Equal(t, contactID, *got.ContactID)

	mine, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 20}.With("owner", "m.chen"))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, tower.ID, mine[0].ID, "ordered by expected close date")

	byValue, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 20, OrderBy: "estimated_value", OrderDir: "asc"}.With("owner", "m.chen"))
	require.NoError(t, err)
	require.Len(t, byValue, 2)
	assert.Equal(t, "Parking deck", byValue[0].Name)

	count, err := repo.Count(ctx, shared.DefaultFilter().With("close_from", day(2026, 6, 1)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	found, err := repo.FindAll(ctx, shared.Filter{Search: "BRIDGE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, won.ID, found[0].ID)

	totals, err := repo.StageTotals(ctx, shared.Filter{})
	require.NoError(t, err)
	byStage := make(map[sales.Stage]sales.StageTotal)
	for _, st := range totals {
		byStage[st.Stage] = st
	}
	require.Len(t, byStage, 3)
	assert.Equal(t, int64(1), byStage[sales.StageProposal].Count)
	assert.True(t, byStage[sales.StageProposal].WeightedValue.Equal(decimal.NewFromInt(100000)))
	assert.True(t, byStage[sales.StageLead].WeightedValue.Equal(decimal.NewFromInt(10000)))
	assert.True(t, byStage[sales.StageWon].Value.Equal(decimal.NewFromInt(50000)))

	scoped, err := repo.StageTotals(ctx, shared.Filter{}.With("owner", "a.ruiz"))
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, sales.StageWon, scoped[0].Stage)

	require.NoError(t, repo.Delete(ctx, won.ID))
	_, err = repo.FindByID(ctx, won.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeNotFound))
	assert.ErrorIs(t, repo.Delete(ctx, won.ID), shared.ErrNotFound)
}
