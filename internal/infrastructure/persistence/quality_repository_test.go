package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/quality"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInspectionRepository(t *testing.T) {
	repo := NewGormInspectionRepository(newTestDB(t))
	ctx := context.Background()
	projectID := uuid.New()

	i, err := quality.NewInspection(projectID, quality.InspectionTypePrePour)
	require.NoError(t, err)
	require.NoError(t, i.SetChecklist([]quality.ChecklistItem{
		{Item: "Rebar cover", Passed: true},
		{Item: "Embeds", Note: "plate missing"},
	}))
	require.NoError(t, repo.Save(ctx, i))

	other, err := quality.NewInspection(uuid.New(), quality.InspectionTypeFinal)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	got, err := repo.FindByID(ctx, i.ID)
	require.NoError(t, err)
	require.Len(t, got.Checklist, 2)
	assert.Equal(t, "plate missing", got.Checklist[1].Note)
	assert.Equal(t, []string{"Embeds"}, got.FailedChecks())

	require.NoError(t, got.Complete(quality.InspectionStatusFailed, "QA", "", time.Now()))
	require.NoError(t, repo.Save(ctx, got))

	failed, err := repo.FindAll(ctx, shared.DefaultFilter().With("status", "FAILED").With("project_id", projectID))
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.NotNil(t, failed[0].InspectedAt)

	final, err := repo.Count(ctx, shared.DefaultFilter().With("inspection_type", "FINAL"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), final)
}

func TestGormNonConformanceRepository(t *testing.T) {
	repo := NewGormNonConformanceRepository(newTestDB(t))
	ctx := context.Background()

	n, err := quality.NewNonConformance(uuid.New(), "Honeycombing", quality.SeverityCritical)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, n))

	require.NoError(t, n.Resolve("Epoxy injection", time.Now()))
	require.NoError(t, repo.Save(ctx, n))

	got, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, quality.NCRStatusResolved, got.Status)
	assert.Equal(t, "Epoxy injection", got.CorrectiveAction)
	assert.NotNil(t, got.ResolvedAt)

	list, err := repo.FindAll(ctx, shared.Filter{Search: "honey"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	critical, err := repo.Count(ctx, shared.DefaultFilter().With("severity", "CRITICAL"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), critical)

	require.NoError(t, repo.Delete(ctx, n.ID))
	_, err = repo.FindByID(ctx, n.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
