package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/drafting"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDrawingRepository_WorkflowInTransaction(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDrawingRepository(db)
	tx := NewGormTransactionManager(db)
	ctx := context.Background()

	d, err := drafting.NewDrawing(uuid.New(), "S-101", "Level 2 tees", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, d))

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := d.SubmitForReview("drafter1")
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, d); err != nil {
			return err
		}
		return repo.AppendHistory(ctx, entry)
	})
	require.NoError(t, err)

	entry, err := d.Reject("eng1", "Fix chamfers")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, d))
	require.NoError(t, repo.AppendHistory(ctx, entry))

	history, err := repo.FindHistory(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, drafting.DrawingStatusInReview, history[0].ToStatus)
	assert.Equal(t, "Fix chamfers", history[1].Comment)

	got, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, drafting.DrawingStatusRejected, got.Status)
}

func TestGormDrawingRepository_UniqueNumberPerProject(t *testing.T) {
	repo := NewGormDrawingRepository(newTestDB(t))
	ctx := context.Background()
	projectID := uuid.New()

	first, err := drafting.NewDrawing(projectID, "S-101", "Tees", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	other, err := drafting.NewDrawing(uuid.New(), "S-101", "Tees", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other), "numbers repeat across projects")

	list, err := repo.FindAll(ctx, shared.DefaultFilter().With("project_id", projectID))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGormDrawingRepository_DeleteRemovesHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDrawingRepository(db)
	ctx := context.Background()

	d, err := drafting.NewDrawing(uuid.New(), "A-1", "Elevations", drafting.DisciplineArchitectural)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, d))
	entry, err := d.SubmitForReview("")
	require.NoError(t, err)
	assert.Equal(t, "system", entry.Actor)
	require.NoError(t, repo.AppendHistory(ctx, entry))

	require.NoError(t, repo.Delete(ctx, d.ID))
	history, err := repo.FindHistory(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
