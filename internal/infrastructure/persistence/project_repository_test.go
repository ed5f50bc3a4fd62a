package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/projects"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProjectRepository_CRUD(t *testing.T) {
	repo := NewGormProjectRepository(newTestDB(t))
	ctx := context.Background()
	contactID := uuid.New()

	p, err := projects.NewProject("Harbor Garage")
	require.NoError(t, err)
	p.ContactID = &contactID
	require.NoError(t, p.SetBudget(decimal.RequireFromString("1250000.50")))
	require.NoError(t, repo.Save(ctx, p))

	other, err := projects.NewProject("School Wing")
	require.NoError(t, err)
	require.NoError(t, other.UpdateStatus(projects.ProjectStatusActive))
	require.NoError(t, repo.Save(ctx, other))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Garage", got.Name)
	assert.True(t, got.Budget.Equal(decimal.RequireFromString("1250000.50")))
	assert.Equal(t, contactID, *got.ContactID)

	active, err := repo.FindAll(ctx, shared.DefaultFilter().With("status", "ACTIVE"))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, other.ID, active[0].ID)

	byContact, err := repo.Count(ctx, shared.DefaultFilter().With("contact_id", contactID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), byContact)

	both, err := repo.FindByIDs(ctx, []uuid.UUID{p.ID, other.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, both, 2)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), shared.ErrNotFound)
}

func TestGormProjectRepository_OrderBy(t *testing.T) {
	repo := NewGormProjectRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Bravo", "Alpha", "Charlie"} {
		p, err := projects.NewProject(name)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
	}

	f := shared.DefaultFilter()
	f.OrderBy = "name"
	f.OrderDir = "asc"
	list, err := repo.FindAll(ctx, f)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alpha", list[0].Name)

	f.OrderBy = "name; DROP TABLE projects"
	_, err = repo.FindAll(ctx, f)
	assert.NoError(t, err, "unknown sort fields fall back to the default order")
}
