package projects

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/projects"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]projects.Project, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]projects.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]projects.Project, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]projects.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *projects.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type stubNames map[uuid.UUID]string

func (s stubNames) DisplayNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string)
	for _, id := range ids {
		if n, ok := s[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func newProject(t *testing.T) *projects.Project {
	t.Helper()
	p, err := projects.NewProject("Harbor Garage")
	require.NoError(t, err)
	return p
}

func TestProjectService_CreateProject(t *testing.T) {
	ctx := context.Background()
	contactID := uuid.New()

	repo := new(MockProjectRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*projects.Project")).Return(nil)
	svc := NewProjectService(repo, stubNames{contactID: "Metro Builders"}, nil)

	budget := decimal.NewFromInt(1200000)
	resp, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "Harbor Garage", ContactID: &contactID, Budget: &budget})
	require.NoError(t, err)

	assert.Equal(t, "PLANNING", resp.Status)
	assert.Equal(t, 0, resp.Progress)
	assert.Equal(t, "Metro Builders", resp.ContactName)
	assert.Equal(t, "1200000", resp.Budget.String())
}

func TestProjectService_GetUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)

	repo := new(MockProjectRepository)
	repo.On("FindByID", ctx, p.ID).Return(p, nil)
	repo.On("Save", ctx, p).Return(nil)
	svc := NewProjectService(repo, nil, nil)

	location := "Pier 9, Oakland"
	manager := "R. Okafor"
	_, err := svc.UpdateProject(ctx, p.ID, UpdateProjectRequest{Location: &location, ProjectManager: &manager})
	require.NoError(t, err)

	got, err := svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, location, got.Location)
	assert.Equal(t, manager, got.ProjectManager)
	assert.Equal(t, "Harbor Garage", got.Name)
}

func TestProjectService_UpdateProjectStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("completing sets progress to 100", func(t *testing.T) {
		p := newProject(t)
		require.NoError(t, p.UpdateStatus(projects.ProjectStatusActive))
		repo := new(MockProjectRepository)
		repo.On("FindByID", ctx, p.ID).Return(p, nil)
		repo.On("Save", ctx, p).Return(nil)
		svc := NewProjectService(repo, nil, nil)

		resp, err := svc.UpdateProjectStatus(ctx, p.ID, "COMPLETED")
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, 100, resp.Progress)
	})

	t.Run("terminal statuses are rejected", func(t *testing.T) {
		p := newProject(t)
		require.NoError(t, p.UpdateStatus(projects.ProjectStatusCancelled))
		repo := new(MockProjectRepository)
		repo.On("FindByID", ctx, p.ID).Return(p, nil)
		svc := NewProjectService(repo, nil, nil)

		_, err := svc.UpdateProjectStatus(ctx, p.ID, "ACTIVE")
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, shared.CodeInvalidTransition, de.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProjectService_UpdateProgress(t *testing.T) {
	ctx := context.Background()
	p := newProject(t)
	repo := new(MockProjectRepository)
	repo.On("FindByID", ctx, p.ID).Return(p, nil)
	repo.On("Save", ctx, p).Return(nil)
	svc := NewProjectService(repo, nil, nil)

	resp, err := svc.UpdateProgress(ctx, p.ID, 45)
	require.NoError(t, err)
	assert.Equal(t, 45, resp.Progress)

	_, err = svc.UpdateProgress(ctx, p.ID, 120)
	assert.EqualError(t, err, "Progress must be between 0 and 100")
}

func TestProjectService_CreateFromEstimate(t *testing.T) {
	ctx := context.Background()
	contactID := uuid.New()

	repo := new(MockProjectRepository)
	var saved *projects.Project
	repo.On("Save", ctx, mock.AnythingOfType("*projects.Project")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*projects.Project) }).
		Return(nil)
	svc := NewProjectService(repo, nil, nil)

	id, err := svc.CreateFromEstimate(ctx, "Airport Deck", contactID, decimal.NewFromInt(99000))
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, id)
	assert.Equal(t, contactID, *saved.ContactID)
	assert.Equal(t, projects.ProjectStatusPlanning, saved.Status)
}

func TestProjectService_Failures(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := new(MockProjectRepository)
	repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)
	repo.On("Delete", ctx, id).Return(errors.New("connection reset"))
	svc := NewProjectService(repo, nil, nil)

	_, err := svc.GetProject(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = svc.DeleteProject(ctx, id)
	assert.EqualError(t, err, "Failed to delete project")
}
