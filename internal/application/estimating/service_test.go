package estimating

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/estimating"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEstimateRepository struct {
	mock.Mock
}

func (m *MockEstimateRepository) FindByID(ctx context.Context, id uuid.UUID) (*estimating.Estimate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estimating.Estimate), args.Error(1)
}

func (m *MockEstimateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]estimating.Estimate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]estimating.Estimate), args.Error(1)
}

func (m *MockEstimateRepository) Save(ctx context.Context, e *estimating.Estimate) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEstimateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEstimateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type stubNames map[uuid.UUID]string

func (s stubNames) DisplayNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string)
	for _, id := range ids {
		if name, ok := s[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type stubProjects struct {
	id        uuid.UUID
	name      string
	budget    decimal.Decimal
	contactID uuid.UUID
	err       error
}

func (p *stubProjects) CreateFromEstimate(_ context.Context, name string, contactID uuid.UUID, budget decimal.Decimal) (uuid.UUID, error) {
	p.name, p.contactID, p.budget = name, contactID, budget
	return p.id, p.err
}

type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func approvedEstimate(t *testing.T) *estimating.Estimate {
	t.Helper()
	e, err := estimating.NewEstimate(uuid.New(), "North Garage")
	require.NoError(t, err)
	require.NoError(t, e.AddItem(estimating.ItemInput{
		Description: "Spandrel", Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(1000),
	}))
	require.NoError(t, e.Submit())
	require.NoError(t, e.Approve())
	e.ClearDomainEvents()
	return e
}

func TestEstimateService_CreateEstimate(t *testing.T) {
	ctx := context.Background()
	contactID := uuid.New()

	t.Run("prices items and resolves the contact name", func(t *testing.T) {
		repo := new(MockEstimateRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*estimating.Estimate")).Return(nil)
		svc := NewEstimateService(repo, stubNames{contactID: "Metro Builders"}, nil, nil)

		markup := decimal.NewFromInt(20)
		resp, err := svc.CreateEstimate(ctx, CreateEstimateRequest{
			ContactID:     contactID,
			ProjectName:   "Metro HQ",
			MarkupPercent: &markup,
			Items: []EstimateItemRequest{
				{Description: "Wall panel", Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(100)},
				{Description: "Beam", Quantity: decimal.NewFromInt(3), UnitCost: decimal.NewFromInt(50)},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "DRAFT", resp.Status)
		assert.Equal(t, "Metro Builders", resp.ContactName)
		assert.Equal(t, "350", resp.Subtotal.String())
		assert.Equal(t, "420", resp.Total.String())
		assert.Len(t, resp.Items, 2)
		repo.AssertExpectations(t)
	})

	t.Run("defaults markup to 15 percent", func(t *testing.T) {
		repo := new(MockEstimateRepository)
		repo.On("Save", ctx, mock.Anything).Return(nil)
		svc := NewEstimateService(repo, nil, nil, nil)

		resp, err := svc.CreateEstimate(ctx, CreateEstimateRequest{ContactID: contactID, ProjectName: "Depot"})
		require.NoError(t, err)
		assert.Equal(t, "15", resp.MarkupPercent.String())
		assert.Empty(t, resp.ContactName)
	})

	t.Run("wraps persistence failures", func(t *testing.T) {
		repo := new(MockEstimateRepository)
		repo.On("Save", ctx, mock.Anything).Return(errors.New("db down"))
		svc := NewEstimateService(repo, nil, nil, nil)

		_, err := svc.CreateEstimate(ctx, CreateEstimateRequest{ContactID: contactID, ProjectName: "Depot"})
		assert.EqualError(t, err, "Failed to create estimate")
	})
}

func TestEstimateService_UpdateEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces items of a draft", func(t *testing.T) {
		e, err := estimating.NewEstimate(uuid.New(), "Depot")
		require.NoError(t, err)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		repo.On("Save", ctx, e).Return(nil)
		svc := NewEstimateService(repo, nil, nil, nil)

		name := "Depot Phase 2"
		items := []EstimateItemRequest{{Description: "Column", Quantity: decimal.NewFromInt(4), UnitCost: decimal.NewFromInt(250)}}
		resp, err := svc.UpdateEstimate(ctx, e.ID, UpdateEstimateRequest{ProjectName: &name, Items: &items})
		require.NoError(t, err)
		assert.Equal(t, "Depot Phase 2", resp.ProjectName)
		assert.Equal(t, "1000", resp.Subtotal.String())
		assert.Equal(t, "1150", resp.Total.String())
	})

	t.Run("rejects edits outside DRAFT", func(t *testing.T) {
		e := approvedEstimate(t)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		svc := NewEstimateService(repo, nil, nil, nil)

		notes := "late change"
		_, err := svc.UpdateEstimate(ctx, e.ID, UpdateEstimateRequest{Notes: &notes})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEstimateService_Workflow(t *testing.T) {
	ctx := context.Background()

	t.Run("submit publishes an event", func(t *testing.T) {
		e, err := estimating.NewEstimate(uuid.New(), "Depot")
		require.NoError(t, err)
		require.NoError(t, e.AddItem(estimating.ItemInput{Description: "Slab", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(10)}))
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		repo.On("Save", ctx, e).Return(nil)
		pub := &recordingPublisher{}
		svc := NewEstimateService(repo, nil, nil, pub)

		resp, err := svc.SubmitEstimate(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, "PENDING_APPROVAL", resp.Status)
		require.Len(t, pub.events, 1)
		assert.Equal(t, estimating.EventTypeEstimateSubmitted, pub.events[0].EventType())
	})

	t.Run("approve from DRAFT is an invalid transition", func(t *testing.T) {
		e, err := estimating.NewEstimate(uuid.New(), "Depot")
		require.NoError(t, err)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		svc := NewEstimateService(repo, nil, nil, nil)

		_, err = svc.ApproveEstimate(ctx, e.ID)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, shared.CodeInvalidTransition, de.Code)
	})

	t.Run("not found passes through", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)
		svc := NewEstimateService(repo, nil, nil, nil)

		_, err := svc.RejectEstimate(ctx, id, "too expensive")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestEstimateService_ConvertEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("records the given project", func(t *testing.T) {
		e := approvedEstimate(t)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		repo.On("Save", ctx, e).Return(nil)
		projects := &stubProjects{id: uuid.New()}
		svc := NewEstimateService(repo, nil, projects, nil)

		projectID := uuid.New()
		resp, err := svc.ConvertEstimate(ctx, e.ID, ConvertEstimateRequest{ProjectID: &projectID})
		require.NoError(t, err)
		assert.Equal(t, "CONVERTED", resp.Status)
		assert.Equal(t, projectID, *resp.ProjectID)
		assert.Empty(t, projects.name, "no project should be created")
	})

	t.Run("creates a project when none is given", func(t *testing.T) {
		e := approvedEstimate(t)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		repo.On("Save", ctx, e).Return(nil)
		projects := &stubProjects{id: uuid.New()}
		svc := NewEstimateService(repo, nil, projects, nil)

		resp, err := svc.ConvertEstimate(ctx, e.ID, ConvertEstimateRequest{})
		require.NoError(t, err)
		assert.Equal(t, projects.id, *resp.ProjectID)
		assert.Equal(t, "North Garage", projects.name)
		assert.Equal(t, e.ContactID, projects.contactID)
		assert.True(t, projects.budget.Equal(decimal.NewFromInt(11500)))
	})

	t.Run("only approved estimates convert", func(t *testing.T) {
		e, err := estimating.NewEstimate(uuid.New(), "Depot")
		require.NoError(t, err)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		projects := &stubProjects{id: uuid.New()}
		svc := NewEstimateService(repo, nil, projects, nil)

		_, err = svc.ConvertEstimate(ctx, e.ID, ConvertEstimateRequest{})
		assert.Error(t, err)
		assert.Empty(t, projects.name)
	})
}

func TestEstimateService_DeleteEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes drafts", func(t *testing.T) {
		e, err := estimating.NewEstimate(uuid.New(), "Depot")
		require.NoError(t, err)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		repo.On("Delete", ctx, e.ID).Return(nil)
		svc := NewEstimateService(repo, nil, nil, nil)

		require.NoError(t, svc.DeleteEstimate(ctx, e.ID))
		repo.AssertExpectations(t)
	})

	t.Run("refuses approved estimates", func(t *testing.T) {
		e := approvedEstimate(t)
		repo := new(MockEstimateRepository)
		repo.On("FindByID", ctx, e.ID).Return(e, nil)
		svc := NewEstimateService(repo, nil, nil, nil)

		assert.ErrorIs(t, svc.DeleteEstimate(ctx, e.ID), shared.ErrInvalidState)
	})
}

func TestEstimateService_ListEstimates(t *testing.T) {
	ctx := context.Background()
	contactID := uuid.New()
	e, err := estimating.NewEstimate(contactID, "Depot")
	require.NoError(t, err)

	repo := new(MockEstimateRepository)
	matcher := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "DRAFT" && f.Filters["contact_id"] == contactID
	})
	repo.On("FindAll", ctx, matcher).Return([]estimating.Estimate{*e}, nil)
	repo.On("Count", ctx, matcher).Return(int64(1), nil)
	svc := NewEstimateService(repo, stubNames{contactID: "Metro Builders"}, nil, nil)

	filter := EstimateListFilter{Status: "DRAFT", ContactID: &contactID}
	list, total, err := svc.ListEstimates(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Metro Builders", list[0].ContactName)
}
