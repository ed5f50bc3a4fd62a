package quality

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/quality"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInspectionRepository struct {
	mock.Mock
}

func (m *MockInspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quality.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.Inspection, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]quality.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) Save(ctx context.Context, i *quality.Inspection) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInspectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInspectionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockNonConformanceRepository struct {
	mock.Mock
}

func (m *MockNonConformanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.NonConformance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quality.NonConformance), args.Error(1)
}

func (m *MockNonConformanceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.NonConformance, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]quality.NonConformance), args.Error(1)
}

func (m *MockNonConformanceRepository) Save(ctx context.Context, n *quality.NonConformance) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNonConformanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNonConformanceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type directTx struct{}

func (directTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
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

func newInspection(t *testing.T, projectID uuid.UUID) *quality.Inspection {
	t.Helper()
	i, err := quality.NewInspection(projectID, quality.InspectionTypeFinal)
	require.NoError(t, err)
	return i
}

func TestInspectionService_CreateInspection(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	repo := new(MockInspectionRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*quality.Inspection")).Return(nil)
	svc := NewInspectionService(repo, nil, stubNames{projectID: "Harbor Garage"}, directTx{}, nil)

	resp, err := svc.CreateInspection(ctx, CreateInspectionRequest{
		ProjectID:      projectID,
		InspectionType: "PRE_POUR",
		Checklist:      []ChecklistItemRequest{{Item: "Rebar spacing"}, {Item: "Embeds"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", resp.Status)
	assert.Equal(t, "Harbor Garage", resp.ProjectName)
	assert.Len(t, resp.Checklist, 2)
	assert.Nil(t, resp.InspectedAt)
	repo.AssertExpectations(t)
}

func TestInspectionService_CompleteInspection(t *testing.T) {
	ctx := context.Background()

	t.Run("failed inspection opens a major non-conformance", func(t *testing.T) {
		i := newInspection(t, uuid.New())
		inspections := new(MockInspectionRepository)
		inspections.On("FindByID", ctx, i.ID).Return(i, nil)
		inspections.On("Save", ctx, i).Return(nil)
		ncrs := new(MockNonConformanceRepository)
		ncrs.On("Save", ctx, mock.MatchedBy(func(n *quality.NonConformance) bool {
			return n.Severity == quality.SeverityMajor && n.InspectionID != nil && *n.InspectionID == i.ID
		})).Return(nil)
		events := &recordingPublisher{}
		svc := NewInspectionService(inspections, ncrs, nil, directTx{}, events)

		checklist := []ChecklistItemRequest{{Item: "Camber", Passed: false, Note: "12 mm over"}}
		resp, err := svc.CompleteInspection(ctx, i.ID, CompleteInspectionRequest{
			Result: "FAILED", Inspector: "QA Lead", Notes: "Reject panel", Checklist: &checklist,
		})
		require.NoError(t, err)
		assert.Equal(t, "FAILED", resp.Status)
		assert.Equal(t, "QA Lead", resp.Inspector)
		require.NotNil(t, resp.NonConformance)
		assert.Equal(t, "MAJOR", resp.NonConformance.Severity)
		assert.Equal(t, "OPEN", resp.NonConformance.Status)
		assert.Contains(t, resp.NonConformance.Description, "Camber")
		assert.Equal(t, []string{quality.EventTypeInspectionFailed, quality.EventTypeNonConformanceOpened}, events.types())
		ncrs.AssertExpectations(t)
	})

	t.Run("passed inspection opens nothing", func(t *testing.T) {
		i := newInspection(t, uuid.New())
		inspections := new(MockInspectionRepository)
		inspections.On("FindByID", ctx, i.ID).Return(i, nil)
		inspections.On("Save", ctx, i).Return(nil)
		ncrs := new(MockNonConformanceRepository)
		svc := NewInspectionService(inspections, ncrs, nil, directTx{}, nil)

		resp, err := svc.CompleteInspection(ctx, i.ID, CompleteInspectionRequest{Result: "PASSED", Inspector: "QA"})
		require.NoError(t, err)
		assert.Nil(t, resp.NonConformance)
		ncrs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("only scheduled inspections complete", func(t *testing.T) {
		i := newInspection(t, uuid.New())
		i.Status = quality.InspectionStatusPassed
		inspections := new(MockInspectionRepository)
		inspections.On("FindByID", ctx, i.ID).Return(i, nil)
		svc := NewInspectionService(inspections, nil, nil, directTx{}, nil)

		_, err := svc.CompleteInspection(ctx, i.ID, CompleteInspectionRequest{Result: "FAILED", Inspector: "QA"})
		assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
		inspections.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		i := newInspection(t, uuid.New())
		inspections := new(MockInspectionRepository)
		inspections.On("FindByID", ctx, i.ID).Return(i, nil)
		inspections.On("Save", ctx, i).Return(errors.New("connection reset"))
		svc := NewInspectionService(inspections, nil, nil, directTx{}, nil)

		_, err := svc.CompleteInspection(ctx, i.ID, CompleteInspectionRequest{Result: "PASSED", Inspector: "QA"})
		assert.EqualError(t, err, "Failed to complete inspection")
	})
}

func TestInspectionService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	scheduled := newInspection(t, uuid.New())
	done := newInspection(t, uuid.New())
	done.Status = quality.InspectionStatusConditional

	repo := new(MockInspectionRepository)
	repo.On("FindByID", ctx, scheduled.ID).Return(scheduled, nil)
	repo.On("FindByID", ctx, done.ID).Return(done, nil)
	repo.On("Save", ctx, scheduled).Return(nil)
	repo.On("Delete", ctx, scheduled.ID).Return(nil)
	svc := NewInspectionService(repo, nil, nil, directTx{}, nil)

	inspector := "M. Chen"
	kind := "DELIVERY"
	resp, err := svc.UpdateInspection(ctx, scheduled.ID, UpdateInspectionRequest{Inspector: &inspector, InspectionType: &kind})
	require.NoError(t, err)
	assert.Equal(t, "M. Chen", resp.Inspector)
	assert.Equal(t, "DELIVERY", resp.InspectionType)

	_, err = svc.UpdateInspection(ctx, done.ID, UpdateInspectionRequest{Inspector: &inspector})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))
	assert.True(t, shared.IsDomainErrorCode(svc.DeleteInspection(ctx, done.ID), shared.CodeInvalidState))
	require.NoError(t, svc.DeleteInspection(ctx, scheduled.ID))
}

func TestNonConformanceService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	n, err := quality.NewNonConformance(uuid.New(), "Spalled edge", quality.SeverityMinor)
	require.NoError(t, err)
	n.ClearDomainEvents()

	repo := new(MockNonConformanceRepository)
	repo.On("FindByID", ctx, n.ID).Return(n, nil)
	repo.On("Save", ctx, n).Return(nil)
	events := &recordingPublisher{}
	svc := NewNonConformanceService(repo, nil, nil, events)

	_, err = svc.ResolveNonConformance(ctx, n.ID, "")
	assert.True(t, shared.IsDomainErrorCode(err, "CORRECTIVE_ACTION_REQUIRED"))

	resp, err := svc.ReviewNonConformance(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "UNDER_REVIEW", resp.Status)

	resp, err = svc.ResolveNonConformance(ctx, n.ID, "Grind and patch")
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", resp.Status)
	assert.Equal(t, "Grind and patch", resp.CorrectiveAction)
	assert.NotNil(t, resp.ResolvedAt)

	resp, err = svc.CloseNonConformance(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", resp.Status)

	_, err = svc.ReopenNonConformance(ctx, n.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))

	severity := "CRITICAL"
	_, err = svc.UpdateNonConformance(ctx, n.ID, UpdateNonConformanceRequest{Severity: &severity})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))

	assert.Len(t, events.events, 3)
}

func TestNonConformanceService_Create(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	insp := newInspection(t, projectID)

	inspections := new(MockInspectionRepository)
	inspections.On("FindByID", ctx, insp.ID).Return(insp, nil)
	repo := new(MockNonConformanceRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*quality.NonConformance")).Return(nil)
	svc := NewNonConformanceService(repo, inspections, stubNames{projectID: "Harbor Garage"}, nil)

	resp, err := svc.CreateNonConformance(ctx, CreateNonConformanceRequest{
		ProjectID: projectID, InspectionID: &insp.ID, Description: "Wrong embed plate",
	})
	require.NoError(t, err)
	assert.Equal(t, "MINOR", resp.Severity)
	assert.Equal(t, "OPEN", resp.Status)
	assert.Equal(t, "Harbor Garage", resp.ProjectName)

	_, err = svc.CreateNonConformance(ctx, CreateNonConformanceRequest{
		ProjectID: uuid.New(), InspectionID: &insp.ID, Description: "Mismatch",
	})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidInput))

	missing := uuid.New()
	inspections.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
	_, err = svc.CreateNonConformance(ctx, CreateNonConformanceRequest{ProjectID: projectID, InspectionID: &missing, Description: "x"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
