package quality

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInspection(t *testing.T) *Inspection {
	t.Helper()
	i, err := NewInspection(uuid.New(), InspectionTypePostPour)
	require.NoError(t, err)
	return i
}

func TestNewInspection(t *testing.T) {
	i := newInspection(t)
	assert.Equal(t, InspectionStatusScheduled, i.Status)
	assert.Contains(t, i.InspectionNumber, InspectionNumberPrefix)
	assert.NotNil(t, i.Checklist)
	assert.True(t, i.IsEditable())

	_, err := NewInspection(uuid.Nil, InspectionTypeFinal)
	assert.Error(t, err)
	_, err = NewInspection(uuid.New(), "X_RAY")
	assert.Error(t, err)
}

func TestInspection_SetChecklist(t *testing.T) {
	i := newInspection(t)
	require.NoError(t, i.SetChecklist([]ChecklistItem{
		{Item: " Cover depth ", Passed: true},
		{Item: "Surface finish", Passed: false, Note: "honeycombing at corner"},
		{Item: "Lifting inserts"},
	}))
	assert.Equal(t, "Cover depth", i.Checklist[0].Item)
	assert.Equal(t, []string{"Surface finish", "Lifting inserts"}, i.FailedChecks())

	assert.Error(t, i.SetChecklist([]ChecklistItem{{Item: "  "}}))
}

func TestInspection_Complete(t *testing.T) {
	now := time.Now()

	t.Run("records the result", func(t *testing.T) {
		i := newInspection(t)
		i.Inspector = "J. Park"
		require.NoError(t, i.Complete(InspectionStatusPassed, "", "all good", now))
		assert.Equal(t, InspectionStatusPassed, i.Status)
		assert.Equal(t, "J. Park", i.Inspector)
		assert.Equal(t, "all good", i.Notes)
		require.NotNil(t, i.InspectedAt)
		assert.False(t, i.IsEditable())

		events := i.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeInspectionPassed, events[0].EventType())
	})

	t.Run("failed result raises InspectionFailed", func(t *testing.T) {
		i := newInspection(t)
		require.NoError(t, i.Complete(InspectionStatusFailed, "QA Lead", "", now))
		assert.Equal(t, EventTypeInspectionFailed, i.GetDomainEvents()[0].EventType())
	})

	t.Run("only from scheduled", func(t *testing.T) {
		i := newInspection(t)
		require.NoError(t, i.Complete(InspectionStatusConditional, "QA", "", now))
		err := i.Complete(InspectionStatusPassed, "QA", "", now)
		assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
	})

	t.Run("rejects a non-result", func(t *testing.T) {
		i := newInspection(t)
		assert.True(t, shared.IsDomainErrorCode(i.Complete(InspectionStatusScheduled, "QA", "", now), shared.CodeInvalidInput))
	})

	t.Run("requires an inspector", func(t *testing.T) {
		i := newInspection(t)
		err := i.Complete(InspectionStatusPassed, " ", "", now)
		assert.True(t, shared.IsDomainErrorCode(err, "INVALID_INSPECTOR"))
		assert.Equal(t, InspectionStatusScheduled, i.Status)
	})
}

func TestNonConformanceTransitions(t *testing.T) {
	tests := []struct {
		from, to NCRStatus
		ok       bool
	}{
		{NCRStatusOpen, NCRStatusUnderReview, true},
		{NCRStatusOpen, NCRStatusResolved, true},
		{NCRStatusOpen, NCRStatusClosed, false},
		{NCRStatusUnderReview, NCRStatusOpen, true},
		{NCRStatusUnderReview, NCRStatusClosed, false},
		{NCRStatusResolved, NCRStatusClosed, true},
		{NCRStatusResolved, NCRStatusOpen, true},
		{NCRStatusClosed, NCRStatusOpen, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNonConformance_Lifecycle(t *testing.T) {
	now := time.Now()
	n, err := NewNonConformance(uuid.New(), "Cracked corner on WP-12", "")
	require.NoError(t, err)
	assert.Equal(t, SeverityMinor, n.Severity)
	assert.Equal(t, NCRStatusOpen, n.Status)

	err = n.Resolve("", now)
	assert.True(t, shared.IsDomainErrorCode(err, "CORRECTIVE_ACTION_REQUIRED"))
	assert.Equal(t, NCRStatusOpen, n.Status)

	require.NoError(t, n.Review())
	require.NoError(t, n.Resolve("Patch with repair mortar", now))
	assert.Equal(t, "Patch with repair mortar", n.CorrectiveAction)
	require.NotNil(t, n.ResolvedAt)

	require.NoError(t, n.Reopen())
	assert.Nil(t, n.ResolvedAt)
	require.NoError(t, n.Resolve("", now), "the recorded action still counts")
	require.NoError(t, n.Close(now))
	assert.True(t, n.IsClosed())
	require.NotNil(t, n.ClosedAt)

	assert.True(t, shared.IsDomainErrorCode(n.Reopen(), shared.CodeInvalidTransition))
}

func TestNewNonConformanceForInspection(t *testing.T) {
	i := newInspection(t)
	require.NoError(t, i.SetChecklist([]ChecklistItem{{Item: "Cover depth", Passed: true}, {Item: "Dimensions"}}))
	i.Notes = "Panel 20 mm short"

	n, err := NewNonConformanceForInspection(i)
	require.NoError(t, err)
	assert.Equal(t, SeverityMajor, n.Severity)
	assert.Equal(t, i.ProjectID, n.ProjectID)
	require.NotNil(t, n.InspectionID)
	assert.Equal(t, i.ID, *n.InspectionID)
	assert.Contains(t, n.Description, "Dimensions")
	assert.Contains(t, n.Description, "Panel 20 mm short")
	assert.Equal(t, EventTypeNonConformanceOpened, n.GetDomainEvents()[0].EventType())

	_, err = NewNonConformance(uuid.New(), "x", "SEVERE")
	assert.Error(t, err)
	_, err = NewNonConformance(uuid.New(), " ", SeverityCritical)
	assert.Error(t, err)
}
