package estimating

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newDraft(t *testing.T) *Estimate {
	t.Helper()
	e, err := NewEstimate(uuid.New(), "Riverside Parking Deck")
	require.NoError(t, err)
	return e
}

func TestNewEstimate_Defaults(t *testing.T) {
	e := newDraft(t)

	assert.Equal(t, EstimateStatusDraft, e.Status)
	assert.True(t, e.MarkupPercent.Equal(decimal.NewFromInt(15)))
	assert.Regexp(t, `^EST-\d{8}-[0-9A-F]{6}$`, e.EstimateNumber)
	assert.Equal(t, shared.TruncateToDay(e.CreatedAt.Add(30*24*time.Hour)), e.ValidUntil)
	assert.True(t, e.Total.IsZero())
	assert.Empty(t, e.Items)

	_, err := NewEstimate(uuid.Nil, "x")
	assert.Error(t, err)
	_, err = NewEstimate(uuid.New(), "  ")
	assert.Error(t, err)
}

func TestEstimate_Recalculate(t *testing.T) {
	e := newDraft(t)
	require.NoError(t, e.SetItems([]ItemInput{
		{Description: "Double tee 12DT30", Quantity: dec("4"), UnitCost: dec("5250.00")},
		{Description: "Hollow core plank", Quantity: dec("10.5"), Unit: "SF", UnitCost: dec("12.333")},
	}))

	assert.Equal(t, "21000", e.Items[0].LineTotal.String())
	assert.Equal(t, "129.5", e.Items[1].LineTotal.String())
	assert.Equal(t, "EA", e.Items[0].Unit)
	assert.Equal(t, "21129.5", e.Subtotal.String())
	// 21129.50 * 1.15 = 24298.925 -> 24298.93
	assert.Equal(t, "24298.93", e.Total.String())

	require.NoError(t, e.SetMarkup(decimal.Zero))
	assert.True(t, e.Total.Equal(e.Subtotal))

	assert.Error(t, e.SetMarkup(dec("-1")))
}

func TestEstimate_ItemValidation(t *testing.T) {
	e := newDraft(t)
	assert.Error(t, e.AddItem(ItemInput{Description: "", Quantity: dec("1"), UnitCost: dec("1")}))
	assert.Error(t, e.AddItem(ItemInput{Description: "Beam", Quantity: dec("0"), UnitCost: dec("1")}))
	assert.Error(t, e.AddItem(ItemInput{Description: "Beam", Quantity: dec("1"), UnitCost: dec("-1")}))
	require.NoError(t, e.AddItem(ItemInput{Description: "Beam", Quantity: dec("2"), UnitCost: dec("100")}))
	assert.Equal(t, e.ID, e.Items[0].EstimateID)
}

func TestEstimate_Workflow(t *testing.T) {
	e := newDraft(t)

	err := e.Submit()
	assert.Error(t, err, "empty estimates cannot be submitted")

	require.NoError(t, e.AddItem(ItemInput{Description: "Column", Quantity: dec("1"), UnitCost: dec("900")}))
	require.NoError(t, e.Submit())
	assert.Equal(t, EstimateStatusPendingApproval, e.Status)
	assert.NotNil(t, e.SubmittedAt)

	assert.Error(t, e.AddItem(ItemInput{Description: "Late add", Quantity: dec("1"), UnitCost: dec("1")}))

	require.NoError(t, e.Reject("price too high"))
	assert.Equal(t, "price too high", e.RejectionReason)
	assert.True(t, e.CanDelete())

	require.NoError(t, e.Revise())
	assert.Equal(t, EstimateStatusDraft, e.Status)
	require.NoError(t, e.Submit())
	require.NoError(t, e.Approve())
	assert.False(t, e.CanDelete())

	projectID := uuid.New()
	require.NoError(t, e.Convert(projectID))
	assert.Equal(t, EstimateStatusConverted, e.Status)
	assert.Equal(t, projectID, *e.ProjectID)

	err = e.Revise()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, shared.CodeInvalidTransition, de.Code)

	types := make([]string, 0)
	for _, ev := range e.GetDomainEvents() {
		types = append(types, ev.EventType())
	}
	assert.Equal(t, []string{
		EventTypeEstimateSubmitted, EventTypeEstimateSubmitted, EventTypeEstimateApproved, EventTypeEstimateConverted,
	}, types)
}

func TestEstimateStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to EstimateStatus
		ok       bool
	}{
		{EstimateStatusDraft, EstimateStatusPendingApproval, true},
		{EstimateStatusDraft, EstimateStatusApproved, false},
		{EstimateStatusPendingApproval, EstimateStatusRejected, true},
		{EstimateStatusRejected, EstimateStatusDraft, true},
		{EstimateStatusApproved, EstimateStatusConverted, true},
		{EstimateStatusConverted, EstimateStatusDraft, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestEstimate_IsExpired(t *testing.T) {
	e := newDraft(t)
	assert.False(t, e.IsExpired(time.Now()))
	assert.True(t, e.IsExpired(e.ValidUntil.Add(48*time.Hour)))
}
