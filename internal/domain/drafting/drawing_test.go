package drafting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDrawing(t *testing.T) *Drawing {
	t.Helper()
	d, err := NewDrawing(uuid.New(), "S-101", "Level 2 double tees", "")
	require.NoError(t, err)
	return d
}

func TestNewDrawing(t *testing.T) {
	d := newDrawing(t)
	assert.Equal(t, DisciplineShop, d.Discipline)
	assert.Equal(t, DrawingStatusDraft, d.Status)
	assert.Zero(t, d.Revision)
	assert.Equal(t, "R0", d.RevisionLabel())

	generated, err := NewDrawing(uuid.New(), "", "Stair tower", DisciplineErection)
	require.NoError(t, err)
	assert.Regexp(t, `^DWG-`, generated.DrawingNumber)

	_, err = NewDrawing(uuid.New(), "A-1", "Elevations", "MECHANICAL")
	assert.Error(t, err)
	_, err = NewDrawing(uuid.Nil, "A-1", "Elevations", "")
	assert.Error(t, err)
	_, err = NewDrawing(uuid.New(), "A-1", " ", "")
	assert.Error(t, err)
}

func TestDrawing_ReviewCycle(t *testing.T) {
	d := newDrawing(t)

	entry, err := d.SubmitForReview("drafter1")
	require.NoError(t, err)
	assert.Equal(t, DrawingStatusDraft, entry.FromStatus)
	assert.Equal(t, DrawingStatusInReview, entry.ToStatus)
	assert.Equal(t, "drafter1", entry.Actor)
	assert.Equal(t, d.ID, entry.DrawingID)

	_, err = d.Reject("eng1", "")
	assert.Error(t, err, "rejection needs a comment")
	assert.Equal(t, DrawingStatusInReview, d.Status)

	entry, err = d.Reject("eng1", "Check strand pattern")
	require.NoError(t, err)
	assert.Equal(t, "Check strand pattern", d.ReviewComments)
	assert.Equal(t, "Check strand pattern", entry.Comment)

	entry, err = d.Revise("drafter1")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Revision)
	assert.Equal(t, 1, entry.Revision)
	assert.Equal(t, DrawingStatusDraft, d.Status)

	_, err = d.SubmitForReview("drafter1")
	require.NoError(t, err)
	_, err = d.Approve("eng1", "OK")
	require.NoError(t, err)
	assert.Equal(t, "eng1", d.ApprovedBy)
	assert.NotNil(t, d.ApprovedAt)

	_, err = d.Release("pm")
	require.NoError(t, err)
	assert.NotNil(t, d.ReleasedAt)

	_, err = d.Revise("drafter2")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Revision)
	assert.Nil(t, d.ApprovedAt)
	assert.Nil(t, d.ReleasedAt)

	types := []string{}
	for _, ev := range d.GetDomainEvents() {
		types = append(types, ev.EventType())
	}
	assert.Equal(t, []string{EventTypeDrawingApproved, EventTypeDrawingReleased}, types)
}

func TestDrawing_InvalidTransitions(t *testing.T) {
	d := newDrawing(t)

	_, err := d.Approve("eng1", "")
	assert.ErrorIs(t, err, shared.NewDomainError(shared.CodeInvalidTransition, ""))

	_, err = d.Release("pm")
	assert.Error(t, err)

	_, err = d.Revise("drafter1")
	assert.Error(t, err)
	assert.Zero(t, d.Revision, "a failed revise keeps the revision")
}

func TestDrawingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, DrawingStatusApproved.CanTransitionTo(DrawingStatusDraft))
	assert.True(t, DrawingStatusReleased.CanTransitionTo(DrawingStatusDraft))
	assert.False(t, DrawingStatusReleased.CanTransitionTo(DrawingStatusApproved))
	assert.False(t, DrawingStatusDraft.CanTransitionTo(DrawingStatusApproved))
	assert.True(t, DrawingStatusInReview.IsValid())
	assert.False(t, DrawingStatus("ARCHIVED").IsValid())
}
