package sales

import (
	"testing"
	"time"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpportunity(t *testing.T) *Opportunity {
	t.Helper()
	o, err := NewOpportunity(" Harbour Tower facade ", decimal.NewFromInt(250000))
	require.NoError(t, err)
	return o
}

func TestNewOpportunity(t *testing.T) {
	o := newOpportunity(t)
	assert.Equal(t, "Harbour Tower facade", o.Name)
	assert.Equal(t, StageLead, o.Stage)
	assert.Equal(t, 10, o.Probability)
	assert.True(t, o.IsOpen())

	_, err := NewOpportunity("  ", decimal.Zero)
	assert.Error(t, err)
	_, err = NewOpportunity("Parking deck", decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestStage_DefaultProbability(t *testing.T) {
	want := map[Stage]int{
		StageLead: 10, StageQualified: 25, StageProposal: 50,
		StageNegotiation: 75, StageWon: 100, StageLost: 0,
	}
	for _, s := range Stages {
		assert.Equal(t, want[s], s.DefaultProbability(), string(s))
	}
}

func TestStage_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to Stage
		want     bool
	}{
		{StageLead, StageQualified, true},
		{StageLead, StageNegotiation, true},
		{StageLead, StageWon, true},
		{StageProposal, StageQualified, false},
		{StageProposal, StageProposal, false},
		{StageNegotiation, StageLost, true},
		{StageLead, StageLost, true},
		{StageWon, StageLost, false},
		{StageLost, StageLead, false},
		{StageLead, "SIGNED", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestOpportunity_AdvanceStage(t *testing.T) {
	o := newOpportunity(t)
	require.NoError(t, o.SetProbability(15))

	require.NoError(t, o.AdvanceStage(StageProposal, time.Now()))
	assert.Equal(t, 50, o.Probability, "advancing resets the probability to the stage default")
	assert.Nil(t, o.ClosedAt)
	assert.True(t, o.WeightedValue().Equal(decimal.NewFromInt(125000)))

	err := o.AdvanceStage(StageQualified, time.Now())
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
	err = o.AdvanceStage("SIGNED", time.Now())
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidInput))

	events := o.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeOpportunityStageChanged, events[0].EventType())
}

func TestOpportunity_MarkWon(t *testing.T) {
	o := newOpportunity(t)
	closed := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, o.MarkWon(closed))
	assert.Equal(t, StageWon, o.Stage)
	assert.Equal(t, 100, o.Probability)
	assert.Equal(t, closed, *o.ClosedAt)
	assert.False(t, o.IsOpen())

	assert.Error(t, o.MarkLost("changed mind", time.Now()), "won is terminal")
	assert.Error(t, o.SetProbability(50))
	assert.Equal(t, EventTypeOpportunityWon, o.GetDomainEvents()[0].EventType())
}

func TestOpportunity_MarkLost(t *testing.T) {
	o := newOpportunity(t)
	require.NoError(t, o.AdvanceStage(StageNegotiation, time.Now()))
	o.ClearDomainEvents()

	require.NoError(t, o.MarkLost(" Competitor cheaper ", time.Now()))
	assert.Equal(t, StageLost, o.Stage)
	assert.Equal(t, 0, o.Probability)
	assert.Equal(t, "Competitor cheaper", o.LostReason)
	assert.True(t, o.WeightedValue().IsZero())

	events := o.GetDomainEvents()
	require.Len(t, events, 1)
	lost := events[0].(*OpportunityStageChangedEvent)
	assert.Equal(t, EventTypeOpportunityLost, lost.EventType())
	assert.Equal(t, StageNegotiation, lost.FromStage)
	assert.Equal(t, "Competitor cheaper", lost.LostReason)

	assert.Error(t, o.MarkLost("again", time.Now()))
	assert.Equal(t, "Competitor cheaper", o.LostReason, "a rejected call leaves the reason alone")
}

func TestOpportunity_SetProbability(t *testing.T) {
	o := newOpportunity(t)
	assert.Error(t, o.SetProbability(-1))
	assert.Error(t, o.SetProbability(101))
	require.NoError(t, o.SetProbability(40))
	assert.True(t, o.WeightedValue().Equal(decimal.NewFromInt(100000)))
}
