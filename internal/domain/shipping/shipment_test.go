package shipping

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShipment(t *testing.T) *Shipment {
	t.Helper()
	s, err := NewShipment(uuid.New(), " 12 Harbour Rd ")
	require.NoError(t, err)
	return s
}

func item(mark string, tonnes float64) ItemInput {
	return ItemInput{PieceID: uuid.New(), PieceMark: mark, Weight: decimal.NewFromFloat(tonnes)}
}

func TestNewShipment(t *testing.T) {
	s := newShipment(t)
	assert.Equal(t, ShipmentStatusPlanned, s.Status)
	assert.Contains(t, s.ShipmentNumber, ShipmentNumberPrefix)
	assert.Equal(t, "12 Harbour Rd", s.DeliveryAddress)
	assert.True(t, s.MaxWeight.Equal(decimal.NewFromInt(40)))
	assert.Empty(t, s.Items)

	_, err := NewShipment(uuid.Nil, "")
	assert.Error(t, err)
}

func TestShipmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ShipmentStatus
		want     bool
	}{
		{ShipmentStatusPlanned, ShipmentStatusLoading, true},
		{ShipmentStatusPlanned, ShipmentStatusCancelled, true},
		{ShipmentStatusPlanned, ShipmentStatusInTransit, false},
		{ShipmentStatusLoading, ShipmentStatusInTransit, true},
		{ShipmentStatusLoading, ShipmentStatusPlanned, true},
		{ShipmentStatusLoading, ShipmentStatusCancelled, true},
		{ShipmentStatusInTransit, ShipmentStatusDelivered, true},
		{ShipmentStatusInTransit, ShipmentStatusCancelled, false},
		{ShipmentStatusDelivered, ShipmentStatusPlanned, false},
		{ShipmentStatusCancelled, ShipmentStatusPlanned, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestShipment_SetItems(t *testing.T) {
	t.Run("totals the load", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.SetItems([]ItemInput{item("W-101", 12.5), item("W-102", 12.5), item("C-7", 15)}))
		assert.Len(t, s.Items, 3)
		assert.True(t, s.TotalWeight.Equal(decimal.NewFromInt(40)), "exactly at the limit is allowed")
		assert.True(t, s.RemainingCapacity().IsZero())
		assert.Equal(t, 2, s.Items[2].SortOrder)
		assert.Equal(t, s.ID, s.Items[0].ShipmentID)
	})

	t.Run("rejects an overweight load", func(t *testing.T) {
		s := newShipment(t)
		err := s.SetItems([]ItemInput{item("W-101", 25), item("W-102", 15.5)})
		assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
		assert.Empty(t, s.Items)
		assert.True(t, s.TotalWeight.IsZero())
	})

	t.Run("rejects duplicate pieces", func(t *testing.T) {
		s := newShipment(t)
		dup := item("W-101", 5)
		err := s.SetItems([]ItemInput{dup, dup})
		assert.True(t, shared.IsDomainErrorCode(err, "DUPLICATE_PIECE"))
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		s := newShipment(t)
		assert.Error(t, s.SetItems([]ItemInput{item("W-101", -1)}))
	})

	t.Run("allowed while loading", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.StartLoading())
		assert.NoError(t, s.SetItems([]ItemInput{item("W-101", 5)}))
	})

	t.Run("frozen once dispatched", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.SetItems([]ItemInput{item("W-101", 5)}))
		require.NoError(t, s.StartLoading())
		require.NoError(t, s.Dispatch(time.Now()))
		err := s.SetItems([]ItemInput{item("W-102", 5)})
		assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))
	})
}

func TestShipment_SetMaxWeight(t *testing.T) {
	s := newShipment(t)
	require.NoError(t, s.SetItems([]ItemInput{item("W-101", 20)}))

	assert.Error(t, s.SetMaxWeight(decimal.Zero))
	assert.ErrorIs(t, s.SetMaxWeight(decimal.NewFromInt(18)), shared.ErrCapacityExceeded)
	require.NoError(t, s.SetMaxWeight(decimal.NewFromInt(25)))
	assert.True(t, s.RemainingCapacity().Equal(decimal.NewFromInt(5)))
}

func TestShipment_Lifecycle(t *testing.T) {
	s := newShipment(t)
	require.NoError(t, s.SetItems([]ItemInput{item("W-101", 10)}))
	s.ClearDomainEvents()

	require.NoError(t, s.StartLoading())
	require.NoError(t, s.ReturnToPlanning())
	require.NoError(t, s.StartLoading())

	dispatched := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	require.NoError(t, s.Dispatch(dispatched))
	assert.Equal(t, ShipmentStatusInTransit, s.Status)
	assert.Equal(t, dispatched, *s.DispatchedAt)

	assert.Error(t, s.Cancel(), "a shipment on the road cannot be cancelled")
	assert.Error(t, s.ConfirmDelivery("  ", time.Now()))

	require.NoError(t, s.ConfirmDelivery("Site foreman", time.Now()))
	assert.Equal(t, ShipmentStatusDelivered, s.Status)
	assert.Equal(t, "Site foreman", s.ReceivedBy)
	require.NotNil(t, s.DeliveredAt)

	events := s.GetDomainEvents()
	require.Len(t, events, 5)
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	assert.Equal(t, []string{
		EventTypeShipmentLoading,
		EventTypeShipmentReplanned,
		EventTypeShipmentLoading,
		EventTypeShipmentInTransit,
		EventTypeShipmentDelivered,
	}, types)

	delivered := events[4].(*ShipmentStatusChangedEvent)
	assert.Equal(t, "Site foreman", delivered.ReceivedBy)
	assert.Equal(t, s.PieceIDs(), delivered.PieceIDs)
	assert.Equal(t, ShipmentStatusInTransit, delivered.FromStatus)
}

func TestShipment_DispatchRequiresItems(t *testing.T) {
	s := newShipment(t)
	require.NoError(t, s.StartLoading())
	err := s.Dispatch(time.Now())
	assert.True(t, shared.IsDomainErrorCode(err, "SHIPMENT_EMPTY"))
	assert.Equal(t, ShipmentStatusLoading, s.Status)
}

func TestShipment_DispatchFromPlannedIsRejected(t *testing.T) {
	s := newShipment(t)
	require.NoError(t, s.SetItems([]ItemInput{item("W-101", 10)}))
	err := s.Dispatch(time.Now())
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
	assert.Nil(t, s.DispatchedAt)
}

func TestShipment_Cancel(t *testing.T) {
	s := newShipment(t)
	assert.True(t, s.CanDelete())
	require.NoError(t, s.Cancel())
	assert.True(t, s.CanDelete())
	assert.False(t, s.CanEditItems())
	assert.Error(t, s.StartLoading())
}

func TestShipment_SetLoad(t *testing.T) {
	s := newShipment(t)
	require.NoError(t, s.SetItems([]ItemInput{item("W-101", 30)}))

	require.NoError(t, s.SetLoad(decimal.NewFromInt(20), []ItemInput{item("W-102", 18)}),
		"a lower limit is checked against the new load, not the old one")
	assert.True(t, s.MaxWeight.Equal(decimal.NewFromInt(20)))
	assert.True(t, s.TotalWeight.Equal(decimal.NewFromInt(18)))

	err := s.SetLoad(decimal.NewFromInt(10), []ItemInput{item("W-103", 12)})
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
	assert.True(t, s.MaxWeight.Equal(decimal.NewFromInt(20)), "a rejected load leaves the limit unchanged")
}
