package shipping

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/shipping"
	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShippingAIService_OptimizeRoute(t *testing.T) {
	ctx := context.Background()
	a := loadedShipment(t, uuid.New(), shipping.ShipmentStatusPlanned)
	b := loadedShipment(t, uuid.New(), shipping.ShipmentStatusPlanned)

	t.Run("routes the requested shipments", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		repo.On("FindByID", ctx, a.ID).Return(a, nil)
		repo.On("FindByID", ctx, b.ID).Return(b, nil)
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"route": map[string]any{
				"stops": []map[string]any{
					{"sequence": 1, "shipmentId": b.ID.String(), "eta": "08:40", "distanceKm": 31.5},
					{"sequence": 2, "shipmentId": a.ID.String(), "eta": "10:05", "distanceKm": 12},
				},
				"totalDistanceKm": 43.5,
			},
		})
		svc := NewShippingAIService(client, repo)

		got, err := svc.OptimizeRoute(ctx, OptimizeRouteRequest{ShipmentIDs: []uuid.UUID{a.ID, b.ID}, Origin: "Plant 1"})
		require.NoError(t, err)
		require.Len(t, got.Stops, 2)
		assert.Equal(t, b.ID.String(), got.Stops[0].ShipmentID)
		assert.Equal(t, 43.5, got.TotalDistanceKm)
		assert.NotNil(t, got.Warnings)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/shipping/optimize-route", req.Path)
		assert.Equal(t, "route_optimization", req.ModelType())
		assert.Equal(t, "Plant 1", req.Body["origin"])
		stops, _ := req.Body["stops"].([]any)
		assert.Len(t, stops, 2)
	})

	t.Run("defaults to planned shipments of the day", func(t *testing.T) {
		day := time.Date(2026, 4, 14, 15, 30, 0, 0, time.UTC)
		repo := new(MockShipmentRepository)
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "PLANNED" &&
				f.Filters["scheduled_from"] == shared.TruncateToDay(day)
		})).Return([]shipping.Shipment{*a}, nil)
		client, _ := aitest.New(t, http.StatusOK, map[string]any{"route": map[string]any{}})

		got, err := NewShippingAIService(client, repo).OptimizeRoute(ctx, OptimizeRouteRequest{Date: &day})
		require.NoError(t, err)
		assert.Empty(t, got.Stops)
	})

	t.Run("nothing to route", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		repo.On("FindAll", ctx, mock.Anything).Return([]shipping.Shipment{}, nil)
		_, err := NewShippingAIService(aitest.Failing(t), repo).OptimizeRoute(ctx, OptimizeRouteRequest{})
		assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidInput))
	})

	t.Run("AI failure", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		repo.On("FindByID", ctx, a.ID).Return(a, nil)
		_, err := NewShippingAIService(aitest.Failing(t), repo).OptimizeRoute(ctx, OptimizeRouteRequest{ShipmentIDs: []uuid.UUID{a.ID}})
		assert.EqualError(t, err, "Failed to optimize route")
	})
}

func TestShippingAIService_PredictDeliveryTime(t *testing.T) {
	ctx := context.Background()
	sh := loadedShipment(t, uuid.New(), shipping.ShipmentStatusInTransit)
	dispatched := time.Date(2026, 4, 14, 7, 0, 0, 0, time.UTC)
	sh.DispatchedAt = &dispatched
	repo := new(MockShipmentRepository)
	repo.On("FindByID", ctx, sh.ID).Return(sh, nil)

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"prediction": map[string]any{"estimatedArrival": "2026-04-14T08:10:00Z", "travelMinutes": 70, "delayRisk": "low"},
		"confidence": 0.9,
	})
	got, err := NewShippingAIService(client, repo).PredictDeliveryTime(ctx, PredictDeliveryTimeRequest{ShipmentID: sh.ID, Traffic: "heavy"})
	require.NoError(t, err)
	assert.Equal(t, sh.ID, got.ShipmentID)
	assert.Equal(t, 70.0, got.TravelMinutes)
	assert.Equal(t, "low", got.DelayRisk)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/predict", req.Path)
	assert.Equal(t, "delivery_time", req.ModelType())
	assert.Equal(t, "2026-04-14T07:00:00Z", req.Body["departureTime"], "departure defaults to the dispatch time")
	assert.Equal(t, float64(2), req.Body["pieceCount"])

	_, err = NewShippingAIService(aitest.Failing(t), repo).PredictDeliveryTime(ctx, PredictDeliveryTimeRequest{ShipmentID: sh.ID})
	assert.EqualError(t, err, "Failed to predict delivery time")
}

func TestShippingAIService_OptimizeLoad(t *testing.T) {
	ctx := context.Background()
	sh := loadedShipment(t, uuid.New(), shipping.ShipmentStatusLoading)
	repo := new(MockShipmentRepository)
	repo.On("FindByID", ctx, sh.ID).Return(sh, nil)

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"plan": map[string]any{
			"placements":  []map[string]any{{"pieceId": sh.Items[1].PieceID.String(), "position": 1}},
			"utilization": 0.54,
			"balanced":    true,
		},
	})
	got, err := NewShippingAIService(client, repo).OptimizeLoad(ctx, OptimizeLoadRequest{ShipmentID: sh.ID})
	require.NoError(t, err)
	require.Len(t, got.Placements, 1)
	assert.True(t, got.Balanced)
	assert.Equal(t, []string{}, got.Warnings)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/optimize", req.Path)
	assert.Equal(t, "load_optimization", req.ModelType())
	assert.Equal(t, float64(40), req.Body["maxWeight"])
	pieces, _ := req.Body["pieces"].([]any)
	assert.Len(t, pieces, 2)

	_, err = NewShippingAIService(aitest.Failing(t), repo).OptimizeLoad(ctx, OptimizeLoadRequest{ShipmentID: sh.ID})
	assert.EqualError(t, err, "Failed to optimize load")
}
