package purchasing

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasingAIService_RecommendVendors(t *testing.T) {
	ctx := context.Background()

	t.Run("posts to the vendor endpoint", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"vendors": []map[string]any{
				{"vendorId": "v-1", "vendorName": "Rebar Supply", "score": 0.92, "leadTimeDays": 5, "reasons": []string{"On-time history"}},
				{"vendorId": "v-2", "vendorName": "Cement Co", "score": 0.7},
			},
		})
		svc := NewPurchasingAIService(client)

		got, err := svc.RecommendVendors(ctx, RecommendVendorsRequest{MaterialIDs: []uuid.UUID{uuid.New()}, MaxVendors: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Rebar Supply", got[0].VendorName)
		assert.Equal(t, 5, got[0].LeadTimeDays)
		assert.NotNil(t, got[1].Reasons)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/purchasing/recommend-vendors", req.Path)
		assert.Equal(t, "vendor_recommendation", req.ModelType())
		assert.EqualValues(t, 2, req.Body["maxVendors"])
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewPurchasingAIService(aitest.Failing(t))
		_, err := svc.RecommendVendors(ctx, RecommendVendorsRequest{MaterialIDs: []uuid.UUID{uuid.New()}})
		assert.EqualError(t, err, "Failed to recommend vendors")
	})
}

func TestPurchasingAIService_ForecastMaterialDemand(t *testing.T) {
	ctx := context.Background()

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"prediction": map[string]any{
			"demand": []map[string]any{{"materialId": "m-1", "quantity": 120.5, "unit": "T"}},
		},
		"confidence": 0.66,
	})
	svc := NewPurchasingAIService(client)

	got, err := svc.ForecastMaterialDemand(ctx, ForecastMaterialDemandRequest{HorizonWeeks: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, got.HorizonWeeks)
	require.Len(t, got.Demand, 1)
	assert.Equal(t, 120.5, got.Demand[0].Quantity)
	assert.Equal(t, 0.66, got.Confidence)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/predict", req.Path)
	assert.Equal(t, "material_demand", req.ModelType())

	_, err = NewPurchasingAIService(aitest.Failing(t)).ForecastMaterialDemand(ctx, ForecastMaterialDemandRequest{HorizonWeeks: 1})
	assert.EqualError(t, err, "Failed to forecast material demand")
}

func TestPurchasingAIService_OptimizeOrderQuantities(t *testing.T) {
	ctx := context.Background()

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"plan": map[string]any{
			"orders":           []map[string]any{{"materialId": "m-1", "quantity": 40, "reorderPoint": 12}},
			"estimatedSavings": 1800,
		},
	})
	svc := NewPurchasingAIService(client)

	got, err := svc.OptimizeOrderQuantities(ctx, OptimizeOrderQuantitiesRequest{MaterialIDs: []uuid.UUID{uuid.New()}})
	require.NoError(t, err)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, 12.0, got.Orders[0].ReorderPoint)
	assert.Equal(t, 1800.0, got.EstimatedSavings)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/optimize", req.Path)
	assert.Equal(t, "order_quantity", req.ModelType())

	_, err = NewPurchasingAIService(aitest.Failing(t)).OptimizeOrderQuantities(ctx, OptimizeOrderQuantitiesRequest{MaterialIDs: []uuid.UUID{uuid.New()}})
	assert.EqualError(t, err, "Failed to optimize order quantities")
}
