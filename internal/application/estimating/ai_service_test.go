package estimating

import (
	"context"
	"net/http"
	"testing"

	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatingAIService_PredictCost(t *testing.T) {
	ctx := context.Background()

	t.Run("reshapes the prediction", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"prediction": map[string]any{
				"unitCost":  1250.0,
				"totalCost": 25000.0,
				"breakdown": map[string]float64{"concrete": 9000, "steel": 7000},
				"low":       23000.0,
				"high":      27500.0,
			},
			"confidence": 0.87,
		})
		svc := NewEstimatingAIService(client)

		got, err := svc.PredictCost(ctx, PredictCostRequest{PieceType: "double_tee", Quantity: 20})
		require.NoError(t, err)
		assert.Equal(t, 25000.0, got.TotalCost)
		assert.Equal(t, 0.87, got.Confidence)
		assert.Equal(t, 23000.0, got.Range.Low)
		assert.Len(t, got.Breakdown, 2)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/predict", req.Path)
		assert.Equal(t, "cost_estimation", req.ModelType())
		assert.Equal(t, "double_tee", req.Body["pieceType"])
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewEstimatingAIService(aitest.Failing(t))
		_, err := svc.PredictCost(ctx, PredictCostRequest{PieceType: "beam", Quantity: 1})
		assert.EqualError(t, err, "Failed to predict cost")
	})
}

func TestEstimatingAIService_AnalyzeBid(t *testing.T) {
	ctx := context.Background()

	t.Run("posts to the bid analysis endpoint", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"analysis": map[string]any{
				"winProbability":  0.62,
				"competitiveness": "high",
				"suggestedMarkup": 12.5,
			},
		})
		svc := NewEstimatingAIService(client)

		got, err := svc.AnalyzeBid(ctx, AnalyzeBidRequest{BidAmount: 480000, MarkupPercent: 15})
		require.NoError(t, err)
		assert.Equal(t, 0.62, got.WinProbability)
		assert.Equal(t, 12.5, got.SuggestedMarkup)
		assert.Empty(t, got.Insights)
		assert.NotNil(t, got.Insights)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/estimating/analyze-bid", req.Path)
		assert.Equal(t, "bid_analysis", req.ModelType())
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewEstimatingAIService(aitest.Failing(t))
		_, err := svc.AnalyzeBid(ctx, AnalyzeBidRequest{BidAmount: 1})
		assert.EqualError(t, err, "Failed to analyze bid")
	})
}
