package yard

import (
	"context"
	"net/http"
	"testing"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYardAIService_OptimizeYardLayout(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	north := f.location(t, "N-01", "North", 2)
	south := f.location(t, "S-01", "South", 2)
	inNorth := f.piece(t, "WP-1", &north.ID)
	f.piece(t, "WP-2", &south.ID)
	f.piece(t, "WP-3", nil)

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"plan": map[string]any{
			"moves": []map[string]any{
				{"pieceId": inNorth.ID.String(), "fromLocationId": north.ID.String(), "toLocationId": "n-02", "reason": "Group by ship date"},
			},
			"movesSaved":      3,
			"utilizationGain": 0.12,
		},
	})
	svc := NewYardAIService(client, f.locations, f.pieces)

	plan, err := svc.OptimizeYardLayout(ctx, OptimizeYardLayoutRequest{Zone: "North"})
	require.NoError(t, err)
	require.Len(t, plan.Moves, 1)
	assert.Equal(t, inNorth.ID.String(), plan.Moves[0].PieceID)
	assert.Equal(t, 3, plan.MovesSaved)
	assert.Equal(t, 0.12, plan.UtilizationGain)
	assert.NotNil(t, plan.Notes)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/optimize", req.Path)
	assert.Equal(t, "yard_layout", req.ModelType())
	assert.Equal(t, "minimize_moves", req.Body["objective"])
	locations, _ := req.Body["locations"].([]any)
	assert.Len(t, locations, 1)
	pieces, _ := req.Body["pieces"].([]any)
	require.Len(t, pieces, 1, "only in-yard pieces of the selected zone are sent")
	assert.Equal(t, "WP-1", pieces[0].(map[string]any)["pieceMark"])

	_, err = NewYardAIService(aitest.Failing(t), f.locations, f.pieces).OptimizeYardLayout(ctx, OptimizeYardLayoutRequest{})
	assert.EqualError(t, err, "Failed to optimize yard layout")
}

func TestYardAIService_SuggestLocation(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	full := f.location(t, "A-01", "North", 1)
	open := f.location(t, "A-02", "North", 2)
	f.piece(t, "WP-1", &full.ID)
	p := f.piece(t, "WP-2", nil)

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"suggestions": []map[string]any{
			{"locationId": open.ID.String(), "code": "A-02", "score": 0.9, "reason": "Closest free bay"},
		},
	})
	svc := NewYardAIService(client, f.locations, f.pieces)

	got, err := svc.SuggestLocation(ctx, SuggestLocationRequest{PieceID: p.ID, Priority: "high"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A-02", got[0].Code)
	assert.Equal(t, 0.9, got[0].Score)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/yard/suggest-location", req.Path)
	assert.Equal(t, "location_suggestion", req.ModelType())
	candidates, _ := req.Body["candidates"].([]any)
	require.Len(t, candidates, 1)
	assert.Equal(t, "A-02", candidates[0].(map[string]any)["code"])

	_, err = svc.SuggestLocation(ctx, SuggestLocationRequest{PieceID: full.ID})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeNotFound))

	_, err = NewYardAIService(aitest.Failing(t), f.locations, f.pieces).SuggestLocation(ctx, SuggestLocationRequest{PieceID: p.ID})
	assert.EqualError(t, err, "Failed to suggest location")
}
