package drafting

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftingAIService_CheckDesign(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"passed": false,
		"score":  61.0,
		"issues": []map[string]string{{"severity": "major", "element": "DT-3", "message": "Insufficient bearing"}},
	})
	got, err := NewDraftingAIService(client).CheckDesign(ctx, CheckDesignRequest{DrawingID: id, ElementType: "double_tee", Span: 18})
	require.NoError(t, err)
	assert.False(t, got.Passed)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "DT-3", got.Issues[0].Element)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/drafting/check-design", req.Path)
	assert.Equal(t, "design_check", req.ModelType())

	_, err = NewDraftingAIService(aitest.Failing(t)).CheckDesign(ctx, CheckDesignRequest{DrawingID: id, ElementType: "beam"})
	assert.EqualError(t, err, "Failed to check design")
}

func TestDraftingAIService_GenerateElements(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"content": map[string]any{
			"elements": []map[string]any{
				{"mark": "DT-1", "type": "double_tee", "length": 18.3, "weight": 22.5, "quantity": 12},
				{"mark": "IT-1", "type": "inverted_tee", "length": 9.1, "weight": 14},
			},
		},
	})
	got, err := NewDraftingAIService(client).GenerateElements(ctx, GenerateElementsRequest{
		ProjectID: id, StructureType: "parking", Levels: 3, BayWidth: 18, BayCount: 6,
	})
	require.NoError(t, err)
	require.Len(t, got.Elements, 2)
	assert.Equal(t, 12, got.Elements[0].Quantity)
	assert.Equal(t, 1, got.Elements[1].Quantity, "missing quantities default to one")

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/generate", req.Path)
	assert.Equal(t, "element_generation", req.ModelType())

	_, err = NewDraftingAIService(aitest.Failing(t)).GenerateElements(ctx, GenerateElementsRequest{ProjectID: id})
	assert.EqualError(t, err, "Failed to generate elements")
}
