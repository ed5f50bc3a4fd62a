package projects

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsAIService_PredictTimeline(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"timeline": map[string]any{
			"estimatedDays":  120,
			"completionDate": "2026-09-30",
			"milestones":     []map[string]string{{"name": "Erection start", "date": "2026-07-01"}},
		},
		"confidence": 0.7,
	})
	svc := NewProjectsAIService(client)

	got, err := svc.PredictTimeline(ctx, PredictTimelineRequest{ProjectID: id, PieceCount: 340})
	require.NoError(t, err)
	assert.Equal(t, id, got.ProjectID)
	assert.Equal(t, 120, got.EstimatedDays)
	require.Len(t, got.Milestones, 1)
	assert.Equal(t, "Erection start", got.Milestones[0].Name)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/projects/predict-timeline", req.Path)
	assert.Equal(t, "timeline_prediction", req.ModelType())
	assert.EqualValues(t, 340, req.Body["pieceCount"])

	_, err = NewProjectsAIService(aitest.Failing(t)).PredictTimeline(ctx, PredictTimelineRequest{ProjectID: id})
	assert.EqualError(t, err, "Failed to predict timeline")
}

func TestProjectsAIService_AssessRisks(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	client, srv := aitest.New(t, http.StatusOK, map[string]any{
		"analysis": map[string]any{
			"overallRisk": "medium",
			"risks": []map[string]any{
				{"category": "schedule", "level": "high", "probability": 0.6, "mitigation": "add a second shift"},
			},
		},
	})
	svc := NewProjectsAIService(client)

	got, err := svc.AssessRisks(ctx, AssessRisksRequest{ProjectID: id, Progress: 35})
	require.NoError(t, err)
	assert.Equal(t, "medium", got.OverallLevel)
	require.Len(t, got.Risks, 1)
	assert.Equal(t, 0.6, got.Risks[0].Likelihood)

	req := srv.Last(t)
	assert.Equal(t, "/api/ai/analyze", req.Path)
	assert.Equal(t, "project_risk", req.ModelType())

	_, err = NewProjectsAIService(aitest.Failing(t)).AssessRisks(ctx, AssessRisksRequest{ProjectID: id})
	assert.EqualError(t, err, "Failed to assess risks")
}
