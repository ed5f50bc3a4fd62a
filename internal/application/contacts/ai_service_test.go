package contacts

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactsAIService_ScoreLead(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("posts to the lead scoring endpoint", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"score":           82.5,
			"grade":           "A",
			"factors":         []string{"repeat customer"},
			"recommendations": []string{"send proposal"},
		})
		svc := NewContactsAIService(client)

		score, err := svc.ScoreLead(ctx, ScoreLeadRequest{ContactID: id, CompanyName: "Metro Builders", Interactions: 4})
		require.NoError(t, err)

		assert.Equal(t, id, score.ContactID)
		assert.Equal(t, 82.5, score.Score)
		assert.Equal(t, "A", score.Grade)
		assert.Equal(t, []string{"send proposal"}, score.NextActions)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/contacts/score-lead", req.Path)
		assert.Equal(t, "lead_scoring", req.ModelType())
		assert.Equal(t, "Metro Builders", req.Body["companyName"])
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewContactsAIService(aitest.Failing(t))

		_, err := svc.ScoreLead(ctx, ScoreLeadRequest{ContactID: id})
		require.Error(t, err)
		assert.Equal(t, "Failed to score lead", err.Error())

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.CodeAIRequestFailed, de.Code)
	})
}

func TestContactsAIService_SuggestFollowUp(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("reshapes recommendations", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"recommendations": []map[string]any{
				{"action": "Call about bid", "channel": "phone", "dueInDays": 2, "reason": "bid due"},
			},
		})
		svc := NewContactsAIService(client)

		plan, err := svc.SuggestFollowUp(ctx, SuggestFollowUpRequest{ContactID: id, DaysSinceContact: 14})
		require.NoError(t, err)
		require.Len(t, plan.Suggestions, 1)
		assert.Equal(t, "phone", plan.Suggestions[0].Channel)
		assert.Equal(t, 2, plan.Suggestions[0].DueInDays)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/recommendations", req.Path)
		assert.Equal(t, "contact_follow_up", req.ModelType())
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewContactsAIService(aitest.Failing(t))

		_, err := svc.SuggestFollowUp(ctx, SuggestFollowUpRequest{ContactID: id})
		assert.EqualError(t, err, "Failed to suggest follow-up")
	})
}
