package hr

import (
	"context"
	"net/http"
	"testing"

	"github.com/precast-erp/backend/internal/infrastructure/ai/aitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHRAIService_PredictStaffing(t *testing.T) {
	ctx := context.Background()

	t.Run("computes the headcount gap", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"prediction": map[string]any{
				"requiredHeadcount": 14,
				"weekly":            []map[string]any{{"week": 1, "headcount": 12}, {"week": 2, "headcount": 14}},
			},
			"confidence":      0.8,
			"recommendations": []string{"Hire two finishers"},
		})
		svc := NewHRAIService(client)

		got, err := svc.PredictStaffing(ctx, PredictStaffingRequest{Department: "Production", HorizonWeeks: 2, CurrentHeadcount: 11})
		require.NoError(t, err)
		assert.Equal(t, 3, got.Gap)
		assert.Len(t, got.Weekly, 2)
		assert.Equal(t, []string{"Hire two finishers"}, got.Recommendations)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/predict", req.Path)
		assert.Equal(t, "staffing_forecast", req.ModelType())
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewHRAIService(aitest.Failing(t))
		_, err := svc.PredictStaffing(ctx, PredictStaffingRequest{Department: "Yard", HorizonWeeks: 1})
		assert.EqualError(t, err, "Failed to predict staffing")
	})
}

func TestHRAIService_AnalyzeAttendance(t *testing.T) {
	ctx := context.Background()

	t.Run("reshapes patterns", func(t *testing.T) {
		client, srv := aitest.New(t, http.StatusOK, map[string]any{
			"analysis": map[string]any{
				"absenceRate": 0.04,
				"patterns":    []map[string]any{{"pattern": "Monday absences", "frequency": 0.3, "severity": "medium"}},
			},
		})
		svc := NewHRAIService(client)

		got, err := svc.AnalyzeAttendance(ctx, AnalyzeAttendanceRequest{From: "2026-01-01", To: "2026-03-31"})
		require.NoError(t, err)
		assert.Equal(t, 0.04, got.AbsenceRate)
		require.Len(t, got.Patterns, 1)
		assert.Equal(t, "Monday absences", got.Patterns[0].Pattern)
		assert.NotNil(t, got.Insights)

		req := srv.Last(t)
		assert.Equal(t, "/api/ai/hr/analyze-attendance", req.Path)
		assert.Equal(t, "attendance_analysis", req.ModelType())
	})

	t.Run("fails with a stable message on non-2xx", func(t *testing.T) {
		svc := NewHRAIService(aitest.Failing(t))
		_, err := svc.AnalyzeAttendance(ctx, AnalyzeAttendanceRequest{From: "a", To: "b"})
		assert.EqualError(t, err, "Failed to analyze attendance")
	})
}
