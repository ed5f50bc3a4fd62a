package quality

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/quality"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// QualityAIService predicts defects and analyzes the causes of non-conformances
type QualityAIService struct {
	client      shared.AIClient
	ncrs        quality.NonConformanceRepository
	inspections quality.InspectionRepository
}

// NewQualityAIService creates a new QualityAIService
func NewQualityAIService(client shared.AIClient, ncrs quality.NonConformanceRepository, inspections quality.InspectionRepository) *QualityAIService {
	return &QualityAIService{client: client, ncrs: ncrs, inspections: inspections}
}

// PredictDefectsRequest describes a pour to assess
type PredictDefectsRequest struct {
	ProjectID    uuid.UUID `json:"projectId" binding:"required"`
	ElementType  string    `json:"elementType" binding:"required"`
	MixDesign    string    `json:"mixDesign,omitempty"`
	CuringHours  float64   `json:"curingHours" binding:"gte=0"`
	AmbientTempC float64   `json:"ambientTempC"`
	Humidity     float64   `json:"humidity" binding:"gte=0,lte=100"`
}

// DefectRisk is one predicted defect
type DefectRisk struct {
	DefectType  string  `json:"defect_type"`
	Probability float64 `json:"probability"`
	Prevention  string  `json:"prevention"`
}

// DefectPrediction is the predicted defect profile of a pour
type DefectPrediction struct {
	ProjectID  uuid.UUID    `json:"project_id"`
	RiskLevel  string       `json:"risk_level"`
	Defects    []DefectRisk `json:"defects"`
	Confidence float64      `json:"confidence"`
}

type defectReply struct {
	Prediction struct {
		RiskLevel string `json:"riskLevel"`
		Defects   []struct {
			Type        string  `json:"type"`
			Probability float64 `json:"probability"`
			Prevention  string  `json:"prevention"`
		} `json:"defects"`
	} `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// PredictDefects predicts the likely defects of a pour
func (s *QualityAIService) PredictDefects(ctx context.Context, req PredictDefectsRequest) (*DefectPrediction, error) {
	var reply defectReply
	if err := s.client.GetPrediction(ctx, "defect_prediction", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "predict defects", err)
	}
	out := &DefectPrediction{
		ProjectID:  req.ProjectID,
		RiskLevel:  reply.Prediction.RiskLevel,
		Defects:    make([]DefectRisk, 0, len(reply.Prediction.Defects)),
		Confidence: reply.Confidence,
	}
	for _, d := range reply.Prediction.Defects {
		out.Defects = append(out.Defects, DefectRisk{DefectType: d.Type, Probability: d.Probability, Prevention: d.Prevention})
	}
	return out, nil
}

// AnalyzeRootCauseRequest names the report to analyze
type AnalyzeRootCauseRequest struct {
	NonConformanceID uuid.UUID `json:"nonConformanceId" binding:"required"`
	Context          string    `json:"context"`
}

type rootCauseParams struct {
	NCRNumber        string                  `json:"ncrNumber"`
	Severity         string                  `json:"severity"`
	Description      string                  `json:"description"`
	CorrectiveAction string                  `json:"correctiveAction,omitempty"`
	InspectionType   string                  `json:"inspectionType,omitempty"`
	Checklist        []quality.ChecklistItem `json:"checklist,omitempty"`
	Context          string                  `json:"context,omitempty"`
}

// RootCause is one candidate cause of a defect
type RootCause struct {
	Cause      string  `json:"cause"`
	Category   string  `json:"category"`
	Likelihood float64 `json:"likelihood"`
}

// RootCauseAnalysis explains a non-conformance and proposes actions
type RootCauseAnalysis struct {
	NonConformanceID  uuid.UUID   `json:"non_conformance_id"`
	Causes            []RootCause `json:"causes"`
	CorrectiveActions []string    `json:"corrective_actions"`
	PreventiveActions []string    `json:"preventive_actions"`
}

type rootCauseReply struct {
	Analysis struct {
		RootCauses []struct {
			Cause       string  `json:"cause"`
			Category    string  `json:"category"`
			Probability float64 `json:"probability"`
		} `json:"rootCauses"`
		CorrectiveActions []string `json:"correctiveActions"`
		PreventiveActions []string `json:"preventiveActions"`
	} `json:"analysis"`
}

// AnalyzeRootCause sends a report, with its inspection checklist when it has one, for analysis
func (s *QualityAIService) AnalyzeRootCause(ctx context.Context, req AnalyzeRootCauseRequest) (*RootCauseAnalysis, error) {
	n, err := s.ncrs.FindByID(ctx, req.NonConformanceID)
	if err != nil {
		return nil, common.Fail(ctx, "analyze root cause", err)
	}
	params := rootCauseParams{
		NCRNumber:        n.NCRNumber,
		Severity:         string(n.Severity),
		Description:      n.Description,
		CorrectiveAction: n.CorrectiveAction,
		Context:          req.Context,
	}
	if n.InspectionID != nil {
		insp, err := s.inspections.FindByID(ctx, *n.InspectionID)
		switch {
		case err == nil:
			params.InspectionType = string(insp.InspectionType)
			params.Checklist = insp.Checklist
		case !shared.IsDomainErrorCode(err, shared.CodeNotFound):
			return nil, common.Fail(ctx, "analyze root cause", err)
		}
	}

	var reply rootCauseReply
	if err := s.client.Call(ctx, "quality/root-cause", "root_cause_analysis", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "analyze root cause", err)
	}
	out := &RootCauseAnalysis{
		NonConformanceID:  n.ID,
		Causes:            make([]RootCause, 0, len(reply.Analysis.RootCauses)),
		CorrectiveActions: reply.Analysis.CorrectiveActions,
		PreventiveActions: reply.Analysis.PreventiveActions,
	}
	for _, c := range reply.Analysis.RootCauses {
		out.Causes = append(out.Causes, RootCause{Cause: c.Cause, Category: c.Category, Likelihood: c.Probability})
	}
	if out.CorrectiveActions == nil {
		out.CorrectiveActions = []string{}
	}
	if out.PreventiveActions == nil {
		out.PreventiveActions = []string{}
	}
	return out, nil
}
