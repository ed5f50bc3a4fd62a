package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// ProjectsAIService predicts timelines and assesses project risk through the prediction API
type ProjectsAIService struct {
	client shared.AIClient
}

// NewProjectsAIService creates a new ProjectsAIService
func NewProjectsAIService(client shared.AIClient) *ProjectsAIService {
	return &ProjectsAIService{client: client}
}

// PredictTimelineRequest describes the project to schedule
type PredictTimelineRequest struct {
	ProjectID     uuid.UUID `json:"projectId" binding:"required"`
	PieceCount    int       `json:"pieceCount" binding:"gte=0"`
	ProjectType   string    `json:"projectType,omitempty"`
	StartDate     string    `json:"startDate,omitempty"`
	CrewSize      int       `json:"crewSize" binding:"gte=0"`
	PlantCapacity float64   `json:"plantCapacity" binding:"gte=0"`
}

// Milestone is a predicted project milestone
type Milestone struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// TimelinePrediction is the predicted schedule of a project
type TimelinePrediction struct {
	ProjectID      uuid.UUID   `json:"project_id"`
	EstimatedDays  int         `json:"estimated_days"`
	CompletionDate string      `json:"completion_date"`
	Confidence     float64     `json:"confidence"`
	Milestones     []Milestone `json:"milestones"`
}

type timelineReply struct {
	Timeline struct {
		EstimatedDays  int         `json:"estimatedDays"`
		CompletionDate string      `json:"completionDate"`
		Milestones     []Milestone `json:"milestones"`
	} `json:"timeline"`
	Confidence float64 `json:"confidence"`
}

// PredictTimeline predicts how long a project will take
func (s *ProjectsAIService) PredictTimeline(ctx context.Context, req PredictTimelineRequest) (*TimelinePrediction, error) {
	var reply timelineReply
	if err := s.client.Call(ctx, "projects/predict-timeline", "timeline_prediction", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "predict timeline", err)
	}
	milestones := reply.Timeline.Milestones
	if milestones == nil {
		milestones = []Milestone{}
	}
	return &TimelinePrediction{
		ProjectID:      req.ProjectID,
		EstimatedDays:  reply.Timeline.EstimatedDays,
		CompletionDate: reply.Timeline.CompletionDate,
		Confidence:     reply.Confidence,
		Milestones:     milestones,
	}, nil
}

// AssessRisksRequest describes the project state to assess
type AssessRisksRequest struct {
	ProjectID     uuid.UUID `json:"projectId" binding:"required"`
	Progress      int       `json:"progress" binding:"gte=0,lte=100"`
	DaysRemaining int       `json:"daysRemaining"`
	BudgetUsed    float64   `json:"budgetUsed" binding:"gte=0"`
	OpenIssues    int       `json:"openIssues" binding:"gte=0"`
	Weather       string    `json:"weather,omitempty"`
}

// Risk is one identified project risk
type Risk struct {
	Category   string  `json:"category"`
	Level      string  `json:"level"`
	Likelihood float64 `json:"likelihood"`
	Mitigation string  `json:"mitigation"`
}

// RiskAssessment lists the risks of a project
type RiskAssessment struct {
	ProjectID    uuid.UUID `json:"project_id"`
	OverallLevel string    `json:"overall_level"`
	Risks        []Risk    `json:"risks"`
}

type riskReply struct {
	Analysis struct {
		OverallRisk string `json:"overallRisk"`
		Risks       []struct {
			Category    string  `json:"category"`
			Level       string  `json:"level"`
			Probability float64 `json:"probability"`
			Mitigation  string  `json:"mitigation"`
		} `json:"risks"`
	} `json:"analysis"`
}

// AssessRisks identifies schedule and cost risks of a project
func (s *ProjectsAIService) AssessRisks(ctx context.Context, req AssessRisksRequest) (*RiskAssessment, error) {
	var reply riskReply
	if err := s.client.AnalyzeData(ctx, "project_risk", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "assess risks", err)
	}
	out := &RiskAssessment{
		ProjectID:    req.ProjectID,
		OverallLevel: reply.Analysis.OverallRisk,
		Risks:        make([]Risk, 0, len(reply.Analysis.Risks)),
	}
	for _, r := range reply.Analysis.Risks {
		out.Risks = append(out.Risks, Risk{
			Category:   r.Category,
			Level:      r.Level,
			Likelihood: r.Probability,
			Mitigation: r.Mitigation,
		})
	}
	return out, nil
}
