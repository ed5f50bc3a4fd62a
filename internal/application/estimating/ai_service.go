package estimating

import (
	"context"

	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// EstimatingAIService predicts costs and analyzes bids through the prediction API
type EstimatingAIService struct {
	client shared.AIClient
}

// NewEstimatingAIService creates a new EstimatingAIService
func NewEstimatingAIService(client shared.AIClient) *EstimatingAIService {
	return &EstimatingAIService{client: client}
}

// PredictCostRequest describes the work to price
type PredictCostRequest struct {
	PieceType     string   `json:"pieceType" binding:"required"`
	Quantity      float64  `json:"quantity" binding:"gt=0"`
	ConcreteMix   string   `json:"concreteMix,omitempty"`
	Dimensions    string   `json:"dimensions,omitempty"`
	Region        string   `json:"region,omitempty"`
	Complexity    string   `json:"complexity,omitempty" binding:"omitempty,oneof=low medium high"`
	Reinforcement []string `json:"reinforcement,omitempty"`
}

// CostPrediction is the predicted cost of the work
type CostPrediction struct {
	UnitCost   float64            `json:"unit_cost"`
	TotalCost  float64            `json:"total_cost"`
	Confidence float64            `json:"confidence"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Range      CostRange          `json:"range"`
}

// CostRange bounds a predicted cost
type CostRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type costReply struct {
	Prediction struct {
		UnitCost  float64            `json:"unitCost"`
		TotalCost float64            `json:"totalCost"`
		Breakdown map[string]float64 `json:"breakdown"`
		Low       float64            `json:"low"`
		High      float64            `json:"high"`
	} `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// PredictCost predicts the unit and total cost of precast work
func (s *EstimatingAIService) PredictCost(ctx context.Context, req PredictCostRequest) (*CostPrediction, error) {
	var reply costReply
	if err := s.client.GetPrediction(ctx, "cost_estimation", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "predict cost", err)
	}
	breakdown := reply.Prediction.Breakdown
	if breakdown == nil {
		breakdown = map[string]float64{}
	}
	return &CostPrediction{
		UnitCost:   reply.Prediction.UnitCost,
		TotalCost:  reply.Prediction.TotalCost,
		Confidence: reply.Confidence,
		Breakdown:  breakdown,
		Range:      CostRange{Low: reply.Prediction.Low, High: reply.Prediction.High},
	}, nil
}

// AnalyzeBidRequest describes a bid to compare against the market
type AnalyzeBidRequest struct {
	EstimateNumber   string    `json:"estimateNumber"`
	BidAmount        float64   `json:"bidAmount" binding:"gt=0"`
	MarkupPercent    float64   `json:"markupPercent" binding:"gte=0"`
	CompetitorBids   []float64 `json:"competitorBids,omitempty"`
	ProjectType      string    `json:"projectType,omitempty"`
	ClientHistoryWon int       `json:"clientHistoryWon" binding:"gte=0"`
}

// BidAnalysis is the assessment of a bid
type BidAnalysis struct {
	WinProbability  float64  `json:"win_probability"`
	Competitiveness string   `json:"competitiveness"`
	SuggestedMarkup float64  `json:"suggested_markup"`
	Insights        []string `json:"insights"`
}

type bidReply struct {
	Analysis struct {
		WinProbability  float64 `json:"winProbability"`
		Competitiveness string  `json:"competitiveness"`
		SuggestedMarkup float64 `json:"suggestedMarkup"`
	} `json:"analysis"`
	Insights []string `json:"insights"`
}

// AnalyzeBid estimates how competitive a bid is
func (s *EstimatingAIService) AnalyzeBid(ctx context.Context, req AnalyzeBidRequest) (*BidAnalysis, error) {
	var reply bidReply
	if err := s.client.Call(ctx, "estimating/analyze-bid", "bid_analysis", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "analyze bid", err)
	}
	insights := reply.Insights
	if insights == nil {
		insights = []string{}
	}
	return &BidAnalysis{
		WinProbability:  reply.Analysis.WinProbability,
		Competitiveness: reply.Analysis.Competitiveness,
		SuggestedMarkup: reply.Analysis.SuggestedMarkup,
		Insights:        insights,
	}, nil
}
