package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/sales"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// forecastSampleSize caps the open opportunities sent with a forecast request
const forecastSampleSize = 200

// SalesAIService forecasts revenue and scores opportunities
type SalesAIService struct {
	client   shared.AIClient
	repo     sales.OpportunityRepository
	contacts common.NameResolver
}

// NewSalesAIService creates a new SalesAIService
func NewSalesAIService(client shared.AIClient, repo sales.OpportunityRepository, contacts common.NameResolver) *SalesAIService {
	return &SalesAIService{client: client, repo: repo, contacts: contacts}
}

// ForecastSalesRequest scopes a revenue forecast
type ForecastSalesRequest struct {
	Months int    `json:"months" binding:"omitempty,min=1,max=24"`
	Owner  string `json:"owner"`
}

type stageSnapshot struct {
	Stage         string  `json:"stage"`
	Count         int64   `json:"count"`
	Value         float64 `json:"value"`
	WeightedValue float64 `json:"weightedValue"`
}

type opportunitySnapshot struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Stage             string    `json:"stage"`
	EstimatedValue    float64   `json:"estimatedValue"`
	Probability       int       `json:"probability"`
	ExpectedCloseDate string    `json:"expectedCloseDate,omitempty"`
	Owner             string    `json:"owner,omitempty"`
	Contact           string    `json:"contact,omitempty"`
}

type forecastParams struct {
	Months        int                   `json:"months"`
	Owner         string                `json:"owner,omitempty"`
	Pipeline      []stageSnapshot       `json:"pipeline"`
	Opportunities []opportunitySnapshot `json:"opportunities"`
}

// ForecastPeriod is the predicted revenue of one month
type ForecastPeriod struct {
	Period   string  `json:"period"`
	Expected float64 `json:"expected"`
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
}

// SalesForecast is the predicted revenue over the coming months
type SalesForecast struct {
	Periods         []ForecastPeriod `json:"periods"`
	TotalExpected   float64          `json:"total_expected"`
	ExpectedWinRate float64          `json:"expected_win_rate"`
	Confidence      float64          `json:"confidence"`
}

type forecastReply struct {
	Prediction struct {
		Periods []struct {
			Period   string  `json:"period"`
			Expected float64 `json:"expected"`
			Low      float64 `json:"low"`
			High     float64 `json:"high"`
		} `json:"periods"`
		ExpectedWinRate float64 `json:"expectedWinRate"`
	} `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// ForecastSales predicts revenue from the current pipeline
func (s *SalesAIService) ForecastSales(ctx context.Context, req ForecastSalesRequest) (*SalesForecast, error) {
	months := req.Months
	if months == 0 {
		months = 3
	}
	scope := shared.Filter{}.With("owner", req.Owner)
	totals, err := s.repo.StageTotals(ctx, scope)
	if err != nil {
		return nil, common.Fail(ctx, "forecast sales", err)
	}
	summary := summarize(totals)

	params := forecastParams{
		Months:        months,
		Owner:         req.Owner,
		Pipeline:      make([]stageSnapshot, len(summary.Stages)),
		Opportunities: []opportunitySnapshot{},
	}
	for i, st := range summary.Stages {
		value, _ := st.Value.Float64()
		weighted, _ := st.WeightedValue.Float64()
		params.Pipeline[i] = stageSnapshot{Stage: st.Stage, Count: st.Count, Value: value, WeightedValue: weighted}
	}
	for _, stage := range sales.Stages {
		if !stage.IsOpen() {
			continue
		}
		f := scope.With("stage", string(stage))
		f.PageSize, f.Page = forecastSampleSize, 1
		list, err := s.repo.FindAll(ctx, f)
		if err != nil {
			return nil, common.Fail(ctx, "forecast sales", err)
		}
		params.Opportunities = append(params.Opportunities, s.snapshots(ctx, list)...)
	}

	var reply forecastReply
	if err := s.client.GetPrediction(ctx, "sales_forecast", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "forecast sales", err)
	}
	out := &SalesForecast{
		Periods:         make([]ForecastPeriod, len(reply.Prediction.Periods)),
		ExpectedWinRate: reply.Prediction.ExpectedWinRate,
		Confidence:      reply.Confidence,
	}
	for i, p := range reply.Prediction.Periods {
		out.Periods[i] = ForecastPeriod{Period: p.Period, Expected: p.Expected, Low: p.Low, High: p.High}
		out.TotalExpected += p.Expected
	}
	return out, nil
}

// ScoreOpportunityRequest names the opportunity to score
type ScoreOpportunityRequest struct {
	OpportunityID uuid.UUID `json:"opportunityId" binding:"required"`
}

// ScoreFactor is one input that moved the score
type ScoreFactor struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
}

// OpportunityScore rates how likely an opportunity is to close
type OpportunityScore struct {
	OpportunityID  uuid.UUID     `json:"opportunity_id"`
	Score          float64       `json:"score"`
	WinProbability float64       `json:"win_probability"`
	Factors        []ScoreFactor `json:"factors"`
	NextActions    []string      `json:"next_actions"`
}

type scoreReply struct {
	Score          float64 `json:"score"`
	WinProbability float64 `json:"winProbability"`
	Factors        []struct {
		Factor string  `json:"factor"`
		Impact float64 `json:"impact"`
	} `json:"factors"`
	NextActions []string `json:"nextActions"`
}

// ScoreOpportunity rates an opportunity's chance of closing and suggests next steps
func (s *SalesAIService) ScoreOpportunity(ctx context.Context, req ScoreOpportunityRequest) (*OpportunityScore, error) {
	o, err := s.repo.FindByID(ctx, req.OpportunityID)
	if err != nil {
		return nil, common.Fail(ctx, "score opportunity", err)
	}
	params := s.snapshots(ctx, []sales.Opportunity{*o})[0]

	var reply scoreReply
	if err := s.client.Call(ctx, "sales/score-opportunity", "opportunity_scoring", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "score opportunity", err)
	}
	out := &OpportunityScore{
		OpportunityID:  o.ID,
		Score:          reply.Score,
		WinProbability: reply.WinProbability,
		Factors:        make([]ScoreFactor, len(reply.Factors)),
		NextActions:    reply.NextActions,
	}
	for i, f := range reply.Factors {
		out.Factors[i] = ScoreFactor{Factor: f.Factor, Impact: f.Impact}
	}
	if out.NextActions == nil {
		out.NextActions = []string{}
	}
	return out, nil
}

func (s *SalesAIService) snapshots(ctx context.Context, list []sales.Opportunity) []opportunitySnapshot {
	ids := make([]uuid.UUID, 0, len(list))
	for i := range list {
		if list[i].ContactID != nil {
			ids = append(ids, *list[i].ContactID)
		}
	}
	names := common.ResolveNames(ctx, s.contacts, ids...)
	out := make([]opportunitySnapshot, len(list))
	for i := range list {
		o := &list[i]
		value, _ := o.EstimatedValue.Float64()
		snap := opportunitySnapshot{
			ID:             o.ID,
			Name:           o.Name,
			Stage:          string(o.Stage),
			EstimatedValue: value,
			Probability:    o.Probability,
			Owner:          o.Owner,
		}
		if o.ExpectedCloseDate != nil {
			snap.ExpectedCloseDate = o.ExpectedCloseDate.Format("2006-01-02")
		}
		if o.ContactID != nil {
			snap.Contact = names[*o.ContactID]
		}
		out[i] = snap
	}
	return out
}
