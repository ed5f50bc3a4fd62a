package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/sales"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OpportunityService tracks opportunities through the sales pipeline
type OpportunityService struct {
	repo     sales.OpportunityRepository
	contacts common.NameResolver
	events   shared.EventPublisher
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(repo sales.OpportunityRepository, contacts common.NameResolver, events shared.EventPublisher) *OpportunityService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &OpportunityService{repo: repo, contacts: contacts, events: events}
}

// ListOpportunities returns a page of opportunities matching the filter
func (s *OpportunityService) ListOpportunities(ctx context.Context, filter OpportunityListFilter) ([]OpportunityResponse, int64, error) {
	f := filter.Filter().
		With("stage", filter.Stage).
		With("contact_id", filter.ContactID).
		With("owner", filter.Owner).
		With("close_from", filter.CloseFrom).
		With("close_to", filter.CloseTo)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch opportunities", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch opportunities", err)
	}
	return s.respondAll(ctx, list), total, nil
}

// GetOpportunity returns an opportunity by ID
func (s *OpportunityService) GetOpportunity(ctx context.Context, id uuid.UUID) (*OpportunityResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch opportunity", err)
	}
	return s.respond(ctx, o), nil
}

// CreateOpportunity opens a lead
func (s *OpportunityService) CreateOpportunity(ctx context.Context, req CreateOpportunityRequest) (*OpportunityResponse, error) {
	o, err := sales.NewOpportunity(req.Name, req.EstimatedValue)
	if err != nil {
		return nil, err
	}
	o.ContactID = req.ContactID
	o.ExpectedCloseDate = req.ExpectedCloseDate
	o.Owner = req.Owner
	o.Notes = req.Notes
	if req.Probability != nil {
		if err := o.SetProbability(*req.Probability); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, common.Fail(ctx, "create opportunity", err)
	}
	logger.L(ctx).Info("Opportunity created",
		zap.String("opportunity_id", o.ID.String()),
		zap.String("estimated_value", o.EstimatedValue.String()),
	)
	return s.respond(ctx, o), nil
}

// UpdateOpportunity applies a partial update to an open opportunity
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, id uuid.UUID, req UpdateOpportunityRequest) (*OpportunityResponse, error) {
	return s.mutate(ctx, id, "update opportunity", func(o *sales.Opportunity) error {
		if !o.IsOpen() {
			return shared.NewDomainError(shared.CodeInvalidState, "Won or lost opportunities cannot be edited")
		}
		if req.Name != nil {
			if err := o.Rename(*req.Name); err != nil {
				return err
			}
		}
		if req.EstimatedValue != nil {
			if err := o.SetValue(*req.EstimatedValue); err != nil {
				return err
			}
		}
		if req.Probability != nil {
			if err := o.SetProbability(*req.Probability); err != nil {
				return err
			}
		}
		if req.ContactID != nil {
			o.ContactID = req.ContactID
		}
		if req.ExpectedCloseDate != nil {
			o.ExpectedCloseDate = req.ExpectedCloseDate
		}
		if req.Owner != nil {
			o.Owner = *req.Owner
		}
		if req.Notes != nil {
			o.Notes = *req.Notes
		}
		o.IncrementVersion()
		return nil
	})
}

// DeleteOpportunity deletes an opportunity
func (s *OpportunityService) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete opportunity", err)
	}
	return nil
}

// AdvanceStage moves an opportunity forward along the pipeline
func (s *OpportunityService) AdvanceStage(ctx context.Context, id uuid.UUID, stage string) (*OpportunityResponse, error) {
	return s.mutate(ctx, id, "advance opportunity", func(o *sales.Opportunity) error {
		return o.AdvanceStage(sales.Stage(stage), time.Now())
	})
}

// MarkWon closes an opportunity as won
func (s *OpportunityService) MarkWon(ctx context.Context, id uuid.UUID) (*OpportunityResponse, error) {
	resp, err := s.mutate(ctx, id, "mark opportunity won", func(o *sales.Opportunity) error {
		return o.MarkWon(time.Now())
	})
	if err == nil {
		logger.L(ctx).Info("Opportunity won",
			zap.String("opportunity_id", resp.ID.String()),
			zap.String("estimated_value", resp.EstimatedValue.String()),
		)
	}
	return resp, err
}

// MarkLost closes an opportunity as lost
func (s *OpportunityService) MarkLost(ctx context.Context, id uuid.UUID, reason string) (*OpportunityResponse, error) {
	return s.mutate(ctx, id, "mark opportunity lost", func(o *sales.Opportunity) error {
		return o.MarkLost(reason, time.Now())
	})
}

// GetPipelineSummary totals count, value and weighted value for every stage, in pipeline order
func (s *OpportunityService) GetPipelineSummary(ctx context.Context, filter PipelineFilter) (*PipelineSummary, error) {
	f := shared.Filter{}.
		With("owner", filter.Owner).
		With("contact_id", filter.ContactID).
		With("close_from", filter.CloseFrom).
		With("close_to", filter.CloseTo)
	totals, err := s.repo.StageTotals(ctx, f)
	if err != nil {
		return nil, common.Fail(ctx, "fetch pipeline summary", err)
	}
	return summarize(totals), nil
}

func summarize(totals []sales.StageTotal) *PipelineSummary {
	byStage := make(map[sales.Stage]sales.StageTotal, len(totals))
	for _, t := range totals {
		byStage[t.Stage] = t
	}
	summary := &PipelineSummary{
		Stages:        make([]PipelineStage, 0, len(sales.Stages)),
		OpenValue:     decimal.Zero,
		WeightedValue: decimal.Zero,
		WonValue:      decimal.Zero,
	}
	for _, stage := range sales.Stages {
		t, ok := byStage[stage]
		if !ok {
			t = sales.StageTotal{Stage: stage, Value: decimal.Zero, WeightedValue: decimal.Zero}
		}
		summary.Stages = append(summary.Stages, PipelineStage{
			Stage:         string(stage),
			Count:         t.Count,
			Value:         t.Value,
			WeightedValue: t.WeightedValue,
		})
		switch {
		case stage == sales.StageWon:
			summary.WonValue = t.Value
		case stage.IsOpen():
			summary.OpenCount += t.Count
			summary.OpenValue = summary.OpenValue.Add(t.Value)
			summary.WeightedValue = summary.WeightedValue.Add(t.WeightedValue)
		}
	}
	return summary
}

func (s *OpportunityService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*sales.Opportunity) error) (*OpportunityResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, o)
	return s.respond(ctx, o), nil
}

func (s *OpportunityService) respond(ctx context.Context, o *sales.Opportunity) *OpportunityResponse {
	resp := s.respondAll(ctx, []sales.Opportunity{*o})[0]
	return &resp
}

func (s *OpportunityService) respondAll(ctx context.Context, list []sales.Opportunity) []OpportunityResponse {
	ids := make([]uuid.UUID, 0, len(list))
	for i := range list {
		if list[i].ContactID != nil {
			ids = append(ids, *list[i].ContactID)
		}
	}
	names := common.ResolveNames(ctx, s.contacts, ids...)
	out := make([]OpportunityResponse, len(list))
	for i := range list {
		name := ""
		if list[i].ContactID != nil {
			name = names[*list[i].ContactID]
		}
		out[i] = ToOpportunityResponse(&list[i], name)
	}
	return out
}
