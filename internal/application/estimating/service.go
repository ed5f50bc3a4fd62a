package estimating

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/estimating"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProjectCreator opens a project for a converted estimate
type ProjectCreator interface {
	CreateFromEstimate(ctx context.Context, name string, contactID uuid.UUID, budget decimal.Decimal) (uuid.UUID, error)
}

// EstimateService handles estimate business operations
type EstimateService struct {
	repo     estimating.EstimateRepository
	contacts common.NameResolver
	projects ProjectCreator
	events   shared.EventPublisher
}

// NewEstimateService creates a new EstimateService
func NewEstimateService(
	repo estimating.EstimateRepository,
	contacts common.NameResolver,
	projects ProjectCreator,
	events shared.EventPublisher,
) *EstimateService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &EstimateService{repo: repo, contacts: contacts, projects: projects, events: events}
}

// ListEstimates returns a page of estimates matching the filter
func (s *EstimateService) ListEstimates(ctx context.Context, filter EstimateListFilter) ([]EstimateResponse, int64, error) {
	f := filter.Filter().
		With("status", filter.Status).
		With("contact_id", filter.ContactID).
		With("project_id", filter.ProjectID)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch estimates", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch estimates", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ContactID
	}
	names := common.ResolveNames(ctx, s.contacts, ids...)

	responses := make([]EstimateResponse, len(list))
	for i := range list {
		responses[i] = ToEstimateResponse(&list[i], names[list[i].ContactID])
	}
	return responses, total, nil
}

// GetEstimate returns an estimate with its items
func (s *EstimateService) GetEstimate(ctx context.Context, id uuid.UUID) (*EstimateResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch estimate", err)
	}
	return s.respond(ctx, e), nil
}

// CreateEstimate creates a draft estimate and prices its items
func (s *EstimateService) CreateEstimate(ctx context.Context, req CreateEstimateRequest) (*EstimateResponse, error) {
	e, err := estimating.NewEstimate(req.ContactID, req.ProjectName)
	if err != nil {
		return nil, err
	}
	if req.MarkupPercent != nil {
		if err := e.SetMarkup(*req.MarkupPercent); err != nil {
			return nil, err
		}
	}
	if len(req.Items) > 0 {
		if err := e.SetItems(toItemInputs(req.Items)); err != nil {
			return nil, err
		}
	}
	if req.ValidUntil != nil {
		e.ValidUntil = shared.TruncateToDay(*req.ValidUntil)
	}
	e.Notes = req.Notes

	if err := s.repo.Save(ctx, e); err != nil {
		return nil, common.Fail(ctx, "create estimate", err)
	}

	logger.L(ctx).Info("Estimate created",
		zap.String("estimate_id", e.ID.String()),
		zap.String("estimate_number", e.EstimateNumber),
		zap.String("total", e.Total.StringFixed(2)))
	return s.respond(ctx, e), nil
}

// UpdateEstimate applies a partial update to a draft estimate
func (s *EstimateService) UpdateEstimate(ctx context.Context, id uuid.UUID, req UpdateEstimateRequest) (*EstimateResponse, error) {
	return s.mutate(ctx, id, "update estimate", func(e *estimating.Estimate) error {
		if !e.IsEditable() {
			return shared.NewDomainError(shared.CodeInvalidState, "Estimate can only be edited in DRAFT status")
		}
		if req.ContactID != nil {
			if *req.ContactID == uuid.Nil {
				return shared.NewDomainError("INVALID_CONTACT", "Estimate requires a contact")
			}
			e.ContactID = *req.ContactID
		}
		if req.ProjectName != nil {
			if *req.ProjectName == "" {
				return shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
			}
			e.ProjectName = *req.ProjectName
		}
		if req.MarkupPercent != nil {
			if err := e.SetMarkup(*req.MarkupPercent); err != nil {
				return err
			}
		}
		if req.Items != nil {
			if err := e.SetItems(toItemInputs(*req.Items)); err != nil {
				return err
			}
		}
		if req.ValidUntil != nil {
			e.ValidUntil = shared.TruncateToDay(*req.ValidUntil)
		}
		if req.Notes != nil {
			e.Notes = *req.Notes
		}
		e.IncrementVersion()
		return nil
	})
}

// DeleteEstimate deletes a draft or rejected estimate
func (s *EstimateService) DeleteEstimate(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete estimate", err)
	}
	if !e.CanDelete() {
		return shared.NewDomainError(shared.CodeInvalidState, "Only DRAFT or REJECTED estimates can be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete estimate", err)
	}
	return nil
}

// SubmitEstimate sends a draft estimate for approval
func (s *EstimateService) SubmitEstimate(ctx context.Context, id uuid.UUID) (*EstimateResponse, error) {
	return s.mutate(ctx, id, "submit estimate", func(e *estimating.Estimate) error {
		return e.Submit()
	})
}

// ApproveEstimate approves a submitted estimate
func (s *EstimateService) ApproveEstimate(ctx context.Context, id uuid.UUID) (*EstimateResponse, error) {
	return s.mutate(ctx, id, "approve estimate", func(e *estimating.Estimate) error {
		return e.Approve()
	})
}

// RejectEstimate rejects a submitted estimate
func (s *EstimateService) RejectEstimate(ctx context.Context, id uuid.UUID, reason string) (*EstimateResponse, error) {
	return s.mutate(ctx, id, "reject estimate", func(e *estimating.Estimate) error {
		return e.Reject(reason)
	})
}

// ReviseEstimate returns a rejected estimate to DRAFT
func (s *EstimateService) ReviseEstimate(ctx context.Context, id uuid.UUID) (*EstimateResponse, error) {
	return s.mutate(ctx, id, "revise estimate", func(e *estimating.Estimate) error {
		return e.Revise()
	})
}

// ConvertEstimate marks an approved estimate as converted and records its project.
// When no project is given one is created from the estimate's name, contact and total.
func (s *EstimateService) ConvertEstimate(ctx context.Context, id uuid.UUID, req ConvertEstimateRequest) (*EstimateResponse, error) {
	return s.mutate(ctx, id, "convert estimate", func(e *estimating.Estimate) error {
		if e.Status != estimating.EstimateStatusApproved {
			return shared.InvalidTransition("estimate", string(e.Status), string(estimating.EstimateStatusConverted))
		}
		projectID := uuid.Nil
		if req.ProjectID != nil {
			projectID = *req.ProjectID
		}
		if projectID == uuid.Nil {
			if s.projects == nil {
				return shared.NewDomainError("INVALID_PROJECT", "Conversion requires a project")
			}
			created, err := s.projects.CreateFromEstimate(ctx, e.ProjectName, e.ContactID, e.Total)
			if err != nil {
				return common.Fail(ctx, "convert estimate", err)
			}
			projectID = created
		}
		return e.Convert(projectID)
	})
}

func (s *EstimateService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*estimating.Estimate) error) (*EstimateResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(e); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, e)
	return s.respond(ctx, e), nil
}

func (s *EstimateService) respond(ctx context.Context, e *estimating.Estimate) *EstimateResponse {
	names := common.ResolveNames(ctx, s.contacts, e.ContactID)
	resp := ToEstimateResponse(e, names[e.ContactID])
	return &resp
}
