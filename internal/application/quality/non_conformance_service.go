package quality

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/quality"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// NonConformanceService manages non-conformance reports through review, resolution and closure
type NonConformanceService struct {
	repo        quality.NonConformanceRepository
	inspections quality.InspectionRepository
	projects    common.NameResolver
	events      shared.EventPublisher
}

// NewNonConformanceService creates a new NonConformanceService
func NewNonConformanceService(
	repo quality.NonConformanceRepository,
	inspections quality.InspectionRepository,
	projects common.NameResolver,
	events shared.EventPublisher,
) *NonConformanceService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &NonConformanceService{repo: repo, inspections: inspections, projects: projects, events: events}
}

// ListNonConformances returns a page of reports matching the filter
func (s *NonConformanceService) ListNonConformances(ctx context.Context, filter NonConformanceListFilter) ([]NonConformanceResponse, int64, error) {
	f := filter.Filter().
		With("project_id", filter.ProjectID).
		With("inspection_id", filter.InspectionID).
		With("severity", filter.Severity).
		With("status", filter.Status)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch non-conformances", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch non-conformances", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ProjectID
	}
	names := common.ResolveNames(ctx, s.projects, ids...)
	responses := make([]NonConformanceResponse, len(list))
	for i := range list {
		responses[i] = ToNonConformanceResponse(&list[i], names[list[i].ProjectID])
	}
	return responses, total, nil
}

// GetNonConformance returns a report by ID
func (s *NonConformanceService) GetNonConformance(ctx context.Context, id uuid.UUID) (*NonConformanceResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch non-conformance", err)
	}
	return s.respond(ctx, n), nil
}

// CreateNonConformance opens a report. A linked inspection must belong to the same project.
func (s *NonConformanceService) CreateNonConformance(ctx context.Context, req CreateNonConformanceRequest) (*NonConformanceResponse, error) {
	if req.InspectionID != nil {
		insp, err := s.inspections.FindByID(ctx, *req.InspectionID)
		if err != nil {
			return nil, common.Fail(ctx, "create non-conformance", err)
		}
		if insp.ProjectID != req.ProjectID {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Inspection belongs to another project")
		}
	}
	n, err := quality.NewNonConformance(req.ProjectID, req.Description, quality.Severity(req.Severity))
	if err != nil {
		return nil, err
	}
	n.InspectionID = req.InspectionID
	n.CorrectiveAction = req.CorrectiveAction
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, common.Fail(ctx, "create non-conformance", err)
	}
	common.Publish(ctx, s.events, n)
	logger.L(ctx).Info("Non-conformance opened",
		zap.String("ncr_number", n.NCRNumber),
		zap.String("severity", string(n.Severity)),
	)
	return s.respond(ctx, n), nil
}

// UpdateNonConformance applies a partial update to a report that is not closed
func (s *NonConformanceService) UpdateNonConformance(ctx context.Context, id uuid.UUID, req UpdateNonConformanceRequest) (*NonConformanceResponse, error) {
	return s.mutate(ctx, id, "update non-conformance", func(n *quality.NonConformance) error {
		if n.IsClosed() {
			return shared.NewDomainError(shared.CodeInvalidState, "Closed non-conformances cannot be edited")
		}
		if req.Severity != nil {
			if err := n.SetSeverity(quality.Severity(*req.Severity)); err != nil {
				return err
			}
		}
		if req.Description != nil {
			if err := n.Describe(*req.Description); err != nil {
				return err
			}
		}
		if req.CorrectiveAction != nil {
			n.CorrectiveAction = *req.CorrectiveAction
		}
		n.IncrementVersion()
		return nil
	})
}

// DeleteNonConformance deletes a report
func (s *NonConformanceService) DeleteNonConformance(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete non-conformance", err)
	}
	return nil
}

// ReviewNonConformance puts a report under review
func (s *NonConformanceService) ReviewNonConformance(ctx context.Context, id uuid.UUID) (*NonConformanceResponse, error) {
	return s.mutate(ctx, id, "review non-conformance", (*quality.NonConformance).Review)
}

// ResolveNonConformance resolves a report with its corrective action
func (s *NonConformanceService) ResolveNonConformance(ctx context.Context, id uuid.UUID, action string) (*NonConformanceResponse, error) {
	return s.mutate(ctx, id, "resolve non-conformance", func(n *quality.NonConformance) error {
		return n.Resolve(action, time.Now())
	})
}

// CloseNonConformance closes a resolved report
func (s *NonConformanceService) CloseNonConformance(ctx context.Context, id uuid.UUID) (*NonConformanceResponse, error) {
	return s.mutate(ctx, id, "close non-conformance", func(n *quality.NonConformance) error {
		return n.Close(time.Now())
	})
}

// ReopenNonConformance sends a report back to OPEN
func (s *NonConformanceService) ReopenNonConformance(ctx context.Context, id uuid.UUID) (*NonConformanceResponse, error) {
	return s.mutate(ctx, id, "reopen non-conformance", (*quality.NonConformance).Reopen)
}

func (s *NonConformanceService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*quality.NonConformance) error) (*NonConformanceResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(n); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, n)
	return s.respond(ctx, n), nil
}

func (s *NonConformanceService) respond(ctx context.Context, n *quality.NonConformance) *NonConformanceResponse {
	names := common.ResolveNames(ctx, s.projects, n.ProjectID)
	resp := ToNonConformanceResponse(n, names[n.ProjectID])
	return &resp
}
