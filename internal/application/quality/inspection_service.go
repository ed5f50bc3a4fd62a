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

// InspectionService schedules inspections and records their results.
// A failed inspection opens a MAJOR non-conformance in the same transaction.
type InspectionService struct {
	inspections quality.InspectionRepository
	ncrs        quality.NonConformanceRepository
	projects    common.NameResolver
	tx          shared.TransactionManager
	events      shared.EventPublisher
}

// NewInspectionService creates a new InspectionService
func NewInspectionService(
	inspections quality.InspectionRepository,
	ncrs quality.NonConformanceRepository,
	projects common.NameResolver,
	tx shared.TransactionManager,
	events shared.EventPublisher,
) *InspectionService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &InspectionService{inspections: inspections, ncrs: ncrs, projects: projects, tx: tx, events: events}
}

// ListInspections returns a page of inspections matching the filter
func (s *InspectionService) ListInspections(ctx context.Context, filter InspectionListFilter) ([]InspectionResponse, int64, error) {
	f := filter.Filter().
		With("project_id", filter.ProjectID).
		With("piece_id", filter.PieceID).
		With("inspection_type", filter.InspectionType).
		With("status", filter.Status)

	list, err := s.inspections.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch inspections", err)
	}
	total, err := s.inspections.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch inspections", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ProjectID
	}
	names := common.ResolveNames(ctx, s.projects, ids...)
	responses := make([]InspectionResponse, len(list))
	for i := range list {
		responses[i] = ToInspectionResponse(&list[i], names[list[i].ProjectID])
	}
	return responses, total, nil
}

// GetInspection returns an inspection by ID
func (s *InspectionService) GetInspection(ctx context.Context, id uuid.UUID) (*InspectionResponse, error) {
	i, err := s.inspections.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch inspection", err)
	}
	return s.respond(ctx, i), nil
}

// CreateInspection schedules an inspection
func (s *InspectionService) CreateInspection(ctx context.Context, req CreateInspectionRequest) (*InspectionResponse, error) {
	i, err := quality.NewInspection(req.ProjectID, quality.InspectionType(req.InspectionType))
	if err != nil {
		return nil, err
	}
	i.PieceID = req.PieceID
	i.Inspector = req.Inspector
	i.ScheduledDate = req.ScheduledDate
	i.Notes = req.Notes
	if err := i.SetChecklist(toChecklist(req.Checklist)); err != nil {
		return nil, err
	}
	if err := s.inspections.Save(ctx, i); err != nil {
		return nil, common.Fail(ctx, "create inspection", err)
	}
	logger.L(ctx).Info("Inspection scheduled",
		zap.String("inspection_id", i.ID.String()),
		zap.String("inspection_number", i.InspectionNumber),
	)
	return s.respond(ctx, i), nil
}

// UpdateInspection applies a partial update to an inspection that has not been completed
func (s *InspectionService) UpdateInspection(ctx context.Context, id uuid.UUID, req UpdateInspectionRequest) (*InspectionResponse, error) {
	i, err := s.inspections.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update inspection", err)
	}
	if !i.IsEditable() {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Only scheduled inspections can be edited")
	}
	if req.PieceID != nil {
		i.PieceID = req.PieceID
	}
	if req.InspectionType != nil {
		t := quality.InspectionType(*req.InspectionType)
		if !t.IsValid() {
			return nil, shared.NewDomainError("INVALID_INSPECTION_TYPE", "Invalid inspection type")
		}
		i.InspectionType = t
	}
	if req.Inspector != nil {
		i.Inspector = *req.Inspector
	}
	if req.ScheduledDate != nil {
		i.ScheduledDate = req.ScheduledDate
	}
	if req.Checklist != nil {
		if err := i.SetChecklist(toChecklist(*req.Checklist)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		i.Notes = *req.Notes
	}
	i.IncrementVersion()
	if err := s.inspections.Save(ctx, i); err != nil {
		return nil, common.Fail(ctx, "update inspection", err)
	}
	return s.respond(ctx, i), nil
}

// DeleteInspection deletes a scheduled inspection. Completed inspections are kept as records.
func (s *InspectionService) DeleteInspection(ctx context.Context, id uuid.UUID) error {
	i, err := s.inspections.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete inspection", err)
	}
	if !i.IsEditable() {
		return shared.NewDomainError(shared.CodeInvalidState, "Only scheduled inspections can be deleted")
	}
	if err := s.inspections.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete inspection", err)
	}
	return nil
}

// CompleteInspection records the result of a scheduled inspection
func (s *InspectionService) CompleteInspection(ctx context.Context, id uuid.UUID, req CompleteInspectionRequest) (*InspectionResponse, error) {
	var (
		i   *quality.Inspection
		ncr *quality.NonConformance
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		i, err = s.inspections.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if req.Checklist != nil && i.IsEditable() {
			if err := i.SetChecklist(toChecklist(*req.Checklist)); err != nil {
				return err
			}
		}
		if err := i.Complete(quality.InspectionStatus(req.Result), req.Inspector, req.Notes, time.Now()); err != nil {
			return err
		}
		if err := s.inspections.Save(ctx, i); err != nil {
			return err
		}
		if i.Status != quality.InspectionStatusFailed {
			return nil
		}
		ncr, err = quality.NewNonConformanceForInspection(i)
		if err != nil {
			return err
		}
		return s.ncrs.Save(ctx, ncr)
	})
	if err != nil {
		return nil, common.Fail(ctx, "complete inspection", err)
	}

	common.Publish(ctx, s.events, i)
	resp := s.respond(ctx, i)
	fields := []zap.Field{
		zap.String("inspection_id", i.ID.String()),
		zap.String("result", string(i.Status)),
	}
	if ncr != nil {
		common.Publish(ctx, s.events, ncr)
		ncrResp := ToNonConformanceResponse(ncr, resp.ProjectName)
		resp.NonConformance = &ncrResp
		fields = append(fields, zap.String("ncr_number", ncr.NCRNumber))
	}
	logger.L(ctx).Info("Inspection completed", fields...)
	return resp, nil
}

func (s *InspectionService) respond(ctx context.Context, i *quality.Inspection) *InspectionResponse {
	names := common.ResolveNames(ctx, s.projects, i.ProjectID)
	resp := ToInspectionResponse(i, names[i.ProjectID])
	return &resp
}
