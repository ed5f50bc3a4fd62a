package drafting

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/drafting"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DrawingService handles drawing CRUD
type DrawingService struct {
	repo     drafting.DrawingRepository
	projects common.NameResolver
}

// NewDrawingService creates a new DrawingService
func NewDrawingService(repo drafting.DrawingRepository, projects common.NameResolver) *DrawingService {
	return &DrawingService{repo: repo, projects: projects}
}

// ListDrawings returns a page of drawings matching the filter
func (s *DrawingService) ListDrawings(ctx context.Context, filter DrawingListFilter) ([]DrawingResponse, int64, error) {
	f := filter.Filter().
		With("project_id", filter.ProjectID).
		With("status", filter.Status).
		With("discipline", filter.Discipline)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch drawings", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch drawings", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ProjectID
	}
	names := common.ResolveNames(ctx, s.projects, ids...)

	responses := make([]DrawingResponse, len(list))
	for i := range list {
		responses[i] = ToDrawingResponse(&list[i], names[list[i].ProjectID])
	}
	return responses, total, nil
}

// GetDrawing returns a drawing by ID
func (s *DrawingService) GetDrawing(ctx context.Context, id uuid.UUID) (*DrawingResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch drawing", err)
	}
	return s.respond(ctx, d), nil
}

// CreateDrawing creates a draft drawing
func (s *DrawingService) CreateDrawing(ctx context.Context, req CreateDrawingRequest) (*DrawingResponse, error) {
	d, err := drafting.NewDrawing(req.ProjectID, req.DrawingNumber, req.Title, drafting.Discipline(req.Discipline))
	if err != nil {
		return nil, err
	}
	d.AssignedTo = req.AssignedTo
	d.Notes = req.Notes

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, common.Fail(ctx, "create drawing", err)
	}
	logger.L(ctx).Info("Drawing created", zap.String("drawing_id", d.ID.String()), zap.String("drawing_number", d.DrawingNumber))
	return s.respond(ctx, d), nil
}

// UpdateDrawing applies a partial update to a drawing
func (s *DrawingService) UpdateDrawing(ctx context.Context, id uuid.UUID, req UpdateDrawingRequest) (*DrawingResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update drawing", err)
	}
	if (req.Title != nil || req.Discipline != nil) && !d.IsEditable() {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Drawing content can only change in DRAFT status")
	}
	if req.Title != nil {
		if err := d.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Discipline != nil {
		if err := d.SetDiscipline(drafting.Discipline(*req.Discipline)); err != nil {
			return nil, err
		}
	}
	if req.AssignedTo != nil {
		d.AssignedTo = *req.AssignedTo
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}
	d.IncrementVersion()

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, common.Fail(ctx, "update drawing", err)
	}
	return s.respond(ctx, d), nil
}

// DeleteDrawing deletes a drawing that has not been released
func (s *DrawingService) DeleteDrawing(ctx context.Context, id uuid.UUID) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete drawing", err)
	}
	if d.Status == drafting.DrawingStatusReleased {
		return shared.NewDomainError(shared.CodeInvalidState, "Released drawings cannot be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete drawing", err)
	}
	return nil
}

func (s *DrawingService) respond(ctx context.Context, d *drafting.Drawing) *DrawingResponse {
	names := common.ResolveNames(ctx, s.projects, d.ProjectID)
	resp := ToDrawingResponse(d, names[d.ProjectID])
	return &resp
}
