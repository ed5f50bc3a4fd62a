package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/projects"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProjectService handles project business operations
type ProjectService struct {
	repo     projects.ProjectRepository
	contacts common.NameResolver
	events   shared.EventPublisher
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo projects.ProjectRepository, contacts common.NameResolver, events shared.EventPublisher) *ProjectService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &ProjectService{repo: repo, contacts: contacts, events: events}
}

// ListProjects returns a page of projects matching the filter
func (s *ProjectService) ListProjects(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, int64, error) {
	f := filter.Filter().
		With("status", filter.Status).
		With("contact_id", filter.ContactID)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch projects", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch projects", err)
	}

	ids := make([]uuid.UUID, 0, len(list))
	for i := range list {
		if list[i].ContactID != nil {
			ids = append(ids, *list[i].ContactID)
		}
	}
	names := common.ResolveNames(ctx, s.contacts, ids...)

	responses := make([]ProjectResponse, len(list))
	for i := range list {
		responses[i] = ToProjectResponse(&list[i], contactName(names, list[i].ContactID))
	}
	return responses, total, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch project", err)
	}
	return s.respond(ctx, p), nil
}

// CreateProject creates a project in PLANNING
func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	p, err := projects.NewProject(req.Name)
	if err != nil {
		return nil, err
	}
	p.ContactID = req.ContactID
	p.Location = req.Location
	if err := p.SetSchedule(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if req.Budget != nil {
		if err := p.SetBudget(*req.Budget); err != nil {
			return nil, err
		}
	}
	p.ProjectManager = req.ProjectManager
	p.Notes = req.Notes

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, common.Fail(ctx, "create project", err)
	}
	logger.L(ctx).Info("Project created", zap.String("project_id", p.ID.String()), zap.String("project_number", p.ProjectNumber))
	return s.respond(ctx, p), nil
}

// CreateFromEstimate opens a project for a converted estimate and returns its ID
func (s *ProjectService) CreateFromEstimate(ctx context.Context, name string, contactID uuid.UUID, budget decimal.Decimal) (uuid.UUID, error) {
	p, err := projects.NewProject(name)
	if err != nil {
		return uuid.Nil, err
	}
	if contactID != uuid.Nil {
		p.ContactID = &contactID
	}
	if err := p.SetBudget(budget); err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return uuid.Nil, common.Fail(ctx, "create project", err)
	}
	logger.L(ctx).Info("Project created from estimate", zap.String("project_id", p.ID.String()))
	return p.ID, nil
}

// UpdateProject applies a partial update to a project
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	return s.mutate(ctx, id, "update project", func(p *projects.Project) error {
		if req.Name != nil {
			if err := p.Rename(*req.Name); err != nil {
				return err
			}
		}
		if req.ContactID != nil {
			p.ContactID = req.ContactID
		}
		if req.Location != nil {
			p.Location = *req.Location
		}
		if req.StartDate != nil || req.EndDate != nil {
			start, end := p.StartDate, p.EndDate
			if req.StartDate != nil {
				start = req.StartDate
			}
			if req.EndDate != nil {
				end = req.EndDate
			}
			if err := p.SetSchedule(start, end); err != nil {
				return err
			}
		}
		if req.Budget != nil {
			if err := p.SetBudget(*req.Budget); err != nil {
				return err
			}
		}
		if req.ProjectManager != nil {
			p.ProjectManager = *req.ProjectManager
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
		}
		p.IncrementVersion()
		return nil
	})
}

// DeleteProject deletes a project
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete project", err)
	}
	return nil
}

// UpdateProjectStatus moves a project through its lifecycle
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status string) (*ProjectResponse, error) {
	return s.mutate(ctx, id, "update project status", func(p *projects.Project) error {
		return p.UpdateStatus(projects.ProjectStatus(status))
	})
}

// UpdateProgress records percent complete
func (s *ProjectService) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) (*ProjectResponse, error) {
	return s.mutate(ctx, id, "update project progress", func(p *projects.Project) error {
		return p.UpdateProgress(progress)
	})
}

// DisplayNames resolves project IDs to project names
func (s *ProjectService) DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	list, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, common.Fail(ctx, "fetch projects", err)
	}
	for i := range list {
		names[list[i].ID] = list[i].Name
	}
	return names, nil
}

func (s *ProjectService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*projects.Project) error) (*ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, p)
	return s.respond(ctx, p), nil
}

func (s *ProjectService) respond(ctx context.Context, p *projects.Project) *ProjectResponse {
	var names map[uuid.UUID]string
	if p.ContactID != nil {
		names = common.ResolveNames(ctx, s.contacts, *p.ContactID)
	}
	resp := ToProjectResponse(p, contactName(names, p.ContactID))
	return &resp
}

func contactName(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return names[*id]
}
