package projects

import "github.com/precast-erp/backend/internal/domain/shared"

const (
	// AggregateTypeProject is the aggregate type for projects
	AggregateTypeProject = "Project"

	EventTypeProjectStatusChanged = "ProjectStatusChanged"
)

// ProjectStatusChangedEvent is raised when a project changes status
type ProjectStatusChangedEvent struct {
	shared.BaseDomainEvent
	ProjectNumber string        `json:"project_number"`
	FromStatus    ProjectStatus `json:"from_status"`
	ToStatus      ProjectStatus `json:"to_status"`
}

// NewProjectStatusChangedEvent creates a ProjectStatusChangedEvent
func NewProjectStatusChangedEvent(p *Project, from ProjectStatus) *ProjectStatusChangedEvent {
	return &ProjectStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectStatusChanged, AggregateTypeProject, p.ID),
		ProjectNumber:   p.ProjectNumber,
		FromStatus:      from,
		ToStatus:        p.Status,
	}
}
