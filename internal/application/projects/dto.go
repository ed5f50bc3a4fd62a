package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/projects"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name           string           `json:"name" binding:"required,max=200"`
	ContactID      *uuid.UUID       `json:"contact_id"`
	Location       string           `json:"location" binding:"max=300"`
	StartDate      *time.Time       `json:"start_date"`
	EndDate        *time.Time       `json:"end_date"`
	Budget         *decimal.Decimal `json:"budget"`
	ProjectManager string           `json:"project_manager" binding:"max=100"`
	Notes          string           `json:"notes"`
}

// UpdateProjectRequest represents a partial update of a project
type UpdateProjectRequest struct {
	Name           *string          `json:"name" binding:"omitempty,max=200"`
	ContactID      *uuid.UUID       `json:"contact_id"`
	Location       *string          `json:"location" binding:"omitempty,max=300"`
	StartDate      *time.Time       `json:"start_date"`
	EndDate        *time.Time       `json:"end_date"`
	Budget         *decimal.Decimal `json:"budget"`
	ProjectManager *string          `json:"project_manager" binding:"omitempty,max=100"`
	Notes          *string          `json:"notes"`
}

// UpdateStatusRequest changes a project's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PLANNING ACTIVE ON_HOLD COMPLETED CANCELLED"`
}

// UpdateProgressRequest records percent complete
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required,min=0,max=100"`
}

// ProjectListFilter represents the query parameters of the project list
type ProjectListFilter struct {
	common.ListParams
	Status    string     `form:"status" binding:"omitempty,oneof=PLANNING ACTIVE ON_HOLD COMPLETED CANCELLED"`
	ContactID *uuid.UUID `form:"contact_id"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProjectNumber  string          `json:"project_number"`
	Name           string          `json:"name"`
	ContactID      *uuid.UUID      `json:"contact_id,omitempty"`
	ContactName    string          `json:"contact_name,omitempty"`
	Location       string          `json:"location"`
	Status         string          `json:"status"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Budget         decimal.Decimal `json:"budget"`
	ProjectManager string          `json:"project_manager"`
	Progress       int             `json:"progress"`
	Notes          string          `json:"notes"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProjectResponse converts a domain project to a response
func ToProjectResponse(p *projects.Project, contactName string) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		ProjectNumber:  p.ProjectNumber,
		Name:           p.Name,
		ContactID:      p.ContactID,
		ContactName:    contactName,
		Location:       p.Location,
		Status:         string(p.Status),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Budget:         p.Budget,
		ProjectManager: p.ProjectManager,
		Progress:       p.Progress,
		Notes:          p.Notes,
		Version:        p.Version,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
