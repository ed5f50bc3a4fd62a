package drafting

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/drafting"
)

// CreateDrawingRequest represents a request to create a drawing
type CreateDrawingRequest struct {
	ProjectID     uuid.UUID `json:"project_id" binding:"required"`
	DrawingNumber string    `json:"drawing_number" binding:"max=50"`
	Title         string    `json:"title" binding:"required,max=200"`
	Discipline    string    `json:"discipline" binding:"omitempty,oneof=ARCHITECTURAL STRUCTURAL SHOP ERECTION"`
	AssignedTo    string    `json:"assigned_to" binding:"max=100"`
	Notes         string    `json:"notes"`
}

// UpdateDrawingRequest represents a partial update of a drawing.
// Title and discipline may only change while the drawing is a draft.
type UpdateDrawingRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Discipline *string `json:"discipline" binding:"omitempty,oneof=ARCHITECTURAL STRUCTURAL SHOP ERECTION"`
	AssignedTo *string `json:"assigned_to" binding:"omitempty,max=100"`
	Notes      *string `json:"notes"`
}

// WorkflowRequest names the actor of a workflow step and an optional comment
type WorkflowRequest struct {
	Actor   string `json:"actor" binding:"max=100"`
	Comment string `json:"comment"`
}

// DrawingListFilter represents the query parameters of the drawing list
type DrawingListFilter struct {
	common.ListParams
	ProjectID  *uuid.UUID `form:"project_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=DRAFT IN_REVIEW APPROVED REJECTED RELEASED"`
	Discipline string     `form:"discipline" binding:"omitempty,oneof=ARCHITECTURAL STRUCTURAL SHOP ERECTION"`
}

// DrawingResponse represents a drawing in API responses
type DrawingResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"project_id"`
	ProjectName    string     `json:"project_name,omitempty"`
	DrawingNumber  string     `json:"drawing_number"`
	Title          string     `json:"title"`
	Discipline     string     `json:"discipline"`
	Revision       int        `json:"revision"`
	RevisionLabel  string     `json:"revision_label"`
	Status         string     `json:"status"`
	AssignedTo     string     `json:"assigned_to"`
	ReviewedBy     string     `json:"reviewed_by,omitempty"`
	ReviewComments string     `json:"review_comments,omitempty"`
	ApprovedBy     string     `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ReleasedAt     *time.Time `json:"released_at,omitempty"`
	Notes          string     `json:"notes"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// WorkflowEntryResponse represents one step of a drawing's history
type WorkflowEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Revision   int       `json:"revision"`
	Actor      string    `json:"actor"`
	Comment    string    `json:"comment,omitempty"`
	At         time.Time `json:"at"`
}

// ToDrawingResponse converts a domain drawing to a response
func ToDrawingResponse(d *drafting.Drawing, projectName string) DrawingResponse {
	return DrawingResponse{
		ID:             d.ID,
		ProjectID:      d.ProjectID,
		ProjectName:    projectName,
		DrawingNumber:  d.DrawingNumber,
		Title:          d.Title,
		Discipline:     string(d.Discipline),
		Revision:       d.Revision,
		RevisionLabel:  d.RevisionLabel(),
		Status:         string(d.Status),
		AssignedTo:     d.AssignedTo,
		ReviewedBy:     d.ReviewedBy,
		ReviewComments: d.ReviewComments,
		ApprovedBy:     d.ApprovedBy,
		ApprovedAt:     d.ApprovedAt,
		ReleasedAt:     d.ReleasedAt,
		Notes:          d.Notes,
		Version:        d.Version,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToWorkflowEntryResponses converts history entries
func ToWorkflowEntryResponses(entries []drafting.DrawingWorkflowEntry) []WorkflowEntryResponse {
	out := make([]WorkflowEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = WorkflowEntryResponse{
			ID:         e.ID,
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			Revision:   e.Revision,
			Actor:      e.Actor,
			Comment:    e.Comment,
			At:         e.At,
		}
	}
	return out
}
