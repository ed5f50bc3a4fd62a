package quality

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/quality"
)

// ChecklistItemRequest is one entry of an inspection checklist
type ChecklistItemRequest struct {
	Item   string `json:"item" binding:"required,max=200"`
	Passed bool   `json:"passed"`
	Note   string `json:"note"`
}

// CreateInspectionRequest schedules an inspection
type CreateInspectionRequest struct {
	ProjectID      uuid.UUID              `json:"project_id" binding:"required"`
	PieceID        *uuid.UUID             `json:"piece_id"`
	InspectionType string                 `json:"inspection_type" binding:"required,oneof=PRE_POUR POST_POUR FINAL DELIVERY"`
	Inspector      string                 `json:"inspector" binding:"max=100"`
	ScheduledDate  *time.Time             `json:"scheduled_date"`
	Checklist      []ChecklistItemRequest `json:"checklist" binding:"omitempty,dive"`
	Notes          string                 `json:"notes"`
}

// UpdateInspectionRequest represents a partial update of a scheduled inspection
type UpdateInspectionRequest struct {
	PieceID        *uuid.UUID              `json:"piece_id"`
	InspectionType *string                 `json:"inspection_type" binding:"omitempty,oneof=PRE_POUR POST_POUR FINAL DELIVERY"`
	Inspector      *string                 `json:"inspector" binding:"omitempty,max=100"`
	ScheduledDate  *time.Time              `json:"scheduled_date"`
	Checklist      *[]ChecklistItemRequest `json:"checklist" binding:"omitempty,dive"`
	Notes          *string                 `json:"notes"`
}

// CompleteInspectionRequest records the result of an inspection
type CompleteInspectionRequest struct {
	Result    string                  `json:"result" binding:"required,oneof=PASSED FAILED CONDITIONAL"`
	Inspector string                  `json:"inspector" binding:"max=100"`
	Notes     string                  `json:"notes"`
	Checklist *[]ChecklistItemRequest `json:"checklist" binding:"omitempty,dive"`
}

// InspectionListFilter represents the query parameters of the inspection list
type InspectionListFilter struct {
	common.ListParams
	ProjectID      *uuid.UUID `form:"project_id"`
	PieceID        *uuid.UUID `form:"piece_id"`
	InspectionType string     `form:"inspection_type" binding:"omitempty,oneof=PRE_POUR POST_POUR FINAL DELIVERY"`
	Status         string     `form:"status" binding:"omitempty,oneof=SCHEDULED PASSED FAILED CONDITIONAL"`
}

// InspectionResponse represents an inspection in API responses
type InspectionResponse struct {
	ID               uuid.UUID               `json:"id"`
	InspectionNumber string                  `json:"inspection_number"`
	ProjectID        uuid.UUID               `json:"project_id"`
	ProjectName      string                  `json:"project_name,omitempty"`
	PieceID          *uuid.UUID              `json:"piece_id,omitempty"`
	InspectionType   string                  `json:"inspection_type"`
	Inspector        string                  `json:"inspector"`
	ScheduledDate    *time.Time              `json:"scheduled_date,omitempty"`
	InspectedAt      *time.Time              `json:"inspected_at,omitempty"`
	Status           string                  `json:"status"`
	Checklist        []quality.ChecklistItem `json:"checklist"`
	Notes            string                  `json:"notes"`
	NonConformance   *NonConformanceResponse `json:"non_conformance,omitempty"`
	Version          int                     `json:"version"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// ToInspectionResponse converts a domain inspection to a response
func ToInspectionResponse(i *quality.Inspection, projectName string) InspectionResponse {
	checklist := []quality.ChecklistItem(i.Checklist)
	if checklist == nil {
		checklist = []quality.ChecklistItem{}
	}
	return InspectionResponse{
		ID:               i.ID,
		InspectionNumber: i.InspectionNumber,
		ProjectID:        i.ProjectID,
		ProjectName:      projectName,
		PieceID:          i.PieceID,
		InspectionType:   string(i.InspectionType),
		Inspector:        i.Inspector,
		ScheduledDate:    i.ScheduledDate,
		InspectedAt:      i.InspectedAt,
		Status:           string(i.Status),
		Checklist:        checklist,
		Notes:            i.Notes,
		Version:          i.Version,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// CreateNonConformanceRequest opens a non-conformance report
type CreateNonConformanceRequest struct {
	ProjectID        uuid.UUID  `json:"project_id" binding:"required"`
	InspectionID     *uuid.UUID `json:"inspection_id"`
	Severity         string     `json:"severity" binding:"omitempty,oneof=MINOR MAJOR CRITICAL"`
	Description      string     `json:"description" binding:"required"`
	CorrectiveAction string     `json:"corrective_action"`
}

// UpdateNonConformanceRequest represents a partial update of a report
type UpdateNonConformanceRequest struct {
	Severity         *string `json:"severity" binding:"omitempty,oneof=MINOR MAJOR CRITICAL"`
	Description      *string `json:"description"`
	CorrectiveAction *string `json:"corrective_action"`
}

// ResolveNonConformanceRequest carries the corrective action of a resolution
type ResolveNonConformanceRequest struct {
	CorrectiveAction string `json:"corrective_action"`
}

// NonConformanceListFilter represents the query parameters of the report list
type NonConformanceListFilter struct {
	common.ListParams
	ProjectID    *uuid.UUID `form:"project_id"`
	InspectionID *uuid.UUID `form:"inspection_id"`
	Severity     string     `form:"severity" binding:"omitempty,oneof=MINOR MAJOR CRITICAL"`
	Status       string     `form:"status" binding:"omitempty,oneof=OPEN UNDER_REVIEW RESOLVED CLOSED"`
}

// NonConformanceResponse represents a report in API responses
type NonConformanceResponse struct {
	ID               uuid.UUID  `json:"id"`
	NCRNumber        string     `json:"ncr_number"`
	InspectionID     *uuid.UUID `json:"inspection_id,omitempty"`
	ProjectID        uuid.UUID  `json:"project_id"`
	ProjectName      string     `json:"project_name,omitempty"`
	Severity         string     `json:"severity"`
	Description      string     `json:"description"`
	CorrectiveAction string     `json:"corrective_action"`
	Status           string     `json:"status"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	Version          int        `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ToNonConformanceResponse converts a domain report to a response
func ToNonConformanceResponse(n *quality.NonConformance, projectName string) NonConformanceResponse {
	return NonConformanceResponse{
		ID:               n.ID,
		NCRNumber:        n.NCRNumber,
		InspectionID:     n.InspectionID,
		ProjectID:        n.ProjectID,
		ProjectName:      projectName,
		Severity:         string(n.Severity),
		Description:      n.Description,
		CorrectiveAction: n.CorrectiveAction,
		Status:           string(n.Status),
		ResolvedAt:       n.ResolvedAt,
		ClosedAt:         n.ClosedAt,
		Version:          n.Version,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

func toChecklist(items []ChecklistItemRequest) []quality.ChecklistItem {
	out := make([]quality.ChecklistItem, len(items))
	for i, item := range items {
		out[i] = quality.ChecklistItem{Item: item.Item, Passed: item.Passed, Note: item.Note}
	}
	return out
}
