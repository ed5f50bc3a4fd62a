package estimating

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/estimating"
	"github.com/shopspring/decimal"
)

// EstimateItemRequest is one priced line of an estimate
type EstimateItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	PieceType   string          `json:"piece_type" binding:"max=50"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" binding:"max=20"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// CreateEstimateRequest represents a request to create an estimate
type CreateEstimateRequest struct {
	ContactID     uuid.UUID             `json:"contact_id" binding:"required"`
	ProjectName   string                `json:"project_name" binding:"required,max=200"`
	Items         []EstimateItemRequest `json:"items" binding:"dive"`
	MarkupPercent *decimal.Decimal      `json:"markup_percent"`
	ValidUntil    *time.Time            `json:"valid_until"`
	Notes         string                `json:"notes"`
}

// UpdateEstimateRequest represents a partial update of a draft estimate.
// Items, when present, replace every existing line.
type UpdateEstimateRequest struct {
	ContactID     *uuid.UUID             `json:"contact_id"`
	ProjectName   *string                `json:"project_name" binding:"omitempty,max=200"`
	Items         *[]EstimateItemRequest `json:"items" binding:"omitempty,dive"`
	MarkupPercent *decimal.Decimal       `json:"markup_percent"`
	ValidUntil    *time.Time             `json:"valid_until"`
	Notes         *string                `json:"notes"`
}

// RejectEstimateRequest carries the rejection reason
type RejectEstimateRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ConvertEstimateRequest links an approved estimate to a project.
// Without a project ID a new project is created from the estimate.
type ConvertEstimateRequest struct {
	ProjectID *uuid.UUID `json:"project_id"`
}

// EstimateListFilter represents the query parameters of the estimate list
type EstimateListFilter struct {
	common.ListParams
	Status    string     `form:"status" binding:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED REJECTED CONVERTED"`
	ContactID *uuid.UUID `form:"contact_id"`
	ProjectID *uuid.UUID `form:"project_id"`
}

// EstimateItemResponse represents an estimate line in API responses
type EstimateItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	PieceType   string          `json:"piece_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// EstimateResponse represents an estimate in API responses
type EstimateResponse struct {
	ID              uuid.UUID              `json:"id"`
	EstimateNumber  string                 `json:"estimate_number"`
	ContactID       uuid.UUID              `json:"contact_id"`
	ContactName     string                 `json:"contact_name"`
	ProjectName     string                 `json:"project_name"`
	ProjectID       *uuid.UUID             `json:"project_id,omitempty"`
	Status          string                 `json:"status"`
	Items           []EstimateItemResponse `json:"items"`
	MarkupPercent   decimal.Decimal        `json:"markup_percent"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	Total           decimal.Decimal        `json:"total"`
	ValidUntil      time.Time              `json:"valid_until"`
	Expired         bool                   `json:"expired"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	Notes           string                 `json:"notes"`
	SubmittedAt     *time.Time             `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time             `json:"approved_at,omitempty"`
	ConvertedAt     *time.Time             `json:"converted_at,omitempty"`
	Version         int                    `json:"version"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ToEstimateResponse converts a domain estimate to a response
func ToEstimateResponse(e *estimating.Estimate, contactName string) EstimateResponse {
	items := make([]EstimateItemResponse, len(e.Items))
	for i, item := range e.Items {
		items[i] = EstimateItemResponse{
			ID:          item.ID,
			Description: item.Description,
			PieceType:   item.PieceType,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitCost:    item.UnitCost,
			LineTotal:   item.LineTotal,
		}
	}
	return EstimateResponse{
		ID:              e.ID,
		EstimateNumber:  e.EstimateNumber,
		ContactID:       e.ContactID,
		ContactName:     contactName,
		ProjectName:     e.ProjectName,
		ProjectID:       e.ProjectID,
		Status:          string(e.Status),
		Items:           items,
		MarkupPercent:   e.MarkupPercent,
		Subtotal:        e.Subtotal,
		Total:           e.Total,
		ValidUntil:      e.ValidUntil,
		Expired:         e.IsExpired(time.Now()),
		RejectionReason: e.RejectionReason,
		Notes:           e.Notes,
		SubmittedAt:     e.SubmittedAt,
		ApprovedAt:      e.ApprovedAt,
		ConvertedAt:     e.ConvertedAt,
		Version:         e.Version,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toItemInputs(reqs []EstimateItemRequest) []estimating.ItemInput {
	inputs := make([]estimating.ItemInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = estimating.ItemInput{
			Description: r.Description,
			PieceType:   r.PieceType,
			Quantity:    r.Quantity,
			Unit:        r.Unit,
			UnitCost:    r.UnitCost,
		}
	}
	return inputs
}
