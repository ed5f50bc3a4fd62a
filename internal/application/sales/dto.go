package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// CreateOpportunityRequest represents a request to open an opportunity
type CreateOpportunityRequest struct {
	Name              string          `json:"name" binding:"required,max=200"`
	ContactID         *uuid.UUID      `json:"contact_id"`
	EstimatedValue    decimal.Decimal `json:"estimated_value"`
	Probability       *int            `json:"probability" binding:"omitempty,min=0,max=100"`
	ExpectedCloseDate *time.Time      `json:"expected_close_date"`
	Owner             string          `json:"owner" binding:"max=100"`
	Notes             string          `json:"notes"`
}

// UpdateOpportunityRequest represents a partial update of an open opportunity
type UpdateOpportunityRequest struct {
	Name              *string          `json:"name" binding:"omitempty,max=200"`
	ContactID         *uuid.UUID       `json:"contact_id"`
	EstimatedValue    *decimal.Decimal `json:"estimated_value"`
	Probability       *int             `json:"probability" binding:"omitempty,min=0,max=100"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date"`
	Owner             *string          `json:"owner" binding:"omitempty,max=100"`
	Notes             *string          `json:"notes"`
}

// AdvanceStageRequest moves an opportunity along the pipeline
type AdvanceStageRequest struct {
	Stage string `json:"stage" binding:"required,oneof=LEAD QUALIFIED PROPOSAL NEGOTIATION WON LOST"`
}

// MarkLostRequest closes an opportunity as lost
type MarkLostRequest struct {
	Reason string `json:"reason"`
}

// OpportunityListFilter represents the query parameters of the opportunity list
type OpportunityListFilter struct {
	common.ListParams
	Stage     string     `form:"stage" binding:"omitempty,oneof=LEAD QUALIFIED PROPOSAL NEGOTIATION WON LOST"`
	ContactID *uuid.UUID `form:"contact_id"`
	Owner     string     `form:"owner"`
	CloseFrom *time.Time `form:"close_from" time_format:"2006-01-02"`
	CloseTo   *time.Time `form:"close_to" time_format:"2006-01-02"`
}

// PipelineFilter scopes the pipeline summary
type PipelineFilter struct {
	Owner     string     `form:"owner"`
	ContactID *uuid.UUID `form:"contact_id"`
	CloseFrom *time.Time `form:"close_from" time_format:"2006-01-02"`
	CloseTo   *time.Time `form:"close_to" time_format:"2006-01-02"`
}

// OpportunityResponse represents an opportunity in API responses
type OpportunityResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	ContactID         *uuid.UUID      `json:"contact_id,omitempty"`
	ContactName       string          `json:"contact_name,omitempty"`
	Stage             string          `json:"stage"`
	EstimatedValue    decimal.Decimal `json:"estimated_value"`
	Probability       int             `json:"probability"`
	WeightedValue     decimal.Decimal `json:"weighted_value"`
	ExpectedCloseDate *time.Time      `json:"expected_close_date,omitempty"`
	Owner             string          `json:"owner"`
	LostReason        string          `json:"lost_reason,omitempty"`
	ClosedAt          *time.Time      `json:"closed_at,omitempty"`
	Notes             string          `json:"notes"`
	Version           int             `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToOpportunityResponse converts a domain opportunity to a response
func ToOpportunityResponse(o *sales.Opportunity, contactName string) OpportunityResponse {
	return OpportunityResponse{
		ID:                o.ID,
		Name:              o.Name,
		ContactID:         o.ContactID,
		ContactName:       contactName,
		Stage:             string(o.Stage),
		EstimatedValue:    o.EstimatedValue,
		Probability:       o.Probability,
		WeightedValue:     o.WeightedValue(),
		ExpectedCloseDate: o.ExpectedCloseDate,
		Owner:             o.Owner,
		LostReason:        o.LostReason,
		ClosedAt:          o.ClosedAt,
		Notes:             o.Notes,
		Version:           o.Version,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// PipelineStage is the total of one pipeline stage
type PipelineStage struct {
	Stage         string          `json:"stage"`
	Count         int64           `json:"count"`
	Value         decimal.Decimal `json:"value"`
	WeightedValue decimal.Decimal `json:"weighted_value"`
}

// PipelineSummary totals the pipeline by stage. Open totals exclude WON and LOST.
type PipelineSummary struct {
	Stages        []PipelineStage `json:"stages"`
	OpenCount     int64           `json:"open_count"`
	OpenValue     decimal.Decimal `json:"open_value"`
	WeightedValue decimal.Decimal `json:"weighted_value"`
	WonValue      decimal.Decimal `json:"won_value"`
}
