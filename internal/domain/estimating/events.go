package estimating

import (
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	// AggregateTypeEstimate is the aggregate type for estimates
	AggregateTypeEstimate = "Estimate"

	EventTypeEstimateSubmitted = "EstimateSubmitted"
	EventTypeEstimateApproved  = "EstimateApproved"
	EventTypeEstimateConverted = "EstimateConverted"
)

// EstimateStatusChangedEvent is raised when an estimate is submitted, approved or converted
type EstimateStatusChangedEvent struct {
	shared.BaseDomainEvent
	EstimateNumber string          `json:"estimate_number"`
	Status         EstimateStatus  `json:"status"`
	Total          decimal.Decimal `json:"total"`
}

// NewEstimateStatusChangedEvent creates an event of the given type for e
func NewEstimateStatusChangedEvent(e *Estimate, eventType string) *EstimateStatusChangedEvent {
	return &EstimateStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeEstimate, e.ID),
		EstimateNumber:  e.EstimateNumber,
		Status:          e.Status,
		Total:           e.Total,
	}
}
