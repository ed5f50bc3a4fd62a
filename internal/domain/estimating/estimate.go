package estimating

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EstimateStatus represents the approval state of an estimate
type EstimateStatus string

const (
	EstimateStatusDraft           EstimateStatus = "DRAFT"
	EstimateStatusPendingApproval EstimateStatus = "PENDING_APPROVAL"
	EstimateStatusApproved        EstimateStatus = "APPROVED"
	EstimateStatusRejected        EstimateStatus = "REJECTED"
	EstimateStatusConverted       EstimateStatus = "CONVERTED"
)

var estimateTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusDraft:           {EstimateStatusPendingApproval},
	EstimateStatusPendingApproval: {EstimateStatusApproved, EstimateStatusRejected},
	EstimateStatusRejected:        {EstimateStatusDraft},
	EstimateStatusApproved:        {EstimateStatusConverted},
}

// IsValid checks if the status is valid
func (s EstimateStatus) IsValid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusPendingApproval, EstimateStatusApproved,
		EstimateStatusRejected, EstimateStatusConverted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the estimate may move to next
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	for _, allowed := range estimateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Defaults applied to new estimates
var (
	DefaultMarkupPercent = decimal.NewFromInt(15)
	DefaultValidity      = 30 * 24 * time.Hour
	maxMarkupPercent     = decimal.NewFromInt(1000)
	hundred              = decimal.NewFromInt(100)
)

// NumberPrefix prefixes generated estimate numbers
const NumberPrefix = "EST"

// EstimateItem is a priced line of an estimate
type EstimateItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EstimateID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	PieceType   string          `gorm:"type:varchar(50)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit        string          `gorm:"type:varchar(20);not null;default:'EA'"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	SortOrder   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (EstimateItem) TableName() string {
	return "estimate_items"
}

// ItemInput describes an estimate line to add
type ItemInput struct {
	Description string
	PieceType   string
	Quantity    decimal.Decimal
	Unit        string
	UnitCost    decimal.Decimal
}

// Estimate is a priced bid for precast work sent to a contact
type Estimate struct {
	shared.BaseAggregateRoot
	EstimateNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ContactID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProjectName     string          `gorm:"type:varchar(200);not null"`
	ProjectID       *uuid.UUID      `gorm:"type:uuid;index"`
	Status          EstimateStatus  `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Items           []EstimateItem  `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
	MarkupPercent   decimal.Decimal `gorm:"type:decimal(7,2);not null;default:15"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ValidUntil      time.Time       `gorm:"not null"`
	RejectionReason string          `gorm:"type:varchar(500)"`
	Notes           string          `gorm:"type:text"`
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ConvertedAt     *time.Time
}

// TableName returns the table name for GORM
func (Estimate) TableName() string {
	return "estimates"
}

// NewEstimate creates a draft estimate with the default markup and validity
func NewEstimate(contactID uuid.UUID, projectName string) (*Estimate, error) {
	if contactID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Estimate requires a contact")
	}
	projectName = strings.TrimSpace(projectName)
	if projectName == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
	}

	e := &Estimate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EstimateNumber:    shared.GenerateNumber(NumberPrefix),
		ContactID:         contactID,
		ProjectName:       projectName,
		Status:            EstimateStatusDraft,
		Items:             []EstimateItem{},
		MarkupPercent:     DefaultMarkupPercent,
		Subtotal:          decimal.Zero,
		Total:             decimal.Zero,
	}
	e.ValidUntil = shared.TruncateToDay(e.CreatedAt.Add(DefaultValidity))
	return e, nil
}

// IsEditable reports whether lines and pricing may change
func (e *Estimate) IsEditable() bool {
	return e.Status == EstimateStatusDraft
}

func (e *Estimate) ensureEditable() error {
	if !e.IsEditable() {
		return shared.NewDomainError(shared.CodeInvalidState, "Estimate can only be edited in DRAFT status")
	}
	return nil
}

// SetItems replaces every line of the estimate and recalculates totals
func (e *Estimate) SetItems(inputs []ItemInput) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	items := make([]EstimateItem, 0, len(inputs))
	for i, in := range inputs {
		item, err := newItem(e.ID, in, i)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	e.Items = items
	e.Recalculate()
	e.IncrementVersion()
	return nil
}

// AddItem appends a line and recalculates totals
func (e *Estimate) AddItem(in ItemInput) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	item, err := newItem(e.ID, in, len(e.Items))
	if err != nil {
		return err
	}
	e.Items = append(e.Items, item)
	e.Recalculate()
	e.IncrementVersion()
	return nil
}

func newItem(estimateID uuid.UUID, in ItemInput, order int) (EstimateItem, error) {
	if strings.TrimSpace(in.Description) == "" {
		return EstimateItem{}, shared.NewDomainError("INVALID_ITEM", "Item description cannot be empty")
	}
	if !in.Quantity.IsPositive() {
		return EstimateItem{}, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if in.UnitCost.IsNegative() {
		return EstimateItem{}, shared.NewDomainError("INVALID_UNIT_COST", "Item unit cost cannot be negative")
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "EA"
	}
	return EstimateItem{
		ID:          uuid.New(),
		EstimateID:  estimateID,
		Description: strings.TrimSpace(in.Description),
		PieceType:   in.PieceType,
		Quantity:    in.Quantity,
		Unit:        unit,
		UnitCost:    in.UnitCost,
		SortOrder:   order,
	}, nil
}

// SetMarkup changes the markup percentage and recalculates totals
func (e *Estimate) SetMarkup(percent decimal.Decimal) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	if percent.IsNegative() || percent.GreaterThan(maxMarkupPercent) {
		return shared.NewDomainError("INVALID_MARKUP", "Markup must be between 0 and 1000 percent")
	}
	e.MarkupPercent = percent
	e.Recalculate()
	e.IncrementVersion()
	return nil
}

// Recalculate derives line totals, subtotal and total:
// total = subtotal * (1 + markup/100), rounded to cents
func (e *Estimate) Recalculate() {
	subtotal := decimal.Zero
	for i := range e.Items {
		e.Items[i].LineTotal = e.Items[i].Quantity.Mul(e.Items[i].UnitCost).Round(2)
		subtotal = subtotal.Add(e.Items[i].LineTotal)
	}
	e.Subtotal = subtotal.Round(2)
	factor := decimal.NewFromInt(1).Add(e.MarkupPercent.Div(hundred))
	e.Total = e.Subtotal.Mul(factor).Round(2)
}

// IsExpired reports whether the estimate is past its validity date
func (e *Estimate) IsExpired(now time.Time) bool {
	return now.After(e.ValidUntil.Add(24 * time.Hour))
}

func (e *Estimate) transition(next EstimateStatus) error {
	if !e.Status.CanTransitionTo(next) {
		return shared.InvalidTransition("estimate", string(e.Status), string(next))
	}
	e.Status = next
	e.IncrementVersion()
	return nil
}

// Submit sends the estimate for approval
func (e *Estimate) Submit() error {
	if e.Status == EstimateStatusDraft && len(e.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot submit an estimate without items")
	}
	if err := e.transition(EstimateStatusPendingApproval); err != nil {
		return err
	}
	now := time.Now()
	e.SubmittedAt = &now
	e.AddDomainEvent(NewEstimateStatusChangedEvent(e, EventTypeEstimateSubmitted))
	return nil
}

// Approve accepts a submitted estimate
func (e *Estimate) Approve() error {
	if err := e.transition(EstimateStatusApproved); err != nil {
		return err
	}
	now := time.Now()
	e.ApprovedAt = &now
	e.RejectionReason = ""
	e.AddDomainEvent(NewEstimateStatusChangedEvent(e, EventTypeEstimateApproved))
	return nil
}

// Reject declines a submitted estimate
func (e *Estimate) Reject(reason string) error {
	if err := e.transition(EstimateStatusRejected); err != nil {
		return err
	}
	e.RejectionReason = strings.TrimSpace(reason)
	return nil
}

// Revise returns a rejected estimate to DRAFT for editing
func (e *Estimate) Revise() error {
	if err := e.transition(EstimateStatusDraft); err != nil {
		return err
	}
	e.SubmittedAt = nil
	return nil
}

// Convert marks an approved estimate as turned into a project
func (e *Estimate) Convert(projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return shared.NewDomainError("INVALID_PROJECT", "Conversion requires a project")
	}
	if err := e.transition(EstimateStatusConverted); err != nil {
		return err
	}
	now := time.Now()
	e.ProjectID = &projectID
	e.ConvertedAt = &now
	e.AddDomainEvent(NewEstimateStatusChangedEvent(e, EventTypeEstimateConverted))
	return nil
}

// CanDelete reports whether the estimate may be removed
func (e *Estimate) CanDelete() bool {
	return e.Status == EstimateStatusDraft || e.Status == EstimateStatusRejected
}
