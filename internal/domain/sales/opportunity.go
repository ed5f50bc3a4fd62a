package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Stage is a step of the sales pipeline
type Stage string

const (
	StageLead        Stage = "LEAD"
	StageQualified   Stage = "QUALIFIED"
	StageProposal    Stage = "PROPOSAL"
	StageNegotiation Stage = "NEGOTIATION"
	StageWon         Stage = "WON"
	StageLost        Stage = "LOST"
)

// Stages lists every stage in pipeline order
var Stages = []Stage{StageLead, StageQualified, StageProposal, StageNegotiation, StageWon, StageLost}

var stageRank = map[Stage]int{
	StageLead:        1,
	StageQualified:   2,
	StageProposal:    3,
	StageNegotiation: 4,
	StageWon:         5,
}

var defaultProbability = map[Stage]int{
	StageLead:        10,
	StageQualified:   25,
	StageProposal:    50,
	StageNegotiation: 75,
	StageWon:         100,
	StageLost:        0,
}

// IsValid checks if the stage is valid
func (s Stage) IsValid() bool {
	_, ok := defaultProbability[s]
	return ok
}

// IsOpen reports whether the opportunity is still being worked
func (s Stage) IsOpen() bool {
	return s.IsValid() && s != StageWon && s != StageLost
}

// DefaultProbability returns the win probability, in percent, assumed at the stage
func (s Stage) DefaultProbability() int {
	return defaultProbability[s]
}

// CanAdvanceTo reports whether an opportunity may move to next.
// Open stages only move forward, and any open stage may be lost.
func (s Stage) CanAdvanceTo(next Stage) bool {
	if !s.IsOpen() || !next.IsValid() {
		return false
	}
	if next == StageLost {
		return true
	}
	return stageRank[next] > stageRank[s]
}

// Opportunity is a potential sale tracked through the pipeline
type Opportunity struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	ContactID         *uuid.UUID      `gorm:"type:uuid;index"`
	Stage             Stage           `gorm:"type:varchar(20);not null;default:'LEAD';index"`
	EstimatedValue    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Probability       int             `gorm:"not null;default:10"`
	ExpectedCloseDate *time.Time      `gorm:"type:date;index"`
	Owner             string          `gorm:"type:varchar(100);index"`
	LostReason        string          `gorm:"type:text"`
	ClosedAt          *time.Time
	Notes             string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Opportunity) TableName() string {
	return "sales_opportunities"
}

// NewOpportunity creates a lead
func NewOpportunity(name string, value decimal.Decimal) (*Opportunity, error) {
	o := &Opportunity{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Stage:             StageLead,
		Probability:       StageLead.DefaultProbability(),
	}
	if err := o.Rename(name); err != nil {
		return nil, err
	}
	if err := o.SetValue(value); err != nil {
		return nil, err
	}
	return o, nil
}

// Rename sets the opportunity name
func (o *Opportunity) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Opportunity name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Opportunity name cannot exceed 200 characters")
	}
	o.Name = name
	return nil
}

// SetValue sets the estimated contract value
func (o *Opportunity) SetValue(value decimal.Decimal) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Estimated value cannot be negative")
	}
	o.EstimatedValue = value.Round(2)
	return nil
}

// SetProbability overrides the stage default while the opportunity is open
func (o *Opportunity) SetProbability(p int) error {
	if !o.IsOpen() {
		return shared.NewDomainError(shared.CodeInvalidState, "Probability of a closed opportunity is fixed")
	}
	if p < 0 || p > 100 {
		return shared.NewDomainError("INVALID_PROBABILITY", "Probability must be between 0 and 100")
	}
	o.Probability = p
	return nil
}

// IsOpen reports whether the opportunity is neither won nor lost
func (o *Opportunity) IsOpen() bool {
	return o.Stage.IsOpen()
}

// WeightedValue is the estimated value scaled by the win probability
func (o *Opportunity) WeightedValue() decimal.Decimal {
	return o.EstimatedValue.Mul(decimal.NewFromInt(int64(o.Probability))).Div(decimal.NewFromInt(100)).Round(2)
}

// AdvanceStage moves the opportunity to next and resets the probability to the stage default
func (o *Opportunity) AdvanceStage(next Stage, at time.Time) error {
	if !next.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid stage")
	}
	if !o.Stage.CanAdvanceTo(next) {
		return shared.InvalidTransition("opportunity", string(o.Stage), string(next))
	}
	from := o.Stage
	o.Stage = next
	o.Probability = next.DefaultProbability()
	if !next.IsOpen() {
		o.ClosedAt = &at
	}
	o.IncrementVersion()
	o.AddDomainEvent(NewOpportunityStageChangedEvent(o, from))
	return nil
}

// MarkWon closes the opportunity as won
func (o *Opportunity) MarkWon(at time.Time) error {
	return o.AdvanceStage(StageWon, at)
}

// MarkLost closes the opportunity as lost, keeping the reason
func (o *Opportunity) MarkLost(reason string, at time.Time) error {
	if !o.Stage.CanAdvanceTo(StageLost) {
		return shared.InvalidTransition("opportunity", string(o.Stage), string(StageLost))
	}
	o.LostReason = strings.TrimSpace(reason)
	return o.AdvanceStage(StageLost, at)
}

// StageTotal is the pipeline aggregate of one stage
type StageTotal struct {
	Stage         Stage
	Count         int64
	Value         decimal.Decimal
	WeightedValue decimal.Decimal
}
