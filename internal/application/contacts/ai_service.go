package contacts

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// ContactsAIService scores leads and suggests follow-ups through the prediction API
type ContactsAIService struct {
	client shared.AIClient
}

// NewContactsAIService creates a new ContactsAIService
func NewContactsAIService(client shared.AIClient) *ContactsAIService {
	return &ContactsAIService{client: client}
}

// ScoreLeadRequest is the input of ScoreLead
type ScoreLeadRequest struct {
	ContactID      uuid.UUID      `json:"contactId" binding:"required"`
	CompanyName    string         `json:"companyName"`
	ContactType    string         `json:"contactType"`
	Source         string         `json:"source"`
	Interactions   int            `json:"interactions" binding:"gte=0"`
	EstimatedValue float64        `json:"estimatedValue" binding:"gte=0"`
	Attributes     map[string]any `json:"attributes,omitempty"`
}

// LeadScore is the scored lead
type LeadScore struct {
	ContactID   uuid.UUID `json:"contact_id"`
	Score       float64   `json:"score"`
	Grade       string    `json:"grade"`
	Factors     []string  `json:"factors"`
	NextActions []string  `json:"next_actions"`
}

type leadScoreReply struct {
	Score          float64  `json:"score"`
	Grade          string   `json:"grade"`
	Factors        []string `json:"factors"`
	Recommendation []string `json:"recommendations"`
}

// ScoreLead rates how likely a contact is to convert
func (s *ContactsAIService) ScoreLead(ctx context.Context, req ScoreLeadRequest) (*LeadScore, error) {
	var reply leadScoreReply
	if err := s.client.Call(ctx, "contacts/score-lead", "lead_scoring", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "score lead", err)
	}
	return &LeadScore{
		ContactID:   req.ContactID,
		Score:       reply.Score,
		Grade:       reply.Grade,
		Factors:     reply.Factors,
		NextActions: reply.Recommendation,
	}, nil
}

// SuggestFollowUpRequest is the input of SuggestFollowUp
type SuggestFollowUpRequest struct {
	ContactID        uuid.UUID `json:"contactId" binding:"required"`
	LastInteraction  string    `json:"lastInteraction"`
	DaysSinceContact int       `json:"daysSinceContact" binding:"gte=0"`
	OpenOpportunity  bool      `json:"openOpportunity"`
}

// FollowUpSuggestion is one recommended follow-up action
type FollowUpSuggestion struct {
	Action    string `json:"action"`
	Channel   string `json:"channel"`
	DueInDays int    `json:"due_in_days"`
	Reason    string `json:"reason"`
}

// FollowUpPlan groups the suggestions for a contact
type FollowUpPlan struct {
	ContactID   uuid.UUID            `json:"contact_id"`
	Suggestions []FollowUpSuggestion `json:"suggestions"`
}

type followUpReply struct {
	Recommendations []struct {
		Action  string `json:"action"`
		Channel string `json:"channel"`
		DueIn   int    `json:"dueInDays"`
		Reason  string `json:"reason"`
	} `json:"recommendations"`
}

// SuggestFollowUp asks for the next actions to take with a contact
func (s *ContactsAIService) SuggestFollowUp(ctx context.Context, req SuggestFollowUpRequest) (*FollowUpPlan, error) {
	var reply followUpReply
	if err := s.client.GetRecommendations(ctx, "contact_follow_up", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "suggest follow-up", err)
	}
	plan := &FollowUpPlan{ContactID: req.ContactID, Suggestions: make([]FollowUpSuggestion, 0, len(reply.Recommendations))}
	for _, r := range reply.Recommendations {
		plan.Suggestions = append(plan.Suggestions, FollowUpSuggestion{
			Action:    r.Action,
			Channel:   r.Channel,
			DueInDays: r.DueIn,
			Reason:    r.Reason,
		})
	}
	return plan, nil
}
