package drafting

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// DraftingAIService checks designs and generates precast elements through the prediction API
type DraftingAIService struct {
	client shared.AIClient
}

// NewDraftingAIService creates a new DraftingAIService
func NewDraftingAIService(client shared.AIClient) *DraftingAIService {
	return &DraftingAIService{client: client}
}

// CheckDesignRequest describes the design to check
type CheckDesignRequest struct {
	DrawingID   uuid.UUID      `json:"drawingId" binding:"required"`
	ElementType string         `json:"elementType" binding:"required"`
	Span        float64        `json:"span" binding:"gte=0"`
	Load        float64        `json:"load" binding:"gte=0"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Codes       []string       `json:"codes,omitempty"`
}

// DesignIssue is one finding of a design check
type DesignIssue struct {
	Severity   string `json:"severity"`
	Element    string `json:"element"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// DesignCheck is the result of a design check
type DesignCheck struct {
	DrawingID uuid.UUID     `json:"drawing_id"`
	Passed    bool          `json:"passed"`
	Score     float64       `json:"score"`
	Issues    []DesignIssue `json:"issues"`
}

type designCheckReply struct {
	Passed bool          `json:"passed"`
	Score  float64       `json:"score"`
	Issues []DesignIssue `json:"issues"`
}

// CheckDesign checks a drawing's design against code requirements
func (s *DraftingAIService) CheckDesign(ctx context.Context, req CheckDesignRequest) (*DesignCheck, error) {
	var reply designCheckReply
	if err := s.client.Call(ctx, "drafting/check-design", "design_check", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "check design", err)
	}
	issues := reply.Issues
	if issues == nil {
		issues = []DesignIssue{}
	}
	return &DesignCheck{DrawingID: req.DrawingID, Passed: reply.Passed, Score: reply.Score, Issues: issues}, nil
}

// GenerateElementsRequest describes the structure to break into precast elements
type GenerateElementsRequest struct {
	ProjectID     uuid.UUID `json:"projectId" binding:"required"`
	StructureType string    `json:"structureType" binding:"required"`
	Levels        int       `json:"levels" binding:"gte=1"`
	BayWidth      float64   `json:"bayWidth" binding:"gt=0"`
	BayCount      int       `json:"bayCount" binding:"gte=1"`
	Notes         string    `json:"notes,omitempty"`
}

// GeneratedElement is one proposed precast element
type GeneratedElement struct {
	PieceMark   string  `json:"piece_mark"`
	ElementType string  `json:"element_type"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
	Weight      float64 `json:"weight"`
	Quantity    int     `json:"quantity"`
}

// ElementSet is the generated element schedule
type ElementSet struct {
	ProjectID uuid.UUID          `json:"project_id"`
	Elements  []GeneratedElement `json:"elements"`
}

type elementsReply struct {
	Content struct {
		Elements []struct {
			Mark     string  `json:"mark"`
			Type     string  `json:"type"`
			Length   float64 `json:"length"`
			Width    float64 `json:"width"`
			Depth    float64 `json:"depth"`
			Weight   float64 `json:"weight"`
			Quantity int     `json:"quantity"`
		} `json:"elements"`
	} `json:"content"`
}

// GenerateElements proposes the precast element schedule for a structure
func (s *DraftingAIService) GenerateElements(ctx context.Context, req GenerateElementsRequest) (*ElementSet, error) {
	var reply elementsReply
	if err := s.client.GenerateContent(ctx, "element_generation", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "generate elements", err)
	}
	set := &ElementSet{ProjectID: req.ProjectID, Elements: make([]GeneratedElement, 0, len(reply.Content.Elements))}
	for _, e := range reply.Content.Elements {
		qty := e.Quantity
		if qty <= 0 {
			qty = 1
		}
		set.Elements = append(set.Elements, GeneratedElement{
			PieceMark:   e.Mark,
			ElementType: e.Type,
			Length:      e.Length,
			Width:       e.Width,
			Depth:       e.Depth,
			Weight:      e.Weight,
			Quantity:    qty,
		})
	}
	return set, nil
}
