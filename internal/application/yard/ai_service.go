package yard

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
)

// YardAIService asks the AI service for layout plans and placement suggestions,
// sending it a snapshot of the current yard
type YardAIService struct {
	client    shared.AIClient
	locations yard.LocationRepository
	pieces    yard.PieceRepository
}

// NewYardAIService creates a new YardAIService
func NewYardAIService(client shared.AIClient, locations yard.LocationRepository, pieces yard.PieceRepository) *YardAIService {
	return &YardAIService{client: client, locations: locations, pieces: pieces}
}

// OptimizeYardLayoutRequest scopes a layout optimization
type OptimizeYardLayoutRequest struct {
	Zone      string      `json:"zone"`
	Objective string      `json:"objective" binding:"omitempty,oneof=minimize_moves maximize_capacity ship_sequence"`
	ShipOrder []uuid.UUID `json:"shipOrder"`
}

type locationSnapshot struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Zone     string    `json:"zone"`
	Row      string    `json:"row"`
	Bay      string    `json:"bay"`
	Capacity int       `json:"capacity"`
	Occupied int       `json:"occupied"`
	Status   string    `json:"status"`
}

type pieceSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	PieceMark   string     `json:"pieceMark"`
	ProjectID   uuid.UUID  `json:"projectId"`
	ElementType string     `json:"elementType"`
	Weight      float64    `json:"weight"`
	LocationID  *uuid.UUID `json:"locationId,omitempty"`
}

type layoutParams struct {
	Zone      string             `json:"zone,omitempty"`
	Objective string             `json:"objective"`
	ShipOrder []uuid.UUID        `json:"shipOrder,omitempty"`
	Locations []locationSnapshot `json:"locations"`
	Pieces    []pieceSnapshot    `json:"pieces"`
}

// SuggestedMove is one relocation proposed by the layout plan
type SuggestedMove struct {
	PieceID        string `json:"piece_id"`
	FromLocationID string `json:"from_location_id"`
	ToLocationID   string `json:"to_location_id"`
	Reason         string `json:"reason"`
}

// YardLayoutPlan is the optimized layout
type YardLayoutPlan struct {
	Moves           []SuggestedMove `json:"moves"`
	MovesSaved      int             `json:"moves_saved"`
	UtilizationGain float64         `json:"utilization_gain"`
	Notes           []string        `json:"notes"`
}

type layoutReply struct {
	Plan struct {
		Moves []struct {
			PieceID        string `json:"pieceId"`
			FromLocationID string `json:"fromLocationId"`
			ToLocationID   string `json:"toLocationId"`
			Reason         string `json:"reason"`
		} `json:"moves"`
		MovesSaved      int      `json:"movesSaved"`
		UtilizationGain float64  `json:"utilizationGain"`
		Notes           []string `json:"notes"`
	} `json:"plan"`
}

// OptimizeYardLayout proposes piece relocations for the yard, or one zone of it
func (s *YardAIService) OptimizeYardLayout(ctx context.Context, req OptimizeYardLayoutRequest) (*YardLayoutPlan, error) {
	locations, err := s.locations.FindAll(ctx, shared.Filter{}.With("zone", req.Zone))
	if err != nil {
		return nil, common.Fail(ctx, "optimize yard layout", err)
	}
	pieces, err := s.pieces.FindAll(ctx, shared.Filter{}.With("status", string(yard.PieceStatusInYard)))
	if err != nil {
		return nil, common.Fail(ctx, "optimize yard layout", err)
	}

	params := layoutParams{
		Zone:      req.Zone,
		Objective: req.Objective,
		ShipOrder: req.ShipOrder,
		Locations: snapshotLocations(locations),
		Pieces:    snapshotPieces(pieces, zoneOf(locations, req.Zone)),
	}
	if params.Objective == "" {
		params.Objective = "minimize_moves"
	}

	var reply layoutReply
	if err := s.client.GetOptimizationPlan(ctx, "yard_layout", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "optimize yard layout", err)
	}
	moves := make([]SuggestedMove, len(reply.Plan.Moves))
	for i, m := range reply.Plan.Moves {
		moves[i] = SuggestedMove{
			PieceID:        m.PieceID,
			FromLocationID: m.FromLocationID,
			ToLocationID:   m.ToLocationID,
			Reason:         m.Reason,
		}
	}
	notes := reply.Plan.Notes
	if notes == nil {
		notes = []string{}
	}
	return &YardLayoutPlan{
		Moves:           moves,
		MovesSaved:      reply.Plan.MovesSaved,
		UtilizationGain: reply.Plan.UtilizationGain,
		Notes:           notes,
	}, nil
}

// SuggestLocationRequest asks where to put a piece
type SuggestLocationRequest struct {
	PieceID  uuid.UUID `json:"pieceId" binding:"required"`
	Priority string    `json:"priority" binding:"omitempty,oneof=low normal high"`
}

type suggestParams struct {
	Piece      pieceSnapshot      `json:"piece"`
	Priority   string             `json:"priority,omitempty"`
	Candidates []locationSnapshot `json:"candidates"`
}

// LocationSuggestion is one ranked placement for a piece
type LocationSuggestion struct {
	LocationID string  `json:"location_id"`
	Code       string  `json:"code"`
	Score      float64 `json:"score"`
	Reason     string  `json:"reason"`
}

type suggestReply struct {
	Suggestions []struct {
		LocationID string  `json:"locationId"`
		Code       string  `json:"code"`
		Score      float64 `json:"score"`
		Reason     string  `json:"reason"`
	} `json:"suggestions"`
}

// SuggestLocation ranks the available locations for a piece
func (s *YardAIService) SuggestLocation(ctx context.Context, req SuggestLocationRequest) ([]LocationSuggestion, error) {
	piece, err := s.pieces.FindByID(ctx, req.PieceID)
	if err != nil {
		return nil, common.Fail(ctx, "suggest location", err)
	}
	candidates, err := s.locations.FindAvailable(ctx, 1)
	if err != nil {
		return nil, common.Fail(ctx, "suggest location", err)
	}

	params := suggestParams{
		Piece:      snapshotPieces([]yard.Piece{*piece}, nil)[0],
		Priority:   req.Priority,
		Candidates: snapshotLocations(candidates),
	}
	var reply suggestReply
	if err := s.client.Call(ctx, "yard/suggest-location", "location_suggestion", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "suggest location", err)
	}
	out := make([]LocationSuggestion, len(reply.Suggestions))
	for i, sg := range reply.Suggestions {
		out[i] = LocationSuggestion{LocationID: sg.LocationID, Code: sg.Code, Score: sg.Score, Reason: sg.Reason}
	}
	return out, nil
}

func snapshotLocations(locations []yard.Location) []locationSnapshot {
	out := make([]locationSnapshot, len(locations))
	for i, l := range locations {
		out[i] = locationSnapshot{
			ID:       l.ID,
			Code:     l.Code,
			Zone:     l.Zone,
			Row:      l.Row,
			Bay:      l.Bay,
			Capacity: l.Capacity,
			Occupied: l.Occupied,
			Status:   string(l.Status),
		}
	}
	return out
}

// snapshotPieces converts pieces, keeping only those in scope when scope is non-nil
func snapshotPieces(pieces []yard.Piece, scope map[uuid.UUID]bool) []pieceSnapshot {
	out := make([]pieceSnapshot, 0, len(pieces))
	for _, p := range pieces {
		if scope != nil && (p.LocationID == nil || !scope[*p.LocationID]) {
			continue
		}
		weight, _ := p.Weight.Float64()
		out = append(out, pieceSnapshot{
			ID:          p.ID,
			PieceMark:   p.PieceMark,
			ProjectID:   p.ProjectID,
			ElementType: p.ElementType,
			Weight:      weight,
			LocationID:  p.LocationID,
		})
	}
	return out
}

// zoneOf returns the IDs of the given locations when a zone is selected, or nil for the whole yard
func zoneOf(locations []yard.Location, zone string) map[uuid.UUID]bool {
	if zone == "" {
		return nil
	}
	ids := make(map[uuid.UUID]bool, len(locations))
	for _, l := range locations {
		ids[l.ID] = true
	}
	return ids
}
