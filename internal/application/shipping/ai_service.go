package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/shipping"
)

// ShippingAIService plans routes and loads and estimates arrival times
type ShippingAIService struct {
	client    shared.AIClient
	shipments shipping.ShipmentRepository
}

// NewShippingAIService creates a new ShippingAIService
func NewShippingAIService(client shared.AIClient, shipments shipping.ShipmentRepository) *ShippingAIService {
	return &ShippingAIService{client: client, shipments: shipments}
}

// OptimizeRouteRequest lists the shipments to sequence from the plant.
// When ShipmentIDs is empty every planned shipment for Date is routed.
type OptimizeRouteRequest struct {
	ShipmentIDs []uuid.UUID `json:"shipmentIds"`
	Date        *time.Time  `json:"date"`
	Origin      string      `json:"origin"`
	Trucks      int         `json:"trucks" binding:"omitempty,min=1"`
}

type stopSnapshot struct {
	ShipmentID      uuid.UUID `json:"shipmentId"`
	ShipmentNumber  string    `json:"shipmentNumber"`
	DeliveryAddress string    `json:"deliveryAddress"`
	TotalWeight     float64   `json:"totalWeight"`
	ScheduledDate   string    `json:"scheduledDate,omitempty"`
}

type routeParams struct {
	Origin string         `json:"origin,omitempty"`
	Trucks int            `json:"trucks,omitempty"`
	Stops  []stopSnapshot `json:"stops"`
}

// RouteStop is one delivery in the optimized sequence
type RouteStop struct {
	Sequence      int     `json:"sequence"`
	ShipmentID    string  `json:"shipment_id"`
	ETA           string  `json:"eta"`
	DistanceKm    float64 `json:"distance_km"`
	TravelMinutes float64 `json:"travel_minutes"`
	Truck         string  `json:"truck,omitempty"`
}

// RoutePlan is the optimized delivery sequence
type RoutePlan struct {
	Stops           []RouteStop `json:"stops"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	TotalMinutes    float64     `json:"total_minutes"`
	Warnings        []string    `json:"warnings"`
}

type routeReply struct {
	Route struct {
		Stops []struct {
			Sequence      int     `json:"sequence"`
			ShipmentID    string  `json:"shipmentId"`
			ETA           string  `json:"eta"`
			DistanceKm    float64 `json:"distanceKm"`
			TravelMinutes float64 `json:"travelMinutes"`
			Truck         string  `json:"truck"`
		} `json:"stops"`
		TotalDistanceKm float64  `json:"totalDistanceKm"`
		TotalMinutes    float64  `json:"totalMinutes"`
		Warnings        []string `json:"warnings"`
	} `json:"route"`
}

// OptimizeRoute sequences deliveries to minimize travel
func (s *ShippingAIService) OptimizeRoute(ctx context.Context, req OptimizeRouteRequest) (*RoutePlan, error) {
	shipments, err := s.routeCandidates(ctx, req)
	if err != nil {
		return nil, common.Fail(ctx, "optimize route", err)
	}
	if len(shipments) == 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "No shipments to route")
	}

	params := routeParams{Origin: req.Origin, Trucks: req.Trucks, Stops: make([]stopSnapshot, len(shipments))}
	for i := range shipments {
		sh := &shipments[i]
		weight, _ := sh.TotalWeight.Float64()
		stop := stopSnapshot{
			ShipmentID:      sh.ID,
			ShipmentNumber:  sh.ShipmentNumber,
			DeliveryAddress: sh.DeliveryAddress,
			TotalWeight:     weight,
		}
		if sh.ScheduledDate != nil {
			stop.ScheduledDate = sh.ScheduledDate.Format("2006-01-02")
		}
		params.Stops[i] = stop
	}

	var reply routeReply
	if err := s.client.Call(ctx, "shipping/optimize-route", "route_optimization", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "optimize route", err)
	}
	plan := &RoutePlan{
		Stops:           make([]RouteStop, len(reply.Route.Stops)),
		TotalDistanceKm: reply.Route.TotalDistanceKm,
		TotalMinutes:    reply.Route.TotalMinutes,
		Warnings:        reply.Route.Warnings,
	}
	for i, st := range reply.Route.Stops {
		plan.Stops[i] = RouteStop{
			Sequence:      st.Sequence,
			ShipmentID:    st.ShipmentID,
			ETA:           st.ETA,
			DistanceKm:    st.DistanceKm,
			TravelMinutes: st.TravelMinutes,
			Truck:         st.Truck,
		}
	}
	if plan.Warnings == nil {
		plan.Warnings = []string{}
	}
	return plan, nil
}

func (s *ShippingAIService) routeCandidates(ctx context.Context, req OptimizeRouteRequest) ([]shipping.Shipment, error) {
	if len(req.ShipmentIDs) > 0 {
		out := make([]shipping.Shipment, 0, len(req.ShipmentIDs))
		for _, id := range req.ShipmentIDs {
			sh, err := s.shipments.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			out = append(out, *sh)
		}
		return out, nil
	}
	f := shared.Filter{}.With("status", string(shipping.ShipmentStatusPlanned))
	if req.Date != nil {
		day := shared.TruncateToDay(*req.Date)
		f = f.With("scheduled_from", day).With("scheduled_to", day)
	}
	return s.shipments.FindAll(ctx, f)
}

// PredictDeliveryTimeRequest describes a delivery to estimate
type PredictDeliveryTimeRequest struct {
	ShipmentID    uuid.UUID  `json:"shipmentId" binding:"required"`
	DepartureTime *time.Time `json:"departureTime"`
	Weather       string     `json:"weather"`
	Traffic       string     `json:"traffic" binding:"omitempty,oneof=light moderate heavy"`
}

type deliveryTimeParams struct {
	ShipmentNumber  string    `json:"shipmentNumber"`
	DeliveryAddress string    `json:"deliveryAddress"`
	TotalWeight     float64   `json:"totalWeight"`
	PieceCount      int       `json:"pieceCount"`
	Carrier         string    `json:"carrier,omitempty"`
	DepartureTime   time.Time `json:"departureTime"`
	Weather         string    `json:"weather,omitempty"`
	Traffic         string    `json:"traffic,omitempty"`
}

// DeliveryTimeEstimate is the predicted arrival of a shipment
type DeliveryTimeEstimate struct {
	ShipmentID       uuid.UUID `json:"shipment_id"`
	EstimatedArrival string    `json:"estimated_arrival"`
	TravelMinutes    float64   `json:"travel_minutes"`
	DelayRisk        string    `json:"delay_risk"`
	Confidence       float64   `json:"confidence"`
}

type deliveryTimeReply struct {
	Prediction struct {
		EstimatedArrival string  `json:"estimatedArrival"`
		TravelMinutes    float64 `json:"travelMinutes"`
		DelayRisk        string  `json:"delayRisk"`
	} `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// PredictDeliveryTime estimates when a shipment will reach its site
func (s *ShippingAIService) PredictDeliveryTime(ctx context.Context, req PredictDeliveryTimeRequest) (*DeliveryTimeEstimate, error) {
	sh, err := s.shipments.FindByID(ctx, req.ShipmentID)
	if err != nil {
		return nil, common.Fail(ctx, "predict delivery time", err)
	}
	departure := time.Now()
	switch {
	case req.DepartureTime != nil:
		departure = *req.DepartureTime
	case sh.DispatchedAt != nil:
		departure = *sh.DispatchedAt
	}
	weight, _ := sh.TotalWeight.Float64()
	params := deliveryTimeParams{
		ShipmentNumber:  sh.ShipmentNumber,
		DeliveryAddress: sh.DeliveryAddress,
		TotalWeight:     weight,
		PieceCount:      len(sh.Items),
		Carrier:         sh.Carrier,
		DepartureTime:   departure,
		Weather:         req.Weather,
		Traffic:         req.Traffic,
	}

	var reply deliveryTimeReply
	if err := s.client.GetPrediction(ctx, "delivery_time", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "predict delivery time", err)
	}
	return &DeliveryTimeEstimate{
		ShipmentID:       sh.ID,
		EstimatedArrival: reply.Prediction.EstimatedArrival,
		TravelMinutes:    reply.Prediction.TravelMinutes,
		DelayRisk:        reply.Prediction.DelayRisk,
		Confidence:       reply.Confidence,
	}, nil
}

// OptimizeLoadRequest names the shipment whose load should be arranged
type OptimizeLoadRequest struct {
	ShipmentID    uuid.UUID `json:"shipmentId" binding:"required"`
	TrailerLength float64   `json:"trailerLength" binding:"omitempty,gt=0"`
}

type loadPiece struct {
	PieceID   uuid.UUID `json:"pieceId"`
	PieceMark string    `json:"pieceMark"`
	Weight    float64   `json:"weight"`
}

type loadParams struct {
	ShipmentNumber string      `json:"shipmentNumber"`
	MaxWeight      float64     `json:"maxWeight"`
	TrailerLength  float64     `json:"trailerLength,omitempty"`
	Pieces         []loadPiece `json:"pieces"`
}

// LoadPlacement is where one piece sits on the trailer
type LoadPlacement struct {
	PieceID  string `json:"piece_id"`
	Position int    `json:"position"`
	Note     string `json:"note,omitempty"`
}

// LoadPlan is the optimized arrangement of a shipment's load
type LoadPlan struct {
	ShipmentID  uuid.UUID       `json:"shipment_id"`
	Placements  []LoadPlacement `json:"placements"`
	Utilization float64         `json:"utilization"`
	Balanced    bool            `json:"balanced"`
	Warnings    []string        `json:"warnings"`
}

type loadReply struct {
	Plan struct {
		Placements []struct {
			PieceID  string `json:"pieceId"`
			Position int    `json:"position"`
			Note     string `json:"note"`
		} `json:"placements"`
		Utilization float64  `json:"utilization"`
		Balanced    bool     `json:"balanced"`
		Warnings    []string `json:"warnings"`
	} `json:"plan"`
}

// OptimizeLoad arranges a shipment's pieces on the trailer
func (s *ShippingAIService) OptimizeLoad(ctx context.Context, req OptimizeLoadRequest) (*LoadPlan, error) {
	sh, err := s.shipments.FindByID(ctx, req.ShipmentID)
	if err != nil {
		return nil, common.Fail(ctx, "optimize load", err)
	}
	maxWeight, _ := sh.MaxWeight.Float64()
	params := loadParams{
		ShipmentNumber: sh.ShipmentNumber,
		MaxWeight:      maxWeight,
		TrailerLength:  req.TrailerLength,
		Pieces:         make([]loadPiece, len(sh.Items)),
	}
	for i, it := range sh.Items {
		w, _ := it.Weight.Float64()
		params.Pieces[i] = loadPiece{PieceID: it.PieceID, PieceMark: it.PieceMark, Weight: w}
	}

	var reply loadReply
	if err := s.client.GetOptimizationPlan(ctx, "load_optimization", params, &reply); err != nil {
		return nil, common.AIFail(ctx, "optimize load", err)
	}
	plan := &LoadPlan{
		ShipmentID:  sh.ID,
		Placements:  make([]LoadPlacement, len(reply.Plan.Placements)),
		Utilization: reply.Plan.Utilization,
		Balanced:    reply.Plan.Balanced,
		Warnings:    reply.Plan.Warnings,
	}
	for i, p := range reply.Plan.Placements {
		plan.Placements[i] = LoadPlacement{PieceID: p.PieceID, Position: p.Position, Note: p.Note}
	}
	if plan.Warnings == nil {
		plan.Warnings = []string{}
	}
	return plan, nil
}
