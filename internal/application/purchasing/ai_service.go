package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// PurchasingAIService ranks vendors and plans material orders through the AI API
type PurchasingAIService struct {
	client shared.AIClient
}

// NewPurchasingAIService creates a new PurchasingAIService
func NewPurchasingAIService(client shared.AIClient) *PurchasingAIService {
	return &PurchasingAIService{client: client}
}

// RecommendVendorsRequest describes what needs to be bought
type RecommendVendorsRequest struct {
	MaterialIDs  []uuid.UUID `json:"materialIds" binding:"required,min=1"`
	RequiredBy   string      `json:"requiredBy"`
	MaxVendors   int         `json:"maxVendors" binding:"omitempty,min=1,max=20"`
	PreferLocal  bool        `json:"preferLocal"`
	BudgetAmount float64     `json:"budgetAmount" binding:"gte=0"`
}

// VendorRecommendation is one ranked vendor
type VendorRecommendation struct {
	VendorID     string   `json:"vendor_id"`
	VendorName   string   `json:"vendor_name"`
	Score        float64  `json:"score"`
	LeadTimeDays int      `json:"lead_time_days"`
	Reasons      []string `json:"reasons"`
}

type vendorReply struct {
	Vendors []struct {
		VendorID     string   `json:"vendorId"`
		VendorName   string   `json:"vendorName"`
		Score        float64  `json:"score"`
		LeadTimeDays int      `json:"leadTimeDays"`
		Reasons      []string `json:"reasons"`
	} `json:"vendors"`
}

// RecommendVendors ranks vendors for the requested materials
func (s *PurchasingAIService) RecommendVendors(ctx context.Context, req RecommendVendorsRequest) ([]VendorRecommendation, error) {
	var reply vendorReply
	if err := s.client.Call(ctx, "purchasing/recommend-vendors", "vendor_recommendation", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "recommend vendors", err)
	}
	out := make([]VendorRecommendation, len(reply.Vendors))
	for i, v := range reply.Vendors {
		reasons := v.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		out[i] = VendorRecommendation{
			VendorID:     v.VendorID,
			VendorName:   v.VendorName,
			Score:        v.Score,
			LeadTimeDays: v.LeadTimeDays,
			Reasons:      reasons,
		}
	}
	return out, nil
}

// ForecastMaterialDemandRequest selects the materials and horizon to forecast
type ForecastMaterialDemandRequest struct {
	MaterialIDs  []uuid.UUID `json:"materialIds"`
	HorizonWeeks int         `json:"horizonWeeks" binding:"required,min=1,max=52"`
	ProjectIDs   []uuid.UUID `json:"projectIds"`
}

// MaterialDemand is the forecast consumption of one material
type MaterialDemand struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// MaterialDemandForecast is the forecast demand over a horizon
type MaterialDemandForecast struct {
	HorizonWeeks int              `json:"horizon_weeks"`
	Demand       []MaterialDemand `json:"demand"`
	Confidence   float64          `json:"confidence"`
}

type demandReply struct {
	Prediction struct {
		Demand []struct {
			MaterialID string  `json:"materialId"`
			Quantity   float64 `json:"quantity"`
			Unit       string  `json:"unit"`
		} `json:"demand"`
	} `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// ForecastMaterialDemand predicts material consumption for upcoming production
func (s *PurchasingAIService) ForecastMaterialDemand(ctx context.Context, req ForecastMaterialDemandRequest) (*MaterialDemandForecast, error) {
	var reply demandReply
	if err := s.client.GetPrediction(ctx, "material_demand", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "forecast material demand", err)
	}
	demand := make([]MaterialDemand, len(reply.Prediction.Demand))
	for i, d := range reply.Prediction.Demand {
		demand[i] = MaterialDemand{MaterialID: d.MaterialID, Quantity: d.Quantity, Unit: d.Unit}
	}
	return &MaterialDemandForecast{
		HorizonWeeks: req.HorizonWeeks,
		Demand:       demand,
		Confidence:   reply.Confidence,
	}, nil
}

// OptimizeOrderQuantitiesRequest carries the demand and cost inputs for order sizing
type OptimizeOrderQuantitiesRequest struct {
	MaterialIDs     []uuid.UUID `json:"materialIds" binding:"required,min=1"`
	OrderingCost    float64     `json:"orderingCost" binding:"gte=0"`
	HoldingCostRate float64     `json:"holdingCostRate" binding:"gte=0"`
	ServiceLevel    float64     `json:"serviceLevel" binding:"omitempty,gt=0,lte=1"`
}

// OrderQuantity is the suggested order size of one material
type OrderQuantity struct {
	MaterialID   string  `json:"material_id"`
	Quantity     float64 `json:"quantity"`
	ReorderPoint float64 `json:"reorder_point"`
}

// OrderQuantityPlan is the optimized ordering plan
type OrderQuantityPlan struct {
	Orders           []OrderQuantity `json:"orders"`
	EstimatedSavings float64         `json:"estimated_savings"`
}

type orderQuantityReply struct {
	Plan struct {
		Orders []struct {
			MaterialID   string  `json:"materialId"`
			Quantity     float64 `json:"quantity"`
			ReorderPoint float64 `json:"reorderPoint"`
		} `json:"orders"`
		EstimatedSavings float64 `json:"estimatedSavings"`
	} `json:"plan"`
}

// OptimizeOrderQuantities sizes orders to balance ordering and holding cost
func (s *PurchasingAIService) OptimizeOrderQuantities(ctx context.Context, req OptimizeOrderQuantitiesRequest) (*OrderQuantityPlan, error) {
	var reply orderQuantityReply
	if err := s.client.GetOptimizationPlan(ctx, "order_quantity", req, &reply); err != nil {
		return nil, common.AIFail(ctx, "optimize order quantities", err)
	}
	orders := make([]OrderQuantity, len(reply.Plan.Orders))
	for i, o := range reply.Plan.Orders {
		orders[i] = OrderQuantity{MaterialID: o.MaterialID, Quantity: o.Quantity, ReorderPoint: o.ReorderPoint}
	}
	return &OrderQuantityPlan{Orders: orders, EstimatedSavings: reply.Plan.EstimatedSavings}, nil
}
