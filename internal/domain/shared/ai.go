package shared

import "context"

// Generic endpoints of the external prediction API, relative to /api/ai/
const (
	AIPathAnalyze         = "analyze"
	AIPathRecommendations = "recommendations"
	AIPathPredict         = "predict"
	AIPathOptimize        = "optimize"
	AIPathGenerate        = "generate"
)

// AIClient is the port to the external prediction API.
// Every call posts params plus a modelType tag and decodes the JSON reply into out.
type AIClient interface {
	Call(ctx context.Context, path, modelType string, params, out any) error
	AnalyzeData(ctx context.Context, modelType string, params, out any) error
	GetRecommendations(ctx context.Context, modelType string, params, out any) error
	GetPrediction(ctx context.Context, modelType string, params, out any) error
	GetOptimizationPlan(ctx context.Context, modelType string, params, out any) error
	GenerateContent(ctx context.Context, modelType string, params, out any) error
}
