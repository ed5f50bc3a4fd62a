// Package ai is the HTTP adapter for the external prediction API.
package ai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	instrumentationName = "github.com/precast-erp/backend/internal/infrastructure/ai"
	apiPrefix           = "/api/ai/"
	maxResponseBytes    = 10 << 20
	// ModelTypeField is the payload key carrying the model tag
	ModelTypeField = "modelType"
)

// ResponseCache stores raw AI responses keyed by request fingerprint
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// StatusError is returned when the API answers outside the 2xx range
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ai api returned status %d: %s", e.StatusCode, e.Body)
}

// Config holds client settings
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client calls the prediction API over HTTP
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      ResponseCache
	cacheTTL   time.Duration
	logger     *zap.Logger
	tracer     trace.Tracer
	requests   metric.Int64Counter
	duration   metric.Float64Histogram
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables response caching
func WithCache(cache ResponseCache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l.Named("ai") }
}

// NewClient creates a new Client
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ai base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		cacheTTL:   cfg.CacheTTL,
		logger:     zap.NewNop(),
		tracer:     otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}

	meter := otel.Meter(instrumentationName)
	var err error
	if c.requests, err = meter.Int64Counter("ai.requests",
		metric.WithDescription("Calls made to the prediction API")); err != nil {
		return nil, fmt.Errorf("failed to create ai.requests counter: %w", err)
	}
	if c.duration, err = meter.Float64Histogram("ai.request.duration",
		metric.WithDescription("Prediction API call latency"),
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("failed to create ai.request.duration histogram: %w", err)
	}
	return c, nil
}

// Call posts params tagged with modelType to /api/ai/{path} and decodes the reply into out.
// out may be nil when the caller does not need the body.
func (c *Client) Call(ctx context.Context, path, modelType string, params, out any) (err error) {
	path = strings.Trim(path, "/")
	ctx, span := c.tracer.Start(ctx, "ai "+path, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("ai.path", path),
			attribute.String("ai.model_type", modelType),
		))
	start := time.Now()
	outcome := "ok"
	defer func() {
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		attrs := metric.WithAttributes(attribute.String("path", path), attribute.String("outcome", outcome))
		c.requests.Add(ctx, 1, attrs)
		c.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		span.End()
	}()

	body, err := buildPayload(modelType, params)
	if err != nil {
		return err
	}

	cacheKey := fingerprint(path, body)
	if c.cache != nil {
		if cached, ok, cerr := c.cache.Get(ctx, cacheKey); cerr == nil && ok {
			outcome = "cached"
			span.SetAttributes(attribute.Bool("ai.cache_hit", true))
			return decode(cached, out)
		} else if cerr != nil {
			logger.L(ctx).Warn("ai cache read failed", zap.Error(cerr))
		}
	}

	respBody, err := c.post(ctx, path, body)
	if err != nil {
		c.logger.Warn("ai request failed",
			zap.String("path", path),
			zap.String("model_type", modelType),
			zap.Error(err),
		)
		return err
	}

	if err := decode(respBody, out); err != nil {
		return err
	}

	if c.cache != nil && c.cacheTTL > 0 {
		if cerr := c.cache.Set(ctx, cacheKey, respBody, c.cacheTTL); cerr != nil {
			logger.L(ctx).Warn("ai cache write failed", zap.Error(cerr))
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read ai response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), 512)}
	}
	return respBody, nil
}

// AnalyzeData posts to /api/ai/analyze
func (c *Client) AnalyzeData(ctx context.Context, modelType string, params, out any) error {
	return c.Call(ctx, shared.AIPathAnalyze, modelType, params, out)
}

// GetRecommendations posts to /api/ai/recommendations
func (c *Client) GetRecommendations(ctx context.Context, modelType string, params, out any) error {
	return c.Call(ctx, shared.AIPathRecommendations, modelType, params, out)
}

// GetPrediction posts to /api/ai/predict
func (c *Client) GetPrediction(ctx context.Context, modelType string, params, out any) error {
	return c.Call(ctx, shared.AIPathPredict, modelType, params, out)
}

// GetOptimizationPlan posts to /api/ai/optimize
func (c *Client) GetOptimizationPlan(ctx context.Context, modelType string, params, out any) error {
	return c.Call(ctx, shared.AIPathOptimize, modelType, params, out)
}

// GenerateContent posts to /api/ai/generate
func (c *Client) GenerateContent(ctx context.Context, modelType string, params, out any) error {
	return c.Call(ctx, shared.AIPathGenerate, modelType, params, out)
}

// buildPayload flattens params into a JSON object and adds the modelType tag
func buildPayload(modelType string, params any) ([]byte, error) {
	payload := map[string]any{}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal ai params: %w", err)
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("ai params must encode to a JSON object: %w", err)
		}
	}
	payload[ModelTypeField] = modelType
	return json.Marshal(payload)
}

func decode(body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode ai response: %w", err)
	}
	return nil
}

func fingerprint(path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ shared.AIClient = (*Client)(nil)
