package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/precast-erp/backend/internal/interfaces/http/dto"
	"github.com/precast-erp/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// EngineOptions selects the optional global middleware
type EngineOptions struct {
	HTTP        config.HTTPConfig
	ServiceName string
	Tracing     bool
	Profiling   bool
	HSTS        bool
	Metrics     gin.HandlerFunc
	RateLimiter *middleware.RateLimiter
}

// NewEngine builds a gin engine with the global middleware chain:
// recovery, request ID, tracing, profiling labels, access log, security headers, CORS, body limit,
// rate limit and metrics, in that order
func NewEngine(opts EngineOptions, log *zap.Logger) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
		return nil, err
	}
	middleware.SetupValidator()

	engine.Use(logger.Recovery(log), middleware.RequestID())
	if opts.Tracing {
		engine.Use(middleware.Tracing(opts.ServiceName))
	}
	if opts.Profiling {
		engine.Use(middleware.Profiling())
	}
	engine.Use(logger.GinMiddleware(log), middleware.Secure(opts.HSTS))

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = opts.HTTP.CORSAllowOrigins
	if len(opts.HTTP.CORSAllowMethods) > 0 {
		cors.AllowMethods = opts.HTTP.CORSAllowMethods
	}
	if len(opts.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = opts.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORS(cors))

	if opts.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(opts.HTTP.MaxBodySize))
	}
	if opts.RateLimiter != nil {
		engine.Use(middleware.RateLimit(opts.RateLimiter))
	}
	if opts.Metrics != nil {
		engine.Use(opts.Metrics)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound, "Route not found", c.GetString(middleware.RequestIDKey)))
	})
	return engine, nil
}
