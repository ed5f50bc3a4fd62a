package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/precast-erp/backend/docs"
	"github.com/precast-erp/backend/internal/infrastructure/ai"
	"github.com/precast-erp/backend/internal/infrastructure/auth"
	"github.com/precast-erp/backend/internal/infrastructure/cache"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/precast-erp/backend/internal/infrastructure/event"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/precast-erp/backend/internal/infrastructure/persistence"
	"github.com/precast-erp/backend/internal/infrastructure/scheduler"
	"github.com/precast-erp/backend/internal/infrastructure/telemetry"
	"github.com/precast-erp/backend/internal/interfaces/http/handler"
	"github.com/precast-erp/backend/internal/interfaces/http/middleware"
	"github.com/precast-erp/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

//	@title			Precast ERP API
//	@version		1.0
//	@description	Backend API for precast concrete production: sales, engineering, purchasing, yard, quality and shipping

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	log = providers.BridgeLogger(log, zapcore.InfoLevel)

	log.Info("Starting precast ERP backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		system := "postgresql"
		if cfg.Database.Driver == "sqlite" {
			system = "sqlite"
		}
		if err := telemetry.InstrumentDB(db.DB, telemetry.DBTracing{
			System:        system,
			SlowQuery:     cfg.Telemetry.DBSlowQueryThresh,
			WithVariables: cfg.IsDevelopment(),
		}, log); err != nil {
			log.Fatal("Failed to instrument database", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	aiOpts := []ai.Option{ai.WithLogger(log)}
	if cfg.AI.CacheEnabled {
		responseCache, closer, err := cache.NewResponseCacheFactory(cfg.Redis,
			cache.WithLogger(log),
			cache.WithInMemoryFallback(true),
		).Create()
		if err != nil {
			log.Fatal("Failed to create AI response cache", zap.Error(err))
		}
		defer closer.Close()
		aiOpts = append(aiOpts, ai.WithCache(responseCache))
	}
	aiClient, err := ai.NewClient(ai.Config{
		BaseURL:  cfg.AI.BaseURL,
		APIKey:   cfg.AI.APIKey,
		Timeout:  cfg.AI.Timeout,
		CacheTTL: cfg.AI.CacheTTL,
	}, aiOpts...)
	if err != nil {
		log.Fatal("Failed to create AI client", zap.Error(err))
	}

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLoggingHandler(log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	engineOpts := router.EngineOptions{
		HTTP:        cfg.HTTP,
		ServiceName: cfg.Telemetry.ServiceName,
		Tracing:     providers.Enabled(),
		Profiling:   providers.Enabled() && cfg.Telemetry.Profiling.Enabled,
		HSTS:        !cfg.IsDevelopment(),
	}
	if providers.Enabled() {
		metrics, err := middleware.HTTPMetrics(otel.GetMeterProvider())
		if err != nil {
			log.Fatal("Failed to create HTTP metrics", zap.Error(err))
		}
		engineOpts.Metrics = metrics
	}
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
		engineOpts.RateLimiter = limiter
	}
	engine, err := router.NewEngine(engineOpts, log)
	if err != nil {
		log.Fatal("Failed to create HTTP engine", zap.Error(err))
	}

	var groupMiddleware []gin.HandlerFunc
	var jwtAuth gin.HandlerFunc
	if cfg.JWT.Enabled {
		jwtAuth = middleware.JWTAuth(auth.NewJWTService(cfg.JWT), log)
		groupMiddleware = append(groupMiddleware, jwtAuth)
	}
	if providers.Enabled() {
		groupMiddleware = append(groupMiddleware, middleware.SpanAttributes())
	}

	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, map[string]handler.HealthCheck{
		"database": db.Ping,
	})
	systemHandler.RegisterHealthRoutes(engine)
	router.MountSwagger(engine, cfg.Swagger, jwtAuth)

	mods := buildModules(db.DB, aiClient, eventBus, taskOptions{
		reorderCheckInterval: cfg.Scheduler.ReorderCheckInterval,
		log:                  log,
	})
	router.NewRouter(engine, router.WithGroupMiddleware(groupMiddleware...)).
		Register(systemHandler).
		Register(mods.registrars...).
		Setup()

	sched := scheduler.NewScheduler(scheduler.Config{
		JobTimeout:    cfg.Scheduler.JobTimeout,
		RetryAttempts: cfg.Scheduler.RetryAttempts,
		RetryDelay:    cfg.Scheduler.RetryDelay,
	}, log)
	if cfg.Scheduler.Enabled {
		for _, task := range mods.tasks {
			if err := sched.Register(task); err != nil {
				log.Fatal("Failed to register task", zap.String("task", task.Name), zap.Error(err))
			}
		}
		sched.Start(ctx)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping scheduler", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
