package cache

import (
	"fmt"
	"io"

	"github.com/precast-erp/backend/internal/infrastructure/ai"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ResponseCacheFactory creates AI response caches based on configuration
type ResponseCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*ResponseCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *ResponseCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to process memory.
// Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *ResponseCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewResponseCacheFactory creates a new factory
func NewResponseCacheFactory(cfg config.RedisConfig, opts ...FactoryOption) *ResponseCacheFactory {
	f := &ResponseCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns a Redis cache when Redis is enabled and reachable, and an in-memory
// cache otherwise. The closer releases the Redis connection; it is a no-op in memory.
func (f *ResponseCacheFactory) Create() (ai.ResponseCache, io.Closer, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-memory AI response cache")
		return NewInMemoryResponseCache(), nopCloser{}, nil
	}

	redisCache, err := NewRedisResponseCache(RedisConfig{
		Addr:     f.redisConfig.Addr(),
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err == nil {
		f.logger.Info("using Redis AI response cache", zap.String("addr", f.redisConfig.Addr()))
		return redisCache, redisCache, nil
	}
	if !f.allowInMemoryFallback {
		return nil, nil, fmt.Errorf("redis required for the AI response cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory AI response cache. "+
		"Cached responses are not shared between instances.",
		zap.Error(err),
	)
	return NewInMemoryResponseCache(), nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
