package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultResponseKeyPrefix = "ai:response:"

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisResponseCache stores AI responses in Redis so that all API instances share them
type RedisResponseCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisResponseCache connects to Redis and verifies the connection
func NewRedisResponseCache(cfg RedisConfig) (*RedisResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisResponseCacheWithClient(client, ""), nil
}

// NewRedisResponseCacheWithClient creates a cache with an existing Redis client
func NewRedisResponseCacheWithClient(client *redis.Client, keyPrefix string) *RedisResponseCache {
	if keyPrefix == "" {
		keyPrefix = defaultResponseKeyPrefix
	}
	return &RedisResponseCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached value for key
func (c *RedisResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached response: %w", err)
	}
	return val, true, nil
}

// Set stores value under key with a TTL
func (c *RedisResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisResponseCache) Close() error {
	return c.client.Close()
}
