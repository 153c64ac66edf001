package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/retail/retailctl/internal/infrastructure/config"
	"go.uber.org/zap"
)

// RedisReportCache is a Redis-backed byte cache for report results.
// Backend trouble is never surfaced to callers: a failed Get reads as a
// miss and a failed Set is logged and dropped, so reports degrade to
// the database instead of failing.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisReportCache connects to Redis and returns a report cache
func NewRedisReportCache(cfg *config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisReportCacheWithClient(client, ttl, logger), nil
}

// NewRedisReportCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisReportCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisReportCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisReportCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached value for key, or ok=false on a miss or error
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("report cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key with the configured TTL
func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the underlying Redis connection
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
