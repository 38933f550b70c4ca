package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

const keyPrefix = "khamar:insight:"

// InsightCache keeps narrative insights in Redis for a fixed TTL.
type InsightCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewInsightCache parses url, verifies the connection and returns a cache.
func NewInsightCache(ctx context.Context, url string, ttl time.Duration, logger *zap.Logger) (*InsightCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return NewInsightCacheWithClient(ctx, redis.NewClient(opts), ttl, logger)
}

// NewInsightCacheWithClient wraps an existing client.
func NewInsightCacheWithClient(ctx context.Context, client *redis.Client, ttl time.Duration, logger *zap.Logger) (*InsightCache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis insight cache", zap.Duration("ttl", ttl))
	return &InsightCache{client: client, ttl: ttl, logger: logger}, nil
}

// GetInsight returns the cached insight for key, if any.
func (c *InsightCache) GetInsight(ctx context.Context, key string) (models.Insight, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Insight{}, false, nil
	}
	if err != nil {
		return models.Insight{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var insight models.Insight
	if err := json.Unmarshal(raw, &insight); err != nil {
		return models.Insight{}, false, fmt.Errorf("decode cached insight %s: %w", key, err)
	}
	return insight, true, nil
}

// SetInsight stores insight under key for the configured TTL.
func (c *InsightCache) SetInsight(ctx context.Context, key string, insight models.Insight) error {
	raw, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("encode insight %s: %w", key, err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (c *InsightCache) Close() error {
	return c.client.Close()
}
