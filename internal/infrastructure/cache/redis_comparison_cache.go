package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisComparisonCache implements port.ComparisonCache on Redis. Cache
// failures are logged and reported as misses so Redis downtime only costs
// recomputation, never availability.
type RedisComparisonCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisComparisonCache wraps an existing Redis client.
func NewRedisComparisonCache(client *redis.Client, logger *slog.Logger) *RedisComparisonCache {
	return &RedisComparisonCache{client: client, logger: logger}
}

// Get returns the cached value for key, or false on a miss or error.
func (c *RedisComparisonCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "comparison cache read failed", "key", key, "error", err)
		}
		return "", false
	}
	return val, true
}

// Set stores value under key for ttl.
func (c *RedisComparisonCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "comparison cache write failed", "key", key, "error", err)
		return err
	}
	return nil
}
