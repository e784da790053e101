package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"movie-booking/pkg/utils"
)

// Cache is a thin JSON read-through cache over Redis. A nil *Cache (or one
// built without a reachable Redis) disables itself, so callers never need to
// branch on availability.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to Redis and returns a working cache, or a disabled one when
// the server cannot be reached.
func New(config utils.RedisConfig, log *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, caching disabled",
			zap.String("addr", config.Addr),
			zap.Error(err),
		)
		return &Cache{log: log}
	}

	return &Cache{
		client: client,
		ttl:    time.Duration(config.CacheTTLSecs) * time.Second,
		log:    log.With(zap.String("component", "cache")),
	}
}

// NewWithClient wraps an existing client. Tests use it with miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get unmarshals the cached value into dest. Returns false on miss, error, or
// when the cache is disabled.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes all keys matching the given patterns.
func (c *Cache) Invalidate(ctx context.Context, patterns ...string) {
	if !c.Enabled() {
		return
	}

	for _, pattern := range patterns {
		iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			c.client.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			c.log.Warn("Cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
