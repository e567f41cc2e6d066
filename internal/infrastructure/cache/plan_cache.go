// Package cache provides the Redis-backed plan cache. Generation is
// deterministic, so cached plans never go stale under unchanged
// configuration; the TTL only bounds how long configuration edits take
// to surface.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PlanCache implements the outbound plan cache port on Redis
type PlanCache struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// NewPlanCache connects to Redis and verifies the connection
func NewPlanCache(cfg *config.RedisConfig, logger *zap.Logger) (*PlanCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.Database,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis plan cache",
		zap.String("addr", client.Options().Addr),
		zap.Int("db", cfg.Database),
	)
	return &PlanCache{client: client, logger: logger.Named("plan-cache")}, nil
}

// NewPlanCacheWithClient wraps an existing client, used by tests
func NewPlanCacheWithClient(client redis.UniversalClient, logger *zap.Logger) *PlanCache {
	return &PlanCache{client: client, logger: logger.Named("plan-cache")}
}

// GetPlan loads and decodes a cached plan. A miss returns redis.Nil.
func (c *PlanCache) GetPlan(ctx context.Context, key string) (*planning.MealPlan, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var plan planning.MealPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		// A corrupt entry is dropped so the next call regenerates.
		c.logger.Warn("Dropping undecodable cached plan", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return nil, fmt.Errorf("failed to decode cached plan: %w", err)
	}
	return &plan, nil
}

// SetPlan encodes and stores a plan under the fingerprint key
func (c *PlanCache) SetPlan(ctx context.Context, key string, plan *planning.MealPlan, ttl time.Duration) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Close releases the Redis connection
func (c *PlanCache) Close() error {
	return c.client.Close()
}

var _ outbound.PlanCache = (*PlanCache)(nil)
