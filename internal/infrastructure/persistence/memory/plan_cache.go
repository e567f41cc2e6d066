package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/ports/outbound"
)

// ErrPlanNotCached reports a cache miss.
var ErrPlanNotCached = errors.New("plan not cached")

type cachedPlan struct {
	payload   []byte
	expiresAt time.Time
}

// PlanCache is an in-memory plan cache for development and tests. It
// round-trips plans through JSON so cached results behave exactly like
// the Redis-backed cache would.
type PlanCache struct {
	data  map[string]cachedPlan
	mutex sync.RWMutex
}

// NewPlanCache creates a new in-memory plan cache
func NewPlanCache() *PlanCache {
	return &PlanCache{
		data: make(map[string]cachedPlan),
	}
}

// GetPlan retrieves a cached plan by key
func (c *PlanCache) GetPlan(ctx context.Context, key string) (*planning.MealPlan, error) {
	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, ErrPlanNotCached
	}
	if time.Now().After(item.expiresAt) {
		c.mutex.Lock()
		delete(c.data, key)
		c.mutex.Unlock()
		return nil, ErrPlanNotCached
	}

	var plan planning.MealPlan
	if err := json.Unmarshal(item.payload, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SetPlan stores a plan under the key for the given TTL
func (c *PlanCache) SetPlan(ctx context.Context, key string, plan *planning.MealPlan, ttl time.Duration) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data[key] = cachedPlan{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

var _ outbound.PlanCache = (*PlanCache)(nil)
