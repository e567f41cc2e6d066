package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/planning"
)

func cacheablePlan() *planning.MealPlan {
	return &planning.MealPlan{
		Days: []planning.Day{
			{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		},
		Metadata: planning.Metadata{
			Generator: planning.GeneratorMetadata{Mode: "template", Seed: 42, Attempts: 1},
		},
	}
}

func TestPlanCacheRoundTrip(t *testing.T) {
	cache := NewPlanCache()
	ctx := context.Background()
	plan := cacheablePlan()

	require.NoError(t, cache.SetPlan(ctx, "plan-key", plan, time.Minute))

	got, err := cache.GetPlan(ctx, "plan-key")
	require.NoError(t, err)
	assert.Equal(t, plan, got)
}

func TestPlanCacheMiss(t *testing.T) {
	cache := NewPlanCache()

	_, err := cache.GetPlan(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrPlanNotCached)
}

func TestPlanCacheExpiry(t *testing.T) {
	cache := NewPlanCache()
	ctx := context.Background()

	require.NoError(t, cache.SetPlan(ctx, "plan-key", cacheablePlan(), -time.Second))

	_, err := cache.GetPlan(ctx, "plan-key")
	assert.ErrorIs(t, err, ErrPlanNotCached)
}

func TestPlanCacheReturnsIndependentCopies(t *testing.T) {
	cache := NewPlanCache()
	ctx := context.Background()

	require.NoError(t, cache.SetPlan(ctx, "plan-key", cacheablePlan(), time.Minute))

	first, err := cache.GetPlan(ctx, "plan-key")
	require.NoError(t, err)
	first.Metadata.Generator.Seed = 99

	second, err := cache.GetPlan(ctx, "plan-key")
	require.NoError(t, err)
	assert.EqualValues(t, 42, second.Metadata.Generator.Seed)
}
