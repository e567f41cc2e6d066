package planning

import (
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
)

func TestRNGDeterminism(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.next(), b.next(), "sequence diverged at step %d", i)
	}
}

func TestRNGIntnBounds(t *testing.T) {
	r := newRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Equal(t, 0, r.intn(0))
	assert.Equal(t, 0, r.intn(-3))
}

func TestRNGRangeIntBounds(t *testing.T) {
	r := newRNG(11)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := r.rangeInt(10, 13)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 13)
		seenLo = seenLo || v == 10
		seenHi = seenHi || v == 13
	}
	assert.True(t, seenLo, "lower bound never drawn")
	assert.True(t, seenHi, "upper bound never drawn")
	assert.Equal(t, 4, r.rangeInt(4, 4))
}

func TestSubSeedVariesByComponent(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	base := subSeed(1, day, catalog.MealLunch, 0)

	assert.Equal(t, base, subSeed(1, day, catalog.MealLunch, 0))
	assert.NotEqual(t, base, subSeed(2, day, catalog.MealLunch, 0))
	assert.NotEqual(t, base, subSeed(1, day.AddDate(0, 0, 1), catalog.MealLunch, 0))
	assert.NotEqual(t, base, subSeed(1, day, catalog.MealDinner, 0))
	assert.NotEqual(t, base, subSeed(1, day, catalog.MealLunch, 1))
}
