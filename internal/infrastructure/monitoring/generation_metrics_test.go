package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGenerationMetricsCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewGenerationMetricsCollector(registry)

	collector.RecordGeneration("default", 1, 25*time.Millisecond)
	collector.RecordGeneration("default", 2, 40*time.Millisecond)
	collector.RecordForcedRepeats("default", 9)
	collector.RecordGuardrailViolations("keto", 2)
	collector.RecordSanityFailure("default")
	collector.RecordCacheHit("default")

	assert.Equal(t, float64(1),
		testutil.ToFloat64(collector.generations.WithLabelValues("default", "1")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(collector.generations.WithLabelValues("default", "2")))
	assert.Equal(t, float64(9),
		testutil.ToFloat64(collector.forcedRepeats.WithLabelValues("default")))
	assert.Equal(t, float64(2),
		testutil.ToFloat64(collector.guardrailViolations.WithLabelValues("keto")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(collector.sanityFailures.WithLabelValues("default")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(collector.cacheHits.WithLabelValues("default")))
}
