// Package monitoring provides prometheus instrumentation for plan
// generation
package monitoring

import (
	"strconv"
	"time"

	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GenerationMetricsCollector implements the outbound metrics port on
// prometheus collectors
type GenerationMetricsCollector struct {
	generations         *prometheus.CounterVec
	generationDuration  *prometheus.HistogramVec
	forcedRepeats       *prometheus.CounterVec
	guardrailViolations *prometheus.CounterVec
	sanityFailures      *prometheus.CounterVec
	cacheHits           *prometheus.CounterVec
}

// NewGenerationMetricsCollector registers the generation collectors on
// a registry (pass prometheus.DefaultRegisterer in production)
func NewGenerationMetricsCollector(reg prometheus.Registerer) *GenerationMetricsCollector {
	factory := promauto.With(reg)
	return &GenerationMetricsCollector{
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platewise",
			Subsystem: "generator",
			Name:      "plans_total",
			Help:      "Generated meal plans by diet key and attempt count",
		}, []string{"diet_key", "attempts"}),
		generationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "platewise",
			Subsystem: "generator",
			Name:      "duration_seconds",
			Help:      "Wall time of one full generation run",
			Buckets:   prometheus.DefBuckets,
		}, []string{"diet_key"}),
		forcedRepeats: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platewise",
			Subsystem: "generator",
			Name:      "forced_repeats_total",
			Help:      "Repeat-cap relaxations reported in plan telemetry",
		}, []string{"diet_key"}),
		guardrailViolations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platewise",
			Subsystem: "generator",
			Name:      "guardrail_violations_total",
			Help:      "Hard-block term hits still present after the retry",
		}, []string{"diet_key"}),
		sanityFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platewise",
			Subsystem: "generator",
			Name:      "sanity_failures_total",
			Help:      "Plans rejected by the structural sanity gate",
		}, []string{"diet_key"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platewise",
			Subsystem: "generator",
			Name:      "cache_hits_total",
			Help:      "Plans served from the plan cache",
		}, []string{"diet_key"}),
	}
}

// RecordGeneration counts one successful generation run
func (c *GenerationMetricsCollector) RecordGeneration(dietKey string, attempts int, duration time.Duration) {
	c.generations.WithLabelValues(dietKey, strconv.Itoa(attempts)).Inc()
	c.generationDuration.WithLabelValues(dietKey).Observe(duration.Seconds())
}

// RecordForcedRepeats counts repeat-cap relaxations
func (c *GenerationMetricsCollector) RecordForcedRepeats(dietKey string, count int) {
	c.forcedRepeats.WithLabelValues(dietKey).Add(float64(count))
}

// RecordGuardrailViolations counts violations that failed a run
func (c *GenerationMetricsCollector) RecordGuardrailViolations(dietKey string, count int) {
	c.guardrailViolations.WithLabelValues(dietKey).Add(float64(count))
}

// RecordSanityFailure counts sanity-gate rejections
func (c *GenerationMetricsCollector) RecordSanityFailure(dietKey string) {
	c.sanityFailures.WithLabelValues(dietKey).Inc()
}

// RecordCacheHit counts plan-cache hits
func (c *GenerationMetricsCollector) RecordCacheHit(dietKey string) {
	c.cacheHits.WithLabelValues(dietKey).Inc()
}

var _ outbound.GenerationMetrics = (*GenerationMetricsCollector)(nil)
