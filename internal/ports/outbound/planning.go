// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/domain/planning"
)

// CatalogRepository loads the admin-curated configuration tables.
// The engine only ever reads; curation happens elsewhere.
type CatalogRepository interface {
	// ConfigRows returns every row tagged with one of the diet keys,
	// across all four configuration tables, in repository order
	ConfigRows(ctx context.Context, dietKeys []string) (planning.ConfigRows, error)
}

// CandidateSource supplies raw dynamic pool candidates for a diet,
// e.g. from an external product catalog feed
type CandidateSource interface {
	Candidates(ctx context.Context, dietKey string) ([]planning.RawCandidate, error)
}

// GuardrailTermSource supplies the hard-block ingredient terms
type GuardrailTermSource interface {
	ExcludeTerms(ctx context.Context) ([]string, error)
}

// PlanCache stores generated plans keyed by their full input fingerprint.
// Generation is deterministic, so a hit is always byte-equivalent to a
// fresh run under unchanged configuration.
type PlanCache interface {
	GetPlan(ctx context.Context, key string) (*planning.MealPlan, error)
	SetPlan(ctx context.Context, key string, plan *planning.MealPlan, ttl time.Duration) error
}

// GenerationMetrics records generation telemetry for monitoring
type GenerationMetrics interface {
	RecordGeneration(dietKey string, attempts int, duration time.Duration)
	RecordForcedRepeats(dietKey string, count int)
	RecordGuardrailViolations(dietKey string, count int)
	RecordSanityFailure(dietKey string)
	RecordCacheHit(dietKey string)
}
