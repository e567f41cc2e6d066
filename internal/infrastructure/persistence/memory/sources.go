package memory

import (
	"context"

	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/ports/outbound"
)

// CandidateSource serves a fixed slice of raw candidates
type CandidateSource struct {
	candidates []planning.RawCandidate
}

// NewCandidateSource creates a static candidate source
func NewCandidateSource(candidates []planning.RawCandidate) outbound.CandidateSource {
	return &CandidateSource{candidates: candidates}
}

// Candidates returns the configured candidates regardless of diet key
func (s *CandidateSource) Candidates(ctx context.Context, dietKey string) ([]planning.RawCandidate, error) {
	return s.candidates, nil
}

// GuardrailTermSource serves a fixed hard-block term list
type GuardrailTermSource struct {
	terms []string
}

// NewGuardrailTermSource creates a static term source
func NewGuardrailTermSource(terms []string) outbound.GuardrailTermSource {
	return &GuardrailTermSource{terms: terms}
}

// ExcludeTerms returns the configured terms
func (s *GuardrailTermSource) ExcludeTerms(ctx context.Context) ([]string, error) {
	return s.terms, nil
}
