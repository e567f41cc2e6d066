package planning

import (
	"strings"
	"unicode"

	"github.com/platewise/v1/internal/domain/catalog"
)

// Pool sanitization: dynamically sourced candidates (e.g. from an
// external product catalog) are normalized, deduplicated and stripped
// of hard-blocked terms before they may join the generation pools.
// Pure and deterministic given identical inputs.

// RawCandidate is one unprocessed candidate ingredient.
type RawCandidate struct {
	Name     string           `json:"name"`
	NevoCode string           `json:"nevoCode,omitempty"`
	Category catalog.Category `json:"category"`
}

// CandidatePool holds sanitized candidates per non-flavor category.
type CandidatePool struct {
	Proteins   []catalog.PoolItem `json:"proteins"`
	Vegetables []catalog.PoolItem `json:"vegetables"`
	Fats       []catalog.PoolItem `json:"fats"`
}

// SanitizeMetrics counts what sanitization kept and dropped.
type SanitizeMetrics struct {
	Accepted                 int `json:"accepted"`
	RemovedDuplicates        int `json:"removedDuplicates"`
	RemovedByGuardrailsTerms int `json:"removedByGuardrailsTerms"`
}

// SanitizePool filters and normalizes raw candidates into per-category
// pools. Candidates with an empty normalized name or an unusable
// category are ignored; duplicates (by normalized item key within a
// category) and candidates containing a hard-block term are dropped
// and counted.
func SanitizePool(raw []RawCandidate, excludeTerms []string) (CandidatePool, SanitizeMetrics) {
	var pool CandidatePool
	var metrics SanitizeMetrics

	blocked := normalizeTerms(excludeTerms)
	seen := make(map[string]bool, len(raw))

	for _, candidate := range raw {
		name := NormalizeName(candidate.Name)
		if name == "" {
			continue
		}

		var target *[]catalog.PoolItem
		switch candidate.Category {
		case catalog.CategoryProtein:
			target = &pool.Proteins
		case catalog.CategoryVeg:
			target = &pool.Vegetables
		case catalog.CategoryFat:
			target = &pool.Fats
		default:
			// Flavor items are admin-curated only; anything else is noise.
			continue
		}

		if containsBlockedTerm(name, blocked) {
			metrics.RemovedByGuardrailsTerms++
			continue
		}

		key := ItemKey(candidate.Name, candidate.NevoCode)
		dedupeKey := string(candidate.Category) + "|" + key
		if seen[dedupeKey] {
			metrics.RemovedDuplicates++
			continue
		}
		seen[dedupeKey] = true

		*target = append(*target, catalog.PoolItem{
			Category: candidate.Category,
			ItemKey:  key,
			NevoCode: candidate.NevoCode,
			Name:     name,
			Active:   true,
		})
		metrics.Accepted++
	}

	return pool, metrics
}

// NormalizeName trims, lowercases and collapses internal whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// ItemKey computes the stable candidate identity: the external catalog
// code when one exists, otherwise a slug of the normalized name.
func ItemKey(name, nevoCode string) string {
	if code := strings.TrimSpace(nevoCode); code != "" {
		return "nevo:" + code
	}
	return "name:" + slugify(name)
}

// slugify reduces a name to lowercase letters and digits joined by
// single dashes.
func slugify(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range NormalizeName(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if normalized := NormalizeName(term); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

func containsBlockedTerm(normalizedName string, blocked []string) bool {
	for _, term := range blocked {
		if strings.Contains(normalizedName, term) {
			return true
		}
	}
	return false
}
