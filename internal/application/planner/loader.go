package planner

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
)

// loadConfig fetches the configuration rows for the requested diet key
// plus the default fallback and merges them into a generation config
func (s *PlannerService) loadConfig(ctx context.Context, dietKey string) (planning.GenerationConfig, error) {
	keys := []string{dietKey}
	if dietKey != catalog.DefaultDietKey {
		keys = append(keys, catalog.DefaultDietKey)
	}

	rows, err := s.catalog.ConfigRows(ctx, keys)
	if err != nil {
		return planning.GenerationConfig{}, errors.NewDatabaseError("load generation config", err)
	}

	cfg, err := planning.BuildGenerationConfig(dietKey, rows)
	if err != nil {
		return planning.GenerationConfig{}, errors.Wrap(err, "invalid generator settings")
	}
	return cfg, nil
}

// planCacheKey fingerprints every input that influences the generated
// plan. Allergies and dislikes are sorted so equivalent profiles share
// a key.
func planCacheKey(cmd inbound.GeneratePlanCommand) string {
	slots := make([]string, 0, len(cmd.Slots))
	for _, slot := range cmd.Slots {
		slots = append(slots, string(slot))
	}

	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%d|%d|%t",
		cmd.DietKey,
		cmd.Start.UTC().Format("2006-01-02"),
		cmd.End.UTC().Format("2006-01-02"),
		strings.Join(slots, ","),
		sortedLower(cmd.Allergies),
		sortedLower(cmd.Dislikes),
		cmd.CalorieTarget,
		cmd.Seed,
		cmd.EnforceGuardrails,
	)
	return fmt.Sprintf("platewise:plan:%x", h.Sum64())
}

func sortedLower(terms []string) string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		out = append(out, strings.ToLower(strings.TrimSpace(term)))
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}
