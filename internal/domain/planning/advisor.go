package planning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/platewise/v1/internal/domain/catalog"
)

// Tuning advisor: a read-only analysis of a generated plan plus the
// configuration it was generated under. The output is purely advisory
// and feeds the admin tuning screen; nothing here mutates configuration.

// SuggestionKind tags what a suggestion targets.
type SuggestionKind string

const (
	SuggestionSetting SuggestionKind = "setting"
	SuggestionPool    SuggestionKind = "pool"
	SuggestionSlot    SuggestionKind = "slot"
)

// SuggestionSeverity grades how urgent a suggestion is.
type SuggestionSeverity string

const (
	SeverityInfo SuggestionSeverity = "info"
	SeverityWarn SuggestionSeverity = "warn"
)

// Suggestion is one advisory finding with a machine-resolvable target.
type Suggestion struct {
	Kind     SuggestionKind     `json:"kind"`
	Severity SuggestionSeverity `json:"severity"`
	Hint     string             `json:"hint"`
	Target   string             `json:"target"`
}

// AdvisorConfig is the configuration snapshot the advisor reads.
type AdvisorConfig struct {
	Settings   catalog.GeneratorSettings
	PoolCounts map[catalog.Category]int
}

// TuningSuggestions derives an ordered list of configuration
// suggestions from a generated plan. The output is deterministic for
// identical inputs: warnings sort before infos, ties keep first-found
// order, duplicates by target merge into the first occurrence.
func TuningSuggestions(plan *MealPlan, cfg AdvisorConfig) []Suggestion {
	if plan == nil {
		return nil
	}

	candidates := make([]Suggestion, 0, 8)
	mappers := []func(*MealPlan, AdvisorConfig) []Suggestion{
		fromForcedRepeats,
		fromPoolSizes,
		fromVegScores,
		fromSignatureCollisions,
	}
	for _, mapper := range mappers {
		candidates = append(candidates, mapper(plan, cfg)...)
	}

	deduped := dedupeSuggestions(candidates)
	sort.SliceStable(deduped, func(i, j int) bool {
		return severityRank(deduped[i].Severity) > severityRank(deduped[j].Severity)
	})
	return deduped
}

func fromForcedRepeats(plan *MealPlan, cfg AdvisorConfig) []Suggestion {
	forced := plan.Metadata.Generator.TemplateInfo.Quality.RepeatsForced
	if forced == 0 {
		return nil
	}
	return []Suggestion{
		{
			Kind:     SuggestionSetting,
			Severity: SeverityWarn,
			Hint: fmt.Sprintf("%d repeat caps were relaxed during generation; "+
				"raise templateRepeatCap7d/proteinRepeatCap7d or enlarge the pools", forced),
			Target: "settings.templateRepeatCap7d",
		},
	}
}

func fromPoolSizes(plan *MealPlan, cfg AdvisorConfig) []Suggestion {
	var out []Suggestion

	proteins := cfg.PoolCounts[catalog.CategoryProtein]
	if proteins > 0 && proteins <= cfg.Settings.ProteinRepeatCap7d*2 {
		out = append(out, Suggestion{
			Kind:     SuggestionPool,
			Severity: SeverityWarn,
			Hint: fmt.Sprintf("only %d proteins for a repeat cap of %d; variety will exhaust "+
				"within a week", proteins, cfg.Settings.ProteinRepeatCap7d),
			Target: "pool.protein",
		})
	}

	if vegetables := cfg.PoolCounts[catalog.CategoryVeg]; vegetables > 0 && vegetables < 4 {
		out = append(out, Suggestion{
			Kind:     SuggestionPool,
			Severity: SeverityInfo,
			Hint:     fmt.Sprintf("vegetable pool has %d items; two slots per meal drain it quickly", vegetables),
			Target:   "pool.veg",
		})
	}

	if cfg.Settings.MaxFlavorItems > 0 && cfg.PoolCounts[catalog.CategoryFlavor] == 0 {
		out = append(out, Suggestion{
			Kind:     SuggestionPool,
			Severity: SeverityInfo,
			Hint:     "maxFlavorItems is set but the flavor pool is empty",
			Target:   "pool.flavor",
		})
	}
	return out
}

func fromVegScores(plan *MealPlan, cfg AdvisorConfig) []Suggestion {
	qualities := plan.Metadata.Generator.TemplateInfo.MealQualities
	if len(qualities) == 0 {
		return nil
	}

	low := 0
	for _, quality := range qualities {
		if quality.Score <= cfg.Settings.VegScores.Low {
			low++
		}
	}
	if low*2 < len(qualities) {
		return nil
	}
	return []Suggestion{
		{
			Kind:     SuggestionSlot,
			Severity: SeverityWarn,
			Hint: fmt.Sprintf("%d of %d meals graded at the lowest vegetable score; "+
				"raise veg slot default grams or lower the thresholds", low, len(qualities)),
			Target: "slot.veg",
		},
	}
}

func fromSignatureCollisions(plan *MealPlan, cfg AdvisorConfig) []Suggestion {
	collisions := 0
	for _, quality := range plan.Metadata.Generator.TemplateInfo.MealQualities {
		for _, reason := range quality.Reasons {
			if strings.Contains(reason, "duplicate meal signature") {
				collisions++
			}
		}
	}
	if collisions == 0 {
		return nil
	}
	return []Suggestion{
		{
			Kind:     SuggestionSetting,
			Severity: SeverityInfo,
			Hint: fmt.Sprintf("%d meals repeated an exact ingredient signature; "+
				"raise signatureRetryLimit or add pool items", collisions),
			Target: "settings.signatureRetryLimit",
		},
	}
}

func severityRank(severity SuggestionSeverity) int {
	if severity == SeverityWarn {
		return 2
	}
	return 1
}

func dedupeSuggestions(items []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(items))
	out := make([]Suggestion, 0, len(items))
	for _, item := range items {
		if seen[item.Target] {
			continue
		}
		seen[item.Target] = true
		out = append(out, item)
	}
	return out
}
