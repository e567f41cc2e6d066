package planning

import (
	"testing"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advisorConfig() AdvisorConfig {
	return AdvisorConfig{
		Settings: catalog.DefaultGeneratorSettings(),
		PoolCounts: map[catalog.Category]int{
			catalog.CategoryProtein: 8,
			catalog.CategoryVeg:     8,
			catalog.CategoryFat:     3,
			catalog.CategoryFlavor:  3,
		},
	}
}

func planWithTelemetry(mutate func(*GeneratorMetadata)) *MealPlan {
	plan := &MealPlan{}
	plan.Metadata.Generator = GeneratorMetadata{
		Mode: GeneratorMode,
		TemplateInfo: TemplateInfo{
			MealQualities: []MealQuality{
				{Date: "2026-03-02", Slot: catalog.MealLunch, Score: 2},
				{Date: "2026-03-03", Slot: catalog.MealLunch, Score: 4},
			},
		},
	}
	if mutate != nil {
		mutate(&plan.Metadata.Generator)
	}
	return plan
}

func suggestionTargets(items []Suggestion) []string {
	targets := make([]string, 0, len(items))
	for _, item := range items {
		targets = append(targets, item.Target)
	}
	return targets
}

func TestTuningSuggestionsNilPlan(t *testing.T) {
	assert.Nil(t, TuningSuggestions(nil, advisorConfig()))
}

func TestTuningSuggestionsHealthyPlanIsQuiet(t *testing.T) {
	assert.Empty(t, TuningSuggestions(planWithTelemetry(nil), advisorConfig()))
}

func TestTuningSuggestionsForcedRepeats(t *testing.T) {
	plan := planWithTelemetry(func(md *GeneratorMetadata) {
		md.TemplateInfo.Quality.RepeatsForced = 9
	})

	suggestions := TuningSuggestions(plan, advisorConfig())

	require.Len(t, suggestions, 1)
	assert.Equal(t, SuggestionSetting, suggestions[0].Kind)
	assert.Equal(t, SeverityWarn, suggestions[0].Severity)
	assert.Equal(t, "settings.templateRepeatCap7d", suggestions[0].Target)
	assert.Contains(t, suggestions[0].Hint, "9 repeat caps were relaxed")
}

func TestTuningSuggestionsSmallPools(t *testing.T) {
	cfg := advisorConfig()
	cfg.PoolCounts[catalog.CategoryProtein] = 3 // at most cap*2 = 4
	cfg.PoolCounts[catalog.CategoryVeg] = 3
	cfg.PoolCounts[catalog.CategoryFlavor] = 0

	suggestions := TuningSuggestions(planWithTelemetry(nil), cfg)

	targets := suggestionTargets(suggestions)
	assert.Contains(t, targets, "pool.protein")
	assert.Contains(t, targets, "pool.veg")
	assert.Contains(t, targets, "pool.flavor")
}

func TestTuningSuggestionsLowVegScores(t *testing.T) {
	plan := planWithTelemetry(func(md *GeneratorMetadata) {
		md.TemplateInfo.MealQualities = []MealQuality{
			{Score: 1}, {Score: 1}, {Score: 1}, {Score: 4},
		}
	})

	suggestions := TuningSuggestions(plan, advisorConfig())

	require.Len(t, suggestions, 1)
	assert.Equal(t, SuggestionSlot, suggestions[0].Kind)
	assert.Equal(t, "slot.veg", suggestions[0].Target)
	assert.Contains(t, suggestions[0].Hint, "3 of 4 meals")
}

func TestTuningSuggestionsSignatureCollisions(t *testing.T) {
	plan := planWithTelemetry(func(md *GeneratorMetadata) {
		md.TemplateInfo.MealQualities = []MealQuality{
			{Score: 2, Reasons: []string{"duplicate meal signature accepted after 8 redraws"}},
			{Score: 2},
		}
	})

	suggestions := TuningSuggestions(plan, advisorConfig())

	require.Len(t, suggestions, 1)
	assert.Equal(t, "settings.signatureRetryLimit", suggestions[0].Target)
	assert.Equal(t, SeverityInfo, suggestions[0].Severity)
}

func TestTuningSuggestionsWarnSortsBeforeInfo(t *testing.T) {
	cfg := advisorConfig()
	cfg.PoolCounts[catalog.CategoryFlavor] = 0 // info
	plan := planWithTelemetry(func(md *GeneratorMetadata) {
		md.TemplateInfo.Quality.RepeatsForced = 2 // warn
		md.TemplateInfo.MealQualities = []MealQuality{
			{Score: 2, Reasons: []string{"duplicate meal signature accepted after 3 redraws"}},
		}
	})

	suggestions := TuningSuggestions(plan, cfg)

	require.Len(t, suggestions, 3)
	assert.Equal(t, SeverityWarn, suggestions[0].Severity)
	assert.Equal(t, "settings.templateRepeatCap7d", suggestions[0].Target)
	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t,
			severityRank(suggestions[i].Severity), severityRank(suggestions[i-1].Severity),
			"warnings must sort before infos")
	}
}

func TestTuningSuggestionsEndToEnd(t *testing.T) {
	// Starved single-choice pools force repeats and collisions on a
	// real generated plan; the advisor must surface both.
	items := []catalog.PoolItem{
		configItem("default", catalog.CategoryProtein, "chicken"),
		configItem("default", catalog.CategoryVeg, "broccoli"),
		configItem("default", catalog.CategoryFat, "olive oil"),
	}
	cfg, pools := suiteConfig(catalog.DefaultGeneratorSettings(), items...)
	req := weekRequest(catalog.MealLunch)

	plan, err := Generate(req, cfg, pools, 5)
	require.NoError(t, err)

	suggestions := TuningSuggestions(plan, AdvisorConfig{
		Settings:   cfg.Settings,
		PoolCounts: map[catalog.Category]int{catalog.CategoryProtein: 1, catalog.CategoryVeg: 1, catalog.CategoryFat: 1},
	})

	targets := suggestionTargets(suggestions)
	assert.Contains(t, targets, "settings.templateRepeatCap7d")
	assert.Contains(t, targets, "pool.protein")
	assert.Contains(t, targets, "settings.signatureRetryLimit")
}
