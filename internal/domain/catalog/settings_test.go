package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeneratorSettings(t *testing.T) {
	settings := DefaultGeneratorSettings()
	require.NoError(t, settings.Validate())

	assert.Equal(t, 10, settings.MaxIngredients)
	assert.Equal(t, 2, settings.MaxFlavorItems)
	assert.Equal(t, 2, settings.ProteinRepeatCap7d)
	assert.Equal(t, 3, settings.TemplateRepeatCap7d)
	assert.Equal(t, 8, settings.SignatureRetryLimit)
	assert.Equal(t, VegThresholds{Low: 80, Mid: 150, High: 250}, settings.VegThresholds)
	assert.Equal(t, VegScores{Low: 1, Mid: 2, High: 4}, settings.VegScores)
}

func TestGeneratorSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorSettings)
		want   error
	}{
		{"zero max ingredients", func(s *GeneratorSettings) { s.MaxIngredients = 0 }, ErrSettingsNotPositive},
		{"zero protein cap", func(s *GeneratorSettings) { s.ProteinRepeatCap7d = 0 }, ErrSettingsNotPositive},
		{"zero retry limit", func(s *GeneratorSettings) { s.SignatureRetryLimit = 0 }, ErrSettingsNotPositive},
		{"descending thresholds", func(s *GeneratorSettings) { s.VegThresholds = VegThresholds{Low: 200, Mid: 150, High: 250} }, ErrVegThresholdOrder},
		{"descending scores", func(s *GeneratorSettings) { s.VegScores = VegScores{Low: 4, Mid: 2, High: 1} }, ErrVegScoreOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultGeneratorSettings()
			tt.mutate(&settings)
			assert.Equal(t, tt.want, settings.Validate())
		})
	}
}

func TestVegScoreFor(t *testing.T) {
	settings := DefaultGeneratorSettings()

	tests := []struct {
		grams int
		want  int
	}{
		{0, 1},
		{79, 1},    // strictly below low threshold
		{80, 2},    // at low threshold scores mid
		{150, 2},
		{249, 2},
		{250, 4},   // at high threshold scores high
		{400, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, settings.VegScoreFor(tt.grams), "grams=%d", tt.grams)
	}
}

func TestNamePatternRender(t *testing.T) {
	pattern := NamePattern{
		DietKey:     DefaultDietKey,
		TemplateKey: "bowl",
		Slot:        MealLunch,
		Pattern:     "{templateName} with {protein} and {veg1}",
		Active:      true,
	}
	require.NoError(t, pattern.Validate())

	name := pattern.Render(map[string]string{
		TokenTemplateName: "Nourish Bowl",
		TokenProtein:      "chicken",
		TokenVeg1:         "broccoli",
	})
	assert.Equal(t, "Nourish Bowl with chicken and broccoli", name)

	// Missing values collapse cleanly instead of leaving double spaces.
	name = pattern.Render(map[string]string{TokenProtein: "tofu"})
	assert.Equal(t, "with tofu and", name)
}

func TestNamePatternValidate(t *testing.T) {
	pattern := NamePattern{Pattern: "   ", Slot: MealLunch}
	assert.Equal(t, ErrPatternRequired, pattern.Validate())

	pattern = NamePattern{Pattern: "{templateName}", Slot: MealSlot("brunch")}
	assert.Equal(t, ErrInvalidMealSlot, pattern.Validate())
}
