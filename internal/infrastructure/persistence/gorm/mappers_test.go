package gorm

import (
	"testing"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelToTemplateOrdersSlotsByPosition(t *testing.T) {
	model := &TemplateModel{
		ID:          "bowl",
		DietKey:     "default",
		DisplayName: "Nourish Bowl",
		StepCount:   4,
		Active:      true,
		Slots: []TemplateSlotModel{
			{SlotKey: "fat", GramsMin: 5, GramsDef: 15, GramsMax: 30, Position: 3},
			{SlotKey: "protein", GramsMin: 100, GramsDef: 150, GramsMax: 250, Position: 0},
			{SlotKey: "veg2", GramsMin: 50, GramsDef: 100, GramsMax: 200, Position: 2},
			{SlotKey: "veg1", GramsMin: 50, GramsDef: 100, GramsMax: 200, Position: 1},
		},
	}

	template := ModelToTemplate(model)

	require.NoError(t, template.Validate())
	require.Len(t, template.Slots, 4)
	assert.Equal(t, catalog.SlotProtein, template.Slots[0].Key)
	assert.Equal(t, catalog.SlotVeg1, template.Slots[1].Key)
	assert.Equal(t, catalog.SlotVeg2, template.Slots[2].Key)
	assert.Equal(t, catalog.SlotFat, template.Slots[3].Key)
	assert.Equal(t, catalog.GramRange{Min: 100, Default: 150, Max: 250}, template.Slots[0].Grams)
}

func TestModelToPoolItem(t *testing.T) {
	min, def, max := 5, 10, 25

	t.Run("FlavorWithGrams", func(t *testing.T) {
		model := &PoolItemModel{
			DietKey: "default", Category: "flavor", ItemKey: "name:pesto",
			Name: "pesto", Active: true,
			GramsMin: &min, GramsDef: &def, GramsMax: &max,
		}
		item := ModelToPoolItem(model)
		require.NoError(t, item.Validate())
		require.NotNil(t, item.Grams)
		assert.Equal(t, catalog.GramRange{Min: 5, Default: 10, Max: 25}, *item.Grams)
	})

	t.Run("ProteinWithoutGrams", func(t *testing.T) {
		model := &PoolItemModel{
			DietKey: "default", Category: "protein", ItemKey: "nevo:1001",
			NevoCode: "1001", Name: "chicken", Active: true,
		}
		item := ModelToPoolItem(model)
		require.NoError(t, item.Validate())
		assert.Nil(t, item.Grams)
	})
}

func TestModelToSettings(t *testing.T) {
	model := &SettingsModel{
		DietKey:             "keto",
		MaxIngredients:      8,
		MaxFlavorItems:      1,
		ProteinRepeatCap7d:  3,
		TemplateRepeatCap7d: 4,
		SignatureRetryLimit: 6,
		VegThresholdLow:     70, VegThresholdMid: 140, VegThresholdHigh: 220,
		VegScoreLow: 1, VegScoreMid: 3, VegScoreHigh: 5,
	}

	settings := ModelToSettings(model)

	require.NoError(t, settings.Validate())
	assert.Equal(t, "keto", settings.DietKey)
	assert.Equal(t, catalog.VegThresholds{Low: 70, Mid: 140, High: 220}, settings.VegThresholds)
	assert.Equal(t, catalog.VegScores{Low: 1, Mid: 3, High: 5}, settings.VegScores)
}

func TestModelToNamePattern(t *testing.T) {
	model := &NamePatternModel{
		DietKey: "default", TemplateKey: "bowl", Slot: "lunch",
		Pattern: "{templateName} with {protein}", Active: true,
	}

	pattern := ModelToNamePattern(model)

	require.NoError(t, pattern.Validate())
	assert.Equal(t, catalog.MealLunch, pattern.Slot)
}
