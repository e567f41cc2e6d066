package gorm

import (
	"sort"

	"github.com/platewise/v1/internal/domain/catalog"
)

// ModelToTemplate converts a template row plus its slots
func ModelToTemplate(model *TemplateModel) catalog.RecipeTemplate {
	slots := make([]catalog.TemplateSlot, 0, len(model.Slots))
	ordered := make([]TemplateSlotModel, len(model.Slots))
	copy(ordered, model.Slots)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	for _, slot := range ordered {
		slots = append(slots, catalog.TemplateSlot{
			Key: catalog.SlotKey(slot.SlotKey),
			Grams: catalog.GramRange{
				Min:     slot.GramsMin,
				Default: slot.GramsDef,
				Max:     slot.GramsMax,
			},
		})
	}

	return catalog.RecipeTemplate{
		ID:          model.ID,
		DietKey:     model.DietKey,
		DisplayName: model.DisplayName,
		StepCount:   model.StepCount,
		Active:      model.Active,
		Slots:       slots,
	}
}

// ModelToPoolItem converts a pool item row
func ModelToPoolItem(model *PoolItemModel) catalog.PoolItem {
	item := catalog.PoolItem{
		DietKey:  model.DietKey,
		Category: catalog.Category(model.Category),
		ItemKey:  model.ItemKey,
		NevoCode: model.NevoCode,
		Name:     model.Name,
		Active:   model.Active,
	}
	if model.GramsMin != nil && model.GramsDef != nil && model.GramsMax != nil {
		item.Grams = &catalog.GramRange{
			Min:     *model.GramsMin,
			Default: *model.GramsDef,
			Max:     *model.GramsMax,
		}
	}
	return item
}

// ModelToSettings converts a settings row
func ModelToSettings(model *SettingsModel) catalog.GeneratorSettings {
	return catalog.GeneratorSettings{
		DietKey:             model.DietKey,
		MaxIngredients:      model.MaxIngredients,
		MaxFlavorItems:      model.MaxFlavorItems,
		ProteinRepeatCap7d:  model.ProteinRepeatCap7d,
		TemplateRepeatCap7d: model.TemplateRepeatCap7d,
		SignatureRetryLimit: model.SignatureRetryLimit,
		VegThresholds: catalog.VegThresholds{
			Low:  model.VegThresholdLow,
			Mid:  model.VegThresholdMid,
			High: model.VegThresholdHigh,
		},
		VegScores: catalog.VegScores{
			Low:  model.VegScoreLow,
			Mid:  model.VegScoreMid,
			High: model.VegScoreHigh,
		},
	}
}

// ModelToNamePattern converts a name pattern row
func ModelToNamePattern(model *NamePatternModel) catalog.NamePattern {
	return catalog.NamePattern{
		DietKey:     model.DietKey,
		TemplateKey: model.TemplateKey,
		Slot:        catalog.MealSlot(model.Slot),
		Pattern:     model.Pattern,
		Active:      model.Active,
	}
}
