// Package memory provides fixture-backed in-memory adapters for the
// outbound planning ports, used by tests and the offline demo
package memory

import (
	"context"
	"sync"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/ports/outbound"
)

// CatalogRepository holds configuration rows in memory
type CatalogRepository struct {
	mutex sync.RWMutex
	rows  planning.ConfigRows
}

// NewCatalogRepository creates a repository seeded with the given rows
func NewCatalogRepository(rows planning.ConfigRows) outbound.CatalogRepository {
	return &CatalogRepository{rows: rows}
}

// NewFixtureCatalogRepository creates a repository seeded with a small
// default-diet catalog good enough to generate real plans
func NewFixtureCatalogRepository() outbound.CatalogRepository {
	return NewCatalogRepository(FixtureRows())
}

// ConfigRows returns rows matching the requested diet keys, preserving
// seed order within each table
func (r *CatalogRepository) ConfigRows(ctx context.Context, dietKeys []string) (planning.ConfigRows, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	wanted := make(map[string]bool, len(dietKeys))
	for _, key := range dietKeys {
		wanted[key] = true
	}

	var out planning.ConfigRows
	for _, row := range r.rows.Templates {
		if wanted[row.DietKey] {
			out.Templates = append(out.Templates, row)
		}
	}
	for _, row := range r.rows.PoolItems {
		if wanted[row.DietKey] {
			out.PoolItems = append(out.PoolItems, row)
		}
	}
	for _, row := range r.rows.Settings {
		if wanted[row.DietKey] {
			out.Settings = append(out.Settings, row)
		}
	}
	for _, row := range r.rows.NamePatterns {
		if wanted[row.DietKey] {
			out.NamePatterns = append(out.NamePatterns, row)
		}
	}
	return out, nil
}

// FixtureRows is the seed catalog: two templates, a modest set of pool
// items and lunch/dinner name patterns, all on the default diet key
func FixtureRows() planning.ConfigRows {
	gram := func(min, def, max int) catalog.GramRange {
		return catalog.GramRange{Min: min, Default: def, Max: max}
	}
	item := func(category catalog.Category, name string) catalog.PoolItem {
		return catalog.PoolItem{
			DietKey:  catalog.DefaultDietKey,
			Category: category,
			ItemKey:  planning.ItemKey(name, ""),
			Name:     planning.NormalizeName(name),
			Active:   true,
		}
	}
	flavor := func(name string, grams catalog.GramRange) catalog.PoolItem {
		f := item(catalog.CategoryFlavor, name)
		f.Grams = &grams
		return f
	}

	return planning.ConfigRows{
		Templates: []catalog.RecipeTemplate{
			{
				ID: "bowl", DietKey: catalog.DefaultDietKey, DisplayName: "Nourish Bowl",
				StepCount: 4, Active: true,
				Slots: []catalog.TemplateSlot{
					{Key: catalog.SlotProtein, Grams: gram(100, 150, 250)},
					{Key: catalog.SlotVeg1, Grams: gram(50, 100, 200)},
					{Key: catalog.SlotVeg2, Grams: gram(50, 100, 200)},
					{Key: catalog.SlotFat, Grams: gram(5, 15, 30)},
				},
			},
			{
				ID: "skillet", DietKey: catalog.DefaultDietKey, DisplayName: "Weeknight Skillet",
				StepCount: 5, Active: true,
				Slots: []catalog.TemplateSlot{
					{Key: catalog.SlotProtein, Grams: gram(120, 180, 260)},
					{Key: catalog.SlotVeg1, Grams: gram(80, 120, 220)},
					{Key: catalog.SlotVeg2, Grams: gram(40, 80, 160)},
					{Key: catalog.SlotFat, Grams: gram(10, 20, 40)},
				},
			},
		},
		PoolItems: []catalog.PoolItem{
			item(catalog.CategoryProtein, "chicken thigh"),
			item(catalog.CategoryProtein, "tofu"),
			item(catalog.CategoryProtein, "salmon"),
			item(catalog.CategoryProtein, "lentils"),
			item(catalog.CategoryProtein, "turkey breast"),
			item(catalog.CategoryVeg, "broccoli"),
			item(catalog.CategoryVeg, "carrot"),
			item(catalog.CategoryVeg, "spinach"),
			item(catalog.CategoryVeg, "zucchini"),
			item(catalog.CategoryVeg, "bell pepper"),
			item(catalog.CategoryVeg, "green beans"),
			item(catalog.CategoryFat, "olive oil"),
			item(catalog.CategoryFat, "butter"),
			item(catalog.CategoryFat, "tahini"),
			flavor("pesto", gram(10, 20, 40)),
			flavor("soy sauce", gram(5, 10, 20)),
			flavor("harissa", gram(5, 10, 15)),
		},
		NamePatterns: []catalog.NamePattern{
			{
				DietKey: catalog.DefaultDietKey, TemplateKey: "bowl", Slot: catalog.MealLunch,
				Pattern: "{templateName} with {protein} and {veg1}", Active: true,
			},
			{
				DietKey: catalog.DefaultDietKey, TemplateKey: "skillet", Slot: catalog.MealDinner,
				Pattern: "{protein} {templateName}", Active: true,
			},
		},
	}
}
