// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
)

// CatalogFactory produces valid catalog rows from a seeded faker, so a
// test can ask for "a diet with 8 proteins" without hand-writing rows.
// The same seed always yields the same catalog.
type CatalogFactory struct {
	faker   *gofakeit.Faker
	dietKey string
	serial  int
}

// NewCatalogFactory creates a factory emitting rows for the given diet key
func NewCatalogFactory(seed int64, dietKey string) *CatalogFactory {
	return &CatalogFactory{
		faker:   gofakeit.New(seed),
		dietKey: dietKey,
	}
}

func (f *CatalogFactory) next() int {
	f.serial++
	return f.serial
}

// Template builds a valid active template with the canonical slot set
func (f *CatalogFactory) Template() catalog.RecipeTemplate {
	id := fmt.Sprintf("tpl-%s-%d", f.dietKey, f.next())
	return catalog.RecipeTemplate{
		ID:          id,
		DietKey:     f.dietKey,
		DisplayName: f.faker.Dinner(),
		Slots: []catalog.TemplateSlot{
			{Key: catalog.SlotProtein, Grams: catalog.GramRange{Min: 100, Default: 150, Max: 250}},
			{Key: catalog.SlotVeg1, Grams: catalog.GramRange{Min: 80, Default: 150, Max: 300}},
			{Key: catalog.SlotVeg2, Grams: catalog.GramRange{Min: 50, Default: 100, Max: 200}},
			{Key: catalog.SlotFat, Grams: catalog.GramRange{Min: 5, Default: 15, Max: 30}},
		},
		StepCount: f.faker.Number(2, 6),
		Active:    true,
	}
}

// Protein builds an active protein pool item with a fake NEVO code
func (f *CatalogFactory) Protein() catalog.PoolItem {
	return f.poolItem(catalog.CategoryProtein, nil)
}

// Vegetable builds an active vegetable pool item
func (f *CatalogFactory) Vegetable() catalog.PoolItem {
	return f.poolItem(catalog.CategoryVeg, nil)
}

// Fat builds an active fat pool item
func (f *CatalogFactory) Fat() catalog.PoolItem {
	return f.poolItem(catalog.CategoryFat, nil)
}

// Flavor builds an active flavor pool item with its own gram range
func (f *CatalogFactory) Flavor() catalog.PoolItem {
	return f.poolItem(catalog.CategoryFlavor, &catalog.GramRange{Min: 5, Default: 10, Max: 25})
}

func (f *CatalogFactory) poolItem(category catalog.Category, grams *catalog.GramRange) catalog.PoolItem {
	n := f.next()
	name := fmt.Sprintf("%s %s %d", f.faker.AdjectiveDescriptive(), f.faker.Lunch(), n)
	return catalog.PoolItem{
		DietKey:  f.dietKey,
		Category: category,
		ItemKey:  fmt.Sprintf("%s-%s-%d", f.dietKey, category, n),
		NevoCode: fmt.Sprintf("%04d", 1000+n),
		Name:     name,
		Active:   true,
		Grams:    grams,
	}
}

// Settings builds a valid settings row for the factory's diet key
func (f *CatalogFactory) Settings() catalog.GeneratorSettings {
	settings := catalog.DefaultGeneratorSettings()
	settings.DietKey = f.dietKey
	return settings
}

// ConfigRows assembles a complete, generation-ready row set with the
// requested pool sizes and one template per templateCount.
func (f *CatalogFactory) ConfigRows(templateCount, proteins, vegetables, fats, flavors int) planning.ConfigRows {
	rows := planning.ConfigRows{
		Settings: []catalog.GeneratorSettings{f.Settings()},
	}
	for i := 0; i < templateCount; i++ {
		rows.Templates = append(rows.Templates, f.Template())
	}
	for i := 0; i < proteins; i++ {
		rows.PoolItems = append(rows.PoolItems, f.Protein())
	}
	for i := 0; i < vegetables; i++ {
		rows.PoolItems = append(rows.PoolItems, f.Vegetable())
	}
	for i := 0; i < fats; i++ {
		rows.PoolItems = append(rows.PoolItems, f.Fat())
	}
	for i := 0; i < flavors; i++ {
		rows.PoolItems = append(rows.PoolItems, f.Flavor())
	}
	return rows
}

// Candidates builds raw dynamic-source candidates that still need
// sanitization before use.
func (f *CatalogFactory) Candidates(category catalog.Category, count int) []planning.RawCandidate {
	candidates := make([]planning.RawCandidate, 0, count)
	for i := 0; i < count; i++ {
		n := f.next()
		candidates = append(candidates, planning.RawCandidate{
			Name:     fmt.Sprintf("%s %s %d", f.faker.AdjectiveDescriptive(), f.faker.Vegetable(), n),
			NevoCode: fmt.Sprintf("%04d", 5000+n),
			Category: category,
		})
	}
	return candidates
}
