package planning

import "github.com/platewise/v1/internal/domain/catalog"

// Pool merging: the final per-slot ingredient universe is the union of
// admin-curated pool items and sanitized dynamic candidates. Admin
// entries win on key collision since curation implies deliberate
// overrides; flavor items are admin-curated only.

// MergedPools is the ingredient universe a generation run draws from.
type MergedPools struct {
	ByCategory map[catalog.Category][]catalog.PoolItem
	Metrics    PoolMetrics
}

// Items returns the pool for a category.
func (m MergedPools) Items(category catalog.Category) []catalog.PoolItem {
	return m.ByCategory[category]
}

// MergePools unions the configuration's curated pool items with a
// sanitized dynamic candidate pool. Order is deterministic: curated
// items first in configuration order, then dynamic candidates in
// sanitized order.
func MergePools(cfg GenerationConfig, dynamic CandidatePool, sanitized SanitizeMetrics) MergedPools {
	merged := MergedPools{
		ByCategory: make(map[catalog.Category][]catalog.PoolItem, 4),
	}
	merged.Metrics.RemovedDuplicates = sanitized.RemovedDuplicates
	merged.Metrics.RemovedByGuardrailsTerms = sanitized.RemovedByGuardrailsTerms

	dynamicByCategory := map[catalog.Category][]catalog.PoolItem{
		catalog.CategoryProtein: dynamic.Proteins,
		catalog.CategoryVeg:     dynamic.Vegetables,
		catalog.CategoryFat:     dynamic.Fats,
	}

	for _, category := range []catalog.Category{
		catalog.CategoryProtein,
		catalog.CategoryVeg,
		catalog.CategoryFat,
		catalog.CategoryFlavor,
	} {
		seen := make(map[string]bool)
		var items []catalog.PoolItem
		for _, item := range cfg.PoolItems[category] {
			if seen[item.ItemKey] {
				continue
			}
			seen[item.ItemKey] = true
			items = append(items, item)
		}
		for _, item := range dynamicByCategory[category] {
			if seen[item.ItemKey] {
				continue
			}
			seen[item.ItemKey] = true
			items = append(items, item)
		}
		merged.ByCategory[category] = items
	}

	merged.Metrics.Proteins = len(merged.ByCategory[catalog.CategoryProtein])
	merged.Metrics.Vegetables = len(merged.ByCategory[catalog.CategoryVeg])
	merged.Metrics.Fats = len(merged.ByCategory[catalog.CategoryFat])
	merged.Metrics.Flavors = len(merged.ByCategory[catalog.CategoryFlavor])

	return merged
}
