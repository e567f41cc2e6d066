package planning

import "github.com/platewise/v1/internal/domain/catalog"

// GenerationConfig is the immutable configuration one generation run
// operates on, already merged across the requested diet key and the
// "default" fallback rows.
type GenerationConfig struct {
	DietKey      string
	Templates    []catalog.RecipeTemplate
	PoolItems    map[catalog.Category][]catalog.PoolItem
	Settings     catalog.GeneratorSettings
	NamePatterns []catalog.NamePattern
}

// ConfigRows holds the raw configuration rows for a diet key plus the
// default-fallback rows, in repository order.
type ConfigRows struct {
	Templates    []catalog.RecipeTemplate
	PoolItems    []catalog.PoolItem
	Settings     []catalog.GeneratorSettings
	NamePatterns []catalog.NamePattern
}

// BuildGenerationConfig merges configuration rows into an immutable
// GenerationConfig. For every table, rows tagged with the requested
// diet key take precedence and "default" rows fill the gaps.
//
// Inactive or structurally invalid templates, pool items and name
// patterns are silently excluded: that is a content-curation concern,
// not a generation-time failure. Settings, by contrast, must be valid
// because generation cannot proceed on malformed tuning values.
func BuildGenerationConfig(dietKey string, rows ConfigRows) (GenerationConfig, error) {
	cfg := GenerationConfig{
		DietKey:   dietKey,
		PoolItems: make(map[catalog.Category][]catalog.PoolItem, 4),
	}

	// Templates: dedup by template id, diet-specific instance wins.
	seenTemplates := make(map[string]bool, len(rows.Templates))
	for _, pass := range []string{dietKey, catalog.DefaultDietKey} {
		for _, tpl := range rows.Templates {
			if tpl.DietKey != pass || seenTemplates[tpl.ID] {
				continue
			}
			seenTemplates[tpl.ID] = true
			if !tpl.Active || tpl.Validate() != nil {
				continue
			}
			cfg.Templates = append(cfg.Templates, tpl)
		}
	}

	// Pool items: dedup by (category, itemKey), diet-specific wins.
	seenItems := make(map[string]bool, len(rows.PoolItems))
	for _, pass := range []string{dietKey, catalog.DefaultDietKey} {
		for _, item := range rows.PoolItems {
			if item.DietKey != pass {
				continue
			}
			key := string(item.Category) + "|" + item.ItemKey
			if seenItems[key] {
				continue
			}
			seenItems[key] = true
			if !item.Active || item.Validate() != nil {
				continue
			}
			cfg.PoolItems[item.Category] = append(cfg.PoolItems[item.Category], item)
		}
	}

	// Settings: diet-specific row, else default row, else hard-coded.
	cfg.Settings = catalog.DefaultGeneratorSettings()
	for _, pass := range []string{catalog.DefaultDietKey, dietKey} {
		for _, settings := range rows.Settings {
			if settings.DietKey == pass {
				cfg.Settings = settings
			}
		}
	}
	if err := cfg.Settings.Validate(); err != nil {
		return GenerationConfig{}, err
	}

	// Name patterns: dedup by (templateKey, slot), diet-specific wins.
	seenPatterns := make(map[string]bool, len(rows.NamePatterns))
	for _, pass := range []string{dietKey, catalog.DefaultDietKey} {
		for _, pattern := range rows.NamePatterns {
			if pattern.DietKey != pass {
				continue
			}
			key := pattern.TemplateKey + "|" + string(pattern.Slot)
			if seenPatterns[key] {
				continue
			}
			seenPatterns[key] = true
			if !pattern.Active || pattern.Validate() != nil {
				continue
			}
			cfg.NamePatterns = append(cfg.NamePatterns, pattern)
		}
	}

	return cfg, nil
}

// NamePatternFor finds the active pattern for a template and meal slot.
func (c GenerationConfig) NamePatternFor(templateKey string, slot catalog.MealSlot) (catalog.NamePattern, bool) {
	for _, pattern := range c.NamePatterns {
		if pattern.TemplateKey == templateKey && pattern.Slot == slot {
			return pattern, true
		}
	}
	return catalog.NamePattern{}, false
}

// Template finds a template by id.
func (c GenerationConfig) Template(id string) (catalog.RecipeTemplate, bool) {
	for _, tpl := range c.Templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return catalog.RecipeTemplate{}, false
}

// FlavorItem finds a flavor pool item by key.
func (c GenerationConfig) FlavorItem(itemKey string) (catalog.PoolItem, bool) {
	for _, item := range c.PoolItems[catalog.CategoryFlavor] {
		if item.ItemKey == itemKey {
			return item, true
		}
	}
	return catalog.PoolItem{}, false
}
