// Package catalog contains the curated configuration model that drives
// meal-plan generation: recipe templates, ingredient pools, tuning
// settings and naming patterns. All catalog values are loaded read-only
// per generation call and validated at construction time.
package catalog

// DefaultDietKey is the sentinel diet key whose rows back-fill gaps in
// diet-specific configuration.
const DefaultDietKey = "default"

// SlotKey identifies a structural role inside a recipe template.
type SlotKey string

const (
	SlotProtein SlotKey = "protein"
	SlotVeg1    SlotKey = "veg1"
	SlotVeg2    SlotKey = "veg2"
	SlotFat     SlotKey = "fat"
)

// TemplateSlotKeys lists the fixed slot set every template must carry,
// in canonical order.
var TemplateSlotKeys = [4]SlotKey{SlotProtein, SlotVeg1, SlotVeg2, SlotFat}

// IsValid reports whether the slot key is one of the four fixed values.
func (k SlotKey) IsValid() bool {
	switch k {
	case SlotProtein, SlotVeg1, SlotVeg2, SlotFat:
		return true
	}
	return false
}

// Category returns the ingredient pool category a slot draws from.
func (k SlotKey) Category() Category {
	switch k {
	case SlotProtein:
		return CategoryProtein
	case SlotVeg1, SlotVeg2:
		return CategoryVeg
	case SlotFat:
		return CategoryFat
	}
	return ""
}

// Category identifies an ingredient pool.
type Category string

const (
	CategoryProtein Category = "protein"
	CategoryVeg     Category = "veg"
	CategoryFat     Category = "fat"
	CategoryFlavor  Category = "flavor"
)

// IsValid reports whether the category is a known pool category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryProtein, CategoryVeg, CategoryFat, CategoryFlavor:
		return true
	}
	return false
}

// MealSlot identifies a meal-time role within a day.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
)

// IsValid reports whether the meal slot is a known value.
func (m MealSlot) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Gram ceilings for the two places gram ranges appear.
const (
	TemplateSlotGramCeiling = 2000
	FlavorItemGramCeiling   = 500
)

// GramRange is an inclusive serving-size range in grams.
type GramRange struct {
	Min     int `json:"min"`
	Default int `json:"default"`
	Max     int `json:"max"`
}

// Validate enforces 0 < Min <= Default <= Max <= ceiling.
func (g GramRange) Validate(ceiling int) error {
	if g.Min <= 0 {
		return ErrGramsNotPositive
	}
	if g.Min > g.Default || g.Default > g.Max {
		return ErrGramRangeOrder
	}
	if g.Max > ceiling {
		return ErrGramsAboveCeiling
	}
	return nil
}

// Contains reports whether grams falls inside the range.
func (g GramRange) Contains(grams int) bool {
	return grams >= g.Min && grams <= g.Max
}

// Clamp constrains grams to the range.
func (g GramRange) Clamp(grams int) int {
	if grams < g.Min {
		return g.Min
	}
	if grams > g.Max {
		return g.Max
	}
	return grams
}
