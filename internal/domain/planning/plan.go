package planning

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
)

// RoleFlavor marks ingredient refs appended from the flavor pool, as
// opposed to the four template slot roles.
const RoleFlavor = "flavor"

// IngredientRef is one selected ingredient within a meal. Role is a
// template slot key (protein, veg1, veg2, fat) or RoleFlavor.
type IngredientRef struct {
	ItemKey string `json:"itemKey"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Grams   int    `json:"grams"`
}

// Meal is one generated meal.
type Meal struct {
	ID          uuid.UUID        `json:"id"`
	Slot        catalog.MealSlot `json:"slot"`
	Name        string           `json:"name"`
	TemplateID  string           `json:"templateId"`
	Ingredients []IngredientRef  `json:"ingredientRefs"`
}

// VegGrams sums the grams selected for the veg1 and veg2 roles.
func (m Meal) VegGrams() int {
	total := 0
	for _, ref := range m.Ingredients {
		if ref.Role == string(catalog.SlotVeg1) || ref.Role == string(catalog.SlotVeg2) {
			total += ref.Grams
		}
	}
	return total
}

// Day groups the meals generated for one calendar date.
type Day struct {
	Date  time.Time `json:"date"`
	Meals []Meal    `json:"meals"`
}

// MealQuality grades one generated meal for the tuning feedback loop.
type MealQuality struct {
	Date    string           `json:"date"`
	Slot    catalog.MealSlot `json:"slot"`
	Score   int              `json:"score"`
	Reasons []string         `json:"reasons"`
}

// PlanQuality aggregates quality telemetry across the whole plan.
type PlanQuality struct {
	RepeatsForced int `json:"repeatsForced"`
}

// TemplateInfo is the generator's quality telemetry block.
type TemplateInfo struct {
	Quality       PlanQuality   `json:"quality"`
	MealQualities []MealQuality `json:"mealQualities"`
}

// PoolMetrics describes the ingredient universe the plan drew from.
type PoolMetrics struct {
	Proteins                 int `json:"proteins"`
	Vegetables               int `json:"vegetables"`
	Fats                     int `json:"fats"`
	Flavors                  int `json:"flavors"`
	RemovedDuplicates        int `json:"removedDuplicates"`
	RemovedByGuardrailsTerms int `json:"removedByGuardrailsTerms"`
}

// GeneratorMetadata is the telemetry block attached to every result.
type GeneratorMetadata struct {
	Mode         string       `json:"mode"`
	Seed         int64        `json:"seed"`
	Attempts     int          `json:"attempts"`
	TemplateInfo TemplateInfo `json:"templateInfo"`
	PoolMetrics  PoolMetrics  `json:"poolMetrics"`
}

// Metadata wraps result metadata blocks.
type Metadata struct {
	Generator GeneratorMetadata `json:"generator"`
}

// MealPlan is the generated result. It is created fresh per generation
// call and treated as immutable once returned; a guardrails retry
// produces a new, independent plan rather than patching this one.
type MealPlan struct {
	Days     []Day    `json:"days"`
	Metadata Metadata `json:"metadata"`
}

// mealID derives a stable meal identifier so identical inputs replay
// byte-identical plans. Random UUIDs would break the determinism
// contract the compare/preview workflow depends on.
func mealID(seed int64, date time.Time, slot catalog.MealSlot, signature string) uuid.UUID {
	name := "platewise:meal:" + strconv.FormatInt(seed, 10) + ":" +
		date.Format(dateLayout) + ":" + string(slot) + ":" + signature
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}
