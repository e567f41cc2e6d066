package planning

import (
	"fmt"

	"github.com/platewise/v1/internal/domain/catalog"
)

// SanityReport is the outcome of the structural validity pass. Any
// issue is fatal to the caller: a plan that fails sanity must never be
// shown to an end user.
type SanityReport struct {
	OK     bool     `json:"ok"`
	Issues []string `json:"issues"`
}

// ValidateSanity runs the structural invariant checks over a finished
// plan: every requested day present exactly once, every requested slot
// present exactly once per day, non-empty meal names and ingredient
// lists, and gram values inside their configured ranges. It is a pure
// check independent of content quality.
func ValidateSanity(plan *MealPlan, req MealPlanRequest, cfg GenerationConfig) SanityReport {
	report := SanityReport{}
	if plan == nil {
		report.Issues = append(report.Issues, "plan is missing")
		return report
	}

	days := req.Days()
	if len(plan.Days) != len(days) {
		report.Issues = append(report.Issues,
			fmt.Sprintf("plan has %d days, request spans %d", len(plan.Days), len(days)))
	}

	seenDates := make(map[string]int, len(plan.Days))
	for i, day := range plan.Days {
		date := day.Date.Format(dateLayout)
		seenDates[date]++
		if i < len(days) && !day.Date.Equal(days[i]) {
			report.Issues = append(report.Issues,
				fmt.Sprintf("day %d is %s, expected %s", i, date, days[i].Format(dateLayout)))
		}
		validateDay(&report, day, req, cfg)
	}
	for _, want := range days {
		date := want.Format(dateLayout)
		if seenDates[date] == 0 {
			report.Issues = append(report.Issues, fmt.Sprintf("day %s is missing", date))
		} else if seenDates[date] > 1 {
			report.Issues = append(report.Issues, fmt.Sprintf("day %s appears %d times", date, seenDates[date]))
		}
	}

	report.OK = len(report.Issues) == 0
	return report
}

func validateDay(report *SanityReport, day Day, req MealPlanRequest, cfg GenerationConfig) {
	date := day.Date.Format(dateLayout)

	seenSlots := make(map[catalog.MealSlot]int, len(day.Meals))
	for _, meal := range day.Meals {
		seenSlots[meal.Slot]++
		validateMeal(report, date, meal, cfg)
	}
	for _, slot := range req.Slots {
		switch seenSlots[slot] {
		case 0:
			report.Issues = append(report.Issues, fmt.Sprintf("%s: slot %s is missing", date, slot))
		case 1:
		default:
			report.Issues = append(report.Issues,
				fmt.Sprintf("%s: slot %s appears %d times", date, slot, seenSlots[slot]))
		}
	}
	if extra := len(day.Meals) - len(req.Slots); extra > 0 {
		for slot, count := range seenSlots {
			if !requestedSlot(req, slot) {
				report.Issues = append(report.Issues,
					fmt.Sprintf("%s: unrequested slot %s present %d times", date, slot, count))
			}
		}
	}
}

func validateMeal(report *SanityReport, date string, meal Meal, cfg GenerationConfig) {
	where := fmt.Sprintf("%s/%s", date, meal.Slot)

	if meal.Name == "" {
		report.Issues = append(report.Issues, where+": meal name is empty")
	}
	if len(meal.Ingredients) == 0 {
		report.Issues = append(report.Issues, where+": ingredient list is empty")
		return
	}

	template, hasTemplate := cfg.Template(meal.TemplateID)
	if !hasTemplate {
		report.Issues = append(report.Issues,
			fmt.Sprintf("%s: unknown template %q", where, meal.TemplateID))
	}

	for _, ref := range meal.Ingredients {
		if ref.Role == RoleFlavor {
			item, ok := cfg.FlavorItem(ref.ItemKey)
			if !ok {
				report.Issues = append(report.Issues,
					fmt.Sprintf("%s: flavor item %q not in catalog", where, ref.ItemKey))
				continue
			}
			if !item.Grams.Contains(ref.Grams) {
				report.Issues = append(report.Issues,
					fmt.Sprintf("%s: flavor %q grams %d outside [%d,%d]",
						where, ref.ItemKey, ref.Grams, item.Grams.Min, item.Grams.Max))
			}
			continue
		}

		if !hasTemplate {
			continue
		}
		slot, ok := template.Slot(catalog.SlotKey(ref.Role))
		if !ok {
			report.Issues = append(report.Issues,
				fmt.Sprintf("%s: ingredient %q has unknown role %q", where, ref.ItemKey, ref.Role))
			continue
		}
		if !slot.Grams.Contains(ref.Grams) {
			report.Issues = append(report.Issues,
				fmt.Sprintf("%s: %s grams %d outside [%d,%d]",
					where, ref.Role, ref.Grams, slot.Grams.Min, slot.Grams.Max))
		}
	}
}

func requestedSlot(req MealPlanRequest, slot catalog.MealSlot) bool {
	for _, s := range req.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
