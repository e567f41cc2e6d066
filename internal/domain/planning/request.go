package planning

import (
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
)

// dateLayout is the canonical day key used in sub-seeds and telemetry.
const dateLayout = "2006-01-02"

// MaxPlanDays bounds the request date range so worst-case generation
// cost stays provable (days x slots x signatureRetryLimit draws).
const MaxPlanDays = 31

// Profile carries the per-user inputs that influence generation.
type Profile struct {
	DietKey         string   `json:"dietKey"`
	Allergies       []string `json:"allergies,omitempty"`
	Dislikes        []string `json:"dislikes,omitempty"`
	CalorieTarget   int      `json:"calorieTarget,omitempty"`
	PrepPreferences []string `json:"prepPreferences,omitempty"`
}

// MealPlanRequest describes the plan to synthesize: an inclusive date
// range and the ordered meal slots to fill on each day.
type MealPlanRequest struct {
	Start   time.Time          `json:"start"`
	End     time.Time          `json:"end"`
	Slots   []catalog.MealSlot `json:"slots"`
	Profile Profile            `json:"profile"`
}

// Validate rejects malformed requests before generation starts.
func (r MealPlanRequest) Validate() error {
	if r.Profile.DietKey == "" {
		return ErrDietKeyRequired
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrEmptyDateRange
	}
	start, end := dateOnly(r.Start), dateOnly(r.End)
	if end.Before(start) {
		return ErrDateRangeInverted
	}
	if end.Sub(start) >= MaxPlanDays*24*time.Hour {
		return ErrDateRangeTooLong
	}
	if len(r.Slots) == 0 {
		return ErrNoMealSlots
	}
	seen := make(map[catalog.MealSlot]bool, len(r.Slots))
	for _, slot := range r.Slots {
		if !slot.IsValid() {
			return ErrUnknownMealSlot
		}
		if seen[slot] {
			return ErrDuplicateMealSlot
		}
		seen[slot] = true
	}
	if r.Profile.CalorieTarget < 0 {
		return ErrNegativeCalories
	}
	return nil
}

// Days expands the inclusive date range into ascending UTC dates.
func (r MealPlanRequest) Days() []time.Time {
	start, end := dateOnly(r.Start), dateOnly(r.End)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
