package planning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/platewise/v1/internal/domain/catalog"
)

// Domain errors for plan generation

var (
	// Request validation errors
	ErrDietKeyRequired    = errors.New("request diet key is required")
	ErrEmptyDateRange     = errors.New("request date range is empty")
	ErrDateRangeInverted  = errors.New("request end date is before start date")
	ErrDateRangeTooLong   = errors.New("request date range exceeds the supported maximum")
	ErrNoMealSlots        = errors.New("request must name at least one meal slot")
	ErrDuplicateMealSlot  = errors.New("request meal slots must be unique")
	ErrUnknownMealSlot    = errors.New("request contains an unknown meal slot")
	ErrNegativeCalories   = errors.New("calorie target cannot be negative")

	// Configuration errors
	ErrNoTemplates = errors.New("no active recipe templates for the requested diet")
)

// InsufficientAllowedIngredientsError reports a starved candidate pool.
// This is a configuration defect, never retried internally.
type InsufficientAllowedIngredientsError struct {
	Category catalog.Category
}

func (e *InsufficientAllowedIngredientsError) Error() string {
	return fmt.Sprintf("insufficient allowed ingredients: no eligible %s items", e.Category)
}

// GuardrailViolation pins a hard-block term to the meal it surfaced in.
type GuardrailViolation struct {
	Term     string           `json:"term"`
	Date     string           `json:"date"`
	Slot     catalog.MealSlot `json:"slot"`
	MealName string           `json:"mealName"`
	ItemKey  string           `json:"itemKey,omitempty"`
}

// GuardrailsError reports hard-block terms still present after the
// single allowed regeneration.
type GuardrailsError struct {
	Violations []GuardrailViolation
	Attempts   int
}

func (e *GuardrailsError) Error() string {
	terms := make([]string, 0, len(e.Violations))
	seen := make(map[string]bool, len(e.Violations))
	for _, v := range e.Violations {
		if !seen[v.Term] {
			seen[v.Term] = true
			terms = append(terms, v.Term)
		}
	}
	return fmt.Sprintf("guardrails violation after %d attempts: blocked terms [%s]",
		e.Attempts, strings.Join(terms, ", "))
}
