// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
)

// PlannerService defines the meal-plan generation use cases
// This is the primary port that HTTP handlers and other driving adapters will use
type PlannerService interface {
	// GeneratePlan synthesizes one plan for a request and seed
	GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (*MealPlanResult, error)

	// ComparePlans generates the same request under two seeds side by side
	ComparePlans(ctx context.Context, cmd ComparePlansCommand) (*PlanComparison, error)

	// GetTuningSuggestions runs the advisor over a freshly generated plan
	GetTuningSuggestions(ctx context.Context, cmd GeneratePlanCommand) ([]planning.Suggestion, error)
}

// GeneratePlanCommand contains the inputs for one generation run
type GeneratePlanCommand struct {
	DietKey           string
	Start             time.Time
	End               time.Time
	Slots             []catalog.MealSlot
	Allergies         []string
	Dislikes          []string
	CalorieTarget     int
	PrepPreferences   []string
	Seed              int64
	EnforceGuardrails bool
}

// Request assembles the domain request from the command
func (c GeneratePlanCommand) Request() planning.MealPlanRequest {
	return planning.MealPlanRequest{
		Start: c.Start,
		End:   c.End,
		Slots: c.Slots,
		Profile: planning.Profile{
			DietKey:         c.DietKey,
			Allergies:       c.Allergies,
			Dislikes:        c.Dislikes,
			CalorieTarget:   c.CalorieTarget,
			PrepPreferences: c.PrepPreferences,
		},
	}
}

// ComparePlansCommand runs one request under two seeds
type ComparePlansCommand struct {
	GeneratePlanCommand
	SeedA int64
	SeedB int64
}

// MealPlanResult is a generated plan plus its structural validity report
type MealPlanResult struct {
	Plan   *planning.MealPlan    `json:"plan"`
	Sanity planning.SanityReport `json:"sanity"`
}

// PlanComparison holds two generations of the same request
type PlanComparison struct {
	SeedA MealPlanResult `json:"seedA"`
	SeedB MealPlanResult `json:"seedB"`
}
