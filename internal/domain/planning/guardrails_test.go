package planning

import (
	"errors"
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planWith builds a one-day, one-meal plan whose sole ingredient
// carries the given name.
func planWith(ingredientName string) *MealPlan {
	return &MealPlan{
		Days: []Day{
			{
				Date: day("2026-03-02"),
				Meals: []Meal{
					{
						Slot: catalog.MealLunch,
						Name: "Nourish Bowl",
						Ingredients: []IngredientRef{
							{ItemKey: ItemKey(ingredientName, ""), Name: ingredientName, Role: "protein", Grams: 150},
						},
					},
				},
			},
		},
	}
}

// seededPlans returns a GenerateFunc serving a fixed plan per seed and
// records the seeds it was called with.
func seededPlans(t *testing.T, plans map[int64]*MealPlan) (GenerateFunc, *[]int64) {
	var calls []int64
	return func(seed int64) (*MealPlan, error) {
		calls = append(calls, seed)
		plan, ok := plans[seed]
		require.True(t, ok, "unexpected seed %d", seed)
		return plan, nil
	}, &calls
}

func TestEnforceGuardrailsCleanFirstAttempt(t *testing.T) {
	generate, calls := seededPlans(t, map[int64]*MealPlan{10: planWith("chicken")})

	plan, err := EnforceGuardrails(generate, 10, GenerationOptions{
		EnforceGuardrails: true,
		ExcludeTerms:      []string{"peanut"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, plan.Metadata.Generator.Attempts)
	assert.Equal(t, []int64{10}, *calls)
}

func TestEnforceGuardrailsRetriesOnceWithNextSeed(t *testing.T) {
	generate, calls := seededPlans(t, map[int64]*MealPlan{
		10: planWith("peanut satay"),
		11: planWith("chicken"),
	})

	plan, err := EnforceGuardrails(generate, 10, GenerationOptions{
		EnforceGuardrails: true,
		ExcludeTerms:      []string{"peanut"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, plan.Metadata.Generator.Attempts)
	assert.Equal(t, "chicken", plan.Days[0].Meals[0].Ingredients[0].Name)
	assert.Equal(t, []int64{10, 11}, *calls)
}

func TestEnforceGuardrailsFailsAfterSecondViolation(t *testing.T) {
	generate, calls := seededPlans(t, map[int64]*MealPlan{
		10: planWith("peanut satay"),
		11: planWith("peanut stew"),
	})

	_, err := EnforceGuardrails(generate, 10, GenerationOptions{
		EnforceGuardrails: true,
		ExcludeTerms:      []string{"peanut"},
	})

	var guardErr *GuardrailsError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, 2, guardErr.Attempts)
	require.NotEmpty(t, guardErr.Violations)
	assert.Equal(t, "peanut", guardErr.Violations[0].Term)
	assert.Equal(t, "2026-03-02", guardErr.Violations[0].Date)
	assert.Equal(t, []int64{10, 11}, *calls, "never a third attempt")
}

func TestEnforceGuardrailsDisabledSkipsScan(t *testing.T) {
	generate, calls := seededPlans(t, map[int64]*MealPlan{10: planWith("peanut satay")})

	plan, err := EnforceGuardrails(generate, 10, GenerationOptions{
		EnforceGuardrails: false,
		ExcludeTerms:      []string{"peanut"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, plan.Metadata.Generator.Attempts)
	assert.Equal(t, []int64{10}, *calls)
}

func TestEnforceGuardrailsNoTermsSkipsScan(t *testing.T) {
	generate, _ := seededPlans(t, map[int64]*MealPlan{10: planWith("peanut satay")})

	plan, err := EnforceGuardrails(generate, 10, GenerationOptions{EnforceGuardrails: true})

	require.NoError(t, err)
	assert.NotNil(t, plan)
}

func TestEnforceGuardrailsPropagatesGenerationError(t *testing.T) {
	boom := errors.New("pool starved")
	generate := GenerateFunc(func(seed int64) (*MealPlan, error) { return nil, boom })

	_, err := EnforceGuardrails(generate, 10, GenerationOptions{EnforceGuardrails: true})
	assert.ErrorIs(t, err, boom)
}

func TestScanViolations(t *testing.T) {
	plan := &MealPlan{
		Days: []Day{
			{
				Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				Meals: []Meal{
					{
						Slot: catalog.MealLunch,
						Name: "Peanut Noodle Bowl",
						Ingredients: []IngredientRef{
							{ItemKey: "name:peanut-sauce", Name: "peanut sauce", Role: RoleFlavor, Grams: 20},
							{ItemKey: "name:chicken", Name: "chicken", Role: "protein", Grams: 150},
						},
					},
				},
			},
		},
	}

	violations := ScanViolations(plan, []string{"peanut", "shellfish"})

	require.Len(t, violations, 2)
	assert.Equal(t, "", violations[0].ItemKey, "meal-name hit carries no item key")
	assert.Equal(t, "Peanut Noodle Bowl", violations[0].MealName)
	assert.Equal(t, "name:peanut-sauce", violations[1].ItemKey)

	assert.Empty(t, ScanViolations(plan, nil))
	assert.Empty(t, ScanViolations(plan, []string{"shellfish"}))
}

func TestGuardrailsErrorMessageDeduplicatesTerms(t *testing.T) {
	err := &GuardrailsError{
		Attempts: 2,
		Violations: []GuardrailViolation{
			{Term: "peanut"}, {Term: "peanut"}, {Term: "shellfish"},
		},
	}
	assert.Equal(t, "guardrails violation after 2 attempts: blocked terms [peanut, shellfish]", err.Error())
}
