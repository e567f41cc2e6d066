package planning

// Guardrails enforcement: a generated plan must never surface a
// hard-blocked ingredient term. Sanitization keeps blocked candidates
// out of the dynamic pools, but admin-curated items and rendered meal
// names can still collide with the term list, so the finished plan is
// scanned and regenerated once with seed+1 before giving up.

// GenerationOptions are the explicit toggles a caller decides once
// before invoking the core.
type GenerationOptions struct {
	EnforceGuardrails bool
	ExcludeTerms      []string
}

// GenerateFunc produces a fresh plan for a seed.
type GenerateFunc func(seed int64) (*MealPlan, error)

// EnforceGuardrails wraps one generator call with the hard-block term
// check. A clean first plan returns with attempts=1. A violating plan
// is regenerated exactly once with seed+1; if the retry still violates
// the run fails with a GuardrailsError carrying the violation details.
// There is never a third attempt and a violating plan is never
// returned silently.
func EnforceGuardrails(generate GenerateFunc, seed int64, opts GenerationOptions) (*MealPlan, error) {
	plan, err := generate(seed)
	if err != nil {
		return nil, err
	}
	plan.Metadata.Generator.Attempts = 1

	if !opts.EnforceGuardrails || len(opts.ExcludeTerms) == 0 {
		return plan, nil
	}
	if violations := ScanViolations(plan, opts.ExcludeTerms); len(violations) == 0 {
		return plan, nil
	}

	retry, err := generate(seed + 1)
	if err != nil {
		return nil, err
	}
	retry.Metadata.Generator.Attempts = 2

	if violations := ScanViolations(retry, opts.ExcludeTerms); len(violations) > 0 {
		return nil, &GuardrailsError{Violations: violations, Attempts: 2}
	}
	return retry, nil
}

// ScanViolations finds every hard-block term present in the plan's
// meal names and ingredient names, in plan order.
func ScanViolations(plan *MealPlan, excludeTerms []string) []GuardrailViolation {
	blocked := normalizeTerms(excludeTerms)
	if len(blocked) == 0 {
		return nil
	}

	var violations []GuardrailViolation
	for _, day := range plan.Days {
		date := day.Date.Format(dateLayout)
		for _, meal := range day.Meals {
			mealName := NormalizeName(meal.Name)
			for _, term := range blocked {
				if containsBlockedTerm(mealName, []string{term}) {
					violations = append(violations, GuardrailViolation{
						Term:     term,
						Date:     date,
						Slot:     meal.Slot,
						MealName: meal.Name,
					})
				}
			}
			for _, ref := range meal.Ingredients {
				ingredientName := NormalizeName(ref.Name)
				for _, term := range blocked {
					if containsBlockedTerm(ingredientName, []string{term}) {
						violations = append(violations, GuardrailViolation{
							Term:     term,
							Date:     date,
							Slot:     meal.Slot,
							MealName: meal.Name,
							ItemKey:  ref.ItemKey,
						})
					}
				}
			}
		}
	}
	return violations
}
