package planning

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
)

// GeneratorMode is the mode reported in result telemetry.
const GeneratorMode = "template"

// Approximate calorie densities (kcal per gram, cooked) used only for
// the optional calorie-target scaling of slot grams. The selection
// policy itself is uniform over eligible candidates; both choices are
// deliberate configuration points (see DESIGN.md).
const (
	kcalPerGramProtein = 1.65
	kcalPerGramVeg     = 0.35
	kcalPerGramFat     = 8.8
)

// Generate synthesizes a meal plan from a request, a merged ingredient
// universe and a seed. It is deterministic: identical inputs always
// yield an identical plan. Iteration order is fixed (date ascending,
// then the request's slot order) so the 7-day repeat windows and the
// per-slot sub-seeds are stable.
//
// Repeat-cap exhaustion and signature collisions are absorbed and
// reported as telemetry; the only generation-time failure is a starved
// candidate pool, which is a configuration defect.
func Generate(req MealPlanRequest, cfg GenerationConfig, pools MergedPools, seed int64) (*MealPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Templates) == 0 {
		return nil, ErrNoTemplates
	}

	g := &generator{
		req:         req,
		cfg:         cfg,
		pools:       pools,
		seed:        seed,
		byCategory:  eligibleByCategory(pools, req.Profile),
		templateUse: make(map[string][]time.Time),
		proteinUse:  make(map[string][]time.Time),
		signatures:  make(map[string]bool),
	}

	for _, category := range []catalog.Category{
		catalog.CategoryProtein,
		catalog.CategoryVeg,
		catalog.CategoryFat,
	} {
		if len(g.byCategory[category]) == 0 {
			return nil, &InsufficientAllowedIngredientsError{Category: category}
		}
	}

	plan := &MealPlan{}
	for _, day := range req.Days() {
		entry := Day{Date: day}
		for _, slot := range req.Slots {
			meal, quality := g.buildMeal(day, slot)
			entry.Meals = append(entry.Meals, meal)
			g.info.MealQualities = append(g.info.MealQualities, quality)
		}
		plan.Days = append(plan.Days, entry)
	}

	plan.Metadata.Generator = GeneratorMetadata{
		Mode:         GeneratorMode,
		Seed:         seed,
		Attempts:     1,
		TemplateInfo: g.info,
		PoolMetrics:  pools.Metrics,
	}
	return plan, nil
}

type generator struct {
	req        MealPlanRequest
	cfg        GenerationConfig
	pools      MergedPools
	seed       int64
	byCategory map[catalog.Category][]catalog.PoolItem

	templateUse map[string][]time.Time
	proteinUse  map[string][]time.Time
	signatures  map[string]bool

	info TemplateInfo
}

// mealDraft is one seeded attempt at a meal, not yet committed to the
// plan's repeat/signature history.
type mealDraft struct {
	template       catalog.RecipeTemplate
	refs           []IngredientRef
	name           string
	signature      string
	proteinKey     string
	forcedTemplate bool
	forcedProtein  bool
}

// buildMeal draws a meal for (day, slot), redrawing with the next
// sub-seed while the meal signature collides with one already in the
// plan. After signatureRetryLimit redraws the duplicate is accepted;
// repetition is telemetry, never an error.
func (g *generator) buildMeal(day time.Time, slot catalog.MealSlot) (Meal, MealQuality) {
	limit := g.cfg.Settings.SignatureRetryLimit

	var draft mealDraft
	retries := 0
	for attempt := 0; ; attempt++ {
		r := newRNG(subSeed(g.seed, day, slot, attempt))
		draft = g.drawMeal(r, day, slot)
		if !g.signatures[draft.signature] || attempt >= limit {
			retries = attempt
			break
		}
	}

	duplicate := g.signatures[draft.signature]
	g.signatures[draft.signature] = true
	g.templateUse[draft.template.ID] = append(g.templateUse[draft.template.ID], day)
	g.proteinUse[draft.proteinKey] = append(g.proteinUse[draft.proteinKey], day)

	quality := MealQuality{Date: day.Format(dateLayout), Slot: slot}
	vegGrams := Meal{Ingredients: draft.refs}.VegGrams()
	quality.Score = g.cfg.Settings.VegScoreFor(vegGrams)
	thresholds := g.cfg.Settings.VegThresholds
	quality.Reasons = append(quality.Reasons,
		fmt.Sprintf("vegetables %dg graded %d against thresholds %d/%d/%d",
			vegGrams, quality.Score, thresholds.Low, thresholds.Mid, thresholds.High))

	if draft.forcedTemplate {
		g.info.Quality.RepeatsForced++
		quality.Reasons = append(quality.Reasons,
			"template repeat cap relaxed to least recently used")
	}
	if draft.forcedProtein {
		g.info.Quality.RepeatsForced++
		quality.Reasons = append(quality.Reasons,
			"protein repeat cap relaxed to least recently used")
	}
	if duplicate {
		quality.Reasons = append(quality.Reasons,
			fmt.Sprintf("duplicate meal signature accepted after %d redraws", retries))
	}

	meal := Meal{
		ID:          mealID(g.seed, day, slot, draft.signature),
		Slot:        slot,
		Name:        draft.name,
		TemplateID:  draft.template.ID,
		Ingredients: draft.refs,
	}
	return meal, quality
}

// drawMeal assembles one candidate meal from a single seeded stream.
func (g *generator) drawMeal(r *rng, day time.Time, slot catalog.MealSlot) mealDraft {
	var draft mealDraft
	draft.template, draft.forcedTemplate = g.pickTemplate(r, day)

	tokens := map[string]string{
		catalog.TokenTemplateName: draft.template.DisplayName,
	}
	slotTokens := map[catalog.SlotKey]string{
		catalog.SlotProtein: catalog.TokenProtein,
		catalog.SlotVeg1:    catalog.TokenVeg1,
		catalog.SlotVeg2:    catalog.TokenVeg2,
	}

	usedKeys := make(map[string]bool, g.cfg.Settings.MaxIngredients)
	for _, templateSlot := range draft.template.Slots {
		item, forced := g.pickItem(r, day, templateSlot.Key, usedKeys)
		usedKeys[item.ItemKey] = true

		draft.refs = append(draft.refs, IngredientRef{
			ItemKey: item.ItemKey,
			Name:    item.Name,
			Role:    string(templateSlot.Key),
			Grams:   g.gramsFor(draft.template, templateSlot),
		})

		if templateSlot.Key == catalog.SlotProtein {
			draft.proteinKey = item.ItemKey
			draft.forcedProtein = forced
		}
		if token, ok := slotTokens[templateSlot.Key]; ok {
			tokens[token] = item.Name
		}
	}

	g.appendFlavors(r, &draft, usedKeys, tokens)
	g.enforceIngredientCap(&draft)

	keys := make([]string, 0, len(draft.refs))
	for _, ref := range draft.refs {
		keys = append(keys, ref.ItemKey)
	}
	sort.Strings(keys)
	draft.signature = strings.Join(keys, "|")

	draft.name = draft.template.DisplayName
	if pattern, ok := g.cfg.NamePatternFor(draft.template.ID, slot); ok {
		if rendered := pattern.Render(tokens); rendered != "" {
			draft.name = rendered
		}
	}
	return draft
}

// pickTemplate selects uniformly among templates whose trailing-7-day
// usage is below the repeat cap. When every template is capped the cap
// is relaxed to the least recently used template and the forced repeat
// is reported, never raised as an error.
func (g *generator) pickTemplate(r *rng, day time.Time) (catalog.RecipeTemplate, bool) {
	repeatCap := g.cfg.Settings.TemplateRepeatCap7d
	var eligible []catalog.RecipeTemplate
	for _, tpl := range g.cfg.Templates {
		if usesWithin7d(g.templateUse[tpl.ID], day) < repeatCap {
			eligible = append(eligible, tpl)
		}
	}
	if len(eligible) > 0 {
		return eligible[r.intn(len(eligible))], false
	}

	lru := g.cfg.Templates[0]
	lruLast := lastUse(g.templateUse[lru.ID])
	for _, tpl := range g.cfg.Templates[1:] {
		if last := lastUse(g.templateUse[tpl.ID]); last.Before(lruLast) {
			lru, lruLast = tpl, last
		}
	}
	return lru, true
}

// pickItem selects a pool item for a slot. Proteins respect their own
// trailing-7-day repeat cap under the same relax-and-report policy as
// templates. Items already selected for this meal are avoided when the
// pool allows it.
func (g *generator) pickItem(r *rng, day time.Time, key catalog.SlotKey, usedKeys map[string]bool) (catalog.PoolItem, bool) {
	pool := g.byCategory[key.Category()]

	candidates := make([]catalog.PoolItem, 0, len(pool))
	for _, item := range pool {
		if !usedKeys[item.ItemKey] {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	if key != catalog.SlotProtein {
		return candidates[r.intn(len(candidates))], false
	}

	repeatCap := g.cfg.Settings.ProteinRepeatCap7d
	var eligible []catalog.PoolItem
	for _, item := range candidates {
		if usesWithin7d(g.proteinUse[item.ItemKey], day) < repeatCap {
			eligible = append(eligible, item)
		}
	}
	if len(eligible) > 0 {
		return eligible[r.intn(len(eligible))], false
	}

	lru := candidates[0]
	lruLast := lastUse(g.proteinUse[lru.ItemKey])
	for _, item := range candidates[1:] {
		if last := lastUse(g.proteinUse[item.ItemKey]); last.Before(lruLast) {
			lru, lruLast = item, last
		}
	}
	return lru, true
}

// appendFlavors draws a seeded number of flavor items, each with
// uniform grams inside its own range.
func (g *generator) appendFlavors(r *rng, draft *mealDraft, usedKeys map[string]bool, tokens map[string]string) {
	maxFlavors := g.cfg.Settings.MaxFlavorItems
	if maxFlavors <= 0 {
		return
	}

	pool := make([]catalog.PoolItem, 0)
	for _, item := range g.byCategory[catalog.CategoryFlavor] {
		if !usedKeys[item.ItemKey] {
			pool = append(pool, item)
		}
	}
	if len(pool) == 0 {
		return
	}
	if maxFlavors > len(pool) {
		maxFlavors = len(pool)
	}

	count := r.intn(maxFlavors + 1)
	for i := 0; i < count; i++ {
		idx := r.intn(len(pool))
		item := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
		usedKeys[item.ItemKey] = true

		draft.refs = append(draft.refs, IngredientRef{
			ItemKey: item.ItemKey,
			Name:    item.Name,
			Role:    RoleFlavor,
			Grams:   r.rangeInt(item.Grams.Min, item.Grams.Max),
		})
		if tokens[catalog.TokenFlavor] == "" {
			tokens[catalog.TokenFlavor] = item.Name
		}
	}
}

// enforceIngredientCap drops flavor items, last first, until the meal
// fits the distinct-ingredient cap. Template slots are never dropped.
func (g *generator) enforceIngredientCap(draft *mealDraft) {
	maxIngredients := g.cfg.Settings.MaxIngredients
	for len(draft.refs) > maxIngredients {
		dropped := false
		for i := len(draft.refs) - 1; i >= 0; i-- {
			if draft.refs[i].Role == RoleFlavor {
				draft.refs = append(draft.refs[:i], draft.refs[i+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			return
		}
	}
}

// gramsFor returns the slot's default grams, scaled toward the
// profile's calorie target when one is set and clamped to the slot's
// range. The per-meal target is the daily target split evenly across
// the requested slots.
func (g *generator) gramsFor(tpl catalog.RecipeTemplate, slot catalog.TemplateSlot) int {
	target := g.req.Profile.CalorieTarget
	if target <= 0 {
		return slot.Grams.Default
	}

	estimate := 0.0
	for _, ts := range tpl.Slots {
		estimate += kcalDensity(ts.Key) * float64(ts.Grams.Default)
	}
	if estimate <= 0 {
		return slot.Grams.Default
	}

	perMeal := float64(target) / float64(len(g.req.Slots))
	factor := perMeal / estimate
	scaled := int(math.Round(float64(slot.Grams.Default) * factor))
	return slot.Grams.Clamp(scaled)
}

func kcalDensity(key catalog.SlotKey) float64 {
	switch key {
	case catalog.SlotProtein:
		return kcalPerGramProtein
	case catalog.SlotFat:
		return kcalPerGramFat
	default:
		return kcalPerGramVeg
	}
}

// eligibleByCategory removes pool items matching the profile's
// allergies, then applies dislikes per category only while at least
// one item survives them. An allergy that empties a category is
// starvation; a dislike is a preference and never empties a pool.
func eligibleByCategory(pools MergedPools, profile Profile) map[catalog.Category][]catalog.PoolItem {
	allergies := normalizeTerms(profile.Allergies)
	dislikes := normalizeTerms(profile.Dislikes)
	out := make(map[catalog.Category][]catalog.PoolItem, len(pools.ByCategory))
	for category, items := range pools.ByCategory {
		allowed := make([]catalog.PoolItem, 0, len(items))
		for _, item := range items {
			if !containsBlockedTerm(NormalizeName(item.Name), allergies) {
				allowed = append(allowed, item)
			}
		}
		preferred := make([]catalog.PoolItem, 0, len(allowed))
		for _, item := range allowed {
			if !containsBlockedTerm(NormalizeName(item.Name), dislikes) {
				preferred = append(preferred, item)
			}
		}
		if len(preferred) == 0 {
			out[category] = allowed
			continue
		}
		out[category] = preferred
	}
	return out
}

// usesWithin7d counts uses in the trailing 7-day window ending at day
// (the day being filled and the six days before it).
func usesWithin7d(uses []time.Time, day time.Time) int {
	windowStart := day.AddDate(0, 0, -6)
	count := 0
	for _, use := range uses {
		if !use.Before(windowStart) && !use.After(day) {
			count++
		}
	}
	return count
}

// lastUse returns the latest use, or the zero time for never-used.
func lastUse(uses []time.Time) time.Time {
	var last time.Time
	for _, use := range uses {
		if use.After(last) {
			last = use
		}
	}
	return last
}
