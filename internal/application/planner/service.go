// Package planner provides the application layer for meal-plan generation
// This implements the use cases defined in the inbound ports
package planner

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// planCacheTTL bounds how long a generated plan may be served without
// re-reading configuration.
const planCacheTTL = time.Hour

// PlannerService implements the meal-plan generation use cases
type PlannerService struct {
	catalog    outbound.CatalogRepository
	candidates outbound.CandidateSource
	terms      outbound.GuardrailTermSource
	cache      outbound.PlanCache
	metrics    outbound.GenerationMetrics
	logger     *zap.Logger
}

// NewPlannerService creates a new planner service. The candidate
// source, term source, cache and metrics are optional; a nil value
// disables the corresponding concern.
func NewPlannerService(
	catalogRepo outbound.CatalogRepository,
	candidates outbound.CandidateSource,
	terms outbound.GuardrailTermSource,
	cache outbound.PlanCache,
	metrics outbound.GenerationMetrics,
	logger *zap.Logger,
) inbound.PlannerService {
	return &PlannerService{
		catalog:    catalogRepo,
		candidates: candidates,
		terms:      terms,
		cache:      cache,
		metrics:    metrics,
		logger:     logger.Named("planner-service"),
	}
}

// GeneratePlan generates one validated meal plan
func (s *PlannerService) GeneratePlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*inbound.MealPlanResult, error) {
	key := planCacheKey(cmd)
	if s.cache != nil {
		if plan, err := s.cache.GetPlan(ctx, key); err == nil && plan != nil {
			s.recordCacheHit(cmd.DietKey)
			s.logger.Debug("Serving plan from cache", zap.String("key", key))
			// Only plans that passed the sanity gate are ever cached.
			return &inbound.MealPlanResult{Plan: plan, Sanity: planning.SanityReport{OK: true}}, nil
		}
	}

	outcome, err := s.generate(ctx, cmd, cmd.Seed)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPlan(ctx, key, outcome.plan, planCacheTTL); err != nil {
			s.logger.Warn("Failed to cache plan", zap.String("key", key), zap.Error(err))
		}
	}
	return &inbound.MealPlanResult{Plan: outcome.plan, Sanity: outcome.sanity}, nil
}

// ComparePlans generates the same request under two seeds. Comparison
// always generates fresh so both sides reflect current configuration.
func (s *PlannerService) ComparePlans(ctx context.Context, cmd inbound.ComparePlansCommand) (*inbound.PlanComparison, error) {
	first, err := s.generate(ctx, cmd.GeneratePlanCommand, cmd.SeedA)
	if err != nil {
		return nil, err
	}
	second, err := s.generate(ctx, cmd.GeneratePlanCommand, cmd.SeedB)
	if err != nil {
		return nil, err
	}
	return &inbound.PlanComparison{
		SeedA: inbound.MealPlanResult{Plan: first.plan, Sanity: first.sanity},
		SeedB: inbound.MealPlanResult{Plan: second.plan, Sanity: second.sanity},
	}, nil
}

// GetTuningSuggestions generates a plan and runs the advisor over it
func (s *PlannerService) GetTuningSuggestions(ctx context.Context, cmd inbound.GeneratePlanCommand) ([]planning.Suggestion, error) {
	outcome, err := s.generate(ctx, cmd, cmd.Seed)
	if err != nil {
		return nil, err
	}
	return planning.TuningSuggestions(outcome.plan, planning.AdvisorConfig{
		Settings: outcome.cfg.Settings,
		PoolCounts: map[catalog.Category]int{
			catalog.CategoryProtein: outcome.pools.Metrics.Proteins,
			catalog.CategoryVeg:     outcome.pools.Metrics.Vegetables,
			catalog.CategoryFat:     outcome.pools.Metrics.Fats,
			catalog.CategoryFlavor:  outcome.pools.Metrics.Flavors,
		},
	}), nil
}

// generation is the outcome of one full load-sanitize-merge-generate run
type generation struct {
	plan   *planning.MealPlan
	cfg    planning.GenerationConfig
	pools  planning.MergedPools
	sanity planning.SanityReport
}

func (s *PlannerService) generate(ctx context.Context, cmd inbound.GeneratePlanCommand, seed int64) (*generation, error) {
	started := time.Now()

	req := cmd.Request()
	if err := req.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cfg, err := s.loadConfig(ctx, cmd.DietKey)
	if err != nil {
		return nil, err
	}

	excludeTerms, err := s.excludeTerms(ctx)
	if err != nil {
		return nil, err
	}

	pools, err := s.buildPools(ctx, cfg, excludeTerms)
	if err != nil {
		return nil, err
	}

	generate := func(seed int64) (*planning.MealPlan, error) {
		return planning.Generate(req, cfg, pools, seed)
	}
	plan, err := planning.EnforceGuardrails(generate, seed, planning.GenerationOptions{
		EnforceGuardrails: cmd.EnforceGuardrails,
		ExcludeTerms:      excludeTerms,
	})
	if err != nil {
		return nil, s.mapGenerationError(cmd.DietKey, err)
	}

	sanity := planning.ValidateSanity(plan, req, cfg)
	if !sanity.OK {
		s.recordSanityFailure(cmd.DietKey)
		s.logger.Error("Generated plan failed sanity validation",
			zap.String("diet_key", cmd.DietKey),
			zap.Int64("seed", seed),
			zap.Strings("issues", sanity.Issues),
		)
		return nil, errors.NewSanityFailedError(sanity.Issues)
	}

	s.recordGeneration(cmd.DietKey, plan, time.Since(started))
	s.logger.Info("Generated meal plan",
		zap.String("diet_key", cmd.DietKey),
		zap.Int64("seed", seed),
		zap.Int("days", len(plan.Days)),
		zap.Int("attempts", plan.Metadata.Generator.Attempts),
		zap.Int("repeats_forced", plan.Metadata.Generator.TemplateInfo.Quality.RepeatsForced),
	)
	return &generation{plan: plan, cfg: cfg, pools: pools, sanity: sanity}, nil
}

// buildPools sanitizes the dynamic candidates and merges them with the
// curated pools
func (s *PlannerService) buildPools(ctx context.Context, cfg planning.GenerationConfig, excludeTerms []string) (planning.MergedPools, error) {
	var raw []planning.RawCandidate
	if s.candidates != nil {
		candidates, err := s.candidates.Candidates(ctx, cfg.DietKey)
		if err != nil {
			return planning.MergedPools{}, errors.NewExternalServiceError("candidate source", err)
		}
		raw = candidates
	}
	dynamic, sanitized := planning.SanitizePool(raw, excludeTerms)
	return planning.MergePools(cfg, dynamic, sanitized), nil
}

func (s *PlannerService) excludeTerms(ctx context.Context) ([]string, error) {
	if s.terms == nil {
		return nil, nil
	}
	terms, err := s.terms.ExcludeTerms(ctx)
	if err != nil {
		return nil, errors.NewExternalServiceError("guardrail term source", err)
	}
	return terms, nil
}

// mapGenerationError translates domain failures to application errors
func (s *PlannerService) mapGenerationError(dietKey string, err error) error {
	if stderrors.Is(err, planning.ErrNoTemplates) {
		return errors.NewDietNotFoundError(dietKey)
	}

	var starved *planning.InsufficientAllowedIngredientsError
	if stderrors.As(err, &starved) {
		return errors.NewInsufficientIngredientsError(string(starved.Category), err)
	}

	var guardrails *planning.GuardrailsError
	if stderrors.As(err, &guardrails) {
		s.recordGuardrailViolations(dietKey, len(guardrails.Violations))
		s.logger.Warn("Guardrails violated after retry",
			zap.String("diet_key", dietKey),
			zap.Int("violations", len(guardrails.Violations)),
		)
		return errors.NewGuardrailsViolationError(guardrails.Error(), err)
	}

	return errors.NewValidationError(err.Error())
}

func (s *PlannerService) recordGeneration(dietKey string, plan *planning.MealPlan, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordGeneration(dietKey, plan.Metadata.Generator.Attempts, duration)
	if forced := plan.Metadata.Generator.TemplateInfo.Quality.RepeatsForced; forced > 0 {
		s.metrics.RecordForcedRepeats(dietKey, forced)
	}
}

func (s *PlannerService) recordGuardrailViolations(dietKey string, count int) {
	if s.metrics != nil {
		s.metrics.RecordGuardrailViolations(dietKey, count)
	}
}

func (s *PlannerService) recordSanityFailure(dietKey string) {
	if s.metrics != nil {
		s.metrics.RecordSanityFailure(dietKey)
	}
}

func (s *PlannerService) recordCacheHit(dietKey string) {
	if s.metrics != nil {
		s.metrics.RecordCacheHit(dietKey)
	}
}
