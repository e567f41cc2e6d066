// Package main provides an offline demo of the meal-plan generator.
// It runs entirely on the fixture catalog, with no database or cache.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
)

func main() {
	dietKey := flag.String("diet", "default", "diet key to generate for")
	seed := flag.Int64("seed", 42, "generation seed")
	days := flag.Int("days", 7, "number of days to plan")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	service := planner.NewPlannerService(
		memory.NewFixtureCatalogRepository(),
		nil, nil, nil, nil,
		logger,
	)

	start := time.Now().Truncate(24 * time.Hour)
	cmd := inbound.GeneratePlanCommand{
		DietKey: *dietKey,
		Start:   start,
		End:     start.AddDate(0, 0, *days-1),
		Slots:   []catalog.MealSlot{catalog.MealLunch, catalog.MealDinner},
		Seed:    *seed,
	}

	ctx := context.Background()

	result, err := service.GeneratePlan(ctx, cmd)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	for _, day := range result.Plan.Days {
		fmt.Printf("%s\n", day.Date.Format("Mon 2006-01-02"))
		for _, meal := range day.Meals {
			fmt.Printf("  %-9s %s\n", meal.Slot, meal.Name)
			for _, ref := range meal.Ingredients {
				fmt.Printf("            %-12s %4dg  %s\n", ref.Role, ref.Grams, ref.Name)
			}
		}
	}

	suggestions, err := service.GetTuningSuggestions(ctx, cmd)
	if err != nil {
		log.Fatalf("advisor failed: %v", err)
	}

	if len(suggestions) > 0 {
		fmt.Println("\nTuning suggestions:")
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(suggestions); err != nil {
			log.Fatalf("failed to print suggestions: %v", err)
		}
	}
}
