package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/planning"
)

func TestCatalogFactoryProducesGenerationReadyRows(t *testing.T) {
	factory := NewCatalogFactory(7, "default")
	rows := factory.ConfigRows(2, 6, 6, 3, 2)

	cfg, err := planning.BuildGenerationConfig("default", rows)
	require.NoError(t, err)

	assert.Len(t, cfg.Templates, 2)
	assert.Len(t, cfg.PoolItems[catalog.CategoryProtein], 6)
	assert.Len(t, cfg.PoolItems[catalog.CategoryVeg], 6)
	assert.Len(t, cfg.PoolItems[catalog.CategoryFat], 3)
	assert.Len(t, cfg.PoolItems[catalog.CategoryFlavor], 2)

	for _, template := range cfg.Templates {
		assert.NoError(t, template.Validate())
	}
}

func TestCatalogFactoryIsSeedStable(t *testing.T) {
	first := NewCatalogFactory(99, "keto").ConfigRows(1, 3, 3, 2, 1)
	second := NewCatalogFactory(99, "keto").ConfigRows(1, 3, 3, 2, 1)

	assert.Equal(t, first, second)
}

func TestCatalogFactoryCandidatesNeedSanitizing(t *testing.T) {
	factory := NewCatalogFactory(5, "default")
	candidates := factory.Candidates(catalog.CategoryVeg, 4)

	require.Len(t, candidates, 4)
	for _, candidate := range candidates {
		assert.NotEmpty(t, candidate.Name)
		assert.NotEmpty(t, candidate.NevoCode)
		assert.Equal(t, catalog.CategoryVeg, candidate.Category)
	}
}
