package gorm

import (
	"context"

	"github.com/platewise/v1/internal/domain/planning"
	"github.com/platewise/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// CatalogRepository implements the catalog repository interface using GORM
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) outbound.CatalogRepository {
	return &CatalogRepository{db: db}
}

// ConfigRows loads every configuration row tagged with one of the diet
// keys. Ordering is stable (primary key ascending) so repeated loads
// under unchanged data build identical generation configs.
func (r *CatalogRepository) ConfigRows(ctx context.Context, dietKeys []string) (planning.ConfigRows, error) {
	var rows planning.ConfigRows

	var templates []TemplateModel
	result := r.db.WithContext(ctx).
		Preload("Slots").
		Where("diet_key IN ?", dietKeys).
		Order("id").
		Find(&templates)
	if result.Error != nil {
		return planning.ConfigRows{}, result.Error
	}
	for i := range templates {
		rows.Templates = append(rows.Templates, ModelToTemplate(&templates[i]))
	}

	var items []PoolItemModel
	result = r.db.WithContext(ctx).
		Where("diet_key IN ?", dietKeys).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return planning.ConfigRows{}, result.Error
	}
	for i := range items {
		rows.PoolItems = append(rows.PoolItems, ModelToPoolItem(&items[i]))
	}

	var settings []SettingsModel
	result = r.db.WithContext(ctx).
		Where("diet_key IN ?", dietKeys).
		Order("diet_key").
		Find(&settings)
	if result.Error != nil {
		return planning.ConfigRows{}, result.Error
	}
	for i := range settings {
		rows.Settings = append(rows.Settings, ModelToSettings(&settings[i]))
	}

	var patterns []NamePatternModel
	result = r.db.WithContext(ctx).
		Where("diet_key IN ?", dietKeys).
		Order("id").
		Find(&patterns)
	if result.Error != nil {
		return planning.ConfigRows{}, result.Error
	}
	for i := range patterns {
		rows.NamePatterns = append(rows.NamePatterns, ModelToNamePattern(&patterns[i]))
	}

	return rows, nil
}

// AutoMigrate creates or updates the catalog tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&TemplateModel{},
		&TemplateSlotModel{},
		&PoolItemModel{},
		&SettingsModel{},
		&NamePatternModel{},
	)
}
