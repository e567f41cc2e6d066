// Package gorm provides GORM-based repository implementations for the
// admin-curated catalog tables. The generation engine only reads;
// writes happen through the curation tooling.
package gorm

import (
	"time"

	"gorm.io/gorm"
)

// TemplateModel is the recipe_templates table
type TemplateModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	DietKey     string `gorm:"size:64;index:idx_templates_diet"`
	DisplayName string `gorm:"size:255;not null"`
	StepCount   int    `gorm:"not null"`
	Active      bool   `gorm:"not null;default:true"`

	Slots []TemplateSlotModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name
func (TemplateModel) TableName() string { return "recipe_templates" }

// TemplateSlotModel is the template_slots table
type TemplateSlotModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	TemplateID string `gorm:"size:64;index"`
	SlotKey    string `gorm:"size:16;not null"`
	GramsMin   int    `gorm:"not null"`
	GramsDef   int    `gorm:"not null"`
	GramsMax   int    `gorm:"not null"`
	Position   int    `gorm:"not null"`
}

// TableName returns the table name
func (TemplateSlotModel) TableName() string { return "template_slots" }

// PoolItemModel is the pool_items table
type PoolItemModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	DietKey  string `gorm:"size:64;index:idx_pool_items_diet"`
	Category string `gorm:"size:16;not null"`
	ItemKey  string `gorm:"size:255;not null;uniqueIndex:idx_pool_items_identity,composite:diet_key,category"`
	NevoCode string `gorm:"size:32"`
	Name     string `gorm:"size:255;not null"`
	Active   bool   `gorm:"not null;default:true"`

	// Gram range, flavor items only
	GramsMin *int
	GramsDef *int
	GramsMax *int

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name
func (PoolItemModel) TableName() string { return "pool_items" }

// SettingsModel is the generator_settings table
type SettingsModel struct {
	DietKey             string `gorm:"primaryKey;size:64"`
	MaxIngredients      int    `gorm:"not null"`
	MaxFlavorItems      int    `gorm:"not null"`
	ProteinRepeatCap7d  int    `gorm:"not null"`
	TemplateRepeatCap7d int    `gorm:"not null"`
	SignatureRetryLimit int    `gorm:"not null"`
	VegThresholdLow     int    `gorm:"not null"`
	VegThresholdMid     int    `gorm:"not null"`
	VegThresholdHigh    int    `gorm:"not null"`
	VegScoreLow         int    `gorm:"not null"`
	VegScoreMid         int    `gorm:"not null"`
	VegScoreHigh        int    `gorm:"not null"`

	UpdatedAt time.Time
}

// TableName returns the table name
func (SettingsModel) TableName() string { return "generator_settings" }

// NamePatternModel is the name_patterns table
type NamePatternModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	DietKey     string `gorm:"size:64;index:idx_name_patterns_diet"`
	TemplateKey string `gorm:"size:64;not null"`
	Slot        string `gorm:"size:16;not null"`
	Pattern     string `gorm:"size:512;not null"`
	Active      bool   `gorm:"not null;default:true"`

	UpdatedAt time.Time
}

// TableName returns the table name
func (NamePatternModel) TableName() string { return "name_patterns" }
