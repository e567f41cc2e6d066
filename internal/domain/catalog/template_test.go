package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TemplateTestSuite provides a test suite for RecipeTemplate validation
type TemplateTestSuite struct {
	suite.Suite
}

func validTemplate() RecipeTemplate {
	return RecipeTemplate{
		ID:          "bowl",
		DietKey:     DefaultDietKey,
		DisplayName: "Nourish Bowl",
		StepCount:   4,
		Active:      true,
		Slots: []TemplateSlot{
			{Key: SlotProtein, Grams: GramRange{Min: 100, Default: 150, Max: 250}},
			{Key: SlotVeg1, Grams: GramRange{Min: 50, Default: 100, Max: 200}},
			{Key: SlotVeg2, Grams: GramRange{Min: 50, Default: 100, Max: 200}},
			{Key: SlotFat, Grams: GramRange{Min: 5, Default: 15, Max: 30}},
		},
	}
}

func (suite *TemplateTestSuite) TestValidation() {
	suite.Run("ValidTemplate_ShouldPass", func() {
		require.NoError(suite.T(), validTemplate().Validate())
	})

	suite.Run("MissingID_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.ID = ""
		assert.Equal(suite.T(), ErrTemplateIDRequired, tpl.Validate())
	})

	suite.Run("MissingDisplayName_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.DisplayName = ""
		assert.Equal(suite.T(), ErrTemplateNameRequired, tpl.Validate())
	})

	suite.Run("ThreeSlots_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.Slots = tpl.Slots[:3]
		assert.Equal(suite.T(), ErrTemplateSlotCount, tpl.Validate())
	})

	suite.Run("DuplicateSlot_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.Slots[2] = tpl.Slots[1] // veg1 twice, veg2 missing
		assert.Equal(suite.T(), ErrTemplateSlotSet, tpl.Validate())
	})

	suite.Run("InvertedGramRange_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.Slots[0].Grams = GramRange{Min: 200, Default: 150, Max: 250}
		assert.Equal(suite.T(), ErrGramRangeOrder, tpl.Validate())
	})

	suite.Run("GramsAboveCeiling_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.Slots[0].Grams = GramRange{Min: 100, Default: 150, Max: TemplateSlotGramCeiling + 1}
		assert.Equal(suite.T(), ErrGramsAboveCeiling, tpl.Validate())
	})

	suite.Run("ZeroStepCount_ShouldReturnError", func() {
		tpl := validTemplate()
		tpl.StepCount = 0
		assert.Equal(suite.T(), ErrInvalidStepCount, tpl.Validate())
	})
}

func (suite *TemplateTestSuite) TestSlotLookup() {
	tpl := validTemplate()

	slot, ok := tpl.Slot(SlotFat)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), SlotFat, slot.Key)

	_, ok = tpl.Slot(SlotKey("dessert"))
	assert.False(suite.T(), ok)
}

func TestTemplateTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateTestSuite))
}

func TestPoolItemValidation(t *testing.T) {
	grams := &GramRange{Min: 5, Default: 10, Max: 25}

	tests := []struct {
		name string
		item PoolItem
		want error
	}{
		{
			name: "valid protein",
			item: PoolItem{DietKey: "keto", Category: CategoryProtein, ItemKey: "name:chicken", Name: "chicken", Active: true},
			want: nil,
		},
		{
			name: "valid flavor with grams",
			item: PoolItem{DietKey: "default", Category: CategoryFlavor, ItemKey: "name:pesto", Name: "pesto", Active: true, Grams: grams},
			want: nil,
		},
		{
			name: "missing item key",
			item: PoolItem{Category: CategoryVeg, Name: "carrot"},
			want: ErrItemKeyRequired,
		},
		{
			name: "unknown category",
			item: PoolItem{Category: Category("spice"), ItemKey: "name:salt", Name: "salt"},
			want: ErrInvalidCategory,
		},
		{
			name: "flavor without grams",
			item: PoolItem{Category: CategoryFlavor, ItemKey: "name:pesto", Name: "pesto"},
			want: ErrFlavorGramsRequired,
		},
		{
			name: "protein with grams",
			item: PoolItem{Category: CategoryProtein, ItemKey: "name:tofu", Name: "tofu", Grams: grams},
			want: ErrUnexpectedGramRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Validate())
		})
	}
}

func TestFlavorGramCeiling(t *testing.T) {
	item := PoolItem{
		Category: CategoryFlavor,
		ItemKey:  "name:tahini",
		Name:     "tahini",
		Grams:    &GramRange{Min: 10, Default: 20, Max: FlavorItemGramCeiling + 1},
	}
	assert.Equal(t, ErrGramsAboveCeiling, item.Validate())
}
