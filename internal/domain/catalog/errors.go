package catalog

import "errors"

// Domain errors for catalog validation

var (
	// Gram range errors
	ErrGramsNotPositive  = errors.New("gram values must be positive")
	ErrGramRangeOrder    = errors.New("gram range must satisfy min <= default <= max")
	ErrGramsAboveCeiling = errors.New("gram value exceeds the configured ceiling")

	// Template errors
	ErrTemplateIDRequired   = errors.New("template id is required")
	ErrTemplateNameRequired = errors.New("template display name is required")
	ErrTemplateSlotCount    = errors.New("template must have exactly 4 slots")
	ErrTemplateSlotSet      = errors.New("template slots must be exactly protein, veg1, veg2 and fat")
	ErrInvalidStepCount     = errors.New("template step count must be positive")

	// Pool item errors
	ErrItemKeyRequired      = errors.New("pool item key is required")
	ErrItemNameRequired     = errors.New("pool item name is required")
	ErrInvalidCategory      = errors.New("pool item category is not a known category")
	ErrFlavorGramsRequired  = errors.New("flavor pool items must carry a gram range")
	ErrUnexpectedGramRange  = errors.New("only flavor pool items may carry a gram range")

	// Settings errors
	ErrSettingsNotPositive   = errors.New("generator settings counts must be positive")
	ErrVegThresholdOrder     = errors.New("vegetable thresholds must be ascending (low <= mid <= high)")
	ErrVegScoreOrder         = errors.New("vegetable scores must be ascending (low <= mid <= high)")

	// Name pattern errors
	ErrPatternRequired    = errors.New("name pattern string is required")
	ErrInvalidMealSlot    = errors.New("name pattern slot is not a known meal slot")
)
