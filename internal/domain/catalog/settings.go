package catalog

// VegThresholds are the three ascending gram thresholds used to grade
// vegetable adequacy of a meal (sum of veg1 and veg2 grams).
type VegThresholds struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

// VegScores are the three ascending scores the thresholds map to.
type VegScores struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

// GeneratorSettings tunes plan generation for one diet. Rows fall back
// from the diet-specific key to "default" and finally to
// DefaultGeneratorSettings.
type GeneratorSettings struct {
	DietKey             string        `json:"dietKey"`
	MaxIngredients      int           `json:"maxIngredients"`
	MaxFlavorItems      int           `json:"maxFlavorItems"`
	ProteinRepeatCap7d  int           `json:"proteinRepeatCap7d"`
	TemplateRepeatCap7d int           `json:"templateRepeatCap7d"`
	SignatureRetryLimit int           `json:"signatureRetryLimit"`
	VegThresholds       VegThresholds `json:"vegThresholds"`
	VegScores           VegScores     `json:"vegScores"`
}

// DefaultGeneratorSettings returns the hard-coded fallback used when
// neither the diet-specific nor the default settings row exists.
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		DietKey:             DefaultDietKey,
		MaxIngredients:      10,
		MaxFlavorItems:      2,
		ProteinRepeatCap7d:  2,
		TemplateRepeatCap7d: 3,
		SignatureRetryLimit: 8,
		VegThresholds:       VegThresholds{Low: 80, Mid: 150, High: 250},
		VegScores:           VegScores{Low: 1, Mid: 2, High: 4},
	}
}

// Validate enforces positive counts and ascending thresholds/scores.
func (s GeneratorSettings) Validate() error {
	if s.MaxIngredients <= 0 || s.MaxFlavorItems < 0 ||
		s.ProteinRepeatCap7d <= 0 || s.TemplateRepeatCap7d <= 0 ||
		s.SignatureRetryLimit <= 0 {
		return ErrSettingsNotPositive
	}
	if s.VegThresholds.Low > s.VegThresholds.Mid || s.VegThresholds.Mid > s.VegThresholds.High {
		return ErrVegThresholdOrder
	}
	if s.VegScores.Low > s.VegScores.Mid || s.VegScores.Mid > s.VegScores.High {
		return ErrVegScoreOrder
	}
	return nil
}

// VegScoreFor maps summed vegetable grams to a score: strictly below
// the low threshold scores low, at or above the high threshold scores
// high, everything else scores mid.
func (s GeneratorSettings) VegScoreFor(vegGrams int) int {
	switch {
	case vegGrams < s.VegThresholds.Low:
		return s.VegScores.Low
	case vegGrams >= s.VegThresholds.High:
		return s.VegScores.High
	default:
		return s.VegScores.Mid
	}
}
