package catalog

// TemplateSlot binds one of the four fixed slot roles to its serving
// size range.
type TemplateSlot struct {
	Key   SlotKey   `json:"key"`
	Grams GramRange `json:"grams"`
}

// Validate validates the slot key and its gram range.
func (s TemplateSlot) Validate() error {
	if !s.Key.IsValid() {
		return ErrTemplateSlotSet
	}
	return s.Grams.Validate(TemplateSlotGramCeiling)
}

// RecipeTemplate is the fixed slot structure a meal is synthesized from.
// A valid template always carries exactly the four slots protein, veg1,
// veg2 and fat, each exactly once.
type RecipeTemplate struct {
	ID          string         `json:"id"`
	DietKey     string         `json:"dietKey"`
	DisplayName string         `json:"displayName"`
	Slots       []TemplateSlot `json:"slots"`
	StepCount   int            `json:"stepCount"`
	Active      bool           `json:"active"`
}

// Validate enforces the template invariants: identity fields present,
// exactly the canonical slot set with no duplicates or omissions, and
// gram ordering on every slot.
func (t RecipeTemplate) Validate() error {
	if t.ID == "" {
		return ErrTemplateIDRequired
	}
	if t.DisplayName == "" {
		return ErrTemplateNameRequired
	}
	if t.StepCount <= 0 {
		return ErrInvalidStepCount
	}
	if len(t.Slots) != len(TemplateSlotKeys) {
		return ErrTemplateSlotCount
	}

	seen := make(map[SlotKey]bool, len(t.Slots))
	for _, slot := range t.Slots {
		if err := slot.Validate(); err != nil {
			return err
		}
		if seen[slot.Key] {
			return ErrTemplateSlotSet
		}
		seen[slot.Key] = true
	}
	for _, key := range TemplateSlotKeys {
		if !seen[key] {
			return ErrTemplateSlotSet
		}
	}
	return nil
}

// Slot returns the template slot for a key.
func (t RecipeTemplate) Slot(key SlotKey) (TemplateSlot, bool) {
	for _, slot := range t.Slots {
		if slot.Key == key {
			return slot, true
		}
	}
	return TemplateSlot{}, false
}
