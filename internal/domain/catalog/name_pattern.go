package catalog

import "strings"

// Recognized substitution tokens in a name pattern.
const (
	TokenTemplateName = "{templateName}"
	TokenProtein      = "{protein}"
	TokenVeg1         = "{veg1}"
	TokenVeg2         = "{veg2}"
	TokenFlavor       = "{flavor}"
)

// NamePattern renders a meal display name for a (diet, template, meal
// slot) combination by substituting ingredient display names for tokens.
type NamePattern struct {
	DietKey     string   `json:"dietKey"`
	TemplateKey string   `json:"templateKey"`
	Slot        MealSlot `json:"slot"`
	Pattern     string   `json:"pattern"`
	Active      bool     `json:"active"`
}

// Validate validates the pattern row.
func (p NamePattern) Validate() error {
	if strings.TrimSpace(p.Pattern) == "" {
		return ErrPatternRequired
	}
	if !p.Slot.IsValid() {
		return ErrInvalidMealSlot
	}
	return nil
}

// Render substitutes the recognized tokens. Unknown tokens are left
// untouched rather than erased; missing values substitute to "".
func (p NamePattern) Render(values map[string]string) string {
	out := p.Pattern
	for _, token := range []string{TokenTemplateName, TokenProtein, TokenVeg1, TokenVeg2, TokenFlavor} {
		out = strings.ReplaceAll(out, token, values[token])
	}
	return strings.Join(strings.Fields(out), " ")
}
