package catalog

// PoolItem is a candidate ingredient eligible for a diet and category.
// Only flavor items carry their own gram range; for the other
// categories the template slot's range governs serving size.
type PoolItem struct {
	DietKey  string     `json:"dietKey"`
	Category Category   `json:"category"`
	ItemKey  string     `json:"itemKey"`
	NevoCode string     `json:"nevoCode,omitempty"`
	Name     string     `json:"name"`
	Active   bool       `json:"active"`
	Grams    *GramRange `json:"grams,omitempty"`
}

// Validate validates identity fields and the flavor-only gram range rule.
func (p PoolItem) Validate() error {
	if p.ItemKey == "" {
		return ErrItemKeyRequired
	}
	if p.Name == "" {
		return ErrItemNameRequired
	}
	if !p.Category.IsValid() {
		return ErrInvalidCategory
	}
	if p.Category == CategoryFlavor {
		if p.Grams == nil {
			return ErrFlavorGramsRequired
		}
		return p.Grams.Validate(FlavorItemGramCeiling)
	}
	if p.Grams != nil {
		return ErrUnexpectedGramRange
	}
	return nil
}
