package model

// DefaultPriority applies to keyword rules declared without a priority.
const DefaultPriority = 5

// KeywordRule associates a keyword with a target category and an optional
// subcategory display name. Higher priority wins when several rules match.
type KeywordRule struct {
	Keyword     string `json:"keyword" yaml:"keyword"`
	CategoryID  int    `json:"category_id" yaml:"category_id"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Priority    int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// EffectivePriority returns the rule priority, substituting DefaultPriority for zero.
func (r KeywordRule) EffectivePriority() int {
	if r.Priority == 0 {
		return DefaultPriority
	}
	return r.Priority
}

// Synonym maps a common word or abbreviation onto a main category.
type Synonym struct {
	Keyword    string `json:"keyword" yaml:"keyword"`
	CategoryID int    `json:"category_id" yaml:"category_id"`
}

// Family groups subcategory slugs that legitimately share vocabulary,
// e.g. laptops and PC parts both mention CPUs.
type Family struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}
