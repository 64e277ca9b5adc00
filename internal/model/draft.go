package model

// Suggestion is the category guess produced by the external vision service.
type Suggestion struct {
	Label      Names   `json:"label"`
	Confidence float64 `json:"confidence"` // 0..1
	Reasoning  Names   `json:"reasoning,omitempty"`
}

// Draft is a listing under construction, as consumed by batch checking.
type Draft struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CategoryID  int            `json:"category_id,omitempty"`
	Subcategory string         `json:"subcategory,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Suggestion  *Suggestion    `json:"suggestion,omitempty"`
}

// Classification is the keyword matcher's guess for a piece of text.
type Classification struct {
	Matched     bool   `json:"matched"`
	CategoryID  int    `json:"category_id,omitempty"`
	Subcategory string `json:"subcategory,omitempty"` // display name from the rule table
	Keyword     string `json:"keyword,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Name Names  `json:"name"`
	Slug string `json:"slug"`
}

// Verdict is Shelf's output type for a checked draft.
type Verdict struct {
	ID                string              `json:"id"`
	CategoryID        int                 `json:"category_id,omitempty"`
	Subcategory       string              `json:"subcategory,omitempty"`
	CategorySource    string              `json:"category_source,omitempty"` // "user", "suggestion" or "keywords"
	Breadcrumb        []Crumb             `json:"breadcrumb,omitempty"`
	Classification    *Classification     `json:"classification,omitempty"`
	Warnings          []ValidationWarning `json:"warnings,omitempty"`
	MissingAttributes []string            `json:"missing_attributes,omitempty"`
	Publishable       bool                `json:"publishable"`
}
