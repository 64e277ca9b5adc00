package model

// Severity grades a validation warning.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rank orders severities: info < warning < error. Unknown values rank lowest.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// WarningKind says what a warning is about.
type WarningKind string

const (
	WarningMismatch   WarningKind = "mismatch"   // selection contradicts the text
	WarningSuggestion WarningKind = "suggestion" // nothing selected, text implies a subcategory
)

// SuggestedFix points at the subcategory the text implies.
type SuggestedFix struct {
	CategoryID      int    `json:"category_id"`
	SubcategoryID   string `json:"subcategory_id"`
	SubcategorySlug string `json:"subcategory_slug"`
	SubcategoryName Names  `json:"subcategory_name"`
	Action          Names  `json:"action"`
}

// ValidationWarning is an advisory finding about the current selection.
type ValidationWarning struct {
	Kind     WarningKind   `json:"kind"`
	Severity Severity      `json:"severity"`
	Message  Names         `json:"message"`
	Keywords []string      `json:"keywords,omitempty"` // matched evidence, strongest first
	Fix      *SuggestedFix `json:"suggested_fix,omitempty"`
}

// Selection is the caller-owned category choice of a listing form.
type Selection struct {
	CategoryID  int    `json:"category_id,omitempty"`
	Subcategory string `json:"subcategory,omitempty"` // slug of a level 2 or 3 node
}
