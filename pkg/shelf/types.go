package shelf

import (
	"github.com/crimson-sun/shelf/internal/catalog"
	"github.com/crimson-sun/shelf/internal/engine"
	"github.com/crimson-sun/shelf/internal/engine/attributes"
	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/engine/validator"
	"github.com/crimson-sun/shelf/internal/model"
)

// Public names for the engine's value types. They are aliases, so values
// move between this package and the CLI's JSON without conversion.
type (
	Names               = model.Names
	CategoryNode        = model.CategoryNode
	AttributeDefinition = model.AttributeDefinition
	AttributeKind       = model.AttributeKind
	KeywordRule         = model.KeywordRule
	Synonym             = model.Synonym
	Family              = model.Family
	Classification      = model.Classification
	Suggestion          = model.Suggestion
	SuggestionOutcome   = engine.SuggestionOutcome
	Selection           = model.Selection
	Crumb               = model.Crumb
	Warning             = model.ValidationWarning
	WarningKind         = model.WarningKind
	Severity            = model.Severity
	SuggestedFix        = model.SuggestedFix
	Draft               = model.Draft
	Verdict             = model.Verdict

	// Input is a listing's text plus its current selection.
	Input = validator.Input
	// Result is the outcome of one validation cycle.
	Result = validator.Result
	// AttributeCheck lists the required attributes a listing is missing.
	AttributeCheck = attributes.Result
	// Catalog is the static data a Shelf is built from.
	Catalog = catalog.Catalog
	// Entry is one row of the flattened tree.
	Entry = taxonomy.Entry
)

const (
	SeverityInfo    = model.SeverityInfo
	SeverityWarning = model.SeverityWarning
	SeverityError   = model.SeverityError

	WarningMismatch   = model.WarningMismatch
	WarningSuggestion = model.WarningSuggestion
)

// DefaultCatalog returns a fresh copy of the built-in catalog, for callers
// that want to extend it before passing it to WithCatalog.
func DefaultCatalog() Catalog {
	return catalog.Default()
}
