package engine

import (
	"fmt"
	"log/slog"

	"github.com/crimson-sun/shelf/internal/catalog"
	"github.com/crimson-sun/shelf/internal/engine/attributes"
	"github.com/crimson-sun/shelf/internal/engine/matcher"
	"github.com/crimson-sun/shelf/internal/engine/resolver"
	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/engine/validator"
	"github.com/crimson-sun/shelf/internal/model"
)

// DefaultAutoApplyThreshold is the minimum suggestion confidence applied
// without user confirmation.
const DefaultAutoApplyThreshold = 0.3

// Category sources reported in a Verdict.
const (
	SourceUser       = "user"
	SourceSuggestion = "suggestion"
	SourceKeywords   = "keywords"
)

// Config holds the tunable engine policy.
type Config struct {
	Policy             validator.Policy
	AutoApplyThreshold float64
}

// DefaultConfig returns the built-in policy.
func DefaultConfig() Config {
	return Config{Policy: validator.DefaultPolicy(), AutoApplyThreshold: DefaultAutoApplyThreshold}
}

// SuggestionOutcome reports what ApplySuggestion decided.
type SuggestionOutcome struct {
	CategoryID int     `json:"category_id,omitempty"`
	Resolved   bool    `json:"resolved"` // the label maps onto a main category
	Applied    bool    `json:"applied"`  // resolved and confident enough to apply unconfirmed
	Confidence float64 `json:"confidence"`
}

// Engine composes the taxonomy store, keyword matcher, label resolver,
// attribute resolver and subcategory validator. It is immutable and safe
// for concurrent use.
type Engine struct {
	taxonomy   *taxonomy.Taxonomy
	matcher    *matcher.Matcher
	resolver   *resolver.Resolver
	attributes *attributes.Resolver
	validator  *validator.Validator
	threshold  float64
}

// New creates an Engine with the provided components.
func New(tax *taxonomy.Taxonomy, m *matcher.Matcher, res *resolver.Resolver, val *validator.Validator, threshold float64) *Engine {
	return &Engine{
		taxonomy:   tax,
		matcher:    m,
		resolver:   res,
		attributes: attributes.New(tax),
		validator:  val,
		threshold:  threshold,
	}
}

// Build validates a catalog and wires every component from it.
func Build(cat catalog.Catalog, cfg Config) (*Engine, error) {
	if cfg.AutoApplyThreshold < 0 || cfg.AutoApplyThreshold > 1 {
		return nil, fmt.Errorf("engine: auto-apply threshold %v outside [0,1]", cfg.AutoApplyThreshold)
	}
	tax, err := taxonomy.New(cat.Categories)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	m, err := matcher.New(cat.Rules)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	for _, r := range cat.Rules {
		if _, ok := tax.Main(r.CategoryID); !ok {
			return nil, fmt.Errorf("engine: rule %q targets unknown category %d: %w", r.Keyword, r.CategoryID, matcher.ErrInvalidRule)
		}
	}
	res, err := resolver.New(tax, cat.Synonyms)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	val, err := validator.New(tax, m, cat.Families, cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	slog.Info("catalog loaded",
		"categories", len(tax.Roots()),
		"nodes", tax.Len(),
		"leaves", tax.LeafCount(),
		"rules", m.Len(),
		"synonyms", len(cat.Synonyms),
		"families", len(cat.Families),
	)
	return New(tax, m, res, val, cfg.AutoApplyThreshold), nil
}

// Taxonomy returns the underlying category tree.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.taxonomy }

// Rules returns the keyword table in declaration order.
func (e *Engine) Rules() []model.KeywordRule { return e.matcher.Rules() }

// Classify guesses a category for free text.
func (e *Engine) Classify(text string) model.Classification {
	return e.matcher.Classify(text)
}

// ResolveLabel maps an external category label onto a main category id.
func (e *Engine) ResolveLabel(label string) (int, bool) {
	return e.resolver.Resolve(label)
}

// ResolveLabelMethod is ResolveLabel that also reports which step matched.
func (e *Engine) ResolveLabelMethod(label string) (int, resolver.Method) {
	return e.resolver.ResolveMethod(label)
}

// ApplySuggestion resolves a vision-service suggestion and decides whether
// it is confident enough to apply without confirmation.
func (e *Engine) ApplySuggestion(s model.Suggestion) SuggestionOutcome {
	out := SuggestionOutcome{Confidence: s.Confidence}
	id, ok := e.resolver.ResolveSuggestion(s)
	if !ok {
		return out
	}
	out.CategoryID = id
	out.Resolved = true
	out.Applied = s.Confidence >= e.threshold
	return out
}

// Attributes returns the merged field list for slug.
func (e *Engine) Attributes(slug string) []model.AttributeDefinition {
	return e.attributes.Fields(slug)
}

// RequiredAttributes returns the required fields for slug.
func (e *Engine) RequiredAttributes(slug string) []model.AttributeDefinition {
	return e.attributes.Required(slug)
}

// AIFillableAttributes returns the fields an automated suggestion may fill.
func (e *Engine) AIFillableAttributes(slug string) []model.AttributeDefinition {
	return e.attributes.AIFillable(slug)
}

// ValidateAttributes checks that every required field of slug has a value.
func (e *Engine) ValidateAttributes(slug string, values map[string]any) attributes.Result {
	return e.attributes.Validate(slug, values)
}

// PrefillAttributes keeps the suggested values that may be applied unconfirmed.
func (e *Engine) PrefillAttributes(slug string, suggested map[string]any) map[string]any {
	return e.attributes.Prefill(slug, suggested)
}

// ValidateSelection runs one subcategory validation cycle.
func (e *Engine) ValidateSelection(in validator.Input) validator.Result {
	return e.validator.Validate(in)
}

// SelectCategory switches a selection to a new main category.
func (e *Engine) SelectCategory(sel model.Selection, categoryID int) model.Selection {
	return e.validator.SelectCategory(sel, categoryID)
}

// Breadcrumb returns the trail from the main category to slug.
func (e *Engine) Breadcrumb(slug string) []model.Crumb {
	return e.taxonomy.Breadcrumb(slug)
}

// Search finds nodes by name.
func (e *Engine) Search(query string) []taxonomy.SearchHit {
	return e.taxonomy.Search(query)
}

// Flatten lists the whole tree in pre-order.
func (e *Engine) Flatten() []taxonomy.Entry {
	return e.taxonomy.Flatten()
}

// Check evaluates a draft listing end to end.
func (e *Engine) Check(d model.Draft) model.Verdict {
	categoryID, sub, source := d.CategoryID, d.Subcategory, ""
	if categoryID != 0 {
		if _, ok := e.taxonomy.Main(categoryID); ok {
			source = SourceUser
		} else {
			categoryID, sub = 0, ""
		}
	}
	if categoryID == 0 && d.Suggestion != nil {
		if out := e.ApplySuggestion(*d.Suggestion); out.Applied {
			categoryID, source = out.CategoryID, SourceSuggestion
		}
	}
	cls := e.matcher.Classify(d.Title, d.Description)
	if categoryID == 0 && cls.Matched {
		categoryID, source = cls.CategoryID, SourceKeywords
	}

	res := e.validator.Validate(validator.Input{
		Title:       d.Title,
		Description: d.Description,
		CategoryID:  categoryID,
		Subcategory: sub,
	})

	v := model.Verdict{
		ID:             d.ID,
		CategoryID:     res.Selection.CategoryID,
		Subcategory:    res.Selection.Subcategory,
		CategorySource: source,
		Warnings:       res.Warnings,
	}
	if cls.Matched {
		v.Classification = &cls
	}

	slug := v.Subcategory
	if slug == "" {
		if main, ok := e.taxonomy.Main(v.CategoryID); ok {
			slug = main.Slug
		}
	}
	if slug != "" {
		v.Breadcrumb = e.taxonomy.Breadcrumb(slug)
		v.MissingAttributes = e.attributes.Validate(slug, d.Attributes).Missing
	}
	v.Publishable = v.CategoryID != 0 && v.Subcategory != "" && len(v.MissingAttributes) == 0

	if res.Reset {
		slog.Debug("orphaned subcategory cleared", "id", d.ID, "category", categoryID, "subcategory", d.Subcategory)
	}
	return v
}
