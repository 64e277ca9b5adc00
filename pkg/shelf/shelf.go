package shelf

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/shelf/internal/engine"
	"github.com/crimson-sun/shelf/internal/engine/validator"
)

// Shelf is a listing classification and taxonomy-consistency engine.
// Safe for concurrent use.
type Shelf struct {
	engine  *engine.Engine
	catalog Catalog
}

// New builds a Shelf from the built-in catalog, or the one the options name.
func New(opts ...Option) (*Shelf, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cat, err := resolveCatalog(o)
	if err != nil {
		return nil, fmt.Errorf("shelf: %w", err)
	}

	eng, err := engine.Build(cat, engine.Config{
		Policy: validator.Policy{
			ErrorPriority: o.errorPriority,
			WarnPriority:  o.warnPriority,
		},
		AutoApplyThreshold: o.threshold,
	})
	if err != nil {
		return nil, fmt.Errorf("shelf: %w", err)
	}
	return &Shelf{engine: eng, catalog: cat.Clone()}, nil
}

// Classify guesses a main category, and usually a subcategory name, for
// free text. Blank or unrecognised text yields Matched == false.
func (s *Shelf) Classify(text string) Classification {
	return s.engine.Classify(text)
}

// ResolveCategoryLabel maps an external category label, such as the vision
// service's, onto a main category id. ok is false when nothing matches.
func (s *Shelf) ResolveCategoryLabel(label string) (id int, ok bool) {
	return s.engine.ResolveLabel(label)
}

// ApplySuggestion resolves a vision-service suggestion and reports whether
// it is confident enough to apply without confirmation.
func (s *Shelf) ApplySuggestion(sg Suggestion) SuggestionOutcome {
	return s.engine.ApplySuggestion(sg)
}

// Attributes returns the form fields for a category node, merged from its
// main category down. Unknown slugs yield nil.
func (s *Shelf) Attributes(slug string) []AttributeDefinition {
	return s.engine.Attributes(slug)
}

// RequiredAttributes returns the fields that must have a value before publishing.
func (s *Shelf) RequiredAttributes(slug string) []AttributeDefinition {
	return s.engine.RequiredAttributes(slug)
}

// AIFillableAttributes returns the fields a suggestion may fill unconfirmed.
func (s *Shelf) AIFillableAttributes(slug string) []AttributeDefinition {
	return s.engine.AIFillableAttributes(slug)
}

// ValidateAttributes lists the required fields of slug without a value.
func (s *Shelf) ValidateAttributes(slug string, values map[string]any) AttributeCheck {
	return s.engine.ValidateAttributes(slug, values)
}

// PrefillAttributes keeps the suggested values that may be applied
// unconfirmed, coerced to each field's kind.
func (s *Shelf) PrefillAttributes(slug string, suggested map[string]any) map[string]any {
	return s.engine.PrefillAttributes(slug, suggested)
}

// Validate runs one validation cycle over a listing's text and selection.
func (s *Shelf) Validate(in Input) Result {
	return s.engine.ValidateSelection(in)
}

// ValidateSelection is Validate for callers holding the form fields
// separately. It returns only the warnings.
func (s *Shelf) ValidateSelection(title, description string, categoryID int, subcategory string) []Warning {
	return s.engine.ValidateSelection(Input{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		Subcategory: subcategory,
	}).Warnings
}

// SelectCategory switches sel to a new main category, clearing a
// subcategory that does not belong to it.
func (s *Shelf) SelectCategory(sel Selection, categoryID int) Selection {
	return s.engine.SelectCategory(sel, categoryID)
}

// Breadcrumb returns the path from the main category to slug.
func (s *Shelf) Breadcrumb(slug string) []Crumb {
	return s.engine.Breadcrumb(slug)
}

// Check evaluates a draft listing end to end.
func (s *Shelf) Check(d Draft) Verdict {
	return s.engine.Check(d)
}

// CheckBatch checks drafts concurrently and returns their verdicts in
// input order. It stops early when ctx is cancelled.
func (s *Shelf) CheckBatch(ctx context.Context, drafts []Draft) ([]Verdict, error) {
	verdicts := make([]Verdict, len(drafts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, d := range drafts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			verdicts[i] = s.engine.Check(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

// Catalog returns a copy of the catalog this Shelf was built from.
// Changing it does not affect the Shelf.
func (s *Shelf) Catalog() Catalog {
	return s.catalog.Clone()
}
