// Package attributes derives the form fields of a taxonomy node and checks
// values supplied for them.
package attributes

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/model"
)

// Result is the outcome of Validate.
type Result struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"` // required attribute names without a value, merge order
}

// Resolver answers attribute questions against a fixed taxonomy.
type Resolver struct {
	tax *taxonomy.Taxonomy
}

// New creates a Resolver for tax.
func New(tax *taxonomy.Taxonomy) *Resolver {
	return &Resolver{tax: tax}
}

// Fields returns every attribute a form for slug renders, in merge order.
func (r *Resolver) Fields(slug string) []model.AttributeDefinition {
	return r.tax.AttributesFor(slug)
}

// Required returns the required subset of Fields.
func (r *Resolver) Required(slug string) []model.AttributeDefinition {
	return filter(r.Fields(slug), func(a model.AttributeDefinition) bool { return a.Required })
}

// AIFillable returns the subset of Fields an automated suggestion may populate.
func (r *Resolver) AIFillable(slug string) []model.AttributeDefinition {
	return filter(r.Fields(slug), func(a model.AttributeDefinition) bool { return a.AIFillable })
}

func filter(attrs []model.AttributeDefinition, keep func(model.AttributeDefinition) bool) []model.AttributeDefinition {
	var out []model.AttributeDefinition
	for _, a := range attrs {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Validate reports whether every required attribute of slug has a non-empty
// value. It never fails; an unknown slug has no requirements and is valid.
func (r *Resolver) Validate(slug string, values map[string]any) Result {
	var missing []string
	seen := make(map[string]bool)
	for _, a := range r.Required(slug) {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		if IsEmpty(values[a.Name]) {
			missing = append(missing, a.Name)
		}
	}
	return Result{Valid: len(missing) == 0, Missing: missing}
}

// IsEmpty reports whether v counts as no value: nil, a blank string, or an
// empty list or map. false and 0 are values.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []string:
		return len(x) == 0
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}

// Prefill keeps the suggested values that may be applied without user
// confirmation: the attribute must be AI-fillable and the value must fit its
// kind. Select values must be one of the options; multi-select values are
// narrowed to known options. When a name is declared at several levels the
// deepest declaration decides.
func (r *Resolver) Prefill(slug string, suggested map[string]any) map[string]any {
	defs := make(map[string]model.AttributeDefinition)
	for _, a := range r.Fields(slug) {
		defs[a.Name] = a
	}

	out := make(map[string]any)
	for name, v := range suggested {
		def, ok := defs[name]
		if !ok || !def.AIFillable || IsEmpty(v) {
			continue
		}
		if coerced, ok := coerce(def, v); ok {
			out[name] = coerced
		}
	}
	return out
}

func coerce(def model.AttributeDefinition, v any) (any, bool) {
	switch def.Kind {
	case model.KindSelect:
		s, ok := v.(string)
		if !ok || !def.HasOption(s) {
			return nil, false
		}
		return s, true
	case model.KindMultiSelect:
		var kept []string
		for _, s := range stringList(v) {
			if def.HasOption(s) {
				kept = append(kept, s)
			}
		}
		return kept, len(kept) > 0
	case model.KindText:
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		return strings.TrimSpace(s), true
	case model.KindNumber:
		return number(v)
	case model.KindBoolean:
		b, ok := v.(bool)
		return b, ok
	}
	return nil, false
}

func stringList(v any) []string {
	switch x := v.(type) {
	case string:
		return []string{x}
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(x), ",", ""), 64)
		return f, err == nil
	}
	return 0, false
}
