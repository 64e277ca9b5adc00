// Package resolver maps category labels produced outside Shelf, such as the
// vision service's suggestion, onto main category ids.
package resolver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/engine/textnorm"
	"github.com/crimson-sun/shelf/internal/model"
)

// ErrInvalidSynonym is returned by New for synonyms without a keyword or
// pointing at a category the taxonomy does not have.
var ErrInvalidSynonym = errors.New("invalid synonym")

// Method records which step resolved a label.
type Method string

const (
	MethodNone        Method = ""
	MethodExact       Method = "exact"
	MethodContainment Method = "containment"
	MethodSynonym     Method = "synonym"
)

type mainName struct {
	id     int
	th, en string // normalised, possibly empty
}

type synonym struct {
	keyword string
	id      int
}

// Resolver is immutable after New returns and safe for concurrent use.
type Resolver struct {
	mains    []mainName
	synonyms []synonym
}

// New builds a resolver over the main categories of tax.
func New(tax *taxonomy.Taxonomy, synonyms []model.Synonym) (*Resolver, error) {
	r := &Resolver{}
	for _, root := range tax.Roots() {
		id, err := strconv.Atoi(root.ID)
		if err != nil {
			return nil, fmt.Errorf("resolver: main category %q: %w", root.Slug, err)
		}
		r.mains = append(r.mains, mainName{
			id: id,
			th: textnorm.Normalize(root.Name.TH),
			en: textnorm.Normalize(root.Name.EN),
		})
	}
	for _, s := range synonyms {
		kw := textnorm.Normalize(s.Keyword)
		if kw == "" {
			return nil, fmt.Errorf("resolver: synonym for category %d has no keyword: %w", s.CategoryID, ErrInvalidSynonym)
		}
		if _, ok := tax.Main(s.CategoryID); !ok {
			return nil, fmt.Errorf("resolver: synonym %q targets unknown category %d: %w", s.Keyword, s.CategoryID, ErrInvalidSynonym)
		}
		r.synonyms = append(r.synonyms, synonym{keyword: kw, id: s.CategoryID})
	}
	return r, nil
}

// Resolve maps label onto a main category id. The second return value is
// false when the label could not be resolved; callers must then leave the
// category unset.
func (r *Resolver) Resolve(label string) (int, bool) {
	id, m := r.ResolveMethod(label)
	return id, m != MethodNone
}

// ResolveMethod is Resolve that also reports which step succeeded.
func (r *Resolver) ResolveMethod(label string) (int, Method) {
	q := textnorm.Normalize(label)
	if q == "" {
		return 0, MethodNone
	}

	for _, m := range r.mains {
		if q == m.th || q == m.en {
			return m.id, MethodExact
		}
	}
	for _, m := range r.mains {
		if contains(q, m.th) || contains(q, m.en) {
			return m.id, MethodContainment
		}
	}
	for _, s := range r.synonyms {
		if strings.Contains(q, s.keyword) {
			return s.id, MethodSynonym
		}
	}
	return 0, MethodNone
}

// contains reports containment in either direction. An empty name never matches.
func contains(label, name string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(label, name) || strings.Contains(name, label)
}

// ResolveSuggestion resolves the Thai label of s, falling back to the English one.
func (r *Resolver) ResolveSuggestion(s model.Suggestion) (int, bool) {
	if id, ok := r.Resolve(s.Label.TH); ok {
		return id, true
	}
	return r.Resolve(s.Label.EN)
}
