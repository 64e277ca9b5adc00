// Package validator cross-checks a listing's chosen subcategory against the
// keyword evidence in its title and description.
package validator

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/crimson-sun/shelf/internal/engine/matcher"
	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/model"
)

// ErrInvalidFamily is returned by New for families naming unknown slugs.
var ErrInvalidFamily = errors.New("invalid subcategory family")

// ErrInvalidPolicy is returned by New when the error threshold is below the
// warning threshold.
var ErrInvalidPolicy = errors.New("invalid severity policy")

// Policy maps the priority of the winning keyword rule onto a severity.
type Policy struct {
	ErrorPriority int // at or above: error
	WarnPriority  int // at or above: warning; below: info
}

// DefaultPolicy returns the built-in thresholds, 9 for error and 7 for warning.
func DefaultPolicy() Policy {
	return Policy{ErrorPriority: 9, WarnPriority: 7}
}

// Severity grades a mismatch backed by a rule of the given priority.
func (p Policy) Severity(priority int) model.Severity {
	switch {
	case priority >= p.ErrorPriority:
		return model.SeverityError
	case priority >= p.WarnPriority:
		return model.SeverityWarning
	default:
		return model.SeverityInfo
	}
}

// Input is the live state of a listing form.
type Input struct {
	Title       string
	Description string
	CategoryID  int
	Subcategory string // slug; empty when nothing is selected
}

// Result is the outcome of one validation cycle.
type Result struct {
	Selection      model.Selection           // reconciled selection
	Reset          bool                      // the input subcategory was cleared
	Classification model.Classification      // matcher output for the text
	Inferred       string                    // slug the text points at, if any
	Warnings       []model.ValidationWarning // advisory only
}

// Validator is immutable after New returns and safe for concurrent use.
type Validator struct {
	tax      *taxonomy.Taxonomy
	matcher  *matcher.Matcher
	policy   Policy
	families map[string][]string // slug → family names
}

// New creates a Validator. Every family member must be a slug of tax.
func New(tax *taxonomy.Taxonomy, m *matcher.Matcher, families []model.Family, policy Policy) (*Validator, error) {
	if policy.ErrorPriority < policy.WarnPriority {
		return nil, fmt.Errorf("validator: error priority %d below warn priority %d: %w",
			policy.ErrorPriority, policy.WarnPriority, ErrInvalidPolicy)
	}
	v := &Validator{
		tax:      tax,
		matcher:  m,
		policy:   policy,
		families: make(map[string][]string),
	}
	for _, f := range families {
		if f.Name == "" {
			return nil, fmt.Errorf("validator: unnamed family: %w", ErrInvalidFamily)
		}
		for _, slug := range f.Members {
			if _, ok := tax.FindBySlug(slug); !ok {
				return nil, fmt.Errorf("validator: family %q: unknown slug %q: %w", f.Name, slug, ErrInvalidFamily)
			}
			v.families[slug] = append(v.families[slug], f.Name)
		}
	}
	return v, nil
}

// Policy returns the severity thresholds in use.
func (v *Validator) Policy() Policy {
	return v.policy
}

// SelectCategory switches sel to a new main category. The subcategory is
// kept only if it lies under the new category.
func (v *Validator) SelectCategory(sel model.Selection, categoryID int) model.Selection {
	next := model.Selection{CategoryID: categoryID, Subcategory: sel.Subcategory}
	if next.Subcategory != "" && !v.tax.Contains(categoryID, next.Subcategory) {
		next.Subcategory = ""
	}
	return next
}

// Infer classifies texts and maps the winning rule's subcategory name onto
// a taxonomy node. Each text is matched separately. The node is nil when the
// matcher is silent, the rule names no subcategory, or the name is unknown
// to the taxonomy.
func (v *Validator) Infer(texts ...string) (model.Classification, *model.CategoryNode) {
	cls := v.matcher.Classify(texts...)
	if !cls.Matched || cls.Subcategory == "" {
		return cls, nil
	}
	node, ok := v.tax.FindByName(cls.CategoryID, cls.Subcategory)
	if !ok {
		return cls, nil
	}
	return cls, node
}

// Validate runs one validation cycle.
func (v *Validator) Validate(in Input) Result {
	res := Result{Selection: v.SelectCategory(model.Selection{CategoryID: in.CategoryID, Subcategory: in.Subcategory}, in.CategoryID)}
	res.Reset = in.Subcategory != "" && res.Selection.Subcategory == ""

	// Title and description are matched apart so that a keyword cannot
	// straddle the two.
	texts := []string{in.Title, in.Description}
	cls, node := v.Infer(texts...)
	res.Classification = cls
	if node == nil {
		return res
	}
	res.Inferred = node.Slug

	selected := res.Selection.Subcategory
	if selected == "" {
		res.Warnings = append(res.Warnings, v.suggestion(cls, node, texts))
		return res
	}
	if selected == node.Slug || v.tax.IsAncestor(selected, node.Slug) || v.tax.IsAncestor(node.Slug, selected) {
		return res
	}
	if family, ok := v.sameFamily(selected, node.Slug); ok {
		slog.Debug("subcategory mismatch suppressed", "selected", selected, "inferred", node.Slug, "family", family)
		return res
	}

	w := v.mismatch(cls, node, texts)
	slog.Debug("subcategory mismatch",
		"selected", selected,
		"inferred", node.Slug,
		"keyword", cls.Keyword,
		"priority", cls.Priority,
		"severity", w.Severity,
	)
	res.Warnings = append(res.Warnings, w)
	return res
}

// sameFamily reports whether a and b, or any of their ancestors, share a family.
func (v *Validator) sameFamily(a, b string) (string, bool) {
	fa := v.familiesOf(a)
	for _, name := range v.familiesOf(b) {
		if slices.Contains(fa, name) {
			return name, true
		}
	}
	return "", false
}

func (v *Validator) familiesOf(slug string) []string {
	var out []string
	for _, c := range v.tax.Breadcrumb(slug) {
		out = append(out, v.families[c.Slug]...)
	}
	return out
}

func (v *Validator) suggestion(cls model.Classification, node *model.CategoryNode, texts []string) model.ValidationWarning {
	return model.ValidationWarning{
		Kind:     model.WarningSuggestion,
		Severity: model.SeverityInfo,
		Message: model.Names{
			TH: fmt.Sprintf(`ชื่อสินค้าน่าจะอยู่ในหมวด "%s"`, node.Name.TH),
			EN: fmt.Sprintf(`The title suggests "%s"`, node.Name.EN),
		},
		Keywords: v.evidence(cls, texts),
		Fix:      v.fix(node),
	}
}

func (v *Validator) mismatch(cls model.Classification, node *model.CategoryNode, texts []string) model.ValidationWarning {
	kw := strings.TrimSpace(cls.Keyword)
	return model.ValidationWarning{
		Kind:     model.WarningMismatch,
		Severity: v.policy.Severity(cls.Priority),
		Message: model.Names{
			TH: fmt.Sprintf(`ชื่อสินค้ามีคำว่า "%s" ซึ่งเหมาะกับ "%s" มากกว่าหมวดที่เลือก`, kw, node.Name.TH),
			EN: fmt.Sprintf(`The title mentions "%s", which fits "%s" better than the selected subcategory`, kw, node.Name.EN),
		},
		Keywords: v.evidence(cls, texts),
		Fix:      v.fix(node),
	}
}

func (v *Validator) fix(node *model.CategoryNode) *model.SuggestedFix {
	return &model.SuggestedFix{
		CategoryID:      v.tax.MainID(node.Slug),
		SubcategoryID:   node.ID,
		SubcategorySlug: node.Slug,
		SubcategoryName: node.Name,
		Action: model.Names{
			TH: fmt.Sprintf(`เปลี่ยนเป็น "%s"`, node.Name.TH),
			EN: fmt.Sprintf(`Switch to "%s"`, node.Name.EN),
		},
	}
}

// evidence lists the keywords of every hit that agrees with the winning
// rule's target, strongest first. Equal priorities keep declaration order.
func (v *Validator) evidence(cls model.Classification, texts []string) []string {
	var agreeing []model.KeywordRule
	for _, h := range v.matcher.Hits(texts...) {
		if h.CategoryID == cls.CategoryID && h.Subcategory == cls.Subcategory {
			agreeing = append(agreeing, h)
		}
	}
	slices.SortStableFunc(agreeing, func(a, b model.KeywordRule) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	out := make([]string, len(agreeing))
	for i, h := range agreeing {
		out[i] = strings.TrimSpace(h.Keyword)
	}
	return out
}

// Primary returns the most severe warning, the earliest one on ties, or nil.
func Primary(warnings []model.ValidationWarning) *model.ValidationWarning {
	var best *model.ValidationWarning
	for i := range warnings {
		if best == nil || warnings[i].Severity.Rank() > best.Severity.Rank() {
			best = &warnings[i]
		}
	}
	return best
}
