package matcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crimson-sun/shelf/internal/engine/textnorm"
	"github.com/crimson-sun/shelf/internal/model"
)

// ErrInvalidRule is returned by New for rules without a keyword or target.
var ErrInvalidRule = errors.New("invalid keyword rule")

type compiled struct {
	rule     model.KeywordRule
	keyword  string // folded, untrimmed
	priority int
}

// Matcher scans normalised text against a prioritised keyword table.
// It is immutable after New returns and safe for concurrent use.
type Matcher struct {
	rules []compiled
}

// New compiles a rule table. Declaration order is significant: among rules
// of equal priority the earlier one wins.
func New(rules []model.KeywordRule) (*Matcher, error) {
	m := &Matcher{rules: make([]compiled, 0, len(rules))}
	for i, r := range rules {
		kw := textnorm.Fold(r.Keyword)
		if strings.TrimSpace(kw) == "" {
			return nil, fmt.Errorf("matcher: rule %d has no keyword: %w", i, ErrInvalidRule)
		}
		if r.CategoryID <= 0 {
			return nil, fmt.Errorf("matcher: rule %q targets category %d: %w", r.Keyword, r.CategoryID, ErrInvalidRule)
		}
		if r.Priority < 0 {
			return nil, fmt.Errorf("matcher: rule %q has negative priority: %w", r.Keyword, ErrInvalidRule)
		}
		m.rules = append(m.rules, compiled{rule: r, keyword: kw, priority: r.EffectivePriority()})
	}
	return m, nil
}

// Len returns the number of rules.
func (m *Matcher) Len() int {
	return len(m.rules)
}

// Rules returns a copy of the rule table in declaration order.
func (m *Matcher) Rules() []model.KeywordRule {
	out := make([]model.KeywordRule, len(m.rules))
	for i, c := range m.rules {
		out[i] = c.rule
	}
	return out
}

// Classify returns the first rule holding the strictly greatest priority
// among all rules whose keyword occurs in one of texts. Each text is matched
// on its own, so a keyword never spans two of them. No hit yields a zero
// Classification with Matched false.
func (m *Matcher) Classify(texts ...string) model.Classification {
	fields := normalizeAll(texts)
	if len(fields) == 0 {
		return model.Classification{}
	}

	var best *compiled
	for i := range m.rules {
		c := &m.rules[i]
		if !containsAny(fields, c.keyword) {
			continue
		}
		// Strictly greater: equal priorities keep the earlier rule.
		if best == nil || c.priority > best.priority {
			best = c
		}
	}
	if best == nil {
		return model.Classification{}
	}
	return model.Classification{
		Matched:     true,
		CategoryID:  best.rule.CategoryID,
		Subcategory: best.rule.Subcategory,
		Keyword:     best.rule.Keyword,
		Priority:    best.priority,
	}
}

// Hits returns every rule whose keyword occurs in one of texts, in
// declaration order. Priorities in the result are effective priorities.
func (m *Matcher) Hits(texts ...string) []model.KeywordRule {
	fields := normalizeAll(texts)
	if len(fields) == 0 {
		return nil
	}
	var hits []model.KeywordRule
	for _, c := range m.rules {
		if containsAny(fields, c.keyword) {
			r := c.rule
			r.Priority = c.priority
			hits = append(hits, r)
		}
	}
	return hits
}

// normalizeAll normalises texts and drops the blank ones.
func normalizeAll(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if s := textnorm.Normalize(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsAny(fields []string, keyword string) bool {
	for _, f := range fields {
		if strings.Contains(f, keyword) {
			return true
		}
	}
	return false
}
