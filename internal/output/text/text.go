// Package text writes verdicts as coloured, human-readable lines.
package text

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/crimson-sun/shelf/internal/model"
	"github.com/crimson-sun/shelf/internal/output"
)

// Option configures a text Output.
type Option func(*Output)

// WithColor forces colour on or off. By default fatih/color decides from
// the terminal and NO_COLOR.
func WithColor(enabled bool) Option {
	return func(o *Output) {
		for _, c := range o.palette() {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithThai renders names and messages in Thai instead of English.
func WithThai() Option {
	return func(o *Output) { o.thai = true }
}

// Output renders one block per verdict.
type Output struct {
	w         io.Writer
	mu        sync.Mutex
	verbosity output.Verbosity
	thai      bool

	id, ok, bad, faint *color.Color
	severity           map[model.Severity]*color.Color
}

// New creates a text Output writing to w.
func New(w io.Writer, verbosity output.Verbosity, opts ...Option) *Output {
	o := &Output{
		w:         w,
		verbosity: verbosity,
		id:        color.New(color.Bold),
		ok:        color.New(color.FgGreen),
		bad:       color.New(color.FgRed),
		faint:     color.New(color.Faint),
		severity: map[model.Severity]*color.Color{
			model.SeverityError:   color.New(color.FgRed, color.Bold),
			model.SeverityWarning: color.New(color.FgYellow),
			model.SeverityInfo:    color.New(color.FgCyan),
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Output) palette() []*color.Color {
	cs := []*color.Color{o.id, o.ok, o.bad, o.faint}
	for _, sev := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityInfo} {
		cs = append(cs, o.severity[sev])
	}
	return cs
}

func (o *Output) name(n model.Names) string {
	if o.thai && n.TH != "" {
		return n.TH
	}
	if n.EN != "" {
		return n.EN
	}
	return n.TH
}

func (o *Output) Write(_ context.Context, v model.Verdict) error {
	v = output.FormatVerdict(v, o.verbosity)

	var b strings.Builder
	o.id.Fprintf(&b, "[%s]", v.ID)
	b.WriteString(" ")
	switch {
	case len(v.Breadcrumb) > 0:
		trail := make([]string, len(v.Breadcrumb))
		for i, c := range v.Breadcrumb {
			trail[i] = o.name(c.Name)
		}
		b.WriteString(strings.Join(trail, " › "))
	case v.CategoryID != 0:
		fmt.Fprintf(&b, "category %d", v.CategoryID)
		if v.Subcategory != "" {
			fmt.Fprintf(&b, " / %s", v.Subcategory)
		}
	default:
		o.faint.Fprint(&b, "uncategorised")
	}
	if v.CategorySource != "" {
		o.faint.Fprintf(&b, " (%s)", v.CategorySource)
	}
	b.WriteString("  ")
	if v.Publishable {
		o.ok.Fprint(&b, "publishable")
	} else {
		o.bad.Fprint(&b, "not publishable")
	}
	b.WriteString("\n")

	for _, w := range v.Warnings {
		sev, ok := o.severity[w.Severity]
		if !ok {
			sev = o.faint
		}
		b.WriteString("  ")
		sev.Fprintf(&b, "%-7s", w.Severity)
		b.WriteString(" ")
		b.WriteString(o.name(w.Message))
		if w.Fix != nil {
			fmt.Fprintf(&b, " → %s", o.name(w.Fix.Action))
		}
		b.WriteString("\n")
	}
	if len(v.MissingAttributes) > 0 {
		fmt.Fprintf(&b, "  missing: %s\n", strings.Join(v.MissingAttributes, ", "))
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := io.WriteString(o.w, b.String()); err != nil {
		return fmt.Errorf("text output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
