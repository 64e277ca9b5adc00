package output

import (
	"fmt"

	"github.com/crimson-sun/shelf/internal/model"
)

// Verbosity controls how much evidence a written verdict carries.
type Verbosity int

const (
	Minimal Verbosity = iota
	Standard
)

// ParseVerbosity maps a configuration value onto a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "minimal":
		return Minimal, nil
	case "standard", "":
		return Standard, nil
	}
	return Standard, fmt.Errorf("output: unknown verbosity %q", s)
}

func (v Verbosity) String() string {
	if v == Minimal {
		return "minimal"
	}
	return "standard"
}

// FormatVerdict returns a copy of the verdict with fields stripped according to verbosity.
// At Minimal: Classification and Breadcrumb are dropped, and warnings keep
// their message and fix but not their keyword evidence.
// At Standard: all fields preserved.
func FormatVerdict(v model.Verdict, verbosity Verbosity) model.Verdict {
	if verbosity != Minimal {
		return v
	}
	v.Classification = nil
	v.Breadcrumb = nil
	if len(v.Warnings) > 0 {
		ws := make([]model.ValidationWarning, len(v.Warnings))
		for i, w := range v.Warnings {
			w.Keywords = nil
			ws[i] = w
		}
		v.Warnings = ws
	}
	return v
}
