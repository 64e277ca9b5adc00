package shelf

import (
	"github.com/crimson-sun/shelf/internal/catalog"
	"github.com/crimson-sun/shelf/internal/engine"
	"github.com/crimson-sun/shelf/internal/engine/validator"
)

type options struct {
	catalogPath   string
	catalog       *catalog.Catalog
	errorPriority int
	warnPriority  int
	threshold     float64
}

// Option configures a Shelf instance.
type Option func(*options)

// WithCatalogFile loads categories, rules, synonyms and families from a YAML
// file. Sections the file leaves out keep their built-in values.
func WithCatalogFile(path string) Option {
	return func(o *options) {
		o.catalogPath = path
	}
}

// WithCatalog uses c instead of the built-in catalog. Empty sections of c
// keep their built-in values. Takes precedence over WithCatalogFile.
// The Shelf keeps its own copy; later changes to c have no effect.
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		o.catalog = &c
	}
}

// WithErrorPriority sets the rule priority at or above which a mismatch is
// reported as an error. Default: 9.
func WithErrorPriority(p int) Option {
	return func(o *options) {
		o.errorPriority = p
	}
}

// WithWarnPriority sets the rule priority at or above which a mismatch is
// reported as a warning rather than info. Default: 7.
func WithWarnPriority(p int) Option {
	return func(o *options) {
		o.warnPriority = p
	}
}

// WithAutoApplyThreshold sets the minimum suggestion confidence applied
// without confirmation. Default: 0.3.
func WithAutoApplyThreshold(t float64) Option {
	return func(o *options) {
		o.threshold = t
	}
}

func defaultOptions() options {
	p := validator.DefaultPolicy()
	return options{
		errorPriority: p.ErrorPriority,
		warnPriority:  p.WarnPriority,
		threshold:     engine.DefaultAutoApplyThreshold,
	}
}

// resolveCatalog picks the catalog the options describe. An explicit
// catalog beats a file, and a file beats the built-in one.
func resolveCatalog(o options) (catalog.Catalog, error) {
	switch {
	case o.catalog != nil:
		return o.catalog.WithDefaults(), nil
	case o.catalogPath != "":
		return catalog.LoadFile(o.catalogPath)
	}
	return catalog.Default(), nil
}
