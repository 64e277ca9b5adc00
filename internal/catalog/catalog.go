// Package catalog reads and writes the YAML file that carries Shelf's
// static data: the category tree, keyword rules, synonyms and families.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/shelf/internal/engine/matcher"
	"github.com/crimson-sun/shelf/internal/engine/resolver"
	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/engine/validator"
	"github.com/crimson-sun/shelf/internal/model"
)

// ErrEmpty is returned when a catalog document has no content.
var ErrEmpty = errors.New("catalog: empty document")

// Catalog is the static data an engine is built from. Sections are applied
// in declaration order; rule order decides priority ties.
type Catalog struct {
	Categories []*model.CategoryNode `yaml:"categories,omitempty"`
	Rules      []model.KeywordRule   `yaml:"rules,omitempty"`
	Synonyms   []model.Synonym       `yaml:"synonyms,omitempty"`
	Families   []model.Family        `yaml:"families,omitempty"`
}

// Default returns the built-in catalog. Each call returns fresh data.
func Default() Catalog {
	return Catalog{
		Categories: taxonomy.DefaultRoots(),
		Rules:      matcher.DefaultRules(),
		Synonyms:   resolver.DefaultSynonyms(),
		Families:   validator.DefaultFamilies(),
	}
}

// WithDefaults fills every section the catalog leaves out from Default.
// A file may therefore replace only the rule table, for example.
func (c Catalog) WithDefaults() Catalog {
	def := Default()
	if c.Categories == nil {
		c.Categories = def.Categories
	}
	if c.Rules == nil {
		c.Rules = def.Rules
	}
	if c.Synonyms == nil {
		c.Synonyms = def.Synonyms
	}
	if c.Families == nil {
		c.Families = def.Families
	}
	return c
}

// Clone returns a deep copy of c. The category tree must be acyclic, which
// holds for any catalog an engine was built from.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Categories: model.CloneNodes(c.Categories),
		Rules:      slices.Clone(c.Rules),
		Synonyms:   slices.Clone(c.Synonyms),
	}
	if c.Families != nil {
		out.Families = make([]model.Family, len(c.Families))
		for i, f := range c.Families {
			out.Families[i] = model.Family{Name: f.Name, Members: slices.Clone(f.Members)}
		}
	}
	return out
}

// Load decodes a catalog document. Unknown keys are rejected. Missing
// sections stay nil; call WithDefaults to fill them.
func Load(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, ErrEmpty
		}
		return Catalog{}, fmt.Errorf("catalog: decode: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from path and fills missing sections with defaults.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c.WithDefaults(), nil
}

// Marshal writes c as a YAML document.
func Marshal(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	return enc.Close()
}
