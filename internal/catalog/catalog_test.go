package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/model"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/small.yaml")
	require.NoError(t, err)

	require.Len(t, c.Categories, 2)
	auto := c.Categories[0]
	assert.Equal(t, "1", auto.ID)
	assert.Equal(t, model.Names{TH: "ยานยนต์", EN: "Automotive"}, auto.Name)
	assert.Equal(t, "🚗", auto.Icon)
	require.Len(t, auto.Attributes, 1)
	assert.Equal(t, model.KindSelect, auto.Attributes[0].Kind)
	assert.True(t, auto.Attributes[0].AIFillable)
	assert.Equal(t, "sedans", auto.Children[0].Children[0].Slug)
	assert.Equal(t, "Mobiles & Tablets", c.Categories[1].Name.EN)

	want := []model.KeywordRule{
		{Keyword: "honda", CategoryID: 1, Subcategory: "Sedans", Priority: 9},
		{Keyword: "iphone", CategoryID: 3, Subcategory: "Smartphones", Priority: 10},
		{Keyword: "fan ", CategoryID: 1},
	}
	if diff := cmp.Diff(want, c.Rules); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, c.Synonyms, 2)
	assert.Equal(t, []model.Family{{Name: "vehicles", Members: []string{"cars"}}}, c.Families)

	tax, err := taxonomy.New(c.Categories)
	require.NoError(t, err)
	assert.Equal(t, 5, tax.Len())
}

func TestLoadFileFillsMissingSections(t *testing.T) {
	c, err := LoadFile("testdata/rules-only.yaml")
	require.NoError(t, err)

	assert.Len(t, c.Rules, 1)
	assert.Len(t, c.Categories, 16)
	assert.NotEmpty(t, c.Synonyms)
	assert.NotEmpty(t, c.Families)
}

func TestCloneIsDeep(t *testing.T) {
	c, err := LoadFile("testdata/small.yaml")
	require.NoError(t, err)
	orig, err := LoadFile("testdata/small.yaml")
	require.NoError(t, err)

	cp := c.Clone()
	if diff := cmp.Diff(c, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	cp.Categories[0].Name.EN = "Changed"
	cp.Categories[0].Children = nil
	cp.Categories[0].Attributes[0].Options[0] = "changed"
	cp.Rules[0].Keyword = "changed"
	cp.Synonyms[0].Keyword = "changed"
	cp.Families[0].Members[0] = "changed"

	if diff := cmp.Diff(orig, c); diff != "" {
		t.Errorf("changing the clone changed the original (-want +got):\n%s", diff)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("rules:\n  - {keyword: honda, category: 1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog: decode")
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmpty)
}

func TestMarshalRoundTrip(t *testing.T) {
	def := Default()

	var buf bytes.Buffer
	require.NoError(t, Marshal(&buf, def))

	got, err := Load(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(def, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Categories[0].Slug = "mutated"
	a.Rules[0].Keyword = "mutated"

	b := Default()
	assert.Equal(t, "automotive", b.Categories[0].Slug)
	assert.NotEqual(t, "mutated", b.Rules[0].Keyword)
}
