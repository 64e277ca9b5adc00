package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/model"
)

func mustNew(t *testing.T, rules []model.KeywordRule) *Matcher {
	t.Helper()
	m, err := New(rules)
	require.NoError(t, err)
	return m
}

func TestNewRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		rule model.KeywordRule
	}{
		{"empty keyword", rule("", 1, "Cars", 5)},
		{"blank keyword", rule("   ", 1, "Cars", 5)},
		{"zero category", rule("car", 0, "", 5)},
		{"negative priority", rule("car", 1, "", -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]model.KeywordRule{tt.rule})
			require.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}

func TestClassifyDefaultTable(t *testing.T) {
	m := mustNew(t, DefaultRules())

	tests := []struct {
		text       string
		categoryID int
		sub        string
		keyword    string
	}{
		{"Honda City 2020 เกียร์ออโต้", 1, "Sedans", "honda city"},
		{"iPhone 15 Pro Max 256GB", 3, "Smartphones", "iphone"},
		{"MacBook Air M2", 4, "Laptops", "macbook"},
		{"Canon EOS 90D", 8, "DSLR Cameras", "canon"},
		{"ＩＰＨＯＮＥ 13 mini", 3, "Smartphones", "iphone"},
		{"เสื้อยืด nike", 6, "Shoes", "nike"},
		{"กล้องติดรถยนต์ 4K", 1, "Dash Cams", "กล้องติดรถ"},
		{"ขาย PS5 มือสอง", 7, "Game Consoles", "ps5"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := m.Classify(tt.text)
			require.True(t, got.Matched)
			assert.Equal(t, tt.categoryID, got.CategoryID)
			assert.Equal(t, tt.sub, got.Subcategory)
			assert.Equal(t, tt.keyword, got.Keyword)
		})
	}
}

func TestClassifyNoDefault(t *testing.T) {
	m := mustNew(t, DefaultRules())

	for _, text := range []string{"completely unrelated gibberish xyz123", "", "   "} {
		got := m.Classify(text)
		assert.Equal(t, model.Classification{}, got, "text %q", text)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	m := mustNew(t, DefaultRules())

	first := m.Classify("samsung tv 55 นิ้ว")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, m.Classify("samsung tv 55 นิ้ว"))
	}
}

func TestClassifyPriorityMonotonic(t *testing.T) {
	high := rule("iphone", 3, "Smartphones", 10)
	low := rule("case", 3, "Cases & Screen Protectors", 5)

	for _, order := range [][]model.KeywordRule{{high, low}, {low, high}} {
		m := mustNew(t, order)
		got := m.Classify("iphone case clear")
		assert.Equal(t, "Smartphones", got.Subcategory)
		assert.Equal(t, 10, got.Priority)
	}
}

func TestClassifyTieKeepsFirstDeclared(t *testing.T) {
	a := rule("samsung", 3, "Smartphones", 10)
	b := rule("samsung tv", 5, "TVs", 10)

	got := mustNew(t, []model.KeywordRule{a, b}).Classify("samsung tv 55 นิ้ว")
	assert.Equal(t, 3, got.CategoryID)

	got = mustNew(t, []model.KeywordRule{b, a}).Classify("samsung tv 55 นิ้ว")
	assert.Equal(t, 5, got.CategoryID)
}

func TestClassifyDefaultPriority(t *testing.T) {
	m := mustNew(t, []model.KeywordRule{
		rule("lamp", 13, "Lighting", 0),
		rule("desk", 13, "Furniture", 4),
	})

	got := m.Classify("desk lamp")
	assert.Equal(t, "Lighting", got.Subcategory)
	assert.Equal(t, model.DefaultPriority, got.Priority)
}

func TestClassifyPaddedKeywords(t *testing.T) {
	m := mustNew(t, []model.KeywordRule{rule("fan ", 5, "Fans", 7)})

	assert.True(t, m.Classify("Hatari fan 16 inch").Matched)
	assert.False(t, m.Classify("fan").Matched, "trailing space is trimmed from input")
	assert.False(t, m.Classify("fantasy novel").Matched)
}

func TestClassifyMatchesTextsApart(t *testing.T) {
	m := mustNew(t, []model.KeywordRule{
		rule("honda", 1, "Sedans", 9),
		rule("honda city", 1, "Sedans", 10),
		rule("iphone", 3, "Smartphones", 10),
	})

	got := m.Classify("ขาย honda", "city มือเดียว")
	require.True(t, got.Matched)
	assert.Equal(t, "honda", got.Keyword)
	assert.Equal(t, 9, got.Priority)

	assert.Equal(t, "honda city", m.Classify("ขาย honda city", "").Keyword)
	assert.Equal(t, "iphone", m.Classify("", "iPhone 15").Keyword)
	assert.False(t, m.Classify("", "  ").Matched)
	assert.False(t, m.Classify().Matched)

	hits := m.Hits("ขาย honda", "city มือเดียว")
	require.Len(t, hits, 1)
	assert.Equal(t, "honda", hits[0].Keyword)
}

func TestClassifyCategoryOnlyRule(t *testing.T) {
	m := mustNew(t, DefaultRules())

	got := m.Classify("กล้องฟิล์มเก่า")
	require.True(t, got.Matched)
	assert.Equal(t, 8, got.CategoryID)
	assert.Empty(t, got.Subcategory)
}

func TestHits(t *testing.T) {
	m := mustNew(t, []model.KeywordRule{
		rule("honda", 1, "Sedans", 9),
		rule("wave", 1, "Motorcycles", 0),
		rule("honda city", 1, "Sedans", 10),
	})

	want := []model.KeywordRule{
		rule("honda", 1, "Sedans", 9),
		rule("honda city", 1, "Sedans", 10),
	}
	if diff := cmp.Diff(want, m.Hits("Honda City 2020")); diff != "" {
		t.Errorf("Hits mismatch (-want +got):\n%s", diff)
	}

	hits := m.Hits("honda wave")
	require.Len(t, hits, 2)
	assert.Equal(t, model.DefaultPriority, hits[1].Priority)

	assert.Nil(t, m.Hits(""))
}

func TestRulesIsCopy(t *testing.T) {
	m := mustNew(t, DefaultRules())
	rules := m.Rules()
	require.Equal(t, m.Len(), len(rules))

	rules[0].Keyword = "mutated"
	assert.NotEqual(t, "mutated", m.Rules()[0].Keyword)
}

func TestDefaultRulesResolveAgainstDefaultTaxonomy(t *testing.T) {
	tax, err := taxonomy.New(taxonomy.DefaultRoots())
	require.NoError(t, err)

	for _, r := range DefaultRules() {
		_, ok := tax.Main(r.CategoryID)
		require.True(t, ok, "rule %q targets unknown category %d", r.Keyword, r.CategoryID)
		if r.Subcategory == "" {
			continue
		}
		_, ok = tax.FindByName(r.CategoryID, r.Subcategory)
		assert.True(t, ok, "rule %q names unknown subcategory %q", r.Keyword, r.Subcategory)
	}
}
