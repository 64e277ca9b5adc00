package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/shelf/internal/catalog"
	"github.com/crimson-sun/shelf/internal/engine/matcher"
	"github.com/crimson-sun/shelf/internal/engine/testdata"
	"github.com/crimson-sun/shelf/internal/engine/validator"
	"github.com/crimson-sun/shelf/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Build(catalog.Default(), DefaultConfig())
	require.NoError(t, err)
	return e
}

func TestBuildRejectsBadCatalog(t *testing.T) {
	cat := catalog.Default()
	cat.Rules = append(cat.Rules, model.KeywordRule{Keyword: "", CategoryID: 1})
	_, err := Build(cat, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine: matcher:")

	cat = catalog.Default()
	cat.Categories[1].Children = append(cat.Categories[1].Children, &model.CategoryNode{
		ID: "sedans", Slug: "sedans", Name: model.Names{EN: "Sedans"},
	})
	_, err = Build(cat, DefaultConfig())
	require.Error(t, err)

	cat = catalog.Default()
	cat.Rules = append(cat.Rules, model.KeywordRule{Keyword: "yacht", CategoryID: 42})
	_, err = Build(cat, DefaultConfig())
	require.ErrorIs(t, err, matcher.ErrInvalidRule)

	_, err = Build(catalog.Default(), Config{Policy: validator.DefaultPolicy(), AutoApplyThreshold: 1.5})
	require.Error(t, err)
}

func TestCorpusAccuracy(t *testing.T) {
	e := newTestEngine(t)

	corpus, err := testdata.LoadCorpus()
	require.NoError(t, err)

	for _, entry := range corpus {
		t.Run(entry.Title, func(t *testing.T) {
			res := e.ValidateSelection(validator.Input{Title: entry.Title, Description: entry.Description})
			if entry.ExpectedCategory == 0 {
				assert.False(t, res.Classification.Matched, "expected no classification")
				return
			}
			assert.Equal(t, entry.ExpectedCategory, res.Classification.CategoryID)
			assert.Equal(t, entry.ExpectedSubcategory, res.Inferred)
		})
	}
}

func TestApplySuggestion(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		s    model.Suggestion
		want SuggestionOutcome
	}{
		{
			name: "confident",
			s:    model.Suggestion{Label: model.Names{TH: "แฟชั่น", EN: "Fashion"}, Confidence: 0.82},
			want: SuggestionOutcome{CategoryID: 6, Resolved: true, Applied: true, Confidence: 0.82},
		},
		{
			name: "at threshold",
			s:    model.Suggestion{Label: model.Names{EN: "Cameras"}, Confidence: 0.3},
			want: SuggestionOutcome{CategoryID: 8, Resolved: true, Applied: true, Confidence: 0.3},
		},
		{
			name: "below threshold",
			s:    model.Suggestion{Label: model.Names{EN: "Cameras"}, Confidence: 0.29},
			want: SuggestionOutcome{CategoryID: 8, Resolved: true, Confidence: 0.29},
		},
		{
			name: "unresolved",
			s:    model.Suggestion{Label: model.Names{EN: "Electronics"}, Confidence: 0.99},
			want: SuggestionOutcome{Confidence: 0.99},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ApplySuggestion(tt.s))
		})
	}
}

func TestCheck(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name        string
		draft       model.Draft
		category    int
		sub         string
		source      string
		publishable bool
		missing     []string
		warnings    int
	}{
		{
			name: "complete and consistent",
			draft: model.Draft{
				ID: "d1", Title: "iPhone 15 Pro 256GB", CategoryID: 3, Subcategory: "smartphones",
				Attributes: map[string]any{"condition": "like_new", "model": "iPhone 15 Pro", "storage": "256GB"},
			},
			category: 3, sub: "smartphones", source: SourceUser, publishable: true,
		},
		{
			name: "missing attributes",
			draft: model.Draft{
				ID: "d2", Title: "iPhone 15 Pro 256GB", CategoryID: 3, Subcategory: "smartphones",
				Attributes: map[string]any{"condition": "good"},
			},
			category: 3, sub: "smartphones", source: SourceUser,
			missing: []string{"model", "storage"},
		},
		{
			name: "mismatch does not block publishing",
			draft: model.Draft{
				ID: "d3", Title: "Honda City 2020 เกียร์ออโต้", CategoryID: 3, Subcategory: "smartphones",
				Attributes: map[string]any{"condition": "good", "model": "City", "storage": "128GB"},
			},
			category: 3, sub: "smartphones", source: SourceUser, publishable: true, warnings: 1,
		},
		{
			name:     "suggestion applied",
			draft:    model.Draft{ID: "d4", Title: "ของขวัญ handmade", Suggestion: &model.Suggestion{Label: model.Names{EN: "Others"}, Confidence: 0.5}},
			category: 14, source: SourceSuggestion,
		},
		{
			name:     "keywords fill the category only",
			draft:    model.Draft{ID: "d5", Title: "MacBook Air M2"},
			category: 4, source: SourceKeywords, warnings: 1,
			missing: []string{"condition"},
		},
		{
			name:  "low confidence suggestion falls back to keywords",
			draft: model.Draft{ID: "d6", Title: "MacBook Air M2", Suggestion: &model.Suggestion{Label: model.Names{EN: "Fashion"}, Confidence: 0.1}},
			category: 4, source: SourceKeywords, warnings: 1,
			missing: []string{"condition"},
		},
		{
			name:     "orphaned subcategory is cleared",
			draft:    model.Draft{ID: "d7", Title: "completely unrelated gibberish xyz123", CategoryID: 1, Subcategory: "smartphones"},
			category: 1, source: SourceUser,
			missing: []string{"condition"},
		},
		{
			name:  "unknown category is ignored",
			draft: model.Draft{ID: "d8", Title: "completely unrelated gibberish xyz123", CategoryID: 99, Subcategory: "smartphones"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.Check(tt.draft)
			assert.Equal(t, tt.draft.ID, v.ID)
			assert.Equal(t, tt.category, v.CategoryID)
			assert.Equal(t, tt.sub, v.Subcategory)
			assert.Equal(t, tt.source, v.CategorySource)
			assert.Equal(t, tt.publishable, v.Publishable)
			assert.Equal(t, tt.missing, v.MissingAttributes)
			assert.Len(t, v.Warnings, tt.warnings)
		})
	}
}

func TestCheckBreadcrumb(t *testing.T) {
	e := newTestEngine(t)

	v := e.Check(model.Draft{ID: "x", Title: "Honda City", CategoryID: 1, Subcategory: "sedans"})
	require.Len(t, v.Breadcrumb, 3)
	assert.Equal(t, "automotive", v.Breadcrumb[0].Slug)
	assert.Equal(t, "sedans", v.Breadcrumb[2].Slug)
	require.NotNil(t, v.Classification)
	assert.Equal(t, "honda city", v.Classification.Keyword)

	v = e.Check(model.Draft{ID: "y", Title: "completely unrelated gibberish xyz123"})
	assert.Nil(t, v.Breadcrumb)
	assert.Nil(t, v.Classification)
	assert.False(t, v.Publishable)
}

func TestCheckMatchesTitleAndDescriptionApart(t *testing.T) {
	e := newTestEngine(t)

	v := e.Check(model.Draft{ID: "x", Title: "ขายด่วน honda", Description: "city มือเดียว"})
	require.NotNil(t, v.Classification)
	assert.Equal(t, "honda", v.Classification.Keyword)
	assert.Equal(t, 1, v.CategoryID)
	assert.Equal(t, SourceKeywords, v.CategorySource)
}

func TestConcurrentUse(t *testing.T) {
	e := newTestEngine(t)

	corpus, err := testdata.LoadCorpus()
	require.NoError(t, err)

	want := make([]model.Classification, len(corpus))
	for i, entry := range corpus {
		want[i] = e.Classify(entry.Title + " " + entry.Description)
	}

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, entry := range corpus {
				got := e.Classify(entry.Title + " " + entry.Description)
				if got != want[i] {
					return fmt.Errorf("entry %d: got %+v, want %+v", i, got, want[i])
				}
				e.Check(model.Draft{ID: entry.Title, Title: entry.Title, Description: entry.Description})
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
