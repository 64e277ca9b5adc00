package attributes

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/shelf/internal/engine/taxonomy"
	"github.com/crimson-sun/shelf/internal/model"
)

func newDefault(t *testing.T) *Resolver {
	t.Helper()
	tax, err := taxonomy.New(taxonomy.DefaultRoots())
	require.NoError(t, err)
	return New(tax)
}

func names(attrs []model.AttributeDefinition) []string {
	var out []string
	for _, a := range attrs {
		out = append(out, a.Name)
	}
	return out
}

func TestFieldsAndSubsets(t *testing.T) {
	r := newDefault(t)

	want := []string{"condition", "brand", "model", "storage", "color", "battery_health", "warranty", "original_box"}
	if diff := cmp.Diff(want, names(r.Fields("smartphones"))); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"condition", "model", "storage"}, names(r.Required("smartphones")))
	assert.Equal(t,
		[]string{"condition", "brand", "model", "storage", "color", "original_box"},
		names(r.AIFillable("smartphones")))

	assert.Empty(t, r.Fields("boats"))
	assert.Empty(t, r.Required("boats"))
}

func TestValidate(t *testing.T) {
	r := newDefault(t)

	tests := []struct {
		name    string
		values  map[string]any
		valid   bool
		missing []string
	}{
		{
			name:    "nothing provided",
			values:  nil,
			missing: []string{"condition", "model", "storage"},
		},
		{
			name:    "blank string counts as missing",
			values:  map[string]any{"condition": "good", "model": "  ", "storage": "128GB"},
			missing: []string{"model"},
		},
		{
			name:   "complete",
			values: map[string]any{"condition": "like_new", "model": "iPhone 15", "storage": "256GB"},
			valid:  true,
		},
		{
			name:    "nil value",
			values:  map[string]any{"condition": nil, "model": "Galaxy S24", "storage": "256GB"},
			missing: []string{"condition"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Validate("smartphones", tt.values)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.missing, got.Missing)
		})
	}
}

func TestValidateUnknownSlug(t *testing.T) {
	got := newDefault(t).Validate("boats", nil)
	assert.True(t, got.Valid)
	assert.Empty(t, got.Missing)
}

func TestValidateListsDuplicateNameOnce(t *testing.T) {
	roots := []*model.CategoryNode{{
		ID:   "1",
		Slug: "automotive",
		Name: model.Names{EN: "Automotive"},
		Attributes: []model.AttributeDefinition{
			{Name: "year", Kind: model.KindNumber, Required: true},
		},
		Children: []*model.CategoryNode{{
			ID:   "cars",
			Slug: "cars",
			Name: model.Names{EN: "Cars"},
			Attributes: []model.AttributeDefinition{
				{Name: "year", Kind: model.KindNumber, Required: true},
				{Name: "automatic", Kind: model.KindBoolean, Required: true},
			},
		}},
	}}
	tax, err := taxonomy.New(roots)
	require.NoError(t, err)
	r := New(tax)

	assert.Len(t, r.Required("cars"), 3)

	got := r.Validate("cars", map[string]any{"automatic": false})
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"year"}, got.Missing)

	got = r.Validate("cars", map[string]any{"automatic": false, "year": 0})
	assert.True(t, got.Valid, "false and 0 are values")
}

func TestIsEmpty(t *testing.T) {
	for _, v := range []any{nil, "", " \t", []string{}, []any{}, map[string]any{}} {
		assert.True(t, IsEmpty(v), "%#v", v)
	}
	for _, v := range []any{"x", 0, 0.0, false, []string{"a"}, []any{1}} {
		assert.False(t, IsEmpty(v), "%#v", v)
	}
}

func TestPrefill(t *testing.T) {
	r := newDefault(t)

	got := r.Prefill("smartphones", map[string]any{
		"condition":      "like_new",
		"storage":        "3TB",   // not an option
		"model":          " iPhone 15 Pro ",
		"color":          42,      // wrong kind
		"battery_health": 91,      // not AI-fillable
		"original_box":   true,
		"warranty":       true,    // not AI-fillable
		"unknown":        "value", // not an attribute
		"brand":          "",
	})
	want := map[string]any{
		"condition":    "like_new",
		"model":        "iPhone 15 Pro",
		"original_box": true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Prefill mismatch (-want +got):\n%s", diff)
	}
}

func TestPrefillMultiSelectAndNumbers(t *testing.T) {
	roots := []*model.CategoryNode{{
		ID:   "12",
		Slug: "sports-travel",
		Name: model.Names{EN: "Sports & Travel"},
		Children: []*model.CategoryNode{{
			ID:   "bicycles",
			Slug: "bicycles",
			Name: model.Names{EN: "Bicycles"},
			Attributes: []model.AttributeDefinition{
				{Name: "uses", Kind: model.KindMultiSelect, Options: []string{"road", "gravel", "mtb"}, AIFillable: true},
				{Name: "wheel_inches", Kind: model.KindNumber, AIFillable: true},
				{Name: "weight_kg", Kind: model.KindNumber, AIFillable: true},
				{Name: "frame", Kind: model.KindMultiSelect, Options: []string{"alloy", "carbon"}, AIFillable: true},
			},
		}},
	}}
	tax, err := taxonomy.New(roots)
	require.NoError(t, err)

	got := New(tax).Prefill("bicycles", map[string]any{
		"uses":         []any{"road", "track", "gravel"},
		"wheel_inches": json.Number("29"),
		"weight_kg":    "1,050",
		"frame":        []string{"steel"},
	})
	want := map[string]any{
		"uses":         []string{"road", "gravel"},
		"wheel_inches": 29.0,
		"weight_kg":    1050.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Prefill mismatch (-want +got):\n%s", diff)
	}
}
