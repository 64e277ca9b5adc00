package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crimson-sun/shelf/internal/model"
	"github.com/crimson-sun/shelf/internal/output"
)

func testVerdict() model.Verdict {
	return model.Verdict{
		ID:             "d1",
		CategoryID:     1,
		Subcategory:    "sedans",
		CategorySource: "user",
		Breadcrumb:     []model.Crumb{{Name: model.Names{TH: "ยานยนต์", EN: "Automotive"}, Slug: "automotive"}},
		Classification: &model.Classification{Matched: true, CategoryID: 1, Subcategory: "Sedans", Keyword: "honda city", Priority: 10},
		Publishable:    true,
	}
}

func TestOutputCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Standard, false)
	if err := out.Write(context.Background(), testVerdict()); err != nil {
		t.Fatal(err)
	}
	result := buf.String()

	// Should be single line (NDJSON).
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["subcategory"] != "sedans" {
		t.Fatalf("expected subcategory=sedans, got %v", m["subcategory"])
	}
	// Thai text is written as-is, not escaped.
	if !strings.Contains(lines[0], "ยานยนต์") {
		t.Fatalf("expected raw Thai text in output, got %s", lines[0])
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Standard, true)
	if err := out.Write(context.Background(), testVerdict()); err != nil {
		t.Fatal(err)
	}
	result := buf.String()

	if !strings.Contains(result, "  ") {
		t.Fatal("expected indented output for pretty mode")
	}
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}

func TestOutputMinimalOmitsFields(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Minimal, false)
	if err := out.Write(context.Background(), testVerdict()); err != nil {
		t.Fatal(err)
	}
	result := buf.String()

	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(result)), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if _, ok := m["classification"]; ok {
		t.Fatal("classification should be omitted at Minimal")
	}
	if _, ok := m["breadcrumb"]; ok {
		t.Fatal("breadcrumb should be omitted at Minimal")
	}
	if m["id"] != "d1" {
		t.Fatalf("id should be preserved, got %v", m["id"])
	}
}
