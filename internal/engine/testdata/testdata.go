package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled listing title for classification validation.
type CorpusEntry struct {
	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	ExpectedCategory    int    `json:"expected_category,omitempty"`    // 0: must stay unclassified
	ExpectedSubcategory string `json:"expected_subcategory,omitempty"` // slug; empty for category-only hits
	Note                string `json:"note,omitempty"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
