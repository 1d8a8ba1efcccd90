// Package metadata builds and validates the README.metadata.json document
// that the samples site reads for each sample.
package metadata

import (
	"encoding/json"
	"fmt"
)

// Placeholder is written when no category was chosen for a new sample.
const Placeholder = "{\n}"

// Document is the content of a sample's README.metadata.json.
type Document struct {
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	FormalName   string   `json:"formal_name"`
	Ignore       bool     `json:"ignore"`
	Images       []string `json:"images"`
	Keywords     []string `json:"keywords"`
	Language     string   `json:"language"`
	RedirectFrom string   `json:"redirect_from"`
	RelevantAPIs []string `json:"relevant_apis"`
	Snippets     []string `json:"snippets"`
	Title        string   `json:"title"`
}

// New returns a Document with the fields every new sample starts with.
func New(title, formalName, category, image string, snippets []string) *Document {
	return &Document{
		Category:     category,
		Description:  "TODO",
		FormalName:   formalName,
		Images:       []string{image},
		Keywords:     []string{},
		Language:     "kotlin",
		RelevantAPIs: []string{},
		Snippets:     snippets,
		Title:        title,
	}
}

// Marshal renders d as indented JSON with a trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata: %w", err)
	}
	return append(out, '\n'), nil
}
