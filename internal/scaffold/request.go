package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Request describes one scaffold run. All name forms are derived from
// SampleName by NewRequest and never change afterwards; operations take the
// Request by value.
type Request struct {
	SampleName     string // e.g. "Display New Map"
	HyphenatedName string // e.g. "display-new-map", the sample directory name
	PackageName    string // e.g. "displaynewmap", the Kotlin package segment
	CamelCaseName  string // e.g. "DisplayNewMap"
	RepositoryRoot string
	Category       Category // optional; empty writes the placeholder metadata
}

// NewRequest trims sampleName and derives every name form from it.
func NewRequest(sampleName, repositoryRoot string) (Request, error) {
	name := strings.TrimSpace(sampleName)
	if name == "" {
		return Request{}, ErrEmptySampleName
	}
	hyphenated, pkg := DeriveIdentifiers(name)
	return Request{
		SampleName:     name,
		HyphenatedName: hyphenated,
		PackageName:    pkg,
		CamelCaseName:  strcase.ToCamel(name),
		RepositoryRoot: repositoryRoot,
	}, nil
}

// WithCategory returns a copy of r with the category set.
func (r Request) WithCategory(c Category) Request {
	r.Category = c
	return r
}

// DeriveIdentifiers returns the directory form (spaces to hyphens) and the
// package form (spaces removed) of sampleName, both lower-cased. No check is
// made for characters that are illegal in file names.
func DeriveIdentifiers(sampleName string) (hyphenated, pkg string) {
	folded := lower(sampleName)
	return strings.ReplaceAll(folded, " ", "-"), strings.ReplaceAll(folded, " ", "")
}

// lower allocates a Caser per call; a Caser must not be shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ResolveRepositoryRoot recovers the repository root from the working
// directory by dropping a trailing tool directory and then a trailing tools
// container, so both <root>/tools/NewModuleScript and <root>/tools resolve to
// <root>. Any other working directory is returned unchanged.
func ResolveRepositoryRoot(workingDirectory string, l Layout) string {
	dir := filepath.Clean(workingDirectory)
	if l.ToolDir != "" && filepath.Base(dir) == l.ToolDir {
		dir = filepath.Dir(dir)
	}
	if l.ToolsDir != "" && filepath.Base(dir) == l.ToolsDir {
		dir = filepath.Dir(dir)
	}
	return dir
}
