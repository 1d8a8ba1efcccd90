package scaffold

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Defaults describing the samples repository. Each one can be overridden
// through the Layout, which is how the config package and the tests adjust
// them.
const (
	DefaultReferenceSample  = "display-composable-mapview"
	DefaultReferencePackage = "displaycomposablemapview"
	DefaultPackageParent    = "src/main/java/com/esri/arcgismaps/sample"
	DefaultToolsDir         = "tools"
	DefaultToolDir          = "NewModuleScript"
	DefaultCopyrightToken   = "Copyright 2023"
	DefaultAppNameElement   = `<string name="app_name">Display composable mapView</string>`
)

// Files rewritten in every new sample, relative to the sample directory.
const (
	readmeFile   = "README.md"
	metadataFile = "README.metadata.json"
	gradleFile   = "build.gradle"
	stringsFile  = "src/main/res/values/strings.xml"
	buildDir     = "build"
)

// Template maps a Kotlin template in the tool directory to its final location
// inside the new sample's package directory.
type Template struct {
	Source string // file name in the tool directory, e.g. "MainActivityTemplate.kt"
	Dest   string // slash-separated path relative to the package directory
}

// DefaultTemplates are installed into every new sample.
var DefaultTemplates = []Template{
	{Source: "MainActivityTemplate.kt", Dest: "MainActivity.kt"},
	{Source: "MapViewModelTemplate.kt", Dest: "components/MapViewModel.kt"},
	{Source: "MainScreenTemplate.kt", Dest: "screens/MainScreen.kt"},
}

// Layout holds the literal tokens and directory names the scaffolder works
// with. Slash-separated fields are converted to OS paths when used.
type Layout struct {
	SamplesDir       string // samples container relative to the repository root; empty means the root itself
	ReferenceSample  string
	ReferencePackage string
	PackageParent    string
	ToolsDir         string
	ToolDir          string
	CopyrightToken   string
	AppNameElement   string
	Templates        []Template
}

// DefaultLayout returns the layout of the Kotlin samples repository.
func DefaultLayout() Layout {
	return Layout{
		ReferenceSample:  DefaultReferenceSample,
		ReferencePackage: DefaultReferencePackage,
		PackageParent:    DefaultPackageParent,
		ToolsDir:         DefaultToolsDir,
		ToolDir:          DefaultToolDir,
		CopyrightToken:   DefaultCopyrightToken,
		AppNameElement:   DefaultAppNameElement,
		Templates:        append([]Template(nil), DefaultTemplates...),
	}
}

// PackageToken is the reference sample's package identifier as it appears in
// build.gradle and Kotlin sources, e.g. "sample.displaycomposablemapview".
func (l Layout) PackageToken() string {
	return "sample." + l.ReferencePackage
}

// SampleDir returns the directory a sample named hyphenated lives in.
func (l Layout) SampleDir(root, hyphenated string) string {
	return filepath.Join(root, filepath.FromSlash(l.SamplesDir), hyphenated)
}

// ReferenceDir returns the reference sample's directory.
func (l Layout) ReferenceDir(root string) string {
	return l.SampleDir(root, l.ReferenceSample)
}

// checkedSampleDir returns the directory of the sample described by req. It
// fails unless that directory is a direct child of the samples directory.
func (l Layout) checkedSampleDir(step Step, req Request) (string, error) {
	name := req.HyphenatedName
	parent := l.SampleDir(req.RepositoryRoot, "")
	dir := l.SampleDir(req.RepositoryRoot, name)

	invalid := name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`)
	if !invalid {
		rel, err := filepath.Rel(parent, dir)
		invalid = err != nil || rel != name
	}
	if invalid {
		return "", newStepError(step, dir, fmt.Errorf("%w: %q", ErrInvalidName, req.SampleName))
	}
	return dir, nil
}

// PackageDir returns the Kotlin package directory of the sample described by req.
func (l Layout) PackageDir(req Request) string {
	return filepath.Join(l.SampleDir(req.RepositoryRoot, req.HyphenatedName), filepath.FromSlash(l.PackageParent), req.PackageName)
}

// TemplateDir returns the directory the Kotlin templates are read from.
func (l Layout) TemplateDir(root string) string {
	return filepath.Join(root, l.ToolsDir, l.ToolDir)
}

// TemplatePath returns the on-disk location of t.
func (l Layout) TemplatePath(root string, t Template) string {
	return filepath.Join(l.TemplateDir(root), t.Source)
}

// InstalledPath returns where t ends up for the sample described by req.
func (l Layout) InstalledPath(req Request, t Template) string {
	return filepath.Join(l.PackageDir(req), filepath.FromSlash(t.Dest))
}

// installedRel returns t's final location relative to the sample directory,
// slash-separated.
func (l Layout) installedRel(req Request, t Template) string {
	return path.Join(l.PackageParent, req.PackageName, t.Dest)
}
