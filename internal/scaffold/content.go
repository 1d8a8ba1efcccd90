package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/metadata"
)

var yearRegex = regexp.MustCompile(`\d{4}`)

// CopyrightReplacement returns token with its year set to year, e.g.
// "Copyright 2023" becomes "Copyright 2026".
func CopyrightReplacement(token string, year int) string {
	return yearRegex.ReplaceAllString(token, strconv.Itoa(year))
}

func appNameElement(sampleName string) string {
	return `<string name="app_name">` + sampleName + `</string>`
}

// UpdateSampleContent rewrites the copied files so they describe the new
// sample. Every rewrite loads the whole file, replaces literal tokens and
// overwrites the file; a token that is not present leaves the file as it
// was. It returns warnings from metadata validation.
func UpdateSampleContent(l Layout, req Request, now time.Time) ([]string, error) {
	sampleDir := l.SampleDir(req.RepositoryRoot, req.HyphenatedName)
	newPackageToken := "sample." + req.PackageName

	if err := writeFile(filepath.Join(sampleDir, readmeFile), "# "+req.SampleName); err != nil {
		return nil, err
	}

	warnings, err := writeMetadata(l, req, filepath.Join(sampleDir, metadataFile))
	if err != nil {
		return nil, err
	}

	packageOnly := literalReplacer(l.PackageToken(), newPackageToken)
	if err := rewriteFile(filepath.Join(sampleDir, gradleFile), packageOnly); err != nil {
		return warnings, err
	}

	appName := literalReplacer(l.AppNameElement, appNameElement(req.SampleName))
	if err := rewriteFile(filepath.Join(sampleDir, filepath.FromSlash(stringsFile)), appName); err != nil {
		return warnings, err
	}

	kotlin := literalReplacer(
		l.CopyrightToken, CopyrightReplacement(l.CopyrightToken, now.Year()),
		l.PackageToken(), newPackageToken,
	)
	for _, t := range l.Templates {
		if err := rewriteFile(l.InstalledPath(req, t), kotlin); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

// literalReplacer builds a Replacer from old/new pairs, dropping pairs with
// an empty old token, which would otherwise match between every rune.
func literalReplacer(pairs ...string) *strings.Replacer {
	var kept []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] != "" {
			kept = append(kept, pairs[i], pairs[i+1])
		}
	}
	return strings.NewReplacer(kept...)
}

// writeMetadata writes the placeholder document, or the full document when
// the request carries a category. Schema violations are returned as warnings.
func writeMetadata(l Layout, req Request, path string) ([]string, error) {
	if req.Category == "" {
		return nil, writeFile(path, metadata.Placeholder)
	}

	snippets := make([]string, 0, len(l.Templates))
	for _, t := range l.Templates {
		snippets = append(snippets, l.installedRel(req, t))
	}
	doc := metadata.New(req.SampleName, req.CamelCaseName, string(req.Category), req.HyphenatedName+".png", snippets)
	out, err := doc.Marshal()
	if err != nil {
		return nil, newStepError(StepUpdate, path, err)
	}
	if err := writeFile(path, string(out)); err != nil {
		return nil, err
	}

	result, err := metadata.Validate(out)
	if err != nil {
		return []string{fmt.Sprintf("could not validate %s: %v", metadataFile, err)}, nil
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, metadataFile+": "+issue.String())
	}
	return warnings, nil
}

// rewriteFile loads path, applies r and writes the result back.
func rewriteFile(path string, r *strings.Replacer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newStepError(StepUpdate, path, err)
	}
	return writeFile(path, r.Replace(string(data)))
}

// writeFile replaces the content of path, keeping its permissions if it
// already exists.
func writeFile(path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return newStepError(StepUpdate, path, err)
	}
	return nil
}
