package doctor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/metadata"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Label returns the fixed-width tag printed in front of a check.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusWarn:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

// Check is one line of a doctor report.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Report collects the checks of one doctor run.
type Report struct {
	Checks []Check
}

func (r *Report) add(name string, status Status, format string, args ...any) {
	r.Checks = append(r.Checks, Check{Name: name, Status: status, Detail: fmt.Sprintf(format, args...)})
}

// Failed reports whether any check failed.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}

// Count returns how many checks ended with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Print writes one line per check.
func (r *Report) Print(w io.Writer) {
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  %s %s: %s\n", c.Status.Label(), c.Name, c.Detail)
	}
}

// Options configures a doctor run.
type Options struct {
	Root             string
	Layout           scaffold.Layout
	MinGradleVersion string
}

// Run checks the repository at opts.Root. Checks that depend on the
// repository root are skipped when the root is missing.
func Run(opts Options) *Report {
	r := &Report{}
	l := opts.Layout

	if !checkRoot(r, opts.Root) {
		return r
	}
	checkReference(r, l.ReferenceDir(opts.Root))
	checkReferenceMetadata(r, l.ReferenceDir(opts.Root))
	for _, t := range l.Templates {
		checkTemplate(r, l, opts.Root, t)
	}
	checkGradleWrapper(r, opts.Root, opts.MinGradleVersion)
	return r
}

func checkRoot(r *Report, root string) bool {
	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		r.add("repository", StatusFail, "%s does not exist", root)
		return false
	case err != nil:
		r.add("repository", StatusFail, "%s: %v", root, err)
		return false
	case !info.IsDir():
		r.add("repository", StatusFail, "%s is not a directory", root)
		return false
	}
	r.add("repository", StatusOK, "%s", root)
	return true
}

func checkReference(r *Report, dir string) {
	gradle := filepath.Join(dir, "build.gradle")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		r.add("reference sample", StatusFail, "%s does not exist", dir)
		return
	}
	if _, err := os.Stat(gradle); err != nil {
		r.add("reference sample", StatusFail, "%s is missing", gradle)
		return
	}
	r.add("reference sample", StatusOK, "%s", dir)
}

// checkReferenceMetadata validates the reference sample's README.metadata.json
// against the schema generated samples are checked with. Problems only warn,
// since the file is replaced in every new sample.
func checkReferenceMetadata(r *Report, dir string) {
	const name = "reference metadata"
	p := filepath.Join(dir, "README.metadata.json")
	if _, err := os.Stat(p); os.IsNotExist(err) {
		r.add(name, StatusWarn, "%s not found", p)
		return
	}

	result, err := metadata.ValidateFile(p)
	if err != nil {
		r.add(name, StatusWarn, "%v", err)
		return
	}
	if !result.Valid {
		r.add(name, StatusWarn, "%d schema issue(s), first: %s", len(result.Issues), result.Issues[0])
		return
	}
	r.add(name, StatusOK, "%s", p)
}

// checkTemplate verifies t exists and still carries the copyright token the
// year replacement looks for.
func checkTemplate(r *Report, l scaffold.Layout, root string, t scaffold.Template) {
	p := l.TemplatePath(root, t)
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			r.add("template "+t.Source, StatusFail, "%s does not exist", p)
		} else {
			r.add("template "+t.Source, StatusFail, "%s: %v", p, err)
		}
		return
	}
	if l.CopyrightToken != "" && !bytes.Contains(data, []byte(l.CopyrightToken)) {
		r.add("template "+t.Source, StatusWarn, "%q not found; the copyright year will not be updated", l.CopyrightToken)
		return
	}
	r.add("template "+t.Source, StatusOK, "%s", p)
}
