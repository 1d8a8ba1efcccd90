package doctor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/metadata"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
)

const wrapperProperties = `distributionBase=GRADLE_USER_HOME
distributionPath=wrapper/dists
distributionUrl=https\://services.gradle.org/distributions/gradle-8.5-bin.zip
zipStoreBase=GRADLE_USER_HOME
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// setupRepo creates a repository that passes every check.
func setupRepo(t *testing.T) (string, scaffold.Layout) {
	t.Helper()
	root := t.TempDir()
	l := scaffold.DefaultLayout()

	writeFile(t, filepath.Join(l.ReferenceDir(root), "build.gradle"), "plugins {}\n")
	writeFile(t, filepath.Join(l.ReferenceDir(root), "README.metadata.json"), referenceMetadata(t))
	for _, tmpl := range l.Templates {
		writeFile(t, l.TemplatePath(root, tmpl), "/* Copyright 2023 Esri */\npackage com.esri.arcgismaps.sample.displaycomposablemapview\n")
	}
	writeFile(t, filepath.Join(root, filepath.FromSlash(WrapperProperties)), wrapperProperties)
	return root, l
}

func referenceMetadata(t *testing.T) string {
	t.Helper()
	doc := metadata.New("Display composable mapView", "DisplayComposableMapView", "Maps",
		"display-composable-mapview.png", []string{"MainActivity.kt", "MapViewWithCompose.kt"})
	out, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func findCheck(t *testing.T, r *Report, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not in report: %+v", name, r.Checks)
	return Check{}
}

func TestRunHealthyRepo(t *testing.T) {
	root, l := setupRepo(t)
	r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})

	if r.Failed() {
		t.Fatalf("healthy repo reported failure: %+v", r.Checks)
	}
	if got := r.Count(StatusWarn); got != 0 {
		t.Errorf("warnings = %d, want 0: %+v", got, r.Checks)
	}
	// repository, reference, reference metadata, three templates, gradle wrapper
	if len(r.Checks) != 7 {
		t.Errorf("len(Checks) = %d, want 7", len(r.Checks))
	}
	if c := findCheck(t, r, "gradle wrapper"); !strings.Contains(c.Detail, "8.5") {
		t.Errorf("gradle detail = %q, want it to name 8.5", c.Detail)
	}
}

func TestRunMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")
	r := Run(Options{Root: root, Layout: scaffold.DefaultLayout()})

	if !r.Failed() {
		t.Fatal("expected failure for a missing root")
	}
	if len(r.Checks) != 1 {
		t.Errorf("checks after missing root = %d, want 1", len(r.Checks))
	}
}

func TestRunMissingReferenceGradle(t *testing.T) {
	root, l := setupRepo(t)
	if err := os.Remove(filepath.Join(l.ReferenceDir(root), "build.gradle")); err != nil {
		t.Fatal(err)
	}
	r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})
	if c := findCheck(t, r, "reference sample"); c.Status != StatusFail {
		t.Errorf("reference status = %v, want fail", c.Status)
	}
}

func TestRunReferenceMetadata(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty removes the file
		detail  string
	}{
		{"schema violation", `{"title": "Display composable mapView", "language": "java"}`, "schema issue"},
		{"not JSON", "{", "parsing metadata JSON"},
		{"missing", "", "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, l := setupRepo(t)
			p := filepath.Join(l.ReferenceDir(root), "README.metadata.json")
			if tt.content == "" {
				if err := os.Remove(p); err != nil {
					t.Fatal(err)
				}
			} else {
				writeFile(t, p, tt.content)
			}

			r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})
			if r.Failed() {
				t.Errorf("metadata problems should only warn: %+v", r.Checks)
			}
			c := findCheck(t, r, "reference metadata")
			if c.Status != StatusWarn {
				t.Errorf("status = %v, want warn", c.Status)
			}
			if !strings.Contains(c.Detail, tt.detail) {
				t.Errorf("detail = %q, want it to contain %q", c.Detail, tt.detail)
			}
		})
	}
}

func TestRunMissingTemplate(t *testing.T) {
	root, l := setupRepo(t)
	if err := os.Remove(l.TemplatePath(root, l.Templates[1])); err != nil {
		t.Fatal(err)
	}
	r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})
	if !r.Failed() {
		t.Error("expected failure for a missing template")
	}
	if c := findCheck(t, r, "template "+l.Templates[1].Source); c.Status != StatusFail {
		t.Errorf("template status = %v, want fail", c.Status)
	}
}

func TestRunCopyrightDrift(t *testing.T) {
	root, l := setupRepo(t)
	writeFile(t, l.TemplatePath(root, l.Templates[0]), "/* Copyright 2024 Esri */\n")

	r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})
	if r.Failed() {
		t.Errorf("copyright drift should only warn: %+v", r.Checks)
	}
	c := findCheck(t, r, "template "+l.Templates[0].Source)
	if c.Status != StatusWarn {
		t.Errorf("status = %v, want warn", c.Status)
	}
}

func TestRunOldGradle(t *testing.T) {
	root, l := setupRepo(t)
	writeFile(t, filepath.Join(root, filepath.FromSlash(WrapperProperties)),
		"distributionUrl=https\\://services.gradle.org/distributions/gradle-7.6.1-all.zip\n")

	r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})
	if c := findCheck(t, r, "gradle wrapper"); c.Status != StatusFail {
		t.Errorf("status = %v, want fail (%s)", c.Status, c.Detail)
	}
}

func TestRunMissingWrapperWarns(t *testing.T) {
	root, l := setupRepo(t)
	if err := os.Remove(filepath.Join(root, filepath.FromSlash(WrapperProperties))); err != nil {
		t.Fatal(err)
	}
	r := Run(Options{Root: root, Layout: l, MinGradleVersion: "8.0"})
	if r.Failed() {
		t.Errorf("missing wrapper should not fail: %+v", r.Checks)
	}
	if c := findCheck(t, r, "gradle wrapper"); c.Status != StatusWarn {
		t.Errorf("status = %v, want warn", c.Status)
	}
}

func TestGradleVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{wrapperProperties, "8.5"},
		{"distributionUrl=https\\://services.gradle.org/distributions/gradle-8.10.2-all.zip", "8.10.2"},
		{"distributionUrl=https\\://services.gradle.org/distributions/gradle-8.0-rc-1-bin.zip", "8.0-rc-1"},
	}
	for _, tt := range tests {
		got, err := GradleVersion([]byte(tt.in))
		if err != nil {
			t.Errorf("GradleVersion(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GradleVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "zipStoreBase=GRADLE_USER_HOME", "distributionUrl=https\\://example.com/dist.tar"} {
		if _, err := GradleVersion([]byte(bad)); err == nil {
			t.Errorf("GradleVersion(%q) should fail", bad)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"8.5", "8.0", 1},
		{"8.0", "8.0.0", 0},
		{"v7.6", "8.0", -1},
		{"8.10.2", "8.9", 1},
	}
	for _, tt := range tests {
		got, err := CompareVersions(tt.a, tt.b)
		if err != nil {
			t.Errorf("CompareVersions(%q, %q) error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if _, err := CompareVersions("not-a-version", "8.0"); err == nil {
		t.Error("expected parse error")
	}
}

func TestReportPrint(t *testing.T) {
	r := &Report{}
	r.add("repository", StatusOK, "%s", "/repo")
	r.add("gradle wrapper", StatusWarn, "not found")

	var buf bytes.Buffer
	r.Print(&buf)
	want := "  [ OK ] repository: /repo\n  [WARN] gradle wrapper: not found\n"
	if buf.String() != want {
		t.Errorf("Print() = %q, want %q", buf.String(), want)
	}
}
