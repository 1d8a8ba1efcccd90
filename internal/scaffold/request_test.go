package scaffold

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeriveIdentifiers(t *testing.T) {
	tests := []struct {
		in         string
		hyphenated string
		pkg        string
	}{
		{"Display New Map", "display-new-map", "displaynewmap"},
		{"display map", "display-map", "displaymap"},
		{"Map", "map", "map"},
		{"Show Device Location", "show-device-location", "showdevicelocation"},
		{"ADD WMS LAYER", "add-wms-layer", "addwmslayer"},
	}
	for _, tt := range tests {
		hyphenated, pkg := DeriveIdentifiers(tt.in)
		if hyphenated != tt.hyphenated {
			t.Errorf("DeriveIdentifiers(%q) hyphenated = %q, want %q", tt.in, hyphenated, tt.hyphenated)
		}
		if pkg != tt.pkg {
			t.Errorf("DeriveIdentifiers(%q) package = %q, want %q", tt.in, pkg, tt.pkg)
		}
	}
}

func TestDeriveIdentifiersMatchesReplaceThenLower(t *testing.T) {
	for _, s := range []string{"A b C", "Query Feature Table", "x", "Find Route Around Barriers"} {
		hyphenated, pkg := DeriveIdentifiers(s)
		if want := strings.ToLower(strings.ReplaceAll(s, " ", "-")); hyphenated != want {
			t.Errorf("hyphenated(%q) = %q, want %q", s, hyphenated, want)
		}
		if want := strings.ToLower(strings.ReplaceAll(s, " ", "")); pkg != want {
			t.Errorf("package(%q) = %q, want %q", s, pkg, want)
		}
	}
}

func TestNewRequest(t *testing.T) {
	got, err := NewRequest("  Display New Map ", "/repo")
	if err != nil {
		t.Fatalf("NewRequest() error: %v", err)
	}
	want := Request{
		SampleName:     "Display New Map",
		HyphenatedName: "display-new-map",
		PackageName:    "displaynewmap",
		CamelCaseName:  "DisplayNewMap",
		RepositoryRoot: "/repo",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewRequest() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRequestEmpty(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewRequest(name, "/repo"); !errors.Is(err, ErrEmptySampleName) {
			t.Errorf("NewRequest(%q) error = %v, want ErrEmptySampleName", name, err)
		}
	}
}

func TestWithCategoryCopies(t *testing.T) {
	req := mustRequest(t, "Display New Map", "/repo")
	withCat := req.WithCategory("Maps")
	if req.Category != "" {
		t.Errorf("original request was modified: Category = %q", req.Category)
	}
	if withCat.Category != "Maps" {
		t.Errorf("Category = %q, want Maps", withCat.Category)
	}
}

func TestResolveRepositoryRoot(t *testing.T) {
	l := DefaultLayout()
	root := filepath.Join(string(filepath.Separator), "home", "dev", "kotlin-samples")
	tests := []struct {
		name string
		wd   string
		want string
	}{
		{"tool directory", filepath.Join(root, "tools", "NewModuleScript"), root},
		{"tools container", filepath.Join(root, "tools"), root},
		{"repository root", root, root},
		{"unrelated directory", filepath.Join(root, "samples"), filepath.Join(root, "samples")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRepositoryRoot(tt.wd, l); got != tt.want {
				t.Errorf("ResolveRepositoryRoot(%q) = %q, want %q", tt.wd, got, tt.want)
			}
		})
	}
}

func TestResolveRepositoryRootSegmentsOnly(t *testing.T) {
	l := DefaultLayout()
	sep := string(filepath.Separator)
	for _, wd := range []string{
		filepath.Join(sep, "src", "toolsmith", "NewModuleScriptX"),
		filepath.Join(sep, "home", "tools", "kotlin-samples"),
		filepath.Join(sep, "repo", "NewModuleScript", "samples"),
	} {
		if got := ResolveRepositoryRoot(wd, l); got != wd {
			t.Errorf("ResolveRepositoryRoot(%q) = %q, want it unchanged", wd, got)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"", ""},
		{"1", "Analysis"},
		{"6", "Maps"},
		{"11", "Visualization"},
		{"maps", "Maps"},
		{"  Cloud and Portal ", "Cloud and Portal"},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil {
			t.Errorf("ParseCategory(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"0", "12", "-1", "Games"} {
		if _, err := ParseCategory(bad); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", bad, err)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	names := CategoryNames()
	if len(names) != 11 {
		t.Fatalf("len(CategoryNames()) = %d, want 11", len(names))
	}
	if names[5] != "Maps" {
		t.Errorf("CategoryNames()[5] = %q, want Maps", names[5])
	}
}
