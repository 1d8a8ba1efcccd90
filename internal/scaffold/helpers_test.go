package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedNow is the clock every test scaffolder uses.
var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

const (
	referenceGradle = `plugins {
    id 'com.android.application'
}

android {
    namespace 'com.esri.arcgismaps.sample.displaycomposablemapview'
    defaultConfig {
        applicationId "com.esri.arcgismaps.sample.displaycomposablemapview"
    }
}
`
	referenceStrings = `<resources>
    <string name="app_name">Display composable mapView</string>
</resources>
`
	activityTemplate = `/* Copyright 2023 Esri
 */

package com.esri.arcgismaps.sample.displaycomposablemapview

class MainActivity
`
	viewModelTemplate = `/* Copyright 2023 Esri
 */

package com.esri.arcgismaps.sample.displaycomposablemapview.components

class MapViewModel
`
	screenTemplate = `/* Copyright 2023 Esri
 */

package com.esri.arcgismaps.sample.displaycomposablemapview.screens

import com.esri.arcgismaps.sample.displaycomposablemapview.components.MapViewModel

fun MainScreen()
`
)

// setupRepo creates a minimal samples repository with the reference sample
// and the Kotlin templates, and returns its root.
func setupRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	ref := filepath.Join(root, DefaultReferenceSample)
	refPkg := filepath.Join(ref, filepath.FromSlash(DefaultPackageParent), DefaultReferencePackage)
	tools := filepath.Join(root, DefaultToolsDir, DefaultToolDir)

	writeTestFile(t, filepath.Join(ref, "build.gradle"), referenceGradle)
	writeTestFile(t, filepath.Join(ref, "README.md"), "# Display composable map view\n\nLong description.\n")
	writeTestFile(t, filepath.Join(ref, "README.metadata.json"), `{"title": "Display composable map view"}`)
	writeTestFile(t, filepath.Join(ref, DefaultReferenceSample+".png"), "\x89PNG")
	writeTestFile(t, filepath.Join(ref, "build", "outputs", "app.apk"), "apk")
	writeTestFile(t, filepath.Join(ref, "src", "main", "res", "values", "strings.xml"), referenceStrings)
	writeTestFile(t, filepath.Join(ref, "src", "main", "res", "drawable", "ic_launcher.xml"), "<vector/>")
	writeTestFile(t, filepath.Join(refPkg, "MainActivity.kt"), activityTemplate)
	writeTestFile(t, filepath.Join(refPkg, "MapViewWithCompose.kt"), "package com.esri.arcgismaps.sample.displaycomposablemapview\n")

	writeTestFile(t, filepath.Join(tools, "MainActivityTemplate.kt"), activityTemplate)
	writeTestFile(t, filepath.Join(tools, "MapViewModelTemplate.kt"), viewModelTemplate)
	writeTestFile(t, filepath.Join(tools, "MainScreenTemplate.kt"), screenTemplate)

	return root
}

func newTestScaffolder() *Scaffolder {
	s := New(DefaultLayout())
	s.Now = func() time.Time { return fixedNow }
	return s
}

func mustRequest(t *testing.T, name, root string) Request {
	t.Helper()
	req, err := NewRequest(name, root)
	if err != nil {
		t.Fatalf("NewRequest(%q): %v", name, err)
	}
	return req
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("%s should exist: %v", path, err)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("%s should not exist", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q:\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q:\n%s", substr, content)
	}
}
