package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// unwantedPaths lists what the reference copy brings along that a fresh
// sample must not have: the build output, the reference sample's own source
// package and its screenshot.
func (l Layout) unwantedPaths(req Request) []string {
	sampleDir := l.SampleDir(req.RepositoryRoot, req.HyphenatedName)
	return []string{
		filepath.Join(sampleDir, buildDir),
		filepath.Join(sampleDir, filepath.FromSlash(l.PackageParent), l.ReferencePackage),
		filepath.Join(sampleDir, l.ReferenceSample+".png"),
	}
}

// DeleteUnwantedFiles removes the reference-only artifacts from the new
// sample. Targets that do not exist are skipped.
func DeleteUnwantedFiles(l Layout, req Request) error {
	for _, p := range l.unwantedPaths(req) {
		if err := os.RemoveAll(p); err != nil {
			return newStepError(StepCleanup, p, err)
		}
	}
	return nil
}

// Reset deletes the whole directory of the sample described by req. It is a
// recovery tool for half-created samples and is never called from Run.
func Reset(l Layout, req Request) error {
	sampleDir, err := l.checkedSampleDir(StepReset, req)
	if err != nil {
		return err
	}
	if sampleDir == l.ReferenceDir(req.RepositoryRoot) {
		return newStepError(StepReset, sampleDir, errors.New("refusing to delete the reference sample"))
	}
	if _, err := os.Stat(sampleDir); err != nil {
		return newStepError(StepReset, sampleDir, fmt.Errorf("sample %q does not exist", req.SampleName))
	}
	if err := os.RemoveAll(sampleDir); err != nil {
		return newStepError(StepReset, sampleDir, err)
	}
	return nil
}
