package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFilesAndFolders copies the reference sample into the new sample's
// directory, creates the new source package and installs the Kotlin
// templates under their final names. It returns the installed template paths
// relative to the sample directory.
//
// A package directory that already exists aborts the run before anything is
// written, so a second run with the same name leaves the first sample intact.
// Nothing is rolled back when a later operation fails.
func CreateFilesAndFolders(l Layout, req Request) ([]string, error) {
	sampleDir, err := l.checkedSampleDir(StepCreate, req)
	if err != nil {
		return nil, err
	}
	referenceDir := l.ReferenceDir(req.RepositoryRoot)
	packageDir := l.PackageDir(req)

	if _, err := os.Stat(packageDir); err == nil {
		return nil, newStepError(StepCreate, packageDir, ErrPackageExists)
	}
	// The reference package is deleted from every new sample, so reusing its
	// name would delete the new sources too.
	if req.PackageName == l.ReferencePackage || sampleDir == referenceDir {
		return nil, newStepError(StepCreate, packageDir, fmt.Errorf("%w: %q is the reference sample", ErrPackageExists, req.SampleName))
	}

	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return nil, newStepError(StepCreate, sampleDir, err)
	}

	if err := copyDir(referenceDir, sampleDir); err != nil {
		return nil, newStepError(StepCreate, referenceDir, fmt.Errorf("copying reference sample: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(packageDir), 0o755); err != nil {
		return nil, newStepError(StepCreate, packageDir, err)
	}
	if err := os.Mkdir(packageDir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, newStepError(StepCreate, packageDir, ErrPackageExists)
		}
		return nil, newStepError(StepCreate, packageDir, err)
	}

	var installed []string
	for _, t := range l.Templates {
		if err := installTemplate(l, req, t); err != nil {
			return installed, err
		}
		installed = append(installed, l.installedRel(req, t))
	}
	return installed, nil
}

// installTemplate copies t into its target directory under the template's
// own name and then renames it to the final name.
func installTemplate(l Layout, req Request, t Template) error {
	src := l.TemplatePath(req.RepositoryRoot, t)
	final := l.InstalledPath(req, t)
	dir := filepath.Dir(final)

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newStepError(StepCreate, src, fmt.Errorf("%w: %w", ErrTemplateMissing, err))
		}
		return newStepError(StepCreate, src, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newStepError(StepCreate, dir, err)
	}

	copied, err := copyFileToDir(src, dir)
	if err != nil {
		return newStepError(StepCreate, src, fmt.Errorf("copying template: %w", err))
	}

	if err := os.Rename(copied, final); err != nil {
		return newStepError(StepCreate, copied, fmt.Errorf("renaming template: %w", err))
	}
	return nil
}
