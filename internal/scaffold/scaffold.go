package scaffold

import (
	"context"
	"time"
)

// Result holds the outcome of a successful run.
type Result struct {
	SampleDir  string
	PackageDir string
	Files      []string // rewritten and installed files, relative to SampleDir
	Warnings   []string
}

// Scaffolder runs the create, cleanup and rewrite operations in order.
type Scaffolder struct {
	Layout Layout
	Now    func() time.Time
}

// New returns a Scaffolder for the given layout that stamps the current year.
func New(l Layout) *Scaffolder {
	return &Scaffolder{Layout: l, Now: time.Now}
}

// Run scaffolds the sample described by req. The operations run one after
// another and the first failure stops the run; whatever was already written
// stays on disk. ctx is checked between operations.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Result, error) {
	l := s.Layout
	result := &Result{
		SampleDir:  l.SampleDir(req.RepositoryRoot, req.HyphenatedName),
		PackageDir: l.PackageDir(req),
	}

	installed, err := CreateFilesAndFolders(l, req)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, newStepError(StepCleanup, result.SampleDir, err)
	}
	if err := DeleteUnwantedFiles(l, req); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, newStepError(StepUpdate, result.SampleDir, err)
	}
	warnings, err := UpdateSampleContent(l, req, s.now())
	if err != nil {
		return nil, err
	}

	result.Files = append([]string{readmeFile, metadataFile, gradleFile, stringsFile}, installed...)
	result.Warnings = warnings
	return result, nil
}

// Reset removes the sample described by req.
func (s *Scaffolder) Reset(req Request) error {
	return Reset(s.Layout, req)
}

func (s *Scaffolder) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
