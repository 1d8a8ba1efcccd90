package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/config"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
)

// loadLayout returns the configured layout with flag overrides applied.
func loadLayout() scaffold.Layout {
	l := config.Layout()
	if samplesDirFlag != "" {
		l.SamplesDir = samplesDirFlag
	}
	return l
}

// resolveRepoRoot picks the repository root: --repo first, then the
// repo_root setting, then the working directory with the tool directory
// segments stripped.
func resolveRepoRoot(l scaffold.Layout) (string, error) {
	if repoFlag != "" {
		return filepath.Abs(repoFlag)
	}
	if root := config.Get(config.KeyRepoRoot); root != "" {
		return filepath.Abs(root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return scaffold.ResolveRepositoryRoot(wd, l), nil
}
