package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/branding"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/config"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flags shared by every command that works on a repository.
var (
	repoFlag       string
	samplesDirFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Samples repository root (default: derived from the working directory)")
	rootCmd.PersistentFlags().StringVar(&samplesDirFlag, "samples-dir", "", "Directory under the repository root that holds the samples")
	rootCmd.Flags().StringVar(&createCategory, "category", "", "Sample category, by name or number (1-11)")
	rootCmd.Flags().BoolVar(&createSelectCategory, "select-category", false, "Choose the sample category from a menu")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new sample module in the ArcGIS Maps SDK for Kotlin samples
repository by copying the reference sample and installing the Kotlin templates.

Run without a subcommand to create a sample interactively.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags. A
// failed create is reported on stdout together with its stack trace; other
// commands report failures on stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		reportError(cmd, err)
	}
	return err
}

func reportError(cmd *cobra.Command, err error) {
	if cmd == rootCmd || cmd == createCmd {
		c := ui.New(cmd.OutOrStdout())
		c.Error("Error creating the sample: " + err.Error())
		c.Trace(scaffold.Trace(err))
		return
	}
	c := ui.New(rootCmd.ErrOrStderr())
	c.Error("Error: " + err.Error())
	c.Trace(scaffold.Trace(err))
}
