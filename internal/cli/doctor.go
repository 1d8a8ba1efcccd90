package cli

import (
	"fmt"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/config"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/doctor"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the repository can be scaffolded",
	Long: `Run preflight checks on the samples repository: the reference sample and
templates must exist, the Gradle wrapper must be recent enough and the
templates must still carry the copyright token that gets updated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ui.New(cmd.OutOrStdout())
		layout := loadLayout()

		root, err := resolveRepoRoot(layout)
		if err != nil {
			return err
		}

		out.Header("Repository check:")
		report := doctor.Run(doctor.Options{
			Root:             root,
			Layout:           layout,
			MinGradleVersion: config.Get(config.KeyMinGradleVersion),
		})
		report.Print(cmd.OutOrStdout())

		if report.Failed() {
			return fmt.Errorf("%d check(s) failed", report.Count(doctor.StatusFail))
		}
		if n := report.Count(doctor.StatusWarn); n > 0 {
			out.Success(fmt.Sprintf("Ready, with %d warning(s)", n))
			return nil
		}
		out.Success("Ready")
		return nil
	},
}
