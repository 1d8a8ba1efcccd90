package cli

import (
	"fmt"
	"strings"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/interaction"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/ui"
	"github.com/spf13/cobra"
)

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Delete without asking for confirmation")
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset <sample name>",
	Short: "Delete a sample so it can be created again",
	Long: `Delete the whole directory of a sample. Use it to clean up after a failed
create; the reference sample cannot be deleted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ui.New(cmd.OutOrStdout())
		layout := loadLayout()

		root, err := resolveRepoRoot(layout)
		if err != nil {
			return err
		}
		req, err := scaffold.NewRequest(strings.Join(args, " "), root)
		if err != nil {
			return err
		}
		dir := layout.SampleDir(root, req.HyphenatedName)

		if !resetYes {
			p := interaction.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			ok, err := p.Confirm(fmt.Sprintf("Delete %s?", dir))
			if err != nil {
				return err
			}
			if !ok {
				out.Info("Aborted.")
				return nil
			}
		}

		if err := scaffold.New(layout).Reset(req); err != nil {
			return err
		}
		out.Success("Deleted " + dir)
		return nil
	},
}
