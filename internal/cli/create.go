package cli

import (
	"fmt"
	"strings"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/branding"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/config"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/interaction"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/ui"
	"github.com/spf13/cobra"
)

var (
	createCategory       string
	createSelectCategory bool
)

func init() {
	createCmd.Flags().StringVar(&createCategory, "category", "", "Sample category, by name or number (1-11)")
	createCmd.Flags().BoolVar(&createSelectCategory, "select-category", false, "Choose the sample category from a menu")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [sample name]",
	Short: "Create a new sample from the reference sample",
	Long: `Create a new sample module by copying the reference sample, installing the
Kotlin templates and renaming the package, app name and copyright year.

The sample name is the display name with spaces. Without an argument it is
read from standard input.

Examples:
  ` + branding.CLIName() + ` create "Display New Map"
  ` + branding.CLIName() + ` create Show Grid --category Maps`,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := ui.New(cmd.OutOrStdout())
	layout := loadLayout()

	root, err := resolveRepoRoot(layout)
	if err != nil {
		return err
	}

	prompter := interaction.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	name := strings.Join(args, " ")
	if name == "" {
		if name, err = interaction.ReadSampleName(prompter); err != nil {
			return err
		}
	}
	out.Info("Using repository... " + root)

	req, err := scaffold.NewRequest(name, root)
	if err != nil {
		return err
	}

	category, err := resolveCategory(prompter)
	if err != nil {
		return err
	}
	req = req.WithCategory(category)

	result, err := scaffold.New(layout).Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	printResult(out, result)
	out.Success("Sample Successfully Created!")

	out.Header("\nNext steps:")
	out.Item(fmt.Sprintf("1. Add a screenshot named %s.png", req.HyphenatedName))
	out.Item("2. Describe the sample in README.md and README.metadata.json")
	out.Item(fmt.Sprintf("3. Implement the sample in %s", result.PackageDir))
	return nil
}

// resolveCategory picks the category from --select-category, --category or
// the category setting, in that order. An empty category is allowed.
func resolveCategory(p interaction.Prompter) (scaffold.Category, error) {
	if createSelectCategory {
		names := scaffold.CategoryNames()
		idx, err := p.Select("Choose the sample category:", names)
		if err != nil {
			return "", fmt.Errorf("%w: %w", scaffold.ErrInvalidCategory, err)
		}
		return scaffold.Category(names[idx]), nil
	}
	value := createCategory
	if value == "" {
		value = config.Get(config.KeyCategory)
	}
	return scaffold.ParseCategory(value)
}

// ─── Helpers ───────────────────────────────────────────────────────

func printResult(out *ui.Console, result *scaffold.Result) {
	out.Info(fmt.Sprintf("Created sample at %s", result.SampleDir))
	for _, f := range result.Files {
		out.Item(f)
	}
	if len(result.Warnings) > 0 {
		out.Header("\nWarnings:")
		for _, w := range result.Warnings {
			out.Warn(w)
		}
	}
}
