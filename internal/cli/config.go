package cli

import (
	"fmt"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/branding"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/config"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  `Read and write settings stored at ~/.newmodule/config.yaml.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configuration value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ui.New(cmd.OutOrStdout())
		out.Header("Settings (" + config.FilePath() + "):")
		for _, key := range config.Keys() {
			out.KeyValue(key, config.Get(key))
		}
		out.Info("\nEnvironment variables override the file, e.g. " + branding.EnvVar(config.KeyRepoRoot) + ".")
		return nil
	},
}
