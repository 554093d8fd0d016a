package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poricom/poricom/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the application configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and the paths it resolves to",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema of the config file",
	Long:  `Write config.schema.json next to the config file for editor completion.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := a.Renderer
	fmt.Fprint(out, r.RenderPath("Config", a.ConfigFile()))
	switch a.Config.Store.Backend {
	case config.BackendSQLite:
		fmt.Fprint(out, r.RenderPath("Database", a.Config.Store.DatabasePath))
	default:
		fmt.Fprint(out, r.RenderPath("Settings", a.Config.Store.SettingsDir))
	}
	fmt.Fprint(out, r.RenderPath("Preview", a.Config.Preview.CSSPath))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path, err := config.GenerateSchemaFile(a.Dirs.SchemaFile())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderPath("Schema", path))
	return nil
}
