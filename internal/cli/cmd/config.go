package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration and preferences are stored, list stored overrides, or print the config schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file and database paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Long: `Print a JSON Schema describing config.toml. Editors with TOML schema
support (taplo, Even Better TOML) can use it for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configOverridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "List preferences stored in the database",
	Long: `List the preference keys that hold a non-default choice. A key is absent
while its preference follows the system.`,
	Args: cobra.NoArgs,
	RunE: runConfigOverrides,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configOverridesCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	r := styles.NewPrefsRenderer(a.Theme, a.Messages())
	out := cmd.OutOrStdout()

	configFile := a.Manager.GetConfigFile()
	if configFile == "" {
		if configFile, err = config.ConfigPath(); err != nil {
			return err
		}
	}
	fmt.Fprint(out, r.RenderPath(styles.IconConfig, "config", configFile))

	dbPath := a.Config.Database.Path
	if a.Config.Database.Ephemeral {
		dbPath = "(in memory)"
	}
	fmt.Fprint(out, r.RenderPath(styles.IconDatabase, "database", dbPath))
	return nil
}

func runConfigOverrides(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	lister, ok := a.Backend.(port.KeyValueLister)
	if !ok {
		return fmt.Errorf("preference backend %T cannot list keys", a.Backend)
	}
	stored, err := lister.All(a.Ctx())
	if err != nil {
		return fmt.Errorf("list preferences: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(stored) == 0 {
		_, err = fmt.Fprintln(out, a.Theme.Subtle.Render(a.Messages().T("overrides.none")))
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(stored)) {
		_, _ = fmt.Fprintf(out, "%s = %s\n", a.Theme.Subtitle.Render(key), stored[key])
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return err
}
