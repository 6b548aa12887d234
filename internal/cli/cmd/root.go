// Package cmd provides Cobra CLI commands for prefkit.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/cli"
	"github.com/bnema/prefkit/internal/domain/build"
	"github.com/bnema/prefkit/internal/infrastructure/config"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "prefkit",
		Short: "Resolve screen size, theme and language preferences",
		Long: `prefkit - user preference resolution for terminal and web front-ends.

Three preferences are resolved from live signals and persisted overrides:
  - Size class (mini, sm, md, lg, xl) from the viewport width
  - Theme (light or dark) from your choice or the desktop color scheme
  - Locale (en-us, zh-tw, zh-cn) from your choice or the system languages

Overrides are stored in a small SQLite database under $XDG_DATA_HOME.
Use 'prefkit watch' for a live view that follows terminal resizes and
desktop theme changes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema":
				return nil
			}

			var opts []cli.AppOption
			if cmd.Name() == watchCmd.Name() {
				stateDir, err := config.GetStateDir()
				if err != nil {
					return fmt.Errorf("resolve log directory: %w", err)
				}
				opts = append(opts, cli.WithLogDir(filepath.Join(stateDir, "logs")))
			}

			var err error
			app, err = cli.NewApp(opts...)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
