package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/domain/entity"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the resolved theme",
	Long: `Show your theme choice and the theme it resolves to.

With the "auto" choice the theme follows the desktop color scheme
(signals.color_scheme in the config file, $GTK_THEME, then gsettings).`,
	Args: cobra.NoArgs,
	RunE: runTheme,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <auto|light|dark>",
	Short:     "Set the theme choice",
	Long:      `Persist a theme choice. "auto" removes the stored override.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: themeChoices(),
	RunE:      runThemeSet,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
}

func runTheme(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	state := a.Prefs.Theme.State()
	r := styles.NewPrefsRenderer(styles.NewTheme(state.Name), a.Messages())
	fmt.Fprint(cmd.OutOrStdout(), r.RenderTheme(state.Choice, state.Name))
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	pref, ok := entity.ParseThemePreference(args[0])
	if !ok {
		return fmt.Errorf("unknown theme %q (use: %s)", args[0], strings.Join(themeChoices(), ", "))
	}
	a.Prefs.Theme.SetChoice(a.Ctx(), string(pref))

	return runTheme(cmd, nil)
}

func themeChoices() []string {
	out := make([]string, 0, len(entity.ThemePreferences))
	for _, p := range entity.ThemePreferences {
		out = append(out, string(p))
	}
	return out
}
