package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Show the resolved locale",
	Long: `Show your locale choice, the catalog locale it resolves to and the
system language list it was matched against.

The language list comes from signals.languages in the config file, or
from $LANGUAGE, $LC_ALL, $LC_MESSAGES and $LANG.`,
	Args: cobra.NoArgs,
	RunE: runLocale,
}

var localeSetCmd = &cobra.Command{
	Use:   "set <auto|locale>",
	Short: "Set the locale choice",
	Long: `Persist a locale choice. "auto" removes the stored override.
Spelling variants such as zh_TW are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocaleSet,
}

var localeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported locales",
	Args:  cobra.NoArgs,
	RunE:  runLocaleList,
}

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeSetCmd)
	localeCmd.AddCommand(localeListCmd)
}

func runLocale(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	state := a.Prefs.Locale.State()
	r := styles.NewPrefsRenderer(a.Theme, state.Locale.Messages)
	fmt.Fprint(cmd.OutOrStdout(), r.RenderLocale(state.Choice, state.Locale, a.Prefs.Locale.Languages()))
	return nil
}

func runLocaleSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	choice := strings.ToLower(strings.TrimSpace(args[0]))
	if choice != entity.LocaleAuto {
		id, ok := i18n.Normalize(choice)
		if !ok {
			return fmt.Errorf("unknown locale %q (see 'prefkit locale list')", args[0])
		}
		choice = id
	}
	a.Prefs.Locale.SetChoice(a.Ctx(), choice)

	return runLocale(cmd, nil)
}

func runLocaleList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	r := styles.NewPrefsRenderer(a.Theme, a.Messages())
	fmt.Fprint(cmd.OutOrStdout(), r.RenderLocaleList(i18n.Locales(), a.Prefs.Locale.Locale().ID))
	return nil
}
