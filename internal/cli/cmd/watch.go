package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/prefkit/internal/cli/model"
	"github.com/bnema/prefkit/internal/infrastructure/colorscheme"
	"github.com/bnema/prefkit/internal/infrastructure/xdg"
	"github.com/bnema/prefkit/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the resolved preferences",
	Long: `Open a live view that follows terminal resizes, desktop color scheme
changes and edits to the config file.

Keys:
  t   cycle theme (auto, light, dark)
  l   cycle locale (auto, then every supported locale)
  q   quit`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	log := logging.FromContext(ctx)

	m := model.NewWatchModel(ctx, a.Prefs, a.Viewport, a.Config.Signals.CellWidth)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	release := model.Subscribe(a.Prefs, p.Send)
	defer release()

	if err := a.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	var dirs []string
	if dconf, err := xdg.New().DconfDir(); err == nil {
		dirs = append(dirs, dconf)
	}
	watcher := colorscheme.NewWatcher(a.ColorScheme, colorscheme.DefaultDebounce, dirs...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		// Quitting the program stops the watcher.
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run watch view: %w", err)
		}
		return nil
	})
	return g.Wait()
}
