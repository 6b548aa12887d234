package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/cli"
	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/infrastructure/viewport"
	"github.com/bnema/prefkit/internal/logging"
	"github.com/bnema/prefkit/internal/preference"
)

var (
	breakpointWidth  int
	breakpointFollow bool
)

var breakpointCmd = &cobra.Command{
	Use:   "breakpoint",
	Short: "Show the size class for a viewport width",
	Long: `Compute the size class (mini, sm, md, lg, xl) from a viewport width.

Without --width the width of the current terminal is used, converted to
pixels with signals.cell_width. When stdout is not a terminal the
configured breakpoints.fallback class is reported.

Examples:
  prefkit breakpoint               # Size class of this terminal
  prefkit breakpoint --width 800   # Size class of an 800px viewport
  prefkit breakpoint --follow      # Print a line on every resize`,
	Args: cobra.NoArgs,
	RunE: runBreakpoint,
}

func init() {
	rootCmd.AddCommand(breakpointCmd)
	breakpointCmd.Flags().IntVarP(&breakpointWidth, "width", "w", 0, "viewport width in pixels")
	breakpointCmd.Flags().BoolVarP(&breakpointFollow, "follow", "f", false, "keep running and print size class changes")
}

func runBreakpoint(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	r := styles.NewPrefsRenderer(a.Theme, a.Messages())
	out := cmd.OutOrStdout()
	fd := int(os.Stdout.Fd())

	if breakpointFollow {
		if !viewport.IsTerminal(fd) {
			return errors.New("--follow needs a terminal")
		}
		return followBreakpoints(a, r, out, fd)
	}

	switch {
	case breakpointWidth > 0:
		a.Viewport.SetWidth(breakpointWidth)
	case viewport.IsTerminal(fd):
		if err := viewport.NewTerminal(a.Viewport, fd, a.Config.Signals.CellWidth).Update(); err != nil {
			return err
		}
	default:
		return printFallback(a, r, out)
	}

	fmt.Fprint(out, r.RenderBreakpoint(a.Prefs.Breakpoints.SizeClass(), a.Viewport.Width(), a.Prefs.Breakpoints.Thresholds()))
	return nil
}

// printFallback reports the class used when no viewport can be measured.
func printFallback(a *cli.App, r *styles.PrefsRenderer, out io.Writer) error {
	fallback, err := a.Config.Breakpoints.FallbackClass()
	if err != nil {
		return err
	}
	headless, err := preference.NewBreakpoints(nil, preference.BreakpointOptions{
		Thresholds: a.Config.Breakpoints.Thresholds(),
		Fallback:   fallback,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, r.RenderBreakpoint(headless.SizeClass(), 0, headless.Thresholds()))
	return nil
}

// followBreakpoints tracks SIGWINCH until interrupted.
func followBreakpoints(a *cli.App, r *styles.PrefsRenderer, out io.Writer, fd int) error {
	ctx, cancel := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bp := a.Prefs.Breakpoints
	show := func(c entity.SizeClass) {
		fmt.Fprint(out, r.RenderBreakpoint(c, a.Viewport.Width(), bp.Thresholds()))
	}
	unregister := bp.OnChange(show)
	defer unregister()
	release := bp.Start()
	defer release()

	term := viewport.NewTerminal(a.Viewport, fd, a.Config.Signals.CellWidth)
	if err := term.Update(); err != nil {
		return err
	}
	show(bp.SizeClass())

	err := term.Run(ctx)
	logging.FromContext(ctx).Debug().Err(err).Msg("breakpoint follow stopped")
	return err
}
