package viewport

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/bnema/prefkit/internal/logging"
)

// DefaultCellWidth approximates one terminal column in CSS pixels.
const DefaultCellWidth = 8

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (cols, rows int, err error)

// Terminal feeds a Viewport from the controlling terminal.
type Terminal struct {
	viewport  *Viewport
	size      SizeFunc
	cellWidth int
}

// NewTerminal measures the terminal on fd. cellWidth <= 0 selects
// DefaultCellWidth.
func NewTerminal(viewport *Viewport, fd int, cellWidth int) *Terminal {
	return NewTerminalWithSize(viewport, func() (int, int, error) { return term.GetSize(fd) }, cellWidth)
}

// NewTerminalWithSize is NewTerminal with a custom size source.
func NewTerminalWithSize(viewport *Viewport, size SizeFunc, cellWidth int) *Terminal {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return &Terminal{viewport: viewport, size: size, cellWidth: cellWidth}
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Update measures the terminal once and pushes the width to the viewport.
func (t *Terminal) Update() error {
	cols, _, err := t.size()
	if err != nil {
		return fmt.Errorf("measure terminal: %w", err)
	}
	t.viewport.SetWidth(cols * t.cellWidth)
	return nil
}

// Run updates the viewport now and on every SIGWINCH until ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	log := logging.ComponentLogger(ctx, "viewport")

	// Subscribe before the first measurement so no resize is lost.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, unix.SIGWINCH)
	defer signal.Stop(winch)

	if err := t.Update(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-winch:
			if err := t.Update(); err != nil {
				log.Warn().Err(err).Msg("failed to re-measure terminal")
				continue
			}
			log.Debug().Int("width", t.viewport.Width()).Msg("terminal resized")
		}
	}
}
