package colorscheme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/prefkit/internal/logging"
)

// DefaultDebounce coalesces the burst of writes dconf makes per change.
const DefaultDebounce = 150 * time.Millisecond

// Refresher is satisfied by *Resolver.
type Refresher interface {
	Refresh() Preference
}

// Watcher refreshes a resolver when the desktop settings database changes.
type Watcher struct {
	dirs     []string
	target   Refresher
	debounce time.Duration
}

// DconfDir returns the directory holding the user dconf database.
func DconfDir(configHome string) string {
	return filepath.Join(configHome, "dconf")
}

// NewWatcher creates a watcher over dirs. Missing directories are skipped.
func NewWatcher(target Refresher, debounce time.Duration, dirs ...string) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dirs: dirs, target: target, debounce: debounce}
}

// Run blocks until ctx is done, refreshing the target after each burst of
// file events. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.ComponentLogger(ctx, "colorscheme")

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create color scheme watcher: %w", err)
	}
	defer fw.Close()

	watched := 0
	for _, dir := range w.dirs {
		if _, statErr := os.Stat(dir); statErr != nil {
			log.Debug().Str("dir", dir).Msg("skipping missing color scheme directory")
			continue
		}
		if addErr := fw.Add(dir); addErr != nil {
			log.Warn().Err(addErr).Str("dir", dir).Msg("failed to watch color scheme directory")
			continue
		}
		watched++
	}
	if watched == 0 {
		log.Debug().Msg("no color scheme source to watch")
		<-ctx.Done()
		return nil
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)
		case werr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("color scheme watcher error")
		case <-timer.C:
			pref := w.target.Refresh()
			log.Debug().Bool("dark", pref.PrefersDark).Bool("known", pref.Known).Str("source", pref.Source).Msg("color scheme refreshed")
		}
	}
}
