// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/domain/build"
	"github.com/bnema/prefkit/internal/i18n"
	"github.com/bnema/prefkit/internal/infrastructure/colorscheme"
	"github.com/bnema/prefkit/internal/infrastructure/config"
	"github.com/bnema/prefkit/internal/infrastructure/language"
	"github.com/bnema/prefkit/internal/infrastructure/persistence/memory"
	"github.com/bnema/prefkit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/prefkit/internal/infrastructure/viewport"
	"github.com/bnema/prefkit/internal/logging"
	"github.com/bnema/prefkit/internal/preference"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	Prefs       *preference.Preferences
	Viewport    *viewport.Viewport
	ColorScheme *colorscheme.Resolver
	Languages   *language.Source

	// Backend is the key-value store behind Prefs.
	Backend port.KeyValueStore

	db *sqlite.LazyDB

	// Context with logger
	ctx        context.Context
	logCleanup func() error
}

// AppOption customizes NewApp.
type AppOption func(*appOptions)

type appOptions struct {
	logDir string
}

// WithLogDir sends logs to a rotating file in dir instead of stderr.
// Full-screen commands use it so log lines don't corrupt the display.
func WithLogDir(dir string) AppOption {
	return func(o *appOptions) { o.logDir = dir }
}

// NewApp loads the configuration and builds the preference context with
// every signal adapter wired. Invalid breakpoints fail here.
func NewApp(opts ...AppOption) (*App, error) {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	fallback, err := cfg.Breakpoints.FallbackClass()
	if err != nil {
		return nil, fmt.Errorf("breakpoints: %w", err)
	}

	logger, logCleanup, err := newLogger(cfg, o.logDir)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	backend, db := openBackend(cfg, logger)

	resolver := colorscheme.NewResolver(colorscheme.NewConfigAdapter(mgr))
	resolver.RegisterDetector(colorscheme.NewEnvDetector())
	resolver.RegisterDetector(colorscheme.NewGsettingsDetector())
	resolver.Refresh()

	languages := language.NewSource(language.NewConfigAdapter(mgr))

	vp := viewport.New(0)
	prefs, err := preference.New(ctx, preference.Deps{
		Backend:     backend,
		Viewport:    vp,
		ColorScheme: resolver,
		Languages:   languages,
		Breakpoints: preference.BreakpointOptions{
			Thresholds: cfg.Breakpoints.Thresholds(),
			Fallback:   fallback,
		},
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		_ = logCleanup()
		return nil, err
	}

	// Config edits can change the color scheme override and the language list.
	mgr.OnConfigChange(func(_ *config.Config) {
		logger.Debug().Msg("config changed, refreshing signals")
		resolver.Refresh()
		languages.Refresh()
	})

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Bool("ephemeral", cfg.Database.Ephemeral).
		Msg("app initialized")

	return &App{
		Config:      cfg,
		Manager:     mgr,
		Theme:       styles.NewTheme(prefs.Theme.Name()),
		Prefs:       prefs,
		Viewport:    vp,
		ColorScheme: resolver,
		Languages:   languages,
		Backend:     backend,
		db:          db,
		ctx:         ctx,
		logCleanup:  logCleanup,
	}, nil
}

// newLogger builds the logger described by cfg.Logging, writing to a
// rotating file under logDir when it is set.
func newLogger(cfg *config.Config, logDir string) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if logDir == "" {
		return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format), noop, nil
	}

	rotator, err := logging.NewLogRotator(logging.DefaultRotatorConfig(logDir))
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("open log file: %w", err)
	}
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Logging.Level)
	lc.Format = "json"
	lc.Output = rotator
	return logging.New(lc), rotator.Close, nil
}

// openBackend picks the key-value store behind the preference store.
// The sqlite database is opened lazily on first access.
func openBackend(cfg *config.Config, logger zerolog.Logger) (port.KeyValueStore, *sqlite.LazyDB) {
	if cfg.Database.Ephemeral {
		logger.Debug().Msg("using in-memory preference store")
		return memory.NewStore(), nil
	}
	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("using sqlite preference store")
	return sqlite.NewPreferenceRepository(db), db
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		if cerr := a.logCleanup(); err == nil {
			err = cerr
		}
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Messages returns the message bundle of the resolved locale.
func (a *App) Messages() i18n.Bundle {
	return a.Prefs.Locale.Locale().Messages
}
