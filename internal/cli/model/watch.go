// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
	"github.com/bnema/prefkit/internal/infrastructure/viewport"
	"github.com/bnema/prefkit/internal/logging"
	"github.com/bnema/prefkit/internal/preference"
)

// PrefsChangedMsg is sent when any resolved preference changes.
type PrefsChangedMsg struct{}

// WatchModel is the Bubble Tea model for the live preference view.
type WatchModel struct {
	// UI components
	help help.Model
	keys styles.WatchKeyMap

	// State
	snap   preference.Snapshot
	theme  *styles.Theme
	width  int
	height int

	// Dependencies
	ctx       context.Context
	prefs     *preference.Preferences
	viewport  *viewport.Viewport
	cellWidth int
}

// NewWatchModel creates the live view. Terminal columns are converted to
// viewport pixels with cellWidth.
func NewWatchModel(ctx context.Context, prefs *preference.Preferences, vp *viewport.Viewport, cellWidth int) WatchModel {
	if cellWidth <= 0 {
		cellWidth = viewport.DefaultCellWidth
	}
	snap := prefs.Snapshot()
	theme := styles.NewTheme(snap.Theme)
	return WatchModel{
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultWatchKeyMap(snap.Locale.Messages),
		snap:      snap,
		theme:     theme,
		width:     80,
		height:    24,
		ctx:       ctx,
		prefs:     prefs,
		viewport:  vp,
		cellWidth: cellWidth,
	}
}

// Subscribe starts prefs and forwards every change to send, typically
// tea.Program.Send. The returned function stops both.
func Subscribe(prefs *preference.Preferences, send func(tea.Msg)) (release func()) {
	notify := func() { send(PrefsChangedMsg{}) }
	unregister := []func(){
		prefs.Breakpoints.OnChange(func(entity.SizeClass) { notify() }),
		prefs.Theme.OnChange(func(preference.ThemeState) { notify() }),
		prefs.Locale.OnChange(func(preference.LocaleState) { notify() }),
	}
	stop := prefs.Start()
	return func() {
		stop()
		for _, fn := range unregister {
			fn()
		}
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.viewport != nil {
			m.viewport.SetWidth(msg.Width * m.cellWidth)
		}
		return m.refresh(), nil

	case PrefsChangedMsg:
		return m.refresh(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.prefs.Theme.SetChoice(m.ctx, string(nextThemeChoice(m.snap.ThemeChoice)))
			return m.refresh(), nil
		case key.Matches(msg, m.keys.Locale):
			m.prefs.Locale.SetChoice(m.ctx, nextLocaleChoice(m.snap.LocaleChoice))
			return m.refresh(), nil
		}
	}
	return m, nil
}

// refresh re-reads the snapshot and rebuilds theme- and locale-dependent
// components when they changed.
func (m WatchModel) refresh() WatchModel {
	prev := m.snap
	m.snap = m.prefs.Snapshot()
	if m.snap.Theme != prev.Theme {
		m.theme = styles.NewTheme(m.snap.Theme)
		width := m.help.Width
		m.help = styles.NewStyledHelp(m.theme)
		m.help.Width = width
	}
	if m.snap.Locale.ID != prev.Locale.ID {
		m.keys = m.keys.Localize(m.snap.Locale.Messages)
	}
	log := logging.FromContext(m.ctx)
	log.Debug().
		Str("size_class", m.snap.SizeClass.String()).
		Str("theme", string(m.snap.Theme)).
		Str("locale", m.snap.Locale.ID).
		Msg("preferences refreshed")
	return m
}

// View implements tea.Model.
func (m WatchModel) View() string {
	msg := m.snap.Locale.Messages
	r := styles.NewPrefsRenderer(m.theme, msg)

	var sb strings.Builder
	sb.WriteString(m.theme.BoxHeader.Render(msg.T("app.title")))
	sb.WriteString("\n")
	sb.WriteString(r.RenderBreakpoint(m.snap.SizeClass, m.viewportWidth(), m.prefs.Breakpoints.Thresholds()))
	sb.WriteString(r.RenderTheme(m.snap.ThemeChoice, m.snap.Theme))
	sb.WriteString(r.RenderLocale(m.snap.LocaleChoice, m.snap.Locale, m.snap.Languages))

	return m.theme.Box.Render(sb.String()) + "\n" + m.help.View(m.keys) + "\n"
}

// Snapshot returns the values currently displayed.
func (m WatchModel) Snapshot() preference.Snapshot {
	return m.snap
}

func (m WatchModel) viewportWidth() int {
	if m.viewport == nil {
		return 0
	}
	return m.viewport.Width()
}

// nextThemeChoice cycles auto, light, dark.
func nextThemeChoice(cur entity.ThemePreference) entity.ThemePreference {
	i := slices.Index(entity.ThemePreferences, cur)
	return entity.ThemePreferences[(i+1)%len(entity.ThemePreferences)]
}

// nextLocaleChoice cycles auto followed by every catalog locale.
func nextLocaleChoice(cur string) string {
	choices := []string{entity.LocaleAuto}
	for _, l := range i18n.Locales() {
		choices = append(choices, l.ID)
	}
	i := slices.Index(choices, cur)
	return choices[(i+1)%len(choices)]
}
