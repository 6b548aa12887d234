package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/prefkit/internal/i18n"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// WatchKeyMap defines keybindings for the live preference view.
type WatchKeyMap struct {
	Theme  key.Binding
	Locale key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Locale, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Theme, k.Locale}, {k.Quit}}
}

// DefaultWatchKeyMap returns the watch keybindings with help text taken
// from msg.
func DefaultWatchKeyMap(msg i18n.Bundle) WatchKeyMap {
	return WatchKeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", msg.T("watch.help.theme")),
		),
		Locale: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", msg.T("watch.help.locale")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", msg.T("watch.help.quit")),
		),
	}
}

// Localize returns k with help text taken from msg.
func (k WatchKeyMap) Localize(msg i18n.Bundle) WatchKeyMap {
	k.Theme.SetHelp("t", msg.T("watch.help.theme"))
	k.Locale.SetHelp("l", msg.T("watch.help.locale"))
	k.Quit.SetHelp("q", msg.T("watch.help.quit"))
	return k
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
