package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
)

// PrefsRenderer renders preference values with styled output, using the
// message bundle of the active locale for labels.
type PrefsRenderer struct {
	theme *Theme
	msg   i18n.Bundle
}

// NewPrefsRenderer creates a new preference renderer.
func NewPrefsRenderer(theme *Theme, msg i18n.Bundle) *PrefsRenderer {
	return &PrefsRenderer{theme: theme, msg: msg}
}

// RenderTheme renders the theme choice and the theme it resolves to.
func (r *PrefsRenderer) RenderTheme(choice entity.ThemePreference, resolved entity.ResolvedTheme) string {
	icon := IconSun
	if resolved.IsDark() {
		icon = IconMoon
	}
	return r.line(icon, r.msg.T("theme.label"),
		r.msg.T("theme."+string(resolved)),
		r.choice(string(choice), choice == entity.ThemeAuto, r.msg.T("theme.auto")),
	)
}

// RenderLocale renders the locale choice, the catalog entry it resolves to
// and the detected system languages.
func (r *PrefsRenderer) RenderLocale(choice string, locale i18n.Locale, languages []string) string {
	var sb strings.Builder
	sb.WriteString(r.line(IconGlobe, r.msg.T("locale.label"),
		locale.Name+" "+r.theme.Subtle.Render(locale.ID),
		r.choice(choice, choice == entity.LocaleAuto, r.msg.T("locale.auto")),
	))
	sb.WriteString(r.line(IconLanguage, r.msg.T("languages.label"), r.languages(languages), ""))
	return sb.String()
}

// RenderLocaleList renders every catalog locale, marking current.
func (r *PrefsRenderer) RenderLocaleList(locales []i18n.Locale, current string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, l := range locales {
		marker := "  "
		name := r.theme.Normal.Render(l.Name)
		if l.ID == current {
			marker = lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor) + " "
			name = r.theme.Highlight.Render(l.Name)
		}
		sb.WriteString(fmt.Sprintf("  %s%-8s %s\n", marker, l.ID, name))
	}
	return sb.String()
}

// RenderBreakpoint renders the size class for width and the thresholds
// it was computed from.
func (r *PrefsRenderer) RenderBreakpoint(class entity.SizeClass, width int, t entity.Thresholds) string {
	var sb strings.Builder
	value := r.theme.SizeClassBadge(class) + " " + r.msg.T("breakpoint."+class.String())
	sb.WriteString(r.line(IconDesktop, r.msg.T("breakpoint.label"), value, r.theme.Subtle.Render(fmt.Sprintf("%dpx", width))))
	sb.WriteString(r.theme.Subtle.Render(fmt.Sprintf("    sm %d  md %d  lg %d  xl %d", t.SM, t.MD, t.LG, t.XL)))
	sb.WriteString("\n")
	return sb.String()
}

// RenderPath renders a labelled filesystem path.
func (r *PrefsRenderer) RenderPath(icon, label, path string) string {
	return r.line(icon, label, r.theme.Subtle.Render(path), "")
}

// RenderError renders an error message.
func (r *PrefsRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *PrefsRenderer) line(icon, label, value, note string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	out := fmt.Sprintf("  %s %s %s", iconStyle.Render(icon), r.theme.Subtitle.Render(label+":"), r.theme.Normal.Render(value))
	if note != "" {
		out += " " + note
	}
	return out + "\n"
}

func (r *PrefsRenderer) choice(value string, auto bool, autoText string) string {
	if auto {
		return r.theme.ChoiceBadge(autoText, true)
	}
	return r.theme.ChoiceBadge(value, false)
}

func (r *PrefsRenderer) languages(tags []string) string {
	if len(tags) == 0 {
		return r.theme.Subtle.Render(r.msg.T("languages.none"))
	}
	return strings.Join(tags, ", ")
}
