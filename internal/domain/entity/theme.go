package entity

import "strings"

// ThemePreference is the user's theme choice.
// ThemeAuto is never persisted: an absent store key means auto.
type ThemePreference string

const (
	// ThemeDark forces the dark theme.
	ThemeDark ThemePreference = "dark"
	// ThemeLight forces the light theme.
	ThemeLight ThemePreference = "light"
	// ThemeAuto follows the operating system color scheme.
	ThemeAuto ThemePreference = "auto"
)

// ThemePreferences lists the accepted preferences in display order.
var ThemePreferences = []ThemePreference{ThemeAuto, ThemeLight, ThemeDark}

// ParseThemePreference returns the preference named by s.
// ok is false when s is not dark, light or auto.
func ParseThemePreference(s string) (pref ThemePreference, ok bool) {
	switch ThemePreference(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	case ThemeAuto:
		return ThemeAuto, true
	}
	return ThemeAuto, false
}

// ResolvedTheme is the theme actually in effect. It is never auto.
type ResolvedTheme string

const (
	// ResolvedDark is the dark theme.
	ResolvedDark ResolvedTheme = "dark"
	// ResolvedLight is the light theme.
	ResolvedLight ResolvedTheme = "light"
)

// IsDark reports whether r is the dark theme.
func (r ResolvedTheme) IsDark() bool {
	return r == ResolvedDark
}
