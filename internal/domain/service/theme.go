package service

import "github.com/bnema/prefkit/internal/domain/entity"

// ResolveTheme returns the theme in effect for a preference and the OS signal.
// osKnown is false when the OS color scheme could not be read; that counts as light.
func ResolveTheme(pref entity.ThemePreference, osDark, osKnown bool) entity.ResolvedTheme {
	switch pref {
	case entity.ThemeDark:
		return entity.ResolvedDark
	case entity.ThemeLight:
		return entity.ResolvedLight
	}
	if osKnown && osDark {
		return entity.ResolvedDark
	}
	return entity.ResolvedLight
}
