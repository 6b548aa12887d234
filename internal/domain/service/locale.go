package service

import (
	"strings"

	"github.com/bnema/prefkit/internal/domain/entity"
)

// MatchLocale returns the catalog id to display.
//
// An explicit choice that is exactly a catalog id wins. Otherwise languages is
// scanned in preference order and the first supported tag decides:
//   - "zh" is Traditional Chinese, "en" is US English
//   - "zh-<region>" is Simplified when the lower-cased region contains "hans"
//     or "cn", Traditional otherwise
//   - "en-<region>" is US English
//
// With no supported tag the result is en-us.
func MatchLocale(choice string, languages []string) string {
	if choice != entity.LocaleAuto && entity.IsLocaleID(choice) {
		return choice
	}
	for _, lang := range languages {
		if id, ok := matchLanguageTag(lang); ok {
			return id
		}
	}
	return entity.LocaleEnUS
}

func matchLanguageTag(lang string) (string, bool) {
	switch lang {
	case "zh":
		return entity.LocaleZhTW, true
	case "en":
		return entity.LocaleEnUS, true
	}
	if len(lang) <= 3 || lang[2] != '-' {
		return "", false
	}
	switch {
	case strings.HasPrefix(lang, "zh-"):
		region := strings.ToLower(lang[3:])
		if strings.Contains(region, "hans") || strings.Contains(region, "cn") {
			return entity.LocaleZhCN, true
		}
		return entity.LocaleZhTW, true
	case strings.HasPrefix(lang, "en-"):
		return entity.LocaleEnUS, true
	}
	return "", false
}
