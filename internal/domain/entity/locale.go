package entity

// LocaleAuto means no locale override: follow the browser/system language list.
// Like ThemeAuto it is represented by an absent store key.
const LocaleAuto = "auto"

// Catalog locale ids. These strings are the only stable identity of a locale.
const (
	LocaleEnUS = "en-us"
	LocaleZhTW = "zh-tw"
	LocaleZhCN = "zh-cn"
)

// LocaleIDs lists the catalog ids in catalog order.
// The order is relied on by the locale catalog; append only.
var LocaleIDs = []string{LocaleEnUS, LocaleZhTW, LocaleZhCN}

// IsLocaleID reports whether id is exactly one of the catalog ids.
func IsLocaleID(id string) bool {
	for _, known := range LocaleIDs {
		if known == id {
			return true
		}
	}
	return false
}
