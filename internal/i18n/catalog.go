// Package i18n holds the fixed locale catalog: display names, message
// bundles and date formats for every supported locale id.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/prefkit/internal/domain/entity"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle maps message keys to translated text.
type Bundle map[string]string

// T returns the message for key, or key itself when it is missing.
func (b Bundle) T(key string) string {
	if msg, ok := b[key]; ok {
		return msg
	}
	return key
}

// Tf formats the message for key with args.
func (b Bundle) Tf(key string, args ...any) string {
	return fmt.Sprintf(b.T(key), args...)
}

// DateFormat holds Go time layouts for a locale.
type DateFormat struct {
	Date     string
	DateTime string
	Month    string
}

// Format renders t with the date layout.
func (f DateFormat) Format(t time.Time) string {
	return t.Format(f.Date)
}

// FormatDateTime renders t with the date-time layout.
func (f DateFormat) FormatDateTime(t time.Time) string {
	return t.Format(f.DateTime)
}

// Locale is one catalog entry.
type Locale struct {
	ID       string
	Name     string
	Messages Bundle
	Date     DateFormat
}

type localeSpec struct {
	id   string
	name string
	date DateFormat
}

// specs must stay in entity.LocaleIDs order.
var specs = []localeSpec{
	{
		id:   entity.LocaleEnUS,
		name: "🇺🇸 English",
		date: DateFormat{Date: "Jan 2, 2006", DateTime: "Jan 2, 2006 15:04:05", Month: "January 2006"},
	},
	{
		id:   entity.LocaleZhTW,
		name: "🇹🇼 繁體中文",
		date: DateFormat{Date: "2006年1月2日", DateTime: "2006年1月2日 15:04:05", Month: "2006年1月"},
	},
	{
		id:   entity.LocaleZhCN,
		name: "🇨🇳 简体中文",
		date: DateFormat{Date: "2006年1月2日", DateTime: "2006年1月2日 15:04:05", Month: "2006年1月"},
	},
}

var catalog = mustLoadCatalog()

func mustLoadCatalog() []Locale {
	locales := make([]Locale, 0, len(specs))
	for _, s := range specs {
		data, err := localeFS.ReadFile("locales/" + s.id + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing message bundle for %s: %v", s.id, err))
		}
		var messages Bundle
		if err := json.Unmarshal(data, &messages); err != nil {
			panic(fmt.Sprintf("i18n: invalid message bundle for %s: %v", s.id, err))
		}
		locales = append(locales, Locale{ID: s.id, Name: s.name, Messages: messages, Date: s.date})
	}
	return locales
}

// Locales returns the catalog in its fixed order.
func Locales() []Locale {
	out := make([]Locale, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry with exactly this id.
func Lookup(id string) (Locale, bool) {
	for _, l := range catalog {
		if l.ID == id {
			return l, true
		}
	}
	return Locale{}, false
}

// Get returns the entry for id, or en-us when id is not in the catalog.
func Get(id string) Locale {
	if l, ok := Lookup(id); ok {
		return l
	}
	return catalog[0]
}

// Normalize maps a spelling variant of a catalog id ("ZH_tw", " en-US ")
// to the canonical id. ok is false when s names no catalog entry.
func Normalize(s string) (id string, ok bool) {
	candidate := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, l := range catalog {
		if l.ID == candidate {
			return l.ID, true
		}
	}
	return "", false
}
