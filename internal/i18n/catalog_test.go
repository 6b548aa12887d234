package i18n_test

import (
	"testing"
	"time"

	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocales_OrderMatchesIDs(t *testing.T) {
	locales := i18n.Locales()
	require.Len(t, locales, len(entity.LocaleIDs))
	for i, id := range entity.LocaleIDs {
		assert.Equal(t, id, locales[i].ID)
		assert.NotEmpty(t, locales[i].Name)
		assert.NotEmpty(t, locales[i].Messages)
	}
}

func TestLocales_ReturnsCopy(t *testing.T) {
	locales := i18n.Locales()
	locales[0].ID = "mutated"
	assert.Equal(t, entity.LocaleEnUS, i18n.Locales()[0].ID)
}

func TestBundles_HaveSameKeys(t *testing.T) {
	locales := i18n.Locales()
	base := locales[0].Messages
	for _, l := range locales[1:] {
		for key := range base {
			_, ok := l.Messages[key]
			assert.True(t, ok, "%s is missing %q", l.ID, key)
		}
	}
}

func TestBundle_T(t *testing.T) {
	en := i18n.Get(entity.LocaleEnUS)
	assert.Equal(t, "Theme", en.Messages.T("theme.label"))
	assert.Equal(t, "no.such.key", en.Messages.T("no.such.key"))

	tw := i18n.Get(entity.LocaleZhTW)
	assert.Equal(t, "主題", tw.Messages.T("theme.label"))
}

func TestBundle_Tf(t *testing.T) {
	en := i18n.Get(entity.LocaleEnUS)
	assert.Equal(t, "Rendered 2024-03-01", en.Messages.Tf("preview.updated", "2024-03-01"))

	cn := i18n.Get(entity.LocaleZhCN)
	assert.Equal(t, "生成于 2024-03-01", cn.Messages.Tf("preview.updated", "2024-03-01"))
}

func TestGet_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, entity.LocaleEnUS, i18n.Get("fr-fr").ID)
	_, ok := i18n.Lookup("fr-fr")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"zh-tw", entity.LocaleZhTW, true},
		{"ZH-TW", entity.LocaleZhTW, true},
		{" zh_CN ", entity.LocaleZhCN, true},
		{"en-US", entity.LocaleEnUS, true},
		{"en", "", false},
		{"auto", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := i18n.Normalize(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateFormat(t *testing.T) {
	ts := time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Mar 7, 2025", i18n.Get(entity.LocaleEnUS).Date.Format(ts))
	assert.Equal(t, "2025年3月7日", i18n.Get(entity.LocaleZhCN).Date.Format(ts))
	assert.Equal(t, "2025年3月7日 09:05:00", i18n.Get(entity.LocaleZhTW).Date.FormatDateTime(ts))
}
