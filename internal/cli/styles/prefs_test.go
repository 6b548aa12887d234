package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/prefkit/internal/cli/styles"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
)

func newRenderer(localeID string) *styles.PrefsRenderer {
	return styles.NewPrefsRenderer(styles.NewTheme(entity.ResolvedDark), i18n.Get(localeID).Messages)
}

func TestNewTheme_PicksPalette(t *testing.T) {
	dark := styles.NewTheme(entity.ResolvedDark)
	light := styles.NewTheme(entity.ResolvedLight)

	assert.Equal(t, entity.ResolvedDark, dark.Name)
	assert.Equal(t, entity.ResolvedLight, light.Name)
	assert.Equal(t, styles.DarkPalette().Background, string(dark.Background))
	assert.Equal(t, styles.LightPalette().Background, string(light.Background))
}

func TestPrefsRenderer_RenderTheme(t *testing.T) {
	r := newRenderer("en-us")

	out := r.RenderTheme(entity.ThemeAuto, entity.ResolvedDark)
	require.Contains(t, out, "Theme")
	require.Contains(t, out, "Dark")
	require.Contains(t, out, "Follow system")

	out = r.RenderTheme(entity.ThemeLight, entity.ResolvedLight)
	require.Contains(t, out, "Light")
	require.NotContains(t, out, "Follow system")
}

func TestPrefsRenderer_RenderLocale(t *testing.T) {
	r := newRenderer("en-us")

	out := r.RenderLocale("zh-tw", i18n.Get("zh-tw"), []string{"zh-TW", "en"})
	require.Contains(t, out, "zh-tw")
	require.Contains(t, out, "zh-TW, en")

	out = r.RenderLocale(entity.LocaleAuto, i18n.Get("en-us"), nil)
	require.Contains(t, out, "none detected")
}

func TestPrefsRenderer_RenderLocaleList(t *testing.T) {
	r := newRenderer("en-us")

	out := r.RenderLocaleList(i18n.Locales(), "zh-cn")
	for _, l := range i18n.Locales() {
		require.Contains(t, out, l.ID)
	}
	require.Contains(t, out, styles.IconCursor)
}

func TestPrefsRenderer_RenderBreakpoint(t *testing.T) {
	r := newRenderer("en-us")

	out := r.RenderBreakpoint(entity.SizeMedium, 800, entity.DefaultThresholds())
	require.Contains(t, out, "md")
	require.Contains(t, out, "Medium")
	require.Contains(t, out, "800px")
	require.Contains(t, out, "sm 576")
}

func TestPrefsRenderer_RenderError(t *testing.T) {
	out := newRenderer("en-us").RenderError(errors.New("boom"))
	require.Contains(t, out, "boom")
}

func TestDefaultWatchKeyMap_Localized(t *testing.T) {
	keys := styles.DefaultWatchKeyMap(i18n.Get("en-us").Messages)
	assert.Equal(t, "cycle theme", keys.Theme.Help().Desc)
	assert.Equal(t, []string{"t"}, keys.Theme.Keys())

	zh := keys.Localize(i18n.Get("zh-tw").Messages)
	assert.Equal(t, i18n.Get("zh-tw").Messages.T("watch.help.theme"), zh.Theme.Help().Desc)
	assert.Len(t, zh.ShortHelp(), 3)
}
