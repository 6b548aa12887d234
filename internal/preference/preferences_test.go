package preference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/prefkit/internal/domain/entity"
)

func TestNew_ZeroDepsUsesDefaults(t *testing.T) {
	p, err := New(context.Background(), Deps{})
	require.NoError(t, err)

	snap := p.Snapshot()
	assert.Equal(t, entity.SizeLarge, snap.SizeClass)
	assert.Equal(t, entity.ResolvedLight, snap.Theme)
	assert.Equal(t, entity.ThemeAuto, snap.ThemeChoice)
	assert.Equal(t, entity.LocaleEnUS, snap.Locale.ID)
	assert.Equal(t, entity.LocaleAuto, snap.LocaleChoice)
	assert.Empty(t, snap.Languages)
}

func TestNew_InvalidBreakpoints(t *testing.T) {
	_, err := New(context.Background(), Deps{
		Breakpoints: BreakpointOptions{
			Thresholds: entity.Thresholds{SM: 600, MD: 500, LG: 992, XL: 1200},
			Fallback:   entity.SizeLarge,
		},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidThresholds)
}

func TestPreferences_StartAndSnapshot(t *testing.T) {
	ctx := context.Background()
	vp := &fakeViewport{width: 700}
	scheme := &fakeSignal{dark: true, known: true}
	langs := &fakeSignal{languages: []string{"zh-TW"}}

	p, err := New(ctx, Deps{
		Backend:     newFakeKV(nil),
		Viewport:    vp,
		ColorScheme: scheme,
		Languages:   langs,
	})
	require.NoError(t, err)

	release := p.Start()
	assert.Equal(t, 4, vp.attached())
	assert.Equal(t, 1, scheme.listeners.count())
	assert.Equal(t, 1, langs.listeners.count())

	snap := p.Snapshot()
	assert.Equal(t, entity.SizeSmall, snap.SizeClass)
	assert.Equal(t, entity.ResolvedDark, snap.Theme)
	assert.Equal(t, entity.LocaleZhTW, snap.Locale.ID)
	assert.Equal(t, []string{"zh-TW"}, snap.Languages)

	release()
	release()
	assert.Equal(t, 0, vp.attached())
	assert.Equal(t, 0, scheme.listeners.count())
	assert.Equal(t, 0, langs.listeners.count())
}

func TestPreferences_SharedStore(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV(nil)
	p, err := New(ctx, Deps{Backend: kv})
	require.NoError(t, err)

	p.Theme.SetChoice(ctx, "dark")
	p.Locale.SetChoice(ctx, "zh-cn")

	again, err := New(ctx, Deps{Backend: kv})
	require.NoError(t, err)
	snap := again.Snapshot()
	assert.Equal(t, entity.ThemeDark, snap.ThemeChoice)
	assert.Equal(t, entity.LocaleZhCN, snap.LocaleChoice)
}
