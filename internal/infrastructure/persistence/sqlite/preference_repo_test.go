package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/prefkit/internal/infrastructure/persistence/sqlite"
)

func TestPreferenceRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "prefkit.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewPreferenceRepository(lazy)

	_, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Set(ctx, "theme", "light"))
	require.NoError(t, repo.Set(ctx, "locale", "zh-tw"))

	v, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "light", "locale": "zh-tw"}, all)

	require.NoError(t, repo.Remove(ctx, "theme"))
	require.NoError(t, repo.Remove(ctx, "theme"), "removing an absent key is not an error")

	_, ok, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferenceRepository_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "prefkit.db")

	first := sqlite.NewLazyDB(dbPath)
	require.NoError(t, sqlite.NewPreferenceRepository(first).Set(ctx, "locale", "zh-cn"))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = second.Close() })
	v, ok, err := sqlite.NewPreferenceRepository(second).Get(ctx, "locale")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "zh-cn", v)
}

func TestPreferenceRepository_UnavailableDatabase(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPreferenceRepository(sqlite.NewLazyDB(""))

	_, _, err := repo.Get(ctx, "theme")
	assert.Error(t, err)
	assert.Error(t, repo.Set(ctx, "theme", "dark"))
	assert.Error(t, repo.Remove(ctx, "theme"))
}
