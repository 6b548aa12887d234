package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Dirs(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	adapter := New()

	dir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cfg", "prefkit"), dir)

	dir, err = adapter.DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "prefkit"), dir)

	dir, err = adapter.StateDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "state", "prefkit"), dir)

	dir, err = adapter.DconfDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cfg", "dconf"), dir)

	dir, err = adapter.ManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "man", "man1"), dir)
}

func TestAdapter_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Chdir(t.TempDir())

	dir, err := New().ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".dev", "prefkit"), filepath.Join(filepath.Base(filepath.Dir(dir)), filepath.Base(dir)))
}
