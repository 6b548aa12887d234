package colorscheme

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	n atomic.Int32
}

func (c *countingRefresher) Refresh() Preference {
	c.n.Add(1)
	return Preference{}
}

func TestWatcher_RefreshesOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := &countingRefresher{}
	w := NewWatcher(target, 20*time.Millisecond, dir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	for i := range 3 {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "user"), []byte{byte(i)}, 0o600))
	}

	assert.Eventually(t, func() bool { return target.n.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_NoDirectoriesBlocksUntilCancel(t *testing.T) {
	w := NewWatcher(&countingRefresher{}, 0, filepath.Join(t.TempDir(), "missing"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, w.Run(ctx))
}

func TestDconfDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.config", "dconf"), DconfDir("/home/u/.config"))
}
