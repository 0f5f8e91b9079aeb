package watch_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"texwire/internal/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadPaths(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "missing"), time.Second)
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = watch.New(file, time.Second)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	w, err := watch.New(t.TempDir(), 50*time.Millisecond)
	require.NoError(t, err)

	assert.False(t, w.Running())
	require.NoError(t, w.Start(func([]watch.FileModification) {}))
	assert.True(t, w.Running())

	// Second start while running is refused
	assert.Error(t, w.Start(func([]watch.FileModification) {}))

	w.Stop()
	assert.False(t, w.Running())

	// Stop is idempotent
	w.Stop()
}

func TestDebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New(dir, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var calls int
	var lastBatch []watch.FileModification

	require.NoError(t, w.Start(func(batch []watch.FileModification) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		lastBatch = batch
	}))

	// A burst of writes should settle into a single callback
	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, "Mesh_Rock_mat_BaseColor.png")
		require.NoError(t, os.WriteFile(name, []byte{byte(i)}, 0644))
		time.Sleep(20 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, 5*time.Second, 25*time.Millisecond)

	mu.Lock()
	assert.NotEmpty(t, lastBatch)
	assert.Contains(t, lastBatch[0].Path, "Mesh_Rock_mat_BaseColor.png")
	mu.Unlock()
}

func TestSeparateBurstsFireSeparately(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New(dir, 80*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var calls int

	require.NoError(t, w.Start(func([]watch.FileModification) {
		mu.Lock()
		calls++
		mu.Unlock()
	}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("1"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, 5*time.Second, 25*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("2"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 2
	}, 5*time.Second, 25*time.Millisecond)
}

func TestDirectoryAccessor(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New(dir, time.Second)
	require.NoError(t, err)
	defer w.Stop()
	assert.Equal(t, dir, w.Directory())
}
