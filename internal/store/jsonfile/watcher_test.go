package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Watch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := watcher.Watch(ctx, "doc-1")

	err = os.WriteFile(filepath.Join(dir, "doc-1.json"), []byte(`{"id":"doc-1"}`), 0o644)
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, "doc-1", event.ID)
		assert.False(t, event.Timestamp.IsZero())
	case <-ctx.Done():
		t.Fatal("timeout waiting for event")
	}
}

func TestWatcher_OnlyWatchedID(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := watcher.Watch(ctx, "doc-1")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc-2.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc-1.json"), []byte(`{}`), 0o644))

	timeout := time.After(300 * time.Millisecond)
	var received []string
	for {
		select {
		case event := <-events:
			received = append(received, event.ID)
		case <-timeout:
			assert.Equal(t, []string{"doc-1"}, received)
			return
		}
	}
}

func TestWatcher_Wildcard(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := watcher.Watch(ctx, "*")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{}`), 0o644))

	received := make(map[string]bool)
	timeout := time.After(5 * time.Second)
	for len(received) < 2 {
		select {
		case event := <-events:
			received[event.ID] = true
		case <-timeout:
			t.Fatal("timeout waiting for events")
		}
	}

	assert.True(t, received["a"])
	assert.True(t, received["b"])
}

func TestWatcher_IgnoresTmpFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := watcher.Watch(ctx, "*")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.json.tmp"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`x`), 0o644))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.json"), []byte(`{}`), 0o644))

	timeout := time.After(300 * time.Millisecond)
	var received []string
	for {
		select {
		case event := <-events:
			received = append(received, event.ID)
		case <-timeout:
			assert.Equal(t, []string{"real"}, received)
			return
		}
	}
}

func TestWatcher_Debounce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := watcher.Watch(ctx, "*")

	path := filepath.Join(dir, "debounce.json")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
		time.Sleep(10 * time.Millisecond) // Less than debounce delay
	}

	timeout := time.After(300 * time.Millisecond)
	eventCount := 0
	for {
		select {
		case <-events:
			eventCount++
		case <-timeout:
			assert.Equal(t, 1, eventCount, "should receive exactly one debounced event")
			return
		}
	}
}

func TestWatcher_ContextCancellation(t *testing.T) {
	t.Parallel()

	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	defer watcher.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	events := watcher.Watch(ctx, "*")
	cancel()

	time.Sleep(100 * time.Millisecond) // Give time for cleanup goroutine
	_, ok := <-events
	assert.False(t, ok, "channel should be closed after context cancellation")
}

func TestWatcher_Close(t *testing.T) {
	t.Parallel()

	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	events := watcher.Watch(context.Background(), "*")
	require.NoError(t, watcher.Close())

	_, ok := <-events
	assert.False(t, ok, "channel should be closed after Close")
}
