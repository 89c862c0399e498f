package watcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitForEvent(t *testing.T, w *FileWatcher, timeout time.Duration) string {
	t.Helper()
	select {
	case path := <-w.Events():
		return path
	case <-time.After(timeout):
		t.Fatal("timed out waiting for settle event")
		return ""
	}
}

func TestFileWatcher_EmitsAfterSettle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guests.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,table_id\n"), 0o644))

	w, err := New(path, 20*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("name,table_id\nA,1\n"), 0o644))

	got := waitForEvent(t, w, 5*time.Second)
	assert.Equal(t, path, got)
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guests.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,table_id\n"), 0o644))

	w, err := New(path, 20*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\n"), 0o644))

	select {
	case path := <-w.Events():
		t.Fatalf("unexpected event for sibling file: %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcher_ReplaceViaRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guests.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,table_id\n"), 0o644))

	w, err := New(path, 20*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// Editors write to a temp file and rename it over the target.
	tmp := filepath.Join(dir, ".guests.csv.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("name,table_id\nA,1\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	got := waitForEvent(t, w, 5*time.Second)
	assert.Equal(t, path, got)
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "guests.csv"), 0, testLogger())
	assert.Error(t, err)
}

func TestFileWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guests.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\n"), 0o644))

	w, err := New(path, 0, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Stop()
	w.Stop()
}
