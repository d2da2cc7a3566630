package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCreatesParentDirectories(t *testing.T) {
	store := NewLocalStore()
	path := filepath.Join(t.TempDir(), "resources", "app.ico")

	info, err := store.Write(context.Background(), path, strings.NewReader("payload"))
	require.NoError(t, err)
	require.Equal(t, path, info.Path)
	require.EqualValues(t, 7, info.Size)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestStat(t *testing.T) {
	store := NewLocalStore()
	dir := t.TempDir()

	_, exists, err := store.Stat(filepath.Join(dir, "absent.ico"))
	require.NoError(t, err)
	require.False(t, exists)

	path := filepath.Join(dir, "present.ico")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	info, exists, err := store.Stat(path)
	require.NoError(t, err)
	require.True(t, exists)
	require.EqualValues(t, 3, info.Size)
}

func TestWriteHonorsCancelledContext(t *testing.T) {
	store := NewLocalStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Write(ctx, filepath.Join(t.TempDir(), "x.ico"), strings.NewReader("x"))
	require.Error(t, err)
}
