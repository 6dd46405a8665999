package datafile_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browscap/pkg/datafile"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()
		storage, err := datafile.NewLocalStorage(t.TempDir())
		require.NoError(t, err)
		assert.NotNil(t, storage)
	})

	t.Run("empty base dir", func(t *testing.T) {
		t.Parallel()
		storage, err := datafile.NewLocalStorage("")
		assert.ErrorIs(t, err, datafile.ErrInvalidConfig)
		assert.Nil(t, storage)
	})

	t.Run("missing base dir", func(t *testing.T) {
		t.Parallel()
		_, err := datafile.NewLocalStorage(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, datafile.ErrFileNotFound)
	})

	t.Run("base is a file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "browscap.ini", []byte("x"))
		_, err := datafile.NewLocalStorage(path)
		assert.ErrorIs(t, err, datafile.ErrInvalidConfig)
	})
}

func TestLocalStorage_Open(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	writeFile(t, dir, "browscap.ini", []byte("[*]\nParent=\n"))
	writeFile(t, dir, "nested/lite.ini", []byte("lite"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	storage, err := datafile.NewLocalStorage(dir)
	require.NoError(t, err)

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		rc, err := storage.Open(ctx, "browscap.ini")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "[*]\nParent=\n", string(data))
	})

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()
		rc, err := storage.Open(ctx, "nested/lite.ini")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "lite", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Open(ctx, "missing.ini")
		assert.ErrorIs(t, err, datafile.ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Open(ctx, "subdir")
		assert.ErrorIs(t, err, datafile.ErrIsDirectory)
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Open(ctx, "../../etc/passwd")
		assert.ErrorIs(t, err, datafile.ErrInvalidPath)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := storage.Open(cctx, "browscap.ini")
		assert.ErrorIs(t, err, datafile.ErrOperationCanceled)
	})
}

func TestLocalStorage_Stat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "browscap.ini", []byte("0123456789"))

	storage, err := datafile.NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := storage.Stat(ctx, "browscap.ini")
	require.NoError(t, err)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, info.Path)
	assert.Equal(t, int64(10), info.Size)
	assert.False(t, info.ModTime.IsZero())
	assert.Empty(t, info.ETag)

	_, err = storage.Stat(ctx, "missing.ini")
	assert.ErrorIs(t, err, datafile.ErrFileNotFound)
}
