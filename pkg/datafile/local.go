package datafile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage reads database files from the local filesystem.
// All paths are confined to baseDir.
type LocalStorage struct {
	baseDir string // Absolute path
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage creates a storage rooted at baseDir, which must exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(absBaseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, absBaseDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: base %s is not a directory", ErrInvalidConfig, absBaseDir)
	}

	return &LocalStorage{baseDir: absBaseDir}, nil
}

// Open opens the file at path relative to the base directory.
func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	abs, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}
	if _, err := s.stat(abs, path); err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	return f, nil
}

// Stat returns metadata of the file at path relative to the base directory.
func (s *LocalStorage) Stat(ctx context.Context, path string) (*File, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	abs, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}
	info, err := s.stat(abs, path)
	if err != nil {
		return nil, err
	}

	return &File{
		Path:    abs,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func (s *LocalStorage) stat(abs, path string) (fs.FileInfo, error) {
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return info, nil
}

// resolvePath joins path onto the base directory and rejects results that
// escape it.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	path = filepath.Clean(path)
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return absPath, nil
}

func ctxErr(ctx context.Context) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrOperationTimeout
	case errors.Is(ctx.Err(), context.Canceled):
		return ErrOperationCanceled
	default:
		return nil
	}
}
