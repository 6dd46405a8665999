package datafile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// File describes a stored database file.
type File struct {
	Path    string
	Size    int64
	ModTime time.Time
	ETag    string // Empty for local files
}

// Storage is a read-only backend holding database files.
type Storage interface {
	// Open returns the raw contents of the file at path. The caller must close it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Stat returns metadata of the file at path.
	Stat(ctx context.Context, path string) (*File, error)
}

// S3Scheme is the location prefix routed to S3Storage.
const S3Scheme = "s3"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Open opens a database file by location and transparently decompresses it.
//
// Locations of the form s3://bucket/key are read through S3Storage configured
// from cfg (the bucket in the location overrides cfg.Bucket). Plain paths and
// file:// URLs are read from the local filesystem.
//
// Example:
//
//	rc, err := datafile.Open(ctx, "s3://assets/browscap/full_php_browscap.ini.gz", cfg)
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
func Open(ctx context.Context, location string, cfg S3Config, opts ...S3Option) (io.ReadCloser, error) {
	storage, path, err := Resolve(ctx, location, cfg, opts...)
	if err != nil {
		return nil, err
	}

	rc, err := storage.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return Decompress(rc)
}

// Resolve returns the storage backend and in-storage path for location.
func Resolve(ctx context.Context, location string, cfg S3Config, opts ...S3Option) (Storage, string, error) {
	if location == "" {
		return nil, "", fmt.Errorf("%w: empty location", ErrInvalidPath)
	}

	scheme, rest, found := strings.Cut(location, "://")
	if !found {
		return resolveLocal(location)
	}

	switch strings.ToLower(scheme) {
	case "file":
		return resolveLocal(rest)
	case S3Scheme:
		bucket, key, err := ParseS3URI(location)
		if err != nil {
			return nil, "", err
		}
		cfg.Bucket = bucket
		storage, err := NewS3Storage(ctx, cfg, opts...)
		if err != nil {
			return nil, "", err
		}
		return storage, key, nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}

func resolveLocal(path string) (Storage, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	storage, err := NewLocalStorage(filepath.Dir(abs))
	if err != nil {
		return nil, "", err
	}
	return storage, filepath.Base(abs), nil
}

// ParseS3URI splits s3://bucket/key into its bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if !strings.EqualFold(u.Scheme, S3Scheme) {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, uri)
	}
	return u.Host, key, nil
}

// Decompress sniffs the stream for gzip or zstd magic bytes and wraps it with
// the matching decoder. Uncompressed streams are returned unchanged apart from
// buffering. Closing the result closes rc.
func Decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		_ = rc.Close()
		return nil, fmt.Errorf("%w: %v", ErrFailedToDecompress, err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("%w: gzip: %v", ErrFailedToDecompress, err)
		}
		return &readCloser{Reader: gz, closers: []func() error{gz.Close, rc.Close}}, nil
	case bytes.HasPrefix(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("%w: zstd: %v", ErrFailedToDecompress, err)
		}
		return &readCloser{Reader: dec, closers: []func() error{
			func() error { dec.Close(); return nil },
			rc.Close,
		}}, nil
	default:
		return &readCloser{Reader: br, closers: []func() error{rc.Close}}, nil
	}
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
