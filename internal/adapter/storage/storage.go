// Package storage keeps attachment files on an afero filesystem rooted at a
// configured directory, or in memory for tests and ephemeral deployments.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// ErrTooLarge is returned by Put when the content exceeds the size limit.
var ErrTooLarge = errors.New("file too large")

// Store reads and writes attachment contents by key.
type Store struct {
	fs afero.Fs
}

// New creates a store for cfg. The os backend is confined to cfg.Root.
func New(cfg config.StorageConfig) (*Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "memory":
		return NewWithFs(afero.NewMemMapFs()), nil
	case "os", "":
		if err := os.MkdirAll(cfg.Root, 0o750); err != nil {
			return nil, fmt.Errorf("storage: create root %s: %w", cfg.Root, err)
		}
		return NewWithFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.Root)), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

// NewWithFs wraps an existing filesystem.
func NewWithFs(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// Put writes at most limit bytes from r under key and returns the number of
// bytes written. Content over the limit is rejected and nothing is kept.
func (s *Store) Put(ctx context.Context, key string, r io.Reader, limit int64) (int64, error) {
	name, err := clean(key)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := s.fs.MkdirAll(path.Dir(name), 0o750); err != nil {
		return 0, fmt.Errorf("storage: mkdir for %s: %w", key, err)
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, fmt.Errorf("storage %s: %w", key, domain.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("storage: create %s: %w", key, err)
	}

	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	closeErr := f.Close()
	if err == nil && n > limit {
		err = ErrTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		return 0, fmt.Errorf("storage: write %s: %w", key, err)
	}
	return n, nil
}

// Open returns a reader for key. A missing key yields domain.ErrNotFound.
func (s *Store) Open(_ context.Context, key string) (afero.File, error) {
	name, err := clean(key)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("storage: open %s: %w", key, err)
	}
	return f, nil
}

// Delete removes key. Missing keys are ignored.
func (s *Store) Delete(_ context.Context, key string) error {
	name, err := clean(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// Ping reports whether the store root is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fi, err := s.fs.Stat("/")
	if err != nil {
		return fmt.Errorf("storage: stat root: %w", err)
	}
	if !fi.IsDir() {
		return errors.New("storage: root is not a directory")
	}
	return nil
}

// clean rejects keys that would escape the store root.
func clean(key string) (string, error) {
	if key == "" || strings.Contains(key, "\\") {
		return "", domain.NewValidationError("storage_key", "invalid key")
	}
	name := path.Clean("/" + key)
	if name == "/" || strings.Contains(key, "..") {
		return "", domain.NewValidationError("storage_key", "invalid key")
	}
	return name, nil
}
