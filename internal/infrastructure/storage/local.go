package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps transient media artifacts on the local filesystem.
// Used in development and single-node deployments where MinIO is overkill.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a filesystem-backed artifact store rooted at dir
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (l *LocalStore) path(key string) string {
	// Base strips any path traversal from the caller-supplied key
	return filepath.Join(l.dir, filepath.Base(key))
}

// Put stores a media artifact under the given key
func (l *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f, err := os.Create(l.path(key))
	if err != nil {
		return fmt.Errorf("failed to create artifact %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", key, err)
	}
	return nil
}

// Open returns a reader over a stored artifact
func (l *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact %s: %w", key, err)
	}
	return f, nil
}

// Remove deletes a stored artifact. Removing a missing file is a no-op.
func (l *LocalStore) Remove(ctx context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove artifact %s: %w", key, err)
	}
	return nil
}
