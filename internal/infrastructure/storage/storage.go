package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/config"
)

// ArtifactStore owns transient per-request media artifacts. Keys are
// request-scoped, so concurrent requests never collide. Remove is
// idempotent: removing a missing artifact is not an error.
type ArtifactStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// New builds the artifact store selected by cfg.Type.
func New(cfg *config.StorageConfig) (ArtifactStore, error) {
	switch cfg.Type {
	case "minio":
		return NewMinIOStore(cfg)
	case "local":
		return NewLocalStore(cfg.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
