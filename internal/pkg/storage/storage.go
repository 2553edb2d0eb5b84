package storage

import (
	"context"
	"io"
)

// Storage abstracts blob storage. Paths are relative keys; the backend
// decides how they map to real locations.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
