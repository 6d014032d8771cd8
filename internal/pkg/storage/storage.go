package storage

import (
	"context"
	"io"
)

// Storage abstracts where room photo files live. The default deployment
// uses the local filesystem; swapping in an object store only requires
// another implementation of this interface.
type Storage interface {
	// Save writes content at the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path.
	Delete(ctx context.Context, path string) error
}
