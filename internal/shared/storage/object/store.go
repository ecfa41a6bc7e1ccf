package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Read when the key does not exist.
var ErrNotFound = errors.New("object not found")

// BlobStore defines the contract for checking, reading and writing keyed blobs.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
}
