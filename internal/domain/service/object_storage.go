package service

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded files.
type ObjectStorage interface {
	// Put stores size bytes from r under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Remove deletes the object stored under key. Missing objects are not an error.
	Remove(ctx context.Context, key string) error

	// URL returns the public location of key.
	URL(key string) string
}
