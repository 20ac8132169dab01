package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded compliance documents and the
// documentation-site content live.
type FileStorage interface {
	Save(ctx context.Context, path string, content io.Reader) (url string, err error)
	Read(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) bool
}
