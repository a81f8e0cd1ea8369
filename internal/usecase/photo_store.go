package usecase

import "context"

// PhotoStore is the object storage holding player and gallery photos.
// Upload returns the public URL for the stored object. Delete wraps
// ErrNotFound when the object is already gone.
type PhotoStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, path string) error
}
