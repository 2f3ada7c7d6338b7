package ports

import "context"

// BlobStore persists opaque values under slash separated keys. Get reports a
// missing key with an error wrapping domain.ErrSecretNotFound.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
