package ports

import "context"

// ObjectStorage abstracts the S3-compatible blob store used by the upload
// endpoint. Put returns the public URL of the stored object.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
