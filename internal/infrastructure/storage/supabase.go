package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storagego "github.com/supabase-community/storage-go"
)

// SupabaseStorage implements ports.ObjectStorage against a Supabase
// (S3-compatible) storage bucket. Objects are public; the returned URL
// is served straight to the browser.
type SupabaseStorage struct {
	client  *storagego.Client
	bucket  string
	baseURL string
}

// NewSupabaseStorage creates a storage client for the given project URL,
// service key and bucket.
func NewSupabaseStorage(projectURL, serviceKey, bucket string) *SupabaseStorage {
	baseURL := strings.TrimSuffix(projectURL, "/")
	client := storagego.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &SupabaseStorage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Put uploads the object and returns its public URL.
func (s *SupabaseStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	upsert := false
	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), storagego.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return s.PublicURL(key), nil
}

// PublicURL builds the public URL of an object without touching the network.
func (s *SupabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key)
}
