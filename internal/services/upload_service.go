package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
)

// MaxUploadSize is the largest file the upload endpoint accepts.
const MaxUploadSize = 10 * 1024 * 1024

var allowedContentTypes = map[string]struct{}{
	"image/jpeg":  {},
	"image/png":   {},
	"image/gif":   {},
	"image/webp":  {},
	"audio/mpeg":  {},
	"audio/wav":   {},
	"audio/mp3":   {},
	"audio/ogg":   {},
	"audio/mp4":   {},
	"audio/m4a":   {},
	"audio/aac":   {},
	"audio/flac":  {},
	"audio/webm":  {},
	"audio/x-wav": {},
	"audio/x-m4a": {},
}

// UploadResult is returned after a successful upload.
type UploadResult struct {
	URL string
	Key string
}

// UploadService validates incoming files and stores them in object storage.
type UploadService struct {
	storage ports.ObjectStorage
	logger  ports.Logger
}

// NewUploadService creates an UploadService. Storage may be nil when the
// bucket is not configured; uploads then fail with a storage error.
func NewUploadService(storage ports.ObjectStorage, logger ports.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		logger:  logger,
	}
}

// Upload checks size and content type, assigns a random key under a folder
// derived from the media type, and writes the file to storage.
func (s *UploadService) Upload(ctx context.Context, filename string, contentType string, size int64, data []byte) (*UploadResult, error) {
	if s.storage == nil {
		return nil, domainerrors.ErrStorageUnavailable
	}

	if size <= 0 || len(data) == 0 {
		return nil, domainerrors.ErrFileMissing
	}

	if size > MaxUploadSize {
		return nil, domainerrors.ErrFileTooLarge
	}

	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, domainerrors.ErrUnsupportedType
	}

	key := fmt.Sprintf("%s/%s%s", folderFor(contentType), uuid.NewString(), filepath.Ext(filename))

	url, err := s.storage.Put(ctx, key, data, contentType)
	if err != nil {
		s.logger.Error("upload failed", "key", key, "contentType", contentType, "error", err)
		return nil, err
	}

	s.logger.Info("file uploaded", "key", key, "size", size)
	return &UploadResult{URL: url, Key: key}, nil
}

func folderFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "images"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	default:
		return "uploads"
	}
}
