package http

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// UploadHandler serves the admin file upload endpoint. Responses use the
// flat {error}/{success,url,key} shape the dashboard expects rather than
// problem details.
type UploadHandler struct {
	service *services.UploadService
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{
		service: service,
	}
}

// Upload stores a multipart file field named "file" in object storage.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.T(c, "error.upload.file_missing")})
		return
	}

	if fileHeader.Size > services.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.T(c, "error.upload.too_large")})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dto.T(c, "error.upload.failed")})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dto.T(c, "error.upload.failed")})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, data)
	if err != nil {
		switch {
		case stderrors.Is(err, domainerrors.ErrFileMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": dto.T(c, "error.upload.file_missing")})
		case stderrors.Is(err, domainerrors.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": dto.T(c, "error.upload.too_large")})
		case stderrors.Is(err, domainerrors.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": dto.T(c, "error.upload.unsupported_type")})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": dto.T(c, "error.upload.failed")})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     result.URL,
		"key":     result.Key,
	})
}
