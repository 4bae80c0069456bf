package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salem59915-web/rex-backend/internal/infrastructure/logging"
	"github.com/salem59915-web/rex-backend/internal/services"
)

type recordingStorage struct {
	lastKey string
}

func (r *recordingStorage) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	r.lastKey = key
	return "https://storage.example.com/object/public/rex/" + key, nil
}

func newUploadRouter(t *testing.T, storage *recordingStorage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := services.NewUploadService(storage, logging.NewSlogLogger("error"))
	handler := NewUploadHandler(service)

	router := gin.New()
	router.POST("/api/upload", handler.Upload)
	return router
}

func multipartFile(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandlerImage(t *testing.T) {
	storage := &recordingStorage{}
	router := newUploadRouter(t, storage)

	body, contentType := multipartFile(t, "file", "photo.jpg", "image/jpeg", []byte("fake image"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
		Key     string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, storage.lastKey, resp.Key)
	assert.Contains(t, resp.URL, resp.Key)
	assert.Contains(t, resp.Key, "images/")
}

func TestUploadHandlerMissingFile(t *testing.T) {
	router := newUploadRouter(t, &recordingStorage{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/upload", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestUploadHandlerUnsupportedType(t *testing.T) {
	router := newUploadRouter(t, &recordingStorage{})

	body, contentType := multipartFile(t, "file", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
