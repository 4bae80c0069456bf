package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/logging"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/persistence/postgres"
	"github.com/salem59915-web/rex-backend/internal/services"
)

func newModelsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.RunMigrations(db, logging.NewSlogLogger("error")))

	repo := postgres.NewModelRepository(db)
	service := services.NewModelsService(repo, logging.NewSlogLogger("error"))
	handler := NewModelsHandler(service)

	router := gin.New()
	router.GET("/api/v1/models", handler.List)
	router.GET("/api/v1/admin/models", handler.GetAll)
	router.POST("/api/v1/admin/models", handler.Create)
	router.PATCH("/api/v1/admin/models/:id", handler.Update)
	router.DELETE("/api/v1/admin/models/:id", handler.Delete)

	return router
}

func createModel(t *testing.T, router *gin.Engine, body string) int64 {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/admin/models", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotZero(t, resp.ID)
	return resp.ID
}

func TestModelsHandlerCreateAndList(t *testing.T) {
	router := newModelsRouter(t)

	createModel(t, router, `{"name":"أحمد محمد","age":25,"gender":"male","specialties":["أزياء"]}`)
	createModel(t, router, `{"name":"سارة أحمد","age":23,"gender":"female"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/models", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var models []dto.ModelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	require.Len(t, models, 2)
	assert.Equal(t, "أحمد محمد", models[0].Name)
	assert.Equal(t, []string{"أزياء"}, models[0].Specialties)
	assert.NotNil(t, models[1].Specialties)
	assert.True(t, models[0].IsActive)
}

func TestModelsHandlerValidation(t *testing.T) {
	router := newModelsRouter(t)

	cases := []string{
		`{"age":25,"gender":"male"}`,
		`{"name":"x","gender":"male"}`,
		`{"name":"x","age":25,"gender":"other"}`,
		`not json`,
	}

	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/admin/models", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestModelsHandlerListFilters(t *testing.T) {
	router := newModelsRouter(t)

	createModel(t, router, `{"name":"أحمد","age":25,"gender":"male"}`)
	createModel(t, router, `{"name":"سارة","age":23,"gender":"female"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/models?gender=female&minAge=20&maxAge=24", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var models []dto.ModelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	require.Len(t, models, 1)
	assert.Equal(t, "سارة", models[0].Name)

	// "all" behaves exactly like no filter
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/models?gender=all&specialty=all", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	assert.Len(t, models, 2)
}

func TestModelsHandlerUpdate(t *testing.T) {
	router := newModelsRouter(t)

	id := createModel(t, router, `{"name":"أحمد","age":25,"gender":"male"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", fmt.Sprintf("/api/v1/admin/models/%d", id), bytes.NewBufferString(`{"isActive":false,"bio":"مودل محترف"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// deactivated rows drop out of the public listing
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/models", nil)
	router.ServeHTTP(w, req)

	var models []dto.ModelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	assert.Empty(t, models)

	// but stay visible on the dashboard
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/admin/models", nil)
	router.ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	require.Len(t, models, 1)
	assert.False(t, models[0].IsActive)
	assert.Equal(t, "مودل محترف", models[0].Bio)
}

func TestModelsHandlerUpdateMissing(t *testing.T) {
	router := newModelsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/api/v1/admin/models/9999", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModelsHandlerDelete(t *testing.T) {
	router := newModelsRouter(t)

	id := createModel(t, router, `{"name":"أحمد","age":25,"gender":"male"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/v1/admin/models/%d", id), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// deleting a missing id still succeeds
	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", fmt.Sprintf("/api/v1/admin/models/%d", id), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
