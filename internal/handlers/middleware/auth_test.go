package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/logging"
	"github.com/salem59915-web/rex-backend/internal/services"
)

const (
	testCookieName = "rex_session"
	testSecret     = "test-session-secret"
)

type stubUserRepo struct {
	users map[string]*entities.User
}

func (s *stubUserRepo) FindByOpenID(_ context.Context, openID string) (*entities.User, error) {
	return s.users[openID], nil
}

func sessionCookie(t *testing.T, subject string) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}

	return &http.Cookie{Name: testCookieName, Value: signed}
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubUserRepo{users: map[string]*entities.User{
		"admin-1": {ID: 1, OpenID: "admin-1", Name: "مدير", Role: entities.RoleAdmin},
		"user-1":  {ID: 2, OpenID: "user-1", Name: "زائر", Role: entities.RoleUser},
	}}
	authService := services.NewAuthService(repo, testSecret, logging.NewSlogLogger("error"))
	authMiddleware := NewAuthMiddleware(authService, testCookieName)

	router := gin.New()
	router.GET("/me", authMiddleware.RequireAuth(), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"openId": user.OpenID})
	})
	router.GET("/admin", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/catalog", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionCatalogRead), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.POST("/upload", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionUploadWrite), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestRequireAuth(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("rejects missing cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/me", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/me", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "not-a-jwt"})
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("accepts valid session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/me", nil)
		req.AddCookie(sessionCookie(t, "user-1"))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("forbids non-admin users", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		req.AddCookie(sessionCookie(t, "user-1"))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allows admins", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		req.AddCookie(sessionCookie(t, "admin-1"))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rejects anonymous users before the role check", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequirePermission(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("grants permissions carried by the role", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/catalog", nil)
		req.AddCookie(sessionCookie(t, "user-1"))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forbids permissions the role lacks", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/upload", nil)
		req.AddCookie(sessionCookie(t, "user-1"))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admins carry every permission", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/upload", nil)
		req.AddCookie(sessionCookie(t, "admin-1"))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}
