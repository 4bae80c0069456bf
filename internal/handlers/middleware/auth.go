package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/i18n"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// UserContextKey stores the authenticated user in the gin context.
const UserContextKey = "current_user"

// AuthMiddleware authenticates requests with the session cookie.
type AuthMiddleware struct {
	auth       *services.AuthService
	cookieName string
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(auth *services.AuthService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		auth:       auth,
		cookieName: cookieName,
	}
}

// RequireAuth rejects requests without a valid session cookie and stores
// the resolved user in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		user, verifyErr := m.auth.VerifySession(c.Request.Context(), token)
		if verifyErr != nil || user == nil {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireAdmin guards the dashboard catalog surface. Must run after
// RequireAuth in the chain.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequirePermission(entities.PermissionCatalogWrite)
}

// RequirePermission rejects requests whose session role lacks the
// permission. Must run after RequireAuth in the chain.
func (m *AuthMiddleware) RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized", "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		if !user.Role.HasPermission(permission) {
			abortProblem(c, http.StatusForbidden, "/problems/forbidden", "error.forbidden.title", "error.forbidden.detail")
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}

	return user
}

// abortProblem writes an RFC 7807 response translated with the i18n
// service already placed in the context.
func abortProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title := titleKey
	detail := detailKey
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang := c.GetString(LanguageContextKey)
			title = service.T(lang, titleKey)
			detail = service.T(lang, detailKey)
		}
	}

	c.AbortWithStatusJSON(status, gin.H{
		"type":     baseURL + problemType,
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.Request.URL.Path,
	})
}
