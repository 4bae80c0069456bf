package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/handlers/middleware"
)

// AuthHandler serves the session endpoints. Sessions are issued by the
// external OAuth flow; this handler only reads and clears them.
type AuthHandler struct {
	cookieName string
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(cookieName string) *AuthHandler {
	return &AuthHandler{
		cookieName: cookieName,
	}
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
