package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/handlers/middleware"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/i18n"
)

// T translates a message key in the context of a gin request.
// Usage: dto.T(c, "service_request.received")
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// no service available, return the key itself
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	lang := GetLanguage(c)

	return service.T(lang, key, params...)
}

// GetLanguage returns the language resolved for the current request.
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "ar"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "ar"
	}

	return langStr
}
