package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey stores the resolved request language in the gin context.
	LanguageContextKey = "language"
	// I18nServiceContextKey stores the i18n service in the gin context.
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware resolves the language of each request.
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware creates an i18n middleware.
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage resolves the request language in this order:
// 1. ?lang= query parameter (explicit override)
// 2. Accept-Language header
// 3. configured default language
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		if lang == "" {
			acceptLang := c.GetHeader("Accept-Language")
			lang = m.parseAcceptLanguage(acceptLang)
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage picks the first supported language from an
// Accept-Language header, e.g. "ar,en-US;q=0.8,en;q=0.7" -> "ar".
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	languages := strings.Split(acceptLang, ",")

	for _, lang := range languages {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		// try the base language without a region (en-US -> en)
		if idx := strings.Index(lang, "-"); idx != -1 {
			baseLang := lang[:idx]
			if m.i18nService.IsLanguageSupported(baseLang) {
				return baseLang
			}
		}
	}

	return ""
}
