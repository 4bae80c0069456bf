package dto

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse follows RFC 7807 (Problem Details for HTTP APIs).
type ErrorResponse struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Errors   []ValidationError      `json:"errors,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// emptyIfNil keeps list fields serializing as [] instead of null.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n builds an RFC 7807 response with a translated
// title and detail.
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)

	return ErrorResponse{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}
}

// ValidationErrorResponseI18n builds a 400 validation error response.
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n builds a 400 response for malformed requests.
func BadRequestErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		"error.bad_request.detail",
		400,
	)
}

// NotFoundErrorResponseI18n builds a 404 response.
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// UnauthorizedErrorResponseI18n builds a 401 response.
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.unauthorized.detail",
		401,
	)
}

// ForbiddenErrorResponseI18n builds a 403 response.
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/forbidden",
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalErrorResponseI18n builds a 500 response.
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}

// ServiceUnavailableErrorResponseI18n builds a 503 response, used when the
// database is down and writes cannot be served.
func ServiceUnavailableErrorResponseI18n(c *gin.Context) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/service-unavailable",
		"error.internal.title",
		"error.database_unavailable",
		503,
	)
	return response
}
