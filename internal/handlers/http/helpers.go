package http

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
)

// parseID reads the :id path parameter as an int64.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c))
		return 0, false
	}
	return id, true
}

// intQueryParam reads an optional integer query parameter. Malformed
// values are treated as absent.
func intQueryParam(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// respondError maps domain errors to problem responses. Resource names
// the entity in the 404 detail.
func respondError(c *gin.Context, err error, resource string) {
	switch {
	case stderrors.Is(err, domainerrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, resource))
	case stderrors.Is(err, domainerrors.ErrDatabaseUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ServiceUnavailableErrorResponseI18n(c))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
