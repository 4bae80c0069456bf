package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// ContentWritingHandler serves the content writing portfolio endpoints.
type ContentWritingHandler struct {
	service *services.ContentWritingService
}

// NewContentWritingHandler creates a ContentWritingHandler.
func NewContentWritingHandler(service *services.ContentWritingService) *ContentWritingHandler {
	return &ContentWritingHandler{
		service: service,
	}
}

// List returns the public portfolio filtered by content type.
func (h *ContentWritingHandler) List(c *gin.Context) {
	filters := repositories.ContentWritingFilters{
		ContentType: c.Query("contentType"),
	}

	samples, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "ContentWriting")
		return
	}

	c.JSON(http.StatusOK, dto.ToContentWritingResponses(samples))
}

// GetAll returns every sample for the dashboard.
func (h *ContentWritingHandler) GetAll(c *gin.Context) {
	samples, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "ContentWriting")
		return
	}

	c.JSON(http.StatusOK, dto.ToContentWritingResponses(samples))
}

// Create adds a new sample.
func (h *ContentWritingHandler) Create(c *gin.Context) {
	var req dto.CreateContentWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	sample := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), sample); err != nil {
		respondError(c, err, "ContentWriting")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": sample.ID})
}

// Update patches a sample.
func (h *ContentWritingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateContentWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, err, "ContentWriting")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a sample.
func (h *ContentWritingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "ContentWriting")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
