package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// ContentCreatorsHandler serves the content creators catalog endpoints.
type ContentCreatorsHandler struct {
	service *services.ContentCreatorsService
}

// NewContentCreatorsHandler creates a ContentCreatorsHandler.
func NewContentCreatorsHandler(service *services.ContentCreatorsService) *ContentCreatorsHandler {
	return &ContentCreatorsHandler{
		service: service,
	}
}

// List returns the public catalog filtered by platform and content type.
func (h *ContentCreatorsHandler) List(c *gin.Context) {
	filters := repositories.ContentCreatorFilters{
		Platform:    c.Query("platform"),
		ContentType: c.Query("contentType"),
	}

	creators, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "ContentCreator")
		return
	}

	c.JSON(http.StatusOK, dto.ToContentCreatorResponses(creators))
}

// GetAll returns every creator for the dashboard.
func (h *ContentCreatorsHandler) GetAll(c *gin.Context) {
	creators, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "ContentCreator")
		return
	}

	c.JSON(http.StatusOK, dto.ToContentCreatorResponses(creators))
}

// Create adds a new creator.
func (h *ContentCreatorsHandler) Create(c *gin.Context) {
	var req dto.CreateContentCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	creator := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), creator); err != nil {
		respondError(c, err, "ContentCreator")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": creator.ID})
}

// Update patches a creator.
func (h *ContentCreatorsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateContentCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, err, "ContentCreator")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a creator.
func (h *ContentCreatorsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "ContentCreator")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
