package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// VideoProductionsHandler serves the video production portfolio endpoints.
type VideoProductionsHandler struct {
	service *services.VideoProductionsService
}

// NewVideoProductionsHandler creates a VideoProductionsHandler.
func NewVideoProductionsHandler(service *services.VideoProductionsService) *VideoProductionsHandler {
	return &VideoProductionsHandler{
		service: service,
	}
}

// List returns the public portfolio filtered by production type.
func (h *VideoProductionsHandler) List(c *gin.Context) {
	filters := repositories.VideoProductionFilters{
		ProductionType: c.Query("productionType"),
	}

	videos, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "VideoProduction")
		return
	}

	c.JSON(http.StatusOK, dto.ToVideoProductionResponses(videos))
}

// GetAll returns every production for the dashboard.
func (h *VideoProductionsHandler) GetAll(c *gin.Context) {
	videos, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "VideoProduction")
		return
	}

	c.JSON(http.StatusOK, dto.ToVideoProductionResponses(videos))
}

// Create adds a new production.
func (h *VideoProductionsHandler) Create(c *gin.Context) {
	var req dto.CreateVideoProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	video := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), video); err != nil {
		respondError(c, err, "VideoProduction")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": video.ID})
}

// Update patches a production.
func (h *VideoProductionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateVideoProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, err, "VideoProduction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a production.
func (h *VideoProductionsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "VideoProduction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
