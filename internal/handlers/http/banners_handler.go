package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// BannersHandler serves the homepage banner endpoints.
type BannersHandler struct {
	service *services.BannersService
}

// NewBannersHandler creates a BannersHandler.
func NewBannersHandler(service *services.BannersService) *BannersHandler {
	return &BannersHandler{
		service: service,
	}
}

// List returns active banners in display order.
func (h *BannersHandler) List(c *gin.Context) {
	banners, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Banner")
		return
	}

	c.JSON(http.StatusOK, dto.ToBannerResponses(banners))
}

// GetAll returns every banner for the dashboard.
func (h *BannersHandler) GetAll(c *gin.Context) {
	banners, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Banner")
		return
	}

	c.JSON(http.StatusOK, dto.ToBannerResponses(banners))
}

// Create adds a new banner.
func (h *BannersHandler) Create(c *gin.Context) {
	var req dto.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	banner := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), banner); err != nil {
		respondError(c, err, "Banner")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": banner.ID})
}

// Update patches a banner.
func (h *BannersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, err, "Banner")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a banner.
func (h *BannersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Banner")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
