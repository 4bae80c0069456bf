package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// VoiceArtistsHandler serves the voice artists catalog endpoints.
type VoiceArtistsHandler struct {
	service *services.VoiceArtistsService
}

// NewVoiceArtistsHandler creates a VoiceArtistsHandler.
func NewVoiceArtistsHandler(service *services.VoiceArtistsService) *VoiceArtistsHandler {
	return &VoiceArtistsHandler{
		service: service,
	}
}

// List returns the public catalog filtered by gender, voice type, and language.
func (h *VoiceArtistsHandler) List(c *gin.Context) {
	filters := repositories.VoiceArtistFilters{
		Gender:    c.Query("gender"),
		VoiceType: c.Query("voiceType"),
		Language:  c.Query("language"),
	}

	artists, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "VoiceArtist")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoiceArtistResponses(artists))
}

// GetAll returns every artist for the dashboard.
func (h *VoiceArtistsHandler) GetAll(c *gin.Context) {
	artists, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "VoiceArtist")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoiceArtistResponses(artists))
}

// Create adds a new artist.
func (h *VoiceArtistsHandler) Create(c *gin.Context) {
	var req dto.CreateVoiceArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	artist := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), artist); err != nil {
		respondError(c, err, "VoiceArtist")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": artist.ID})
}

// Update patches an artist.
func (h *VoiceArtistsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateVoiceArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, err, "VoiceArtist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes an artist.
func (h *VoiceArtistsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "VoiceArtist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
