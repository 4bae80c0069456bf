package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// ModelsHandler serves the models catalog endpoints.
type ModelsHandler struct {
	service *services.ModelsService
}

// NewModelsHandler creates a ModelsHandler.
func NewModelsHandler(service *services.ModelsService) *ModelsHandler {
	return &ModelsHandler{
		service: service,
	}
}

// List returns the public catalog. Filters come from the query string;
// "all" and an absent parameter mean the same thing.
func (h *ModelsHandler) List(c *gin.Context) {
	filters := repositories.ModelFilters{
		Gender:    c.Query("gender"),
		MinAge:    intQueryParam(c, "minAge"),
		MaxAge:    intQueryParam(c, "maxAge"),
		Specialty: c.Query("specialty"),
	}

	models, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "Model")
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponses(models))
}

// GetAll returns every model for the dashboard.
func (h *ModelsHandler) GetAll(c *gin.Context) {
	models, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Model")
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponses(models))
}

// Create adds a new model.
func (h *ModelsHandler) Create(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	model := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), model); err != nil {
		respondError(c, err, "Model")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": model.ID})
}

// Update patches a model.
func (h *ModelsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, err, "Model")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a model.
func (h *ModelsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Model")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
