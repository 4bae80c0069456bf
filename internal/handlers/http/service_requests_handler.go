package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/handlers/dto"
	"github.com/salem59915-web/rex-backend/internal/services"
)

// ServiceRequestsHandler serves the contact-form endpoints. Create is
// public; listing and status changes are admin-only.
type ServiceRequestsHandler struct {
	service *services.ServiceRequestsService
}

// NewServiceRequestsHandler creates a ServiceRequestsHandler.
func NewServiceRequestsHandler(service *services.ServiceRequestsService) *ServiceRequestsHandler {
	return &ServiceRequestsHandler{
		service: service,
	}
}

// Create records a new service request from the public site.
func (h *ServiceRequestsHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	request, err := req.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "email", Message: err.Error(), Tag: "email"},
		}))
		return
	}

	if err := h.service.Create(c.Request.Context(), request); err != nil {
		respondError(c, err, "ServiceRequest")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      request.ID,
		"message": dto.T(c, "service_request.received"),
	})
}

// GetAll returns every request for the dashboard.
func (h *ServiceRequestsHandler) GetAll(c *gin.Context) {
	requests, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "ServiceRequest")
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceRequestResponses(requests))
}

// UpdateStatus moves a request through its workflow.
func (h *ServiceRequestsHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	status := entities.RequestStatus(req.Status)
	if err := h.service.UpdateStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err, "ServiceRequest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
