package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

// CreateServiceRequestRequest is the public contact-form payload.
type CreateServiceRequestRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Service string `json:"service" binding:"required"`
	Message string `json:"message"`
}

// UpdateServiceRequestStatusRequest moves a request through its workflow.
type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// ServiceRequestResponse is the API representation of a service request.
type ServiceRequestResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateServiceRequestRequest) ToEntity() (*entities.ServiceRequest, error) {
	email, err := valueobjects.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}

	return &entities.ServiceRequest{
		Name:    r.Name,
		Email:   email,
		Phone:   r.Phone,
		Service: r.Service,
		Message: r.Message,
	}, nil
}

// ToServiceRequestResponse converts a domain entity into its API representation.
func ToServiceRequestResponse(request *entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:        request.ID,
		Name:      request.Name,
		Email:     request.Email.String(),
		Phone:     request.Phone,
		Service:   request.Service,
		Message:   request.Message,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	}
}

// ToServiceRequestResponses converts a list of entities.
func ToServiceRequestResponses(requests []*entities.ServiceRequest) []ServiceRequestResponse {
	responses := make([]ServiceRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, ToServiceRequestResponse(request))
	}
	return responses
}
