package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// ServiceRequestsService handles incoming contact / booking requests.
type ServiceRequestsService struct {
	repo   repositories.ServiceRequestRepository
	logger ports.Logger
}

// NewServiceRequestsService creates a ServiceRequestsService.
func NewServiceRequestsService(repo repositories.ServiceRequestRepository, logger ports.Logger) *ServiceRequestsService {
	return &ServiceRequestsService{
		repo:   repo,
		logger: logger,
	}
}

// Create records a new request. Requests always start as pending.
func (s *ServiceRequestsService) Create(ctx context.Context, request *entities.ServiceRequest) error {
	request.Status = entities.RequestStatusPending

	if err := s.repo.Create(ctx, request); err != nil {
		s.logger.Error("failed to create service request", "service", request.Service, "error", err)
		return err
	}

	s.logger.Info("service request received", "id", request.ID, "service", request.Service)
	return nil
}

// GetAll returns every request for the dashboard, oldest first.
func (s *ServiceRequestsService) GetAll(ctx context.Context) ([]*entities.ServiceRequest, error) {
	return s.repo.GetAll(ctx)
}

// UpdateStatus moves a request through its workflow.
func (s *ServiceRequestsService) UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("service request status updated", "id", id, "status", status)
	return nil
}
