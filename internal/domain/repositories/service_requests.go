package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// ServiceRequestRepository defines the persistence interface for
// contact-form service requests. Requests are created by the public form
// and only their status is editable from the dashboard.
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entities.ServiceRequest) error
	GetAll(ctx context.Context) ([]*entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) error
}
