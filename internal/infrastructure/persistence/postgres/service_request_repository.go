package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

// ServiceRequestRepository implements repositories.ServiceRequestRepository.
type ServiceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a ServiceRequestRepository.
func NewServiceRequestRepository(db *gorm.DB) repositories.ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, request *entities.ServiceRequest) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := &ServiceRequestRow{
		Name:    request.Name,
		Email:   request.Email.String(),
		Phone:   request.Phone,
		Service: request.Service,
		Message: request.Message,
		Status:  string(request.Status),
	}
	if err := db.Create(row).Error; err != nil {
		return err
	}

	request.ID = row.ID
	request.CreatedAt = row.CreatedAt
	request.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ServiceRequestRepository) GetAll(ctx context.Context) ([]*entities.ServiceRequest, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.ServiceRequest{}, nil
	}

	var rows []*ServiceRequestRow
	if err := db.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.ServiceRequest, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result, nil
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	result := db.Model(&ServiceRequestRow{}).Where(`id = ?`, id).Updates(touch(map[string]any{
		"status": string(status),
	}))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRequestRepository) toEntity(row *ServiceRequestRow) *entities.ServiceRequest {
	return &entities.ServiceRequest{
		ID:        row.ID,
		Name:      row.Name,
		Email:     valueobjects.EmailFromStored(row.Email),
		Phone:     row.Phone,
		Service:   row.Service,
		Message:   row.Message,
		Status:    entities.RequestStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
