package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// ModelsService holds the business logic for the models catalog.
type ModelsService struct {
	repo   repositories.ModelRepository
	logger ports.Logger
}

// NewModelsService creates a ModelsService.
func NewModelsService(repo repositories.ModelRepository, logger ports.Logger) *ModelsService {
	return &ModelsService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the public, active-only catalog filtered per the request.
func (s *ModelsService) List(ctx context.Context, filters repositories.ModelFilters) ([]*entities.Model, error) {
	return s.repo.List(ctx, filters)
}

// GetAll returns every model for the dashboard, active or not.
func (s *ModelsService) GetAll(ctx context.Context) ([]*entities.Model, error) {
	return s.repo.GetAll(ctx)
}

// Create inserts a new model. New rows are always active.
func (s *ModelsService) Create(ctx context.Context, model *entities.Model) error {
	model.IsActive = true

	if err := s.repo.Create(ctx, model); err != nil {
		s.logger.Error("failed to create model", "name", model.Name, "error", err)
		return err
	}

	s.logger.Info("model created", "id", model.ID, "name", model.Name)
	return nil
}

// Update patches the supplied fields only.
func (s *ModelsService) Update(ctx context.Context, id int64, patch repositories.ModelPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info("model updated", "id", id)
	return nil
}

// Delete removes a model permanently. Missing ids are a no-op.
func (s *ModelsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete model", "id", id, "error", err)
		return err
	}

	s.logger.Info("model deleted", "id", id)
	return nil
}
