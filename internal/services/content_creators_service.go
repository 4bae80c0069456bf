package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// ContentCreatorsService holds the business logic for the content creators catalog.
type ContentCreatorsService struct {
	repo   repositories.ContentCreatorRepository
	logger ports.Logger
}

// NewContentCreatorsService creates a ContentCreatorsService.
func NewContentCreatorsService(repo repositories.ContentCreatorRepository, logger ports.Logger) *ContentCreatorsService {
	return &ContentCreatorsService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the public, active-only catalog filtered per the request.
func (s *ContentCreatorsService) List(ctx context.Context, filters repositories.ContentCreatorFilters) ([]*entities.ContentCreator, error) {
	return s.repo.List(ctx, filters)
}

// GetAll returns every creator for the dashboard, active or not.
func (s *ContentCreatorsService) GetAll(ctx context.Context) ([]*entities.ContentCreator, error) {
	return s.repo.GetAll(ctx)
}

// Create inserts a new creator. New rows are always active.
func (s *ContentCreatorsService) Create(ctx context.Context, creator *entities.ContentCreator) error {
	creator.IsActive = true

	if err := s.repo.Create(ctx, creator); err != nil {
		s.logger.Error("failed to create content creator", "name", creator.Name, "error", err)
		return err
	}

	s.logger.Info("content creator created", "id", creator.ID, "name", creator.Name)
	return nil
}

// Update patches the supplied fields only.
func (s *ContentCreatorsService) Update(ctx context.Context, id int64, patch repositories.ContentCreatorPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info("content creator updated", "id", id)
	return nil
}

// Delete removes a creator permanently. Missing ids are a no-op.
func (s *ContentCreatorsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete content creator", "id", id, "error", err)
		return err
	}

	s.logger.Info("content creator deleted", "id", id)
	return nil
}
