package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// ContentWritingService holds the business logic for the content writing portfolio.
type ContentWritingService struct {
	repo   repositories.ContentWritingRepository
	logger ports.Logger
}

// NewContentWritingService creates a ContentWritingService.
func NewContentWritingService(repo repositories.ContentWritingRepository, logger ports.Logger) *ContentWritingService {
	return &ContentWritingService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the public, active-only portfolio filtered per the request.
func (s *ContentWritingService) List(ctx context.Context, filters repositories.ContentWritingFilters) ([]*entities.ContentWriting, error) {
	return s.repo.List(ctx, filters)
}

// GetAll returns every item for the dashboard, active or not.
func (s *ContentWritingService) GetAll(ctx context.Context) ([]*entities.ContentWriting, error) {
	return s.repo.GetAll(ctx)
}

// Create inserts a new item. New rows are always active.
func (s *ContentWritingService) Create(ctx context.Context, item *entities.ContentWriting) error {
	item.IsActive = true

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create content writing item", "title", item.Title, "error", err)
		return err
	}

	s.logger.Info("content writing item created", "id", item.ID, "title", item.Title)
	return nil
}

// Update patches the supplied fields only.
func (s *ContentWritingService) Update(ctx context.Context, id int64, patch repositories.ContentWritingPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info("content writing item updated", "id", id)
	return nil
}

// Delete removes an item permanently. Missing ids are a no-op.
func (s *ContentWritingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete content writing item", "id", id, "error", err)
		return err
	}

	s.logger.Info("content writing item deleted", "id", id)
	return nil
}
