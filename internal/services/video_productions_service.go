package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/vimeo"
)

// VideoProductionsService holds the business logic for the video productions portfolio.
type VideoProductionsService struct {
	repo   repositories.VideoProductionRepository
	logger ports.Logger
}

// NewVideoProductionsService creates a VideoProductionsService.
func NewVideoProductionsService(repo repositories.VideoProductionRepository, logger ports.Logger) *VideoProductionsService {
	return &VideoProductionsService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the public, active-only portfolio filtered per the request.
func (s *VideoProductionsService) List(ctx context.Context, filters repositories.VideoProductionFilters) ([]*entities.VideoProduction, error) {
	return s.repo.List(ctx, filters)
}

// GetAll returns every production for the dashboard, active or not.
func (s *VideoProductionsService) GetAll(ctx context.Context) ([]*entities.VideoProduction, error) {
	return s.repo.GetAll(ctx)
}

// Create inserts a new production. The Vimeo URL is normalized to an
// embeddable player link when the video id can be extracted.
func (s *VideoProductionsService) Create(ctx context.Context, production *entities.VideoProduction) error {
	production.IsActive = true
	production.VideoURL = normalizeVideoURL(production.VideoURL)

	if err := s.repo.Create(ctx, production); err != nil {
		s.logger.Error("failed to create video production", "title", production.Title, "error", err)
		return err
	}

	s.logger.Info("video production created", "id", production.ID, "title", production.Title)
	return nil
}

// Update patches the supplied fields only.
func (s *VideoProductionsService) Update(ctx context.Context, id int64, patch repositories.VideoProductionPatch) error {
	if patch.VideoURL != nil {
		normalized := normalizeVideoURL(*patch.VideoURL)
		patch.VideoURL = &normalized
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info("video production updated", "id", id)
	return nil
}

// Delete removes a production permanently. Missing ids are a no-op.
func (s *VideoProductionsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete video production", "id", id, "error", err)
		return err
	}

	s.logger.Info("video production deleted", "id", id)
	return nil
}

// normalizeVideoURL rewrites Vimeo links into their embed form. URLs the
// parser cannot recognize are stored as given.
func normalizeVideoURL(raw string) string {
	if embed := vimeo.EmbedURL(raw); embed != "" {
		return embed
	}
	return raw
}
