package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// VoiceArtistsService holds the business logic for the voice artists catalog.
type VoiceArtistsService struct {
	repo   repositories.VoiceArtistRepository
	logger ports.Logger
}

// NewVoiceArtistsService creates a VoiceArtistsService.
func NewVoiceArtistsService(repo repositories.VoiceArtistRepository, logger ports.Logger) *VoiceArtistsService {
	return &VoiceArtistsService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the public, active-only catalog filtered per the request.
func (s *VoiceArtistsService) List(ctx context.Context, filters repositories.VoiceArtistFilters) ([]*entities.VoiceArtist, error) {
	return s.repo.List(ctx, filters)
}

// GetAll returns every artist for the dashboard, active or not.
func (s *VoiceArtistsService) GetAll(ctx context.Context) ([]*entities.VoiceArtist, error) {
	return s.repo.GetAll(ctx)
}

// Create inserts a new artist. New rows are always active.
func (s *VoiceArtistsService) Create(ctx context.Context, artist *entities.VoiceArtist) error {
	artist.IsActive = true

	if err := s.repo.Create(ctx, artist); err != nil {
		s.logger.Error("failed to create voice artist", "name", artist.Name, "error", err)
		return err
	}

	s.logger.Info("voice artist created", "id", artist.ID, "name", artist.Name)
	return nil
}

// Update patches the supplied fields only.
func (s *VoiceArtistsService) Update(ctx context.Context, id int64, patch repositories.VoiceArtistPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info("voice artist updated", "id", id)
	return nil
}

// Delete removes an artist permanently. Missing ids are a no-op.
func (s *VoiceArtistsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete voice artist", "id", id, "error", err)
		return err
	}

	s.logger.Info("voice artist deleted", "id", id)
	return nil
}
