package services

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// BannersService holds the business logic for homepage banners.
type BannersService struct {
	repo   repositories.BannerRepository
	logger ports.Logger
}

// NewBannersService creates a BannersService.
func NewBannersService(repo repositories.BannerRepository, logger ports.Logger) *BannersService {
	return &BannersService{
		repo:   repo,
		logger: logger,
	}
}

// List returns active banners in display order.
func (s *BannersService) List(ctx context.Context) ([]*entities.Banner, error) {
	return s.repo.List(ctx)
}

// GetAll returns every banner for the dashboard, active or not.
func (s *BannersService) GetAll(ctx context.Context) ([]*entities.Banner, error) {
	return s.repo.GetAll(ctx)
}

// Create inserts a new banner. New banners are always active.
func (s *BannersService) Create(ctx context.Context, banner *entities.Banner) error {
	banner.IsActive = true

	if err := s.repo.Create(ctx, banner); err != nil {
		s.logger.Error("failed to create banner", "title", banner.Title, "error", err)
		return err
	}

	s.logger.Info("banner created", "id", banner.ID, "title", banner.Title)
	return nil
}

// Update patches the supplied fields only.
func (s *BannersService) Update(ctx context.Context, id int64, patch repositories.BannerPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info("banner updated", "id", id)
	return nil
}

// Delete removes a banner permanently. Missing ids are a no-op.
func (s *BannersService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete banner", "id", id, "error", err)
		return err
	}

	s.logger.Info("banner deleted", "id", id)
	return nil
}
