package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// BannerPatch is a partial update; nil fields are left untouched.
type BannerPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Link        *string
	Position    *int
	IsActive    *bool
}

// BannerRepository defines the persistence interface for banners.
// Banners have no filter dimensions; both listings order by position.
type BannerRepository interface {
	// List returns active banners ordered by position.
	List(ctx context.Context) ([]*entities.Banner, error)
	// GetAll returns every banner ordered by position.
	GetAll(ctx context.Context) ([]*entities.Banner, error)
	Create(ctx context.Context, banner *entities.Banner) error
	Update(ctx context.Context, id int64, patch BannerPatch) error
	Delete(ctx context.Context, id int64) error
}
