package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// VideoProductionFilters narrows the public portfolio listing.
type VideoProductionFilters struct {
	ProductionType string
}

// VideoProductionPatch is a partial update; nil fields are left untouched.
type VideoProductionPatch struct {
	Title          *string
	Description    *string
	VideoURL       *string
	ThumbnailURL   *string
	ProductionType *string
	ClientName     *string
	Duration       *int
	IsActive       *bool
}

// VideoProductionRepository defines the persistence interface for video productions.
type VideoProductionRepository interface {
	List(ctx context.Context, filters VideoProductionFilters) ([]*entities.VideoProduction, error)
	GetAll(ctx context.Context) ([]*entities.VideoProduction, error)
	Create(ctx context.Context, video *entities.VideoProduction) error
	Update(ctx context.Context, id int64, patch VideoProductionPatch) error
	Delete(ctx context.Context, id int64) error
}
