package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// ContentCreatorFilters narrows the public creator listing. Both filters
// are substring matches against the stored JSON text.
type ContentCreatorFilters struct {
	Platform    string
	ContentType string
}

// ContentCreatorPatch is a partial update; nil fields are left untouched.
type ContentCreatorPatch struct {
	Name         *string
	Bio          *string
	ProfileImage *string
	PortfolioURL *string
	Platforms    []string
	ContentTypes []string
	SampleWorks  []string
	IsActive     *bool
}

// ContentCreatorRepository defines the persistence interface for content creators.
type ContentCreatorRepository interface {
	List(ctx context.Context, filters ContentCreatorFilters) ([]*entities.ContentCreator, error)
	GetAll(ctx context.Context) ([]*entities.ContentCreator, error)
	Create(ctx context.Context, creator *entities.ContentCreator) error
	Update(ctx context.Context, id int64, patch ContentCreatorPatch) error
	Delete(ctx context.Context, id int64) error
}
