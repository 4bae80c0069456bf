package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// ContentWritingFilters narrows the public writing sample listing.
type ContentWritingFilters struct {
	ContentType string
}

// ContentWritingPatch is a partial update; nil fields are left untouched.
type ContentWritingPatch struct {
	Title       *string
	Description *string
	ContentType *string
	SampleText  *string
	ClientName  *string
	WordCount   *int
	IsActive    *bool
}

// ContentWritingRepository defines the persistence interface for writing samples.
type ContentWritingRepository interface {
	List(ctx context.Context, filters ContentWritingFilters) ([]*entities.ContentWriting, error)
	GetAll(ctx context.Context) ([]*entities.ContentWriting, error)
	Create(ctx context.Context, sample *entities.ContentWriting) error
	Update(ctx context.Context, id int64, patch ContentWritingPatch) error
	Delete(ctx context.Context, id int64) error
}
