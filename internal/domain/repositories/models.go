package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// FilterAll is the sentinel filter value meaning "no constraint". The
// public pages send it for every untouched filter toggle, so it must be
// treated exactly like an absent filter.
const FilterAll = "all"

// ModelFilters narrows the public model listing. The age range applies
// only when both bounds are present; Specialty is matched as a raw
// substring of the stored JSON text (see package postgres).
type ModelFilters struct {
	Gender    string
	MinAge    *int
	MaxAge    *int
	Specialty string
}

// ModelPatch is a partial update; nil fields are left untouched.
type ModelPatch struct {
	Name         *string
	Age          *int
	Gender       *entities.Gender
	Bio          *string
	ProfileImage *string
	VideoURL     *string
	Height       *int
	Experience   *string
	Specialties  []string
	IsActive     *bool
}

// ModelRepository defines the persistence interface for models.
type ModelRepository interface {
	// List returns active models matching the filters, ordered by creation time.
	List(ctx context.Context, filters ModelFilters) ([]*entities.Model, error)
	// GetAll returns every model regardless of active state, ordered by creation time.
	GetAll(ctx context.Context) ([]*entities.Model, error)
	Create(ctx context.Context, model *entities.Model) error
	// Update patches the given fields and refreshes updatedAt.
	// Returns errors.ErrNotFound when no row matches the id.
	Update(ctx context.Context, id int64, patch ModelPatch) error
	// Delete removes the row permanently. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
