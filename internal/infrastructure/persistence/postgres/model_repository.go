package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

// ModelRepository implements repositories.ModelRepository. A nil db puts
// the repository in degraded mode: reads return empty sets, writes fail
// with ErrDatabaseUnavailable.
type ModelRepository struct {
	db *gorm.DB
}

// NewModelRepository creates a ModelRepository.
func NewModelRepository(db *gorm.DB) repositories.ModelRepository {
	return &ModelRepository{db: db}
}

func (r *ModelRepository) List(ctx context.Context, filters repositories.ModelFilters) ([]*entities.Model, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.Model{}, nil
	}

	query := db.Model(&ModelRow{}).Where(`"isActive" = ?`, 1)

	if filters.Gender != "" && filters.Gender != repositories.FilterAll {
		query = query.Where(`gender = ?`, filters.Gender)
	}

	// A half-open range is ignored: the age filter applies only with both bounds.
	if filters.MinAge != nil && filters.MaxAge != nil {
		query = query.Where(`age BETWEEN ? AND ?`, *filters.MinAge, *filters.MaxAge)
	}

	// Substring match against the raw JSON text, kept for compatibility
	// with the stored data ("art" also matches "smart").
	if filters.Specialty != "" && filters.Specialty != repositories.FilterAll {
		query = query.Where(`specialties LIKE ?`, "%"+filters.Specialty+"%")
	}

	var rows []*ModelRow
	if err := query.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *ModelRepository) GetAll(ctx context.Context) ([]*entities.Model, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.Model{}, nil
	}

	var rows []*ModelRow
	if err := db.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *ModelRepository) Create(ctx context.Context, model *entities.Model) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := r.toRow(model)
	if err := db.Create(row).Error; err != nil {
		return err
	}

	model.ID = row.ID
	model.CreatedAt = row.CreatedAt
	model.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ModelRepository) Update(ctx context.Context, id int64, patch repositories.ModelPatch) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	cols := map[string]any{}
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Age != nil {
		cols["age"] = *patch.Age
	}
	if patch.Gender != nil {
		cols["gender"] = string(*patch.Gender)
	}
	if patch.Bio != nil {
		cols["bio"] = *patch.Bio
	}
	if patch.ProfileImage != nil {
		cols["profileImage"] = *patch.ProfileImage
	}
	if patch.VideoURL != nil {
		cols["videoUrl"] = *patch.VideoURL
	}
	if patch.Height != nil {
		cols["height"] = *patch.Height
	}
	if patch.Experience != nil {
		cols["experience"] = *patch.Experience
	}
	if patch.Specialties != nil {
		cols["specialties"] = valueobjects.EncodeStringList(patch.Specialties)
	}
	if patch.IsActive != nil {
		cols["isActive"] = boolToInt(*patch.IsActive)
	}

	result := db.Model(&ModelRow{}).Where(`id = ?`, id).Updates(touch(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ModelRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	// Hard delete; removing a missing id is a no-op by contract.
	return db.Delete(&ModelRow{}, id).Error
}

// Converters

func (r *ModelRepository) toRow(model *entities.Model) *ModelRow {
	return &ModelRow{
		ID:           model.ID,
		Name:         model.Name,
		Age:          model.Age,
		Gender:       string(model.Gender),
		Bio:          model.Bio,
		ProfileImage: model.ProfileImage,
		VideoURL:     model.VideoURL,
		Height:       model.Height,
		Experience:   model.Experience,
		Specialties:  valueobjects.EncodeStringList(model.Specialties),
		IsActive:     boolToInt(model.IsActive),
	}
}

func (r *ModelRepository) toEntity(row *ModelRow) *entities.Model {
	return &entities.Model{
		ID:           row.ID,
		Name:         row.Name,
		Age:          row.Age,
		Gender:       entities.Gender(row.Gender),
		Bio:          row.Bio,
		ProfileImage: row.ProfileImage,
		VideoURL:     row.VideoURL,
		Height:       row.Height,
		Experience:   row.Experience,
		Specialties:  valueobjects.ParseStringList(row.Specialties),
		IsActive:     row.IsActive == 1,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *ModelRepository) toEntities(rows []*ModelRow) []*entities.Model {
	result := make([]*entities.Model, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result
}
