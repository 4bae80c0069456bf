package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

// ContentCreatorRepository implements repositories.ContentCreatorRepository.
type ContentCreatorRepository struct {
	db *gorm.DB
}

// NewContentCreatorRepository creates a ContentCreatorRepository.
func NewContentCreatorRepository(db *gorm.DB) repositories.ContentCreatorRepository {
	return &ContentCreatorRepository{db: db}
}

func (r *ContentCreatorRepository) List(ctx context.Context, filters repositories.ContentCreatorFilters) ([]*entities.ContentCreator, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.ContentCreator{}, nil
	}

	query := db.Model(&ContentCreatorRow{}).Where(`"isActive" = ?`, 1)

	// Both tag filters are substring matches against the raw JSON text.
	if filters.Platform != "" && filters.Platform != repositories.FilterAll {
		query = query.Where(`platforms LIKE ?`, "%"+filters.Platform+"%")
	}
	if filters.ContentType != "" && filters.ContentType != repositories.FilterAll {
		query = query.Where(`"contentTypes" LIKE ?`, "%"+filters.ContentType+"%")
	}

	var rows []*ContentCreatorRow
	if err := query.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *ContentCreatorRepository) GetAll(ctx context.Context) ([]*entities.ContentCreator, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.ContentCreator{}, nil
	}

	var rows []*ContentCreatorRow
	if err := db.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *ContentCreatorRepository) Create(ctx context.Context, creator *entities.ContentCreator) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := r.toRow(creator)
	if err := db.Create(row).Error; err != nil {
		return err
	}

	creator.ID = row.ID
	creator.CreatedAt = row.CreatedAt
	creator.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ContentCreatorRepository) Update(ctx context.Context, id int64, patch repositories.ContentCreatorPatch) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	cols := map[string]any{}
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Bio != nil {
		cols["bio"] = *patch.Bio
	}
	if patch.ProfileImage != nil {
		cols["profileImage"] = *patch.ProfileImage
	}
	if patch.PortfolioURL != nil {
		cols["portfolioUrl"] = *patch.PortfolioURL
	}
	if patch.Platforms != nil {
		cols["platforms"] = valueobjects.EncodeStringList(patch.Platforms)
	}
	if patch.ContentTypes != nil {
		cols["contentTypes"] = valueobjects.EncodeStringList(patch.ContentTypes)
	}
	if patch.SampleWorks != nil {
		cols["sampleWorks"] = valueobjects.EncodeStringList(patch.SampleWorks)
	}
	if patch.IsActive != nil {
		cols["isActive"] = boolToInt(*patch.IsActive)
	}

	result := db.Model(&ContentCreatorRow{}).Where(`id = ?`, id).Updates(touch(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ContentCreatorRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	return db.Delete(&ContentCreatorRow{}, id).Error
}

// Converters

func (r *ContentCreatorRepository) toRow(creator *entities.ContentCreator) *ContentCreatorRow {
	return &ContentCreatorRow{
		ID:           creator.ID,
		Name:         creator.Name,
		Bio:          creator.Bio,
		ProfileImage: creator.ProfileImage,
		PortfolioURL: creator.PortfolioURL,
		Platforms:    valueobjects.EncodeStringList(creator.Platforms),
		ContentTypes: valueobjects.EncodeStringList(creator.ContentTypes),
		SampleWorks:  valueobjects.EncodeStringList(creator.SampleWorks),
		IsActive:     boolToInt(creator.IsActive),
	}
}

func (r *ContentCreatorRepository) toEntity(row *ContentCreatorRow) *entities.ContentCreator {
	return &entities.ContentCreator{
		ID:           row.ID,
		Name:         row.Name,
		Bio:          row.Bio,
		ProfileImage: row.ProfileImage,
		PortfolioURL: row.PortfolioURL,
		Platforms:    valueobjects.ParseStringList(row.Platforms),
		ContentTypes: valueobjects.ParseStringList(row.ContentTypes),
		SampleWorks:  valueobjects.ParseStringList(row.SampleWorks),
		IsActive:     row.IsActive == 1,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *ContentCreatorRepository) toEntities(rows []*ContentCreatorRow) []*entities.ContentCreator {
	result := make([]*entities.ContentCreator, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result
}
