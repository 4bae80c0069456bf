package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// VideoProductionRepository implements repositories.VideoProductionRepository.
type VideoProductionRepository struct {
	db *gorm.DB
}

// NewVideoProductionRepository creates a VideoProductionRepository.
func NewVideoProductionRepository(db *gorm.DB) repositories.VideoProductionRepository {
	return &VideoProductionRepository{db: db}
}

func (r *VideoProductionRepository) List(ctx context.Context, filters repositories.VideoProductionFilters) ([]*entities.VideoProduction, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.VideoProduction{}, nil
	}

	query := db.Model(&VideoProductionRow{}).Where(`"isActive" = ?`, 1)

	if filters.ProductionType != "" && filters.ProductionType != repositories.FilterAll {
		query = query.Where(`"productionType" = ?`, filters.ProductionType)
	}

	var rows []*VideoProductionRow
	if err := query.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *VideoProductionRepository) GetAll(ctx context.Context) ([]*entities.VideoProduction, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.VideoProduction{}, nil
	}

	var rows []*VideoProductionRow
	if err := db.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *VideoProductionRepository) Create(ctx context.Context, video *entities.VideoProduction) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := r.toRow(video)
	if err := db.Create(row).Error; err != nil {
		return err
	}

	video.ID = row.ID
	video.CreatedAt = row.CreatedAt
	video.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *VideoProductionRepository) Update(ctx context.Context, id int64, patch repositories.VideoProductionPatch) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	cols := map[string]any{}
	if patch.Title != nil {
		cols["title"] = *patch.Title
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.VideoURL != nil {
		cols["videoUrl"] = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		cols["thumbnailUrl"] = *patch.ThumbnailURL
	}
	if patch.ProductionType != nil {
		cols["productionType"] = *patch.ProductionType
	}
	if patch.ClientName != nil {
		cols["clientName"] = *patch.ClientName
	}
	if patch.Duration != nil {
		cols["duration"] = *patch.Duration
	}
	if patch.IsActive != nil {
		cols["isActive"] = boolToInt(*patch.IsActive)
	}

	result := db.Model(&VideoProductionRow{}).Where(`id = ?`, id).Updates(touch(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VideoProductionRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	return db.Delete(&VideoProductionRow{}, id).Error
}

// Converters

func (r *VideoProductionRepository) toRow(video *entities.VideoProduction) *VideoProductionRow {
	return &VideoProductionRow{
		ID:             video.ID,
		Title:          video.Title,
		Description:    video.Description,
		VideoURL:       video.VideoURL,
		ThumbnailURL:   video.ThumbnailURL,
		ProductionType: video.ProductionType,
		ClientName:     video.ClientName,
		Duration:       video.Duration,
		IsActive:       boolToInt(video.IsActive),
	}
}

func (r *VideoProductionRepository) toEntity(row *VideoProductionRow) *entities.VideoProduction {
	return &entities.VideoProduction{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		VideoURL:       row.VideoURL,
		ThumbnailURL:   row.ThumbnailURL,
		ProductionType: row.ProductionType,
		ClientName:     row.ClientName,
		Duration:       row.Duration,
		IsActive:       row.IsActive == 1,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func (r *VideoProductionRepository) toEntities(rows []*VideoProductionRow) []*entities.VideoProduction {
	result := make([]*entities.VideoProduction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result
}
