package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// ContentWritingRepository implements repositories.ContentWritingRepository.
type ContentWritingRepository struct {
	db *gorm.DB
}

// NewContentWritingRepository creates a ContentWritingRepository.
func NewContentWritingRepository(db *gorm.DB) repositories.ContentWritingRepository {
	return &ContentWritingRepository{db: db}
}

func (r *ContentWritingRepository) List(ctx context.Context, filters repositories.ContentWritingFilters) ([]*entities.ContentWriting, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.ContentWriting{}, nil
	}

	query := db.Model(&ContentWritingRow{}).Where(`"isActive" = ?`, 1)

	if filters.ContentType != "" && filters.ContentType != repositories.FilterAll {
		query = query.Where(`"contentType" = ?`, filters.ContentType)
	}

	var rows []*ContentWritingRow
	if err := query.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *ContentWritingRepository) GetAll(ctx context.Context) ([]*entities.ContentWriting, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.ContentWriting{}, nil
	}

	var rows []*ContentWritingRow
	if err := db.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *ContentWritingRepository) Create(ctx context.Context, sample *entities.ContentWriting) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := r.toRow(sample)
	if err := db.Create(row).Error; err != nil {
		return err
	}

	sample.ID = row.ID
	sample.CreatedAt = row.CreatedAt
	sample.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ContentWritingRepository) Update(ctx context.Context, id int64, patch repositories.ContentWritingPatch) error {
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
	if patch.ContentType != nil {
		cols["contentType"] = *patch.ContentType
	}
	if patch.SampleText != nil {
		cols["sampleText"] = *patch.SampleText
	}
	if patch.ClientName != nil {
		cols["clientName"] = *patch.ClientName
	}
	if patch.WordCount != nil {
		cols["wordCount"] = *patch.WordCount
	}
	if patch.IsActive != nil {
		cols["isActive"] = boolToInt(*patch.IsActive)
	}

	result := db.Model(&ContentWritingRow{}).Where(`id = ?`, id).Updates(touch(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ContentWritingRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	return db.Delete(&ContentWritingRow{}, id).Error
}

// Converters

func (r *ContentWritingRepository) toRow(sample *entities.ContentWriting) *ContentWritingRow {
	return &ContentWritingRow{
		ID:          sample.ID,
		Title:       sample.Title,
		Description: sample.Description,
		ContentType: sample.ContentType,
		SampleText:  sample.SampleText,
		ClientName:  sample.ClientName,
		WordCount:   sample.WordCount,
		IsActive:    boolToInt(sample.IsActive),
	}
}

func (r *ContentWritingRepository) toEntity(row *ContentWritingRow) *entities.ContentWriting {
	return &entities.ContentWriting{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ContentType: row.ContentType,
		SampleText:  row.SampleText,
		ClientName:  row.ClientName,
		WordCount:   row.WordCount,
		IsActive:    row.IsActive == 1,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *ContentWritingRepository) toEntities(rows []*ContentWritingRow) []*entities.ContentWriting {
	result := make([]*entities.ContentWriting, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result
}
