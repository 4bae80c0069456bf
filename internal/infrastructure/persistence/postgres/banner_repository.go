package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// BannerRepository implements repositories.BannerRepository.
type BannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a BannerRepository.
func NewBannerRepository(db *gorm.DB) repositories.BannerRepository {
	return &BannerRepository{db: db}
}

func (r *BannerRepository) List(ctx context.Context) ([]*entities.Banner, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.Banner{}, nil
	}

	var rows []*BannerRow
	// Banners order by display position, not by creation time.
	if err := db.Where(`"isActive" = ?`, 1).Order(`position ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *BannerRepository) GetAll(ctx context.Context) ([]*entities.Banner, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.Banner{}, nil
	}

	var rows []*BannerRow
	if err := db.Order(`position ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *BannerRepository) Create(ctx context.Context, banner *entities.Banner) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := r.toRow(banner)
	if err := db.Create(row).Error; err != nil {
		return err
	}

	banner.ID = row.ID
	banner.CreatedAt = row.CreatedAt
	banner.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *BannerRepository) Update(ctx context.Context, id int64, patch repositories.BannerPatch) error {
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
	if patch.ImageURL != nil {
		cols["imageUrl"] = *patch.ImageURL
	}
	if patch.Link != nil {
		cols["link"] = *patch.Link
	}
	if patch.Position != nil {
		cols["position"] = *patch.Position
	}
	if patch.IsActive != nil {
		cols["isActive"] = boolToInt(*patch.IsActive)
	}

	result := db.Model(&BannerRow{}).Where(`id = ?`, id).Updates(touch(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	return db.Delete(&BannerRow{}, id).Error
}

// Converters

func (r *BannerRepository) toRow(banner *entities.Banner) *BannerRow {
	return &BannerRow{
		ID:          banner.ID,
		Title:       banner.Title,
		Description: banner.Description,
		ImageURL:    banner.ImageURL,
		Link:        banner.Link,
		Position:    banner.Position,
		IsActive:    boolToInt(banner.IsActive),
	}
}

func (r *BannerRepository) toEntity(row *BannerRow) *entities.Banner {
	return &entities.Banner{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Link:        row.Link,
		Position:    row.Position,
		IsActive:    row.IsActive == 1,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *BannerRepository) toEntities(rows []*BannerRow) []*entities.Banner {
	result := make([]*entities.Banner, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result
}
