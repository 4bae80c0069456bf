package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
	"github.com/salem59915-web/rex-backend/internal/domain/valueobjects"
)

// VoiceArtistRepository implements repositories.VoiceArtistRepository.
type VoiceArtistRepository struct {
	db *gorm.DB
}

// NewVoiceArtistRepository creates a VoiceArtistRepository.
func NewVoiceArtistRepository(db *gorm.DB) repositories.VoiceArtistRepository {
	return &VoiceArtistRepository{db: db}
}

func (r *VoiceArtistRepository) List(ctx context.Context, filters repositories.VoiceArtistFilters) ([]*entities.VoiceArtist, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.VoiceArtist{}, nil
	}

	query := db.Model(&VoiceArtistRow{}).Where(`"isActive" = ?`, 1)

	if filters.Gender != "" && filters.Gender != repositories.FilterAll {
		query = query.Where(`gender = ?`, filters.Gender)
	}
	if filters.VoiceType != "" && filters.VoiceType != repositories.FilterAll {
		query = query.Where(`"voiceType" = ?`, filters.VoiceType)
	}
	// Substring match against the raw JSON text.
	if filters.Language != "" && filters.Language != repositories.FilterAll {
		query = query.Where(`languages LIKE ?`, "%"+filters.Language+"%")
	}

	var rows []*VoiceArtistRow
	if err := query.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *VoiceArtistRepository) GetAll(ctx context.Context) ([]*entities.VoiceArtist, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return []*entities.VoiceArtist{}, nil
	}

	var rows []*VoiceArtistRow
	if err := db.Order(`"createdAt" ASC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.toEntities(rows), nil
}

func (r *VoiceArtistRepository) Create(ctx context.Context, artist *entities.VoiceArtist) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	row := r.toRow(artist)
	if err := db.Create(row).Error; err != nil {
		return err
	}

	artist.ID = row.ID
	artist.CreatedAt = row.CreatedAt
	artist.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *VoiceArtistRepository) Update(ctx context.Context, id int64, patch repositories.VoiceArtistPatch) error {
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
	if patch.Gender != nil {
		cols["gender"] = string(*patch.Gender)
	}
	if patch.VoiceType != nil {
		cols["voiceType"] = *patch.VoiceType
	}
	if patch.Languages != nil {
		cols["languages"] = valueobjects.EncodeStringList(patch.Languages)
	}
	if patch.Accents != nil {
		cols["accents"] = valueobjects.EncodeStringList(patch.Accents)
	}
	if patch.SampleAudios != nil {
		cols["sampleAudios"] = valueobjects.EncodeStringList(patch.SampleAudios)
	}
	if patch.IsActive != nil {
		cols["isActive"] = boolToInt(*patch.IsActive)
	}

	result := db.Model(&VoiceArtistRow{}).Where(`id = ?`, id).Updates(touch(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VoiceArtistRepository) Delete(ctx context.Context, id int64) error {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return domainerrors.ErrDatabaseUnavailable
	}

	return db.Delete(&VoiceArtistRow{}, id).Error
}

// Converters

func (r *VoiceArtistRepository) toRow(artist *entities.VoiceArtist) *VoiceArtistRow {
	return &VoiceArtistRow{
		ID:           artist.ID,
		Name:         artist.Name,
		Bio:          artist.Bio,
		ProfileImage: artist.ProfileImage,
		Gender:       string(artist.Gender),
		VoiceType:    artist.VoiceType,
		Languages:    valueobjects.EncodeStringList(artist.Languages),
		Accents:      valueobjects.EncodeStringList(artist.Accents),
		SampleAudios: valueobjects.EncodeStringList(artist.SampleAudios),
		IsActive:     boolToInt(artist.IsActive),
	}
}

func (r *VoiceArtistRepository) toEntity(row *VoiceArtistRow) *entities.VoiceArtist {
	return &entities.VoiceArtist{
		ID:           row.ID,
		Name:         row.Name,
		Bio:          row.Bio,
		ProfileImage: row.ProfileImage,
		Gender:       entities.Gender(row.Gender),
		VoiceType:    row.VoiceType,
		Languages:    valueobjects.ParseStringList(row.Languages),
		Accents:      valueobjects.ParseStringList(row.Accents),
		SampleAudios: valueobjects.ParseStringList(row.SampleAudios),
		IsActive:     row.IsActive == 1,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *VoiceArtistRepository) toEntities(rows []*VoiceArtistRow) []*entities.VoiceArtist {
	result := make([]*entities.VoiceArtist, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toEntity(row))
	}
	return result
}
