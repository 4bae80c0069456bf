package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// VoiceArtistFilters narrows the public voice artist listing. Language is
// a substring match against the stored JSON text.
type VoiceArtistFilters struct {
	Gender    string
	VoiceType string
	Language  string
}

// VoiceArtistPatch is a partial update; nil fields are left untouched.
type VoiceArtistPatch struct {
	Name         *string
	Bio          *string
	ProfileImage *string
	Gender       *entities.Gender
	VoiceType    *string
	Languages    []string
	Accents      []string
	SampleAudios []string
	IsActive     *bool
}

// VoiceArtistRepository defines the persistence interface for voice artists.
type VoiceArtistRepository interface {
	List(ctx context.Context, filters VoiceArtistFilters) ([]*entities.VoiceArtist, error)
	GetAll(ctx context.Context) ([]*entities.VoiceArtist, error)
	Create(ctx context.Context, artist *entities.VoiceArtist) error
	Update(ctx context.Context, id int64, patch VoiceArtistPatch) error
	Delete(ctx context.Context, id int64) error
}
