package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// CreateVoiceArtistRequest is the payload for creating a voice artist.
type CreateVoiceArtistRequest struct {
	Name         string   `json:"name" binding:"required"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profileImage"`
	Gender       string   `json:"gender" binding:"required,oneof=male female"`
	VoiceType    string   `json:"voiceType"`
	Languages    []string `json:"languages"`
	Accents      []string `json:"accents"`
	SampleAudios []string `json:"sampleAudios"`
}

// UpdateVoiceArtistRequest is a partial update; absent fields are left untouched.
type UpdateVoiceArtistRequest struct {
	Name         *string  `json:"name"`
	Bio          *string  `json:"bio"`
	ProfileImage *string  `json:"profileImage"`
	Gender       *string  `json:"gender" binding:"omitempty,oneof=male female"`
	VoiceType    *string  `json:"voiceType"`
	Languages    []string `json:"languages"`
	Accents      []string `json:"accents"`
	SampleAudios []string `json:"sampleAudios"`
	IsActive     *bool    `json:"isActive"`
}

// VoiceArtistResponse is the API representation of a voice artist.
type VoiceArtistResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Gender       string    `json:"gender"`
	VoiceType    string    `json:"voiceType,omitempty"`
	Languages    []string  `json:"languages"`
	Accents      []string  `json:"accents"`
	SampleAudios []string  `json:"sampleAudios"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateVoiceArtistRequest) ToEntity() *entities.VoiceArtist {
	return &entities.VoiceArtist{
		Name:         r.Name,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		Gender:       entities.Gender(r.Gender),
		VoiceType:    r.VoiceType,
		Languages:    r.Languages,
		Accents:      r.Accents,
		SampleAudios: r.SampleAudios,
	}
}

// ToPatch converts the update request into a repository patch.
func (r *UpdateVoiceArtistRequest) ToPatch() repositories.VoiceArtistPatch {
	patch := repositories.VoiceArtistPatch{
		Name:         r.Name,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		VoiceType:    r.VoiceType,
		Languages:    r.Languages,
		Accents:      r.Accents,
		SampleAudios: r.SampleAudios,
		IsActive:     r.IsActive,
	}
	if r.Gender != nil {
		gender := entities.Gender(*r.Gender)
		patch.Gender = &gender
	}
	return patch
}

// ToVoiceArtistResponse converts a domain entity into its API representation.
func ToVoiceArtistResponse(artist *entities.VoiceArtist) VoiceArtistResponse {
	return VoiceArtistResponse{
		ID:           artist.ID,
		Name:         artist.Name,
		Bio:          artist.Bio,
		ProfileImage: artist.ProfileImage,
		Gender:       string(artist.Gender),
		VoiceType:    artist.VoiceType,
		Languages:    emptyIfNil(artist.Languages),
		Accents:      emptyIfNil(artist.Accents),
		SampleAudios: emptyIfNil(artist.SampleAudios),
		IsActive:     artist.IsActive,
		CreatedAt:    artist.CreatedAt,
		UpdatedAt:    artist.UpdatedAt,
	}
}

// ToVoiceArtistResponses converts a list of entities.
func ToVoiceArtistResponses(artists []*entities.VoiceArtist) []VoiceArtistResponse {
	responses := make([]VoiceArtistResponse, 0, len(artists))
	for _, artist := range artists {
		responses = append(responses, ToVoiceArtistResponse(artist))
	}
	return responses
}
