package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// CreateModelRequest is the payload for creating a model.
type CreateModelRequest struct {
	Name         string   `json:"name" binding:"required"`
	Age          int      `json:"age" binding:"required,gt=0"`
	Gender       string   `json:"gender" binding:"required,oneof=male female"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profileImage"`
	VideoURL     string   `json:"videoUrl"`
	Height       int      `json:"height"`
	Experience   string   `json:"experience"`
	Specialties  []string `json:"specialties"`
}

// UpdateModelRequest is a partial update; absent fields are left untouched.
type UpdateModelRequest struct {
	Name         *string  `json:"name"`
	Age          *int     `json:"age" binding:"omitempty,gt=0"`
	Gender       *string  `json:"gender" binding:"omitempty,oneof=male female"`
	Bio          *string  `json:"bio"`
	ProfileImage *string  `json:"profileImage"`
	VideoURL     *string  `json:"videoUrl"`
	Height       *int     `json:"height"`
	Experience   *string  `json:"experience"`
	Specialties  []string `json:"specialties"`
	IsActive     *bool    `json:"isActive"`
}

// ModelResponse is the API representation of a model.
type ModelResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	Height       int       `json:"height,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Specialties  []string  `json:"specialties"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateModelRequest) ToEntity() *entities.Model {
	return &entities.Model{
		Name:         r.Name,
		Age:          r.Age,
		Gender:       entities.Gender(r.Gender),
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		VideoURL:     r.VideoURL,
		Height:       r.Height,
		Experience:   r.Experience,
		Specialties:  r.Specialties,
	}
}

// ToPatch converts the update request into a repository patch.
func (r *UpdateModelRequest) ToPatch() repositories.ModelPatch {
	patch := repositories.ModelPatch{
		Name:         r.Name,
		Age:          r.Age,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		VideoURL:     r.VideoURL,
		Height:       r.Height,
		Experience:   r.Experience,
		Specialties:  r.Specialties,
		IsActive:     r.IsActive,
	}
	if r.Gender != nil {
		gender := entities.Gender(*r.Gender)
		patch.Gender = &gender
	}
	return patch
}

// ToModelResponse converts a domain entity into its API representation.
func ToModelResponse(model *entities.Model) ModelResponse {
	return ModelResponse{
		ID:           model.ID,
		Name:         model.Name,
		Age:          model.Age,
		Gender:       string(model.Gender),
		Bio:          model.Bio,
		ProfileImage: model.ProfileImage,
		VideoURL:     model.VideoURL,
		Height:       model.Height,
		Experience:   model.Experience,
		Specialties:  emptyIfNil(model.Specialties),
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ToModelResponses converts a list of entities.
func ToModelResponses(models []*entities.Model) []ModelResponse {
	responses := make([]ModelResponse, 0, len(models))
	for _, model := range models {
		responses = append(responses, ToModelResponse(model))
	}
	return responses
}
