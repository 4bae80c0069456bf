package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// CreateVideoProductionRequest is the payload for creating a video production.
type CreateVideoProductionRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	VideoURL       string `json:"videoUrl" binding:"required"`
	ThumbnailURL   string `json:"thumbnailUrl"`
	ProductionType string `json:"productionType"`
	ClientName     string `json:"clientName"`
	Duration       int    `json:"duration"`
}

// UpdateVideoProductionRequest is a partial update; absent fields are left untouched.
type UpdateVideoProductionRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	VideoURL       *string `json:"videoUrl"`
	ThumbnailURL   *string `json:"thumbnailUrl"`
	ProductionType *string `json:"productionType"`
	ClientName     *string `json:"clientName"`
	Duration       *int    `json:"duration"`
	IsActive       *bool   `json:"isActive"`
}

// VideoProductionResponse is the API representation of a video production.
type VideoProductionResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	VideoURL       string    `json:"videoUrl"`
	ThumbnailURL   string    `json:"thumbnailUrl,omitempty"`
	ProductionType string    `json:"productionType,omitempty"`
	ClientName     string    `json:"clientName,omitempty"`
	Duration       int       `json:"duration,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateVideoProductionRequest) ToEntity() *entities.VideoProduction {
	return &entities.VideoProduction{
		Title:          r.Title,
		Description:    r.Description,
		VideoURL:       r.VideoURL,
		ThumbnailURL:   r.ThumbnailURL,
		ProductionType: r.ProductionType,
		ClientName:     r.ClientName,
		Duration:       r.Duration,
	}
}

// ToPatch converts the update request into a repository patch.
func (r *UpdateVideoProductionRequest) ToPatch() repositories.VideoProductionPatch {
	return repositories.VideoProductionPatch{
		Title:          r.Title,
		Description:    r.Description,
		VideoURL:       r.VideoURL,
		ThumbnailURL:   r.ThumbnailURL,
		ProductionType: r.ProductionType,
		ClientName:     r.ClientName,
		Duration:       r.Duration,
		IsActive:       r.IsActive,
	}
}

// ToVideoProductionResponse converts a domain entity into its API representation.
func ToVideoProductionResponse(video *entities.VideoProduction) VideoProductionResponse {
	return VideoProductionResponse{
		ID:             video.ID,
		Title:          video.Title,
		Description:    video.Description,
		VideoURL:       video.VideoURL,
		ThumbnailURL:   video.ThumbnailURL,
		ProductionType: video.ProductionType,
		ClientName:     video.ClientName,
		Duration:       video.Duration,
		IsActive:       video.IsActive,
		CreatedAt:      video.CreatedAt,
		UpdatedAt:      video.UpdatedAt,
	}
}

// ToVideoProductionResponses converts a list of entities.
func ToVideoProductionResponses(videos []*entities.VideoProduction) []VideoProductionResponse {
	responses := make([]VideoProductionResponse, 0, len(videos))
	for _, video := range videos {
		responses = append(responses, ToVideoProductionResponse(video))
	}
	return responses
}
