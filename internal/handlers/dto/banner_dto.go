package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// CreateBannerRequest is the payload for creating a banner.
type CreateBannerRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Link        string `json:"link"`
	Position    int    `json:"position"`
}

// UpdateBannerRequest is a partial update; absent fields are left untouched.
type UpdateBannerRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Link        *string `json:"link"`
	Position    *int    `json:"position"`
	IsActive    *bool   `json:"isActive"`
}

// BannerResponse is the API representation of a banner.
type BannerResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Link        string    `json:"link,omitempty"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateBannerRequest) ToEntity() *entities.Banner {
	return &entities.Banner{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Link:        r.Link,
		Position:    r.Position,
	}
}

// ToPatch converts the update request into a repository patch.
func (r *UpdateBannerRequest) ToPatch() repositories.BannerPatch {
	return repositories.BannerPatch{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Link:        r.Link,
		Position:    r.Position,
		IsActive:    r.IsActive,
	}
}

// ToBannerResponse converts a domain entity into its API representation.
func ToBannerResponse(banner *entities.Banner) BannerResponse {
	return BannerResponse{
		ID:          banner.ID,
		Title:       banner.Title,
		Description: banner.Description,
		ImageURL:    banner.ImageURL,
		Link:        banner.Link,
		Position:    banner.Position,
		IsActive:    banner.IsActive,
		CreatedAt:   banner.CreatedAt,
		UpdatedAt:   banner.UpdatedAt,
	}
}

// ToBannerResponses converts a list of entities.
func ToBannerResponses(banners []*entities.Banner) []BannerResponse {
	responses := make([]BannerResponse, 0, len(banners))
	for _, banner := range banners {
		responses = append(responses, ToBannerResponse(banner))
	}
	return responses
}
