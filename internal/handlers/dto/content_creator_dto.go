package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// CreateContentCreatorRequest is the payload for creating a content creator.
type CreateContentCreatorRequest struct {
	Name         string   `json:"name" binding:"required"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profileImage"`
	PortfolioURL string   `json:"portfolioUrl"`
	Platforms    []string `json:"platforms"`
	ContentTypes []string `json:"contentTypes"`
	SampleWorks  []string `json:"sampleWorks"`
}

// UpdateContentCreatorRequest is a partial update; absent fields are left untouched.
type UpdateContentCreatorRequest struct {
	Name         *string  `json:"name"`
	Bio          *string  `json:"bio"`
	ProfileImage *string  `json:"profileImage"`
	PortfolioURL *string  `json:"portfolioUrl"`
	Platforms    []string `json:"platforms"`
	ContentTypes []string `json:"contentTypes"`
	SampleWorks  []string `json:"sampleWorks"`
	IsActive     *bool    `json:"isActive"`
}

// ContentCreatorResponse is the API representation of a content creator.
type ContentCreatorResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	PortfolioURL string    `json:"portfolioUrl,omitempty"`
	Platforms    []string  `json:"platforms"`
	ContentTypes []string  `json:"contentTypes"`
	SampleWorks  []string  `json:"sampleWorks"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateContentCreatorRequest) ToEntity() *entities.ContentCreator {
	return &entities.ContentCreator{
		Name:         r.Name,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		PortfolioURL: r.PortfolioURL,
		Platforms:    r.Platforms,
		ContentTypes: r.ContentTypes,
		SampleWorks:  r.SampleWorks,
	}
}

// ToPatch converts the update request into a repository patch.
func (r *UpdateContentCreatorRequest) ToPatch() repositories.ContentCreatorPatch {
	return repositories.ContentCreatorPatch{
		Name:         r.Name,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		PortfolioURL: r.PortfolioURL,
		Platforms:    r.Platforms,
		ContentTypes: r.ContentTypes,
		SampleWorks:  r.SampleWorks,
		IsActive:     r.IsActive,
	}
}

// ToContentCreatorResponse converts a domain entity into its API representation.
func ToContentCreatorResponse(creator *entities.ContentCreator) ContentCreatorResponse {
	return ContentCreatorResponse{
		ID:           creator.ID,
		Name:         creator.Name,
		Bio:          creator.Bio,
		ProfileImage: creator.ProfileImage,
		PortfolioURL: creator.PortfolioURL,
		Platforms:    emptyIfNil(creator.Platforms),
		ContentTypes: emptyIfNil(creator.ContentTypes),
		SampleWorks:  emptyIfNil(creator.SampleWorks),
		IsActive:     creator.IsActive,
		CreatedAt:    creator.CreatedAt,
		UpdatedAt:    creator.UpdatedAt,
	}
}

// ToContentCreatorResponses converts a list of entities.
func ToContentCreatorResponses(creators []*entities.ContentCreator) []ContentCreatorResponse {
	responses := make([]ContentCreatorResponse, 0, len(creators))
	for _, creator := range creators {
		responses = append(responses, ToContentCreatorResponse(creator))
	}
	return responses
}
