package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// CreateContentWritingRequest is the payload for creating a writing sample.
type CreateContentWritingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ContentType string `json:"contentType"`
	SampleText  string `json:"sampleText"`
	ClientName  string `json:"clientName"`
	WordCount   int    `json:"wordCount"`
}

// UpdateContentWritingRequest is a partial update; absent fields are left untouched.
type UpdateContentWritingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContentType *string `json:"contentType"`
	SampleText  *string `json:"sampleText"`
	ClientName  *string `json:"clientName"`
	WordCount   *int    `json:"wordCount"`
	IsActive    *bool   `json:"isActive"`
}

// ContentWritingResponse is the API representation of a writing sample.
type ContentWritingResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
	SampleText  string    `json:"sampleText,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	WordCount   int       `json:"wordCount,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToEntity converts the create request into a domain entity.
func (r *CreateContentWritingRequest) ToEntity() *entities.ContentWriting {
	return &entities.ContentWriting{
		Title:       r.Title,
		Description: r.Description,
		ContentType: r.ContentType,
		SampleText:  r.SampleText,
		ClientName:  r.ClientName,
		WordCount:   r.WordCount,
	}
}

// ToPatch converts the update request into a repository patch.
func (r *UpdateContentWritingRequest) ToPatch() repositories.ContentWritingPatch {
	return repositories.ContentWritingPatch{
		Title:       r.Title,
		Description: r.Description,
		ContentType: r.ContentType,
		SampleText:  r.SampleText,
		ClientName:  r.ClientName,
		WordCount:   r.WordCount,
		IsActive:    r.IsActive,
	}
}

// ToContentWritingResponse converts a domain entity into its API representation.
func ToContentWritingResponse(sample *entities.ContentWriting) ContentWritingResponse {
	return ContentWritingResponse{
		ID:          sample.ID,
		Title:       sample.Title,
		Description: sample.Description,
		ContentType: sample.ContentType,
		SampleText:  sample.SampleText,
		ClientName:  sample.ClientName,
		WordCount:   sample.WordCount,
		IsActive:    sample.IsActive,
		CreatedAt:   sample.CreatedAt,
		UpdatedAt:   sample.UpdatedAt,
	}
}

// ToContentWritingResponses converts a list of entities.
func ToContentWritingResponses(samples []*entities.ContentWriting) []ContentWritingResponse {
	responses := make([]ContentWritingResponse, 0, len(samples))
	for _, sample := range samples {
		responses = append(responses, ToContentWritingResponse(sample))
	}
	return responses
}
