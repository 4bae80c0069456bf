package entities

import "time"

// ContentCreator represents a social media content creator profile.
type ContentCreator struct {
	ID           int64
	Name         string
	Bio          string
	ProfileImage string
	PortfolioURL string
	Platforms    []string
	ContentTypes []string
	SampleWorks  []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
