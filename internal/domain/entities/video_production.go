package entities

import "time"

// VideoProduction represents an item in the video production portfolio.
type VideoProduction struct {
	ID             int64
	Title          string
	Description    string
	VideoURL       string
	ThumbnailURL   string
	ProductionType string
	ClientName     string
	Duration       int // in seconds
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
