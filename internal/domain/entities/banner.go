package entities

import "time"

// Banner represents a homepage banner. Banners are ordered by Position,
// not by creation time.
type Banner struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Link        string
	Position    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
