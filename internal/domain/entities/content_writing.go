package entities

import "time"

// ContentWriting represents a writing sample in the content writing portfolio.
type ContentWriting struct {
	ID          int64
	Title       string
	Description string
	ContentType string
	SampleText  string
	ClientName  string
	WordCount   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
