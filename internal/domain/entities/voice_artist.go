package entities

import "time"

// VoiceArtist represents a voice-over artist profile.
type VoiceArtist struct {
	ID           int64
	Name         string
	Bio          string
	ProfileImage string
	Gender       Gender
	VoiceType    string
	Languages    []string
	Accents      []string
	SampleAudios []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
