package entities

import "time"

// Gender is the gender enumeration shared by models and voice artists.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether the gender is one of the accepted values.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Model represents a model available for booking in the public catalog.
type Model struct {
	ID           int64
	Name         string
	Age          int
	Gender       Gender
	Bio          string
	ProfileImage string
	VideoURL     string
	Height       int // in cm
	Experience   string
	Specialties  []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
