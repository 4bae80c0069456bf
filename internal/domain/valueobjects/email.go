package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
)

// Email is a value object that guarantees emails are always valid.
type Email struct {
	value string
}

// NewEmail creates a validated Email.
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// EmailFromStored wraps an address that was already validated when it
// was written. Read paths must not reject legacy rows, so the value is
// only normalized here, never re-validated.
func EmailFromStored(email string) Email {
	return Email{value: strings.TrimSpace(strings.ToLower(email))}
}

// String returns the email value.
func (e Email) String() string {
	return e.value
}

// isValidEmail validates the email format.
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}

	pattern := `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
