package entities

import "time"

// User represents an account created by the external OAuth provider.
// The backend never creates users itself; it only resolves the session
// subject (OpenID) to a row and reads the role from it.
type User struct {
	ID           int64
	OpenID       string
	Name         string
	Email        string // may be empty, the OAuth provider does not always supply one
	LoginMethod  string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

// IsAdmin reports whether the user may access the admin surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
