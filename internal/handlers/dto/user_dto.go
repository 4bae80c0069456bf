package dto

import (
	"time"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// UserResponse is the API representation of the signed-in user.
type UserResponse struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"openId"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	LoginMethod  string    `json:"loginMethod,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// ToUserResponse converts a user entity into its API representation.
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		OpenID:       user.OpenID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		LastSignedIn: user.LastSignedIn,
	}
}
