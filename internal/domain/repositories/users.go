package repositories

import (
	"context"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

// UserRepository resolves session subjects to user rows. User writes are
// owned by the external OAuth collaborator, so only reads are exposed.
type UserRepository interface {
	// FindByOpenID returns (nil, nil) when no user matches.
	FindByOpenID(ctx context.Context, openID string) (*entities.User, error)
}
