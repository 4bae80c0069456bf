package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// UserRepository implements repositories.UserRepository. User rows are
// written by the external OAuth collaborator; this side only reads them.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByOpenID(ctx context.Context, openID string) (*entities.User, error) {
	db := dbFromContext(ctx, r.db)
	if db == nil {
		return nil, nil
	}

	var row UserRow
	if err := db.Where(`"openId" = ?`, openID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.User{
		ID:           row.ID,
		OpenID:       row.OpenID,
		Name:         row.Name,
		Email:        row.Email,
		LoginMethod:  row.LoginMethod,
		Role:         entities.Role(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		LastSignedIn: row.LastSignedIn,
	}, nil
}
