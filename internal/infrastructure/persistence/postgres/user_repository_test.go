package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
)

func TestUserRepositoryFindByOpenID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	row := &UserRow{
		OpenID:      "openid-123",
		Name:        "مدير النظام",
		Email:       "admin@example.com",
		LoginMethod: "google",
		Role:        "admin",
	}
	require.NoError(t, db.Create(row).Error)

	user, err := repo.FindByOpenID(ctx, "openid-123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "openid-123", user.OpenID)
	assert.Equal(t, entities.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
}

func TestUserRepositoryFindByOpenIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByOpenID(context.Background(), "no-such-user")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryDegradedMode(t *testing.T) {
	repo := NewUserRepository(nil)

	user, err := repo.FindByOpenID(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Nil(t, user)
}
