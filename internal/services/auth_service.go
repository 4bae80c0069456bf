package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	domainerrors "github.com/salem59915-web/rex-backend/internal/domain/errors"
	"github.com/salem59915-web/rex-backend/internal/domain/ports"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// AuthService verifies session tokens and resolves them to users.
// Sessions are issued by the external OAuth flow; this service only
// validates them.
type AuthService struct {
	users  repositories.UserRepository
	secret []byte
	logger ports.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users repositories.UserRepository, secret string, logger ports.Logger) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		logger: logger,
	}
}

// VerifySession parses and validates an HS256 session token and loads the
// user it belongs to. Any failure maps to an unauthorized error.
func (s *AuthService) VerifySession(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	openID, err := parsed.Claims.GetSubject()
	if err != nil || openID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := s.users.FindByOpenID(ctx, openID)
	if err != nil {
		s.logger.Error("failed to load session user", "openId", openID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}
