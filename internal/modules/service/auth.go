package service

import (
	"context"
	"errors"
	"time"

	"github.com/trackboard/trackboard/internal/config"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/security"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users repo.UserRepo
	cfg   *config.Config
}

func NewAuthService(users repo.UserRepo, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

// Login verifies the credentials and issues an access token. Unknown email
// and bad password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return "", err
	}

	if !security.CheckPassword(password, u.Password) {
		return "", apperr.Unauthorized("Invalid credentials")
	}
	if !u.IsActive {
		return "", apperr.Unauthorized("User is not active")
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	return security.GenerateToken(u.ID, u.Email, s.cfg.Auth.JWTSecret, ttl)
}
