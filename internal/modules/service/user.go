package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/config"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"github.com/trackboard/trackboard/internal/pkg/security"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	IsActive *bool
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	List(ctx context.Context, f repo.UserFilter) (*listing.Result[model.User], error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	Remove(ctx context.Context, id uuid.UUID) error
	EnsureDefault(ctx context.Context) error
}

type userService struct {
	r   repo.UserRepo
	cfg *config.Config
	log *zap.Logger
}

func NewUserService(r repo.UserRepo, cfg *config.Config, log *zap.Logger) UserService {
	return &userService{r: r, cfg: cfg, log: log}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		IsActive: true,
	}
	if err := s.r.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) List(ctx context.Context, f repo.UserFilter) (*listing.Result[model.User], error) {
	f.Normalize("createdAt")
	return s.r.List(ctx, f)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	return u, err
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.r.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	return u, err
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := security.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}

	if err := s.r.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Remove(ctx context.Context, id uuid.UUID) error {
	affected, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

// EnsureDefault seeds the configured default user when the table is empty,
// so a fresh deployment can log in.
func (s *userService) EnsureDefault(ctx context.Context) error {
	n, err := s.r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = s.Create(ctx, CreateUserInput{
		Name:     s.cfg.Auth.DefaultUserName,
		Email:    s.cfg.Auth.DefaultUserEmail,
		Password: s.cfg.Auth.DefaultUserPassword,
	})
	if err != nil {
		return err
	}
	s.log.Sugar().Infow("seeded default user", "email", s.cfg.Auth.DefaultUserEmail)
	return nil
}
