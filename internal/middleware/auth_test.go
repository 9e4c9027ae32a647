package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trackboard/trackboard/internal/config"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/service"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"github.com/trackboard/trackboard/internal/pkg/security"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, in service.CreateUserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, f repo.UserFilter) (*listing.Result[model.User], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Result[model.User]), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, in service.UpdateUserInput) (*model.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) EnsureDefault(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func authTestConfig() *config.Config {
	return &config.Config{Auth: config.AuthCfg{JWTSecret: "test-secret"}}
}

func setupAuthRouter(users *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", UserAuth(authTestConfig(), users), func(c *gin.Context) {
		u := c.MustGet(UserKey).(*model.User)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	return r
}

func TestUserAuth_ValidToken(t *testing.T) {
	users := new(MockUserService)
	u := &model.User{ID: uuid.New(), Email: "dana@example.com", IsActive: true}
	users.On("Get", mock.Anything, u.ID).Return(u, nil)

	token, err := security.GenerateToken(u.ID, u.Email, "test-secret", time.Hour)
	assert.NoError(t, err)

	r := setupAuthRouter(users)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dana@example.com")
}

func TestUserAuth_MissingHeader(t *testing.T) {
	users := new(MockUserService)
	r := setupAuthRouter(users)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUserAuth_BadToken(t *testing.T) {
	users := new(MockUserService)
	r := setupAuthRouter(users)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserAuth_WrongSecret(t *testing.T) {
	users := new(MockUserService)
	token, _ := security.GenerateToken(uuid.New(), "x@example.com", "other-secret", time.Hour)

	r := setupAuthRouter(users)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserAuth_InactiveUser(t *testing.T) {
	users := new(MockUserService)
	u := &model.User{ID: uuid.New(), Email: "dana@example.com", IsActive: false}
	users.On("Get", mock.Anything, u.ID).Return(u, nil)

	token, _ := security.GenerateToken(u.ID, u.Email, "test-secret", time.Hour)

	r := setupAuthRouter(users)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserAuth_DeletedUser(t *testing.T) {
	users := new(MockUserService)
	id := uuid.New()
	users.On("Get", mock.Anything, id).Return(nil, apperr.NotFound("User not found"))

	token, _ := security.GenerateToken(id, "gone@example.com", "test-secret", time.Hour)

	r := setupAuthRouter(users)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
