package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/service"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
)

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, f repo.ProjectFilter) (*listing.Result[model.Project], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Result[model.Project]), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Resolve(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id uuid.UUID, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupProjectRouter(svc *MockProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProjectHandler(svc)
	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
	r.GET("/projects/:id", h.GetProject)
	r.PATCH("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)
	return r
}

func TestProjectHandler_ListProjects(t *testing.T) {
	svc := new(MockProjectService)
	out := &listing.Result[model.Project]{
		Data: []model.Project{{ID: uuid.New(), Name: "Bridge", Status: model.ProjectStatusActive}},
		Meta: listing.Meta{Page: 1, Limit: 10, Total: 1, Pages: 1},
	}
	svc.On("List", mock.Anything, mock.Anything).Return(out, nil)

	r := setupProjectRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/projects?status=ACTIVE&q=bri", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []model.Project `json:"data"`
		Meta listing.Meta    `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(1), body.Meta.Total)
	assert.Equal(t, 1, body.Meta.Pages)

	// binding defaults and filters reach the service untouched
	f := svc.Calls[0].Arguments.Get(1).(repo.ProjectFilter)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "bri", f.Q)
	assert.Equal(t, model.ProjectStatusActive, f.Status)
}

func TestProjectHandler_ListProjects_BadStatus(t *testing.T) {
	svc := new(MockProjectService)
	r := setupProjectRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/projects?status=BOGUS", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProjectHandler_CreateProject(t *testing.T) {
	svc := new(MockProjectService)
	created := &model.Project{ID: uuid.New(), Name: "Bridge", Status: model.ProjectStatusActive}
	svc.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	r := setupProjectRouter(svc)
	payload, _ := json.Marshal(gin.H{"name": "Bridge", "startDate": "2026-01-15"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	in := svc.Calls[0].Arguments.Get(1).(service.CreateProjectInput)
	assert.Equal(t, "Bridge", in.Name)
	assert.NotNil(t, in.StartDate)
}

func TestProjectHandler_CreateProject_MissingName(t *testing.T) {
	svc := new(MockProjectService)
	r := setupProjectRouter(svc)

	payload, _ := json.Marshal(gin.H{"description": "no name"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Property string   `json:"property"`
			Errors   []string `json:"errors"`
		} `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ValidationFailed", body.Error)
	assert.Equal(t, "name", body.Details[0].Property)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectHandler_CreateProject_ProgressOutOfRange(t *testing.T) {
	svc := new(MockProjectService)
	r := setupProjectRouter(svc)

	payload, _ := json.Marshal(gin.H{"name": "Bridge", "progress": 150})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectHandler_GetProject_NotFound(t *testing.T) {
	svc := new(MockProjectService)
	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(nil, apperr.NotFound("Project not found"))

	r := setupProjectRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/projects/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_GetProject_BadID(t *testing.T) {
	svc := new(MockProjectService)
	r := setupProjectRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	svc := new(MockProjectService)
	id := uuid.New()
	svc.On("Remove", mock.Anything, id).Return(nil)

	r := setupProjectRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/projects/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
