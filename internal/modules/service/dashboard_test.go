package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"go.uber.org/zap"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetWithChildren(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, f repo.ProjectFilter) (*listing.Result[model.Project], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Result[model.Project]), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepo) CountByStatus(ctx context.Context, status model.ProjectStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepo) ProgressRows(ctx context.Context) ([]repo.ProgressRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ProgressRow), args.Error(1)
}

func (m *MockProjectRepo) TopByPerformance(ctx context.Context, limit int) ([]repo.PerformanceRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.PerformanceRow), args.Error(1)
}

// MockIndicatorRepo is a mock implementation of repo.IndicatorRepo
type MockIndicatorRepo struct {
	mock.Mock
}

func (m *MockIndicatorRepo) Create(ctx context.Context, i *model.Indicator) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIndicatorRepo) Get(ctx context.Context, id uuid.UUID) (*model.Indicator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Indicator), args.Error(1)
}

func (m *MockIndicatorRepo) GetWithProject(ctx context.Context, id uuid.UUID) (*model.Indicator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Indicator), args.Error(1)
}

func (m *MockIndicatorRepo) List(ctx context.Context, f repo.IndicatorFilter) (*listing.Result[model.Indicator], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Result[model.Indicator]), args.Error(1)
}

func (m *MockIndicatorRepo) Update(ctx context.Context, i *model.Indicator) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIndicatorRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIndicatorRepo) CriticalRows(ctx context.Context) ([]repo.CriticalRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.CriticalRow), args.Error(1)
}

func TestDashboardSummary_ComposesAllSections(t *testing.T) {
	projects := new(MockProjectRepo)
	indicators := new(MockIndicatorRepo)

	progress := []repo.ProgressRow{
		{ID: uuid.New(), Name: "a", Progress: 20},
		{ID: uuid.New(), Name: "b", Progress: 40},
		{ID: uuid.New(), Name: "c", Progress: 60},
	}
	top := []repo.PerformanceRow{{ID: uuid.New(), Name: "a", Performance: 99}}
	critical := []repo.CriticalRow{{ID: uuid.New(), Name: "i", CurrentValue: 1, Threshold: 5, Project: "a"}}

	projects.On("CountByStatus", mock.Anything, model.ProjectStatusActive).Return(int64(3), nil)
	projects.On("ProgressRows", mock.Anything).Return(progress, nil)
	projects.On("TopByPerformance", mock.Anything, 5).Return(top, nil)
	indicators.On("CriticalRows", mock.Anything).Return(critical, nil)

	svc := NewDashboardService(projects, indicators, nil, zap.NewNop())
	out, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalActiveProjects)
	assert.Equal(t, 40.0, out.GlobalProgressAvg)
	assert.Equal(t, progress, out.ProgressByProject)
	assert.Equal(t, top, out.Top5ByPerformance)
	assert.Equal(t, critical, out.CriticalIndicators)

	projects.AssertExpectations(t)
	indicators.AssertExpectations(t)
}

func TestDashboardSummary_AvgRoundedToTwoDecimals(t *testing.T) {
	rows := []repo.ProgressRow{
		{Progress: 33.333},
		{Progress: 33.333},
		{Progress: 33.333},
	}
	assert.Equal(t, 33.33, progressAvg(rows))
	assert.Equal(t, 0.0, progressAvg(nil))
}

func TestDashboardSummary_FailedSubQueryDegrades(t *testing.T) {
	projects := new(MockProjectRepo)
	indicators := new(MockIndicatorRepo)

	projects.On("CountByStatus", mock.Anything, model.ProjectStatusActive).
		Return(int64(0), errors.New("db down"))
	projects.On("ProgressRows", mock.Anything).
		Return([]repo.ProgressRow{{Name: "a", Progress: 50}}, nil)
	projects.On("TopByPerformance", mock.Anything, 5).
		Return(nil, errors.New("db down"))
	indicators.On("CriticalRows", mock.Anything).
		Return([]repo.CriticalRow{}, nil)

	svc := NewDashboardService(projects, indicators, nil, zap.NewNop())
	out, err := svc.Summary(context.Background())

	// a failed section leaves its zero value, the summary itself still succeeds
	assert.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalActiveProjects)
	assert.Equal(t, 50.0, out.GlobalProgressAvg)
	assert.NotNil(t, out.Top5ByPerformance)
	assert.Len(t, out.Top5ByPerformance, 0)
}

func TestDashboardSummary_EmptyStore(t *testing.T) {
	projects := new(MockProjectRepo)
	indicators := new(MockIndicatorRepo)

	projects.On("CountByStatus", mock.Anything, model.ProjectStatusActive).Return(int64(0), nil)
	projects.On("ProgressRows", mock.Anything).Return([]repo.ProgressRow{}, nil)
	projects.On("TopByPerformance", mock.Anything, 5).Return([]repo.PerformanceRow{}, nil)
	indicators.On("CriticalRows", mock.Anything).Return([]repo.CriticalRow{}, nil)

	svc := NewDashboardService(projects, indicators, nil, zap.NewNop())
	out, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalActiveProjects)
	assert.Equal(t, 0.0, out.GlobalProgressAvg)
	assert.NotNil(t, out.ProgressByProject)
	assert.NotNil(t, out.Top5ByPerformance)
	assert.NotNil(t, out.CriticalIndicators)
}
