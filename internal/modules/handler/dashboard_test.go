package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/service"
)

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*service.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Summary), args.Error(1)
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	svc := new(MockDashboardService)
	svc.On("Summary", mock.Anything).Return(&service.Summary{
		TotalActiveProjects: 2,
		GlobalProgressAvg:   47.5,
		ProgressByProject: []repo.ProgressRow{
			{ID: uuid.New(), Name: "a", Progress: 45},
			{ID: uuid.New(), Name: "b", Progress: 50},
		},
		Top5ByPerformance:  []repo.PerformanceRow{},
		CriticalIndicators: []repo.CriticalRow{},
	}, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard/summary", NewDashboardHandler(svc).GetSummary)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "totalActiveProjects")
	assert.Contains(t, body, "globalProgressAvg")
	assert.Contains(t, body, "progressByProject")
	assert.Contains(t, body, "top5ByPerformance")
	assert.Contains(t, body, "criticalIndicators")

	// empty sections marshal as [], not null
	assert.Equal(t, "[]", string(body["top5ByPerformance"]))
	assert.Equal(t, "[]", string(body["criticalIndicators"]))
}
