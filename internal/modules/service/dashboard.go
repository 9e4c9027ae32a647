package service

import (
	"context"
	"math"
	"sync"

	"github.com/trackboard/trackboard/internal/infra/cache"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"go.uber.org/zap"
)

// Summary is the aggregated dashboard payload.
type Summary struct {
	TotalActiveProjects int64                 `json:"totalActiveProjects"`
	GlobalProgressAvg   float64               `json:"globalProgressAvg"`
	ProgressByProject   []repo.ProgressRow    `json:"progressByProject"`
	Top5ByPerformance   []repo.PerformanceRow `json:"top5ByPerformance"`
	CriticalIndicators  []repo.CriticalRow    `json:"criticalIndicators"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type dashboardService struct {
	projects   repo.ProjectRepo
	indicators repo.IndicatorRepo
	cache      *cache.SummaryCache
	log        *zap.Logger
}

func NewDashboardService(projects repo.ProjectRepo, indicators repo.IndicatorRepo, c *cache.SummaryCache, log *zap.Logger) DashboardService {
	return &dashboardService{projects: projects, indicators: indicators, cache: c, log: log}
}

// Summary composes the dashboard snapshot from four independent sub-queries.
// All four are issued concurrently and the join settles every one of them: a
// failed sub-query logs a warning and leaves its zero value in the response
// instead of failing the whole summary.
func (s *dashboardService) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	if s.cache.Get(ctx, &out) {
		return &out, nil
	}

	var (
		wg          sync.WaitGroup
		totalActive int64
		progress    []repo.ProgressRow
		top5        []repo.PerformanceRow
		critical    []repo.CriticalRow
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		n, err := s.projects.CountByStatus(ctx, model.ProjectStatusActive)
		if err != nil {
			s.log.Warn("summary: active project count failed", zap.Error(err))
			return
		}
		totalActive = n
	}()
	go func() {
		defer wg.Done()
		rows, err := s.projects.ProgressRows(ctx)
		if err != nil {
			s.log.Warn("summary: per-project progress failed", zap.Error(err))
			return
		}
		progress = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.projects.TopByPerformance(ctx, 5)
		if err != nil {
			s.log.Warn("summary: top performance failed", zap.Error(err))
			return
		}
		top5 = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.indicators.CriticalRows(ctx)
		if err != nil {
			s.log.Warn("summary: critical indicators failed", zap.Error(err))
			return
		}
		critical = rows
	}()
	wg.Wait()

	out = Summary{
		TotalActiveProjects: totalActive,
		GlobalProgressAvg:   progressAvg(progress),
		ProgressByProject:   progress,
		Top5ByPerformance:   top5,
		CriticalIndicators:  critical,
	}
	if out.ProgressByProject == nil {
		out.ProgressByProject = []repo.ProgressRow{}
	}
	if out.Top5ByPerformance == nil {
		out.Top5ByPerformance = []repo.PerformanceRow{}
	}
	if out.CriticalIndicators == nil {
		out.CriticalIndicators = []repo.CriticalRow{}
	}

	s.cache.Set(ctx, &out)
	return &out, nil
}

// progressAvg is the arithmetic mean of all projects' progress, rounded to
// two decimals; 0 when there are no projects.
func progressAvg(rows []repo.ProgressRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rows {
		sum += r.Progress
	}
	return math.Round(sum/float64(len(rows))*100) / 100
}
