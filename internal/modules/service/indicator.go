package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/infra/cache"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

type CreateIndicatorInput struct {
	ProjectID    uuid.UUID
	Name         string
	CurrentValue *float64
	Threshold    *float64
	Unit         *string
}

type UpdateIndicatorInput struct {
	ProjectID    *uuid.UUID
	Name         *string
	CurrentValue *float64
	Threshold    *float64
	Unit         *string
}

type IndicatorService interface {
	Create(ctx context.Context, in CreateIndicatorInput) (*model.Indicator, error)
	List(ctx context.Context, f repo.IndicatorFilter) (*listing.Result[model.Indicator], error)
	Get(ctx context.Context, id uuid.UUID) (*model.Indicator, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateIndicatorInput) (*model.Indicator, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type indicatorService struct {
	r        repo.IndicatorRepo
	projects ProjectService
	cache    *cache.SummaryCache
}

func NewIndicatorService(r repo.IndicatorRepo, projects ProjectService, c *cache.SummaryCache) IndicatorService {
	return &indicatorService{r: r, projects: projects, cache: c}
}

func (s *indicatorService) Create(ctx context.Context, in CreateIndicatorInput) (*model.Indicator, error) {
	project, err := s.projects.Resolve(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	i := model.Indicator{
		ProjectID: project.ID,
		Name:      in.Name,
		Unit:      in.Unit,
	}
	if in.CurrentValue != nil {
		i.CurrentValue = *in.CurrentValue
	}
	if in.Threshold != nil {
		i.Threshold = *in.Threshold
	}

	if err := s.r.Create(ctx, &i); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &i, nil
}

func (s *indicatorService) List(ctx context.Context, f repo.IndicatorFilter) (*listing.Result[model.Indicator], error) {
	f.Normalize("createdAt")
	return s.r.List(ctx, f)
}

func (s *indicatorService) Get(ctx context.Context, id uuid.UUID) (*model.Indicator, error) {
	i, err := s.r.GetWithProject(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Indicator not found")
	}
	return i, err
}

func (s *indicatorService) Update(ctx context.Context, id uuid.UUID, in UpdateIndicatorInput) (*model.Indicator, error) {
	i, err := s.r.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Indicator not found")
	}
	if err != nil {
		return nil, err
	}

	if in.ProjectID != nil && *in.ProjectID != i.ProjectID {
		project, err := s.projects.Resolve(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}
		i.ProjectID = project.ID
	}

	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.CurrentValue != nil {
		i.CurrentValue = *in.CurrentValue
	}
	if in.Threshold != nil {
		i.Threshold = *in.Threshold
	}
	if in.Unit != nil {
		i.Unit = in.Unit
	}

	if err := s.r.Update(ctx, i); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return i, nil
}

func (s *indicatorService) Remove(ctx context.Context, id uuid.UUID) error {
	affected, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Indicator not found")
	}
	s.cache.Invalidate(ctx)
	return nil
}
