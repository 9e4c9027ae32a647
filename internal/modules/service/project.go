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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateProjectInput struct {
	Name        string
	Description *string
	Status      model.ProjectStatus
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date
	Progress    *float64
	Performance *float64
}

// UpdateProjectInput carries partial-update fields; nil means "leave
// unchanged".
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *model.ProjectStatus
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date
	Progress    *float64
	Performance *float64
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	List(ctx context.Context, f repo.ProjectFilter) (*listing.Result[model.Project], error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Resolve(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	r     repo.ProjectRepo
	cache *cache.SummaryCache
}

func NewProjectService(r repo.ProjectRepo, c *cache.SummaryCache) ProjectService {
	return &projectService{r: r, cache: c}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	p := model.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusActive
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
	if in.Performance != nil {
		p.Performance = *in.Performance
	}

	if err := s.r.Create(ctx, &p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &p, nil
}

func (s *projectService) List(ctx context.Context, f repo.ProjectFilter) (*listing.Result[model.Project], error) {
	f.Normalize("createdAt")
	return s.r.List(ctx, f)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.r.GetWithChildren(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Project not found")
	}
	return p, err
}

// Resolve looks up a project without loading its children. Child services use
// it to verify the parent before persisting a row that references it.
func (s *projectService) Resolve(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.r.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Project not found")
	}
	return p, err
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	p, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = in.EndDate
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
	if in.Performance != nil {
		p.Performance = *in.Performance
	}

	if err := s.r.Update(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return p, nil
}

func (s *projectService) Remove(ctx context.Context, id uuid.UUID) error {
	affected, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Project not found")
	}
	s.cache.Invalidate(ctx)
	return nil
}
