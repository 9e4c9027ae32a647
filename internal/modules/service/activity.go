package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateActivityInput struct {
	ProjectID uuid.UUID
	Name      string
	Status    model.ActivityStatus
	Progress  *float64
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

type UpdateActivityInput struct {
	ProjectID *uuid.UUID
	Name      *string
	Status    *model.ActivityStatus
	Progress  *float64
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

type ActivityService interface {
	Create(ctx context.Context, in CreateActivityInput) (*model.Activity, error)
	List(ctx context.Context, f repo.ActivityFilter) (*listing.Result[model.Activity], error)
	Get(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateActivityInput) (*model.Activity, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type activityService struct {
	r        repo.ActivityRepo
	projects ProjectService
}

func NewActivityService(r repo.ActivityRepo, projects ProjectService) ActivityService {
	return &activityService{r: r, projects: projects}
}

func (s *activityService) Create(ctx context.Context, in CreateActivityInput) (*model.Activity, error) {
	// the parent must exist before the child row is persisted
	project, err := s.projects.Resolve(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	a := model.Activity{
		ProjectID: project.ID,
		Name:      in.Name,
		Status:    in.Status,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if a.Status == "" {
		a.Status = model.ActivityStatusPending
	}
	if in.Progress != nil {
		a.Progress = *in.Progress
	}

	if err := s.r.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *activityService) List(ctx context.Context, f repo.ActivityFilter) (*listing.Result[model.Activity], error) {
	f.Normalize("createdAt")
	return s.r.List(ctx, f)
}

func (s *activityService) Get(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	a, err := s.r.GetWithProject(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Activity not found")
	}
	return a, err
}

func (s *activityService) Update(ctx context.Context, id uuid.UUID, in UpdateActivityInput) (*model.Activity, error) {
	a, err := s.r.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Activity not found")
	}
	if err != nil {
		return nil, err
	}

	// re-parent only when a differing project id is supplied
	if in.ProjectID != nil && *in.ProjectID != a.ProjectID {
		project, err := s.projects.Resolve(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}
		a.ProjectID = project.ID
	}

	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.Progress != nil {
		a.Progress = *in.Progress
	}
	if in.StartDate != nil {
		a.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		a.EndDate = in.EndDate
	}

	if err := s.r.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) Remove(ctx context.Context, id uuid.UUID) error {
	affected, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Activity not found")
	}
	return nil
}
