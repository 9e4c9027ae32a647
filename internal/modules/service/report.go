package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

type CreateReportInput struct {
	ProjectID   uuid.UUID
	Date        *time.Time
	Content     *string
	GeneratedBy *string
	Notes       *string
}

type UpdateReportInput struct {
	ProjectID   *uuid.UUID
	Date        *time.Time
	Content     *string
	GeneratedBy *string
	Notes       *string
}

type ReportService interface {
	Create(ctx context.Context, in CreateReportInput) (*model.Report, error)
	List(ctx context.Context, f repo.ReportFilter) (*listing.Result[model.Report], error)
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateReportInput) (*model.Report, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	r        repo.ReportRepo
	projects ProjectService
}

func NewReportService(r repo.ReportRepo, projects ProjectService) ReportService {
	return &reportService{r: r, projects: projects}
}

func (s *reportService) Create(ctx context.Context, in CreateReportInput) (*model.Report, error) {
	project, err := s.projects.Resolve(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	rep := model.Report{
		ProjectID:   project.ID,
		Content:     in.Content,
		GeneratedBy: in.GeneratedBy,
		Notes:       in.Notes,
	}
	// date defaults to the creation time via the model hook
	if in.Date != nil {
		rep.Date = *in.Date
	}

	if err := s.r.Create(ctx, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (s *reportService) List(ctx context.Context, f repo.ReportFilter) (*listing.Result[model.Report], error) {
	f.Normalize("date")
	return s.r.List(ctx, f)
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	rep, err := s.r.GetWithProject(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Report not found")
	}
	return rep, err
}

func (s *reportService) Update(ctx context.Context, id uuid.UUID, in UpdateReportInput) (*model.Report, error) {
	rep, err := s.r.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Report not found")
	}
	if err != nil {
		return nil, err
	}

	if in.ProjectID != nil && *in.ProjectID != rep.ProjectID {
		project, err := s.projects.Resolve(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}
		rep.ProjectID = project.ID
	}

	if in.Date != nil {
		rep.Date = *in.Date
	}
	if in.Content != nil {
		rep.Content = in.Content
	}
	if in.GeneratedBy != nil {
		rep.GeneratedBy = in.GeneratedBy
	}
	if in.Notes != nil {
		rep.Notes = in.Notes
	}

	if err := s.r.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *reportService) Remove(ctx context.Context, id uuid.UUID) error {
	affected, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Report not found")
	}
	return nil
}
