package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

var reportSortColumns = listing.Columns{
	"date":        "date",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"generatedBy": "generated_by",
}

type ReportFilter struct {
	listing.Params
	ProjectID uuid.UUID
	// From/To bound the report date; each side is independently optional
	// and inclusive.
	From *time.Time
	To   *time.Time
}

type ReportRepo interface {
	Create(ctx context.Context, rep *model.Report) error
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	GetWithProject(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context, f ReportFilter) (*listing.Result[model.Report], error)
	Update(ctx context.Context, rep *model.Report) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, rep *model.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *reportRepo) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var rep model.Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepo) GetWithProject(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var rep model.Report
	err := r.db.WithContext(ctx).Preload("Project").First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepo) List(ctx context.Context, f ReportFilter) (*listing.Result[model.Report], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Preload("Project")
	if f.ProjectID != uuid.Nil {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	return listing.Paginate[model.Report](q, f.Params, reportSortColumns)
}

func (r *reportRepo) Update(ctx context.Context, rep *model.Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *reportRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Report{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
