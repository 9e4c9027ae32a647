package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

// projectSortColumns is the allow-list of sort keys accepted by the project
// list endpoint. User-supplied sort strings never reach the query builder.
var projectSortColumns = listing.Columns{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"name":        "name",
	"status":      "status",
	"progress":    "progress",
	"performance": "performance",
	"startDate":   "start_date",
	"endDate":     "end_date",
}

type ProjectFilter struct {
	listing.Params
	Status model.ProjectStatus
}

// ProgressRow is one (id, name, progress) tuple of the per-project progress
// sub-query.
type ProgressRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Progress float64   `json:"progress"`
}

// PerformanceRow is one entry of the top-N-by-performance sub-query.
type PerformanceRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Performance float64   `json:"performance"`
}

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetWithChildren(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, f ProjectFilter) (*listing.Result[model.Project], error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status model.ProjectStatus) (int64, error)
	ProgressRows(ctx context.Context) ([]ProgressRow, error)
	TopByPerformance(ctx context.Context, limit int) ([]PerformanceRow, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetWithChildren(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("Activities").
		Preload("Indicators").
		Preload("Reports").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, f ProjectFilter) (*listing.Result[model.Project], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Scopes(listing.TextFilter("name", f.Q))
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return listing.Paginate[model.Project](q, f.Params, projectSortColumns)
}

func (r *projectRepo) Update(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *projectRepo) CountByStatus(ctx context.Context, status model.ProjectStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *projectRepo) ProgressRows(ctx context.Context) ([]ProgressRow, error) {
	var rows []ProgressRow
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Select("id, name, progress").
		Scan(&rows).Error
	return rows, err
}

func (r *projectRepo) TopByPerformance(ctx context.Context, limit int) ([]PerformanceRow, error) {
	var rows []PerformanceRow
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Select("id, name, performance").
		Order("performance DESC, created_at ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
