package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

var activitySortColumns = listing.Columns{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"status":    "status",
	"progress":  "progress",
	"startDate": "start_date",
	"endDate":   "end_date",
}

type ActivityFilter struct {
	listing.Params
	Status    model.ActivityStatus
	ProjectID uuid.UUID
}

type ActivityRepo interface {
	Create(ctx context.Context, a *model.Activity) error
	Get(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	GetWithProject(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	List(ctx context.Context, f ActivityFilter) (*listing.Result[model.Activity], error)
	Update(ctx context.Context, a *model.Activity) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type activityRepo struct{ db *gorm.DB }

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activityRepo) Get(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var a model.Activity
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) GetWithProject(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var a model.Activity
	err := r.db.WithContext(ctx).Preload("Project").First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) List(ctx context.Context, f ActivityFilter) (*listing.Result[model.Activity], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Preload("Project").
		Scopes(listing.TextFilter("name", f.Q))
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ProjectID != uuid.Nil {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	return listing.Paginate[model.Activity](q, f.Params, activitySortColumns)
}

func (r *activityRepo) Update(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *activityRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Activity{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
