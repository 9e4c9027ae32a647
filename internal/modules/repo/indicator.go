package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

var indicatorSortColumns = listing.Columns{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"name":         "name",
	"currentValue": "current_value",
	"threshold":    "threshold",
}

type IndicatorFilter struct {
	listing.Params
	ProjectID    uuid.UUID
	CriticalOnly bool
}

// CriticalRow is one critical indicator joined with its parent project,
// as served by the dashboard summary.
type CriticalRow struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CurrentValue float64   `json:"currentValue"`
	Threshold    float64   `json:"threshold"`
	ProjectID    uuid.UUID `json:"projectId"`
	Project      string    `json:"project"`
}

type IndicatorRepo interface {
	Create(ctx context.Context, i *model.Indicator) error
	Get(ctx context.Context, id uuid.UUID) (*model.Indicator, error)
	GetWithProject(ctx context.Context, id uuid.UUID) (*model.Indicator, error)
	List(ctx context.Context, f IndicatorFilter) (*listing.Result[model.Indicator], error)
	Update(ctx context.Context, i *model.Indicator) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CriticalRows(ctx context.Context) ([]CriticalRow, error)
}

type indicatorRepo struct{ db *gorm.DB }

func NewIndicatorRepo(db *gorm.DB) IndicatorRepo {
	return &indicatorRepo{db: db}
}

func (r *indicatorRepo) Create(ctx context.Context, i *model.Indicator) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *indicatorRepo) Get(ctx context.Context, id uuid.UUID) (*model.Indicator, error) {
	var i model.Indicator
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *indicatorRepo) GetWithProject(ctx context.Context, id uuid.UUID) (*model.Indicator, error) {
	var i model.Indicator
	err := r.db.WithContext(ctx).Preload("Project").First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *indicatorRepo) List(ctx context.Context, f IndicatorFilter) (*listing.Result[model.Indicator], error) {
	q := r.db.WithContext(ctx).
		Model(&model.Indicator{}).
		Preload("Project").
		Scopes(listing.TextFilter("name", f.Q))
	if f.ProjectID != uuid.Nil {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	if f.CriticalOnly {
		// derived at query time, never stored
		q = q.Where("current_value < threshold")
	}
	return listing.Paginate[model.Indicator](q, f.Params, indicatorSortColumns)
}

func (r *indicatorRepo) Update(ctx context.Context, i *model.Indicator) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *indicatorRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Indicator{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *indicatorRepo) CriticalRows(ctx context.Context) ([]CriticalRow, error) {
	var rows []CriticalRow
	err := r.db.WithContext(ctx).
		Model(&model.Indicator{}).
		Select("indicators.id AS id, indicators.name AS name, indicators.current_value AS current_value, indicators.threshold AS threshold, projects.id AS project_id, projects.name AS project").
		Joins("JOIN projects ON projects.id = indicators.project_id").
		Where("indicators.current_value < indicators.threshold").
		Order("indicators.current_value - indicators.threshold ASC").
		Scan(&rows).Error
	return rows, err
}
