// Package listing implements the paginated list-query contract shared by
// every resource: offset pagination, allow-listed single-column ordering and
// a case-insensitive substring filter, plus the pagination metadata block.
package listing

import (
	"fmt"
	"math"
	"strings"

	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

const DefaultLimit = 10

// Params are the request-side knobs common to all list endpoints.
type Params struct {
	Page  int
	Limit int
	Sort  string
	Order Order
	Q     string
}

// Normalize applies the engine defaults: page 1, limit 10, descending order
// and the resource's default sort key.
func (p *Params) Normalize(defaultSort string) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Sort == "" {
		p.Sort = defaultSort
	}
	if p.Order != OrderAsc {
		p.Order = OrderDesc
	}
}

type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Columns maps the sort keys a resource accepts to its store columns. Sort
// keys never reach the query builder directly; anything outside the map is
// rejected.
type Columns map[string]string

// TextFilter is a scope applying the case-insensitive substring match used by
// the q parameter. An empty q leaves the query untouched. LOWER(...) LIKE is
// used instead of ILIKE so the filter behaves the same on every dialect.
func TextFilter(column, q string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q == "" {
			return db
		}
		return db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), "%"+strings.ToLower(q)+"%")
	}
}

// Paginate runs the list query: counts the rows matching the prepared filter
// query, then fetches one ordered page. Pages is ceil(total/limit), which
// leaves it at 0 for an empty result set.
func Paginate[T any](q *gorm.DB, p Params, cols Columns) (*Result[T], error) {
	col, ok := cols[p.Sort]
	if !ok {
		return nil, apperr.Validation("sort", fmt.Sprintf("unknown sort field '%s'", p.Sort))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	data := make([]T, 0, p.Limit)
	err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: p.Order == OrderDesc}).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	return &Result[T]{
		Data: data,
		Meta: Meta{
			Page:  p.Page,
			Limit: p.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(p.Limit))),
		},
	}, nil
}
