package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/gorm"
)

func seedReport(t *testing.T, db *gorm.DB, projectID uuid.UUID, date time.Time) model.Report {
	t.Helper()
	rep := model.Report{ProjectID: projectID, Date: date}
	if err := db.Create(&rep).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return rep
}

func TestReportRepo_ListDateRangeInclusive(t *testing.T) {
	db := setupRepoDB(t)
	r := NewReportRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, model.Project{Name: "p"})
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}
	seedReport(t, db, p.ID, day(1))
	seedReport(t, db, p.ID, day(10))
	seedReport(t, db, p.ID, day(20))

	from := day(10)
	to := day(20)
	out, err := r.List(ctx, ReportFilter{
		Params: listing.Params{Page: 1, Limit: 10, Sort: "date", Order: listing.OrderAsc},
		From:   &from,
		To:     &to,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Meta.Total)
	assert.Equal(t, day(10), out.Data[0].Date.UTC())

	// one-sided bound
	out, err = r.List(ctx, ReportFilter{
		Params: listing.Params{Page: 1, Limit: 10, Sort: "date", Order: listing.OrderAsc},
		From:   &from,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Meta.Total)
}

func TestReportRepo_ListByProject(t *testing.T) {
	db := setupRepoDB(t)
	r := NewReportRepo(db)
	ctx := context.Background()

	p1 := seedProject(t, db, model.Project{Name: "p1"})
	p2 := seedProject(t, db, model.Project{Name: "p2"})
	seedReport(t, db, p1.ID, time.Now())
	seedReport(t, db, p2.ID, time.Now())

	out, err := r.List(ctx, ReportFilter{
		Params:    listing.Params{Page: 1, Limit: 10, Sort: "date", Order: listing.OrderDesc},
		ProjectID: p1.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Meta.Total)
	assert.Equal(t, p1.ID, out.Data[0].ProjectID)
}

func TestReportDateDefaultsToNow(t *testing.T) {
	db := setupRepoDB(t)
	r := NewReportRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, model.Project{Name: "p"})
	rep := model.Report{ProjectID: p.ID}
	assert.NoError(t, r.Create(ctx, &rep))
	assert.False(t, rep.Date.IsZero())
	assert.WithinDuration(t, time.Now(), rep.Date, time.Minute)
}
