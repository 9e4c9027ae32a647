package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/listing"
	"gorm.io/datatypes"
)

// pageParams are the query knobs shared by every list endpoint.
type pageParams struct {
	Page  int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int    `form:"limit,default=10" binding:"omitempty,min=1"`
	Sort  string `form:"sort"`
	Order string `form:"order" binding:"omitempty,oneof=ASC DESC"`
	Q     string `form:"q"`
}

func (p pageParams) listing() listing.Params {
	return listing.Params{
		Page:  p.Page,
		Limit: p.Limit,
		Sort:  p.Sort,
		Order: listing.Order(p.Order),
		Q:     p.Q,
	}
}

// parseID parses a path id, surfacing bad input as a validation error.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("id", "must be a valid uuid")
	}
	return id, nil
}

// datePtr converts an already format-validated yyyy-mm-dd string into a
// date-only column value.
func datePtr(s *string) *datatypes.Date {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

// timePtr parses an ISO 8601 timestamp or bare date.
func timePtr(property string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, apperr.Validation(property, "must be an ISO 8601 date")
	}
	return &t, nil
}

func uuidPtr(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, apperr.Validation("projectId", "must be a valid uuid")
	}
	return &id, nil
}
