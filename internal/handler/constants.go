package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Paging limits for list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery holds the paging query parameters of list endpoints.
type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (q PageQuery) normalize() PageQuery {
	if q.Limit == 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	return q
}

// ListResponse wraps a page of results.
type ListResponse[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeFormat)
	return &s
}
