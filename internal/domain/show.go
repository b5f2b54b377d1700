package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Show struct {
	ID         int
	MovieID    int
	MovieTitle string
	ShowroomID int
	StartTime  time.Time
	EndTime    time.Time
	BasePrice  decimal.Decimal
}

type ShowFilters struct {
	MovieID    int
	ShowroomID int
	From       time.Time
	To         time.Time
	// OnlyAvailable drops shows with no free seat left.
	OnlyAvailable bool
	Page          int
	PageSize      int
}

func (f ShowFilters) Limit() int {
	return f.PageSize
}

func (f ShowFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ShowRepository interface {
	// Create persists the show. The overlapping-show invariant per showroom is
	// enforced by the storage layer; a violation surfaces as ErrShowtimeConflict.
	Create(ctx context.Context, show *Show) error
	GetById(ctx context.Context, id int) (*Show, error)
	GetAll(ctx context.Context, filters ShowFilters) ([]Show, *Metadata, error)
}
