package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateShowParams struct {
	MovieID    int             `validate:"required,gt=0"`
	ShowroomID int             `validate:"required,gt=0"`
	StartTime  time.Time       `validate:"required"`
	BasePrice  decimal.Decimal `validate:"gt=0"`
}

// CreateShow schedules a movie in a showroom. The show's time range is the
// movie runtime plus the configured turnaround; a range overlapping another
// show in the same showroom fails with domain.ErrShowtimeConflict.
func (app *Application) CreateShow(ctx context.Context, params CreateShowParams) (*domain.Show, error) {
	if err := app.validate(params); err != nil {
		return nil, err
	}

	movie, err := app.movieRepo.GetById(ctx, params.MovieID)
	if err != nil {
		return nil, fmt.Errorf("fetching movie %d: %w", params.MovieID, err)
	}

	runtime := time.Duration(movie.Duration) * time.Minute

	show := &domain.Show{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		ShowroomID: params.ShowroomID,
		StartTime:  params.StartTime,
		EndTime:    params.StartTime.Add(runtime + app.config.Booking.ShowTurnaround),
		BasePrice:  params.BasePrice,
	}

	if err := app.showRepo.Create(ctx, show); err != nil {
		return nil, err
	}

	app.logger.Info("show scheduled",
		"show_id", show.ID,
		"movie_id", show.MovieID,
		"showroom_id", show.ShowroomID,
		"start_time", show.StartTime,
	)

	return show, nil
}

func (app *Application) ListShows(
	ctx context.Context,
	filters domain.ShowFilters) ([]domain.Show, *domain.Metadata, error) {

	if filters.Page < 1 {
		filters.Page = DefaultPage
	}
	if filters.PageSize < 1 {
		filters.PageSize = DefaultPageSize
	}

	return app.showRepo.GetAll(ctx, filters)
}
