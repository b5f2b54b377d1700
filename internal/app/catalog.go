package app

import (
	"context"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

type CreateMovieParams struct {
	Title       string    `validate:"required,max=255"`
	Genre       string    `validate:"required,max=100"`
	PosterUrl   string    `validate:"omitempty,url"`
	ReleaseDate time.Time `validate:"required"`
	Duration    int       `validate:"required,gt=0"`
}

func (app *Application) CreateMovie(ctx context.Context, params CreateMovieParams) (*domain.Movie, error) {
	if err := app.validate(params); err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Title:       params.Title,
		Genre:       params.Genre,
		PosterUrl:   params.PosterUrl,
		ReleaseDate: params.ReleaseDate,
		Duration:    params.Duration,
	}

	if err := app.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	app.logger.Info("movie created", "movie_id", movie.ID, "title", movie.Title)

	return movie, nil
}

func (app *Application) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	return app.movieRepo.GetById(ctx, id)
}

func (app *Application) ListMovies(
	ctx context.Context,
	filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {

	if filters.Page < 1 {
		filters.Page = DefaultPage
	}
	if filters.PageSize < 1 {
		filters.PageSize = DefaultPageSize
	}

	return app.movieRepo.GetAll(ctx, filters)
}

type CreateSeatTypeParams struct {
	Label   string          `validate:"required,max=50"`
	Premium decimal.Decimal `validate:"gte=0"`
}

func (app *Application) CreateSeatType(ctx context.Context, params CreateSeatTypeParams) (*domain.SeatType, error) {
	if err := app.validate(params); err != nil {
		return nil, err
	}

	seatType := &domain.SeatType{
		Label:   params.Label,
		Premium: params.Premium,
	}

	if err := app.seatTypeRepo.Create(ctx, seatType); err != nil {
		return nil, err
	}

	return seatType, nil
}

func (app *Application) ListSeatTypes(ctx context.Context) ([]domain.SeatType, error) {
	return app.seatTypeRepo.GetAll(ctx)
}

type SeatSlotParams struct {
	Row        string `validate:"required,seat_row"`
	Number     int    `validate:"required,gt=0"`
	SeatTypeID int    `validate:"required,gt=0"`
}

type CreateShowroomParams struct {
	Name     string           `validate:"required,max=255"`
	Location string           `validate:"max=255"`
	Seats    []SeatSlotParams `validate:"required,min=1,dive"`
}

// CreateShowroom creates a showroom together with its full seat layout. The
// layout is configured once and reused by every show scheduled in the room.
func (app *Application) CreateShowroom(ctx context.Context, params CreateShowroomParams) (*domain.Showroom, error) {
	if err := app.validate(params); err != nil {
		return nil, err
	}

	showroom := &domain.Showroom{
		Name:     params.Name,
		Location: params.Location,
	}

	for _, seat := range params.Seats {
		showroom.Seats = append(showroom.Seats, domain.SeatSlot{
			Row:        seat.Row,
			Number:     seat.Number,
			SeatTypeID: seat.SeatTypeID,
		})
	}

	if err := app.showroomRepo.Create(ctx, showroom); err != nil {
		return nil, err
	}

	app.logger.Info("showroom created", "showroom_id", showroom.ID, "name", showroom.Name, "seats", len(showroom.Seats))

	return showroom, nil
}

func (app *Application) GetShowroom(ctx context.Context, id int) (*domain.Showroom, error) {
	return app.showroomRepo.GetById(ctx, id)
}
