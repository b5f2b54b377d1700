package integration_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/app"
	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BaseIntegrationSuite struct {
	suite.Suite
	dbContainer    *PostgresContainer
	redisContainer *RedisContainer
	db             *pgxpool.Pool
	redis          *redis.Client
	app            *app.Application
}

func (s *BaseIntegrationSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()

	dbContainer, err := getDbContainer(ctx)
	s.Require().NoError(err)
	s.dbContainer = dbContainer

	redisContainer, err := getRedisContainer(ctx)
	s.Require().NoError(err)
	s.redisContainer = redisContainer

	db, err := pgxpool.New(ctx, dbContainer.ConnectionString)
	s.Require().NoError(err)
	s.db = db

	redisOpts, err := redis.ParseURL(redisContainer.ConnectionString)
	s.Require().NoError(err)
	s.redis = redis.NewClient(redisOpts)

	var cfg app.Config
	cfg.Env = "test"
	cfg.Booking.DefaultHoldDuration = 10 * time.Minute
	cfg.Booking.MaxHoldDuration = 30 * time.Minute
	cfg.Booking.ShowTurnaround = 20 * time.Minute
	cfg.Booking.AvailabilityCacheTTL = 30 * time.Second
	cfg.Sweep.Interval = time.Minute

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.app = app.New(cfg, logger, db, s.redis)
}

func (s *BaseIntegrationSuite) TearDownSuite() {
	ctx := context.Background()

	if s.db != nil {
		s.db.Close()
	}
	if s.redis != nil {
		s.redis.Close()
	}
	if s.dbContainer != nil {
		s.Require().NoError(s.dbContainer.Container.Terminate(ctx))
	}
	if s.redisContainer != nil {
		s.Require().NoError(s.redisContainer.Container.Terminate(ctx))
	}
}

func (s *BaseIntegrationSuite) SetupTest() {
	ctx := context.Background()

	_, err := s.db.Exec(ctx, `TRUNCATE movies, seat_types, showrooms RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)

	s.Require().NoError(s.redis.FlushAll(ctx).Err())
}

// seedShow creates a movie, seat types, a showroom with a small layout, and a
// show, and returns the show together with the showroom layout.
func (s *BaseIntegrationSuite) seedShow(basePrice string) (*domain.Show, []domain.SeatSlot) {
	ctx := context.Background()

	movie, err := s.app.CreateMovie(ctx, app.CreateMovieParams{
		Title:       "Heat",
		Genre:       "Crime",
		ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC),
		Duration:    170,
	})
	s.Require().NoError(err)

	standard, err := s.app.CreateSeatType(ctx, app.CreateSeatTypeParams{
		Label:   "standard",
		Premium: decimal.Zero,
	})
	s.Require().NoError(err)

	vip, err := s.app.CreateSeatType(ctx, app.CreateSeatTypeParams{
		Label:   "vip",
		Premium: decimal.RequireFromString("50"),
	})
	s.Require().NoError(err)

	showroom, err := s.app.CreateShowroom(ctx, app.CreateShowroomParams{
		Name:     "Hall 1",
		Location: "ground floor",
		Seats: []app.SeatSlotParams{
			{Row: "A", Number: 1, SeatTypeID: standard.ID},
			{Row: "A", Number: 2, SeatTypeID: vip.ID},
			{Row: "B", Number: 1, SeatTypeID: standard.ID},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(showroom.Seats, 3)

	show, err := s.app.CreateShow(ctx, app.CreateShowParams{
		MovieID:    movie.ID,
		ShowroomID: showroom.ID,
		StartTime:  time.Now().Add(24 * time.Hour).Truncate(time.Second),
		BasePrice:  decimal.RequireFromString(basePrice),
	})
	s.Require().NoError(err)

	return show, showroom.Seats
}
