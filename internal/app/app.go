package app

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/ekinoks/cinema-booking-core/internal/repository"
	appvalidator "github.com/ekinoks/cinema-booking-core/internal/validator"
	"github.com/ekinoks/cinema-booking-core/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

var (
	version = vcs.Version()
)

// Application is the booking core. An API layer embeds it and calls the
// exported operations; cmd/sweeper runs it as the stale-hold expiry daemon.
type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	metrics   *metrics

	movieRepo    domain.MovieRepository
	seatTypeRepo domain.SeatTypeRepository
	showroomRepo domain.ShowroomRepository
	showRepo     domain.ShowRepository
	bookingRepo  domain.BookingRepository
}

type Config struct {
	Env              string
	OtelCollectorUrl string

	DB struct {
		DSN          string
		MaxOpenConns int
		MaxIdleTime  time.Duration
	}

	Redis struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
		MaxIdleTime  time.Duration
	}

	Booking struct {
		DefaultHoldDuration  time.Duration
		MaxHoldDuration      time.Duration
		ShowTurnaround       time.Duration
		AvailabilityCacheTTL time.Duration
	}

	Sweep struct {
		Interval time.Duration
	}
}

// New wires an Application from already established connections. Repositories
// default to their postgres implementations.
func New(cfg Config, logger *slog.Logger, db *pgxpool.Pool, redisClient redis.UniversalClient) *Application {
	return &Application{
		config:       cfg,
		logger:       logger,
		db:           db,
		redis:        redisClient,
		validator:    appvalidator.NewValidator(),
		metrics:      newMetrics(),
		movieRepo:    repository.NewPostgresMovieRepository(db),
		seatTypeRepo: repository.NewPostgresSeatTypeRepository(db),
		showroomRepo: repository.NewPostgresShowroomRepository(db),
		showRepo:     repository.NewPostgresShowRepository(db),
		bookingRepo:  repository.NewPostgresBookingRepository(db),
	}
}

// Run parses flags, connects to postgres and redis, and runs the expiry
// sweeper until it receives SIGINT or SIGTERM.
func Run() error {
	var cfg Config

	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.DurationVar(&cfg.Booking.DefaultHoldDuration, "hold-duration", 10*time.Minute, "Default seat hold duration")
	flag.DurationVar(&cfg.Booking.MaxHoldDuration, "max-hold-duration", 30*time.Minute, "Upper bound on a seat hold duration")
	flag.DurationVar(&cfg.Booking.ShowTurnaround, "show-turnaround", 20*time.Minute, "Cleaning time blocked between shows in a showroom")
	flag.DurationVar(&cfg.Booking.AvailabilityCacheTTL, "availability-cache-ttl", 30*time.Second, "TTL of the cached seat availability per show")

	flag.DurationVar(&cfg.Sweep.Interval, "sweep-interval", time.Minute, "Interval between stale-hold expiry sweeps")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := newDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	app := New(cfg, logger, db, redisClient)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.runSweeper()
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}
