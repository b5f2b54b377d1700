package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:   newMetrics(),
	}

	app.config.Booking.DefaultHoldDuration = 10 * time.Minute
	app.config.Booking.MaxHoldDuration = 30 * time.Minute
	app.config.Booking.ShowTurnaround = 20 * time.Minute
	app.config.Booking.AvailabilityCacheTTL = 30 * time.Second

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func ptr[T any](v T) *T {
	return &v
}
