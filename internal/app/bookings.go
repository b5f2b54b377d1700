package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
)

type HoldSeatParams struct {
	ShowID       int `validate:"required,gt=0"`
	SeatSlotID   int `validate:"required,gt=0"`
	HoldDuration time.Duration
}

// HoldSeat places a time-limited hold on a seat for a show. The price is
// captured now, so a later premium or base price change never moves a price
// the customer already saw. The availability cache is advisory only; the
// ledger re-checks atomically, so a stale read can never cause a double
// booking.
func (app *Application) HoldSeat(ctx context.Context, params HoldSeatParams) (*domain.Booking, error) {
	if err := app.validate(params); err != nil {
		return nil, err
	}

	holdDuration := params.HoldDuration
	if holdDuration <= 0 {
		holdDuration = app.config.Booking.DefaultHoldDuration
	}
	if max := app.config.Booking.MaxHoldDuration; max > 0 && holdDuration > max {
		holdDuration = max
	}

	show, err := app.showRepo.GetById(ctx, params.ShowID)
	if err != nil {
		return nil, fmt.Errorf("fetching show %d: %w", params.ShowID, err)
	}

	seat, err := app.showroomRepo.GetSeatSlot(ctx, show.ShowroomID, params.SeatSlotID)
	if err != nil {
		return nil, fmt.Errorf("fetching seat %d of showroom %d: %w", params.SeatSlotID, show.ShowroomID, err)
	}

	price := domain.SeatPrice(show.BasePrice, seat.Premium)
	booking := domain.NewHold(show.ID, seat.ID, price, time.Now(), holdDuration)

	if err := app.bookingRepo.Hold(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSeatUnavailable) {
			app.metrics.holdConflicts.Add(ctx, 1)
			app.logger.Info("seat hold conflict", "show_id", show.ID, "seat_slot_id", seat.ID)
		}

		return nil, err
	}

	app.metrics.holdsCreated.Add(ctx, 1)
	app.invalidateAvailability(ctx, show.ID)

	app.logger.Info("seat held",
		"booking_id", booking.ID,
		"show_id", show.ID,
		"seat", seat.Label(),
		"expires_at", booking.ExpiresAt,
	)

	return booking, nil
}

// ConfirmBooking converts a hold into a permanent booking. Racing the expiry
// sweep is resolved by the ledger's compare-and-set; the loser gets
// domain.ErrHoldExpired.
func (app *Application) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := app.bookingRepo.Confirm(ctx, bookingID, time.Now())
	if err != nil {
		return nil, err
	}

	app.metrics.bookingsConfirmed.Add(ctx, 1)
	app.logger.Info("booking confirmed", "booking_id", booking.ID, "show_id", booking.ShowID)

	return booking, nil
}

// CancelBooking releases a held or confirmed seat. Cancelling an already
// cancelled booking is a no-op.
func (app *Application) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := app.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return err
	}

	app.invalidateAvailability(ctx, booking.ShowID)
	app.logger.Info("booking cancelled", "booking_id", booking.ID, "show_id", booking.ShowID)

	return nil
}

// ExpireStaleHolds flips every hold past its expiry to expired and releases
// the seats. It is idempotent and safe to run concurrently with holds and
// confirms from any process.
func (app *Application) ExpireStaleHolds(ctx context.Context, now time.Time) (int, error) {
	showIDs, err := app.bookingRepo.ExpireStale(ctx, now)
	if err != nil {
		return 0, err
	}

	if len(showIDs) == 0 {
		return 0, nil
	}

	seen := make(map[int]bool, len(showIDs))
	distinct := showIDs[:0]
	for _, showID := range showIDs {
		if !seen[showID] {
			seen[showID] = true
			distinct = append(distinct, showID)
		}
	}

	app.invalidateAvailability(ctx, distinct...)
	app.metrics.holdsExpired.Add(ctx, int64(len(showIDs)))

	return len(showIDs), nil
}

// GetBooking returns the booking with the ticket details: movie, showroom,
// and seat position.
func (app *Application) GetBooking(ctx context.Context, bookingID string) (*domain.BookingDetail, error) {
	return app.bookingRepo.GetDetail(ctx, bookingID)
}
