package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/redis/go-redis/v9"
)

func availabilityKey(showID int) string {
	return fmt.Sprintf("avail_seats:%d", showID)
}

// AvailableSeats returns the seat slots of the show's showroom that carry no
// active booking. Results are cached in redis for a short TTL; the cache is
// for display only and is never consulted by HoldSeat.
func (app *Application) AvailableSeats(ctx context.Context, showID int) ([]domain.SeatSlot, error) {
	if cached, ok := app.cachedAvailability(ctx, showID); ok {
		return cached, nil
	}

	show, err := app.showRepo.GetById(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("fetching show %d: %w", showID, err)
	}

	showroom, err := app.showroomRepo.GetById(ctx, show.ShowroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching showroom %d: %w", show.ShowroomID, err)
	}

	activeSeatIDs, err := app.bookingRepo.GetActiveSeatIDs(ctx, showID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("fetching active bookings of show %d: %w", showID, err)
	}

	taken := make(map[int]bool, len(activeSeatIDs))
	for _, seatID := range activeSeatIDs {
		taken[seatID] = true
	}

	available := make([]domain.SeatSlot, 0, len(showroom.Seats))
	for _, seat := range showroom.Seats {
		if !taken[seat.ID] {
			available = append(available, seat)
		}
	}

	app.cacheAvailability(ctx, showID, available)

	return available, nil
}

func (app *Application) cachedAvailability(ctx context.Context, showID int) ([]domain.SeatSlot, bool) {
	payload, err := app.redis.Get(ctx, availabilityKey(showID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			app.logger.Warn("availability cache read failed", "show_id", showID, "error", err)
		}

		return nil, false
	}

	var seats []domain.SeatSlot
	if err := json.Unmarshal(payload, &seats); err != nil {
		app.logger.Warn("availability cache entry is corrupt", "show_id", showID, "error", err)
		return nil, false
	}

	return seats, true
}

func (app *Application) cacheAvailability(ctx context.Context, showID int, seats []domain.SeatSlot) {
	payload, err := json.Marshal(seats)
	if err != nil {
		app.logger.Warn("availability cache marshal failed", "show_id", showID, "error", err)
		return
	}

	err = app.redis.Set(ctx, availabilityKey(showID), payload, app.config.Booking.AvailabilityCacheTTL).Err()
	if err != nil {
		app.logger.Warn("availability cache write failed", "show_id", showID, "error", err)
	}
}

// invalidateAvailability drops cached availability after a seat changed
// hands. Best effort: a failed delete only delays the cache by its TTL.
func (app *Application) invalidateAvailability(ctx context.Context, showIDs ...int) {
	keys := make([]string, len(showIDs))
	for i, showID := range showIDs {
		keys[i] = availabilityKey(showID)
	}

	if err := app.redis.Del(ctx, keys...).Err(); err != nil {
		app.logger.Warn("availability cache invalidation failed", "show_ids", showIDs, "error", err)
	}
}
