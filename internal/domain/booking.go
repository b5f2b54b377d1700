package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingHeld      BookingStatus = "held"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingExpired   BookingStatus = "expired"
)

// Booking is a seat hold or a confirmed booking for one seat of one show.
// For any (show, seat slot) pair at most one booking may be held-unexpired
// or confirmed at a time; the bookings table guards that with a partial
// unique index, so the invariant holds across processes.
type Booking struct {
	ID          string
	ShowID      int
	SeatSlotID  int
	Status      BookingStatus
	Price       decimal.Decimal // price captured at hold time
	HeldAt      time.Time
	ExpiresAt   time.Time
	ConfirmedAt *time.Time
}

func NewHold(showID, seatSlotID int, price decimal.Decimal, now time.Time, holdDuration time.Duration) *Booking {
	return &Booking{
		ID:         uuid.New().String(),
		ShowID:     showID,
		SeatSlotID: seatSlotID,
		Status:     BookingHeld,
		Price:      price,
		HeldAt:     now,
		ExpiresAt:  now.Add(holdDuration),
	}
}

func (b *Booking) IsExpired(now time.Time) bool {
	return b.Status == BookingHeld && now.After(b.ExpiresAt)
}

// Active reports whether the booking still occupies its seat.
func (b *Booking) Active(now time.Time) bool {
	switch b.Status {
	case BookingConfirmed:
		return true
	case BookingHeld:
		return !now.After(b.ExpiresAt)
	default:
		return false
	}
}

func (b *Booking) CanConfirm(now time.Time) error {
	if b.Status != BookingHeld {
		return ErrInvalidTransition
	}
	if now.After(b.ExpiresAt) {
		return ErrHoldExpired
	}

	return nil
}

func (b *Booking) CanCancel() error {
	switch b.Status {
	case BookingHeld, BookingConfirmed, BookingCancelled:
		return nil
	default:
		return ErrInvalidTransition
	}
}

// BookingDetail carries everything printed on a ticket.
type BookingDetail struct {
	Booking
	MovieTitle   string
	ShowroomName string
	StartTime    time.Time
	SeatRow      string
	SeatNumber   int
	SeatType     string
}

type BookingRepository interface {
	// Hold inserts the booking if and only if no active booking exists for the
	// same (show, seat slot) pair. A stale hold on the pair is expired in the
	// same transaction, so a seat never stays blocked between sweep runs.
	Hold(ctx context.Context, booking *Booking) error

	// Confirm flips a held, unexpired booking to confirmed. The status check
	// and the flip are a single compare-and-set; a confirm racing the expiry
	// sweep loses cleanly with ErrHoldExpired.
	Confirm(ctx context.Context, id string, now time.Time) (*Booking, error)

	// Cancel flips a held or confirmed booking to cancelled. Cancelling an
	// already cancelled booking is a no-op.
	Cancel(ctx context.Context, id string) (*Booking, error)

	// ExpireStale flips every held booking past its expiry to expired and
	// returns the show IDs whose availability changed, one per booking.
	ExpireStale(ctx context.Context, now time.Time) ([]int, error)

	// GetActiveSeatIDs returns the seat slot IDs occupied for a show at now.
	GetActiveSeatIDs(ctx context.Context, showID int, now time.Time) ([]int, error)

	GetDetail(ctx context.Context, id string) (*BookingDetail, error)
}
