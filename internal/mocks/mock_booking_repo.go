package mocks

import (
	"context"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
)

type MockBookingRepo struct {
	HoldFunc             func(ctx context.Context, booking *domain.Booking) error
	ConfirmFunc          func(ctx context.Context, id string, now time.Time) (*domain.Booking, error)
	CancelFunc           func(ctx context.Context, id string) (*domain.Booking, error)
	ExpireStaleFunc      func(ctx context.Context, now time.Time) ([]int, error)
	GetActiveSeatIDsFunc func(ctx context.Context, showID int, now time.Time) ([]int, error)
	GetDetailFunc        func(ctx context.Context, id string) (*domain.BookingDetail, error)
}

func (m *MockBookingRepo) Hold(ctx context.Context, booking *domain.Booking) error {
	return m.HoldFunc(ctx, booking)
}

func (m *MockBookingRepo) Confirm(ctx context.Context, id string, now time.Time) (*domain.Booking, error) {
	return m.ConfirmFunc(ctx, id, now)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	return m.CancelFunc(ctx, id)
}

func (m *MockBookingRepo) ExpireStale(ctx context.Context, now time.Time) ([]int, error) {
	return m.ExpireStaleFunc(ctx, now)
}

func (m *MockBookingRepo) GetActiveSeatIDs(ctx context.Context, showID int, now time.Time) ([]int, error) {
	return m.GetActiveSeatIDsFunc(ctx, showID, now)
}

func (m *MockBookingRepo) GetDetail(ctx context.Context, id string) (*domain.BookingDetail, error) {
	return m.GetDetailFunc(ctx, id)
}
