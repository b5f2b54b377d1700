package mocks

import (
	"context"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
)

type MockShowroomRepo struct {
	CreateFunc      func(ctx context.Context, showroom *domain.Showroom) error
	GetByIdFunc     func(ctx context.Context, id int) (*domain.Showroom, error)
	GetSeatSlotFunc func(ctx context.Context, showroomID, seatSlotID int) (*domain.SeatSlot, error)
}

func (m *MockShowroomRepo) Create(ctx context.Context, showroom *domain.Showroom) error {
	return m.CreateFunc(ctx, showroom)
}

func (m *MockShowroomRepo) GetById(ctx context.Context, id int) (*domain.Showroom, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowroomRepo) GetSeatSlot(
	ctx context.Context,
	showroomID,
	seatSlotID int) (*domain.SeatSlot, error) {

	return m.GetSeatSlotFunc(ctx, showroomID, seatSlotID)
}
