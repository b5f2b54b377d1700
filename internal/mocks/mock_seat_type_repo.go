package mocks

import (
	"context"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
)

type MockSeatTypeRepo struct {
	CreateFunc func(ctx context.Context, seatType *domain.SeatType) error
	GetAllFunc func(ctx context.Context) ([]domain.SeatType, error)
}

func (m *MockSeatTypeRepo) Create(ctx context.Context, seatType *domain.SeatType) error {
	return m.CreateFunc(ctx, seatType)
}

func (m *MockSeatTypeRepo) GetAll(ctx context.Context) ([]domain.SeatType, error) {
	return m.GetAllFunc(ctx)
}
