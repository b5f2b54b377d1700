package mocks

import (
	"context"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
)

type MockShowRepo struct {
	CreateFunc  func(ctx context.Context, show *domain.Show) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Show, error)
	GetAllFunc  func(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, *domain.Metadata, error)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetAll(
	ctx context.Context,
	filters domain.ShowFilters) ([]domain.Show, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, filters)
}
