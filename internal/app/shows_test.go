package app

import (
	"context"
	"testing"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/ekinoks/cinema-booking-core/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ShowsTestSuite struct {
	suite.Suite
	app       *Application
	movieRepo *mocks.MockMovieRepo
	showRepo  *mocks.MockShowRepo
}

func (s *ShowsTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)
	s.showRepo = new(mocks.MockShowRepo)

	s.app = newTestApplication(func(a *Application) {
		a.movieRepo = s.movieRepo
		a.showRepo = s.showRepo
	})
}

func TestShowsSuite(t *testing.T) {
	suite.Run(t, new(ShowsTestSuite))
}

func (s *ShowsTestSuite) TestCreateShow() {
	startTime := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		params     CreateShowParams
		setupMocks func()
		wantErr    error
	}{
		{
			name: "fails validation when base price is zero",
			params: CreateShowParams{
				MovieID:    7,
				ShowroomID: 3,
				StartTime:  startTime,
			},
			wantErr: &ValidationError{},
		},
		{
			name: "fails when movie does not exist",
			params: CreateShowParams{
				MovieID:    99,
				ShowroomID: 3,
				StartTime:  startTime,
				BasePrice:  decimal.RequireFromString("10.00"),
			},
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "fails when the showroom is occupied in the time range",
			params: CreateShowParams{
				MovieID:    7,
				ShowroomID: 3,
				StartTime:  startTime,
				BasePrice:  decimal.RequireFromString("10.00"),
			},
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return &domain.Movie{ID: 7, Title: "Heat", Duration: 170}, nil
				}
				s.showRepo.CreateFunc = func(ctx context.Context, show *domain.Show) error {
					return domain.ErrShowtimeConflict
				}
			},
			wantErr: domain.ErrShowtimeConflict,
		},
		{
			name: "schedules a show spanning runtime plus turnaround",
			params: CreateShowParams{
				MovieID:    7,
				ShowroomID: 3,
				StartTime:  startTime,
				BasePrice:  decimal.RequireFromString("10.00"),
			},
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return &domain.Movie{ID: 7, Title: "Heat", Duration: 170}, nil
				}
				s.showRepo.CreateFunc = func(ctx context.Context, show *domain.Show) error {
					show.ID = 1
					return nil
				}
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			show, err := s.app.CreateShow(context.Background(), tt.params)

			if tt.wantErr != nil {
				s.Require().Error(err)

				if validationErr, ok := tt.wantErr.(*ValidationError); ok {
					s.ErrorAs(err, &validationErr)
				} else {
					s.ErrorIs(err, tt.wantErr)
				}

				return
			}

			s.Require().NoError(err)
			s.Equal(1, show.ID)
			s.Equal("Heat", show.MovieTitle)
			s.Equal(startTime, show.StartTime)

			// 170 minutes of runtime plus the 20 minute turnaround.
			s.Equal(startTime.Add(190*time.Minute), show.EndTime)
		})
	}
}

func (s *ShowsTestSuite) TestListShows() {
	s.showRepo.GetAllFunc = func(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, *domain.Metadata, error) {
		s.Equal(DefaultPage, filters.Page)
		s.Equal(DefaultPageSize, filters.PageSize)
		s.Equal(7, filters.MovieID)
		s.True(filters.OnlyAvailable)

		return []domain.Show{{ID: 1, MovieID: 7}}, domain.NewMetadata(1, filters.Page, filters.PageSize), nil
	}

	shows, metadata, err := s.app.ListShows(context.Background(), domain.ShowFilters{MovieID: 7, OnlyAvailable: true})

	s.Require().NoError(err)
	s.Len(shows, 1)
	s.Equal(1, metadata.TotalRecords)
}
