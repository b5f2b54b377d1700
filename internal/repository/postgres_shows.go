package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, showroom_id, start_time, end_time, base_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		show.MovieID,
		show.ShowroomID,
		show.StartTime,
		show.EndTime,
		show.BasePrice.String()).Scan(&show.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation:
				return domain.ErrShowtimeConflict
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrRecordNotFound
			}
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT s.id, s.movie_id, m.title, s.showroom_id, s.start_time, s.end_time, s.base_price
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		WHERE s.id = $1
	`

	var show domain.Show
	var basePrice pgtype.Numeric

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.MovieTitle,
		&show.ShowroomID,
		&show.StartTime,
		&show.EndTime,
		&basePrice,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.BasePrice = numericToDecimal(basePrice)

	return &show, nil
}

func (p *PostgresShowRepository) GetAll(
	ctx context.Context,
	filters domain.ShowFilters) ([]domain.Show, *domain.Metadata, error) {

	// The zero time works as an open lower bound.
	from := filters.From

	to := filters.To
	if to.IsZero() {
		// An open upper bound, far enough out for any cinema programme.
		to = time.Now().AddDate(100, 0, 0)
	}

	query := `
		SELECT
			COUNT(*) OVER(),
			s.id, s.movie_id, m.title, s.showroom_id, s.start_time, s.end_time, s.base_price
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2 = 0 OR s.showroom_id = $2)
			AND s.start_time >= $3
			AND s.start_time < $4
			AND ($5 = false OR EXISTS (
				SELECT 1
				FROM seat_slots ss
				WHERE ss.showroom_id = s.showroom_id
					AND NOT EXISTS (
						SELECT 1
						FROM bookings b
						WHERE b.show_id = s.id
							AND b.seat_slot_id = ss.id
							AND (b.status = 'confirmed' OR (b.status = 'held' AND b.expires_at > NOW()))
					)
			))
		ORDER BY s.start_time, s.id
		LIMIT $6 OFFSET $7
	`

	rows, err := p.db.Query(
		ctx,
		query,
		filters.MovieID,
		filters.ShowroomID,
		from,
		to,
		filters.OnlyAvailable,
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)
	totalRecords := 0

	for rows.Next() {
		var show domain.Show
		var basePrice pgtype.Numeric

		err := rows.Scan(
			&totalRecords,
			&show.ID,
			&show.MovieID,
			&show.MovieTitle,
			&show.ShowroomID,
			&show.StartTime,
			&show.EndTime,
			&basePrice,
		)
		if err != nil {
			return nil, nil, err
		}

		show.BasePrice = numericToDecimal(basePrice)
		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return shows, metadata, nil
}
