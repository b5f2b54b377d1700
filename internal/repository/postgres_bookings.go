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

// PostgresBookingRepository is the booking ledger. Its consistency guarantee
// rests on a partial unique index over (show_id, seat_slot_id) covering only
// held and confirmed rows, so the check-and-create of a hold is atomic across
// processes sharing the database.
type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Hold(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Release a stale hold on the same seat first, so an expired hold never
		// blocks a new one between sweep runs.
		query := `
			UPDATE bookings
			SET status = 'expired', updated_at = $3
			WHERE show_id = $1 AND seat_slot_id = $2 AND status = 'held' AND expires_at <= $3
		`

		_, err := tx.Exec(ctx, query, booking.ShowID, booking.SeatSlotID, booking.HeldAt)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO bookings (id, show_id, seat_slot_id, status, price, held_at, expires_at)
			VALUES ($1, $2, $3, 'held', $4, $5, $6)
		`

		_, err = tx.Exec(
			ctx,
			query,
			booking.ID,
			booking.ShowID,
			booking.SeatSlotID,
			booking.Price.String(),
			booking.HeldAt,
			booking.ExpiresAt,
		)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgerrcode.UniqueViolation:
					return domain.ErrSeatUnavailable
				case pgerrcode.ForeignKeyViolation:
					return domain.ErrRecordNotFound
				}
			}

			return err
		}

		return nil
	})
}

func (p *PostgresBookingRepository) Confirm(ctx context.Context, id string, now time.Time) (*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = 'confirmed', confirmed_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'held' AND expires_at > $2
		RETURNING id, show_id, seat_slot_id, status, price, held_at, expires_at, confirmed_at
	`

	booking, err := p.scanBooking(p.db.QueryRow(ctx, query, id, now))
	if err == nil {
		return booking, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// The compare-and-set missed; look at the row to report why.
	var status domain.BookingStatus

	err = p.db.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	switch status {
	case domain.BookingHeld, domain.BookingExpired:
		return nil, domain.ErrHoldExpired
	default:
		return nil, domain.ErrInvalidTransition
	}
}

func (p *PostgresBookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status IN ('held', 'confirmed')
		RETURNING id, show_id, seat_slot_id, status, price, held_at, expires_at, confirmed_at
	`

	booking, err := p.scanBooking(p.db.QueryRow(ctx, query, id))
	if err == nil {
		return booking, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	query = `
		SELECT id, show_id, seat_slot_id, status, price, held_at, expires_at, confirmed_at
		FROM bookings
		WHERE id = $1
	`

	booking, err = p.scanBooking(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	// Cancelling twice is a no-op; cancelling an expired hold is not.
	if booking.Status == domain.BookingCancelled {
		return booking, nil
	}

	return nil, domain.ErrInvalidTransition
}

func (p *PostgresBookingRepository) ExpireStale(ctx context.Context, now time.Time) ([]int, error) {
	query := `
		UPDATE bookings
		SET status = 'expired', updated_at = $1
		WHERE status = 'held' AND expires_at < $1
		RETURNING show_id
	`

	rows, err := p.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showIDs := make([]int, 0)

	for rows.Next() {
		var showID int

		if err := rows.Scan(&showID); err != nil {
			return nil, err
		}

		showIDs = append(showIDs, showID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showIDs, nil
}

func (p *PostgresBookingRepository) GetActiveSeatIDs(ctx context.Context, showID int, now time.Time) ([]int, error) {
	query := `
		SELECT seat_slot_id
		FROM bookings
		WHERE show_id = $1
			AND (status = 'confirmed' OR (status = 'held' AND expires_at > $2))
	`

	rows, err := p.db.Query(ctx, query, showID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatIDs := make([]int, 0)

	for rows.Next() {
		var seatID int

		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}

		seatIDs = append(seatIDs, seatID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seatIDs, nil
}

func (p *PostgresBookingRepository) GetDetail(ctx context.Context, id string) (*domain.BookingDetail, error) {
	query := `
		SELECT
			b.id, b.show_id, b.seat_slot_id, b.status, b.price, b.held_at, b.expires_at, b.confirmed_at,
			m.title,
			sr.name,
			s.start_time,
			ss.seat_row,
			ss.seat_number,
			st.label
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN showrooms sr ON s.showroom_id = sr.id
		JOIN seat_slots ss ON b.seat_slot_id = ss.id
		JOIN seat_types st ON ss.seat_type_id = st.id
		WHERE b.id = $1
	`

	var detail domain.BookingDetail
	var price pgtype.Numeric

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowID,
		&detail.SeatSlotID,
		&detail.Status,
		&price,
		&detail.HeldAt,
		&detail.ExpiresAt,
		&detail.ConfirmedAt,
		&detail.MovieTitle,
		&detail.ShowroomName,
		&detail.StartTime,
		&detail.SeatRow,
		&detail.SeatNumber,
		&detail.SeatType,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.Price = numericToDecimal(price)

	return &detail, nil
}

func (p *PostgresBookingRepository) scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var price pgtype.Numeric

	err := row.Scan(
		&booking.ID,
		&booking.ShowID,
		&booking.SeatSlotID,
		&booking.Status,
		&price,
		&booking.HeldAt,
		&booking.ExpiresAt,
		&booking.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Price = numericToDecimal(price)

	return &booking, nil
}
