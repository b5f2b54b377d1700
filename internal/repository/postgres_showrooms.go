package repository

import (
	"context"
	"errors"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowroomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowroomRepository(db *pgxpool.Pool) *PostgresShowroomRepository {
	return &PostgresShowroomRepository{
		db: db,
	}
}

func (p *PostgresShowroomRepository) Create(ctx context.Context, showroom *domain.Showroom) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO showrooms (name, location)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, showroom.Name, showroom.Location).Scan(&showroom.ID)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(showroom.Seats))
		for _, seat := range showroom.Seats {
			rows = append(rows, []any{
				showroom.ID,
				seat.Row,
				seat.Number,
				seat.SeatTypeID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seat_slots"},
			[]string{"showroom_id", "seat_row", "seat_number", "seat_type_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		seats, err := p.retrieveSeatSlots(ctx, tx, showroom.ID)
		if err != nil {
			return err
		}

		showroom.Seats = seats

		return nil
	})
}

func (p *PostgresShowroomRepository) GetById(ctx context.Context, id int) (*domain.Showroom, error) {
	query := `
		SELECT id, name, location
		FROM showrooms
		WHERE id = $1
	`

	var showroom domain.Showroom

	err := p.db.QueryRow(ctx, query, id).Scan(&showroom.ID, &showroom.Name, &showroom.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	seats, err := p.retrieveSeatSlots(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	showroom.Seats = seats

	return &showroom, nil
}

func (p *PostgresShowroomRepository) GetSeatSlot(
	ctx context.Context,
	showroomID,
	seatSlotID int) (*domain.SeatSlot, error) {

	query := `
		SELECT ss.id, ss.showroom_id, ss.seat_row, ss.seat_number, st.id, st.label, st.premium_pct
		FROM seat_slots ss
		JOIN seat_types st ON ss.seat_type_id = st.id
		WHERE ss.id = $1 AND ss.showroom_id = $2
	`

	var seat domain.SeatSlot
	var premium pgtype.Numeric

	err := p.db.QueryRow(ctx, query, seatSlotID, showroomID).Scan(
		&seat.ID,
		&seat.ShowroomID,
		&seat.Row,
		&seat.Number,
		&seat.SeatTypeID,
		&seat.SeatTypeLabel,
		&premium,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	seat.Premium = numericToDecimal(premium)

	return &seat, nil
}

// querier lets seat slot retrieval run either on the pool or inside a
// transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (p *PostgresShowroomRepository) retrieveSeatSlots(
	ctx context.Context,
	q querier,
	showroomID int) ([]domain.SeatSlot, error) {

	query := `
		SELECT ss.id, ss.showroom_id, ss.seat_row, ss.seat_number, st.id, st.label, st.premium_pct
		FROM seat_slots ss
		JOIN seat_types st ON ss.seat_type_id = st.id
		WHERE ss.showroom_id = $1
		ORDER BY ss.seat_row, ss.seat_number
	`

	rows, err := q.Query(ctx, query, showroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.SeatSlot, 0)

	for rows.Next() {
		var seat domain.SeatSlot
		var premium pgtype.Numeric

		err := rows.Scan(
			&seat.ID,
			&seat.ShowroomID,
			&seat.Row,
			&seat.Number,
			&seat.SeatTypeID,
			&seat.SeatTypeLabel,
			&premium,
		)
		if err != nil {
			return nil, err
		}

		seat.Premium = numericToDecimal(premium)
		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
