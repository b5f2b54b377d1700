package repository

import (
	"context"

	"github.com/ekinoks/cinema-booking-core/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatTypeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatTypeRepository(db *pgxpool.Pool) *PostgresSeatTypeRepository {
	return &PostgresSeatTypeRepository{
		db: db,
	}
}

func (p *PostgresSeatTypeRepository) Create(ctx context.Context, seatType *domain.SeatType) error {
	query := `
		INSERT INTO seat_types (label, premium_pct)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, seatType.Label, seatType.Premium.String()).Scan(&seatType.ID)
}

func (p *PostgresSeatTypeRepository) GetAll(ctx context.Context) ([]domain.SeatType, error) {
	query := `
		SELECT id, label, premium_pct
		FROM seat_types
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatTypes := make([]domain.SeatType, 0)

	for rows.Next() {
		var seatType domain.SeatType
		var premium pgtype.Numeric

		err := rows.Scan(&seatType.ID, &seatType.Label, &premium)
		if err != nil {
			return nil, err
		}

		seatType.Premium = numericToDecimal(premium)
		seatTypes = append(seatTypes, seatType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seatTypes, nil
}
