package domain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type SeatType struct {
	ID      int
	Label   string
	Premium decimal.Decimal // percentage added on top of a show's base price
}

type Showroom struct {
	ID       int
	Name     string
	Location string
	Seats    []SeatSlot
}

// SeatSlot is one physical seat position in a showroom. The layout is fixed:
// once shows are scheduled against a showroom its slots never change.
type SeatSlot struct {
	ID            int
	ShowroomID    int
	Row           string
	Number        int
	SeatTypeID    int
	SeatTypeLabel string
	Premium       decimal.Decimal
}

// Label returns the seat position as printed on a ticket, e.g. "A1".
func (s SeatSlot) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}

type SeatTypeRepository interface {
	Create(ctx context.Context, seatType *SeatType) error
	GetAll(ctx context.Context) ([]SeatType, error)
}

type ShowroomRepository interface {
	Create(ctx context.Context, showroom *Showroom) error
	GetById(ctx context.Context, id int) (*Showroom, error)
	GetSeatSlot(ctx context.Context, showroomID, seatSlotID int) (*SeatSlot, error)
}
