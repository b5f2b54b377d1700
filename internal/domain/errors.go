package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrShowtimeConflict  = errors.New("showroom already has a show in this time range")
	ErrSeatUnavailable   = errors.New("seat is already held or booked for this show")
	ErrHoldExpired       = errors.New("seat hold has expired")
	ErrInvalidTransition = errors.New("booking state does not allow this transition")
)
