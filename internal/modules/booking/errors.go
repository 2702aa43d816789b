package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrRoomNotFound      = errors.New("room not found in registry")
	ErrRoomOffline       = errors.New("room is currently offline")
	ErrConflict          = errors.New("room already reserved for these dates")
	ErrEarlyCheckIn      = errors.New("arrival too early: official check-in starts at 3:00 PM on the reserved date")
	ErrBookingExpired    = errors.New("booking expired: check-out deadline of 11:00 AM has passed")
	ErrPaymentRequired   = errors.New("full payment verification required before check-in")
	ErrStayActive        = errors.New("active or completed stays cannot be cancelled")
	ErrInvalidTransition = errors.New("invalid status transition")
)
