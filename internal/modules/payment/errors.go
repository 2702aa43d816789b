package payment

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking is cancelled; payment cannot be applied")
	ErrRefundNotPending = errors.New("booking is not flagged for a manual refund")
	ErrVerification     = errors.New("payment reference could not be verified")
)
