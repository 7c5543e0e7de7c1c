package service

import "errors"

// Sentinel errors the handlers translate to HTTP responses. The OTP
// verification path deliberately collapses "wrong code", "expired" and
// "already used" into one error so callers cannot probe which it was.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidOrExpired = errors.New("Invalid or expired OTP")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrConfiguration    = errors.New("payment gateway credentials not configured")
	ErrDeliveryFailure  = errors.New("failed to send email")
	ErrDuplicateBooking = errors.New("booking already recorded for this order")
)
