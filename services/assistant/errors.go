package assistant

import "errors"

var (
	// ErrPaymentNotConfigured is returned when link creation is attempted
	// without a payment provider credential.
	ErrPaymentNotConfigured = errors.New("payment provider not configured")

	// ErrInvalidWindow is returned for availability windows below one day.
	ErrInvalidWindow = errors.New("windowDays must be at least 1")

	// ErrInvalidAmount is returned for negative payment amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
