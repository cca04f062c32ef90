package availability

import "errors"

var (
	ErrNotFound         = errors.New("availability not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidWindow    = errors.New("invalid availability window")
	ErrWindowTooShort   = errors.New("window is shorter than the service duration")
)
