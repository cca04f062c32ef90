package appointment

import "errors"

var (
	ErrNotFound           = errors.New("appointment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProviderNotFound   = errors.New("provider not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrNoAvailability     = errors.New("provider has no availability for this service")
	ErrSlotTaken          = errors.New("slot is already booked")
	ErrInvalidStatus      = errors.New("invalid appointment status")
	ErrModifyWindowClosed = errors.New("appointment can no longer be modified")
)
