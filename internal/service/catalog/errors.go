package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrDuplicateName   = errors.New("a service with this name already exists")
)
