package booking

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("booking not found")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("equipment already booked for the requested dates")
	ErrEquipmentUnavailable = errors.New("equipment is not available for rent")
)
