package review

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("access denied")
	ErrAlreadyReviewed = errors.New("user already reviewed this equipment")
)
