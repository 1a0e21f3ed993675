package domain

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidLimit     = errors.New("limit out of range")
	ErrStoreUnavailable = errors.New("store unavailable")
)
