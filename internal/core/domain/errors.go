package domain

import "errors"

var (
	// ErrNotFound is returned when a campaign id does not resolve.
	ErrNotFound = errors.New("campaign not found")
	// ErrValidation wraps rejected admin input.
	ErrValidation = errors.New("validation error")
)
