package domain

import "errors"

// Error kinds surfaced by the core. Operations wrap these with context via
// fmt.Errorf("...: %w", Err...), so callers test with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrDuplicateEntity  = errors.New("duplicate entity")
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidClass     = errors.New("class not offered")
	ErrValidation       = errors.New("validation failed")
)
