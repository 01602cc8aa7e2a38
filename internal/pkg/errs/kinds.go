package errs

import "errors"

// Error kinds surfaced by the booking engine. Every error returned from a
// command or query is marked with exactly one of these.
var (
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConflict               = errors.New("booking conflict")
	ErrNoConflictsToBump      = errors.New("no conflicts to bump")
	ErrPersistence            = errors.New("persistence failure")
)

// Validation marks err as a caller input problem.
func Validation(err error) error {
	return Mark(err, ErrValidation)
}

// Validationf builds a fresh validation error.
func Validationf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}

func NotFound(err error) error {
	return Mark(err, ErrNotFound)
}

func Persistence(err error) error {
	return Mark(err, ErrPersistence)
}
