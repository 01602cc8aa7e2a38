package shared

import (
	"range-booking/internal/infra"
	"range-booking/internal/pkg/errs"
)

// Classify gives every error leaving the engine exactly one kind. Already
// classified errors pass through untouched.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrNotFound),
		errs.Is(err, errs.ErrInvalidStateTransition),
		errs.Is(err, errs.ErrConflict),
		errs.Is(err, errs.ErrNoConflictsToBump),
		errs.Is(err, errs.ErrPersistence):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.NotFound(err)
	case infra.IsKind(err, infra.KindStaleState):
		// another transaction moved the booking out of the status it was loaded in
		return errs.Mark(err, errs.ErrInvalidStateTransition)
	default:
		return errs.Persistence(err)
	}
}
