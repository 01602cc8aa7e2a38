package booking

import (
	"errors"
	"fmt"

	"range-booking/internal/pkg/errs"
)

var (
	ErrEmptyResourceSet      = errors.New("at least one resource is required")
	ErrEmptyResourceID       = errors.New("resource id cannot be empty")
	ErrAttestationIncomplete = errors.New("safety, waiver and insurance attestations must all be accepted")
	ErrGroupNameRequired     = errors.New("group name is required")
	ErrContactRequired       = errors.New("contact name and email are required")
	ErrOfficerRequired       = errors.New("range officer name and qualification are required")
	ErrInvalidStatus         = errors.New("invalid booking status")
)

// InvalidStateTransitionError is returned when an action is not permitted
// from the booking's current status.
type InvalidStateTransitionError struct {
	Current Status
	Action  Action
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.Current)
}

func (e *InvalidStateTransitionError) Is(target error) bool {
	return target == errs.ErrInvalidStateTransition
}

// ConflictError carries every conflict that blocked the operation.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflicts with %d active booking(s) on shared resources", len(DistinctBookingIDs(e.Conflicts)))
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrConflict
}
