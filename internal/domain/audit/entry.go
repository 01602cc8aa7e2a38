package audit

import (
	"errors"
	"strings"
	"time"

	"range-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrActorRequired   = errors.New("audit actor is required")
	ErrInvalidAction   = errors.New("invalid audit action")
	ErrInvalidTimespan = errors.New("audit query 'from' must not be after 'to'")
)

type Action string

const (
	ActionBookingCreated   Action = "booking_created"
	ActionAutoApproved     Action = "auto_approved"
	ActionApproved         Action = "approved"
	ActionDenied           Action = "denied"
	ActionOverrideApproved Action = "override_approved"
	ActionOverrideAndBump  Action = "override_and_bump"
	ActionBumped           Action = "bumped"
	ActionRescheduled      Action = "rescheduled"
	ActionCancelled        Action = "cancelled"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionBookingCreated, ActionAutoApproved, ActionApproved, ActionDenied,
		ActionOverrideApproved, ActionOverrideAndBump, ActionBumped, ActionRescheduled, ActionCancelled:
		return true
	default:
		return false
	}
}

// ActionFor names the audit entry written for a lifecycle action.
func ActionFor(a booking.Action) Action {
	switch a {
	case booking.ActionApprove:
		return ActionApproved
	case booking.ActionAutoApprove:
		return ActionAutoApproved
	case booking.ActionDeny:
		return ActionDenied
	case booking.ActionOverrideApprove:
		return ActionOverrideApproved
	case booking.ActionOverrideBump:
		return ActionOverrideAndBump
	case booking.ActionBump:
		return ActionBumped
	case booking.ActionReschedule:
		return ActionRescheduled
	case booking.ActionCancel:
		return ActionCancelled
	default:
		return ""
	}
}

// Entry is append-only. OldStatus is nil only for booking_created.
type Entry struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Action    Action
	Actor     string
	OldStatus *booking.Status
	NewStatus booking.Status
	Reason    string
	Metadata  map[string]any
	CreatedAt time.Time
}

type NewEntryParams struct {
	BookingID uuid.UUID
	Action    Action
	Actor     string
	OldStatus *booking.Status
	NewStatus booking.Status
	Reason    string
	Metadata  map[string]any
	Now       time.Time
}

func NewEntry(p NewEntryParams) (*Entry, error) {
	if strings.TrimSpace(p.Actor) == "" {
		return nil, ErrActorRequired
	}
	if !p.Action.IsValid() || !p.NewStatus.IsValid() {
		return nil, ErrInvalidAction
	}
	meta := p.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return &Entry{
		ID:        uuid.New(),
		BookingID: p.BookingID,
		Action:    p.Action,
		Actor:     p.Actor,
		OldStatus: p.OldStatus,
		NewStatus: p.NewStatus,
		Reason:    p.Reason,
		Metadata:  meta,
		CreatedAt: p.Now.UTC(),
	}, nil
}

// Transition builds the entry for a status change.
func Transition(bookingID uuid.UUID, action Action, actor string, from, to booking.Status, reason string, meta map[string]any, now time.Time) (*Entry, error) {
	return NewEntry(NewEntryParams{
		BookingID: bookingID,
		Action:    action,
		Actor:     actor,
		OldStatus: &from,
		NewStatus: to,
		Reason:    reason,
		Metadata:  meta,
		Now:       now,
	})
}

// Filter selects entries across bookings for compliance review.
type Filter struct {
	Actor  string
	Action Action
	From   *time.Time
	To     *time.Time
	Limit  int
}

func (f Filter) Validate() error {
	if f.Action != "" && !f.Action.IsValid() {
		return ErrInvalidAction
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return ErrInvalidTimespan
	}
	return nil
}
