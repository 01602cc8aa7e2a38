package commands

import (
	"context"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
)

// CalendarEvent is the post-commit snapshot handed to the calendar side
// channel.
type CalendarEvent struct {
	Action  audit.Action
	Booking booking.Snapshot
	// RelatedRequestCode names the bumping request on a bumped event.
	RelatedRequestCode string
	OccurredAt         time.Time
}

// CalendarNotifier is fire-and-forget: Notify must not block on delivery
// and nothing it does can fail the operation that triggered it.
type CalendarNotifier interface {
	Notify(ctx context.Context, ev CalendarEvent)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, CalendarEvent) {}

// CreateBookingInput is a new booking request. A request whose officer is on
// the whitelist is approved immediately only when its slot has no conflicts;
// a contested whitelisted request is created pending like any other and waits
// for a range admin.
type CreateBookingInput struct {
	Actor                string   `validate:"required,max=200"`
	GroupName            string   `validate:"required,max=200"`
	ContactName          string   `validate:"required,max=200"`
	ContactEmail         string   `validate:"required,email,max=320"`
	ContactPhone         string   `validate:"omitempty,max=50"`
	OfficerName          string   `validate:"required,max=200"`
	OfficerQualification string   `validate:"required,max=200"`
	Date                 string   `validate:"required"`
	StartTime            string   `validate:"required"`
	EndTime              string   `validate:"required"`
	Timezone             string   `validate:"omitempty,max=64"`
	ResourceIDs          []string `validate:"required,min=1,dive,required,max=100"`
	SafetyAttested       bool
	WaiverAttested       bool
	InsuranceAttested    bool
	AttestationDetails   string `validate:"max=2000"`
	Purpose              string `validate:"max=2000"`
}

type DecisionInput struct {
	Actor  string `validate:"required,max=200"`
	Reason string `validate:"max=2000"`
}

type OverrideInput struct {
	Actor          string `validate:"required,max=200"`
	Reason         string `validate:"max=2000"`
	OverrideReason string `validate:"required,max=2000"`
}

type RescheduleInput struct {
	Actor     string `validate:"required,max=200"`
	Reason    string `validate:"max=2000"`
	Date      string `validate:"required"`
	StartTime string `validate:"required"`
	EndTime   string `validate:"required"`
	// Timezone defaults to the booking's own zone.
	Timezone string `validate:"omitempty,max=64"`
}

type BookingResult struct {
	Booking booking.Snapshot
	// Conflicts known when the operation committed. Non-empty for overrides
	// and for bookings created on top of existing ones.
	Conflicts []booking.Conflict
	Nearby    []booking.NearbyBooking
	Bumped    []booking.Snapshot
}
