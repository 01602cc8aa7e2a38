package commands

import (
	"context"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/pkg/tracing"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Reschedule moves the booking to a new slot in place. The new slot must be
// free of conflicts with every other active booking.
func (uc *bookingCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, in RescheduleInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.reschedule", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadFor(ctx, tx.Reads(), id, booking.ActionReschedule)
		if err != nil {
			return err
		}
		tz := in.Timezone
		if tz == "" {
			tz = b.Schedule().Local.Timezone
		}
		next, err := buildSchedule(in.Date, in.StartTime, in.EndTime, tz)
		if err != nil {
			return err
		}
		report, err := uc.lockAndDetect(ctx, tx, b, next)
		if err != nil {
			return err
		}
		if report.HasConflicts() {
			return &booking.ConflictError{Conflicts: report.Conflicts}
		}

		now := uc.clock.Now()
		from, prev, err := b.Reschedule(next, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().UpdateSchedule(ctx, b, from); err != nil {
			return err
		}
		if err := tx.Reschedules().Create(ctx, &booking.Reschedule{
			ID:          uuid.New(),
			BookingID:   b.ID(),
			OldInterval: prev.Interval,
			NewInterval: next.Interval,
			Actor:       in.Actor,
			Reason:      in.Reason,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		entry, err := audit.Transition(b.ID(), audit.ActionRescheduled, in.Actor, from, b.Status(), in.Reason, map[string]any{
			"old_start":      prev.Interval.Start().Format(time.RFC3339),
			"old_end":        prev.Interval.End().Format(time.RFC3339),
			"new_start":      next.Interval.Start().Format(time.RFC3339),
			"new_end":        next.Interval.End().Format(time.RFC3339),
			"old_local_date": prev.Local.Date,
			"old_local_time": prev.Local.Start + "-" + prev.Local.End,
			"new_local_date": next.Local.Date,
			"new_local_time": next.Local.Start + "-" + next.Local.End,
			"timezone":       next.Local.Timezone,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Audit().Record(ctx, entry); err != nil {
			return err
		}
		result = &BookingResult{Booking: b.Snapshot(), Nearby: report.Nearby}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, audit.ActionRescheduled, result.Booking, "")
	return result, nil
}

// Cancel withdraws a booking that has not been denied or bumped.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, in DecisionInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.cancel", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}
	if err = shared.RequireText("reason", in.Reason); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadFor(ctx, tx.Reads(), id, booking.ActionCancel)
		if err != nil {
			return err
		}
		if err := uc.transition(ctx, tx, b, booking.ActionCancel, decision{
			actor:  in.Actor,
			reason: in.Reason,
		}, uc.clock.Now()); err != nil {
			return err
		}
		result = &BookingResult{Booking: b.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, audit.ActionCancelled, result.Booking, "")
	return result, nil
}
