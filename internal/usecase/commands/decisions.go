package commands

import (
	"context"
	"log/slog"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/pkg/tracing"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

func (uc *bookingCommandsImpl) Approve(ctx context.Context, id uuid.UUID, in DecisionInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.approve", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadFor(ctx, tx.Reads(), id, booking.ActionApprove)
		if err != nil {
			return err
		}
		report, err := uc.lockAndDetect(ctx, tx, b, b.Schedule())
		if err != nil {
			return err
		}
		if report.HasConflicts() {
			return &booking.ConflictError{Conflicts: report.Conflicts}
		}
		if err := uc.transition(ctx, tx, b, booking.ActionApprove, decision{
			actor:     in.Actor,
			reason:    in.Reason,
			conflicts: report.Conflicts,
		}, uc.clock.Now()); err != nil {
			return err
		}
		result = &BookingResult{Booking: b.Snapshot(), Conflicts: report.Conflicts, Nearby: report.Nearby}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, audit.ActionApproved, result.Booking, "")
	return result, nil
}

func (uc *bookingCommandsImpl) Deny(ctx context.Context, id uuid.UUID, in DecisionInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.deny", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}
	if err = shared.RequireText("reason", in.Reason); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadFor(ctx, tx.Reads(), id, booking.ActionDeny)
		if err != nil {
			return err
		}
		report, err := uc.lockAndDetect(ctx, tx, b, b.Schedule())
		if err != nil {
			return err
		}
		if err := uc.transition(ctx, tx, b, booking.ActionDeny, decision{
			actor:     in.Actor,
			reason:    in.Reason,
			conflicts: report.Conflicts,
		}, uc.clock.Now()); err != nil {
			return err
		}
		result = &BookingResult{Booking: b.Snapshot(), Conflicts: report.Conflicts}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// OverrideApprove approves despite conflicts. The conflicting bookings keep
// their status; the conflicts are frozen into the Approval.
func (uc *bookingCommandsImpl) OverrideApprove(ctx context.Context, id uuid.UUID, in OverrideInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.override_approve", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}
	if err = shared.RequireText("override_reason", in.OverrideReason); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadFor(ctx, tx.Reads(), id, booking.ActionOverrideApprove)
		if err != nil {
			return err
		}
		report, err := uc.lockAndDetect(ctx, tx, b, b.Schedule())
		if err != nil {
			return err
		}
		overrideReason := in.OverrideReason
		if err := uc.transition(ctx, tx, b, booking.ActionOverrideApprove, decision{
			actor:          in.Actor,
			reason:         in.Reason,
			overrideReason: &overrideReason,
			conflicts:      report.Conflicts,
			metadata: map[string]any{
				"override_reason":           overrideReason,
				"conflicting_request_codes": requestCodes(report.Conflicts),
			},
		}, uc.clock.Now()); err != nil {
			return err
		}
		result = &BookingResult{Booking: b.Snapshot(), Conflicts: report.Conflicts, Nearby: report.Nearby}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking override-approved",
		slog.String("request_code", result.Booking.RequestCode),
		slog.String("actor", in.Actor),
		slog.Int("conflicts", len(result.Conflicts)))
	uc.notify(ctx, audit.ActionOverrideApproved, result.Booking, "")
	return result, nil
}

// OverrideBump approves the booking and moves every currently approved
// conflicting booking to bumped, all in one transaction.
func (uc *bookingCommandsImpl) OverrideBump(ctx context.Context, id uuid.UUID, in OverrideInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.override_bump", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}
	if err = shared.RequireText("override_reason", in.OverrideReason); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadFor(ctx, tx.Reads(), id, booking.ActionOverrideBump)
		if err != nil {
			return err
		}
		report, err := uc.lockAndDetect(ctx, tx, b, b.Schedule())
		if err != nil {
			return err
		}
		if !report.HasConflicts() {
			return errs.Mark(errs.Newf("booking %s has no conflicts; approve it instead", b.RequestCode()), errs.ErrNoConflictsToBump)
		}

		now := uc.clock.Now()
		bumped := make([]booking.Snapshot, 0)
		for _, targetID := range booking.BumpTargets(report.Conflicts) {
			target, err := tx.Reads().BookingByID(ctx, targetID)
			if err != nil {
				return err
			}
			if err := uc.transition(ctx, tx, target, booking.ActionBump, decision{
				actor:  in.Actor,
				reason: in.OverrideReason,
				metadata: map[string]any{
					"bumped_by_booking_id":   b.ID().String(),
					"bumped_by_request_code": b.RequestCode(),
					"shared_resource_ids":    target.SharedResources(b.ResourceIDs()),
				},
			}, now); err != nil {
				return err
			}
			bumped = append(bumped, target.Snapshot())
		}

		bumpedCodes := make([]string, 0, len(bumped))
		bumpedIDs := make([]string, 0, len(bumped))
		for _, s := range bumped {
			bumpedCodes = append(bumpedCodes, s.RequestCode)
			bumpedIDs = append(bumpedIDs, s.ID.String())
		}
		overrideReason := in.OverrideReason
		if err := uc.transition(ctx, tx, b, booking.ActionOverrideBump, decision{
			actor:          in.Actor,
			reason:         in.Reason,
			overrideReason: &overrideReason,
			conflicts:      report.Conflicts,
			metadata: map[string]any{
				"override_reason":       overrideReason,
				"bumped_request_codes":  bumpedCodes,
				"bumped_booking_ids":    bumpedIDs,
				"conflict_record_count": len(report.Conflicts),
			},
		}, now); err != nil {
			return err
		}

		result = &BookingResult{Booking: b.Snapshot(), Conflicts: report.Conflicts, Nearby: report.Nearby, Bumped: bumped}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking approved with bump",
		slog.String("request_code", result.Booking.RequestCode),
		slog.String("actor", in.Actor),
		slog.Int("bumped", len(result.Bumped)))
	uc.notify(ctx, audit.ActionOverrideAndBump, result.Booking, "")
	for _, s := range result.Bumped {
		uc.notify(ctx, audit.ActionBumped, s, result.Booking.RequestCode)
	}
	return result, nil
}

func requestCodes(conflicts []booking.Conflict) []string {
	seen := make(map[string]struct{}, len(conflicts))
	codes := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		if _, ok := seen[c.RequestCode]; ok {
			continue
		}
		seen[c.RequestCode] = struct{}{}
		codes = append(codes, c.RequestCode)
	}
	return codes
}
