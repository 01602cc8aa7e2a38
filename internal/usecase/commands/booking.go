package commands

import (
	"context"
	"log/slog"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/pkg/clock"
	"range-booking/internal/pkg/config"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/pkg/localtime"
	"range-booking/internal/pkg/tracing"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const whitelistApprovalReason = "whitelisted range officer"

type BookingCommands interface {
	// Create stores a pending booking, or an approved one when the officer is
	// whitelisted and the slot is conflict-free. Conflicts never block creation.
	Create(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
	Approve(ctx context.Context, id uuid.UUID, in DecisionInput) (*BookingResult, error)
	Deny(ctx context.Context, id uuid.UUID, in DecisionInput) (*BookingResult, error)
	OverrideApprove(ctx context.Context, id uuid.UUID, in OverrideInput) (*BookingResult, error)
	OverrideBump(ctx context.Context, id uuid.UUID, in OverrideInput) (*BookingResult, error)
	Reschedule(ctx context.Context, id uuid.UUID, in RescheduleInput) (*BookingResult, error)
	Cancel(ctx context.Context, id uuid.UUID, in DecisionInput) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	detector  *shared.ConflictDetector
	whitelist shared.OfficerWhitelist
	notifier  CalendarNotifier
	clock     clock.Clock
	cfg       config.BookingConfig
	logger    *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	detector *shared.ConflictDetector,
	whitelist shared.OfficerWhitelist,
	notifier CalendarNotifier,
	clk clock.Clock,
	cfg config.BookingConfig,
	logger *slog.Logger,
) BookingCommands {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &bookingCommandsImpl{
		uow:       uow,
		detector:  detector,
		whitelist: whitelist,
		notifier:  notifier,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (_ *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "booking.create", attribute.Int("booking.resource_count", len(in.ResourceIDs)))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}
	tz := in.Timezone
	if tz == "" {
		tz = uc.cfg.DefaultTimezone
	}
	schedule, err := buildSchedule(in.Date, in.StartTime, in.EndTime, tz)
	if err != nil {
		return nil, err
	}

	whitelisted := false
	if uc.whitelist != nil {
		whitelisted, err = uc.whitelist.IsWhitelisted(ctx, in.OfficerName)
		if err != nil {
			return nil, shared.Classify(errs.Wrap(err, "whitelist lookup"))
		}
	}

	now := uc.clock.Now()
	b, err := booking.NewBooking(booking.NewBookingParams{
		Requester: booking.Requester{
			GroupName:    in.GroupName,
			ContactName:  in.ContactName,
			ContactEmail: in.ContactEmail,
			ContactPhone: in.ContactPhone,
		},
		Officer: booking.Officer{
			Name:          in.OfficerName,
			Qualification: in.OfficerQualification,
			Whitelisted:   whitelisted,
		},
		Schedule:    schedule,
		ResourceIDs: in.ResourceIDs,
		Attestation: booking.Attestation{
			Safety:    in.SafetyAttested,
			Waiver:    in.WaiverAttested,
			Insurance: in.InsuranceAttested,
			Details:   in.AttestationDetails,
		},
		Purpose: in.Purpose,
		Now:     now,
	})
	if err != nil {
		return nil, errs.Validation(err)
	}
	span.SetAttributes(attribute.String("booking.id", b.ID().String()), attribute.String("booking.request_code", b.RequestCode()))

	var result *BookingResult
	err = uc.within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureBookable(ctx, tx.Reads(), b.ResourceIDs()); err != nil {
			return err
		}
		report, err := uc.lockAndDetect(ctx, tx, b, b.Schedule())
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		created, err := audit.NewEntry(audit.NewEntryParams{
			BookingID: b.ID(),
			Action:    audit.ActionBookingCreated,
			Actor:     in.Actor,
			NewStatus: b.Status(),
			Metadata: map[string]any{
				"request_code": b.RequestCode(),
				"resource_ids": b.ResourceIDs(),
				"whitelisted":  whitelisted,
				"conflicts":    len(report.Conflicts),
			},
			Now: now,
		})
		if err != nil {
			return err
		}
		if err := tx.Audit().Record(ctx, created); err != nil {
			return err
		}

		if whitelisted && !report.HasConflicts() {
			if err := uc.transition(ctx, tx, b, booking.ActionAutoApprove, decision{
				actor:  in.Actor,
				reason: whitelistApprovalReason,
			}, now); err != nil {
				return err
			}
		}

		result = &BookingResult{Booking: b.Snapshot(), Conflicts: report.Conflicts, Nearby: report.Nearby}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := audit.ActionBookingCreated
	if result.Booking.Status == booking.StatusApproved {
		action = audit.ActionAutoApproved
	}
	uc.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", result.Booking.ID.String()),
		slog.String("request_code", result.Booking.RequestCode),
		slog.String("status", result.Booking.Status.String()),
		slog.Int("conflicts", len(result.Conflicts)))
	uc.notify(ctx, action, result.Booking, "")
	return result, nil
}

// decision carries what an Approval and its audit entry record.
type decision struct {
	actor          string
	reason         string
	overrideReason *string
	conflicts      []booking.Conflict
	metadata       map[string]any
}

// transition applies action to b and writes the status update, the Approval
// when the action produces one, and the audit entry, in that order.
func (uc *bookingCommandsImpl) transition(ctx context.Context, tx shared.Tx, b *booking.Booking, action booking.Action, d decision, now time.Time) error {
	from, err := b.Apply(action, now)
	if err != nil {
		return err
	}
	if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
		return err
	}
	if approvalAction, ok := booking.ApprovalActionFor(action); ok {
		snapshot := d.conflicts
		if snapshot == nil {
			snapshot = []booking.Conflict{}
		}
		if err := tx.Approvals().Create(ctx, &booking.Approval{
			ID:               uuid.New(),
			BookingID:        b.ID(),
			Action:           approvalAction,
			Actor:            d.actor,
			Reason:           d.reason,
			OverrideReason:   d.overrideReason,
			ConflictSnapshot: snapshot,
			CreatedAt:        now,
		}); err != nil {
			return err
		}
	}
	entry, err := audit.Transition(b.ID(), audit.ActionFor(action), d.actor, from, b.Status(), d.reason, d.metadata, now)
	if err != nil {
		return err
	}
	return tx.Audit().Record(ctx, entry)
}

// lockAndDetect serializes against every other writer on the booking's
// resources before reading conflicts for the given schedule.
func (uc *bookingCommandsImpl) lockAndDetect(ctx context.Context, tx shared.Tx, b *booking.Booking, schedule booking.Schedule) (*shared.ConflictReport, error) {
	ids := b.ResourceIDs()
	if err := tx.Locks().Acquire(ctx, ids); err != nil {
		return nil, err
	}
	self := b.ID()
	return uc.detector.Find(ctx, tx.Reads(), shared.ConflictQuery{
		Interval:         schedule.Interval,
		ResourceIDs:      ids,
		ExcludeBookingID: &self,
		Location:         locationOf(schedule),
	})
}

func (uc *bookingCommandsImpl) within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return shared.Classify(uc.uow.Within(ctx, fn))
}

func (uc *bookingCommandsImpl) notify(ctx context.Context, action audit.Action, snap booking.Snapshot, related string) {
	uc.notifier.Notify(ctx, CalendarEvent{
		Action:             action,
		Booking:            snap,
		RelatedRequestCode: related,
		OccurredAt:         uc.clock.Now(),
	})
}

func loadFor(ctx context.Context, reads shared.Reads, id uuid.UUID, action booking.Action) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.CanApply(action); err != nil {
		return nil, err
	}
	return b, nil
}

func ensureBookable(ctx context.Context, reads shared.Reads, ids []string) error {
	found, err := reads.ResourcesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*resource.Resource, len(found))
	for _, r := range found {
		byID[r.ID()] = r
	}
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return errs.NotFound(errs.Newf("resource %q not found", id))
		}
		if !r.Active() {
			return errs.Validationf("resource %q is inactive", id)
		}
	}
	return nil
}

func buildSchedule(date, start, end, tz string) (booking.Schedule, error) {
	startAt, err := localtime.Combine(date, start, tz)
	if err != nil {
		return booking.Schedule{}, err
	}
	endAt, err := localtime.Combine(date, end, tz)
	if err != nil {
		return booking.Schedule{}, err
	}
	interval, err := booking.NewInterval(startAt, endAt)
	if err != nil {
		return booking.Schedule{}, errs.Validation(err)
	}
	return booking.Schedule{
		Interval: interval,
		Local:    booking.LocalSlot{Date: date, Start: start, End: end, Timezone: tz},
	}, nil
}

func locationOf(s booking.Schedule) *time.Location {
	loc, err := time.LoadLocation(s.Local.Timezone)
	if err != nil || s.Local.Timezone == "" {
		return time.UTC
	}
	return loc
}
