package queries

import (
	"context"

	"range-booking/internal/domain/booking"
	"range-booking/internal/pkg/config"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/pkg/localtime"
	"range-booking/internal/pkg/tracing"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByResource(ctx context.Context, resourceID string, filter shared.ResourceBookingFilter) ([]*BookingView, error)
	// CheckConflicts runs the detector speculatively for a slot that need not
	// belong to any booking.
	CheckConflicts(ctx context.Context, in ConflictCheckInput) (*shared.ConflictReport, error)
	Suggest(ctx context.Context, id uuid.UUID, days int) ([]Suggestion, error)
}

type bookingQueriesImpl struct {
	uow      shared.UnitOfWork
	detector *shared.ConflictDetector
	cfg      config.BookingConfig
}

func NewBookingQueries(uow shared.UnitOfWork, detector *shared.ConflictDetector, cfg config.BookingConfig) BookingQueries {
	return &bookingQueriesImpl{uow: uow, detector: detector, cfg: cfg}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.uow.Reads().BookingByID(ctx, id)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return NewBookingView(b.Snapshot()), nil
}

func (q *bookingQueriesImpl) ListByResource(ctx context.Context, resourceID string, filter shared.ResourceBookingFilter) ([]*BookingView, error) {
	if err := shared.RequireText("resource_id", resourceID); err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return nil, errs.Validationf("'to' must be after 'from'")
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, errs.Validation(booking.ErrInvalidStatus)
	}
	found, err := q.uow.Reads().ResourcesByIDs(ctx, []string{resourceID})
	if err != nil {
		return nil, shared.Classify(err)
	}
	if len(found) == 0 {
		return nil, errs.NotFound(errs.Newf("resource %q not found", resourceID))
	}

	list, err := q.uow.Reads().BookingsByResource(ctx, resourceID, filter)
	if err != nil {
		return nil, shared.Classify(err)
	}
	views := make([]*BookingView, 0, len(list))
	for _, b := range list {
		views = append(views, NewBookingView(b.Snapshot()))
	}
	return views, nil
}

func (q *bookingQueriesImpl) CheckConflicts(ctx context.Context, in ConflictCheckInput) (_ *shared.ConflictReport, err error) {
	ctx, span := tracing.Start(ctx, "booking.check_conflicts", attribute.Int("booking.resource_count", len(in.ResourceIDs)))
	defer func() { tracing.End(span, err) }()

	if err = shared.ValidateInput(in); err != nil {
		return nil, err
	}
	tz := in.Timezone
	if tz == "" {
		tz = q.cfg.DefaultTimezone
	}
	loc, err := localtime.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	start, err := localtime.Combine(in.Date, in.StartTime, tz)
	if err != nil {
		return nil, err
	}
	end, err := localtime.Combine(in.Date, in.EndTime, tz)
	if err != nil {
		return nil, err
	}
	interval, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, errs.Validation(err)
	}

	report, err := q.detector.Find(ctx, q.uow.Reads(), shared.ConflictQuery{
		Interval:         interval,
		ResourceIDs:      in.ResourceIDs,
		ExcludeBookingID: in.ExcludeBookingID,
		Location:         loc,
	})
	return report, shared.Classify(err)
}

// Suggest proposes the booking's local start time on each of the next days,
// keeping the original duration exactly. Days on which that start time is
// skipped by a DST transition are left out. It never writes.
func (q *bookingQueriesImpl) Suggest(ctx context.Context, id uuid.UUID, days int) (_ []Suggestion, err error) {
	ctx, span := tracing.Start(ctx, "booking.suggest", attribute.String("booking.id", id.String()))
	defer func() { tracing.End(span, err) }()

	if days <= 0 {
		days = q.cfg.SuggestionDays
	}
	if days > q.cfg.MaxSuggestDays {
		days = q.cfg.MaxSuggestDays
	}
	span.SetAttributes(attribute.Int("booking.suggestion_days", days))

	reads := q.uow.Reads()
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, shared.Classify(err)
	}
	local := b.Schedule().Local
	loc, err := localtime.LoadLocation(local.Timezone)
	if err != nil {
		return nil, err
	}
	duration := b.Interval().Duration()
	self := b.ID()

	out := make([]Suggestion, 0, days)
	for offset := 1; offset <= days; offset++ {
		date, err := localtime.AddDays(local.Date, offset)
		if err != nil {
			return nil, err
		}
		start, err := localtime.Combine(date, local.Start, local.Timezone)
		if errs.Is(err, localtime.ErrNonexistentTime) {
			continue
		}
		if err != nil {
			return nil, err
		}
		interval, err := booking.NewInterval(start, start.Add(duration))
		if err != nil {
			return nil, errs.Validation(err)
		}
		report, err := q.detector.Find(ctx, reads, shared.ConflictQuery{
			Interval:         interval,
			ResourceIDs:      b.ResourceIDs(),
			ExcludeBookingID: &self,
			Location:         loc,
		})
		if err != nil {
			return nil, shared.Classify(err)
		}
		out = append(out, Suggestion{
			Date:      date,
			StartTime: local.Start,
			EndTime:   interval.End().In(loc).Format("15:04"),
			Start:     interval.Start(),
			End:       interval.End(),
			Available: !report.HasConflicts(),
			Conflicts: report.Conflicts,
		})
	}
	return out, nil
}
