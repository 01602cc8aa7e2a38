package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/infra"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// stateReads reads a state the caller already guards.
type stateReads struct {
	state *state
}

func (r *stateReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	snap, ok := r.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
	}
	return booking.ReconstructBooking(snap), nil
}

func (r *stateReads) ResourcesByIDs(ctx context.Context, ids []string) ([]*resource.Resource, error) {
	out := make([]*resource.Resource, 0, len(ids))
	for _, id := range ids {
		if res, ok := r.state.resources[id]; ok {
			out = append(out, res)
		}
	}
	slices.SortFunc(out, func(a, b *resource.Resource) int { return strings.Compare(a.ID(), b.ID()) })
	return out, nil
}

func (r *stateReads) ActiveBookings(ctx context.Context, resourceIDs []string, window booking.Interval) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, snap := range r.state.bookings {
		if !snap.Status.IsActive() || !snap.Schedule.Interval.Overlaps(window) {
			continue
		}
		if !sharesAny(snap.ResourceIDs, resourceIDs) {
			continue
		}
		out = append(out, booking.ReconstructBooking(snap))
	}
	sortBookings(out)
	return out, nil
}

func (r *stateReads) BookingsByResource(ctx context.Context, resourceID string, filter shared.ResourceBookingFilter) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, snap := range r.state.bookings {
		if !slices.Contains(snap.ResourceIDs, resourceID) {
			continue
		}
		iv := snap.Schedule.Interval
		if filter.From != nil && !iv.End().After(*filter.From) {
			continue
		}
		if filter.To != nil && !iv.Start().Before(*filter.To) {
			continue
		}
		if filter.Status != nil && snap.Status != *filter.Status {
			continue
		}
		out = append(out, booking.ReconstructBooking(snap))
	}
	sortBookings(out)
	return out, nil
}

func (r *stateReads) AuditTrail(ctx context.Context, bookingID uuid.UUID) ([]*audit.Entry, error) {
	var rows []auditRow
	for _, row := range r.state.audit {
		if row.entry.BookingID == bookingID {
			rows = append(rows, row)
		}
	}
	return newestFirst(rows, 0), nil
}

func (r *stateReads) AuditSearch(ctx context.Context, f audit.Filter) ([]*audit.Entry, error) {
	var rows []auditRow
	for _, row := range r.state.audit {
		e := row.entry
		if f.Actor != "" && e.Actor != f.Actor {
			continue
		}
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		if f.From != nil && e.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && e.CreatedAt.After(*f.To) {
			continue
		}
		rows = append(rows, row)
	}
	return newestFirst(rows, f.Limit), nil
}

// committedReads takes the store's read lock for each call.
type committedReads struct {
	store *Store
}

func (r *committedReads) with() (*stateReads, func()) {
	r.store.mu.RLock()
	return &stateReads{state: r.store.state}, r.store.mu.RUnlock
}

func (r *committedReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	s, done := r.with()
	defer done()
	return s.BookingByID(ctx, id)
}

func (r *committedReads) ResourcesByIDs(ctx context.Context, ids []string) ([]*resource.Resource, error) {
	s, done := r.with()
	defer done()
	return s.ResourcesByIDs(ctx, ids)
}

func (r *committedReads) ActiveBookings(ctx context.Context, resourceIDs []string, window booking.Interval) ([]*booking.Booking, error) {
	s, done := r.with()
	defer done()
	return s.ActiveBookings(ctx, resourceIDs, window)
}

func (r *committedReads) BookingsByResource(ctx context.Context, resourceID string, filter shared.ResourceBookingFilter) ([]*booking.Booking, error) {
	s, done := r.with()
	defer done()
	return s.BookingsByResource(ctx, resourceID, filter)
}

func (r *committedReads) AuditTrail(ctx context.Context, bookingID uuid.UUID) ([]*audit.Entry, error) {
	s, done := r.with()
	defer done()
	return s.AuditTrail(ctx, bookingID)
}

func (r *committedReads) AuditSearch(ctx context.Context, f audit.Filter) ([]*audit.Entry, error) {
	s, done := r.with()
	defer done()
	return s.AuditSearch(ctx, f)
}

func sharesAny(a, b []string) bool {
	for _, id := range a {
		if slices.Contains(b, id) {
			return true
		}
	}
	return false
}

func sortBookings(list []*booking.Booking) {
	slices.SortFunc(list, func(a, b *booking.Booking) int {
		if c := a.Interval().Start().Compare(b.Interval().Start()); c != 0 {
			return c
		}
		return strings.Compare(a.RequestCode(), b.RequestCode())
	})
}

func newestFirst(rows []auditRow, limit int) []*audit.Entry {
	slices.SortFunc(rows, func(a, b auditRow) int {
		if c := b.entry.CreatedAt.Compare(a.entry.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]*audit.Entry, 0, len(rows))
	for _, row := range rows {
		e := row.entry
		e.Metadata = copyMetadata(row.entry.Metadata)
		out = append(out, &e)
	}
	return out
}
