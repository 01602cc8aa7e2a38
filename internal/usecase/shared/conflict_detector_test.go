//go:build unit

package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/infra/memory"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/usecase/shared"
	"range-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReads counts calls to ActiveBookings.
type countingReads struct {
	shared.Reads
	calls int
	err   error
}

func (r *countingReads) ActiveBookings(ctx context.Context, ids []string, window booking.Interval) ([]*booking.Booking, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.Reads.ActiveBookings(ctx, ids, window)
}

func seed(t *testing.T, store *memory.Store, b *builder.BookingBuilder) *booking.Booking {
	t.Helper()
	bk, err := b.WithID(uuid.New()).BuildDomain()
	require.NoError(t, err)
	store.SeedBooking(bk)
	return bk
}

func interval(t *testing.T, date, start, end, tz string) booking.Interval {
	t.Helper()
	s, err := builder.NewBookingBuilder().WithSlot(date, start, end).WithTimezone(tz).BuildSchedule()
	require.NoError(t, err)
	return s.Interval
}

func newStore() *memory.Store {
	store := memory.NewStore()
	for _, id := range []string{"bay-1", "bay-2", "bay-3"} {
		store.SeedResource(builder.NewResource(id, resource.TypeBay))
	}
	return store
}

func TestConflictDetector_Find(t *testing.T) {
	ctx := context.Background()
	detector := shared.NewConflictDetector()

	t.Run("one conflict per shared resource", func(t *testing.T) {
		store := newStore()
		other := seed(t, store, builder.NewBookingBuilder().WithResources("bay-1", "bay-2", "bay-3").AsApproved())
		reads := &countingReads{Reads: store.Reads()}

		report, err := detector.Find(ctx, reads, shared.ConflictQuery{
			Interval:    interval(t, "2025-06-14", "10:00", "11:00", "UTC"),
			ResourceIDs: []string{"bay-2", "bay-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, reads.calls)
		require.Len(t, report.Conflicts, 2)
		assert.Equal(t, "bay-1", report.Conflicts[0].ResourceID)
		assert.Equal(t, "bay-2", report.Conflicts[1].ResourceID)
		assert.Equal(t, other.ID(), report.Conflicts[0].BookingID)
		assert.Equal(t, booking.StatusApproved, report.Conflicts[0].Status)
		assert.True(t, report.HasConflicts())
		assert.Empty(t, report.Nearby)
	})

	t.Run("touching intervals are nearby, not conflicts", func(t *testing.T) {
		store := newStore()
		seed(t, store, builder.NewBookingBuilder().WithSlot("2025-06-14", "12:00", "14:00"))
		seed(t, store, builder.NewBookingBuilder().WithSlot("2025-06-14", "07:00", "09:00"))

		report, err := detector.Find(ctx, store.Reads(), shared.ConflictQuery{
			Interval:    interval(t, "2025-06-14", "09:00", "12:00", "UTC"),
			ResourceIDs: []string{"bay-1"},
		})
		require.NoError(t, err)
		assert.False(t, report.HasConflicts())
		require.Len(t, report.Nearby, 2)
		assert.Equal(t, "07:00", report.Nearby[0].Start.Format("15:04"))
		assert.Equal(t, []string{"bay-1"}, report.Nearby[0].ResourceIDs)
	})

	t.Run("inactive and unrelated bookings are ignored", func(t *testing.T) {
		store := newStore()
		seed(t, store, builder.NewBookingBuilder().WithStatus(booking.StatusDenied))
		seed(t, store, builder.NewBookingBuilder().WithStatus(booking.StatusCancelled))
		seed(t, store, builder.NewBookingBuilder().WithStatus(booking.StatusBumped))
		seed(t, store, builder.NewBookingBuilder().WithResources("bay-3"))
		seed(t, store, builder.NewBookingBuilder().WithSlot("2025-06-15", "09:00", "12:00"))

		report, err := detector.Find(ctx, store.Reads(), shared.ConflictQuery{
			Interval:    interval(t, "2025-06-14", "09:00", "12:00", "UTC"),
			ResourceIDs: []string{"bay-1"},
		})
		require.NoError(t, err)
		assert.Empty(t, report.Conflicts)
		assert.Empty(t, report.Nearby)
	})

	t.Run("excluded booking never conflicts with itself", func(t *testing.T) {
		store := newStore()
		self := seed(t, store, builder.NewBookingBuilder())
		id := self.ID()

		report, err := detector.Find(ctx, store.Reads(), shared.ConflictQuery{
			Interval:         self.Interval(),
			ResourceIDs:      self.ResourceIDs(),
			ExcludeBookingID: &id,
		})
		require.NoError(t, err)
		assert.Empty(t, report.Conflicts)
	})

	t.Run("nearby follows the local calendar day", func(t *testing.T) {
		store := newStore()
		// 23:00 UTC on the 13th is 19:00 in New York, the same local day as the query.
		seed(t, store, builder.NewBookingBuilder().WithSlot("2025-06-13", "23:00", "23:30"))
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		report, err := detector.Find(ctx, store.Reads(), shared.ConflictQuery{
			Interval:    interval(t, "2025-06-13", "09:00", "10:00", "America/New_York"),
			ResourceIDs: []string{"bay-1"},
			Location:    loc,
		})
		require.NoError(t, err)
		assert.Len(t, report.Nearby, 1)

		utcReport, err := detector.Find(ctx, store.Reads(), shared.ConflictQuery{
			Interval:    interval(t, "2025-06-14", "09:00", "10:00", "UTC"),
			ResourceIDs: []string{"bay-1"},
		})
		require.NoError(t, err)
		assert.Empty(t, utcReport.Nearby)
	})

	t.Run("invalid query", func(t *testing.T) {
		store := newStore()
		_, err := detector.Find(ctx, store.Reads(), shared.ConflictQuery{ResourceIDs: []string{"bay-1"}})
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = detector.Find(ctx, store.Reads(), shared.ConflictQuery{
			Interval: interval(t, "2025-06-14", "09:00", "10:00", "UTC"),
		})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("store error propagates", func(t *testing.T) {
		store := newStore()
		boom := errors.New("connection reset")
		reads := &countingReads{Reads: store.Reads(), err: boom}

		_, err := detector.Find(ctx, reads, shared.ConflictQuery{
			Interval:    interval(t, "2025-06-14", "09:00", "10:00", "UTC"),
			ResourceIDs: []string{"bay-1"},
		})
		assert.ErrorIs(t, err, boom)
	})
}
