package shared

import (
	"context"
	"slices"
	"strings"
	"time"

	"range-booking/internal/domain/booking"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/pkg/localtime"

	"github.com/google/uuid"
)

type ConflictQuery struct {
	Interval         booking.Interval
	ResourceIDs      []string
	ExcludeBookingID *uuid.UUID
	// Location decides which calendar day "nearby" covers; nil means UTC.
	Location *time.Location
}

type ConflictReport struct {
	Conflicts []booking.Conflict
	Nearby    []booking.NearbyBooking
}

func (r *ConflictReport) HasConflicts() bool {
	return r != nil && len(r.Conflicts) > 0
}

// ConflictDetector is a pure read over the active bookings visible through
// Reads. It performs a single store read per call.
type ConflictDetector struct{}

func NewConflictDetector() *ConflictDetector {
	return &ConflictDetector{}
}

func (d *ConflictDetector) Find(ctx context.Context, reads Reads, q ConflictQuery) (*ConflictReport, error) {
	if q.Interval.IsZero() {
		return nil, errs.Validation(booking.ErrInvalidInterval)
	}
	ids, err := booking.NormalizeResourceIDs(q.ResourceIDs)
	if err != nil {
		return nil, errs.Validation(err)
	}

	dayStart, _ := localtime.DayBounds(q.Interval.Start(), q.Location)
	_, dayEnd := localtime.DayBounds(q.Interval.End().Add(-time.Nanosecond), q.Location)
	day, err := booking.NewInterval(dayStart, dayEnd)
	if err != nil {
		return nil, errs.Validation(err)
	}
	window := day.Cover(q.Interval)

	candidates, err := reads.ActiveBookings(ctx, ids, window)
	if err != nil {
		return nil, err
	}

	report := &ConflictReport{
		Conflicts: []booking.Conflict{},
		Nearby:    []booking.NearbyBooking{},
	}
	for _, other := range candidates {
		if q.ExcludeBookingID != nil && other.ID() == *q.ExcludeBookingID {
			continue
		}
		if !other.IsActive() {
			continue
		}
		shared := other.SharedResources(ids)
		if len(shared) == 0 {
			continue
		}
		if other.Interval().Overlaps(q.Interval) {
			report.Conflicts = append(report.Conflicts, booking.ConflictsWith(other, shared)...)
			continue
		}
		report.Nearby = append(report.Nearby, booking.NearbyBooking{
			BookingID:   other.ID(),
			RequestCode: other.RequestCode(),
			Status:      other.Status(),
			ResourceIDs: shared,
			GroupName:   other.Requester().GroupName,
			Start:       other.Interval().Start(),
			End:         other.Interval().End(),
		})
	}

	slices.SortFunc(report.Conflicts, compareConflicts)
	slices.SortFunc(report.Nearby, func(a, b booking.NearbyBooking) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return strings.Compare(a.RequestCode, b.RequestCode)
	})
	return report, nil
}

func compareConflicts(a, b booking.Conflict) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	if c := strings.Compare(a.RequestCode, b.RequestCode); c != 0 {
		return c
	}
	return strings.Compare(a.ResourceID, b.ResourceID)
}
