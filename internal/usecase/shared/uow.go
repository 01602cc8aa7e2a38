package shared

import (
	"context"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one atomic transaction: every write commits or none do.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads serves lookups outside any write transaction.
	Reads() Reads
}

type Tx interface {
	Bookings() BookingRepository
	Approvals() ApprovalRepository
	Reschedules() RescheduleRepository
	Audit() AuditRecorder
	Locks() ResourceLocker
	Reads() Reads
}

// Reads returns domain objects; callers own the returned values.
type Reads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ResourcesByIDs(ctx context.Context, ids []string) ([]*resource.Resource, error)
	// ActiveBookings returns pending/approved bookings overlapping window on
	// any of resourceIDs, ordered by start then request code.
	ActiveBookings(ctx context.Context, resourceIDs []string, window booking.Interval) ([]*booking.Booking, error)
	BookingsByResource(ctx context.Context, resourceID string, filter ResourceBookingFilter) ([]*booking.Booking, error)
	AuditTrail(ctx context.Context, bookingID uuid.UUID) ([]*audit.Entry, error)
	AuditSearch(ctx context.Context, filter audit.Filter) ([]*audit.Entry, error)
}

type ResourceBookingFilter struct {
	From   *time.Time
	To     *time.Time
	Status *booking.Status
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// UpdateStatus only succeeds when the stored status still equals from.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
	UpdateSchedule(ctx context.Context, b *booking.Booking, from booking.Status) error
}

type ApprovalRepository interface {
	Create(ctx context.Context, a *booking.Approval) error
}

type RescheduleRepository interface {
	Create(ctx context.Context, r *booking.Reschedule) error
}

// AuditRecorder appends within the caller's transaction. It has no update
// or delete.
type AuditRecorder interface {
	Record(ctx context.Context, e *audit.Entry) error
}

type ResourceLocker interface {
	// Acquire blocks until the transaction holds every resource lock.
	Acquire(ctx context.Context, resourceIDs []string) error
}

// OfficerWhitelist decides whether an officer's bookings skip manual review.
type OfficerWhitelist interface {
	IsWhitelisted(ctx context.Context, officerName string) (bool, error)
}
