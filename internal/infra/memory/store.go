// Package memory is a process-local store implementing the unit of work
// with copy-on-commit semantics. Writers are fully serialized.
package memory

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"strings"
	"sync"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailOn.
const (
	OpBookingCreate         = "bookings.create"
	OpBookingUpdateStatus   = "bookings.update_status"
	OpBookingUpdateSchedule = "bookings.update_schedule"
	OpApprovalCreate        = "approvals.create"
	OpRescheduleCreate      = "reschedules.create"
	OpAuditRecord           = "audit.record"
	OpLocksAcquire          = "locks.acquire"
)

type auditRow struct {
	seq   int64
	entry audit.Entry
}

type state struct {
	resources   map[string]*resource.Resource
	bookings    map[uuid.UUID]booking.Snapshot
	approvals   []booking.Approval
	reschedules []booking.Reschedule
	audit       []auditRow
	seq         int64
}

func (s *state) clone() *state {
	return &state{
		resources:   maps.Clone(s.resources),
		bookings:    maps.Clone(s.bookings),
		approvals:   slices.Clone(s.approvals),
		reschedules: slices.Clone(s.reschedules),
		audit:       slices.Clone(s.audit),
		seq:         s.seq,
	}
}

type fault struct {
	skip int
	err  error
}

type Store struct {
	mu        sync.RWMutex
	state     *state
	whitelist map[string]struct{}
	faults    map[string]*fault
}

func NewStore() *Store {
	return &Store{
		state: &state{
			resources: map[string]*resource.Resource{},
			bookings:  map[uuid.UUID]booking.Snapshot{},
		},
		whitelist: map[string]struct{}{},
		faults:    map[string]*fault{},
	}
}

// Within runs fn against a private copy of the state and publishes the copy
// only if fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	tx := &memTx{store: s, state: work}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = work
	return nil
}

// Reads serves committed state. It must not be used from inside Within.
func (s *Store) Reads() shared.Reads {
	return &committedReads{store: s}
}

// FailOn makes the (skip+1)-th call of op fail with err. Used to prove that
// a failed transaction leaves no trace.
func (s *Store) FailOn(op string, skip int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = &fault{skip: skip, err: err}
}

func (s *Store) SeedResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.resources[r.ID()] = r
}

// SeedBooking stores a booking as-is, without audit entries.
func (s *Store) SeedBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = b.Snapshot()
}

func (s *Store) AddWhitelistedOfficer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.whitelist[normalizeOfficer(name)] = struct{}{}
}

func (s *Store) IsWhitelisted(ctx context.Context, officerName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.whitelist[normalizeOfficer(officerName)]
	return ok, nil
}

// Approvals returns committed approvals for a booking in insertion order.
func (s *Store) Approvals(bookingID uuid.UUID) []booking.Approval {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []booking.Approval
	for _, a := range s.state.approvals {
		if a.BookingID == bookingID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) Reschedules(bookingID uuid.UUID) []booking.Reschedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []booking.Reschedule
	for _, r := range s.state.reschedules {
		if r.BookingID == bookingID {
			out = append(out, r)
		}
	}
	return out
}

// AuditLen counts every committed audit entry across bookings.
func (s *Store) AuditLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.audit)
}

// trip must be called with s.mu held.
func (s *Store) trip(op string) error {
	f, ok := s.faults[op]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		return nil
	}
	delete(s.faults, op)
	return f.err
}

func normalizeOfficer(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// copyMetadata mimics a JSONB round trip so callers never share maps with
// the store and see the same value types a database would return.
func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return maps.Clone(m)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return maps.Clone(m)
	}
	return out
}
