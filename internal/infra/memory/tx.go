package memory

import (
	"context"
	"slices"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/infra"
	"range-booking/internal/usecase/shared"
)

type memTx struct {
	store *Store
	state *state
}

func (t *memTx) Bookings() shared.BookingRepository       { return &bookingRepo{tx: t} }
func (t *memTx) Approvals() shared.ApprovalRepository     { return &approvalRepo{tx: t} }
func (t *memTx) Reschedules() shared.RescheduleRepository { return &rescheduleRepo{tx: t} }
func (t *memTx) Audit() shared.AuditRecorder              { return &auditRecorder{tx: t} }
func (t *memTx) Locks() shared.ResourceLocker             { return &locker{tx: t} }
func (t *memTx) Reads() shared.Reads                      { return &stateReads{state: t.state} }

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.tx.store.trip(OpBookingCreate); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	st := r.tx.state
	if _, exists := st.bookings[b.ID()]; exists {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	for _, existing := range st.bookings {
		if existing.RequestCode == b.RequestCode() {
			return infra.WrapRepoErr("request code already assigned", nil, infra.KindDuplicateKey)
		}
	}
	for _, id := range b.ResourceIDs() {
		if _, ok := st.resources[id]; !ok {
			return infra.WrapRepoErr("booking references unknown resource "+id, nil, infra.KindForeignKeyViolated)
		}
	}
	st.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	if err := r.tx.store.trip(OpBookingUpdateStatus); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	stored, err := r.guard(b, from)
	if err != nil {
		return err
	}
	stored.Status = b.Status()
	stored.UpdatedAt = b.UpdatedAt()
	r.tx.state.bookings[b.ID()] = stored
	return nil
}

func (r *bookingRepo) UpdateSchedule(ctx context.Context, b *booking.Booking, from booking.Status) error {
	if err := r.tx.store.trip(OpBookingUpdateSchedule); err != nil {
		return infra.WrapRepoErr("failed to update booking schedule", err)
	}
	stored, err := r.guard(b, from)
	if err != nil {
		return err
	}
	stored.Status = b.Status()
	stored.Schedule = b.Schedule()
	stored.UpdatedAt = b.UpdatedAt()
	r.tx.state.bookings[b.ID()] = stored
	return nil
}

func (r *bookingRepo) guard(b *booking.Booking, from booking.Status) (booking.Snapshot, error) {
	stored, ok := r.tx.state.bookings[b.ID()]
	if !ok {
		return booking.Snapshot{}, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if stored.Status != from {
		return booking.Snapshot{}, infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindStaleState)
	}
	return stored, nil
}

type approvalRepo struct{ tx *memTx }

func (r *approvalRepo) Create(ctx context.Context, a *booking.Approval) error {
	if err := r.tx.store.trip(OpApprovalCreate); err != nil {
		return infra.WrapRepoErr("failed to create approval", err)
	}
	for _, existing := range r.tx.state.approvals {
		if existing.BookingID == a.BookingID {
			return infra.WrapRepoErr("booking already has an approval", nil, infra.KindDuplicateKey)
		}
	}
	cp := *a
	cp.ConflictSnapshot = slices.Clone(a.ConflictSnapshot)
	r.tx.state.approvals = append(r.tx.state.approvals, cp)
	return nil
}

type rescheduleRepo struct{ tx *memTx }

func (r *rescheduleRepo) Create(ctx context.Context, rs *booking.Reschedule) error {
	if err := r.tx.store.trip(OpRescheduleCreate); err != nil {
		return infra.WrapRepoErr("failed to create reschedule", err)
	}
	r.tx.state.reschedules = append(r.tx.state.reschedules, *rs)
	return nil
}

type auditRecorder struct{ tx *memTx }

func (r *auditRecorder) Record(ctx context.Context, e *audit.Entry) error {
	if err := r.tx.store.trip(OpAuditRecord); err != nil {
		return infra.WrapRepoErr("failed to record audit entry", err)
	}
	st := r.tx.state
	if _, ok := st.bookings[e.BookingID]; !ok {
		return infra.WrapRepoErr("audit entry references unknown booking", nil, infra.KindForeignKeyViolated)
	}
	st.seq++
	cp := *e
	cp.Metadata = copyMetadata(e.Metadata)
	st.audit = append(st.audit, auditRow{seq: st.seq, entry: cp})
	return nil
}

// locker only checks for cancellation; Within already serializes writers.
type locker struct{ tx *memTx }

func (l *locker) Acquire(ctx context.Context, resourceIDs []string) error {
	if err := l.tx.store.trip(OpLocksAcquire); err != nil {
		return infra.WrapRepoErr("failed to acquire resource locks", err)
	}
	return ctx.Err()
}
