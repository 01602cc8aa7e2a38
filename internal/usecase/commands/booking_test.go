//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/infra/memory"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/usecase/commands"
	"range-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending booking with creation audit", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.cmds.Create(ctx, slot("R2", "R1", "R2").BuildCreateInput())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Booking.Status)
		assert.Equal(t, []string{"R1", "R2"}, res.Booking.ResourceIDs)
		assert.Empty(t, res.Conflicts)

		trail := f.trail(t, res.Booking)
		require.Len(t, trail, 1)
		assert.Equal(t, string(audit.ActionBookingCreated), trail[0].Action)
		assert.Nil(t, trail[0].OldStatus)
		assert.Equal(t, "pending", trail[0].NewStatus)
		assert.Equal(t, []audit.Action{audit.ActionBookingCreated}, f.notifier.actions())
	})

	t.Run("success: conflicts are reported but do not block creation", func(t *testing.T) {
		f := newFixture(t)
		a := f.createApproved(t, slot("R1"))

		res, err := f.cmds.Create(ctx, slot("R1").WithSlot("2025-06-14", "10:00", "13:00").BuildCreateInput())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Booking.Status)
		require.Len(t, res.Conflicts, 1)
		assert.Equal(t, a.ID, res.Conflicts[0].BookingID)
	})

	t.Run("whitelisted officer is auto-approved", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddWhitelistedOfficer("  sam ortiz ")

		res, err := f.cmds.Create(ctx, slot("R1").BuildCreateInput())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, res.Booking.Status)
		assert.True(t, res.Booking.Officer.Whitelisted)
		assert.Equal(t, []string{"auto_approved", "booking_created"}, actionsOf(f.trail(t, res.Booking)))

		approvals := f.store.Approvals(res.Booking.ID)
		require.Len(t, approvals, 1)
		assert.Equal(t, booking.ApprovalApprove, approvals[0].Action)
		assert.Equal(t, []audit.Action{audit.ActionAutoApproved}, f.notifier.actions())
	})

	t.Run("whitelisted officer stays pending when the slot is contested", func(t *testing.T) {
		f := newFixture(t)
		f.createApproved(t, slot("R1").WithOfficer("Someone Else"))
		f.store.AddWhitelistedOfficer("Sam Ortiz")

		res, err := f.cmds.Create(ctx, slot("R1").BuildCreateInput())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Booking.Status)
		assert.True(t, res.Booking.Officer.Whitelisted)
		assert.Empty(t, f.store.Approvals(res.Booking.ID))
	})

	t.Run("concurrent whitelisted requests for one slot approve only one", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddWhitelistedOfficer("Sam Ortiz")

		const n = 4
		var wg sync.WaitGroup
		results := make([]*commands.BookingResult, n)
		failures := make([]error, n)
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], failures[i] = f.cmds.Create(ctx, slot("R3").BuildCreateInput())
			}(i)
		}
		wg.Wait()

		approved := 0
		for i := range n {
			require.NoError(t, failures[i])
			switch results[i].Booking.Status {
			case booking.StatusApproved:
				approved++
			case booking.StatusPending:
				assert.NotEmpty(t, results[i].Conflicts, "a losing request must see the winner as a conflict")
			default:
				t.Fatalf("unexpected status %s", results[i].Booking.Status)
			}
		}
		assert.Equal(t, 1, approved)
	})

	testCases := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		kind   error
	}{
		{name: "attestation incomplete", mutate: func(b *builder.BookingBuilder) { b.Insurance = false }, kind: errs.ErrValidation},
		{name: "malformed time", mutate: func(b *builder.BookingBuilder) { b.StartTime = "9am" }, kind: errs.ErrValidation},
		{name: "hour out of range", mutate: func(b *builder.BookingBuilder) { b.EndTime = "24:00" }, kind: errs.ErrValidation},
		{name: "end before start", mutate: func(b *builder.BookingBuilder) { b.WithSlot("2025-06-14", "12:00", "09:00") }, kind: errs.ErrValidation},
		{name: "end equals start", mutate: func(b *builder.BookingBuilder) { b.WithSlot("2025-06-14", "09:00", "09:00") }, kind: errs.ErrValidation},
		{name: "unknown timezone", mutate: func(b *builder.BookingBuilder) { b.Timezone = "Mars/Olympus" }, kind: errs.ErrValidation},
		{name: "start inside a DST gap", mutate: func(b *builder.BookingBuilder) {
			b.WithSlot("2025-03-09", "02:15", "04:00").WithTimezone("America/New_York")
		}, kind: errs.ErrValidation},
		{name: "empty resource set", mutate: func(b *builder.BookingBuilder) { b.WithResources() }, kind: errs.ErrValidation},
		{name: "invalid email", mutate: func(b *builder.BookingBuilder) { b.ContactEmail = "not-an-email" }, kind: errs.ErrValidation},
		{name: "missing actor", mutate: func(b *builder.BookingBuilder) { b.Actor = "" }, kind: errs.ErrValidation},
		{name: "unknown resource", mutate: func(b *builder.BookingBuilder) { b.WithResources("R1", "R9") }, kind: errs.ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			f := newFixture(t)

			res, err := f.cmds.Create(ctx, builder.NewBookingBuilder().WithResources("R1").With(tc.mutate).BuildCreateInput())

			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tc.kind), "expected kind %v, got %v", tc.kind, err)
			assert.Zero(t, f.store.AuditLen())
			assert.Empty(t, f.notifier.actions())
		})
	}

	t.Run("error: inactive resource", func(t *testing.T) {
		f := newFixture(t)
		closed := builder.NewResource("R5", resource.TypeBuilding)
		closed.Deactivate(builder.DefaultNow)
		f.store.SeedResource(closed)

		_, err := f.cmds.Create(ctx, slot("R5").BuildCreateInput())

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

// Booking A on R1 09:00-12:00 approved; B on R1 10:00-13:00 pending.
func TestApprove_ConflictThenOverride(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.createApproved(t, slot("R1"))
	b := f.create(t, slot("R1").WithSlot("2025-06-14", "10:00", "13:00"))
	f.notifier.reset()

	before, err := f.queries.GetByID(ctx, b.ID)
	require.NoError(t, err)
	auditBefore := f.store.AuditLen()

	_, err = f.cmds.Approve(ctx, b.ID, commands.DecisionInput{Actor: "approver", Reason: "looks fine"})

	var conflictErr *booking.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.True(t, errs.Is(err, errs.ErrConflict))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, a.ID, conflictErr.Conflicts[0].BookingID)
	assert.Equal(t, a.RequestCode, conflictErr.Conflicts[0].RequestCode)
	assert.Equal(t, "R1", conflictErr.Conflicts[0].ResourceID)

	after, err := f.queries.GetByID(ctx, b.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("rejected approve changed the booking (-before +after):\n%s", diff)
	}
	assert.Equal(t, auditBefore, f.store.AuditLen())
	assert.Empty(t, f.store.Approvals(b.ID))
	assert.Empty(t, f.notifier.actions())

	f.clock.Add(time.Minute)
	res, err := f.cmds.OverrideApprove(ctx, b.ID, commands.OverrideInput{
		Actor:          "range-master",
		Reason:         "shared lane agreement",
		OverrideReason: "both groups agreed to split the bay",
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, res.Booking.Status)
	assert.Equal(t, "approved", f.status(t, a))
	assert.Equal(t, "approved", f.status(t, b))

	approvals := f.store.Approvals(b.ID)
	require.Len(t, approvals, 1)
	assert.Equal(t, booking.ApprovalOverrideApprove, approvals[0].Action)
	require.NotNil(t, approvals[0].OverrideReason)
	assert.Equal(t, "both groups agreed to split the bay", *approvals[0].OverrideReason)
	require.Len(t, approvals[0].ConflictSnapshot, 1)
	assert.Equal(t, a.ID, approvals[0].ConflictSnapshot[0].BookingID)

	trail := f.trail(t, b)
	require.Len(t, trail, 2)
	assert.Equal(t, "override_approved", trail[0].Action)
	require.NotNil(t, trail[0].OldStatus)
	assert.Equal(t, "pending", *trail[0].OldStatus)
	assert.Equal(t, "approved", trail[0].NewStatus)

	_, err = f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "range-master", OverrideReason: "again"})
	var stateErr *booking.InvalidStateTransitionError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, booking.StatusApproved, stateErr.Current)
	assert.Equal(t, booking.ActionOverrideBump, stateErr.Action)
	assert.Equal(t, "approved", f.status(t, a))
}

func TestOverrideBump(t *testing.T) {
	ctx := context.Background()

	t.Run("bumps the approved conflict and approves the request", func(t *testing.T) {
		f := newFixture(t)
		a := f.createApproved(t, slot("R1"))
		b := f.create(t, slot("R1").WithSlot("2025-06-14", "10:00", "13:00"))
		f.notifier.reset()
		f.clock.Add(time.Minute)

		res, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{
			Actor:          "range-master",
			OverrideReason: "department qualification has priority",
		})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, res.Booking.Status)
		require.Len(t, res.Bumped, 1)
		assert.Equal(t, a.ID, res.Bumped[0].ID)
		assert.Equal(t, "bumped", f.status(t, a))
		assert.Equal(t, "approved", f.status(t, b))

		aTrail := f.trail(t, a)
		assert.Equal(t, []string{"bumped", "approved", "booking_created"}, actionsOf(aTrail))
		assert.Equal(t, b.RequestCode, aTrail[0].Metadata["bumped_by_request_code"])
		assert.Equal(t, b.ID.String(), aTrail[0].Metadata["bumped_by_booking_id"])
		require.NotNil(t, aTrail[0].OldStatus)
		assert.Equal(t, "approved", *aTrail[0].OldStatus)
		assert.Equal(t, "bumped", aTrail[0].NewStatus)

		bTrail := f.trail(t, b)
		assert.Equal(t, []string{"override_and_bump", "booking_created"}, actionsOf(bTrail))
		assert.Equal(t, []any{a.RequestCode}, bTrail[0].Metadata["bumped_request_codes"])
		assert.NotEqual(t, aTrail[0].ID, bTrail[0].ID)

		bApprovals := f.store.Approvals(b.ID)
		require.Len(t, bApprovals, 1)
		assert.Equal(t, booking.ApprovalOverrideBump, bApprovals[0].Action)
		assert.Len(t, f.store.Approvals(a.ID), 1, "bumped booking keeps only its own approval")

		assert.Equal(t, []audit.Action{audit.ActionOverrideAndBump, audit.ActionBumped}, f.notifier.actions())
		assert.Equal(t, b.RequestCode, f.notifier.events[1].RelatedRequestCode)
	})

	t.Run("pending conflicts are left untouched", func(t *testing.T) {
		f := newFixture(t)
		a := f.createApproved(t, slot("R1"))
		p := f.create(t, slot("R1").WithSlot("2025-06-14", "11:00", "12:30"))
		b := f.create(t, slot("R1").WithSlot("2025-06-14", "10:00", "13:00"))

		res, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "rm", OverrideReason: "priority"})

		require.NoError(t, err)
		assert.Len(t, res.Bumped, 1)
		assert.Equal(t, "bumped", f.status(t, a))
		assert.Equal(t, "pending", f.status(t, p))
		assert.Len(t, f.store.Approvals(b.ID)[0].ConflictSnapshot, 2)
	})

	t.Run("a booking conflicting on two resources is bumped once", func(t *testing.T) {
		f := newFixture(t)
		a := f.createApproved(t, slot("R1", "R2"))
		b := f.create(t, slot("R1", "R2").WithSlot("2025-06-14", "10:00", "11:00"))

		res, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "rm", OverrideReason: "priority"})

		require.NoError(t, err)
		assert.Len(t, res.Conflicts, 2)
		assert.Len(t, res.Bumped, 1)
		assert.Equal(t, []string{"bumped", "approved", "booking_created"}, actionsOf(f.trail(t, a)))
	})

	t.Run("no conflicts to bump", func(t *testing.T) {
		f := newFixture(t)
		b := f.create(t, slot("R1"))

		_, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "rm", OverrideReason: "priority"})

		assert.True(t, errs.Is(err, errs.ErrNoConflictsToBump))
		assert.Equal(t, "pending", f.status(t, b))
		assert.Empty(t, f.store.Approvals(b.ID))
	})

	t.Run("override reason is required", func(t *testing.T) {
		f := newFixture(t)
		f.createApproved(t, slot("R1"))
		b := f.create(t, slot("R1"))

		_, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "rm", OverrideReason: "   "})

		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "pending", f.status(t, b))
	})
}

func TestOverrideBump_Atomicity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a1 := f.createApproved(t, slot("R1").WithSlot("2025-06-14", "08:00", "10:00"))
	a2 := f.createApproved(t, slot("R1").WithSlot("2025-06-14", "11:00", "12:00"))
	b := f.create(t, slot("R1").WithSlot("2025-06-14", "09:00", "11:30"))
	auditBefore := f.store.AuditLen()
	f.notifier.reset()

	// The first bump goes through; the second status write fails.
	f.store.FailOn(memory.OpBookingUpdateStatus, 1, errors.New("disk full"))

	_, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "rm", OverrideReason: "priority"})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrPersistence))
	assert.Equal(t, "approved", f.status(t, a1))
	assert.Equal(t, "approved", f.status(t, a2))
	assert.Equal(t, "pending", f.status(t, b))
	assert.Equal(t, auditBefore, f.store.AuditLen())
	assert.Empty(t, f.store.Approvals(b.ID))
	assert.Empty(t, f.notifier.actions())
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict-free booking is approved without override reason", func(t *testing.T) {
		f := newFixture(t)
		c := f.create(t, slot("R2"))
		f.notifier.reset()

		res, err := f.cmds.Approve(ctx, c.ID, commands.DecisionInput{Actor: "approver"})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, res.Booking.Status)
		approvals := f.store.Approvals(c.ID)
		require.Len(t, approvals, 1)
		assert.Equal(t, booking.ApprovalApprove, approvals[0].Action)
		assert.Nil(t, approvals[0].OverrideReason)
		assert.Empty(t, approvals[0].ConflictSnapshot)
		assert.Equal(t, []audit.Action{audit.ActionApproved}, f.notifier.actions())
	})

	t.Run("back-to-back bookings do not conflict", func(t *testing.T) {
		f := newFixture(t)
		f.createApproved(t, slot("R1").WithSlot("2025-06-14", "09:00", "12:00"))
		b := f.create(t, slot("R1").WithSlot("2025-06-14", "12:00", "14:00"))

		res, err := f.cmds.Approve(ctx, b.ID, commands.DecisionInput{Actor: "approver"})

		require.NoError(t, err)
		assert.Empty(t, res.Conflicts)
		require.Len(t, res.Nearby, 1, "same-day booking on a shared resource is reported as nearby")
	})

	t.Run("only pending bookings can be approved", func(t *testing.T) {
		f := newFixture(t)
		a := f.createApproved(t, slot("R1"))

		_, err := f.cmds.Approve(ctx, a.ID, commands.DecisionInput{Actor: "approver"})

		var stateErr *booking.InvalidStateTransitionError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, booking.StatusApproved, stateErr.Current)
		assert.Len(t, f.store.Approvals(a.ID), 1)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Approve(ctx, uuid.New(), commands.DecisionInput{Actor: "approver"})

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("audit failure rolls back the status change", func(t *testing.T) {
		f := newFixture(t)
		c := f.create(t, slot("R2"))
		f.store.FailOn(memory.OpAuditRecord, 0, errors.New("audit table unavailable"))

		_, err := f.cmds.Approve(ctx, c.ID, commands.DecisionInput{Actor: "approver"})

		assert.True(t, errs.Is(err, errs.ErrPersistence))
		assert.Equal(t, "pending", f.status(t, c))
		assert.Empty(t, f.store.Approvals(c.ID))
	})
}

func TestDeny(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		b := f.create(t, slot("R1"))

		res, err := f.cmds.Deny(ctx, b.ID, commands.DecisionInput{Actor: "approver", Reason: "no insurance on file"})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusDenied, res.Booking.Status)
		approvals := f.store.Approvals(b.ID)
		require.Len(t, approvals, 1)
		assert.Equal(t, booking.ApprovalDeny, approvals[0].Action)
		assert.Equal(t, "no insurance on file", approvals[0].Reason)
		trail := f.trail(t, b)
		assert.Equal(t, "denied", trail[0].Action)
		assert.Equal(t, "no insurance on file", trail[0].Reason)
	})

	t.Run("reason is required", func(t *testing.T) {
		f := newFixture(t)
		b := f.create(t, slot("R1"))

		_, err := f.cmds.Deny(ctx, b.ID, commands.DecisionInput{Actor: "approver"})

		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "pending", f.status(t, b))
	})

	t.Run("denied bookings no longer conflict", func(t *testing.T) {
		f := newFixture(t)
		a := f.create(t, slot("R1"))
		_, err := f.cmds.Deny(ctx, a.ID, commands.DecisionInput{Actor: "approver", Reason: "duplicate"})
		require.NoError(t, err)
		b := f.create(t, slot("R1"))

		_, err = f.cmds.Approve(ctx, b.ID, commands.DecisionInput{Actor: "approver"})

		require.NoError(t, err)
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success moves the slot and keeps resources", func(t *testing.T) {
		f := newFixture(t)
		c := f.createApproved(t, slot("R2", "R3"))
		f.notifier.reset()

		res, err := f.cmds.Reschedule(ctx, c.ID, commands.RescheduleInput{
			Actor: "requester", Reason: "weather", Date: "2025-06-15", StartTime: "13:00", EndTime: "15:30",
		})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusRescheduled, res.Booking.Status)
		assert.Equal(t, []string{"R2", "R3"}, res.Booking.ResourceIDs)
		assert.Equal(t, time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC), res.Booking.Schedule.Interval.Start())
		assert.Equal(t, "2025-06-15", res.Booking.Schedule.Local.Date)

		records := f.store.Reschedules(c.ID)
		require.Len(t, records, 1)
		assert.True(t, records[0].OldInterval.Equal(c.Schedule.Interval))
		assert.True(t, records[0].NewInterval.Equal(res.Booking.Schedule.Interval))
		assert.Nil(t, records[0].NewBookingID)

		trail := f.trail(t, c)
		assert.Equal(t, "rescheduled", trail[0].Action)
		assert.Equal(t, "approved", *trail[0].OldStatus)
		assert.Equal(t, "2025-06-14T09:00:00Z", trail[0].Metadata["old_start"])
		assert.Equal(t, "2025-06-15T13:00:00Z", trail[0].Metadata["new_start"])
		assert.Equal(t, []audit.Action{audit.ActionRescheduled}, f.notifier.actions())
	})

	t.Run("conflicting target slot leaves the booking unchanged", func(t *testing.T) {
		f := newFixture(t)
		c := f.createApproved(t, slot("R2"))
		f.createApproved(t, slot("R2").WithSlot("2025-06-16", "09:00", "12:00"))
		before, err := f.queries.GetByID(ctx, c.ID)
		require.NoError(t, err)

		_, err = f.cmds.Reschedule(ctx, c.ID, commands.RescheduleInput{
			Actor: "requester", Date: "2025-06-16", StartTime: "11:00", EndTime: "13:00",
		})

		assert.True(t, errs.Is(err, errs.ErrConflict))
		after, err := f.queries.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(before, after))
		assert.Empty(t, f.store.Reschedules(c.ID))
	})

	t.Run("rescheduling onto its own slot does not self-conflict", func(t *testing.T) {
		f := newFixture(t)
		c := f.createApproved(t, slot("R2"))

		_, err := f.cmds.Reschedule(ctx, c.ID, commands.RescheduleInput{
			Actor: "requester", Date: "2025-06-14", StartTime: "10:00", EndTime: "12:00",
		})

		require.NoError(t, err)
	})

	t.Run("rescheduled booking can be rescheduled again", func(t *testing.T) {
		f := newFixture(t)
		c := f.create(t, slot("R2"))
		in := commands.RescheduleInput{Actor: "requester", Date: "2025-06-20", StartTime: "09:00", EndTime: "10:00"}
		_, err := f.cmds.Reschedule(ctx, c.ID, in)
		require.NoError(t, err)

		in.Date = "2025-06-21"
		_, err = f.cmds.Reschedule(ctx, c.ID, in)

		require.NoError(t, err)
		assert.Len(t, f.store.Reschedules(c.ID), 2)
	})

	t.Run("terminal bookings cannot be rescheduled", func(t *testing.T) {
		f := newFixture(t)
		b := f.create(t, slot("R2"))
		_, err := f.cmds.Deny(ctx, b.ID, commands.DecisionInput{Actor: "approver", Reason: "no"})
		require.NoError(t, err)

		_, err = f.cmds.Reschedule(ctx, b.ID, commands.RescheduleInput{
			Actor: "requester", Date: "2025-06-20", StartTime: "09:00", EndTime: "10:00",
		})

		assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
	})

	t.Run("invalid new interval", func(t *testing.T) {
		f := newFixture(t)
		c := f.create(t, slot("R2"))

		_, err := f.cmds.Reschedule(ctx, c.ID, commands.RescheduleInput{
			Actor: "requester", Date: "2025-06-20", StartTime: "10:00", EndTime: "09:59",
		})

		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "pending", f.status(t, c))
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("approved booking is cancelled and frees its slot", func(t *testing.T) {
		f := newFixture(t)
		a := f.createApproved(t, slot("R4"))

		res, err := f.cmds.Cancel(ctx, a.ID, commands.DecisionInput{Actor: "requester", Reason: "range closed"})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, res.Booking.Status)
		assert.Len(t, f.store.Approvals(a.ID), 1)
		assert.Equal(t, "cancelled", f.trail(t, a)[0].Action)

		b := f.create(t, slot("R4"))
		_, err = f.cmds.Approve(ctx, b.ID, commands.DecisionInput{Actor: "approver"})
		require.NoError(t, err)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		f := newFixture(t)
		a := f.create(t, slot("R4"))
		_, err := f.cmds.Cancel(ctx, a.ID, commands.DecisionInput{Actor: "requester", Reason: "no longer needed"})
		require.NoError(t, err)

		_, err = f.cmds.Cancel(ctx, a.ID, commands.DecisionInput{Actor: "requester", Reason: "again"})

		assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
	})
}

// Every successful transition writes exactly one entry whose statuses match.
func TestAuditCompleteness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.createApproved(t, slot("R1"))
	b := f.create(t, slot("R1"))
	_, err := f.cmds.OverrideBump(ctx, b.ID, commands.OverrideInput{Actor: "rm", OverrideReason: "priority"})
	require.NoError(t, err)
	_, err = f.cmds.Reschedule(ctx, b.ID, commands.RescheduleInput{Actor: "rm", Date: "2025-06-18", StartTime: "09:00", EndTime: "10:00"})
	require.NoError(t, err)

	type step struct{ action, from, to string }
	expect := map[string][]step{
		a.RequestCode: {{"bumped", "approved", "bumped"}, {"approved", "pending", "approved"}, {"booking_created", "", "pending"}},
		b.RequestCode: {{"rescheduled", "approved", "rescheduled"}, {"override_and_bump", "pending", "approved"}, {"booking_created", "", "pending"}},
	}
	for _, snap := range []booking.Snapshot{a, b} {
		var got []step
		for _, e := range f.trail(t, snap) {
			from := ""
			if e.OldStatus != nil {
				from = *e.OldStatus
			}
			got = append(got, step{e.Action, from, e.NewStatus})
			assert.Equal(t, snap.ID, e.BookingID)
		}
		assert.Equal(t, expect[snap.RequestCode], got, snap.RequestCode)
	}
}
