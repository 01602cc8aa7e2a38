//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"range-booking/internal/domain/booking"
	"range-booking/internal/pkg/errs"
	"range-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, strings.HasPrefix(actual.RequestCode(), "RB-20250601-"))
		assert.Len(t, actual.RequestCode(), len("RB-20250601-ABCDEF012345"))
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, []string{"bay-1"}, actual.ResourceIDs())
		assert.Equal(t, 3*time.Hour, actual.Interval().Duration())
	})

	t.Run("resource set", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty resource set",
				mutate: func(b *builder.BookingBuilder) { b.WithResources() },
				errIs:  booking.ErrEmptyResourceSet,
			},
			{
				name:   "blank resource id",
				mutate: func(b *builder.BookingBuilder) { b.WithResources("bay-1", "  ") },
				errIs:  booking.ErrEmptyResourceID,
			},
			{
				name:   "multiple resources",
				mutate: func(b *builder.BookingBuilder) { b.WithResources("target-3", "bay-1") },
			},
		})

		actual, err := builder.NewBookingBuilder().WithResources("target-3", "bay-1", "target-3").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []string{"bay-1", "target-3"}, actual.ResourceIDs(), "ids are de-duplicated and sorted")
	})

	t.Run("attestation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "safety missing",
				mutate: func(b *builder.BookingBuilder) { b.Safety = false },
				errIs:  booking.ErrAttestationIncomplete,
			},
			{
				name:   "waiver missing",
				mutate: func(b *builder.BookingBuilder) { b.Waiver = false },
				errIs:  booking.ErrAttestationIncomplete,
			},
			{
				name:   "insurance missing",
				mutate: func(b *builder.BookingBuilder) { b.Insurance = false },
				errIs:  booking.ErrAttestationIncomplete,
			},
		})
	})

	t.Run("requester and officer", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "group name blank",
				mutate: func(b *builder.BookingBuilder) { b.GroupName = " " },
				errIs:  booking.ErrGroupNameRequired,
			},
			{
				name:   "contact email missing",
				mutate: func(b *builder.BookingBuilder) { b.ContactEmail = "" },
				errIs:  booking.ErrContactRequired,
			},
			{
				name:   "officer qualification missing",
				mutate: func(b *builder.BookingBuilder) { b.OfficerQualification = "" },
				errIs:  booking.ErrOfficerRequired,
			},
		})
	})

	t.Run("request code is derived from creation date and id", func(t *testing.T) {
		id := uuid.MustParse("0a1b2c3d-0000-4000-8000-000000000000")
		code := booking.NewRequestCode(time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC), id)
		assert.Equal(t, "RB-20250309-0A1B2C3D0000", code)
	})

	t.Run("ids sharing a short prefix get distinct request codes", func(t *testing.T) {
		day := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
		a := booking.NewRequestCode(day, uuid.MustParse("0a1b2c3d-0000-4000-8000-000000000000"))
		b := booking.NewRequestCode(day, uuid.MustParse("0a1b2cff-0000-4000-8000-000000000000"))
		assert.NotEqual(t, a, b)
	})
}

func TestBooking_Apply(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		from     booking.Status
		action   booking.Action
		expected booking.Status
	}{
		{booking.StatusPending, booking.ActionApprove, booking.StatusApproved},
		{booking.StatusPending, booking.ActionAutoApprove, booking.StatusApproved},
		{booking.StatusPending, booking.ActionDeny, booking.StatusDenied},
		{booking.StatusPending, booking.ActionOverrideApprove, booking.StatusApproved},
		{booking.StatusPending, booking.ActionOverrideBump, booking.StatusApproved},
		{booking.StatusApproved, booking.ActionBump, booking.StatusBumped},
		{booking.StatusPending, booking.ActionCancel, booking.StatusCancelled},
		{booking.StatusApproved, booking.ActionCancel, booking.StatusCancelled},
		{booking.StatusRescheduled, booking.ActionCancel, booking.StatusCancelled},

		{booking.StatusApproved, booking.ActionApprove, ""},
		{booking.StatusDenied, booking.ActionApprove, ""},
		{booking.StatusApproved, booking.ActionDeny, ""},
		{booking.StatusBumped, booking.ActionOverrideApprove, ""},
		{booking.StatusApproved, booking.ActionOverrideBump, ""},
		{booking.StatusPending, booking.ActionBump, ""},
		{booking.StatusDenied, booking.ActionCancel, ""},
		{booking.StatusCancelled, booking.ActionCancel, ""},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"/"+string(tc.action), func(t *testing.T) {
			b, err := builder.NewBookingBuilder().WithStatus(tc.from).BuildDomain()
			require.NoError(t, err)

			prev, err := b.Apply(tc.action, now)

			if tc.expected == "" {
				var stateErr *booking.InvalidStateTransitionError
				require.ErrorAs(t, err, &stateErr)
				assert.Equal(t, tc.from, stateErr.Current)
				assert.Equal(t, tc.action, stateErr.Action)
				assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
				assert.Equal(t, tc.from, b.Status(), "rejected action must not change status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.from, prev)
			assert.Equal(t, tc.expected, b.Status())
			assert.Equal(t, now, b.UpdatedAt())
		})
	}

	t.Run("reschedule is not applied through Apply", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = b.Apply(booking.ActionReschedule, now)
		require.Error(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
	})
}

func TestBooking_Reschedule(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	next, err := booking.NewInterval(
		time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	schedule := booking.Schedule{
		Interval: next,
		Local:    booking.LocalSlot{Date: "2025-06-15", Start: "13:00", End: "16:00", Timezone: "UTC"},
	}

	for _, from := range []booking.Status{booking.StatusPending, booking.StatusApproved, booking.StatusRescheduled} {
		t.Run("from "+string(from), func(t *testing.T) {
			b, err := builder.NewBookingBuilder().WithResources("bay-1", "bay-2").WithStatus(from).BuildDomain()
			require.NoError(t, err)
			before := b.Schedule()

			prevStatus, prevSchedule, err := b.Reschedule(schedule, now)

			require.NoError(t, err)
			assert.Equal(t, from, prevStatus)
			assert.Equal(t, before, prevSchedule)
			assert.Equal(t, booking.StatusRescheduled, b.Status())
			assert.True(t, b.Interval().Equal(next))
			assert.Equal(t, []string{"bay-1", "bay-2"}, b.ResourceIDs(), "resource set is fixed")
		})
	}

	for _, from := range []booking.Status{booking.StatusDenied, booking.StatusBumped, booking.StatusCancelled} {
		t.Run("rejected from "+string(from), func(t *testing.T) {
			b, err := builder.NewBookingBuilder().WithStatus(from).BuildDomain()
			require.NoError(t, err)
			before := b.Snapshot()

			_, _, err = b.Reschedule(schedule, now)

			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Equal(t, before, b.Snapshot())
		})
	}
}

func TestBooking_SharedResources(t *testing.T) {
	b, err := builder.NewBookingBuilder().WithResources("r1", "r3").BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, []string{"r1"}, b.SharedResources([]string{"r1", "r4"}))
	assert.Empty(t, b.SharedResources([]string{"r2"}))
	assert.Equal(t, []string{"r1", "r3"}, b.SharedResources([]string{"r1", "r2", "r3"}))
}

func TestBumpTargets(t *testing.T) {
	a, p := uuid.New(), uuid.New()
	conflicts := []booking.Conflict{
		{BookingID: a, Status: booking.StatusApproved, ResourceID: "r1"},
		{BookingID: p, Status: booking.StatusPending, ResourceID: "r1"},
		{BookingID: a, Status: booking.StatusApproved, ResourceID: "r2"},
	}

	assert.Equal(t, []uuid.UUID{a}, booking.BumpTargets(conflicts))
	assert.Equal(t, []uuid.UUID{a, p}, booking.DistinctBookingIDs(conflicts))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
