//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"range-booking/internal/domain/booking"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/tests/common/builder"
	repositorymock "range-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApprovalRepository_Create(t *testing.T) {
	ctx := context.Background()
	other := builder.NewBookingBuilder().WithID(uuid.New()).MustBuildDomain()
	override := "range master on site"

	testCases := []struct {
		name          string
		approval      *booking.Approval
		setupMock     func(*repositorymock.MockApprovalWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: plain approval stores an empty snapshot",
			approval: &booking.Approval{
				ID: uuid.New(), BookingID: uuid.New(), Action: booking.ApprovalApprove,
				Actor: "officer@range.test", CreatedAt: builder.DefaultNow,
			},
			setupMock: func(mock *repositorymock.MockApprovalWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateApproval(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateApprovalParams) error {
						assert.Equal(t, "approve", arg.Action)
						assert.False(t, arg.OverrideReason.Valid)
						assert.JSONEq(t, `[]`, string(arg.ConflictSnapshot))
						return nil
					})
			},
		},
		{
			name: "success: override keeps reason and conflict snapshot",
			approval: &booking.Approval{
				ID:               uuid.New(),
				BookingID:        uuid.New(),
				Action:           booking.ApprovalOverrideApprove,
				Actor:            "officer@range.test",
				OverrideReason:   &override,
				ConflictSnapshot: booking.ConflictsWith(other, []string{"bay-1"}),
				CreatedAt:        builder.DefaultNow,
			},
			setupMock: func(mock *repositorymock.MockApprovalWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateApproval(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateApprovalParams) error {
						assert.Equal(t, "override_approve", arg.Action)
						assert.Equal(t, override, arg.OverrideReason.String)
						var snap []booking.Conflict
						require.NoError(t, json.Unmarshal(arg.ConflictSnapshot, &snap))
						require.Len(t, snap, 1)
						assert.Equal(t, other.ID(), snap[0].BookingID)
						assert.Equal(t, "bay-1", snap[0].ResourceID)
						return nil
					})
			},
		},
		{
			name: "error: second decision for the same booking",
			approval: &booking.Approval{
				ID: uuid.New(), BookingID: uuid.New(), Action: booking.ApprovalDeny,
				Actor: "officer@range.test", Reason: "no RSO", CreatedAt: builder.DefaultNow,
			},
			setupMock: func(mock *repositorymock.MockApprovalWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateApproval(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockApprovalWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewApprovalRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, tc.approval)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestRescheduleRepository_Create(t *testing.T) {
	ctx := context.Background()
	oldSlot, err := builder.NewBookingBuilder().BuildSchedule()
	require.NoError(t, err)
	newSlot, err := builder.NewBookingBuilder().WithSlot("2025-06-15", "13:00", "15:00").BuildSchedule()
	require.NoError(t, err)

	rs := &booking.Reschedule{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		OldInterval: oldSlot.Interval,
		NewInterval: newSlot.Interval,
		Actor:       "officer@range.test",
		Reason:      "weather",
		CreatedAt:   builder.DefaultNow,
	}

	t.Run("success: in-place reschedule has no successor booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockRescheduleWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRescheduleRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateReschedule(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRescheduleParams) error {
				assert.Equal(t, rs.BookingID, arg.BookingID)
				assert.Nil(t, arg.NewRequestID)
				assert.True(t, arg.NewStartAt.Time.Equal(newSlot.Interval.Start()))
				return nil
			})

		assert.NoError(t, repo.Create(ctx, rs))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockRescheduleWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRescheduleRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateReschedule(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.Create(ctx, rs)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
