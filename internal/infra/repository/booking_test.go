//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"range-booking/internal/domain/booking"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/tests/common/builder"
	repositorymock "range-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking and resources inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
							assert.Equal(t, b.ID(), arg.ID)
							assert.Equal(t, "pending", arg.Status)
							assert.Equal(t, "2025-06-14", arg.LocalDate)
							assert.True(t, arg.ContactPhone.Valid)
							return nil
						}),
					mock.EXPECT().AddBookingResources(ctx, tx, sqlc.AddBookingResourcesParams{
						BookingID:   b.ID(),
						ResourceIds: []string{"bay-1", "bay-2"},
					}).Return(int64(2), nil),
				)
			},
		},
		{
			name: "error: duplicate request code",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: unknown resource violates foreign key",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().AddBookingResources(ctx, tx, gomock.Any()).Return(int64(0), fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: resources partially attached",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().AddBookingResources(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			domainBooking, err := builder.NewBookingBuilder().WithResources("bay-2", "bay-1").BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainBooking, mockDB)

			actualError := repo.Create(ctx, domainBooking)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Update Status Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: status guarded on previous value",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
						assert.Equal(t, "approved", arg.Status)
						assert.Equal(t, "pending", arg.FromStatus)
						assert.Equal(t, b.ID(), arg.ID)
						return 1, nil
					})
			},
		},
		{
			name: "error: stored status moved",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindStaleState,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			domainBooking := builder.NewBookingBuilder().MustBuildDomain()
			_, err := domainBooking.Apply(booking.ActionApprove, builder.DefaultNow.Add(time.Hour))
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainBooking, mockDB)

			actualError := repo.UpdateStatus(ctx, domainBooking, booking.StatusPending)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Update Schedule Tests
// =============================================================================

func TestBookingRepository_UpdateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success: new slot and status written together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		domainBooking := builder.NewBookingBuilder().MustBuildDomain()
		next, err := builder.NewBookingBuilder().WithSlot("2025-06-15", "13:00", "15:00").BuildSchedule()
		require.NoError(t, err)
		_, _, err = domainBooking.Reschedule(next, builder.DefaultNow.Add(time.Hour))
		require.NoError(t, err)

		mockQueries.EXPECT().UpdateBookingSchedule(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingScheduleParams) (int64, error) {
				assert.Equal(t, "rescheduled", arg.Status)
				assert.Equal(t, "pending", arg.FromStatus)
				assert.Equal(t, "2025-06-15", arg.LocalDate)
				assert.Equal(t, "13:00", arg.LocalStart)
				assert.Equal(t, "15:00", arg.LocalEnd)
				return 1, nil
			})

		require.NoError(t, repo.UpdateSchedule(ctx, domainBooking, booking.StatusPending))
	})

	t.Run("error: stored status moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateBookingSchedule(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.UpdateSchedule(ctx, builder.NewBookingBuilder().MustBuildDomain(), booking.StatusPending)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStaleState))
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
