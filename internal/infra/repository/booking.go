package repository

import (
	"context"

	"range-booking/internal/domain/booking"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	AddBookingResources(ctx context.Context, db sqlc.DBTX, arg sqlc.AddBookingResourcesParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	UpdateBookingSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingScheduleParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	n, err := r.queries.AddBookingResources(ctx, r.db, sqlc.AddBookingResourcesParams{
		BookingID:   b.ID(),
		ResourceIds: b.ResourceIDs(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach booking resources", err)
	}
	if int(n) != len(b.ResourceIDs()) {
		return infra.WrapRepoErr("booking resources partially attached", nil)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		Status:     b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:         b.ID(),
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking "+b.RequestCode()+" is no longer "+from.String(), nil, infra.KindStaleState)
	}
	return nil
}

func (r *BookingRepository) UpdateSchedule(ctx context.Context, b *booking.Booking, from booking.Status) error {
	n, err := r.queries.UpdateBookingSchedule(ctx, r.db, converter.BookingToScheduleParams(b, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking schedule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking "+b.RequestCode()+" is no longer "+from.String(), nil, infra.KindStaleState)
	}
	return nil
}
