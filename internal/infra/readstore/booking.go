package readstore

import (
	"context"

	"range-booking/internal/domain/booking"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/pkg/pgconv"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingDetails, error)
	ListActiveBookingsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingsOverlappingParams) ([]sqlc.BookingDetails, error)
	ListBookingsByResource(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResourceParams) ([]sqlc.BookingDetails, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
}

func NewBookingReadStore(queries BookingReadQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingDetailByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking "+id.String()+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingFromDetails(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

// FindActiveOverlapping returns pending and approved bookings overlapping
// window on any of resourceIDs, ordered by start then request code.
func (r *BookingReadStore) FindActiveOverlapping(ctx context.Context, db sqlc.DBTX, resourceIDs []string, window booking.Interval) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveBookingsOverlapping(ctx, db, sqlc.ListActiveBookingsOverlappingParams{
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
		WindowStart: pgconv.TimeToPgtype(window.Start()),
		ResourceIds: resourceIDs,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}
	out, err := converter.BookingsFromDetails(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *BookingReadStore) FindByResource(ctx context.Context, db sqlc.DBTX, resourceID string, filter shared.ResourceBookingFilter) ([]*booking.Booking, error) {
	status := pgtype.Text{}
	if filter.Status != nil {
		status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}
	rows, err := r.queries.ListBookingsByResource(ctx, db, sqlc.ListBookingsByResourceParams{
		ResourceID: resourceID,
		FromTime:   pgconv.TimePtrToPgtype(filter.From),
		ToTime:     pgconv.TimePtrToPgtype(filter.To),
		Status:     status,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by resource", err)
	}
	out, err := converter.BookingsFromDetails(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err, infra.KindDBFailure)
	}
	return out, nil
}
