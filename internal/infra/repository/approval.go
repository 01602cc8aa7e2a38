package repository

import (
	"context"

	"range-booking/internal/domain/booking"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
)

type ApprovalWriteQueries interface {
	CreateApproval(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateApprovalParams) error
}

type ApprovalRepository struct {
	queries ApprovalWriteQueries
	db      sqlc.DBTX
}

func NewApprovalRepository(queries ApprovalWriteQueries, db sqlc.DBTX) *ApprovalRepository {
	return &ApprovalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ApprovalRepository) Create(ctx context.Context, a *booking.Approval) error {
	params, err := converter.ApprovalToParams(a)
	if err != nil {
		return infra.WrapRepoErr("failed to encode approval", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateApproval(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create approval", err)
	}
	return nil
}

type RescheduleWriteQueries interface {
	CreateReschedule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRescheduleParams) error
}

type RescheduleRepository struct {
	queries RescheduleWriteQueries
	db      sqlc.DBTX
}

func NewRescheduleRepository(queries RescheduleWriteQueries, db sqlc.DBTX) *RescheduleRepository {
	return &RescheduleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RescheduleRepository) Create(ctx context.Context, rs *booking.Reschedule) error {
	if err := r.queries.CreateReschedule(ctx, r.db, converter.RescheduleToParams(rs)); err != nil {
		return infra.WrapRepoErr("failed to create reschedule record", err)
	}
	return nil
}
