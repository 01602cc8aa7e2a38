package readstore

import (
	"context"
	"math"

	"range-booking/internal/domain/audit"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AuditReadQueries interface {
	ListAuditByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.AuditLog, error)
	SearchAudit(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchAuditParams) ([]sqlc.AuditLog, error)
}

type AuditReadStore struct {
	queries AuditReadQueries
}

func NewAuditReadStore(queries AuditReadQueries) *AuditReadStore {
	return &AuditReadStore{
		queries: queries,
	}
}

func (r *AuditReadStore) Trail(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]*audit.Entry, error) {
	rows, err := r.queries.ListAuditByBooking(ctx, db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit trail", err)
	}
	entries, err := converter.AuditEntriesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode audit trail", err, infra.KindDBFailure)
	}
	return entries, nil
}

func (r *AuditReadStore) Search(ctx context.Context, db sqlc.DBTX, f audit.Filter) ([]*audit.Entry, error) {
	limit := int32(math.MaxInt32)
	if f.Limit > 0 && f.Limit < math.MaxInt32 {
		limit = int32(f.Limit)
	}
	rows, err := r.queries.SearchAudit(ctx, db, sqlc.SearchAuditParams{
		Actor:    pgconv.OptionalText(f.Actor),
		Action:   pgconv.OptionalText(string(f.Action)),
		FromTime: pgconv.TimePtrToPgtype(f.From),
		ToTime:   pgconv.TimePtrToPgtype(f.To),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search audit log", err)
	}
	entries, err := converter.AuditEntriesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode audit entries", err, infra.KindDBFailure)
	}
	return entries, nil
}
