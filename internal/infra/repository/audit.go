package repository

import (
	"context"

	"range-booking/internal/domain/audit"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
)

type AuditWriteQueries interface {
	InsertAuditEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditEntryParams) error
}

// AuditRepository only inserts; the table's trigger rejects updates and deletes.
type AuditRepository struct {
	queries AuditWriteQueries
	db      sqlc.DBTX
}

func NewAuditRepository(queries AuditWriteQueries, db sqlc.DBTX) *AuditRepository {
	return &AuditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditRepository) Record(ctx context.Context, e *audit.Entry) error {
	params, err := converter.AuditEntryToParams(e)
	if err != nil {
		return infra.WrapRepoErr("failed to encode audit entry", err, infra.KindDBFailure)
	}
	if err := r.queries.InsertAuditEntry(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to record audit entry", err)
	}
	return nil
}
