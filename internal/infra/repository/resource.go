package repository

import (
	"context"

	"range-booking/internal/domain/resource"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
)

type ResourceWriteQueries interface {
	UpsertResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertResourceParams) error
	AddWhitelistedOfficer(ctx context.Context, db sqlc.DBTX, name string) error
}

// ResourceRepository seeds reference data: resources and the officer
// whitelist. Resource CRUD beyond seeding lives outside this service.
type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) Upsert(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.UpsertResource(ctx, r.db, converter.ResourceToParams(res)); err != nil {
		return infra.WrapRepoErr("failed to upsert resource", err)
	}
	return nil
}

func (r *ResourceRepository) WhitelistOfficer(ctx context.Context, name string) error {
	if err := r.queries.AddWhitelistedOfficer(ctx, r.db, name); err != nil {
		return infra.WrapRepoErr("failed to whitelist officer", err)
	}
	return nil
}
