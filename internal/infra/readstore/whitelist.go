package readstore

import (
	"context"

	"range-booking/internal/infra"
	sqlc "range-booking/internal/infra/sqlc/generated"
)

type WhitelistQueries interface {
	IsOfficerWhitelisted(ctx context.Context, db sqlc.DBTX, name string) (bool, error)
}

// WhitelistReadStore matches officer names case-insensitively after trimming.
type WhitelistReadStore struct {
	queries WhitelistQueries
	db      sqlc.DBTX
}

func NewWhitelistReadStore(queries WhitelistQueries, db sqlc.DBTX) *WhitelistReadStore {
	return &WhitelistReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WhitelistReadStore) IsWhitelisted(ctx context.Context, officerName string) (bool, error) {
	ok, err := r.queries.IsOfficerWhitelisted(ctx, r.db, officerName)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up officer whitelist", err)
	}
	return ok, nil
}
