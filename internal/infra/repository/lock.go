package repository

import (
	"context"
	"slices"

	"range-booking/internal/infra"
	sqlc "range-booking/internal/infra/sqlc/generated"
)

type LockQueries interface {
	AcquireResourceLock(ctx context.Context, db sqlc.DBTX, resourceID string) error
}

// ResourceLocker takes transaction-scoped advisory locks, released on
// commit or rollback.
type ResourceLocker struct {
	queries LockQueries
	db      sqlc.DBTX
}

func NewResourceLocker(queries LockQueries, db sqlc.DBTX) *ResourceLocker {
	return &ResourceLocker{
		queries: queries,
		db:      db,
	}
}

// Acquire locks ids in sorted order so two writers over overlapping
// resource sets cannot deadlock.
func (l *ResourceLocker) Acquire(ctx context.Context, resourceIDs []string) error {
	ids := slices.Clone(resourceIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for _, id := range ids {
		if err := l.queries.AcquireResourceLock(ctx, l.db, id); err != nil {
			return infra.WrapRepoErr("failed to lock resource "+id, err)
		}
	}
	return nil
}
