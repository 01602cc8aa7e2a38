package readstore

import (
	"context"

	"range-booking/internal/domain/resource"
	"range-booking/internal/infra"
	"range-booking/internal/infra/repository/converter"
	sqlc "range-booking/internal/infra/sqlc/generated"
)

type ResourceReadQueries interface {
	GetResourcesByIDs(ctx context.Context, db sqlc.DBTX, ids []string) ([]sqlc.Resources, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
}

func NewResourceReadStore(queries ResourceReadQueries) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
	}
}

// FindByIDs returns the resources that exist; missing ids are simply absent.
func (r *ResourceReadStore) FindByIDs(ctx context.Context, db sqlc.DBTX, ids []string) ([]*resource.Resource, error) {
	rows, err := r.queries.GetResourcesByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resources by IDs", err)
	}

	result := make([]*resource.Resource, len(rows))
	for i, row := range rows {
		result[i] = converter.ResourceFromRow(row)
	}
	return result, nil
}
