package components

import (
	"context"
	"log/slog"

	"range-booking/internal/domain/resource"
	"range-booking/internal/infra/memory"
	"range-booking/internal/infra/readstore"
	"range-booking/internal/infra/repository"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/infra/uow"
	"range-booking/internal/pkg/config"
	"range-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewPersistence,
	),
)

// Seeder upserts startup reference data into whichever store is active.
type Seeder interface {
	Upsert(ctx context.Context, r *resource.Resource) error
	WhitelistOfficer(ctx context.Context, name string) error
}

type Persistence struct {
	fx.Out

	UoW       shared.UnitOfWork
	Whitelist shared.OfficerWhitelist
	Seeder    Seeder
}

// NewPersistence selects the store by cfg.DB.Driver. pool is nil for the
// memory store.
func NewPersistence(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) Persistence {
	if cfg.DB.Driver == "memory" {
		logger.Warn("using in-memory store; nothing is persisted")
		store := memory.NewStore()
		return Persistence{
			UoW:       store,
			Whitelist: store,
			Seeder:    memorySeeder{store: store},
		}
	}
	return Persistence{
		UoW:       uow.NewPostgresUoW(pool, q, cfg.DB, logger),
		Whitelist: readstore.NewWhitelistReadStore(q, pool),
		Seeder:    repository.NewResourceRepository(q, pool),
	}
}

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

type memorySeeder struct {
	store *memory.Store
}

func (s memorySeeder) Upsert(_ context.Context, r *resource.Resource) error {
	s.store.SeedResource(r)
	return nil
}

func (s memorySeeder) WhitelistOfficer(_ context.Context, name string) error {
	s.store.AddWhitelistedOfficer(name)
	return nil
}
