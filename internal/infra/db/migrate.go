package db

import (
	"context"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"range-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const migrationsLockKey = 7_420_311

// Migrate applies every *.sql file in files that schema_migrations has not
// recorded yet, in lexical order, each in its own transaction. Concurrent
// callers are serialized on an advisory lock.
func Migrate(ctx context.Context, pool *pgxpool.Pool, files fs.FS, logger *slog.Logger) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	slices.Sort(names)

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to acquire migration connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, migrationsLockKey); err != nil {
		return errs.Wrap(err, "failed to lock migrations")
	}
	defer func() {
		if _, err := conn.Exec(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, migrationsLockKey); err != nil {
			logger.Warn("failed to release migration lock", "error", err.Error())
		}
	}()

	if _, err := conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return errs.Wrap(err, "failed to create schema_migrations")
	}

	for _, name := range names {
		version := strings.TrimSuffix(name, ".sql")
		var applied bool
		if err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&applied); err != nil {
			return errs.Wrapf(err, "failed to check migration %s", version)
		}
		if applied {
			continue
		}

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration %s", name)
		}
		if err := pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(body)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
			return err
		}); err != nil {
			return errs.Wrapf(err, "failed to apply migration %s", version)
		}
		logger.Info("applied migration", "version", version)
	}
	return nil
}
