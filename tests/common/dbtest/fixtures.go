//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference data seeded for every test database.
const (
	BayOne             = "bay-1"
	BayTwo             = "bay-2"
	Building           = "building-a"
	InactiveTarget     = "target-9"
	WhitelistedOfficer = "Pat Whitelisted"
)

func CreateTestResource(t *testing.T, db DBLike, id, kind string, active bool) string {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO resources (id, name, type, active) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET active = EXCLUDED.active, updated_at = now()`,
		id, strings.ToUpper(id[:1])+id[1:], kind, active)
	require.NoError(t, err)

	return id
}

func WhitelistOfficer(t *testing.T, db DBLike, name string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO whitelisted_officers (name) VALUES ($1) ON CONFLICT DO NOTHING", name)
	require.NoError(t, err)
}

// BookingStatus reads the persisted status, bypassing the engine.
func BookingStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM booking_requests WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO resources (id, name, type, active) VALUES
		    ('bay-1', 'Bay 1', 'bay', true),
		    ('bay-2', 'Bay 2', 'bay', true),
		    ('building-a', 'Shoot House A', 'building', true),
		    ('target-9', 'Target 9', 'target', false)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `INSERT INTO whitelisted_officers (name) VALUES ('Pat Whitelisted') ON CONFLICT DO NOTHING;`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
