package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/infra/readstore"
	"range-booking/internal/infra/repository"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/pkg/config"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	retryBase  time.Duration
	logger     *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig, logger *slog.Logger) *PostgresUoW {
	maxRetries := cfg.TxMaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	base := cfg.TxRetryBase
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		retryBase:  base,
		logger:     logger,
	}
}

// Serializable plus per-resource advisory locks: two writers touching the
// same resource never both pass the conflict check.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) Reads() shared.Reads {
	return newStoreReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			if attempt == u.maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.retryBase)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo    shared.BookingRepository
	approvalRepo   shared.ApprovalRepository
	rescheduleRepo shared.RescheduleRepository
	auditRepo      shared.AuditRecorder
	locker         shared.ResourceLocker
	reads          shared.Reads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Approvals() shared.ApprovalRepository {
	if t.approvalRepo == nil {
		t.approvalRepo = repository.NewApprovalRepository(t.uow.q, t.dbtx)
	}
	return t.approvalRepo
}

func (t *pgTx) Reschedules() shared.RescheduleRepository {
	if t.rescheduleRepo == nil {
		t.rescheduleRepo = repository.NewRescheduleRepository(t.uow.q, t.dbtx)
	}
	return t.rescheduleRepo
}

func (t *pgTx) Audit() shared.AuditRecorder {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.uow.q, t.dbtx)
	}
	return t.auditRepo
}

func (t *pgTx) Locks() shared.ResourceLocker {
	if t.locker == nil {
		t.locker = repository.NewResourceLocker(t.uow.q, t.dbtx)
	}
	return t.locker
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = newStoreReads(t.uow.q, t.dbtx)
	}
	return t.reads
}

// storeReads serves shared.Reads from the read stores over one DBTX, either
// the pool or the surrounding transaction.
type storeReads struct {
	dbtx      sqlc.DBTX
	bookings  *readstore.BookingReadStore
	resources *readstore.ResourceReadStore
	audit     *readstore.AuditReadStore
}

func newStoreReads(q *sqlc.Queries, dbtx sqlc.DBTX) *storeReads {
	return &storeReads{
		dbtx:      dbtx,
		bookings:  readstore.NewBookingReadStore(q),
		resources: readstore.NewResourceReadStore(q),
		audit:     readstore.NewAuditReadStore(q),
	}
}

func (r *storeReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings.FindByID(ctx, r.dbtx, id)
}

func (r *storeReads) ResourcesByIDs(ctx context.Context, ids []string) ([]*resource.Resource, error) {
	return r.resources.FindByIDs(ctx, r.dbtx, ids)
}

func (r *storeReads) ActiveBookings(ctx context.Context, resourceIDs []string, window booking.Interval) ([]*booking.Booking, error) {
	return r.bookings.FindActiveOverlapping(ctx, r.dbtx, resourceIDs, window)
}

func (r *storeReads) BookingsByResource(ctx context.Context, resourceID string, filter shared.ResourceBookingFilter) ([]*booking.Booking, error) {
	return r.bookings.FindByResource(ctx, r.dbtx, resourceID, filter)
}

func (r *storeReads) AuditTrail(ctx context.Context, bookingID uuid.UUID) ([]*audit.Entry, error) {
	return r.audit.Trail(ctx, r.dbtx, bookingID)
}

func (r *storeReads) AuditSearch(ctx context.Context, filter audit.Filter) ([]*audit.Entry, error) {
	return r.audit.Search(ctx, r.dbtx, filter)
}
