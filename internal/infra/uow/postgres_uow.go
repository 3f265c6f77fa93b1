package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/infra/readstore"
	"campus-booking/internal/infra/repository"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	DefaultMaxRetries = 3
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	loc        *time.Location
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, loc *time.Location, maxRetries int) *PostgresUoW {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		loc:        loc,
		maxRetries: maxRetries,
		base:       50 * time.Millisecond,
	}
}

// Within runs fn in a SERIALIZABLE transaction. The occupancy read and the insert commit
// together or the transaction is retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Members exposes the credential store outside any transaction.
func (u *PostgresUoW) Members() *readstore.MemberReadStore {
	return readstore.NewMemberReadStore(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
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
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.maxRetries {
			slog.Warn("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errors.Join(shared.ErrTxContention, err)
		}

		waitTime := calculateBackoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.Reads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newReads(u, pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
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
	reservationRepo shared.ReservationRepository
	seatUsageRepo   shared.SeatUsageRepository
	auditLogRepo    shared.AuditLogRepository
	reads           shared.Reads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) SeatUsages() shared.SeatUsageRepository {
	if t.seatUsageRepo == nil {
		t.seatUsageRepo = repository.NewSeatUsageRepository(t.uow.q, t.dbtx)
	}
	return t.seatUsageRepo
}

func (t *pgTx) AuditLog() shared.AuditLogRepository {
	if t.auditLogRepo == nil {
		t.auditLogRepo = repository.NewAuditLogRepository(t.uow.q, t.dbtx)
	}
	return t.auditLogRepo
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = newReads(t.uow, t.dbtx)
	}
	return t.reads
}

// pgReads adapts the read stores to shared.Reads on one connection or transaction.
type pgReads struct {
	resources    *readstore.ResourceReadStore
	calendar     *readstore.CalendarReadStore
	reservations *readstore.ReservationReadStore
	seatUsages   *readstore.SeatUsageReadStore
}

func newReads(u *PostgresUoW, db sqlc.DBTX) *pgReads {
	return &pgReads{
		resources:    readstore.NewResourceReadStore(u.q, db),
		calendar:     readstore.NewCalendarReadStore(u.q, db, u.loc),
		reservations: readstore.NewReservationReadStore(u.q, db, u.loc),
		seatUsages:   readstore.NewSeatUsageReadStore(u.q, db, u.loc),
	}
}

func (r *pgReads) Resource(ctx context.Context, id string) (*resource.Resource, error) {
	return r.resources.FindByID(ctx, id)
}

func (r *pgReads) SeatResource(ctx context.Context, seatNumber int) (*resource.Resource, error) {
	return r.resources.FindBySeatNumber(ctx, seatNumber)
}

func (r *pgReads) Resources(ctx context.Context, filter shared.ResourceFilter) ([]*resource.Resource, error) {
	return r.resources.List(ctx, filter)
}

func (r *pgReads) Semesters(ctx context.Context, date time.Time) (calendar.Table, error) {
	return r.calendar.SemestersOn(ctx, date)
}

func (r *pgReads) ClassSchedule(ctx context.Context, filter shared.ScheduleFilter) ([]shared.ScheduleEntry, error) {
	return r.calendar.ClassSchedule(ctx, filter)
}

func (r *pgReads) Reservations(ctx context.Context, filter shared.ReservationFilter) ([]shared.ReservationRow, error) {
	return r.reservations.List(ctx, filter)
}

func (r *pgReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationRow, error) {
	return r.reservations.FindByID(ctx, id)
}

func (r *pgReads) ReservationUsage(ctx context.Context, filter shared.UsageFilter) (shared.UsageTotals, error) {
	return r.reservations.Usage(ctx, filter)
}

func (r *pgReads) OpenSeatUsages(ctx context.Context, filter shared.SeatUsageFilter) ([]occupancy.Usage, error) {
	return r.seatUsages.Open(ctx, filter)
}

func (r *pgReads) SeatUsagesSince(ctx context.Context, userID string, since time.Time) ([]occupancy.Usage, error) {
	return r.seatUsages.Since(ctx, userID, since)
}

var (
	_ shared.UnitOfWork = (*PostgresUoW)(nil)
	_ shared.Reads      = (*pgReads)(nil)
)
