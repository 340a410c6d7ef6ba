package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

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

type Options struct {
	// StatementTimeout bounds every statement including advisory and row lock waits.
	StatementTimeout time.Duration
	// MaxRetries is how often a serialization failure or deadlock is retried.
	MaxRetries  int
	BackoffBase time.Duration
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	opts   Options
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts Options, logger *slog.Logger) *PostgresUoW {
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = 100 * time.Millisecond
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		opts:   opts,
		logger: logger,
	}
}

// ReadCommitted is enough: admission is serialized by the per-room advisory
// lock and redemption by the coupon row lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.opts.MaxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(infra.WrapRepoErr(u.logger, infra.KindUnavailable, "begin transaction", err), errTransactionBegin)
		}

		err = u.attempt(ctx, pgxTx, fn)

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt > 0 && attempt == maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.opts.BackoffBase)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return infra.WrapRepoErr(u.logger, infra.KindUnavailable, "transaction retry aborted", ctx.Err())
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) attempt(ctx context.Context, pgxTx pgx.Tx, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.opts.StatementTimeout > 0 {
		timeout := fmt.Sprintf("%dms", u.opts.StatementTimeout.Milliseconds())
		if err := u.q.SetLocalStatementTimeout(ctx, pgxTx, timeout); err != nil {
			return infra.Classify(u.logger, "set statement timeout", err)
		}
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(infra.Classify(u.logger, "commit transaction", err), errTransactionCommit)
	}
	return nil
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

	bookingRepo shared.BookingRepository
	couponRepo  shared.CouponRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.bookingRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.couponRepo
}
