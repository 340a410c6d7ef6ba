package components

import (
	"log/slog"

	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/infra/readstore"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is the driver-selected store, shared by both cores.
type Stores struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Bookings   queries.BookingReadStore
	Coupons    queries.CouponReadStore
}

func NewStores(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) Stores {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memstore.New(memstore.Options{LockWaitTimeout: cfg.Store.LockWaitTimeout}, logger)
		logger.Info("Using in-memory store", "lock_wait_timeout", cfg.Store.LockWaitTimeout)
		return Stores{
			UnitOfWork: store,
			Bookings:   store.BookingReads(),
			Coupons:    store.CouponReads(),
		}
	}

	q := sqlc.New()
	return Stores{
		UnitOfWork: uow.NewPostgresUoW(pool, q, uow.Options{
			StatementTimeout: cfg.DB.StatementTimeout,
			MaxRetries:       cfg.DB.TxMaxRetries,
		}, logger),
		Bookings: readstore.NewBookingReadStore(q, pool, logger),
		Coupons:  readstore.NewCouponReadStore(q, pool, logger),
	}
}
