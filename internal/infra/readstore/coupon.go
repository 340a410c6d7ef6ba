package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponViewQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (*sqlc.Coupon, error)
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (*sqlc.Coupon, error)
	ListActiveCoupons(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]*sqlc.Coupon, error)
	ListExpiredCoupons(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]*sqlc.Coupon, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX) ([]*sqlc.Coupon, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCouponReadStore(queries CouponViewQueries, db sqlc.DBTX, logger *slog.Logger) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code.String())
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get coupon by code", err)
	}
	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode coupon", err)
	}
	return c, nil
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get coupon view by id", err)
	}
	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode coupon", err)
	}
	return queries.NewCouponView(c), nil
}

func (r *CouponReadStore) FindActive(ctx context.Context, now time.Time) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListActiveCoupons(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list active coupons", err)
	}
	return r.toViews(rows)
}

func (r *CouponReadStore) FindExpired(ctx context.Context, now time.Time) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListExpiredCoupons(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list expired coupons", err)
	}
	return r.toViews(rows)
}

// FindAll returns every coupon, newest first.
func (r *CouponReadStore) FindAll(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, r.db)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list coupons", err)
	}
	return r.toViews(rows)
}

func (r *CouponReadStore) toViews(rows []*sqlc.Coupon) ([]*queries.CouponView, error) {
	coupons, err := converter.CouponsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode coupons", err)
	}
	views := make([]*queries.CouponView, len(coupons))
	for i, c := range coupons {
		views[i] = queries.NewCouponView(c)
	}
	return views, nil
}
