package repository

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponWriteQueries interface {
	GetCouponByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (*sqlc.Coupon, error)
	GetCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (*sqlc.Coupon, error)
	InsertCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponParams) error
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (int64, error)
	MarkCouponUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCouponUsedParams) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX, logger *slog.Logger) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCodeForUpdate(ctx, r.db, code.String())
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get coupon by code", err)
	}
	return r.decode(row)
}

func (r *CouponRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByIDForUpdate(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get coupon", err)
	}
	return r.decode(row)
}

func (r *CouponRepository) Insert(ctx context.Context, c *coupon.Coupon) error {
	if err := r.queries.InsertCoupon(ctx, r.db, converter.CouponToInsertParams(c)); err != nil {
		return infra.Classify(r.logger, "failed to insert coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	rows, err := r.queries.UpdateCoupon(ctx, r.db, converter.CouponToUpdateParams(c))
	if err != nil {
		return infra.Classify(r.logger, "failed to update coupon", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "coupon not found", nil)
	}
	return nil
}

func (r *CouponRepository) MarkUsed(ctx context.Context, c *coupon.Coupon) error {
	rows, err := r.queries.MarkCouponUsed(ctx, r.db, converter.CouponToMarkUsedParams(c))
	if err != nil {
		return infra.Classify(r.logger, "failed to mark coupon used", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "coupon already used", nil)
	}
	return nil
}

func (r *CouponRepository) decode(row *sqlc.Coupon) (*coupon.Coupon, error) {
	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode coupon", err)
	}
	return c, nil
}
